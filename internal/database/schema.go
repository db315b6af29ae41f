package database

import (
	"context"
	"fmt"
)

// schemaStatements defines the two persisted tables and their indexes.
// All statements are idempotent (OVERWRITE), so ApplySchema is safe to
// run on every startup.
var schemaStatements = []string{
	`DEFINE TABLE OVERWRITE company SCHEMAFULL;
	 DEFINE FIELD OVERWRITE name ON company TYPE string;
	 DEFINE FIELD OVERWRITE email ON company TYPE string;
	 DEFINE FIELD OVERWRITE hash ON company TYPE string;
	 DEFINE FIELD OVERWRITE created_at ON company TYPE datetime DEFAULT time::now();
	 DEFINE INDEX OVERWRITE company_email ON company FIELDS email UNIQUE;`,

	`DEFINE TABLE OVERWRITE job SCHEMAFULL;
	 DEFINE FIELD OVERWRITE title ON job TYPE string;
	 DEFINE FIELD OVERWRITE company ON job TYPE string;
	 DEFINE FIELD OVERWRITE location ON job TYPE string;
	 DEFINE FIELD OVERWRITE type ON job TYPE string DEFAULT '';
	 DEFINE FIELD OVERWRITE salary ON job TYPE string DEFAULT '';
	 DEFINE FIELD OVERWRITE description ON job TYPE string DEFAULT '';
	 DEFINE FIELD OVERWRITE tags ON job TYPE string DEFAULT '';
	 DEFINE FIELD OVERWRITE urgent ON job TYPE bool DEFAULT false;
	 DEFINE FIELD OVERWRITE no_exp ON job TYPE bool DEFAULT false;
	 DEFINE FIELD OVERWRITE remote ON job TYPE bool DEFAULT false;
	 DEFINE FIELD OVERWRITE apply_url ON job TYPE string DEFAULT '';
	 DEFINE FIELD OVERWRITE apply_email ON job TYPE string DEFAULT '';
	 DEFINE FIELD OVERWRITE created_at ON job TYPE datetime DEFAULT time::now();
	 DEFINE FIELD OVERWRITE company_id ON job TYPE option<string>;
	 DEFINE INDEX OVERWRITE job_created_at ON job FIELDS created_at;`,
}

// ApplySchema creates the company and job tables with their indexes.
// Called once at startup after Connect; a failure here is fatal for
// the service.
func ApplySchema(ctx context.Context, db Database) error {
	for _, stmt := range schemaStatements {
		if err := db.Execute(ctx, stmt, nil); err != nil {
			return fmt.Errorf("schema apply failed: %w", err)
		}
	}
	return nil
}
