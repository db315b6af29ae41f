// Package database provides the database abstraction layer for ConectaVagas.
//
// This package defines the Database interface that abstracts SurrealDB
// operations, allowing for clean separation between business logic and
// data access.
//
// # Interface Design
//
// The Database interface provides three query methods:
//   - Query: Returns multiple results (for SELECT queries returning lists)
//   - QueryOne: Returns a single result (for SELECT by ID)
//   - Execute: No return value (for CREATE/DELETE mutations)
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
//
// # Schema
//
// Two tables are persisted: company (unique index on email) and job
// (indexed on created_at for newest-first listing). ApplySchema defines
// both idempotently at startup.
//
// # Usage Example
//
//	db := database.NewSurrealDB(cfg)
//	if err := db.Connect(ctx); err != nil {
//	    // fatal: the service never starts without its datastore
//	}
//	defer db.Close()
//
//	result, err := db.QueryOne(ctx, "SELECT * FROM company WHERE email = $email", map[string]interface{}{"email": email})
package database
