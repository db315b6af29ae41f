package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/conectVagas/ConectaVagas/internal/database"
	"github.com/conectVagas/ConectaVagas/internal/model"
)

// CompanyRepository handles company account data access
type CompanyRepository struct {
	db database.Database
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db database.Database) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create persists a new company account. The email unique index maps
// violations to database.ErrDuplicate. On success the generated ID and
// server-set created_at are written back to the passed company.
func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	query := `
		CREATE company CONTENT {
			name: $name,
			email: $email,
			hash: $hash,
			created_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":  company.Name,
		"email": company.Email,
		"hash":  company.Hash,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}

	created, err := parseCompanyResult(result)
	if err != nil {
		return err
	}

	company.ID = created.ID
	company.CreatedAt = created.CreatedAt
	return nil
}

// GetByEmail retrieves a company by email. Returns nil, nil when absent.
func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (*model.Company, error) {
	query := `SELECT * FROM company WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseCompanyResult(result)
}

func parseCompanyResult(result interface{}) (*model.Company, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected company result format")
	}

	return &model.Company{
		ID:        convertSurrealID(data["id"]),
		Name:      getString(data, "name"),
		Email:     getString(data, "email"),
		Hash:      getString(data, "hash"),
		CreatedAt: getTime(data, "created_at"),
	}, nil
}
