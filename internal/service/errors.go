package service

import (
	"errors"
	"fmt"

	"github.com/conectVagas/ConectaVagas/internal/database"
	"github.com/conectVagas/ConectaVagas/internal/model"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases must stay indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// ===== Job Errors =====
var (
	ErrJobNotFound = errors.New("job not found")
	ErrNotJobOwner = errors.New("job belongs to another company")
)

// ValidationError carries field-level validation failures so handlers
// can return the full list of rejected fields in one response.
type ValidationError struct {
	Fields []model.FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
}

func newValidationError(fields []model.FieldError) error {
	return &ValidationError{Fields: fields}
}

func isDuplicate(err error) bool {
	return errors.Is(err, database.ErrDuplicate)
}
