package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the wire shape of every error response.
//
// Single-message failures carry {"error": "..."}; validation failures
// carry {"errors": [{"field": ..., "message": ...}, ...]} with one
// entry per rejected field.
type APIError struct {
	Status  int          `json:"-"`
	Message string       `json:"error,omitempty"`
	Fields  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("[%d] %s: %s", e.Status, e.Fields[0].Field, e.Fields[0].Message)
	}
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// WriteJSON writes the error as a JSON response
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// Common error constructors

func NewUnauthorizedError(detail string) *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Message: detail,
	}
}

func NewForbiddenError(detail string) *APIError {
	return &APIError{
		Status:  http.StatusForbidden,
		Message: detail,
	}
}

func NewNotFoundError(detail string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: detail,
	}
}

func NewValidationError(errors []FieldError) *APIError {
	return &APIError{
		Status: http.StatusBadRequest,
		Fields: errors,
	}
}

func NewBadRequestError(detail string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: detail,
	}
}

func NewInternalError(detail string) *APIError {
	if detail == "" {
		detail = "Erro interno do servidor"
	}
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: detail,
	}
}
