package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/conectVagas/ConectaVagas/internal/model"
	"github.com/conectVagas/ConectaVagas/internal/service"
)

// OKResponse acknowledges a mutation with no payload
type OKResponse struct {
	OK bool `json:"ok"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes an error response
func WriteError(w http.ResponseWriter, err *model.APIError) {
	WriteJSON(w, err.Status, err)
}

// DecodeJSON decodes a JSON request body into the given struct.
// Unknown fields are tolerated; the original clients send extras.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// writeServiceError maps service errors every handler shares:
// validation failures become a 400 with the field list, anything
// unmapped becomes a logged 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		WriteError(w, model.NewValidationError(validationErr.Fields))
		return
	}

	slog.Error("unhandled service error", "error", err)
	WriteError(w, model.NewInternalError(""))
}
