// Package model defines the domain entities for the ConectaVagas API.
//
// The model package contains the two persisted entities (Company and
// Job), the token claims attached to authenticated requests, and the
// APIError type that every handler uses to shape error responses.
//
// Models are plain structs with JSON tags matching the wire format.
// They carry no behavior beyond small accessors; validation lives in
// the service layer and persistence in the repository layer.
package model
