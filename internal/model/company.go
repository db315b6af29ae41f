package model

import "time"

// Company represents a registered company account.
//
// Companies are created on registration and never mutated or deleted.
// The password hash is opaque to the rest of the system and never
// serialized into API responses.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Hash      string    `json:"-"` // Never expose password hash
	CreatedAt time.Time `json:"created_at"`
}

// TokenClaims represents the principal extracted from a verified token
type TokenClaims struct {
	CompanyID string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}
