package model

import "time"

// Job represents a published job posting.
//
// Company is the display name shown on the posting and is free text;
// it may differ from the owning Company's registered name. CompanyID
// references the owning account and is set from the authenticated
// principal on creation, never from client input. Jobs are never
// updated in place: they are created and eventually deleted by their
// owner.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Salary      string    `json:"salary"`
	Description string    `json:"description"`
	Tags        string    `json:"tags"` // comma-separated free text
	Urgent      bool      `json:"urgent"`
	NoExp       bool      `json:"no_exp"`
	Remote      bool      `json:"remote"`
	ApplyURL    string    `json:"apply_url"`
	ApplyEmail  string    `json:"apply_email"`
	CreatedAt   time.Time `json:"created_at"`
	CompanyID   string    `json:"company_id,omitempty"` // empty only for legacy rows
}
