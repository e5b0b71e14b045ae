package models

import (
	"time"
)

// Newsletter is a subscription entry. Email is unique; unsubscribing
// deactivates the row rather than deleting it.
type Newsletter struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewsletterRequest carries the email for subscribe and unsubscribe
type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// NewsletterFilter describes the admin subscriber list query
type NewsletterFilter struct {
	Active *bool
	Offset int
	Limit  int
}
