package models

import (
	"time"
)

// Contact message statuses
const (
	ContactStatusUnread   = "UNREAD"
	ContactStatusRead     = "READ"
	ContactStatusReplied  = "REPLIED"
	ContactStatusArchived = "ARCHIVED"
)

// ValidContactStatuses defines allowed contact statuses
var ValidContactStatuses = map[string]bool{
	ContactStatusUnread:   true,
	ContactStatusRead:     true,
	ContactStatusReplied:  true,
	ContactStatusArchived: true,
}

// Contact is a message submitted through the public contact form
type Contact struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Subject   string    `json:"subject,omitempty" db:"subject"`
	Message   string    `json:"message" db:"message"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ContactCreateRequest is the public contact-form payload
type ContactCreateRequest struct {
	Name    string `json:"name" validate:"required,min=1"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"omitempty,min=1"`
	Message string `json:"message" validate:"required,min=1"`
}

// ContactStatusUpdateRequest is the admin payload for moving a message
// through the inbox workflow
type ContactStatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=UNREAD READ REPLIED ARCHIVED"`
}

// ContactFilter describes the admin inbox list query
type ContactFilter struct {
	Status string
	Offset int
	Limit  int
}
