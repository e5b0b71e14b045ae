package models

import (
	"time"
)

// Testimonial is a customer quote on the marketing site
type Testimonial struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Designation string    `json:"designation" db:"designation"`
	Company     string    `json:"company,omitempty" db:"company"`
	Image       string    `json:"image" db:"image"`
	Content     string    `json:"content" db:"content"`
	Rating      int       `json:"rating" db:"rating"`
	Featured    bool      `json:"featured" db:"featured"`
	Published   bool      `json:"published" db:"published"`
	Order       int       `json:"order" db:"display_order"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// TestimonialCreateRequest is the admin payload for creating a testimonial.
// Rating defaults to 5 and published to true when omitted; out-of-range
// ratings are rejected, never clamped.
type TestimonialCreateRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Designation string `json:"designation" validate:"required,min=1"`
	Company     string `json:"company" validate:"omitempty,min=1"`
	Image       string `json:"image" validate:"required,url"`
	Content     string `json:"content" validate:"required,min=1"`
	Rating      *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Featured    bool   `json:"featured"`
	Published   *bool  `json:"published"`
	Order       *int   `json:"order" validate:"omitempty,gte=0"`
}

// TestimonialUpdateRequest is the partial-update payload for a testimonial
type TestimonialUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Designation *string `json:"designation" validate:"omitempty,min=1"`
	Company     *string `json:"company" validate:"omitempty,min=1"`
	Image       *string `json:"image" validate:"omitempty,url"`
	Content     *string `json:"content" validate:"omitempty,min=1"`
	Rating      *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Featured    *bool   `json:"featured"`
	Published   *bool   `json:"published"`
	Order       *int    `json:"order" validate:"omitempty,gte=0"`
}

// TestimonialFilter describes the testimonial list query
type TestimonialFilter struct {
	Published *bool
	Featured  *bool
}
