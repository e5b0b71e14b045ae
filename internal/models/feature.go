package models

import (
	"time"
)

// Feature is a product feature card on the marketing site
type Feature struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Icon        string    `json:"icon" db:"icon"`
	Order       int       `json:"order" db:"display_order"`
	Published   bool      `json:"published" db:"published"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// FeatureCreateRequest is the admin payload for creating a feature.
// Published defaults to true when omitted.
type FeatureCreateRequest struct {
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
	Icon        string `json:"icon" validate:"required,min=1"`
	Order       *int   `json:"order" validate:"omitempty,gte=0"`
	Published   *bool  `json:"published"`
}

// FeatureUpdateRequest is the partial-update payload for a feature
type FeatureUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Icon        *string `json:"icon" validate:"omitempty,min=1"`
	Order       *int    `json:"order" validate:"omitempty,gte=0"`
	Published   *bool   `json:"published"`
}
