package models

import (
	"time"
)

// MenuItem is a navigation entry. A single level of nesting is supported
// through ParentID; children are ordered by Order.
type MenuItem struct {
	ID        string      `json:"id" db:"id"`
	Title     string      `json:"title" db:"title"`
	Path      string      `json:"path,omitempty" db:"path"`
	NewTab    bool        `json:"new_tab" db:"new_tab"`
	Order     int         `json:"order" db:"display_order"`
	Published bool        `json:"published" db:"published"`
	ParentID  *string     `json:"parent_id,omitempty" db:"parent_id"`
	Children  []*MenuItem `json:"children,omitempty" db:"-"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// MenuItemCreateRequest is the admin payload for creating a menu entry.
// Published defaults to true when omitted.
type MenuItemCreateRequest struct {
	Title     string  `json:"title" validate:"required,min=1"`
	Path      string  `json:"path" validate:"omitempty,min=1"`
	NewTab    bool    `json:"new_tab"`
	Order     *int    `json:"order" validate:"omitempty,gte=0"`
	ParentID  *string `json:"parent_id" validate:"omitempty,uuid"`
	Published *bool   `json:"published"`
}

// MenuItemUpdateRequest is the partial-update payload for a menu entry
type MenuItemUpdateRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1"`
	Path      *string `json:"path" validate:"omitempty,min=1"`
	NewTab    *bool   `json:"new_tab"`
	Order     *int    `json:"order" validate:"omitempty,gte=0"`
	ParentID  *string `json:"parent_id" validate:"omitempty,uuid"`
	Published *bool   `json:"published"`
}
