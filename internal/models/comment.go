package models

import (
	"time"
)

// Comment is a reader comment on a blog post. Comments start unapproved
// and only become publicly visible after admin approval.
type Comment struct {
	ID          string    `json:"id" db:"id"`
	BlogID      string    `json:"blog_id" db:"blog_id"`
	Content     string    `json:"content" db:"content"`
	AuthorName  string    `json:"author_name" db:"author_name"`
	AuthorEmail string    `json:"author_email" db:"author_email"`
	Approved    bool      `json:"approved" db:"approved"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CommentCreateRequest is the public payload for submitting a comment
type CommentCreateRequest struct {
	Content     string `json:"content" validate:"required,min=1"`
	AuthorName  string `json:"author_name" validate:"required,min=1"`
	AuthorEmail string `json:"author_email" validate:"required,email"`
}
