package models

import (
	"time"
)

// Blog represents a publishable blog post. Slug is derived from the title
// and unique across all posts.
type Blog struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Slug        string     `json:"slug" db:"slug"`
	Content     string     `json:"content" db:"content"`
	Excerpt     string     `json:"excerpt" db:"excerpt"`
	Image       string     `json:"image" db:"image"`
	Published   bool       `json:"published" db:"published"`
	Featured    bool       `json:"featured" db:"featured"`
	Views       int        `json:"views" db:"views"`
	AuthorID    string     `json:"-" db:"author_id"`
	Author      *AuthorRef `json:"author,omitempty" db:"-"`
	Tags        []*Tag     `json:"tags" db:"-"`
	PublishDate time.Time  `json:"publish_date" db:"publish_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// BlogCreateRequest is the admin payload for creating a post. The slug is
// derived server-side, never accepted from the client.
type BlogCreateRequest struct {
	Title     string   `json:"title" validate:"required,min=1"`
	Content   string   `json:"content" validate:"required,min=1"`
	Excerpt   string   `json:"excerpt" validate:"required,min=1"`
	Image     string   `json:"image" validate:"required,url"`
	Published bool     `json:"published"`
	Featured  bool     `json:"featured"`
	Tags      []string `json:"tags" validate:"omitempty,dive,min=1"`
}

// BlogUpdateRequest is the partial-update payload; every field is optional
// but constrained when present. A nil Tags leaves tag links untouched.
type BlogUpdateRequest struct {
	Title     *string   `json:"title" validate:"omitempty,min=1"`
	Content   *string   `json:"content" validate:"omitempty,min=1"`
	Excerpt   *string   `json:"excerpt" validate:"omitempty,min=1"`
	Image     *string   `json:"image" validate:"omitempty,url"`
	Published *bool     `json:"published"`
	Featured  *bool     `json:"featured"`
	Tags      *[]string `json:"tags" validate:"omitempty,dive,min=1"`
}

// BlogFilter describes the list query for blogs
type BlogFilter struct {
	Published *bool
	Featured  *bool
	TagSlug   string
	Search    string
	Offset    int
	Limit     int
}

// Pagination describes the page window of a list response
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// NewPagination computes the page count for a list response
func NewPagination(page, limit, totalCount int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (totalCount + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
