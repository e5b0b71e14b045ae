package models

// DefaultTagColor is assigned to tags created lazily by the tag resolver
const DefaultTagColor = "#3B82F6"

// Tag labels blog posts. Both name and slug are unique; the resolver
// matches by derived slug, so names differing only in case or punctuation
// map to one tag. Tags are created lazily the first time a name is
// referenced and never deleted by the content-editing flow.
type Tag struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Slug  string `json:"slug" db:"slug"`
	Color string `json:"color" db:"color"`
}

// TagCreateRequest is the admin payload for creating a tag explicitly
type TagCreateRequest struct {
	Name  string `json:"name" validate:"required,min=1"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}
