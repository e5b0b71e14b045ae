package repository

import (
	"context"
	"database/sql"

	"github.com/marketing-cms-api/internal/database"
	"github.com/marketing-cms-api/internal/models"
)

// tagRepo is the concrete implementation of TagRepository
type tagRepo struct {
	db *database.DB
}

// NewTagRepo creates a new tag repository
func NewTagRepo(db *database.DB) TagRepository {
	return &tagRepo{db: db}
}

// Create inserts a new tag. Both name and slug carry unique constraints, so
// a collision on either surfaces as ErrDuplicate; concurrent create-if-absent
// callers re-fetch on that.
func (r *tagRepo) Create(ctx context.Context, tag *models.Tag) error {
	query := `INSERT INTO tags (id, name, slug, color) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, tag.ID, tag.Name, tag.Slug, tag.Color)
	return translateError(err)
}

// GetByID retrieves a tag by ID
func (r *tagRepo) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	return r.getOne(ctx, "id", id)
}

// GetBySlug retrieves a tag by its derived slug
func (r *tagRepo) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	return r.getOne(ctx, "slug", slug)
}

func (r *tagRepo) getOne(ctx context.Context, column, value string) (*models.Tag, error) {
	query := "SELECT id, name, slug, color FROM tags WHERE " + column + " = $1"

	var tag models.Tag
	err := r.db.QueryRowContext(ctx, query, value).Scan(&tag.ID, &tag.Name, &tag.Slug, &tag.Color)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &tag, nil
}

// List retrieves all tags ordered by name
func (r *tagRepo) List(ctx context.Context) ([]*models.Tag, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, slug, color FROM tags ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Slug, &tag.Color); err != nil {
			return nil, err
		}
		tags = append(tags, &tag)
	}
	return tags, rows.Err()
}

// Count returns the total number of tags
func (r *tagRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tags").Scan(&count)
	return count, err
}
