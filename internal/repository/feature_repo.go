package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/marketing-cms-api/internal/database"
	"github.com/marketing-cms-api/internal/models"
)

// featureRepo is the concrete implementation of FeatureRepository
type featureRepo struct {
	db *database.DB
}

// NewFeatureRepo creates a new feature repository
func NewFeatureRepo(db *database.DB) FeatureRepository {
	return &featureRepo{db: db}
}

// Create inserts a new feature card
func (r *featureRepo) Create(ctx context.Context, feature *models.Feature) error {
	query := `
		INSERT INTO features (id, title, description, icon, display_order, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		feature.ID, feature.Title, feature.Description, feature.Icon,
		feature.Order, feature.Published, feature.CreatedAt, feature.UpdatedAt,
	)
	return translateError(err)
}

// GetByID retrieves a feature by ID
func (r *featureRepo) GetByID(ctx context.Context, id string) (*models.Feature, error) {
	query := `
		SELECT id, title, description, icon, display_order, published, created_at, updated_at
		FROM features WHERE id = $1
	`

	var feature models.Feature
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&feature.ID, &feature.Title, &feature.Description, &feature.Icon,
		&feature.Order, &feature.Published, &feature.CreatedAt, &feature.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &feature, nil
}

// List retrieves features in display order
func (r *featureRepo) List(ctx context.Context, published *bool) ([]*models.Feature, error) {
	query := `
		SELECT id, title, description, icon, display_order, published, created_at, updated_at
		FROM features
	`
	var args []interface{}
	if published != nil {
		query += " WHERE published = $1"
		args = append(args, *published)
	}
	query += " ORDER BY display_order ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var features []*models.Feature
	for rows.Next() {
		var feature models.Feature
		err := rows.Scan(
			&feature.ID, &feature.Title, &feature.Description, &feature.Icon,
			&feature.Order, &feature.Published, &feature.CreatedAt, &feature.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		features = append(features, &feature)
	}
	return features, rows.Err()
}

// Update rewrites a feature row
func (r *featureRepo) Update(ctx context.Context, feature *models.Feature) error {
	query := `
		UPDATE features SET
			title = $1, description = $2, icon = $3, display_order = $4,
			published = $5, updated_at = $6
		WHERE id = $7
	`
	_, err := r.db.ExecContext(ctx, query,
		feature.Title, feature.Description, feature.Icon, feature.Order,
		feature.Published, time.Now(), feature.ID,
	)
	return translateError(err)
}

// Delete removes a feature
func (r *featureRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM features WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
