package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/marketing-cms-api/internal/database"
	"github.com/marketing-cms-api/internal/models"
)

// newsletterRepo is the concrete implementation of NewsletterRepository
type newsletterRepo struct {
	db *database.DB
}

// NewNewsletterRepo creates a new newsletter repository
func NewNewsletterRepo(db *database.DB) NewsletterRepository {
	return &newsletterRepo{db: db}
}

// Create inserts a new subscription. Returns ErrDuplicate when the email
// is already subscribed.
func (r *newsletterRepo) Create(ctx context.Context, sub *models.Newsletter) error {
	query := `
		INSERT INTO newsletters (id, email, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.Email, sub.Active, sub.CreatedAt, sub.UpdatedAt,
	)
	return translateError(err)
}

// GetByEmail retrieves a subscription by email
func (r *newsletterRepo) GetByEmail(ctx context.Context, email string) (*models.Newsletter, error) {
	query := `
		SELECT id, email, active, created_at, updated_at
		FROM newsletters WHERE email = $1
	`

	var sub models.Newsletter
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&sub.ID, &sub.Email, &sub.Active, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

// SetActive toggles a subscription without deleting the row
func (r *newsletterRepo) SetActive(ctx context.Context, email string, active bool) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE newsletters SET active = $1, updated_at = $2 WHERE email = $3",
		active, time.Now(), email,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List retrieves subscriptions, newest first
func (r *newsletterRepo) List(ctx context.Context, filter models.NewsletterFilter) ([]*models.Newsletter, error) {
	query := "SELECT id, email, active, created_at, updated_at FROM newsletters"
	var args []interface{}
	if filter.Active != nil {
		query += " WHERE active = $1 ORDER BY created_at DESC OFFSET $2 LIMIT $3"
		args = []interface{}{*filter.Active, filter.Offset, filter.Limit}
	} else {
		query += " ORDER BY created_at DESC OFFSET $1 LIMIT $2"
		args = []interface{}{filter.Offset, filter.Limit}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.Newsletter
	for rows.Next() {
		var sub models.Newsletter
		err := rows.Scan(&sub.ID, &sub.Email, &sub.Active, &sub.CreatedAt, &sub.UpdatedAt)
		if err != nil {
			return nil, err
		}
		subs = append(subs, &sub)
	}
	return subs, rows.Err()
}

// Count returns the number of subscriptions matching the filter
func (r *newsletterRepo) Count(ctx context.Context, filter models.NewsletterFilter) (int, error) {
	query := "SELECT COUNT(*) FROM newsletters"
	var args []interface{}
	if filter.Active != nil {
		query += " WHERE active = $1"
		args = append(args, *filter.Active)
	}

	var count int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}
