package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/marketing-cms-api/internal/database"
	"github.com/marketing-cms-api/internal/models"
)

// testimonialRepo is the concrete implementation of TestimonialRepository
type testimonialRepo struct {
	db *database.DB
}

// NewTestimonialRepo creates a new testimonial repository
func NewTestimonialRepo(db *database.DB) TestimonialRepository {
	return &testimonialRepo{db: db}
}

// Create inserts a new testimonial
func (r *testimonialRepo) Create(ctx context.Context, testimonial *models.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, name, designation, company, image, content, rating,
			featured, published, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		testimonial.ID, testimonial.Name, testimonial.Designation,
		nullString(testimonial.Company), testimonial.Image, testimonial.Content,
		testimonial.Rating, testimonial.Featured, testimonial.Published,
		testimonial.Order, testimonial.CreatedAt, testimonial.UpdatedAt,
	)
	return translateError(err)
}

// GetByID retrieves a testimonial by ID
func (r *testimonialRepo) GetByID(ctx context.Context, id string) (*models.Testimonial, error) {
	query := `
		SELECT id, name, designation, company, image, content, rating,
			featured, published, display_order, created_at, updated_at
		FROM testimonials WHERE id = $1
	`

	testimonial, err := scanTestimonial(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return testimonial, nil
}

// List retrieves testimonials in display order
func (r *testimonialRepo) List(ctx context.Context, filter models.TestimonialFilter) ([]*models.Testimonial, error) {
	query := `
		SELECT id, name, designation, company, image, content, rating,
			featured, published, display_order, created_at, updated_at
		FROM testimonials
	`
	var conds []string
	var args []interface{}
	if filter.Published != nil {
		args = append(args, *filter.Published)
		conds = append(conds, fmt.Sprintf("published = $%d", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		conds = append(conds, fmt.Sprintf("featured = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY display_order ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []*models.Testimonial
	for rows.Next() {
		testimonial, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, testimonial)
	}
	return testimonials, rows.Err()
}

// Update rewrites a testimonial row
func (r *testimonialRepo) Update(ctx context.Context, testimonial *models.Testimonial) error {
	query := `
		UPDATE testimonials SET
			name = $1, designation = $2, company = $3, image = $4, content = $5,
			rating = $6, featured = $7, published = $8, display_order = $9, updated_at = $10
		WHERE id = $11
	`
	_, err := r.db.ExecContext(ctx, query,
		testimonial.Name, testimonial.Designation, nullString(testimonial.Company),
		testimonial.Image, testimonial.Content, testimonial.Rating,
		testimonial.Featured, testimonial.Published, testimonial.Order,
		time.Now(), testimonial.ID,
	)
	return translateError(err)
}

// Delete removes a testimonial
func (r *testimonialRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM testimonials WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanTestimonial(row scanner) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	var company sql.NullString

	err := row.Scan(
		&testimonial.ID, &testimonial.Name, &testimonial.Designation, &company,
		&testimonial.Image, &testimonial.Content, &testimonial.Rating,
		&testimonial.Featured, &testimonial.Published, &testimonial.Order,
		&testimonial.CreatedAt, &testimonial.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	testimonial.Company = company.String
	return &testimonial, nil
}
