package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/marketing-cms-api/internal/database"
	"github.com/marketing-cms-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, blog_id, content, author_name, author_email, approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.BlogID, comment.Content, comment.AuthorName,
		comment.AuthorEmail, comment.Approved, comment.CreatedAt, comment.UpdatedAt,
	)
	return err
}

// GetByID retrieves a comment by ID
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `
		SELECT id, blog_id, content, author_name, author_email, approved, created_at, updated_at
		FROM comments WHERE id = $1
	`

	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.BlogID, &comment.Content, &comment.AuthorName,
		&comment.AuthorEmail, &comment.Approved, &comment.CreatedAt, &comment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// ListByBlog retrieves comments on a blog, newest first
func (r *commentRepo) ListByBlog(ctx context.Context, blogID string, approvedOnly bool) ([]*models.Comment, error) {
	query := `
		SELECT id, blog_id, content, author_name, author_email, approved, created_at, updated_at
		FROM comments WHERE blog_id = $1
	`
	args := []interface{}{blogID}
	if approvedOnly {
		query += " AND approved = TRUE"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID, &comment.BlogID, &comment.Content, &comment.AuthorName,
			&comment.AuthorEmail, &comment.Approved, &comment.CreatedAt, &comment.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

// SetApproved flips the moderation flag on a comment
func (r *commentRepo) SetApproved(ctx context.Context, id string, approved bool) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE comments SET approved = $1, updated_at = $2 WHERE id = $3",
		approved, time.Now(), id,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
