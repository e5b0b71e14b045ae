package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/marketing-cms-api/internal/database"
	"github.com/marketing-cms-api/internal/models"
)

// blogRepo is the concrete implementation of BlogRepository
type blogRepo struct {
	db *database.DB
}

// NewBlogRepo creates a new blog repository
func NewBlogRepo(db *database.DB) BlogRepository {
	return &blogRepo{db: db}
}

const blogColumns = `
	b.id, b.title, b.slug, b.content, b.excerpt, b.image, b.published, b.featured,
	b.views, b.author_id, b.publish_date, b.created_at, b.updated_at,
	u.id, u.name, u.email
`

// Create inserts a new blog and its tag links in one transaction
func (r *blogRepo) Create(ctx context.Context, blog *models.Blog, tagIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO blogs (id, title, slug, content, excerpt, image, published, featured,
			views, author_id, publish_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = tx.ExecContext(ctx, query,
		blog.ID, blog.Title, blog.Slug, blog.Content, blog.Excerpt, blog.Image,
		blog.Published, blog.Featured, blog.Views, blog.AuthorID,
		blog.PublishDate, blog.CreatedAt, blog.UpdatedAt,
	)
	if err != nil {
		return translateError(err)
	}

	if err := insertTagLinks(ctx, tx, blog.ID, tagIDs); err != nil {
		return translateError(err)
	}

	return tx.Commit()
}

// Update rewrites the blog row; when replaceTags is set the tag links are
// replaced with tagIDs, otherwise they are left untouched
func (r *blogRepo) Update(ctx context.Context, blog *models.Blog, tagIDs []string, replaceTags bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE blogs SET
			title = $1, slug = $2, content = $3, excerpt = $4, image = $5,
			published = $6, featured = $7, updated_at = $8
		WHERE id = $9
	`
	_, err = tx.ExecContext(ctx, query,
		blog.Title, blog.Slug, blog.Content, blog.Excerpt, blog.Image,
		blog.Published, blog.Featured, time.Now(), blog.ID,
	)
	if err != nil {
		return translateError(err)
	}

	if replaceTags {
		if _, err := tx.ExecContext(ctx, "DELETE FROM blog_tags WHERE blog_id = $1", blog.ID); err != nil {
			return err
		}
		if err := insertTagLinks(ctx, tx, blog.ID, tagIDs); err != nil {
			return translateError(err)
		}
	}

	return tx.Commit()
}

func insertTagLinks(ctx context.Context, tx *sql.Tx, blogID string, tagIDs []string) error {
	for _, tagID := range tagIDs {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO blog_tags (blog_id, tag_id) VALUES ($1, $2)", blogID, tagID)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves a blog with its author and tags
func (r *blogRepo) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	return r.getOne(ctx, "b.id", id)
}

// GetBySlug retrieves a blog with its author and tags
func (r *blogRepo) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	return r.getOne(ctx, "b.slug", slug)
}

func (r *blogRepo) getOne(ctx context.Context, column, value string) (*models.Blog, error) {
	query := "SELECT " + blogColumns + " FROM blogs b JOIN users u ON u.id = b.author_id WHERE " + column + " = $1"

	blog, err := scanBlog(r.db.QueryRowContext(ctx, query, value))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadTags(ctx, []*models.Blog{blog}); err != nil {
		return nil, err
	}
	return blog, nil
}

// List retrieves blogs matching the filter, newest publish date first
func (r *blogRepo) List(ctx context.Context, filter models.BlogFilter) ([]*models.Blog, error) {
	where, args := buildBlogWhere(filter)
	args = append(args, filter.Offset, filter.Limit)
	query := fmt.Sprintf(
		"SELECT %s FROM blogs b JOIN users u ON u.id = b.author_id %s ORDER BY b.publish_date DESC OFFSET $%d LIMIT $%d",
		blogColumns, where, len(args)-1, len(args),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []*models.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadTags(ctx, blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// Count returns the number of blogs matching the filter
func (r *blogRepo) Count(ctx context.Context, filter models.BlogFilter) (int, error) {
	where, args := buildBlogWhere(filter)
	query := "SELECT COUNT(*) FROM blogs b " + where

	var count int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// Delete removes a blog; tag links cascade at the schema level
func (r *blogRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM blogs WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// IncrementViews bumps the view counter atomically in the store
func (r *blogRepo) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE blogs SET views = views + 1 WHERE id = $1", id)
	return err
}

// buildBlogWhere assembles the WHERE clause for a blog filter
func buildBlogWhere(filter models.BlogFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if filter.Published != nil {
		args = append(args, *filter.Published)
		conds = append(conds, fmt.Sprintf("b.published = $%d", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		conds = append(conds, fmt.Sprintf("b.featured = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(b.title ILIKE $%d OR b.excerpt ILIKE $%d OR b.content ILIKE $%d)", n, n, n))
	}
	if filter.TagSlug != "" {
		args = append(args, filter.TagSlug)
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM blog_tags bt JOIN tags t ON t.id = bt.tag_id WHERE bt.blog_id = b.id AND t.slug = $%d)",
			len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBlog(row scanner) (*models.Blog, error) {
	var blog models.Blog
	var author models.AuthorRef

	err := row.Scan(
		&blog.ID, &blog.Title, &blog.Slug, &blog.Content, &blog.Excerpt, &blog.Image,
		&blog.Published, &blog.Featured, &blog.Views, &blog.AuthorID,
		&blog.PublishDate, &blog.CreatedAt, &blog.UpdatedAt,
		&author.ID, &author.Name, &author.Email,
	)
	if err != nil {
		return nil, err
	}

	blog.Author = &author
	blog.Tags = []*models.Tag{}
	return &blog, nil
}

// loadTags attaches tags to the given blogs with a single query
func (r *blogRepo) loadTags(ctx context.Context, blogs []*models.Blog) error {
	if len(blogs) == 0 {
		return nil
	}

	ids := make([]string, len(blogs))
	byID := make(map[string]*models.Blog, len(blogs))
	for i, b := range blogs {
		ids[i] = b.ID
		byID[b.ID] = b
	}

	query := `
		SELECT bt.blog_id, t.id, t.name, t.slug, t.color
		FROM blog_tags bt JOIN tags t ON t.id = bt.tag_id
		WHERE bt.blog_id = ANY($1)
		ORDER BY t.name
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var blogID string
		var tag models.Tag
		if err := rows.Scan(&blogID, &tag.ID, &tag.Name, &tag.Slug, &tag.Color); err != nil {
			return err
		}
		if blog, ok := byID[blogID]; ok {
			blog.Tags = append(blog.Tags, &tag)
		}
	}
	return rows.Err()
}
