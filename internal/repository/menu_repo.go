package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/marketing-cms-api/internal/database"
	"github.com/marketing-cms-api/internal/models"
)

// menuRepo is the concrete implementation of MenuRepository
type menuRepo struct {
	db *database.DB
}

// NewMenuRepo creates a new menu repository
func NewMenuRepo(db *database.DB) MenuRepository {
	return &menuRepo{db: db}
}

// Create inserts a new menu entry
func (r *menuRepo) Create(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, title, path, new_tab, display_order, published, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, nullString(item.Path), item.NewTab, item.Order,
		item.Published, nullStringPtr(item.ParentID), item.CreatedAt, item.UpdatedAt,
	)
	return err
}

// GetByID retrieves a menu entry by ID
func (r *menuRepo) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	query := `
		SELECT id, title, path, new_tab, display_order, published, parent_id, created_at, updated_at
		FROM menu_items WHERE id = $1
	`

	item, err := scanMenuItem(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// List retrieves menu entries ordered for tree assembly
func (r *menuRepo) List(ctx context.Context, publishedOnly bool) ([]*models.MenuItem, error) {
	query := `
		SELECT id, title, path, new_tab, display_order, published, parent_id, created_at, updated_at
		FROM menu_items
	`
	if publishedOnly {
		query += " WHERE published = TRUE"
	}
	query += " ORDER BY display_order ASC, created_at ASC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update rewrites a menu entry
func (r *menuRepo) Update(ctx context.Context, item *models.MenuItem) error {
	query := `
		UPDATE menu_items SET
			title = $1, path = $2, new_tab = $3, display_order = $4,
			published = $5, parent_id = $6, updated_at = $7
		WHERE id = $8
	`
	_, err := r.db.ExecContext(ctx, query,
		item.Title, nullString(item.Path), item.NewTab, item.Order,
		item.Published, nullStringPtr(item.ParentID), time.Now(), item.ID,
	)
	return err
}

// Delete removes a menu entry; children are detached at the schema level
func (r *menuRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanMenuItem(row scanner) (*models.MenuItem, error) {
	var item models.MenuItem
	var path, parentID sql.NullString

	err := row.Scan(
		&item.ID, &item.Title, &path, &item.NewTab, &item.Order,
		&item.Published, &parentID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Path = path.String
	if parentID.Valid {
		item.ParentID = &parentID.String
	}
	return &item, nil
}
