package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/marketing-cms-api/internal/database"
	"github.com/marketing-cms-api/internal/models"
)

// contactRepo is the concrete implementation of ContactRepository
type contactRepo struct {
	db *database.DB
}

// NewContactRepo creates a new contact repository
func NewContactRepo(db *database.DB) ContactRepository {
	return &contactRepo{db: db}
}

// Create inserts a new contact message
func (r *contactRepo) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, subject, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		contact.ID, contact.Name, contact.Email, nullString(contact.Subject),
		contact.Message, contact.Status, contact.CreatedAt, contact.UpdatedAt,
	)
	return err
}

// GetByID retrieves a contact message by ID
func (r *contactRepo) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	query := `
		SELECT id, name, email, subject, message, status, created_at, updated_at
		FROM contacts WHERE id = $1
	`

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return contact, nil
}

// List retrieves contact messages, newest first
func (r *contactRepo) List(ctx context.Context, filter models.ContactFilter) ([]*models.Contact, error) {
	query := `
		SELECT id, name, email, subject, message, status, created_at, updated_at
		FROM contacts
	`
	var args []interface{}
	if filter.Status != "" {
		query += " WHERE status = $1 ORDER BY created_at DESC OFFSET $2 LIMIT $3"
		args = []interface{}{filter.Status, filter.Offset, filter.Limit}
	} else {
		query += " ORDER BY created_at DESC OFFSET $1 LIMIT $2"
		args = []interface{}{filter.Offset, filter.Limit}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*models.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

// Count returns the number of contact messages matching the filter
func (r *contactRepo) Count(ctx context.Context, filter models.ContactFilter) (int, error) {
	query := "SELECT COUNT(*) FROM contacts"
	var args []interface{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += " WHERE status = $1"
	}

	var count int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// UpdateStatus moves a message through the inbox workflow
func (r *contactRepo) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE contacts SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now(), id,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Delete removes a contact message
func (r *contactRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanContact(row scanner) (*models.Contact, error) {
	var contact models.Contact
	var subject sql.NullString

	err := row.Scan(
		&contact.ID, &contact.Name, &contact.Email, &subject,
		&contact.Message, &contact.Status, &contact.CreatedAt, &contact.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	contact.Subject = subject.String
	return &contact, nil
}
