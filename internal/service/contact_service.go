package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// contactService is the concrete implementation of ContactService
type contactService struct {
	contacts repository.ContactRepository
	log      zerolog.Logger
}

// newContactService creates a new ContactService
func newContactService(contacts repository.ContactRepository, log zerolog.Logger) *contactService {
	return &contactService{
		contacts: contacts,
		log:      log.With().Str("service", "contact").Logger(),
	}
}

// Submit records a contact-form message with status UNREAD
func (s *contactService) Submit(ctx context.Context, req *models.ContactCreateRequest) (*models.Contact, error) {
	now := time.Now().UTC()
	contact := &models.Contact{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.ContactStatusUnread,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	s.log.Info().Str("contact_id", contact.ID).Msg("Contact message submitted")
	return contact, nil
}

// Get returns a single contact message
func (s *contactService) Get(ctx context.Context, id string) (*models.Contact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	if contact == nil {
		return nil, ErrNotFound
	}
	return contact, nil
}

// List returns a page of inbox messages with pagination metadata
func (s *contactService) List(ctx context.Context, filter models.ContactFilter, page, limit int) ([]*models.Contact, models.Pagination, error) {
	filter.Offset = (page - 1) * limit
	filter.Limit = limit

	contacts, err := s.contacts.List(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list contacts: %w", err)
	}

	total, err := s.contacts.Count(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("count contacts: %w", err)
	}

	return contacts, models.NewPagination(page, limit, total), nil
}

// UpdateStatus moves a message through the inbox workflow
func (s *contactService) UpdateStatus(ctx context.Context, id, status string) (*models.Contact, error) {
	updated, err := s.contacts.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update contact status: %w", err)
	}
	if !updated {
		return nil, ErrNotFound
	}

	s.log.Info().Str("contact_id", id).Str("status", status).Msg("Contact status updated")
	return s.Get(ctx, id)
}

// Delete removes a contact message
func (s *contactService) Delete(ctx context.Context, id string) error {
	deleted, err := s.contacts.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.log.Info().Str("contact_id", id).Msg("Contact deleted")
	return nil
}
