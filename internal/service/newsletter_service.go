package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// newsletterService is the concrete implementation of NewsletterService
type newsletterService struct {
	subs repository.NewsletterRepository
	log  zerolog.Logger
}

// newNewsletterService creates a new NewsletterService
func newNewsletterService(subs repository.NewsletterRepository, log zerolog.Logger) *newsletterService {
	return &newsletterService{
		subs: subs,
		log:  log.With().Str("service", "newsletter").Logger(),
	}
}

// Subscribe adds an email to the list. A previously unsubscribed email is
// reactivated in place; an already-active one is a conflict.
func (s *newsletterService) Subscribe(ctx context.Context, email string) (*models.Newsletter, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	now := time.Now().UTC()
	sub := &models.Newsletter{
		ID:        uuid.New().String(),
		Email:     email,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.subs.Create(ctx, sub)
	if err == nil {
		s.log.Info().Str("email", email).Msg("Newsletter subscription created")
		return sub, nil
	}
	if !errors.Is(err, repository.ErrDuplicate) {
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	existing, getErr := s.subs.GetByEmail(ctx, email)
	if getErr != nil {
		return nil, fmt.Errorf("get subscription: %w", getErr)
	}
	if existing != nil && !existing.Active {
		if _, err := s.subs.SetActive(ctx, email, true); err != nil {
			return nil, fmt.Errorf("reactivate subscription: %w", err)
		}
		existing.Active = true
		s.log.Info().Str("email", email).Msg("Newsletter subscription reactivated")
		return existing, nil
	}

	return nil, fmt.Errorf("%w: email already subscribed", ErrConflict)
}

// Unsubscribe deactivates a subscription without deleting the row
func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	updated, err := s.subs.SetActive(ctx, email, false)
	if err != nil {
		return fmt.Errorf("deactivate subscription: %w", err)
	}
	if !updated {
		return ErrNotFound
	}

	s.log.Info().Str("email", email).Msg("Newsletter subscription deactivated")
	return nil
}

// List returns a page of subscribers with pagination metadata
func (s *newsletterService) List(ctx context.Context, filter models.NewsletterFilter, page, limit int) ([]*models.Newsletter, models.Pagination, error) {
	filter.Offset = (page - 1) * limit
	filter.Limit = limit

	subs, err := s.subs.List(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list subscriptions: %w", err)
	}

	total, err := s.subs.Count(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("count subscriptions: %w", err)
	}

	return subs, models.NewPagination(page, limit, total), nil
}
