package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// featureService is the concrete implementation of FeatureService
type featureService struct {
	features repository.FeatureRepository
	log      zerolog.Logger
}

// newFeatureService creates a new FeatureService
func newFeatureService(features repository.FeatureRepository, log zerolog.Logger) *featureService {
	return &featureService{
		features: features,
		log:      log.With().Str("service", "feature").Logger(),
	}
}

// Create creates a feature card. Published defaults to true and order
// to 0 when omitted.
func (s *featureService) Create(ctx context.Context, req *models.FeatureCreateRequest) (*models.Feature, error) {
	published := true
	if req.Published != nil {
		published = *req.Published
	}
	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	now := time.Now().UTC()
	feature := &models.Feature{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       order,
		Published:   published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.features.Create(ctx, feature); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: feature %q", ErrConflict, req.Title)
		}
		return nil, fmt.Errorf("create feature: %w", err)
	}

	s.log.Info().Str("feature_id", feature.ID).Msg("Feature created")
	return feature, nil
}

// List returns feature cards ordered by display order
func (s *featureService) List(ctx context.Context, publishedOnly bool) ([]*models.Feature, error) {
	var published *bool
	if publishedOnly {
		t := true
		published = &t
	}

	features, err := s.features.List(ctx, published)
	if err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}
	return features, nil
}

// Update applies a partial update to a feature card
func (s *featureService) Update(ctx context.Context, id string, req *models.FeatureUpdateRequest) (*models.Feature, error) {
	feature, err := s.features.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get feature: %w", err)
	}
	if feature == nil {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		feature.Title = *req.Title
	}
	if req.Description != nil {
		feature.Description = *req.Description
	}
	if req.Icon != nil {
		feature.Icon = *req.Icon
	}
	if req.Order != nil {
		feature.Order = *req.Order
	}
	if req.Published != nil {
		feature.Published = *req.Published
	}
	feature.UpdatedAt = time.Now().UTC()

	if err := s.features.Update(ctx, feature); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: feature %q", ErrConflict, feature.Title)
		}
		return nil, fmt.Errorf("update feature: %w", err)
	}

	s.log.Info().Str("feature_id", id).Msg("Feature updated")
	return feature, nil
}

// Delete removes a feature card
func (s *featureService) Delete(ctx context.Context, id string) error {
	deleted, err := s.features.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete feature: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.log.Info().Str("feature_id", id).Msg("Feature deleted")
	return nil
}
