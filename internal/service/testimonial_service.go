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

// testimonialService is the concrete implementation of TestimonialService
type testimonialService struct {
	testimonials repository.TestimonialRepository
	log          zerolog.Logger
}

// newTestimonialService creates a new TestimonialService
func newTestimonialService(testimonials repository.TestimonialRepository, log zerolog.Logger) *testimonialService {
	return &testimonialService{
		testimonials: testimonials,
		log:          log.With().Str("service", "testimonial").Logger(),
	}
}

// Create creates a testimonial. Rating defaults to 5 and published to
// true when omitted.
func (s *testimonialService) Create(ctx context.Context, req *models.TestimonialCreateRequest) (*models.Testimonial, error) {
	rating := 5
	if req.Rating != nil {
		rating = *req.Rating
	}
	published := true
	if req.Published != nil {
		published = *req.Published
	}
	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	now := time.Now().UTC()
	testimonial := &models.Testimonial{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Designation: req.Designation,
		Company:     req.Company,
		Image:       req.Image,
		Content:     req.Content,
		Rating:      rating,
		Featured:    req.Featured,
		Published:   published,
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.testimonials.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}

	s.log.Info().Str("testimonial_id", testimonial.ID).Msg("Testimonial created")
	return testimonial, nil
}

// List returns testimonials matching the filter
func (s *testimonialService) List(ctx context.Context, filter models.TestimonialFilter) ([]*models.Testimonial, error) {
	testimonials, err := s.testimonials.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return testimonials, nil
}

// Update applies a partial update to a testimonial
func (s *testimonialService) Update(ctx context.Context, id string, req *models.TestimonialUpdateRequest) (*models.Testimonial, error) {
	testimonial, err := s.testimonials.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get testimonial: %w", err)
	}
	if testimonial == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		testimonial.Name = *req.Name
	}
	if req.Designation != nil {
		testimonial.Designation = *req.Designation
	}
	if req.Company != nil {
		testimonial.Company = *req.Company
	}
	if req.Image != nil {
		testimonial.Image = *req.Image
	}
	if req.Content != nil {
		testimonial.Content = *req.Content
	}
	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}
	if req.Featured != nil {
		testimonial.Featured = *req.Featured
	}
	if req.Published != nil {
		testimonial.Published = *req.Published
	}
	if req.Order != nil {
		testimonial.Order = *req.Order
	}
	testimonial.UpdatedAt = time.Now().UTC()

	if err := s.testimonials.Update(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}

	s.log.Info().Str("testimonial_id", id).Msg("Testimonial updated")
	return testimonial, nil
}

// Delete removes a testimonial
func (s *testimonialService) Delete(ctx context.Context, id string) error {
	deleted, err := s.testimonials.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.log.Info().Str("testimonial_id", id).Msg("Testimonial deleted")
	return nil
}
