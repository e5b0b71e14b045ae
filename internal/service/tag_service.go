package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/repository"
	"github.com/marketing-cms-api/internal/slug"
	"github.com/rs/zerolog"
)

// tagService is the concrete implementation of TagService
type tagService struct {
	tags repository.TagRepository
	log  zerolog.Logger
}

// newTagService creates a new TagService
func newTagService(tags repository.TagRepository, log zerolog.Logger) *tagService {
	return &tagService{
		tags: tags,
		log:  log.With().Str("service", "tag").Logger(),
	}
}

// Resolve maps tag names to tag records, creating any that do not exist
// yet. Names are trimmed and de-duplicated while preserving order; matching
// is by derived slug, so names differing only in case or punctuation resolve
// to the same tag and the stored name and color stay as the first writer set
// them. A create that loses a race to a concurrent insert falls back to
// re-reading the winner's row, so both callers end up with the same tag.
func (s *tagService) Resolve(ctx context.Context, names []string) ([]*models.Tag, error) {
	seen := make(map[string]bool, len(names))
	resolved := make([]*models.Tag, 0, len(names))

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		tagSlug := slug.Derive(name)
		if tagSlug == "" {
			return nil, fmt.Errorf("%w: tag %q", ErrInvalidSlug, name)
		}
		if seen[tagSlug] {
			continue
		}
		seen[tagSlug] = true

		tag, err := s.resolveOne(ctx, name, tagSlug)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, tag)
	}

	return resolved, nil
}

func (s *tagService) resolveOne(ctx context.Context, name, tagSlug string) (*models.Tag, error) {
	tag, err := s.tags.GetBySlug(ctx, tagSlug)
	if err != nil {
		return nil, fmt.Errorf("get tag %q: %w", tagSlug, err)
	}
	if tag != nil {
		return tag, nil
	}

	tag = &models.Tag{
		ID:    uuid.New().String(),
		Name:  name,
		Slug:  tagSlug,
		Color: models.DefaultTagColor,
	}

	err = s.tags.Create(ctx, tag)
	if err == nil {
		s.log.Info().Str("tag_id", tag.ID).Str("name", name).Msg("Tag created")
		return tag, nil
	}
	if !errors.Is(err, repository.ErrDuplicate) {
		return nil, fmt.Errorf("create tag %q: %w", name, err)
	}

	// Lost the race to a concurrent create; the winner's row is our tag
	existing, getErr := s.tags.GetBySlug(ctx, tagSlug)
	if getErr != nil {
		return nil, fmt.Errorf("get tag %q after conflict: %w", tagSlug, getErr)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: tag %q", ErrConflict, name)
	}

	return existing, nil
}

// Create creates a tag explicitly with an optional color override
func (s *tagService) Create(ctx context.Context, req *models.TagCreateRequest) (*models.Tag, error) {
	name := strings.TrimSpace(req.Name)

	tagSlug := slug.Derive(name)
	if tagSlug == "" {
		return nil, fmt.Errorf("%w: tag %q", ErrInvalidSlug, name)
	}

	color := req.Color
	if color == "" {
		color = models.DefaultTagColor
	}

	tag := &models.Tag{
		ID:    uuid.New().String(),
		Name:  name,
		Slug:  tagSlug,
		Color: color,
	}

	if err := s.tags.Create(ctx, tag); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: tag %q", ErrConflict, name)
		}
		return nil, fmt.Errorf("create tag: %w", err)
	}

	s.log.Info().Str("tag_id", tag.ID).Str("name", name).Msg("Tag created")
	return tag, nil
}

// List returns all tags ordered by name
func (s *tagService) List(ctx context.Context) ([]*models.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}
