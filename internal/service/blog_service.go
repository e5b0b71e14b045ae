package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/repository"
	"github.com/marketing-cms-api/internal/slug"
	"github.com/rs/zerolog"
)

// blogService is the concrete implementation of BlogService
type blogService struct {
	blogs    repository.BlogRepository
	comments repository.CommentRepository
	tags     TagService
	log      zerolog.Logger
}

// newBlogService creates a new BlogService
func newBlogService(repos *repository.Repositories, tags TagService, log zerolog.Logger) *blogService {
	return &blogService{
		blogs:    repos.Blog,
		comments: repos.Comment,
		tags:     tags,
		log:      log.With().Str("service", "blog").Logger(),
	}
}

// Create creates a blog post with a slug derived from the title and tag
// names resolved to tag records
func (s *blogService) Create(ctx context.Context, authorID string, req *models.BlogCreateRequest) (*models.Blog, error) {
	blogSlug := slug.Derive(req.Title)
	if blogSlug == "" {
		return nil, fmt.Errorf("%w: title %q", ErrInvalidSlug, req.Title)
	}

	tags, err := s.tags.Resolve(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	blog := &models.Blog{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Slug:        blogSlug,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Image:       req.Image,
		Published:   req.Published,
		Featured:    req.Featured,
		AuthorID:    authorID,
		PublishDate: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.blogs.Create(ctx, blog, tagIDs(tags)); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: slug %q", ErrConflict, blogSlug)
		}
		return nil, fmt.Errorf("create blog: %w", err)
	}

	s.log.Info().Str("blog_id", blog.ID).Str("slug", blogSlug).Msg("Blog created")

	// Reload to pick up the author reference alongside the stored row
	return s.GetByID(ctx, blog.ID)
}

// GetByID returns a post by ID regardless of published state
func (s *blogService) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	if blog == nil {
		return nil, ErrNotFound
	}
	return blog, nil
}

// GetBySlug returns a post by slug and counts the read as a view.
// Unpublished posts are hidden unless includeUnpublished is set.
func (s *blogService) GetBySlug(ctx context.Context, slugValue string, includeUnpublished bool) (*models.Blog, error) {
	blog, err := s.blogs.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, fmt.Errorf("get blog by slug: %w", err)
	}
	if blog == nil || (!blog.Published && !includeUnpublished) {
		return nil, ErrNotFound
	}

	if err := s.blogs.IncrementViews(ctx, blog.ID); err != nil {
		// A miscounted view must not fail the read
		s.log.Warn().Err(err).Str("blog_id", blog.ID).Msg("Failed to increment views")
	} else {
		blog.Views++
	}

	return blog, nil
}

// List returns a page of posts matching the filter with pagination metadata
func (s *blogService) List(ctx context.Context, filter models.BlogFilter, page, limit int) ([]*models.Blog, models.Pagination, error) {
	filter.Offset = (page - 1) * limit
	filter.Limit = limit

	blogs, err := s.blogs.List(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list blogs: %w", err)
	}

	total, err := s.blogs.Count(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("count blogs: %w", err)
	}

	return blogs, models.NewPagination(page, limit, total), nil
}

// Featured returns the most recent published featured posts
func (s *blogService) Featured(ctx context.Context, limit int) ([]*models.Blog, error) {
	published := true
	featured := true

	blogs, err := s.blogs.List(ctx, models.BlogFilter{
		Published: &published,
		Featured:  &featured,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list featured blogs: %w", err)
	}
	return blogs, nil
}

// Update applies a partial update. The slug is regenerated only when the
// title changes; a nil Tags leaves existing tag links untouched.
func (s *blogService) Update(ctx context.Context, id string, req *models.BlogUpdateRequest) (*models.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	if blog == nil {
		return nil, ErrNotFound
	}

	if req.Title != nil && *req.Title != blog.Title {
		newSlug := slug.Derive(*req.Title)
		if newSlug == "" {
			return nil, fmt.Errorf("%w: title %q", ErrInvalidSlug, *req.Title)
		}
		blog.Title = *req.Title
		blog.Slug = newSlug
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.Excerpt != nil {
		blog.Excerpt = *req.Excerpt
	}
	if req.Image != nil {
		blog.Image = *req.Image
	}
	if req.Published != nil {
		blog.Published = *req.Published
	}
	if req.Featured != nil {
		blog.Featured = *req.Featured
	}
	blog.UpdatedAt = time.Now().UTC()

	var ids []string
	replaceTags := false
	if req.Tags != nil {
		tags, err := s.tags.Resolve(ctx, *req.Tags)
		if err != nil {
			return nil, err
		}
		ids = tagIDs(tags)
		replaceTags = true
	}

	if err := s.blogs.Update(ctx, blog, ids, replaceTags); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: slug %q", ErrConflict, blog.Slug)
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}

	s.log.Info().Str("blog_id", id).Msg("Blog updated")
	return s.GetByID(ctx, id)
}

// Delete removes a post and its tag links and comments
func (s *blogService) Delete(ctx context.Context, id string) error {
	deleted, err := s.blogs.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.log.Info().Str("blog_id", id).Msg("Blog deleted")
	return nil
}

// Comments returns a post's comments, restricted to approved ones for
// public callers
func (s *blogService) Comments(ctx context.Context, blogID string, approvedOnly bool) ([]*models.Comment, error) {
	blog, err := s.blogs.GetByID(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	if blog == nil {
		return nil, ErrNotFound
	}

	comments, err := s.comments.ListByBlog(ctx, blogID, approvedOnly)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// AddComment submits a comment on a published post. Comments start
// unapproved.
func (s *blogService) AddComment(ctx context.Context, blogID string, req *models.CommentCreateRequest) (*models.Comment, error) {
	blog, err := s.blogs.GetByID(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	if blog == nil || !blog.Published {
		return nil, ErrNotFound
	}

	now := time.Now().UTC()
	comment := &models.Comment{
		ID:          uuid.New().String(),
		BlogID:      blogID,
		Content:     req.Content,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Approved:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info().Str("comment_id", comment.ID).Str("blog_id", blogID).Msg("Comment submitted")
	return comment, nil
}

// ApproveComment marks a comment as publicly visible
func (s *blogService) ApproveComment(ctx context.Context, id string) (*models.Comment, error) {
	updated, err := s.comments.SetApproved(ctx, id, true)
	if err != nil {
		return nil, fmt.Errorf("approve comment: %w", err)
	}
	if !updated {
		return nil, ErrNotFound
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if comment == nil {
		return nil, ErrNotFound
	}

	s.log.Info().Str("comment_id", id).Msg("Comment approved")
	return comment, nil
}

func tagIDs(tags []*models.Tag) []string {
	ids := make([]string, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	return ids
}
