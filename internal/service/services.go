package service

import (
	"context"

	"github.com/marketing-cms-api/internal/auth"
	"github.com/marketing-cms-api/internal/config"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for authentication and account management
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
	CreateUser(ctx context.Context, req *models.UserCreateRequest) (*models.User, error)
	ListUsers(ctx context.Context, page, limit int) ([]*models.User, models.Pagination, error)
}

// BlogService defines the interface for blog content operations
type BlogService interface {
	Create(ctx context.Context, authorID string, req *models.BlogCreateRequest) (*models.Blog, error)
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	GetBySlug(ctx context.Context, slug string, includeUnpublished bool) (*models.Blog, error)
	List(ctx context.Context, filter models.BlogFilter, page, limit int) ([]*models.Blog, models.Pagination, error)
	Featured(ctx context.Context, limit int) ([]*models.Blog, error)
	Update(ctx context.Context, id string, req *models.BlogUpdateRequest) (*models.Blog, error)
	Delete(ctx context.Context, id string) error
	Comments(ctx context.Context, blogID string, approvedOnly bool) ([]*models.Comment, error)
	AddComment(ctx context.Context, blogID string, req *models.CommentCreateRequest) (*models.Comment, error)
	ApproveComment(ctx context.Context, id string) (*models.Comment, error)
}

// TagService defines the interface for tag operations. Resolve implements
// the create-if-absent semantics used by blog writes.
type TagService interface {
	Resolve(ctx context.Context, names []string) ([]*models.Tag, error)
	Create(ctx context.Context, req *models.TagCreateRequest) (*models.Tag, error)
	List(ctx context.Context) ([]*models.Tag, error)
}

// ContactService defines the interface for the contact inbox
type ContactService interface {
	Submit(ctx context.Context, req *models.ContactCreateRequest) (*models.Contact, error)
	Get(ctx context.Context, id string) (*models.Contact, error)
	List(ctx context.Context, filter models.ContactFilter, page, limit int) ([]*models.Contact, models.Pagination, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Contact, error)
	Delete(ctx context.Context, id string) error
}

// NewsletterService defines the interface for subscription management
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (*models.Newsletter, error)
	Unsubscribe(ctx context.Context, email string) error
	List(ctx context.Context, filter models.NewsletterFilter, page, limit int) ([]*models.Newsletter, models.Pagination, error)
}

// FeatureService defines the interface for feature card management
type FeatureService interface {
	Create(ctx context.Context, req *models.FeatureCreateRequest) (*models.Feature, error)
	List(ctx context.Context, publishedOnly bool) ([]*models.Feature, error)
	Update(ctx context.Context, id string, req *models.FeatureUpdateRequest) (*models.Feature, error)
	Delete(ctx context.Context, id string) error
}

// TestimonialService defines the interface for testimonial management
type TestimonialService interface {
	Create(ctx context.Context, req *models.TestimonialCreateRequest) (*models.Testimonial, error)
	List(ctx context.Context, filter models.TestimonialFilter) ([]*models.Testimonial, error)
	Update(ctx context.Context, id string, req *models.TestimonialUpdateRequest) (*models.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

// MenuService defines the interface for navigation menu management
type MenuService interface {
	Create(ctx context.Context, req *models.MenuItemCreateRequest) (*models.MenuItem, error)
	Tree(ctx context.Context, publishedOnly bool) ([]*models.MenuItem, error)
	Update(ctx context.Context, id string, req *models.MenuItemUpdateRequest) (*models.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

// Services holds all service interfaces
type Services struct {
	Auth        AuthService
	Blog        BlogService
	Tag         TagService
	Contact     ContactService
	Newsletter  NewsletterService
	Feature     FeatureService
	Testimonial TestimonialService
	Menu        MenuService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, jwtManager *auth.JWTManager, cfg *config.Config, log zerolog.Logger) *Services {
	tagSvc := newTagService(repos.Tag, log)

	return &Services{
		Auth:        newAuthService(repos.User, jwtManager, cfg, log),
		Blog:        newBlogService(repos, tagSvc, log),
		Tag:         tagSvc,
		Contact:     newContactService(repos.Contact, log),
		Newsletter:  newNewsletterService(repos.Newsletter, log),
		Feature:     newFeatureService(repos.Feature, log),
		Testimonial: newTestimonialService(repos.Testimonial, log),
		Menu:        newMenuService(repos.Menu, log),
	}
}
