package repository

import (
	"context"

	"github.com/marketing-cms-api/internal/database"
	"github.com/marketing-cms-api/internal/models"
)

// UserRepository defines the interface for account data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, error)
	Count(ctx context.Context) (int, error)
}

// BlogRepository defines the interface for blog data operations.
// Lookups return (nil, nil) when no row matches.
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog, tagIDs []string) error
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)
	List(ctx context.Context, filter models.BlogFilter) ([]*models.Blog, error)
	Count(ctx context.Context, filter models.BlogFilter) (int, error)
	Update(ctx context.Context, blog *models.Blog, tagIDs []string, replaceTags bool) error
	Delete(ctx context.Context, id string) (bool, error)
	IncrementViews(ctx context.Context, id string) error
}

// TagRepository defines the interface for tag data operations.
// Create returns ErrDuplicate on a name or slug collision.
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByID(ctx context.Context, id string) (*models.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*models.Tag, error)
	List(ctx context.Context) ([]*models.Tag, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for blog comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	ListByBlog(ctx context.Context, blogID string, approvedOnly bool) ([]*models.Comment, error)
	SetApproved(ctx context.Context, id string, approved bool) (bool, error)
}

// ContactRepository defines the interface for contact inbox operations
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	List(ctx context.Context, filter models.ContactFilter) ([]*models.Contact, error)
	Count(ctx context.Context, filter models.ContactFilter) (int, error)
	UpdateStatus(ctx context.Context, id, status string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// NewsletterRepository defines the interface for subscription operations.
// Create returns ErrDuplicate when the email is already subscribed.
type NewsletterRepository interface {
	Create(ctx context.Context, sub *models.Newsletter) error
	GetByEmail(ctx context.Context, email string) (*models.Newsletter, error)
	SetActive(ctx context.Context, email string, active bool) (bool, error)
	List(ctx context.Context, filter models.NewsletterFilter) ([]*models.Newsletter, error)
	Count(ctx context.Context, filter models.NewsletterFilter) (int, error)
}

// FeatureRepository defines the interface for feature card operations
type FeatureRepository interface {
	Create(ctx context.Context, feature *models.Feature) error
	GetByID(ctx context.Context, id string) (*models.Feature, error)
	List(ctx context.Context, published *bool) ([]*models.Feature, error)
	Update(ctx context.Context, feature *models.Feature) error
	Delete(ctx context.Context, id string) (bool, error)
}

// TestimonialRepository defines the interface for testimonial operations
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	GetByID(ctx context.Context, id string) (*models.Testimonial, error)
	List(ctx context.Context, filter models.TestimonialFilter) ([]*models.Testimonial, error)
	Update(ctx context.Context, testimonial *models.Testimonial) error
	Delete(ctx context.Context, id string) (bool, error)
}

// MenuRepository defines the interface for navigation menu operations
type MenuRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
	List(ctx context.Context, publishedOnly bool) ([]*models.MenuItem, error)
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, id string) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User        UserRepository
	Blog        BlogRepository
	Tag         TagRepository
	Comment     CommentRepository
	Contact     ContactRepository
	Newsletter  NewsletterRepository
	Feature     FeatureRepository
	Testimonial TestimonialRepository
	Menu        MenuRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:        NewUserRepo(db),
		Blog:        NewBlogRepo(db),
		Tag:         NewTagRepo(db),
		Comment:     NewCommentRepo(db),
		Contact:     NewContactRepo(db),
		Newsletter:  NewNewsletterRepo(db),
		Feature:     NewFeatureRepo(db),
		Testimonial: NewTestimonialRepo(db),
		Menu:        NewMenuRepo(db),
	}
}
