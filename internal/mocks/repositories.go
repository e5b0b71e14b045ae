package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/repository"
)

// Verify interface compliance
var (
	_ repository.UserRepository        = (*MockUserRepository)(nil)
	_ repository.BlogRepository        = (*MockBlogRepository)(nil)
	_ repository.TagRepository         = (*MockTagRepository)(nil)
	_ repository.CommentRepository     = (*MockCommentRepository)(nil)
	_ repository.ContactRepository     = (*MockContactRepository)(nil)
	_ repository.NewsletterRepository  = (*MockNewsletterRepository)(nil)
	_ repository.FeatureRepository     = (*MockFeatureRepository)(nil)
	_ repository.TestimonialRepository = (*MockTestimonialRepository)(nil)
	_ repository.MenuRepository        = (*MockMenuRepository)(nil)
)

// MockUserRepository is an in-memory mock of UserRepository
type MockUserRepository struct {
	mu    sync.Mutex
	Users map[string]*models.User
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*models.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.Users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	c := *user
	m.Users[user.ID] = &c
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.Users[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.Users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) List(ctx context.Context, offset, limit int) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*models.User, 0, len(m.Users))
	for _, u := range m.Users {
		c := *u
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return window(all, offset, limit), nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Users), nil
}

// MockBlogRepository is an in-memory mock of BlogRepository. When Tags and
// Users are set, reads resolve tag records and the author reference the
// way the SQL repository's joins do.
type MockBlogRepository struct {
	mu       sync.Mutex
	Blogs    map[string]*models.Blog
	TagLinks map[string][]string
	Tags     *MockTagRepository
	Users    *MockUserRepository
}

func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{
		Blogs:    make(map[string]*models.Blog),
		TagLinks: make(map[string][]string),
	}
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *models.Blog, tagIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.Blogs {
		if b.Slug == blog.Slug {
			return repository.ErrDuplicate
		}
	}
	c := *blog
	m.Blogs[blog.ID] = &c
	m.TagLinks[blog.ID] = append([]string(nil), tagIDs...)
	return nil
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.Blogs[id]; ok {
		return m.hydrate(b), nil
	}
	return nil, nil
}

func (m *MockBlogRepository) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.Blogs {
		if b.Slug == slug {
			return m.hydrate(b), nil
		}
	}
	return nil, nil
}

func (m *MockBlogRepository) List(ctx context.Context, filter models.BlogFilter) ([]*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := make([]*models.Blog, 0, len(m.Blogs))
	for _, b := range m.Blogs {
		if m.matches(b, filter) {
			matched = append(matched, m.hydrate(b))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].PublishDate.After(matched[j].PublishDate) })
	return window(matched, filter.Offset, filter.Limit), nil
}

func (m *MockBlogRepository) Count(ctx context.Context, filter models.BlogFilter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, b := range m.Blogs {
		if m.matches(b, filter) {
			count++
		}
	}
	return count, nil
}

func (m *MockBlogRepository) Update(ctx context.Context, blog *models.Blog, tagIDs []string, replaceTags bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, b := range m.Blogs {
		if id != blog.ID && b.Slug == blog.Slug {
			return repository.ErrDuplicate
		}
	}
	c := *blog
	m.Blogs[blog.ID] = &c
	if replaceTags {
		m.TagLinks[blog.ID] = append([]string(nil), tagIDs...)
	}
	return nil
}

func (m *MockBlogRepository) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Blogs[id]; !ok {
		return false, nil
	}
	delete(m.Blogs, id)
	delete(m.TagLinks, id)
	return true, nil
}

func (m *MockBlogRepository) IncrementViews(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.Blogs[id]; ok {
		b.Views++
	}
	return nil
}

func (m *MockBlogRepository) matches(b *models.Blog, filter models.BlogFilter) bool {
	if filter.Published != nil && b.Published != *filter.Published {
		return false
	}
	if filter.Featured != nil && b.Featured != *filter.Featured {
		return false
	}
	if filter.Search != "" {
		q := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(b.Title), q) &&
			!strings.Contains(strings.ToLower(b.Excerpt), q) &&
			!strings.Contains(strings.ToLower(b.Content), q) {
			return false
		}
	}
	if filter.TagSlug != "" {
		if m.Tags == nil {
			return false
		}
		found := false
		for _, tagID := range m.TagLinks[b.ID] {
			if t := m.Tags.byID(tagID); t != nil && t.Slug == filter.TagSlug {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (m *MockBlogRepository) hydrate(b *models.Blog) *models.Blog {
	c := *b
	c.Tags = make([]*models.Tag, 0)
	if m.Tags != nil {
		for _, tagID := range m.TagLinks[b.ID] {
			if t := m.Tags.byID(tagID); t != nil {
				c.Tags = append(c.Tags, t)
			}
		}
		sort.Slice(c.Tags, func(i, j int) bool { return c.Tags[i].Name < c.Tags[j].Name })
	}
	if m.Users != nil {
		if u, _ := m.Users.GetByID(context.Background(), b.AuthorID); u != nil {
			c.Author = &models.AuthorRef{ID: u.ID, Name: u.Name, Email: u.Email}
		}
	}
	return &c
}

// MockTagRepository is an in-memory mock of TagRepository. It enforces the
// same name and slug uniqueness as the tags table, so racing creates see
// ErrDuplicate exactly as they would against Postgres.
type MockTagRepository struct {
	mu   sync.Mutex
	Tags map[string]*models.Tag
}

func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{Tags: make(map[string]*models.Tag)}
}

func (m *MockTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.Tags {
		if t.Name == tag.Name || t.Slug == tag.Slug {
			return repository.ErrDuplicate
		}
	}
	c := *tag
	m.Tags[tag.ID] = &c
	return nil
}

func (m *MockTagRepository) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	return m.byID(id), nil
}

func (m *MockTagRepository) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.Tags {
		if t.Slug == slug {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MockTagRepository) List(ctx context.Context) ([]*models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*models.Tag, 0, len(m.Tags))
	for _, t := range m.Tags {
		c := *t
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (m *MockTagRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Tags), nil
}

func (m *MockTagRepository) byID(id string) *models.Tag {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.Tags[id]; ok {
		c := *t
		return &c
	}
	return nil
}

// MockCommentRepository is an in-memory mock of CommentRepository
type MockCommentRepository struct {
	mu       sync.Mutex
	Comments map[string]*models.Comment
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{Comments: make(map[string]*models.Comment)}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *comment
	m.Comments[comment.ID] = &c
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.Comments[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *MockCommentRepository) ListByBlog(ctx context.Context, blogID string, approvedOnly bool) ([]*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := make([]*models.Comment, 0)
	for _, c := range m.Comments {
		if c.BlogID != blogID {
			continue
		}
		if approvedOnly && !c.Approved {
			continue
		}
		cp := *c
		matched = append(matched, &cp)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return matched, nil
}

func (m *MockCommentRepository) SetApproved(ctx context.Context, id string, approved bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Comments[id]
	if !ok {
		return false, nil
	}
	c.Approved = approved
	return true, nil
}

// MockContactRepository is an in-memory mock of ContactRepository
type MockContactRepository struct {
	mu       sync.Mutex
	Contacts map[string]*models.Contact
}

func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{Contacts: make(map[string]*models.Contact)}
}

func (m *MockContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *contact
	m.Contacts[contact.ID] = &c
	return nil
}

func (m *MockContactRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.Contacts[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *MockContactRepository) List(ctx context.Context, filter models.ContactFilter) ([]*models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := make([]*models.Contact, 0)
	for _, c := range m.Contacts {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		cp := *c
		matched = append(matched, &cp)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return window(matched, filter.Offset, filter.Limit), nil
}

func (m *MockContactRepository) Count(ctx context.Context, filter models.ContactFilter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, c := range m.Contacts {
		if filter.Status == "" || c.Status == filter.Status {
			count++
		}
	}
	return count, nil
}

func (m *MockContactRepository) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Contacts[id]
	if !ok {
		return false, nil
	}
	c.Status = status
	return true, nil
}

func (m *MockContactRepository) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Contacts[id]; !ok {
		return false, nil
	}
	delete(m.Contacts, id)
	return true, nil
}

// MockNewsletterRepository is an in-memory mock of NewsletterRepository
type MockNewsletterRepository struct {
	mu   sync.Mutex
	Subs map[string]*models.Newsletter
}

func NewMockNewsletterRepository() *MockNewsletterRepository {
	return &MockNewsletterRepository{Subs: make(map[string]*models.Newsletter)}
}

func (m *MockNewsletterRepository) Create(ctx context.Context, sub *models.Newsletter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.Subs {
		if s.Email == sub.Email {
			return repository.ErrDuplicate
		}
	}
	c := *sub
	m.Subs[sub.ID] = &c
	return nil
}

func (m *MockNewsletterRepository) GetByEmail(ctx context.Context, email string) (*models.Newsletter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.Subs {
		if s.Email == email {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MockNewsletterRepository) SetActive(ctx context.Context, email string, active bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.Subs {
		if s.Email == email {
			s.Active = active
			return true, nil
		}
	}
	return false, nil
}

func (m *MockNewsletterRepository) List(ctx context.Context, filter models.NewsletterFilter) ([]*models.Newsletter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := make([]*models.Newsletter, 0)
	for _, s := range m.Subs {
		if filter.Active != nil && s.Active != *filter.Active {
			continue
		}
		c := *s
		matched = append(matched, &c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return window(matched, filter.Offset, filter.Limit), nil
}

func (m *MockNewsletterRepository) Count(ctx context.Context, filter models.NewsletterFilter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, s := range m.Subs {
		if filter.Active == nil || s.Active == *filter.Active {
			count++
		}
	}
	return count, nil
}

// MockFeatureRepository is an in-memory mock of FeatureRepository
type MockFeatureRepository struct {
	mu       sync.Mutex
	Features map[string]*models.Feature
}

func NewMockFeatureRepository() *MockFeatureRepository {
	return &MockFeatureRepository{Features: make(map[string]*models.Feature)}
}

func (m *MockFeatureRepository) Create(ctx context.Context, feature *models.Feature) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.Features {
		if f.Title == feature.Title {
			return repository.ErrDuplicate
		}
	}
	c := *feature
	m.Features[feature.ID] = &c
	return nil
}

func (m *MockFeatureRepository) GetByID(ctx context.Context, id string) (*models.Feature, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.Features[id]; ok {
		c := *f
		return &c, nil
	}
	return nil, nil
}

func (m *MockFeatureRepository) List(ctx context.Context, published *bool) ([]*models.Feature, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := make([]*models.Feature, 0)
	for _, f := range m.Features {
		if published != nil && f.Published != *published {
			continue
		}
		c := *f
		matched = append(matched, &c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Order < matched[j].Order })
	return matched, nil
}

func (m *MockFeatureRepository) Update(ctx context.Context, feature *models.Feature) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, f := range m.Features {
		if id != feature.ID && f.Title == feature.Title {
			return repository.ErrDuplicate
		}
	}
	c := *feature
	m.Features[feature.ID] = &c
	return nil
}

func (m *MockFeatureRepository) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Features[id]; !ok {
		return false, nil
	}
	delete(m.Features, id)
	return true, nil
}

// MockTestimonialRepository is an in-memory mock of TestimonialRepository
type MockTestimonialRepository struct {
	mu           sync.Mutex
	Testimonials map[string]*models.Testimonial
}

func NewMockTestimonialRepository() *MockTestimonialRepository {
	return &MockTestimonialRepository{Testimonials: make(map[string]*models.Testimonial)}
}

func (m *MockTestimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *testimonial
	m.Testimonials[testimonial.ID] = &c
	return nil
}

func (m *MockTestimonialRepository) GetByID(ctx context.Context, id string) (*models.Testimonial, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.Testimonials[id]; ok {
		c := *t
		return &c, nil
	}
	return nil, nil
}

func (m *MockTestimonialRepository) List(ctx context.Context, filter models.TestimonialFilter) ([]*models.Testimonial, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := make([]*models.Testimonial, 0)
	for _, t := range m.Testimonials {
		if filter.Published != nil && t.Published != *filter.Published {
			continue
		}
		if filter.Featured != nil && t.Featured != *filter.Featured {
			continue
		}
		c := *t
		matched = append(matched, &c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Order < matched[j].Order })
	return matched, nil
}

func (m *MockTestimonialRepository) Update(ctx context.Context, testimonial *models.Testimonial) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *testimonial
	m.Testimonials[testimonial.ID] = &c
	return nil
}

func (m *MockTestimonialRepository) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Testimonials[id]; !ok {
		return false, nil
	}
	delete(m.Testimonials, id)
	return true, nil
}

// MockMenuRepository is an in-memory mock of MenuRepository
type MockMenuRepository struct {
	mu    sync.Mutex
	Items map[string]*models.MenuItem
}

func NewMockMenuRepository() *MockMenuRepository {
	return &MockMenuRepository{Items: make(map[string]*models.MenuItem)}
}

func (m *MockMenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *item
	m.Items[item.ID] = &c
	return nil
}

func (m *MockMenuRepository) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item, ok := m.Items[id]; ok {
		c := *item
		return &c, nil
	}
	return nil, nil
}

func (m *MockMenuRepository) List(ctx context.Context, publishedOnly bool) ([]*models.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := make([]*models.MenuItem, 0)
	for _, item := range m.Items {
		if publishedOnly && !item.Published {
			continue
		}
		c := *item
		matched = append(matched, &c)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Order != matched[j].Order {
			return matched[i].Order < matched[j].Order
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched, nil
}

func (m *MockMenuRepository) Update(ctx context.Context, item *models.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *item
	m.Items[item.ID] = &c
	return nil
}

func (m *MockMenuRepository) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Items[id]; !ok {
		return false, nil
	}
	delete(m.Items, id)
	return true, nil
}

// NewMockRepositories assembles all mocks into a Repositories aggregate
// with the blog mock wired to resolve tags and authors
func NewMockRepositories() (*repository.Repositories, *MockBlogRepository) {
	users := NewMockUserRepository()
	tags := NewMockTagRepository()
	blogs := NewMockBlogRepository()
	blogs.Tags = tags
	blogs.Users = users

	return &repository.Repositories{
		User:        users,
		Blog:        blogs,
		Tag:         tags,
		Comment:     NewMockCommentRepository(),
		Contact:     NewMockContactRepository(),
		Newsletter:  NewMockNewsletterRepository(),
		Feature:     NewMockFeatureRepository(),
		Testimonial: NewMockTestimonialRepository(),
		Menu:        NewMockMenuRepository(),
	}, blogs
}

// window applies offset and limit to a sorted slice
func window[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
