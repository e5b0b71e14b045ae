package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/marketing-cms-api/internal/auth"
	"github.com/marketing-cms-api/internal/config"
	"github.com/marketing-cms-api/internal/mocks"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/repository"
	"github.com/marketing-cms-api/internal/service"
	"github.com/rs/zerolog"
)

func newTestServices(t *testing.T) (*service.Services, *repository.Repositories) {
	t.Helper()
	repos, _ := mocks.NewMockRepositories()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret-key-needs-32-characters!",
			JWTIssuer:  "marketing-cms-api",
			TokenTTL:   time.Hour,
			BcryptCost: 4,
		},
	}
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	return service.NewServices(repos, jwtManager, cfg, zerolog.Nop()), repos
}

func seedAdmin(t *testing.T, svcs *service.Services) *models.User {
	t.Helper()
	user, err := svcs.Auth.CreateUser(context.Background(), &models.UserCreateRequest{
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: "supersecret",
		Role:     models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestAuthService_Login(t *testing.T) {
	svcs, _ := newTestServices(t)
	seedAdmin(t, svcs)
	ctx := context.Background()

	resp, err := svcs.Auth.Login(ctx, &models.LoginRequest{
		Email:    "Admin@Example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("Expected a token")
	}
	if resp.User.Role != models.RoleAdmin {
		t.Errorf("Expected ADMIN role, got %s", resp.User.Role)
	}

	_, err = svcs.Auth.Login(ctx, &models.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}

	_, err = svcs.Auth.Login(ctx, &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_CreateUserDuplicateEmail(t *testing.T) {
	svcs, _ := newTestServices(t)
	seedAdmin(t, svcs)

	_, err := svcs.Auth.CreateUser(context.Background(), &models.UserCreateRequest{
		Email:    "admin@example.com",
		Name:     "Other",
		Password: "password123",
	})
	if !errors.Is(err, service.ErrConflict) {
		t.Errorf("Expected ErrConflict, got %v", err)
	}
}

func TestTagService_ResolveCreatesAndReuses(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	tags, err := svcs.Tag.Resolve(ctx, []string{" Tech ", "Design", "Tech"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("Expected 2 tags after trimming and de-duplication, got %d", len(tags))
	}
	if tags[0].Name != "Tech" || tags[1].Name != "Design" {
		t.Errorf("Expected input order preserved, got %q, %q", tags[0].Name, tags[1].Name)
	}
	if tags[0].Slug != "tech" {
		t.Errorf("Expected slug tech, got %q", tags[0].Slug)
	}
	if tags[0].Color != models.DefaultTagColor {
		t.Errorf("Expected default color, got %q", tags[0].Color)
	}

	// A second resolve must return the same records, not new ones
	again, err := svcs.Tag.Resolve(ctx, []string{"Tech"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if again[0].ID != tags[0].ID {
		t.Errorf("Expected same tag ID %s, got %s", tags[0].ID, again[0].ID)
	}

	// Case variants derive the same slug and reuse the stored tag; the
	// original name and color are not overwritten by the lookup
	mixed, err := svcs.Tag.Resolve(ctx, []string{"tech", "TECH"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(mixed) != 1 {
		t.Fatalf("Expected case variants to collapse to 1 tag, got %d", len(mixed))
	}
	if mixed[0].ID != tags[0].ID {
		t.Errorf("Expected existing tag %s, got %s", tags[0].ID, mixed[0].ID)
	}
	if mixed[0].Name != "Tech" {
		t.Errorf("Expected stored name Tech preserved, got %q", mixed[0].Name)
	}

	count, _ := repos.Tag.Count(ctx)
	if count != 2 {
		t.Errorf("Expected 2 tag rows in total, got %d", count)
	}
}

func TestTagService_ResolveConcurrent(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	const workers = 8
	results := make([]*models.Tag, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tags, err := svcs.Tag.Resolve(ctx, []string{"NewTag"})
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = tags[0]
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("worker %d: Resolve failed: %v", i, err)
		}
	}
	for i := 1; i < workers; i++ {
		if results[i].ID != results[0].ID {
			t.Errorf("worker %d resolved a different tag ID", i)
		}
	}

	count, _ := repos.Tag.Count(ctx)
	if count != 1 {
		t.Errorf("Expected exactly 1 tag row, got %d", count)
	}
}

func TestTagService_ResolveEmptySlug(t *testing.T) {
	svcs, _ := newTestServices(t)

	_, err := svcs.Tag.Resolve(context.Background(), []string{"!!!"})
	if !errors.Is(err, service.ErrInvalidSlug) {
		t.Errorf("Expected ErrInvalidSlug, got %v", err)
	}
}

func TestBlogService_CreateDerivesSlug(t *testing.T) {
	svcs, _ := newTestServices(t)
	admin := seedAdmin(t, svcs)
	ctx := context.Background()

	blog, err := svcs.Blog.Create(ctx, admin.ID, &models.BlogCreateRequest{
		Title:     "9 Simple Ways!!",
		Content:   "Body",
		Excerpt:   "Teaser",
		Image:     "https://cdn.example.com/cover.png",
		Published: true,
		Tags:      []string{"Productivity"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if blog.Slug != "9-simple-ways" {
		t.Errorf("Expected slug 9-simple-ways, got %q", blog.Slug)
	}
	if len(blog.Tags) != 1 || blog.Tags[0].Slug != "productivity" {
		t.Errorf("Expected resolved tag productivity, got %+v", blog.Tags)
	}
	if blog.Author == nil || blog.Author.ID != admin.ID {
		t.Errorf("Expected author reference for %s, got %+v", admin.ID, blog.Author)
	}
	if blog.Views != 0 {
		t.Errorf("Expected 0 views on a new post, got %d", blog.Views)
	}
}

func TestBlogService_CreateDuplicateSlug(t *testing.T) {
	svcs, _ := newTestServices(t)
	admin := seedAdmin(t, svcs)
	ctx := context.Background()

	req := &models.BlogCreateRequest{
		Title:   "Same Title",
		Content: "Body",
		Excerpt: "Teaser",
		Image:   "https://cdn.example.com/cover.png",
	}
	if _, err := svcs.Blog.Create(ctx, admin.ID, req); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	_, err := svcs.Blog.Create(ctx, admin.ID, req)
	if !errors.Is(err, service.ErrConflict) {
		t.Errorf("Expected ErrConflict for duplicate slug, got %v", err)
	}
}

func TestBlogService_GetBySlugCountsViews(t *testing.T) {
	svcs, _ := newTestServices(t)
	admin := seedAdmin(t, svcs)
	ctx := context.Background()

	created, err := svcs.Blog.Create(ctx, admin.ID, &models.BlogCreateRequest{
		Title:     "Read Me",
		Content:   "Body",
		Excerpt:   "Teaser",
		Image:     "https://cdn.example.com/cover.png",
		Published: true,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	first, err := svcs.Blog.GetBySlug(ctx, created.Slug, false)
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if first.Views != 1 {
		t.Errorf("Expected 1 view after first read, got %d", first.Views)
	}

	second, _ := svcs.Blog.GetBySlug(ctx, created.Slug, false)
	if second.Views != 2 {
		t.Errorf("Expected 2 views after second read, got %d", second.Views)
	}
}

func TestBlogService_GetBySlugHidesUnpublished(t *testing.T) {
	svcs, _ := newTestServices(t)
	admin := seedAdmin(t, svcs)
	ctx := context.Background()

	created, err := svcs.Blog.Create(ctx, admin.ID, &models.BlogCreateRequest{
		Title:   "Draft Post",
		Content: "Body",
		Excerpt: "Teaser",
		Image:   "https://cdn.example.com/cover.png",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svcs.Blog.GetBySlug(ctx, created.Slug, false); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a draft read publicly, got %v", err)
	}

	blog, err := svcs.Blog.GetBySlug(ctx, created.Slug, true)
	if err != nil {
		t.Fatalf("Admin read of draft failed: %v", err)
	}
	if blog.Slug != created.Slug {
		t.Errorf("Expected slug %q, got %q", created.Slug, blog.Slug)
	}
}

func TestBlogService_UpdatePartialKeepsSlugAndTags(t *testing.T) {
	svcs, _ := newTestServices(t)
	admin := seedAdmin(t, svcs)
	ctx := context.Background()

	created, err := svcs.Blog.Create(ctx, admin.ID, &models.BlogCreateRequest{
		Title:   "Original Title",
		Content: "Body",
		Excerpt: "Teaser",
		Image:   "https://cdn.example.com/cover.png",
		Tags:    []string{"Tech", "Design"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	published := true
	updated, err := svcs.Blog.Update(ctx, created.ID, &models.BlogUpdateRequest{
		Published: &published,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated.Published {
		t.Error("Expected post to be published")
	}
	if updated.Slug != created.Slug {
		t.Errorf("Expected slug unchanged, got %q", updated.Slug)
	}
	if len(updated.Tags) != 2 {
		t.Errorf("Expected tag links untouched, got %d tags", len(updated.Tags))
	}
}

func TestBlogService_UpdateTitleRegeneratesSlug(t *testing.T) {
	svcs, _ := newTestServices(t)
	admin := seedAdmin(t, svcs)
	ctx := context.Background()

	created, err := svcs.Blog.Create(ctx, admin.ID, &models.BlogCreateRequest{
		Title:   "Old Title",
		Content: "Body",
		Excerpt: "Teaser",
		Image:   "https://cdn.example.com/cover.png",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	title := "Brand New Title"
	updated, err := svcs.Blog.Update(ctx, created.ID, &models.BlogUpdateRequest{Title: &title})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Slug != "brand-new-title" {
		t.Errorf("Expected regenerated slug brand-new-title, got %q", updated.Slug)
	}

	// Re-sending the same title must not touch the slug
	same, err := svcs.Blog.Update(ctx, created.ID, &models.BlogUpdateRequest{Title: &title})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if same.Slug != "brand-new-title" {
		t.Errorf("Expected slug stable on unchanged title, got %q", same.Slug)
	}
}

func TestBlogService_UpdateReplaceTags(t *testing.T) {
	svcs, _ := newTestServices(t)
	admin := seedAdmin(t, svcs)
	ctx := context.Background()

	created, err := svcs.Blog.Create(ctx, admin.ID, &models.BlogCreateRequest{
		Title:   "Tagged Post",
		Content: "Body",
		Excerpt: "Teaser",
		Image:   "https://cdn.example.com/cover.png",
		Tags:    []string{"Tech"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newTags := []string{"Go", "Cloud"}
	updated, err := svcs.Blog.Update(ctx, created.ID, &models.BlogUpdateRequest{Tags: &newTags})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(updated.Tags) != 2 {
		t.Fatalf("Expected 2 tags after replacement, got %d", len(updated.Tags))
	}
	for _, tag := range updated.Tags {
		if tag.Slug == "tech" {
			t.Error("Expected old tag link removed")
		}
	}
}

func TestBlogService_Comments(t *testing.T) {
	svcs, _ := newTestServices(t)
	admin := seedAdmin(t, svcs)
	ctx := context.Background()

	blog, err := svcs.Blog.Create(ctx, admin.ID, &models.BlogCreateRequest{
		Title:     "Discussed Post",
		Content:   "Body",
		Excerpt:   "Teaser",
		Image:     "https://cdn.example.com/cover.png",
		Published: true,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	comment, err := svcs.Blog.AddComment(ctx, blog.ID, &models.CommentCreateRequest{
		Content:     "Great read",
		AuthorName:  "Reader",
		AuthorEmail: "reader@example.com",
	})
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if comment.Approved {
		t.Error("Expected new comment to start unapproved")
	}

	public, err := svcs.Blog.Comments(ctx, blog.ID, true)
	if err != nil {
		t.Fatalf("Comments failed: %v", err)
	}
	if len(public) != 0 {
		t.Errorf("Expected no approved comments yet, got %d", len(public))
	}

	if _, err := svcs.Blog.ApproveComment(ctx, comment.ID); err != nil {
		t.Fatalf("ApproveComment failed: %v", err)
	}

	public, _ = svcs.Blog.Comments(ctx, blog.ID, true)
	if len(public) != 1 {
		t.Errorf("Expected 1 approved comment, got %d", len(public))
	}
}

func TestBlogService_ListPagination(t *testing.T) {
	svcs, _ := newTestServices(t)
	admin := seedAdmin(t, svcs)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svcs.Blog.Create(ctx, admin.ID, &models.BlogCreateRequest{
			Title:     fmt.Sprintf("Post %d", i),
			Content:   "Body",
			Excerpt:   "Teaser",
			Image:     "https://cdn.example.com/cover.png",
			Published: true,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	published := true
	blogs, pagination, err := svcs.Blog.List(ctx, models.BlogFilter{Published: &published}, 2, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(blogs) != 2 {
		t.Errorf("Expected 2 blogs on page 2, got %d", len(blogs))
	}
	if pagination.TotalCount != 5 {
		t.Errorf("Expected total count 5, got %d", pagination.TotalCount)
	}
	if pagination.TotalPages != 3 {
		t.Errorf("Expected 3 total pages, got %d", pagination.TotalPages)
	}
}

func TestNewsletterService_SubscribeAndConflict(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	sub, err := svcs.Newsletter.Subscribe(ctx, "Reader@Example.com")
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if sub.Email != "reader@example.com" {
		t.Errorf("Expected normalized email, got %q", sub.Email)
	}
	if !sub.Active {
		t.Error("Expected subscription to be active")
	}

	_, err = svcs.Newsletter.Subscribe(ctx, "reader@example.com")
	if !errors.Is(err, service.ErrConflict) {
		t.Errorf("Expected ErrConflict for duplicate subscribe, got %v", err)
	}
}

func TestNewsletterService_UnsubscribeAndResubscribe(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := svcs.Newsletter.Subscribe(ctx, "reader@example.com"); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if err := svcs.Newsletter.Unsubscribe(ctx, "reader@example.com"); err != nil {
		t.Fatalf("Unsubscribe failed: %v", err)
	}
	if err := svcs.Newsletter.Unsubscribe(ctx, "ghost@example.com"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown email, got %v", err)
	}

	// Subscribing again reactivates the row
	sub, err := svcs.Newsletter.Subscribe(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("Resubscribe failed: %v", err)
	}
	if !sub.Active {
		t.Error("Expected subscription reactivated")
	}
}

func TestContactService_InboxWorkflow(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	contact, err := svcs.Contact.Submit(ctx, &models.ContactCreateRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello there",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if contact.Status != models.ContactStatusUnread {
		t.Errorf("Expected UNREAD status, got %s", contact.Status)
	}

	updated, err := svcs.Contact.UpdateStatus(ctx, contact.ID, models.ContactStatusRead)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != models.ContactStatusRead {
		t.Errorf("Expected READ status, got %s", updated.Status)
	}

	if _, err := svcs.Contact.UpdateStatus(ctx, "missing", models.ContactStatusRead); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown contact, got %v", err)
	}
}

func TestTestimonialService_Defaults(t *testing.T) {
	svcs, _ := newTestServices(t)

	testimonial, err := svcs.Testimonial.Create(context.Background(), &models.TestimonialCreateRequest{
		Name:        "Customer",
		Designation: "CTO",
		Image:       "https://cdn.example.com/avatar.png",
		Content:     "Works great",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if testimonial.Rating != 5 {
		t.Errorf("Expected default rating 5, got %d", testimonial.Rating)
	}
	if !testimonial.Published {
		t.Error("Expected published to default to true")
	}
}

func TestFeatureService_Defaults(t *testing.T) {
	svcs, _ := newTestServices(t)

	feature, err := svcs.Feature.Create(context.Background(), &models.FeatureCreateRequest{
		Title:       "Fast Builds",
		Description: "Ship quicker",
		Icon:        "bolt",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !feature.Published {
		t.Error("Expected published to default to true")
	}
	if feature.Order != 0 {
		t.Errorf("Expected default order 0, got %d", feature.Order)
	}
}

func TestMenuService_Tree(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	parent, err := svcs.Menu.Create(ctx, &models.MenuItemCreateRequest{Title: "Resources"})
	if err != nil {
		t.Fatalf("Create parent failed: %v", err)
	}

	childOrder := 1
	_, err = svcs.Menu.Create(ctx, &models.MenuItemCreateRequest{
		Title:    "Blog",
		Path:     "/blog",
		Order:    &childOrder,
		ParentID: &parent.ID,
	})
	if err != nil {
		t.Fatalf("Create child failed: %v", err)
	}

	unpublished := false
	_, err = svcs.Menu.Create(ctx, &models.MenuItemCreateRequest{
		Title:     "Hidden",
		ParentID:  &parent.ID,
		Published: &unpublished,
	})
	if err != nil {
		t.Fatalf("Create hidden child failed: %v", err)
	}

	tree, err := svcs.Menu.Tree(ctx, true)
	if err != nil {
		t.Fatalf("Tree failed: %v", err)
	}
	if len(tree) != 1 {
		t.Fatalf("Expected 1 top-level item, got %d", len(tree))
	}
	if len(tree[0].Children) != 1 {
		t.Errorf("Expected 1 published child, got %d", len(tree[0].Children))
	}

	adminTree, _ := svcs.Menu.Tree(ctx, false)
	if len(adminTree[0].Children) != 2 {
		t.Errorf("Expected 2 children in the admin view, got %d", len(adminTree[0].Children))
	}
}

func TestMenuService_RejectsNestedParent(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	parent, err := svcs.Menu.Create(ctx, &models.MenuItemCreateRequest{Title: "Top"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	child, err := svcs.Menu.Create(ctx, &models.MenuItemCreateRequest{Title: "Middle", ParentID: &parent.ID})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// A child cannot itself be a parent; nesting is one level deep
	_, err = svcs.Menu.Create(ctx, &models.MenuItemCreateRequest{Title: "Deep", ParentID: &child.ID})
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a nested parent, got %v", err)
	}
}
