package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marketing-cms-api/internal/api"
	"github.com/marketing-cms-api/internal/auth"
	"github.com/marketing-cms-api/internal/config"
	"github.com/marketing-cms-api/internal/mocks"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/service"
	"github.com/rs/zerolog"
)

type testEnv struct {
	router     *gin.Engine
	services   *service.Services
	adminToken string
	userToken  string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos, _ := mocks.NewMockRepositories()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret-key-needs-32-characters!",
			JWTIssuer:  "marketing-cms-api",
			TokenTTL:   time.Hour,
			BcryptCost: 4,
		},
		Content: config.ContentConfig{
			DefaultPageSize: 10,
			MaxPageSize:     100,
			FeaturedLimit:   3,
		},
	}
	log := zerolog.Nop()
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	services := service.NewServices(repos, jwtManager, cfg, log)
	router := api.NewRouter(services, repos, jwtManager, cfg, log)

	ctx := context.Background()
	admin, err := services.Auth.CreateUser(ctx, &models.UserCreateRequest{
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: "supersecret",
		Role:     models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("seed admin failed: %v", err)
	}
	viewer, err := services.Auth.CreateUser(ctx, &models.UserCreateRequest{
		Email:    "viewer@example.com",
		Name:     "Viewer",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("seed viewer failed: %v", err)
	}

	adminToken, _ := jwtManager.Generate(admin.ID, admin.Email, admin.Role)
	userToken, _ := jwtManager.Generate(viewer.ID, viewer.Email, viewer.Role)

	return &testEnv{
		router:     router,
		services:   services,
		adminToken: adminToken,
		userToken:  userToken,
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope failed: %v (body %s)", err, w.Body.String())
	}
	return envelope
}

func TestHealthEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, "GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "marketing-cms-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestLoginEnvelope(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, "POST", "/v1/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "supersecret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (%s)", w.Code, w.Body.String())
	}

	envelope := decodeEnvelope(t, w)
	if envelope["success"] != true {
		t.Error("Expected success true")
	}
	data := envelope["data"].(map[string]interface{})
	if data["token"] == "" || data["token"] == nil {
		t.Error("Expected a token in the response")
	}
	user := data["user"].(map[string]interface{})
	if _, leaked := user["password"]; leaked {
		t.Error("Password hash must never be serialized")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, "POST", "/v1/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}

	envelope := decodeEnvelope(t, w)
	if envelope["success"] != false {
		t.Error("Expected success false")
	}
	if envelope["message"] == "" {
		t.Error("Expected an error message")
	}
}

func TestAdminGating(t *testing.T) {
	env := setupTestEnv(t)
	body := map[string]interface{}{
		"title":   "Gated Post",
		"content": "Body",
		"excerpt": "Teaser",
		"image":   "https://cdn.example.com/cover.png",
	}

	// No token
	w := env.do(t, "POST", "/v1/blogs", "", body)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without token, got %d", w.Code)
	}

	// Garbage token
	w = env.do(t, "POST", "/v1/blogs", "not-a-token", body)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 with a bad token, got %d", w.Code)
	}

	// Valid token, wrong role
	w = env.do(t, "POST", "/v1/blogs", env.userToken, body)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for USER role, got %d", w.Code)
	}

	// Admin passes
	w = env.do(t, "POST", "/v1/blogs", env.adminToken, body)
	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201 for ADMIN, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestValidationReportsAllFields(t *testing.T) {
	env := setupTestEnv(t)

	// Missing title and content plus a malformed image URL in one payload
	w := env.do(t, "POST", "/v1/blogs", env.adminToken, map[string]interface{}{
		"excerpt": "Teaser",
		"image":   "not-a-url",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	envelope := decodeEnvelope(t, w)
	if envelope["success"] != false {
		t.Error("Expected success false")
	}
	fieldErrors := envelope["errors"].([]interface{})
	if len(fieldErrors) != 3 {
		t.Errorf("Expected 3 field errors in one pass, got %d: %v", len(fieldErrors), fieldErrors)
	}

	fields := make(map[string]bool)
	for _, fe := range fieldErrors {
		fields[fe.(map[string]interface{})["field"].(string)] = true
	}
	for _, want := range []string{"title", "content", "image"} {
		if !fields[want] {
			t.Errorf("Expected a field error for %q", want)
		}
	}
}

func TestBlogLifecycle(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, "POST", "/v1/blogs", env.adminToken, map[string]interface{}{
		"title":     "9 Simple Ways!!",
		"content":   "Body",
		"excerpt":   "Teaser",
		"image":     "https://cdn.example.com/cover.png",
		"published": true,
		"tags":      []string{"Design", "design"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d (%s)", w.Code, w.Body.String())
	}

	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	if data["slug"] != "9-simple-ways" {
		t.Errorf("Expected slug 9-simple-ways, got %v", data["slug"])
	}
	// Case variants of a tag name share a slug and collapse to one tag
	if tags := data["tags"].([]interface{}); len(tags) != 1 {
		t.Errorf("Expected case-variant tag names to collapse to 1 tag, got %d", len(tags))
	}

	// Public read by slug counts a view
	w = env.do(t, "GET", "/v1/blogs/9-simple-ways", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	read := decodeEnvelope(t, w)["data"].(map[string]interface{})
	if read["views"] != float64(1) {
		t.Errorf("Expected 1 view after first read, got %v", read["views"])
	}
}

func TestDraftHiddenFromPublic(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, "POST", "/v1/blogs", env.adminToken, map[string]interface{}{
		"title":   "Secret Draft",
		"content": "Body",
		"excerpt": "Teaser",
		"image":   "https://cdn.example.com/cover.png",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", w.Code)
	}

	w = env.do(t, "GET", "/v1/blogs/secret-draft", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for a draft read publicly, got %d", w.Code)
	}

	w = env.do(t, "GET", "/v1/blogs/secret-draft", env.adminToken, nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for an admin draft read, got %d", w.Code)
	}
}

func TestPublishOnlyUpdateLeavesSlugAndTags(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, "POST", "/v1/blogs", env.adminToken, map[string]interface{}{
		"title":   "Stable Post",
		"content": "Body",
		"excerpt": "Teaser",
		"image":   "https://cdn.example.com/cover.png",
		"tags":    []string{"Tech"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", w.Code)
	}
	created := decodeEnvelope(t, w)["data"].(map[string]interface{})
	id := created["id"].(string)

	w = env.do(t, "PUT", "/v1/blogs/id/"+id, env.adminToken, map[string]interface{}{
		"published": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (%s)", w.Code, w.Body.String())
	}

	updated := decodeEnvelope(t, w)["data"].(map[string]interface{})
	if updated["published"] != true {
		t.Error("Expected post published")
	}
	if updated["slug"] != "stable-post" {
		t.Errorf("Expected slug untouched, got %v", updated["slug"])
	}
	if tags := updated["tags"].([]interface{}); len(tags) != 1 {
		t.Errorf("Expected tag links untouched, got %d tags", len(tags))
	}
}

func TestNewsletterDuplicateConflict(t *testing.T) {
	env := setupTestEnv(t)
	body := map[string]string{"email": "reader@example.com"}

	w := env.do(t, "POST", "/v1/newsletter", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d (%s)", w.Code, w.Body.String())
	}

	w = env.do(t, "POST", "/v1/newsletter", "", body)
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409 for duplicate subscribe, got %d", w.Code)
	}
	envelope := decodeEnvelope(t, w)
	if envelope["success"] != false {
		t.Error("Expected success false on conflict")
	}
}

func TestContactFormAndInbox(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, "POST", "/v1/contact", "", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "Hello",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d (%s)", w.Code, w.Body.String())
	}

	// The inbox is admin only
	w = env.do(t, "GET", "/v1/contact", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}

	w = env.do(t, "GET", "/v1/contact", env.adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("Expected 1 inbox message, got %d", len(items))
	}
	if items[0].(map[string]interface{})["status"] != "UNREAD" {
		t.Errorf("Expected UNREAD status, got %v", items[0].(map[string]interface{})["status"])
	}
}

func TestBlogListPaginationEnvelope(t *testing.T) {
	env := setupTestEnv(t)

	for i := 0; i < 3; i++ {
		w := env.do(t, "POST", "/v1/blogs", env.adminToken, map[string]interface{}{
			"title":     fmt.Sprintf("Post Number %d", i),
			"content":   "Body",
			"excerpt":   "Teaser",
			"image":     "https://cdn.example.com/cover.png",
			"published": true,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("Create failed: %d", w.Code)
		}
	}

	w := env.do(t, "GET", "/v1/blogs?page=1&limit=2", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(items))
	}
	pagination := data["pagination"].(map[string]interface{})
	if pagination["total_count"] != float64(3) {
		t.Errorf("Expected total_count 3, got %v", pagination["total_count"])
	}
	if pagination["total_pages"] != float64(2) {
		t.Errorf("Expected total_pages 2, got %v", pagination["total_pages"])
	}
}

func TestMenuTreeEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, "POST", "/v1/menu", env.adminToken, map[string]interface{}{"title": "Resources"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d (%s)", w.Code, w.Body.String())
	}
	parent := decodeEnvelope(t, w)["data"].(map[string]interface{})

	w = env.do(t, "POST", "/v1/menu", env.adminToken, map[string]interface{}{
		"title":     "Blog",
		"path":      "/blog",
		"parent_id": parent["id"],
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d (%s)", w.Code, w.Body.String())
	}

	w = env.do(t, "GET", "/v1/menu", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	tree := decodeEnvelope(t, w)["data"].([]interface{})
	if len(tree) != 1 {
		t.Fatalf("Expected 1 top-level item, got %d", len(tree))
	}
	children := tree[0].(map[string]interface{})["children"].([]interface{})
	if len(children) != 1 {
		t.Errorf("Expected 1 nested child, got %d", len(children))
	}
}

func TestProfileEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, "GET", "/v1/auth/profile", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without token, got %d", w.Code)
	}

	w = env.do(t, "GET", "/v1/auth/profile", env.userToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	if data["email"] != "viewer@example.com" {
		t.Errorf("Expected viewer profile, got %v", data["email"])
	}
}
