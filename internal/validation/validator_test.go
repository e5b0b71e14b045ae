package validation

import (
	"testing"

	"github.com/marketing-cms-api/internal/models"
)

func fieldSet(errs []FieldError) map[string]bool {
	fields := make(map[string]bool, len(errs))
	for _, e := range errs {
		fields[e.Field] = true
	}
	return fields
}

func TestValidateBlogCreate(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		req        *models.BlogCreateRequest
		wantErrors int
		wantFields []string
	}{
		{
			name: "valid request",
			req: &models.BlogCreateRequest{
				Title:   "Launch Day",
				Content: "We are live.",
				Excerpt: "We are live",
				Image:   "https://cdn.example.com/launch.png",
				Tags:    []string{"News"},
			},
			wantErrors: 0,
		},
		{
			name: "missing title and content",
			req: &models.BlogCreateRequest{
				Excerpt: "short",
				Image:   "https://cdn.example.com/launch.png",
			},
			wantErrors: 2,
			wantFields: []string{"title", "content"},
		},
		{
			name: "image must be a URL",
			req: &models.BlogCreateRequest{
				Title:   "Launch Day",
				Content: "We are live.",
				Excerpt: "short",
				Image:   "not-a-url",
			},
			wantErrors: 1,
			wantFields: []string{"image"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Struct(tt.req)
			if len(errs) != tt.wantErrors {
				t.Fatalf("expected %d errors, got %d: %+v", tt.wantErrors, len(errs), errs)
			}
			fields := fieldSet(errs)
			for _, f := range tt.wantFields {
				if !fields[f] {
					t.Errorf("expected error on field %q, got %+v", f, errs)
				}
			}
		})
	}
}

func TestValidateTestimonialReportsAllErrors(t *testing.T) {
	v := New()

	// Missing name plus an out-of-range rating must both appear in a
	// single response.
	rating := 9
	errs := v.Struct(&models.TestimonialCreateRequest{
		Designation: "CTO",
		Image:       "https://cdn.example.com/avatar.png",
		Content:     "Great product",
		Rating:      &rating,
	})

	fields := fieldSet(errs)
	if !fields["name"] {
		t.Errorf("expected error on name, got %+v", errs)
	}
	if !fields["rating"] {
		t.Errorf("expected error on rating, got %+v", errs)
	}
}

func TestValidateRatingRangeRejectedNotClamped(t *testing.T) {
	v := New()

	for _, rating := range []int{0, 6, -1} {
		r := rating
		errs := v.Struct(&models.TestimonialCreateRequest{
			Name:        "Jordan",
			Designation: "CTO",
			Image:       "https://cdn.example.com/avatar.png",
			Content:     "Great product",
			Rating:      &r,
		})
		if len(errs) == 0 {
			t.Errorf("rating %d should be rejected", rating)
		}
	}

	// Boundary values pass
	for _, rating := range []int{1, 5} {
		r := rating
		errs := v.Struct(&models.TestimonialCreateRequest{
			Name:        "Jordan",
			Designation: "CTO",
			Image:       "https://cdn.example.com/avatar.png",
			Content:     "Great product",
			Rating:      &r,
		})
		if len(errs) != 0 {
			t.Errorf("rating %d should be accepted, got %+v", rating, errs)
		}
	}
}

func TestValidatePartialUpdateSkipsAbsentFields(t *testing.T) {
	v := New()

	// Empty update is valid: every field optional
	if errs := v.Struct(&models.BlogUpdateRequest{}); len(errs) != 0 {
		t.Fatalf("empty update should be valid, got %+v", errs)
	}

	// Present fields still carry their constraints
	empty := ""
	errs := v.Struct(&models.BlogUpdateRequest{Title: &empty})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error for empty title, got %+v", errs)
	}
	if errs[0].Field != "title" {
		t.Errorf("expected title error, got %+v", errs[0])
	}
}

func TestValidateContactStatusEnum(t *testing.T) {
	v := New()

	if errs := v.Struct(&models.ContactStatusUpdateRequest{Status: "READ"}); len(errs) != 0 {
		t.Errorf("READ should be a valid status, got %+v", errs)
	}
	errs := v.Struct(&models.ContactStatusUpdateRequest{Status: "SNOOZED"})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error for unknown status, got %+v", errs)
	}
	if errs[0].Field != "status" {
		t.Errorf("expected status error, got %+v", errs[0])
	}
}

func TestValidateNewsletterEmail(t *testing.T) {
	v := New()

	if errs := v.Struct(&models.NewsletterRequest{Email: "reader@example.com"}); len(errs) != 0 {
		t.Errorf("valid email rejected: %+v", errs)
	}
	if errs := v.Struct(&models.NewsletterRequest{Email: "not-an-email"}); len(errs) != 1 {
		t.Errorf("expected 1 error for bad email, got %+v", errs)
	}
}
