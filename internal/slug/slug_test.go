package slug

import (
	"testing"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "punctuation and case",
			title: "Hello, World!",
			want:  "hello-world",
		},
		{
			name:  "consecutive symbols collapse to one hyphen",
			title: "Hello---World!!",
			want:  "hello-world",
		},
		{
			name:  "leading digits kept",
			title: "9 Simple Ways!!",
			want:  "9-simple-ways",
		},
		{
			name:  "leading and trailing symbols stripped",
			title: "  --Launch Day--  ",
			want:  "launch-day",
		},
		{
			name:  "unicode lower-cased, not transliterated",
			title: "Café Déjà Vu",
			want:  "café-déjà-vu",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
		{
			name:  "all-symbol title",
			title: "!!! --- ???",
			want:  "",
		},
		{
			name:  "already a slug",
			title: "hello-world",
			want:  "hello-world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Derive(tt.title); got != tt.want {
				t.Errorf("Derive(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestDeriveIdempotent(t *testing.T) {
	titles := []string{
		"Hello, World!",
		"9 Simple Ways!!",
		"Café Déjà Vu",
		"Release Notes v2.0 (final)",
	}

	for _, title := range titles {
		once := Derive(title)
		twice := Derive(once)
		if once != twice {
			t.Errorf("Derive not stable for %q: first %q, second %q", title, once, twice)
		}
	}
}

func TestDeriveEquivalentTitles(t *testing.T) {
	// Titles differing only by case or surrounding symbols collapse to the
	// same slug.
	if a, b := Derive("Hello, World!"), Derive("hello world"); a != b {
		t.Errorf("expected identical slugs, got %q and %q", a, b)
	}
}
