package record

import (
	"errors"
	"testing"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

func TestDeriveSlugExplicitWins(t *testing.T) {
	rec := &interfaces.Record{
		FilePath:    "posts/some-file.md",
		FrontMatter: interfaces.FrontMatter{Slug: "Custom Slug"},
	}
	got, err := DeriveSlug(rec)
	if err != nil {
		t.Fatalf("DeriveSlug: %v", err)
	}
	if got != "custom-slug" {
		t.Fatalf("expected normalized explicit slug, got %q", got)
	}
}

func TestDeriveSlugFromFileName(t *testing.T) {
	rec := &interfaces.Record{FilePath: "posts/Hello World.md"}
	got, err := DeriveSlug(rec)
	if err != nil {
		t.Fatalf("DeriveSlug: %v", err)
	}
	if got != "hello-world" {
		t.Fatalf("expected slug from file name, got %q", got)
	}
}

func TestDeriveSlugBundleIndex(t *testing.T) {
	for _, name := range []string{"index", "_index"} {
		rec := &interfaces.Record{FilePath: "posts/my-bundle/" + name + ".md"}
		got, err := DeriveSlug(rec)
		if err != nil {
			t.Fatalf("DeriveSlug(%s): %v", name, err)
		}
		if got != "my-bundle" {
			t.Fatalf("expected bundle directory slug for %s, got %q", name, got)
		}
	}
}

func TestDeriveSlugNilRecord(t *testing.T) {
	if _, err := DeriveSlug(nil); !errors.Is(err, ErrSlugRequired) {
		t.Fatalf("expected ErrSlugRequired, got %v", err)
	}
}

func TestIsValidSlug(t *testing.T) {
	cases := []struct {
		slug string
		want bool
	}{
		{"hello-world", true},
		{"release-notes-2024", true},
		{"Hello World", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidSlug(tc.slug); got != tc.want {
			t.Fatalf("IsValidSlug(%q) = %v, want %v", tc.slug, got, tc.want)
		}
	}
}

func TestNormalizeSlug(t *testing.T) {
	got, err := NormalizeSlug("  Ship It Again  ")
	if err != nil {
		t.Fatalf("NormalizeSlug: %v", err)
	}
	if got != "ship-it-again" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}
