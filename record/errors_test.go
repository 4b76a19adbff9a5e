package record

import (
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestCategorizeWrapsValidationFailures(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"malformed", &MalformedFrontMatterError{Path: "posts/a.md"}, ErrMalformedFrontMatter},
		{"missing field", &MissingFieldError{Field: "title"}, ErrMissingRequiredField},
		{"timestamp", &TimestampError{Field: "date"}, ErrInvalidTimestamp},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := Categorize(tc.err)
			if !goerrors.IsWrapped(wrapped) {
				t.Fatalf("expected wrapped error, got %v", wrapped)
			}
			if !goerrors.IsCategory(wrapped, goerrors.CategoryValidation) {
				t.Fatalf("expected validation category, got %v", wrapped)
			}
			if !errors.Is(wrapped, tc.sentinel) {
				t.Fatalf("wrapped error should preserve sentinel %v", tc.sentinel)
			}
		})
	}
}

func TestCategorizePassesThroughUnknown(t *testing.T) {
	sentinel := errors.New("unrelated failure")
	if got := Categorize(sentinel); got != sentinel {
		t.Fatalf("expected passthrough, got %v", got)
	}
	if got := Categorize(nil); got != nil {
		t.Fatalf("expected nil passthrough, got %v", got)
	}
}

func TestCategorizeIdempotent(t *testing.T) {
	first := Categorize(&MissingFieldError{Field: "title"})
	second := Categorize(first)
	if first != second {
		t.Fatalf("already wrapped errors should not be wrapped again")
	}
}

func TestErrorMessagesCarryContext(t *testing.T) {
	missing := &MissingFieldError{Field: "title", Path: "posts/a.md"}
	if got := missing.Error(); got != "record: missing required field: field=title path=posts/a.md" {
		t.Fatalf("unexpected message: %q", got)
	}

	ts := &TimestampError{Field: "lastmod", Reason: "lastmod precedes date"}
	if got := ts.Error(); got != "record: invalid timestamp: field=lastmod lastmod precedes date" {
		t.Fatalf("unexpected message: %q", got)
	}

	notFound := &NotFoundError{Resource: "slug", Key: "missing"}
	if got := notFound.Error(); got != "record: post not found: slug=missing" {
		t.Fatalf("unexpected message: %q", got)
	}
}
