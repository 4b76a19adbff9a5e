package record

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

func TestValidateFrontMatterValid(t *testing.T) {
	lastMod := time.Date(2024, 3, 12, 8, 30, 0, 0, time.UTC)
	fm := interfaces.FrontMatter{
		Title:   "Release Notes",
		Date:    time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC),
		LastMod: &lastMod,
	}
	if err := ValidateFrontMatter(fm); err != nil {
		t.Fatalf("expected valid front matter, got %v", err)
	}
}

func TestValidateFrontMatterMissingTitle(t *testing.T) {
	fm := interfaces.FrontMatter{
		Title: "   ",
		Date:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	err := ValidateFrontMatter(fm)
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected missing field error, got %v", err)
	}
	var missing *MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "title" {
		t.Fatalf("expected title field error, got %v", err)
	}
}

func TestValidateFrontMatterMissingDate(t *testing.T) {
	err := ValidateFrontMatter(interfaces.FrontMatter{Title: "No Date"})
	var missing *MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "date" {
		t.Fatalf("expected date field error, got %v", err)
	}
}

func TestValidateFrontMatterLastModBeforeDate(t *testing.T) {
	lastMod := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	fm := interfaces.FrontMatter{
		Title:   "Out of Order",
		Date:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		LastMod: &lastMod,
	}
	err := ValidateFrontMatter(fm)
	if !errors.Is(err, ErrInvalidTimestamp) {
		t.Fatalf("expected timestamp error, got %v", err)
	}
	var tsErr *TimestampError
	if !errors.As(err, &tsErr) || tsErr.Field != "lastmod" {
		t.Fatalf("expected lastmod timestamp error, got %v", err)
	}
}

func TestValidateFrontMatterLastModEqualsDate(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	lastMod := date
	fm := interfaces.FrontMatter{Title: "Same Instant", Date: date, LastMod: &lastMod}
	if err := ValidateFrontMatter(fm); err != nil {
		t.Fatalf("lastmod equal to date should pass, got %v", err)
	}
}

func TestValidateRecordAttachesPath(t *testing.T) {
	rec := &interfaces.Record{
		FilePath:    "posts/broken.md",
		FrontMatter: interfaces.FrontMatter{Date: time.Now()},
	}
	err := ValidateRecord(rec)
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected missing field error, got %v", err)
	}
	if missing.Path != "posts/broken.md" {
		t.Fatalf("expected source path on error, got %q", missing.Path)
	}
}

func TestValidateRecordNil(t *testing.T) {
	if err := ValidateRecord(nil); err != nil {
		t.Fatalf("nil record should validate, got %v", err)
	}
}

func TestNormalizeLabels(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil input", nil, nil},
		{"trims entries", []string{" go ", "releases"}, []string{"go", "releases"}},
		{"drops duplicates case insensitively", []string{"Go", "go", "Releases"}, []string{"Go", "Releases"}},
		{"drops empty entries", []string{"", "  ", "go"}, []string{"go"}},
		{"all empty collapses to nil", []string{"", "  "}, nil},
		{"keeps author ordering", []string{"zeta", "alpha", "zeta"}, []string{"zeta", "alpha"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeLabels(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("NormalizeLabels(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
