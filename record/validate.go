package record

import (
	"strings"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ValidateFrontMatter enforces the record invariants: a non-empty title, a
// parseable date, and lastmod not preceding date. Draft defaulting happens at
// decode time, so a zero Draft here already means "published".
func ValidateFrontMatter(fm interfaces.FrontMatter) error {
	if strings.TrimSpace(fm.Title) == "" {
		return &MissingFieldError{Field: "title"}
	}
	if fm.Date.IsZero() {
		return &MissingFieldError{Field: "date"}
	}
	if fm.LastMod != nil && fm.LastMod.Before(fm.Date) {
		return &TimestampError{
			Field:  "lastmod",
			Value:  fm.LastMod.String(),
			Reason: "lastmod precedes date",
		}
	}
	return nil
}

// ValidateRecord validates a parsed record, attaching the source path to any
// failure so batch runs can point at the offending file.
func ValidateRecord(rec *interfaces.Record) error {
	if rec == nil {
		return nil
	}
	err := ValidateFrontMatter(rec.FrontMatter)
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case *MissingFieldError:
		e.Path = rec.FilePath
	case *TimestampError:
		e.Path = rec.FilePath
	}
	return err
}

// NormalizeLabels trims entries and drops in-record duplicates while keeping
// the author's ordering. Duplicate labels across records stay untouched.
func NormalizeLabels(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		trimmed := strings.TrimSpace(label)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
