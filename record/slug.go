package record

import (
	"path"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// SlugNormalizer exposes the slug normalizer interface.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the default slug normalizer.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// NormalizeSlug applies the default slug normalization rules.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

// DeriveSlug resolves the record's slug: an explicit front matter slug wins,
// otherwise the file name (sans extension) is normalized.
func DeriveSlug(rec *interfaces.Record) (string, error) {
	if rec == nil {
		return "", ErrSlugRequired
	}
	if explicit := strings.TrimSpace(rec.FrontMatter.Slug); explicit != "" {
		normalized, err := NormalizeSlug(explicit)
		if err != nil {
			return "", ErrSlugInvalid
		}
		return normalized, nil
	}

	base := path.Base(strings.TrimSuffix(rec.FilePath, path.Ext(rec.FilePath)))
	// Hugo page bundles keep the body in index.md; fall back to the bundle dir.
	if base == "index" || base == "_index" {
		base = path.Base(path.Dir(rec.FilePath))
	}
	if strings.TrimSpace(base) == "" || base == "." {
		return "", ErrSlugRequired
	}
	normalized, err := NormalizeSlug(base)
	if err != nil {
		return "", ErrSlugInvalid
	}
	return normalized, nil
}
