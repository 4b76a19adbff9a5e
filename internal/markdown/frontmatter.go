package markdown

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/record"
)

// Front matter formats the corpus uses, matching what Hugo accepts.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Timestamp layouts tried in order when front matter carries dates as strings.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02",
}

// DetectFormat inspects the leading delimiter to classify the front matter
// format. It returns an empty string when no known delimiter is present.
func DetectFormat(source []byte) string {
	trimmed := bytes.TrimLeft(source, "\xef\xbb\xbf")
	switch {
	case bytes.HasPrefix(trimmed, []byte("---")):
		return FormatYAML
	case bytes.HasPrefix(trimmed, []byte("+++")):
		return FormatTOML
	case bytes.HasPrefix(bytes.TrimSpace(trimmed), []byte("{")):
		return FormatJSON
	default:
		return ""
	}
}

// ParseFrontMatter extracts metadata and the Markdown body from the provided
// source bytes. It returns the structured front matter, the body without
// delimiters, the detected format, and any error encountered. Absent required
// fields are not an error here; ValidateRecord enforces them.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, string, error) {
	format := DetectFormat(source)
	if format == "" {
		return interfaces.FrontMatter{}, nil, "", &record.MalformedFrontMatterError{
			Cause: fmt.Errorf("no front matter delimiters found"),
		}
	}

	var meta frontMatterEnvelope
	body, err := frontmatter.MustParse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, "", &record.MalformedFrontMatterError{Cause: err}
	}

	// Decode a second time into a plain map so unrecognised keys survive in
	// every format; struct tags alone only capture extras from YAML.
	fields := map[string]any{}
	if _, err := frontmatter.MustParse(bytes.NewReader(source), &fields); err != nil {
		return interfaces.FrontMatter{}, nil, "", &record.MalformedFrontMatterError{Cause: err}
	}

	fm, err := envelopeToFrontMatter(meta, customFields(fields))
	if err != nil {
		return interfaces.FrontMatter{}, nil, "", err
	}
	return fm, body, format, nil
}

// BuildRecord assembles a validated record from the supplied file path,
// section, raw content, and modification time.
func BuildRecord(path, section string, source []byte, modified time.Time) (*interfaces.Record, error) {
	fm, body, format, err := ParseFrontMatter(source)
	if err != nil {
		if malformed, ok := err.(*record.MalformedFrontMatterError); ok {
			malformed.Path = path
		}
		return nil, err
	}

	rec := &interfaces.Record{
		FilePath:     path,
		Section:      section,
		Format:       format,
		FrontMatter:  fm,
		Body:         body,
		LastModified: modified,
	}
	sum := sha256.Sum256(source)
	rec.Checksum = sum[:]

	if err := record.ValidateRecord(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// frontMatterEnvelope decodes loosely: timestamps arrive as strings from YAML
// and as time.Time from TOML, so both fields stay untyped until coercion.
type frontMatterEnvelope struct {
	Title       string   `yaml:"title" toml:"title" json:"title"`
	Description string   `yaml:"description" toml:"description" json:"description"`
	Slug        string   `yaml:"slug" toml:"slug" json:"slug"`
	Author      string   `yaml:"author" toml:"author" json:"author"`
	Date        any      `yaml:"date" toml:"date" json:"date"`
	LastMod     any      `yaml:"lastmod" toml:"lastmod" json:"lastmod"`
	Draft       *bool    `yaml:"draft" toml:"draft" json:"draft"`
	Categories  []string `yaml:"categories" toml:"categories" json:"categories"`
	Tags        []string `yaml:"tags" toml:"tags" json:"tags"`
}

// reservedFrontMatterKeys lists the named fields of the front matter schema.
// Anything outside this set is carried through as custom metadata.
var reservedFrontMatterKeys = map[string]struct{}{
	"title":       {},
	"description": {},
	"slug":        {},
	"author":      {},
	"date":        {},
	"lastmod":     {},
	"draft":       {},
	"categories":  {},
	"tags":        {},
}

func customFields(fields map[string]any) map[string]any {
	custom := make(map[string]any)
	for key, value := range fields {
		if _, reserved := reservedFrontMatterKeys[key]; reserved {
			continue
		}
		custom[key] = value
	}
	return custom
}

func envelopeToFrontMatter(env frontMatterEnvelope, custom map[string]any) (interfaces.FrontMatter, error) {
	date, err := coerceTimestamp("date", env.Date)
	if err != nil {
		return interfaces.FrontMatter{}, err
	}

	var lastMod *time.Time
	if env.LastMod != nil {
		parsed, err := coerceTimestamp("lastmod", env.LastMod)
		if err != nil {
			return interfaces.FrontMatter{}, err
		}
		if !parsed.IsZero() {
			lastMod = &parsed
		}
	}

	// draft defaults to false when the field is absent.
	draft := false
	if env.Draft != nil {
		draft = *env.Draft
	}

	if custom == nil {
		custom = map[string]any{}
	}

	raw := make(map[string]any, len(custom)+9)
	for key, value := range custom {
		raw[key] = value
	}
	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Description != "" {
		raw["description"] = env.Description
	}
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	if env.Author != "" {
		raw["author"] = env.Author
	}
	if !date.IsZero() {
		raw["date"] = date
	}
	if lastMod != nil {
		raw["lastmod"] = *lastMod
	}
	if len(env.Categories) > 0 {
		raw["categories"] = append([]string(nil), env.Categories...)
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	raw["draft"] = draft

	return interfaces.FrontMatter{
		Title:       env.Title,
		Description: env.Description,
		Slug:        env.Slug,
		Author:      env.Author,
		Date:        date,
		LastMod:     lastMod,
		Draft:       draft,
		Categories:  append([]string(nil), env.Categories...),
		Tags:        append([]string(nil), env.Tags...),
		Custom:      custom,
		Raw:         raw,
	}, nil
}

func coerceTimestamp(field string, value any) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, nil
		}
		return *v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return time.Time{}, nil
		}
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, trimmed); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, &record.TimestampError{
			Field:  field,
			Value:  trimmed,
			Reason: "unrecognized timestamp layout",
		}
	default:
		return time.Time{}, &record.TimestampError{
			Field:  field,
			Value:  fmt.Sprint(value),
			Reason: fmt.Sprintf("unsupported value of type %T", value),
		}
	}
}
