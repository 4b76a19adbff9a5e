package markdown

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Serialize re-emits a record as document bytes in its original front matter
// format. Reparsing the output yields an identical record, which is how batch
// tooling rewrites metadata without touching bodies.
func Serialize(rec *interfaces.Record) ([]byte, error) {
	if rec == nil {
		return nil, fmt.Errorf("markdown serialize: record is nil")
	}

	fields := frontMatterFields(rec.FrontMatter)

	var buf bytes.Buffer
	switch rec.Format {
	case FormatYAML, "":
		buf.WriteString("---\n")
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(fields); err != nil {
			return nil, fmt.Errorf("markdown serialize yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("markdown serialize yaml: %w", err)
		}
		buf.WriteString("---\n")
	case FormatTOML:
		buf.WriteString("+++\n")
		enc := toml.NewEncoder(&buf)
		if err := enc.Encode(fields); err != nil {
			return nil, fmt.Errorf("markdown serialize toml: %w", err)
		}
		buf.WriteString("+++\n")
	case FormatJSON:
		encoded, err := json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("markdown serialize json: %w", err)
		}
		buf.Write(encoded)
		buf.WriteString("\n")
	default:
		return nil, fmt.Errorf("markdown serialize: unsupported format %q", rec.Format)
	}

	if body := bytes.TrimSpace(rec.Body); len(body) > 0 {
		buf.WriteString("\n")
		buf.Write(body)
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// frontMatterFields flattens the typed front matter back into a field map.
// Timestamps serialize as RFC 3339 with their original offsets so the
// round-trip preserves instants exactly. Draft is omitted when false, matching
// the corpus convention of publishing by default.
func frontMatterFields(fm interfaces.FrontMatter) map[string]any {
	fields := make(map[string]any, len(fm.Custom)+9)
	for key, value := range fm.Custom {
		fields[key] = value
	}

	if fm.Title != "" {
		fields["title"] = fm.Title
	}
	if fm.Description != "" {
		fields["description"] = fm.Description
	}
	if fm.Slug != "" {
		fields["slug"] = fm.Slug
	}
	if fm.Author != "" {
		fields["author"] = fm.Author
	}
	if !fm.Date.IsZero() {
		fields["date"] = fm.Date.Format(time.RFC3339)
	}
	if fm.LastMod != nil && !fm.LastMod.IsZero() {
		fields["lastmod"] = fm.LastMod.Format(time.RFC3339)
	}
	if fm.Draft {
		fields["draft"] = true
	}
	if len(fm.Categories) > 0 {
		fields["categories"] = append([]string(nil), fm.Categories...)
	}
	if len(fm.Tags) > 0 {
		fields["tags"] = append([]string(nil), fm.Tags...)
	}

	return fields
}
