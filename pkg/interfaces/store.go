package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PostStore is the catalogue contract the importer writes through. The
// canonical implementation lives in the record package backed by bun; tests
// substitute in-memory fakes.
type PostStore interface {
	GetBySlug(ctx context.Context, slug string) (*PostRecord, error)
	List(ctx context.Context) ([]*PostRecord, error)
	Create(ctx context.Context, req PostCreateRequest) (*PostRecord, error)
	Update(ctx context.Context, req PostUpdateRequest) (*PostRecord, error)
	Delete(ctx context.Context, req PostDeleteRequest) error
}

// PostRecord is the stored projection of a content record. The catalogue is a
// derived index; source files remain the system of record and are never
// mutated by this module.
type PostRecord struct {
	ID          uuid.UUID      `json:"id"`
	Slug        string         `json:"slug"`
	Section     string         `json:"section"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Author      string         `json:"author,omitempty"`
	Date        time.Time      `json:"date"`
	LastMod     *time.Time     `json:"lastmod,omitempty"`
	Draft       bool           `json:"draft"`
	Categories  []string       `json:"categories,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Body        string         `json:"body"`
	SourcePath  string         `json:"source_path"`
	Format      string         `json:"format"`
	Checksum    string         `json:"checksum"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// PostCreateRequest carries the fields required to index a new post.
type PostCreateRequest struct {
	Slug        string
	Section     string
	Title       string
	Description string
	Author      string
	Date        time.Time
	LastMod     *time.Time
	Draft       bool
	Categories  []string
	Tags        []string
	Body        string
	SourcePath  string
	Format      string
	Checksum    string
	Metadata    map[string]any
}

// PostUpdateRequest mirrors PostCreateRequest for an existing record.
type PostUpdateRequest struct {
	ID          uuid.UUID
	Slug        string
	Section     string
	Title       string
	Description string
	Author      string
	Date        time.Time
	LastMod     *time.Time
	Draft       bool
	Categories  []string
	Tags        []string
	Body        string
	SourcePath  string
	Format      string
	Checksum    string
	Metadata    map[string]any
}

// PostDeleteRequest identifies the record to remove from the catalogue.
type PostDeleteRequest struct {
	ID   uuid.UUID
	Slug string
}
