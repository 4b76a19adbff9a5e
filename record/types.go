package record

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Post is the persisted projection of a content record. The catalogue is a
// derived index over static source files; rows are replaced wholesale on
// import and never written back to disk.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:p"`

	ID          uuid.UUID      `bun:",pk,type:uuid"                 json:"id"`
	Slug        string         `bun:"slug,notnull,unique"           json:"slug"`
	Section     string         `bun:"section"                       json:"section"`
	Title       string         `bun:"title,notnull"                 json:"title"`
	Description *string        `bun:"description"                   json:"description,omitempty"`
	Author      *string        `bun:"author"                        json:"author,omitempty"`
	Date        time.Time      `bun:"date,notnull"                  json:"date"`
	LastMod     *time.Time     `bun:"lastmod,nullzero"              json:"lastmod,omitempty"`
	Draft       bool           `bun:"draft,notnull,default:false"   json:"draft"`
	Categories  []string       `bun:"categories,type:jsonb"         json:"categories,omitempty"`
	Tags        []string       `bun:"tags,type:jsonb"               json:"tags,omitempty"`
	Body        string         `bun:"body,notnull"                  json:"body"`
	SourcePath  string         `bun:"source_path,notnull"           json:"source_path"`
	Format      string         `bun:"format,notnull,default:'yaml'" json:"format"`
	Checksum    string         `bun:"checksum,notnull"              json:"checksum"`
	Metadata    map[string]any `bun:"metadata,type:jsonb"           json:"metadata,omitempty"`
	CreatedAt   time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
