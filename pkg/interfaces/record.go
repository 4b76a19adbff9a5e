package interfaces

import (
	"context"
	"time"
)

// RecordService exposes the high-level file workflows for blog content:
// loading Markdown documents from disk, validating their front matter,
// inspecting their bodies, and synchronising them with the post catalogue.
type RecordService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Record, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Record, error)
	Inspect(ctx context.Context, rec *Record, opts InspectOptions) (*BodyReport, error)
	Serialize(rec *Record) ([]byte, error)
	Import(ctx context.Context, rec *Record, opts ImportOptions) (*ImportResult, error)
	ImportDirectory(ctx context.Context, dir string, opts ImportOptions) (*ImportResult, error)
	Sync(ctx context.Context, dir string, opts SyncOptions) (*SyncResult, error)
}

// BodyInspector walks a Markdown body and reports its structural elements
// (headings, fenced code blocks, embed shortcodes) without rendering it.
// Implementations should be stateless so callers can share a single instance.
type BodyInspector interface {
	Inspect(body []byte) (*BodyReport, error)
	InspectWithOptions(body []byte, opts InspectOptions) (*BodyReport, error)
}

// InspectOptions customises body inspection behaviour.
type InspectOptions struct {
	Extensions []string
	// SkipShortcodes disables scanning for embed directives such as
	// {{< youtube ... >}} when the caller only needs outline data.
	SkipShortcodes bool
}

// Record represents a Markdown file with parsed front matter and content. The
// struct is shared between the interfaces package and internal implementations
// so consumers can depend on a stable contract.
type Record struct {
	FilePath    string
	Section     string
	Format      string
	FrontMatter FrontMatter
	Body        []byte
	// Report holds the structural body analysis when Inspect has run;
	// loaders leave it nil so callers can inspect lazily.
	Report       *BodyReport
	LastModified time.Time
	// Checksum stores a SHA-256 digest of the original file content so sync
	// workflows can detect changes without re-importing unchanged files.
	Checksum []byte
}

// FrontMatter models metadata extracted from a post file. The named fields
// follow the front matter schema the static site generator consumes; Custom
// preserves everything else verbatim.
type FrontMatter struct {
	Title       string         `yaml:"title" json:"title"`
	Description string         `yaml:"description" json:"description"`
	Slug        string         `yaml:"slug" json:"slug"`
	Author      string         `yaml:"author" json:"author"`
	Date        time.Time      `yaml:"date" json:"date"`
	LastMod     *time.Time     `yaml:"lastmod" json:"lastmod,omitempty"`
	Draft       bool           `yaml:"draft" json:"draft"`
	Categories  []string       `yaml:"categories" json:"categories"`
	Tags        []string       `yaml:"tags" json:"tags"`
	Custom      map[string]any `yaml:",inline" json:"custom"`
	Raw         map[string]any `yaml:"-" json:"raw"`
}

// BodyReport summarises the structural elements of a Markdown body.
type BodyReport struct {
	Headings   []Heading
	CodeBlocks []CodeBlock
	Embeds     []EmbedRef
	WordCount  int
}

// Heading captures an outline entry discovered in the body.
type Heading struct {
	Level int
	Text  string
}

// CodeBlock captures a language-tagged fenced code block.
type CodeBlock struct {
	Language string
	Lines    int
}

// EmbedRef records the literal identifier and label of an embed directive
// (e.g. a video shortcode). Resolution belongs to the external renderer.
type EmbedRef struct {
	Provider string
	ID       string
	Label    string
}

// LoadOptions fine-tunes how records are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
	// SectionPatterns maps section names to glob expressions relative to the
	// content root, overriding directory-based section detection.
	SectionPatterns map[string]string
}

// ImportOptions controls how records are written into the post catalogue.
type ImportOptions struct {
	DryRun bool
	// AllowDrafts imports records flagged draft: true; by default drafts are
	// skipped the same way the site generator excludes them from builds.
	AllowDrafts bool
}

// SyncOptions extends ImportOptions to handle update/delete semantics for
// repeated synchronisation runs.
type SyncOptions struct {
	ImportOptions
	DeleteOrphaned bool
}

// ImportResult reports the outcome of a single import operation, exposing
// counts and slugs so callers can audit behaviour or trigger follow-up actions.
type ImportResult struct {
	CreatedSlugs []string
	UpdatedSlugs []string
	SkippedSlugs []string
	Errors       []error
}

// SyncResult summarises a bulk sync run across many files.
type SyncResult struct {
	Created int
	Updated int
	Deleted int
	Skipped int
	Errors  []error
}

// SchemaValidator checks custom front matter fields against a JSON schema.
type SchemaValidator interface {
	ValidatePayload(payload map[string]any) error
}
