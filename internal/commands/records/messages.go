package recordscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	checkDirectoryMessageType  = "blog.records.check_directory"
	importDirectoryMessageType = "blog.records.import_directory"
	syncDirectoryMessageType   = "blog.records.sync_directory"
)

// CheckDirectoryCommand parses and validates every post file under the
// provided Directory without touching the catalogue. The command mirrors
// RecordService.LoadDirectory semantics and surfaces the first categorised
// parse or validation failure.
type CheckDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load post files from.
	Directory string `json:"directory"`
	// Pattern overrides the configured filename glob used during discovery.
	Pattern string `json:"pattern,omitempty"`
	// Inspect additionally walks each body and reports headings, code blocks, and embeds.
	Inspect bool `json:"inspect,omitempty"`
}

// Type implements command.Message.
func (CheckDirectoryCommand) Type() string { return checkDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd CheckDirectoryCommand) Validate() error {
	err := validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blog.records.check_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
	if err != nil {
		return err
	}
	return nil
}

// ImportDirectoryCommand triggers a filesystem walk for post files under the
// provided Directory. The command mirrors RecordService.ImportDirectory
// semantics, allowing callers to supply import options that map directly onto
// interfaces.ImportOptions for catalogue writes.
type ImportDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load post files from.
	Directory string `json:"directory"`
	// AllowDrafts imports records flagged draft: true instead of skipping them.
	AllowDrafts bool `json:"allow_drafts,omitempty"`
	// DryRun toggles preview mode to collect import diffs without persisting changes.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (ImportDirectoryCommand) Type() string { return importDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ImportDirectoryCommand) Validate() error {
	err := validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blog.records.import_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
	if err != nil {
		return err
	}
	return nil
}

// SyncDirectoryCommand orchestrates a catalogue sync run for the provided
// Directory, applying deletion flags consistent with interfaces.SyncOptions.
type SyncDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load post files from.
	Directory string `json:"directory"`
	// AllowDrafts imports records flagged draft: true instead of skipping them.
	AllowDrafts bool `json:"allow_drafts,omitempty"`
	// DryRun toggles preview mode to collect sync diffs without persisting changes.
	DryRun bool `json:"dry_run,omitempty"`
	// DeleteOrphaned removes catalogue posts without matching source files when true.
	DeleteOrphaned bool `json:"delete_orphaned,omitempty"`
}

// Type implements command.Message.
func (SyncDirectoryCommand) Type() string { return syncDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd SyncDirectoryCommand) Validate() error {
	err := validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blog.records.sync_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
	if err != nil {
		return err
	}
	return nil
}
