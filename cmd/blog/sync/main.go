package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-blog/cmd/blog/internal/bootstrap"
	recordscmd "github.com/goliatone/go-blog/internal/commands/records"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runSync(os.Args[1:]); err != nil {
		log.Fatalf("blog sync: %v", err)
	}
}

func runSync(args []string) error {
	fs := flag.NewFlagSet("blog-sync", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the post content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering post files")
	sections := fs.String("sections", "", "Comma separated list of known sections")
	directory := fs.String("directory", ".", "Directory to sync, relative to the content root")
	driver := fs.String("driver", "sqlite", "Database driver (sqlite or postgres)")
	dsn := fs.String("dsn", "file::memory:?cache=shared", "Database connection string")
	cache := fs.Bool("cache", false, "Enable repository caching")
	allowDrafts := fs.Bool("allow-drafts", false, "Sync records flagged draft: true")
	dryRun := fs.Bool("dry-run", false, "Preview changes without persisting posts")
	deleteOrphaned := fs.Bool("delete-orphaned", false, "Delete catalogue posts without matching source files")

	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := bootstrap.Options{
		ContentDir:   *contentDir,
		Pattern:      *pattern,
		Recursive:    true,
		Sections:     bootstrap.SplitSections(*sections),
		Driver:       *driver,
		DSN:          *dsn,
		CacheEnabled: *cache,
	}

	module, err := moduleBuilder(opts)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Service == nil {
		return fmt.Errorf("record service not configured; ensure Features.Records is enabled")
	}
	if module.Module.Store() == nil {
		return fmt.Errorf("post store not configured; a dsn is required for sync")
	}

	handler := recordscmd.NewSyncDirectoryHandler(module.Service, module.Logger, recordscmd.FeatureGates{
		RecordsEnabled: func() bool { return true },
	})
	cmd := recordscmd.SyncDirectoryCommand{
		Directory:      *directory,
		AllowDrafts:    *allowDrafts,
		DryRun:         *dryRun,
		DeleteOrphaned: *deleteOrphaned,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute sync command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "blog sync command executed successfully")

	return nil
}
