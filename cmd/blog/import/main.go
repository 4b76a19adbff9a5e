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
	if err := runImport(os.Args[1:]); err != nil {
		log.Fatalf("blog import: %v", err)
	}
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("blog-import", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the post content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering post files")
	sections := fs.String("sections", "", "Comma separated list of known sections")
	directory := fs.String("directory", ".", "Directory to import, relative to the content root")
	driver := fs.String("driver", "sqlite", "Database driver (sqlite or postgres)")
	dsn := fs.String("dsn", "file::memory:?cache=shared", "Database connection string")
	cache := fs.Bool("cache", false, "Enable repository caching")
	allowDrafts := fs.Bool("allow-drafts", false, "Import records flagged draft: true")
	dryRun := fs.Bool("dry-run", false, "Preview changes without persisting posts")

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
		return fmt.Errorf("post store not configured; a dsn is required for imports")
	}

	handler := recordscmd.NewImportDirectoryHandler(module.Service, module.Logger, recordscmd.FeatureGates{
		RecordsEnabled: func() bool { return true },
	})
	cmd := recordscmd.ImportDirectoryCommand{
		Directory:   *directory,
		AllowDrafts: *allowDrafts,
		DryRun:      *dryRun,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute import command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "blog import command executed successfully")

	return nil
}
