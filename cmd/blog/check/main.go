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
	if err := runCheck(os.Args[1:]); err != nil {
		log.Fatalf("blog check: %v", err)
	}
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("blog-check", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the post content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering post files")
	sections := fs.String("sections", "", "Comma separated list of known sections")
	defaultSection := fs.String("default-section", "posts", "Section assigned to files outside section directories")
	directory := fs.String("directory", ".", "Directory to check, relative to the content root")
	inspect := fs.Bool("inspect", false, "Also inspect bodies and report structure counts")

	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := bootstrap.Options{
		ContentDir:     *contentDir,
		Pattern:        *pattern,
		Recursive:      true,
		DefaultSection: *defaultSection,
		Sections:       bootstrap.SplitSections(*sections),
	}

	module, err := moduleBuilder(opts)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Service == nil {
		return fmt.Errorf("record service not configured; ensure Features.Records is enabled")
	}

	handler := recordscmd.NewCheckDirectoryHandler(module.Service, module.Logger, recordscmd.FeatureGates{
		RecordsEnabled: func() bool { return true },
	})
	cmd := recordscmd.CheckDirectoryCommand{
		Directory: *directory,
		Pattern:   *pattern,
		Inspect:   *inspect,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute check command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "blog check command executed successfully")

	return nil
}
