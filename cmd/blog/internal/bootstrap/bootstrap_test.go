package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

func TestBuildModuleWithoutStorage(t *testing.T) {
	resources, err := BuildModule(Options{ContentDir: "content"})
	if err != nil {
		t.Fatalf("build module: %v", err)
	}
	if resources.Module == nil {
		t.Fatal("expected module to be initialised")
	}
	if resources.Service == nil {
		t.Fatal("expected record service to be configured")
	}
	if resources.Logger == nil {
		t.Fatal("expected a logger")
	}
	if resources.Module.Store() != nil {
		t.Fatal("expected no store without a DSN")
	}
}

func TestBuildModuleWithSQLiteStorage(t *testing.T) {
	resources, err := BuildModule(Options{
		ContentDir: "content",
		Driver:     "sqlite",
		DSN:        "file::memory:?cache=shared",
	})
	if err != nil {
		t.Fatalf("build module: %v", err)
	}
	if resources.Module.Store() == nil {
		t.Fatal("expected store with a sqlite DSN")
	}
}

func TestBuildModuleImportsIntoFreshDatabase(t *testing.T) {
	contentDir := t.TempDir()
	postsDir := filepath.Join(contentDir, "posts")
	if err := os.MkdirAll(postsDir, 0o755); err != nil {
		t.Fatalf("create posts dir: %v", err)
	}
	source := `---
title: Fresh Catalogue
date: 2025-09-07
tags:
  - release
---

First import against an empty database.
`
	if err := os.WriteFile(filepath.Join(postsDir, "fresh-catalogue.md"), []byte(source), 0o644); err != nil {
		t.Fatalf("write post: %v", err)
	}

	resources, err := BuildModule(Options{
		ContentDir: contentDir,
		Recursive:  true,
		Driver:     "sqlite",
		DSN:        "file:bootstrap_fresh?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("build module: %v", err)
	}
	if resources.Module.Store() == nil {
		t.Fatal("expected store with a sqlite DSN")
	}

	ctx := context.Background()
	result, err := resources.Service.ImportDirectory(ctx, "posts", interfaces.ImportOptions{})
	if err != nil {
		t.Fatalf("import directory: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected import errors: %v", result.Errors)
	}
	if len(result.CreatedSlugs) != 1 || result.CreatedSlugs[0] != "fresh-catalogue" {
		t.Fatalf("expected fresh-catalogue created, got %v", result.CreatedSlugs)
	}

	stored, err := resources.Module.Store().GetBySlug(ctx, "fresh-catalogue")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if stored.Title != "Fresh Catalogue" {
		t.Fatalf("unexpected stored title %q", stored.Title)
	}
}

func TestOpenDatabaseRejectsUnknownDriver(t *testing.T) {
	if _, err := OpenDatabase("oracle", "dsn"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestSplitSections(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"posts", []string{"posts"}},
		{"posts, pages ,docs", []string{"posts", "pages", "docs"}},
		{",,posts,", []string{"posts"}},
	}
	for _, tc := range cases {
		if got := SplitSections(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitSections(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
