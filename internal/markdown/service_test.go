package markdown

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewServiceWithFS(newTestFS(), Config{
		DefaultSection: "posts",
		Recursive:      true,
	}, nil)
	if err != nil {
		t.Fatalf("NewServiceWithFS: %v", err)
	}
	return svc
}

func TestServiceLoad(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.Load(context.Background(), "posts/hello.md", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.FrontMatter.Title != "Hello" {
		t.Fatalf("expected Hello, got %q", rec.FrontMatter.Title)
	}
	if rec.Report != nil {
		t.Fatalf("expected lazy body report")
	}
}

func TestServiceLoadDirectory(t *testing.T) {
	svc := newTestService(t)

	recs, err := svc.LoadDirectory(context.Background(), "posts", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records under posts, got %d", len(recs))
	}
}

func TestServiceInspectCachesReport(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.Load(context.Background(), "posts/hello.md", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	report, err := svc.Inspect(context.Background(), rec, interfaces.InspectOptions{})
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if rec.Report != report {
		t.Fatalf("expected report cached on record")
	}
	if report.WordCount == 0 {
		t.Fatalf("expected non-zero word count")
	}
}

func TestServiceImportDirectory(t *testing.T) {
	svc := newTestService(t)
	store := newStubPostStore()
	svc.AttachStore(store, nil)

	result, err := svc.ImportDirectory(context.Background(), "posts", interfaces.ImportOptions{})
	if err != nil {
		t.Fatalf("ImportDirectory: %v", err)
	}
	// hello and second created, the draft skipped.
	if len(result.CreatedSlugs) != 2 {
		t.Fatalf("expected 2 created, got %#v", result)
	}
	if len(result.SkippedSlugs) != 1 {
		t.Fatalf("expected draft skipped, got %#v", result)
	}
}

func TestServiceImportDirectoryAllowsDraftsByConfig(t *testing.T) {
	svc, err := NewServiceWithFS(newTestFS(), Config{
		DefaultSection: "posts",
		Recursive:      true,
		AllowDrafts:    true,
	}, nil)
	if err != nil {
		t.Fatalf("NewServiceWithFS: %v", err)
	}
	store := newStubPostStore()
	svc.AttachStore(store, nil)

	result, err := svc.ImportDirectory(context.Background(), "posts", interfaces.ImportOptions{})
	if err != nil {
		t.Fatalf("ImportDirectory: %v", err)
	}
	if len(result.CreatedSlugs) != 3 {
		t.Fatalf("expected drafts imported, got %#v", result)
	}
	if len(result.SkippedSlugs) != 0 {
		t.Fatalf("expected nothing skipped, got %#v", result)
	}
	if store.posts["wip"] == nil {
		t.Fatalf("expected draft catalogued, got %#v", store.posts)
	}

	// Sync applies the same policy.
	fresh := newStubPostStore()
	svc.AttachStore(fresh, nil)
	syncResult, err := svc.Sync(context.Background(), "posts", interfaces.SyncOptions{})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if syncResult.Created != 3 || syncResult.Skipped != 0 {
		t.Fatalf("expected drafts synced, got %#v", syncResult)
	}
}

func TestServiceSyncDeletesOrphans(t *testing.T) {
	fsys := newTestFS()
	svc, err := NewServiceWithFS(fsys, Config{DefaultSection: "posts", Recursive: true}, nil)
	if err != nil {
		t.Fatalf("NewServiceWithFS: %v", err)
	}
	store := newStubPostStore()
	svc.AttachStore(store, nil)

	if _, err := svc.ImportDirectory(context.Background(), "posts", interfaces.ImportOptions{}); err != nil {
		t.Fatalf("seed import: %v", err)
	}

	delete(fsys, "posts/second.md")

	result, err := svc.Sync(context.Background(), "posts", interfaces.SyncOptions{DeleteOrphaned: true})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if result.Deleted != 1 {
		t.Fatalf("expected one deletion, got %#v", result)
	}
	if store.posts["second"] != nil {
		t.Fatalf("orphan should be deleted")
	}
}

func TestServiceImportWithoutStore(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.ImportDirectory(context.Background(), "posts", interfaces.ImportOptions{}); !errors.Is(err, ErrStoreRequired) {
		t.Fatalf("expected store required error, got %v", err)
	}
	if _, err := svc.Sync(context.Background(), "posts", interfaces.SyncOptions{}); !errors.Is(err, ErrStoreRequired) {
		t.Fatalf("expected store required error, got %v", err)
	}
}
