package record

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-blog/internal/identity"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

type fakeRepository struct {
	posts   map[uuid.UUID]*Post
	deletes int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{posts: make(map[uuid.UUID]*Post)}
}

func (r *fakeRepository) Create(_ context.Context, post *Post) (*Post, error) {
	for _, existing := range r.posts {
		if existing.Slug == post.Slug {
			return nil, ErrSlugExists
		}
	}
	stored := *post
	r.posts[post.ID] = &stored
	return &stored, nil
}

func (r *fakeRepository) Update(_ context.Context, post *Post) (*Post, error) {
	if _, ok := r.posts[post.ID]; !ok {
		return nil, &NotFoundError{Resource: "id", Key: post.ID.String()}
	}
	stored := *post
	r.posts[post.ID] = &stored
	return &stored, nil
}

func (r *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, &NotFoundError{Resource: "id", Key: id.String()}
	}
	return post, nil
}

func (r *fakeRepository) GetBySlug(_ context.Context, slug string) (*Post, error) {
	for _, post := range r.posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	return nil, &NotFoundError{Resource: "slug", Key: slug}
}

func (r *fakeRepository) List(_ context.Context) ([]*Post, error) {
	out := make([]*Post, 0, len(r.posts))
	for _, post := range r.posts {
		out = append(out, post)
	}
	return out, nil
}

func (r *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.posts[id]; !ok {
		return &NotFoundError{Resource: "id", Key: id.String()}
	}
	delete(r.posts, id)
	r.deletes++
	return nil
}

type rejectingValidator struct{ err error }

func (v rejectingValidator) ValidatePayload(map[string]any) error { return v.err }

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	}
}

func createRequest(slug string) interfaces.PostCreateRequest {
	return interfaces.PostCreateRequest{
		Slug:       slug,
		Section:    "posts",
		Title:      "Release Notes",
		Author:     "ana",
		Date:       time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC),
		Tags:       []string{"go", "Go", " releases "},
		Body:       "# Release Notes\n",
		SourcePath: "posts/" + slug + ".md",
		Format:     "YAML",
		Checksum:   "abc123",
	}
}

func TestServiceCreate(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, WithClock(fixedClock()))

	created, err := svc.Create(context.Background(), createRequest("release-notes"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != identity.PostUUID("release-notes") {
		t.Fatalf("expected deterministic id for slug, got %s", created.ID)
	}
	if created.Format != "yaml" {
		t.Fatalf("expected normalized format, got %q", created.Format)
	}
	if len(created.Tags) != 2 {
		t.Fatalf("expected deduplicated tags, got %v", created.Tags)
	}
	if !created.CreatedAt.Equal(fixedClock()()) {
		t.Fatalf("expected clock timestamp, got %v", created.CreatedAt)
	}
}

func TestServiceCreateRequiresSlug(t *testing.T) {
	svc := NewService(newFakeRepository())
	req := createRequest("")
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrSlugRequired) {
		t.Fatalf("expected ErrSlugRequired, got %v", err)
	}
}

func TestServiceCreateRejectsInvalidSlug(t *testing.T) {
	svc := NewService(newFakeRepository())
	req := createRequest("Not A Slug")
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrSlugInvalid) {
		t.Fatalf("expected ErrSlugInvalid, got %v", err)
	}
}

func TestServiceCreateValidatesFrontMatterInvariants(t *testing.T) {
	svc := NewService(newFakeRepository())

	req := createRequest("no-title")
	req.Title = " "
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected missing title error, got %v", err)
	}

	req = createRequest("no-date")
	req.Date = time.Time{}
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected missing date error, got %v", err)
	}

	req = createRequest("bad-lastmod")
	lastMod := req.Date.Add(-time.Hour)
	req.LastMod = &lastMod
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrInvalidTimestamp) {
		t.Fatalf("expected timestamp error, got %v", err)
	}
}

func TestServiceCreateRunsSchemaValidator(t *testing.T) {
	svc := NewService(newFakeRepository(),
		WithSchemaValidator(rejectingValidator{err: ErrCustomFieldsInvalid}))

	req := createRequest("custom-fields")
	req.Metadata = map[string]any{"series": "releases"}
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrCustomFieldsInvalid) {
		t.Fatalf("expected schema validation error, got %v", err)
	}

	// Empty metadata skips the validator entirely.
	req = createRequest("no-custom-fields")
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("expected create without metadata to pass, got %v", err)
	}
}

func TestServiceGetBySlug(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	if _, err := svc.Create(context.Background(), createRequest("release-notes")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := svc.GetBySlug(context.Background(), "release-notes")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if found.Title != "Release Notes" {
		t.Fatalf("unexpected record: %+v", found)
	}

	if _, err := svc.GetBySlug(context.Background(), "missing"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	if _, err := svc.GetBySlug(context.Background(), "  "); !errors.Is(err, ErrSlugRequired) {
		t.Fatalf("expected ErrSlugRequired for blank slug, got %v", err)
	}
}

func TestServiceList(t *testing.T) {
	svc := NewService(newFakeRepository())
	for _, slug := range []string{"first-post", "second-post"} {
		if _, err := svc.Create(context.Background(), createRequest(slug)); err != nil {
			t.Fatalf("Create(%s): %v", slug, err)
		}
	}
	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestServiceUpdate(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, WithClock(fixedClock()))
	created, err := svc.Create(context.Background(), createRequest("release-notes"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), interfaces.PostUpdateRequest{
		ID:         created.ID,
		Slug:       created.Slug,
		Section:    created.Section,
		Title:      "Release Notes, Revised",
		Date:       created.Date,
		Body:       "updated body",
		SourcePath: created.SourcePath,
		Checksum:   "def456",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Release Notes, Revised" || updated.Checksum != "def456" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestServiceUpdateRequiresID(t *testing.T) {
	svc := NewService(newFakeRepository())
	_, err := svc.Update(context.Background(), interfaces.PostUpdateRequest{
		Slug:  "release-notes",
		Title: "Title",
		Date:  time.Now(),
	})
	if !errors.Is(err, ErrPostIDRequired) {
		t.Fatalf("expected ErrPostIDRequired, got %v", err)
	}
}

func TestServiceDeleteByIDAndSlug(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	first, err := svc.Create(context.Background(), createRequest("first-post"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), createRequest("second-post")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), interfaces.PostDeleteRequest{ID: first.ID}); err != nil {
		t.Fatalf("Delete by id: %v", err)
	}
	if err := svc.Delete(context.Background(), interfaces.PostDeleteRequest{Slug: "second-post"}); err != nil {
		t.Fatalf("Delete by slug: %v", err)
	}
	if repo.deletes != 2 {
		t.Fatalf("expected 2 deletes, got %d", repo.deletes)
	}

	err = svc.Delete(context.Background(), interfaces.PostDeleteRequest{})
	if !errors.Is(err, ErrPostIDRequired) {
		t.Fatalf("expected ErrPostIDRequired for empty request, got %v", err)
	}
}
