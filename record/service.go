package record

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-blog/internal/identity"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Repository is the persistence contract the service depends on. The bun
// implementation lives in internal/record; tests provide in-memory fakes.
type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)
	Update(ctx context.Context, post *Post) (*Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements interfaces.PostStore on top of a Repository.
type Service struct {
	repo      Repository
	logger    interfaces.Logger
	validator interfaces.SchemaValidator
	now       func() time.Time
}

// ServiceOption configures optional service collaborators.
type ServiceOption func(*Service)

// WithLogger attaches a logger used for catalogue mutations.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSchemaValidator enables JSON-schema checks on custom front matter
// metadata before records enter the catalogue.
func WithSchemaValidator(validator interfaces.SchemaValidator) ServiceOption {
	return func(s *Service) {
		s.validator = validator
	}
}

// WithClock overrides the timestamp source, primarily for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService constructs the catalogue service.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ interfaces.PostStore = (*Service)(nil)

// GetBySlug looks up a catalogued post by slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*interfaces.PostRecord, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrSlugRequired
	}
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return toPostRecord(post), nil
}

// List returns every catalogued post.
func (s *Service) List(ctx context.Context) ([]*interfaces.PostRecord, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]*interfaces.PostRecord, 0, len(posts))
	for _, post := range posts {
		records = append(records, toPostRecord(post))
	}
	return records, nil
}

// Create validates and indexes a new post. IDs derive deterministically from
// the slug so repeated imports stay idempotent.
func (s *Service) Create(ctx context.Context, req interfaces.PostCreateRequest) (*interfaces.PostRecord, error) {
	if err := s.validateWrite(req.Slug, req.Title, req.Date, req.LastMod, req.Metadata); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	post := &Post{
		ID:          identity.PostUUID(req.Slug),
		Slug:        req.Slug,
		Section:     strings.TrimSpace(req.Section),
		Title:       strings.TrimSpace(req.Title),
		Description: optionalString(req.Description),
		Author:      optionalString(req.Author),
		Date:        req.Date,
		LastMod:     req.LastMod,
		Draft:       req.Draft,
		Categories:  NormalizeLabels(req.Categories),
		Tags:        NormalizeLabels(req.Tags),
		Body:        req.Body,
		SourcePath:  req.SourcePath,
		Format:      normalizeFormat(req.Format),
		Checksum:    req.Checksum,
		Metadata:    req.Metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	if s.logger != nil {
		s.logger.Info("record.post.created", "slug", created.Slug, "section", created.Section)
	}
	return toPostRecord(created), nil
}

// Update replaces a catalogued post.
func (s *Service) Update(ctx context.Context, req interfaces.PostUpdateRequest) (*interfaces.PostRecord, error) {
	if req.ID == uuid.Nil {
		return nil, ErrPostIDRequired
	}
	if err := s.validateWrite(req.Slug, req.Title, req.Date, req.LastMod, req.Metadata); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	existing.Slug = req.Slug
	existing.Section = strings.TrimSpace(req.Section)
	existing.Title = strings.TrimSpace(req.Title)
	existing.Description = optionalString(req.Description)
	existing.Author = optionalString(req.Author)
	existing.Date = req.Date
	existing.LastMod = req.LastMod
	existing.Draft = req.Draft
	existing.Categories = NormalizeLabels(req.Categories)
	existing.Tags = NormalizeLabels(req.Tags)
	existing.Body = req.Body
	existing.SourcePath = req.SourcePath
	existing.Format = normalizeFormat(req.Format)
	existing.Checksum = req.Checksum
	existing.Metadata = req.Metadata
	existing.UpdatedAt = s.now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	if s.logger != nil {
		s.logger.Info("record.post.updated", "slug", updated.Slug)
	}
	return toPostRecord(updated), nil
}

// Delete removes a post from the catalogue by ID or slug.
func (s *Service) Delete(ctx context.Context, req interfaces.PostDeleteRequest) error {
	id := req.ID
	if id == uuid.Nil {
		slug := strings.TrimSpace(req.Slug)
		if slug == "" {
			return ErrPostIDRequired
		}
		post, err := s.repo.GetBySlug(ctx, slug)
		if err != nil {
			return err
		}
		id = post.ID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Info("record.post.deleted", "id", id.String())
	}
	return nil
}

func (s *Service) validateWrite(slug, title string, date time.Time, lastMod *time.Time, metadata map[string]any) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ErrSlugRequired
	}
	if !IsValidSlug(slug) {
		return ErrSlugInvalid
	}
	if strings.TrimSpace(title) == "" {
		return &MissingFieldError{Field: "title"}
	}
	if date.IsZero() {
		return &MissingFieldError{Field: "date"}
	}
	if lastMod != nil && lastMod.Before(date) {
		return &TimestampError{Field: "lastmod", Reason: "lastmod precedes date"}
	}
	if s.validator != nil && len(metadata) > 0 {
		if err := s.validator.ValidatePayload(metadata); err != nil {
			return err
		}
	}
	return nil
}

func toPostRecord(post *Post) *interfaces.PostRecord {
	if post == nil {
		return nil
	}
	return &interfaces.PostRecord{
		ID:          post.ID,
		Slug:        post.Slug,
		Section:     post.Section,
		Title:       post.Title,
		Description: stringValue(post.Description),
		Author:      stringValue(post.Author),
		Date:        post.Date,
		LastMod:     post.LastMod,
		Draft:       post.Draft,
		Categories:  append([]string(nil), post.Categories...),
		Tags:        append([]string(nil), post.Tags...),
		Body:        post.Body,
		SourcePath:  post.SourcePath,
		Format:      post.Format,
		Checksum:    post.Checksum,
		Metadata:    post.Metadata,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

func normalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "yaml":
		return "yaml"
	case "toml":
		return "toml"
	case "json":
		return "json"
	default:
		return strings.ToLower(strings.TrimSpace(format))
	}
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
