package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Config controls how the record service discovers and parses files.
type Config struct {
	BasePath        string
	DefaultSection  string
	Sections        []string
	SectionPatterns map[string]string
	Pattern         string
	Recursive       bool
	// AllowDrafts imports draft records by default; callers can still opt in
	// per call through ImportOptions.
	AllowDrafts bool
	Inspector   interfaces.InspectOptions
}

// Service implements interfaces.RecordService for filesystem-backed records.
type Service struct {
	cfg       Config
	inspector interfaces.BodyInspector
	loader    *Loader
	importer  *Importer
}

// NewService constructs a record service using an underlying loader. When
// inspector is nil, a goldmark inspector with the configured defaults is
// created. The importer stays nil until a store is attached.
func NewService(cfg Config, inspector interfaces.BodyInspector) (*Service, error) {
	filesystem, err := prepareFilesystem(cfg.BasePath)
	if err != nil {
		return nil, err
	}
	return NewServiceWithFS(filesystem, cfg, inspector)
}

// NewServiceWithFS is NewService with an explicit filesystem, primarily for tests.
func NewServiceWithFS(filesystem fs.FS, cfg Config, inspector interfaces.BodyInspector) (*Service, error) {
	if inspector == nil {
		inspector = NewGoldmarkInspector(cfg.Inspector)
	}

	loader := NewLoader(filesystem, LoaderConfig{
		BasePath:        cfg.BasePath,
		DefaultSection:  cfg.DefaultSection,
		Sections:        cfg.Sections,
		SectionPatterns: cfg.SectionPatterns,
		Pattern:         cfg.Pattern,
		Recursive:       cfg.Recursive,
	})

	return &Service{
		cfg:       cfg,
		inspector: inspector,
		loader:    loader,
	}, nil
}

// AttachStore wires the post catalogue so Import and Sync become available.
func (s *Service) AttachStore(store interfaces.PostStore, logger interfaces.Logger) {
	s.importer = NewImporter(ImporterConfig{
		Store:  store,
		Logger: logger,
	})
}

// Load reads a single record relative to the configured base path.
func (s *Service) Load(ctx context.Context, path string, opts interfaces.LoadOptions) (*interfaces.Record, error) {
	result, err := s.loader.LoadFile(ctx, s.normalisePath(path), toLoaderParams(opts))
	if err != nil {
		return nil, err
	}
	return result.Record, nil
}

// LoadDirectory reads every record within the supplied directory.
func (s *Service) LoadDirectory(ctx context.Context, dir string, opts interfaces.LoadOptions) ([]*interfaces.Record, error) {
	results, err := s.loader.LoadDirectory(ctx, s.normalisePath(dir), toLoaderParams(opts))
	if err != nil {
		return nil, err
	}

	recs := make([]*interfaces.Record, 0, len(results))
	for _, result := range results {
		recs = append(recs, result.Record)
	}

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].FilePath < recs[j].FilePath
	})
	return recs, nil
}

// Inspect analyses the record body and caches the report on the record.
func (s *Service) Inspect(ctx context.Context, rec *interfaces.Record, opts interfaces.InspectOptions) (*interfaces.BodyReport, error) {
	if rec == nil {
		return nil, errors.New("record service: record is nil")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	report, err := s.inspector.InspectWithOptions(rec.Body, mergeInspectOptions(s.cfg.Inspector, opts))
	if err != nil {
		return nil, fmt.Errorf("record inspect %s: %w", rec.FilePath, err)
	}
	rec.Report = report
	return report, nil
}

// Serialize re-emits the record in its original front matter format.
func (s *Service) Serialize(rec *interfaces.Record) ([]byte, error) {
	return Serialize(rec)
}

// Import catalogues a single record.
func (s *Service) Import(ctx context.Context, rec *interfaces.Record, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	if s.importer == nil {
		return nil, ErrStoreRequired
	}
	return s.importer.ImportRecord(ctx, rec, s.applyDraftPolicy(opts))
}

// ImportDirectory loads and catalogues every record under dir.
func (s *Service) ImportDirectory(ctx context.Context, dir string, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	if s.importer == nil {
		return nil, ErrStoreRequired
	}
	recs, err := s.LoadDirectory(ctx, dir, interfaces.LoadOptions{})
	if err != nil {
		return nil, err
	}
	return s.importer.ImportRecords(ctx, recs, s.applyDraftPolicy(opts))
}

// Sync mirrors the directory into the catalogue, optionally removing rows
// whose source files disappeared.
func (s *Service) Sync(ctx context.Context, dir string, opts interfaces.SyncOptions) (*interfaces.SyncResult, error) {
	if s.importer == nil {
		return nil, ErrStoreRequired
	}
	recs, err := s.LoadDirectory(ctx, dir, interfaces.LoadOptions{})
	if err != nil {
		return nil, err
	}
	opts.ImportOptions = s.applyDraftPolicy(opts.ImportOptions)
	return s.importer.SyncRecords(ctx, recs, opts)
}

func (s *Service) applyDraftPolicy(opts interfaces.ImportOptions) interfaces.ImportOptions {
	if s.cfg.AllowDrafts {
		opts.AllowDrafts = true
	}
	return opts
}

func (s *Service) normalisePath(path string) string {
	if strings.TrimSpace(path) == "" {
		return "."
	}
	clean := filepath.Clean(path)
	if filepath.IsAbs(clean) && strings.TrimSpace(s.cfg.BasePath) != "" {
		if rel, err := filepath.Rel(s.cfg.BasePath, clean); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(clean)
}

func mergeInspectOptions(base, override interfaces.InspectOptions) interfaces.InspectOptions {
	result := base
	if len(override.Extensions) > 0 {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.SkipShortcodes {
		result.SkipShortcodes = true
	}
	return result
}

func toLoaderParams(opts interfaces.LoadOptions) LoadParams {
	return LoadParams{
		Pattern:         opts.Pattern,
		SectionPatterns: opts.SectionPatterns,
		Recursive:       opts.Recursive,
	}
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("record service: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
