package markdown

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/record"
)

var (
	ErrStoreRequired = errors.New("record importer: post store is required")
	ErrNilRecord     = errors.New("record importer: nil record")
)

// ImporterConfig encapsulates dependencies required to catalogue records.
type ImporterConfig struct {
	Store  interfaces.PostStore
	Logger interfaces.Logger
}

// Importer writes parsed records into the post catalogue. Source files are
// never touched; the catalogue is a derived index keyed by slug.
type Importer struct {
	store  interfaces.PostStore
	logger interfaces.Logger
}

// NewImporter builds an Importer from the supplied configuration.
func NewImporter(cfg ImporterConfig) *Importer {
	return &Importer{
		store:  cfg.Store,
		logger: cfg.Logger,
	}
}

// ImportRecord imports a single record.
func (i *Importer) ImportRecord(ctx context.Context, rec *interfaces.Record, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	if i.store == nil {
		return nil, ErrStoreRequired
	}
	acc := newImportAccumulator()
	if err := i.applyRecord(ctx, rec, opts, acc); err != nil {
		acc.addError(err)
	}
	return acc.result(), firstError(acc.errors)
}

// ImportRecords imports an arbitrary slice of records.
func (i *Importer) ImportRecords(ctx context.Context, recs []*interfaces.Record, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	if i.store == nil {
		return nil, ErrStoreRequired
	}

	acc := newImportAccumulator()
	for _, rec := range recs {
		if err := i.applyRecord(ctx, rec, opts, acc); err != nil {
			acc.addError(err)
		}
	}
	return acc.result(), firstError(acc.errors)
}

// SyncRecords imports all provided records and optionally deletes orphaned
// catalogue rows whose source files disappeared.
func (i *Importer) SyncRecords(ctx context.Context, recs []*interfaces.Record, opts interfaces.SyncOptions) (*interfaces.SyncResult, error) {
	if i.store == nil {
		return nil, ErrStoreRequired
	}

	acc := newSyncAccumulator()
	seen := make(map[string]struct{}, len(recs))

	for _, rec := range recs {
		res := newImportAccumulator()
		if err := i.applyRecord(ctx, rec, opts.ImportOptions, res); err != nil {
			res.addError(err)
		} else if slug, err := record.DeriveSlug(rec); err == nil {
			seen[slug] = struct{}{}
		}
		acc.merge(res.result())
	}

	if opts.DeleteOrphaned {
		if err := i.deleteOrphaned(ctx, seen, opts, acc); err != nil {
			acc.addError(err)
		}
	}

	return acc.result(), firstError(acc.errors)
}

func (i *Importer) applyRecord(ctx context.Context, rec *interfaces.Record, opts interfaces.ImportOptions, acc *importAccumulator) error {
	if rec == nil {
		return ErrNilRecord
	}
	if err := record.ValidateRecord(rec); err != nil {
		return err
	}

	slug, err := record.DeriveSlug(rec)
	if err != nil {
		return err
	}

	if rec.FrontMatter.Draft && !opts.AllowDrafts {
		acc.skip(slug)
		return nil
	}

	checksum := hex.EncodeToString(rec.Checksum)

	existing, err := i.store.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, record.ErrPostNotFound) {
		return fmt.Errorf("record importer: catalogue lookup %s: %w", slug, err)
	}

	if existing == nil {
		if opts.DryRun {
			acc.created(slug)
			return nil
		}
		if _, err := i.store.Create(ctx, buildCreateRequest(rec, slug, checksum)); err != nil {
			return fmt.Errorf("record importer: create post %s: %w", slug, err)
		}
		acc.created(slug)
		i.log("record.import.created", rec, slug)
		return nil
	}

	if existing.Checksum == checksum {
		acc.skip(slug)
		return nil
	}

	if opts.DryRun {
		acc.updated(slug)
		return nil
	}

	update := buildUpdateRequest(rec, slug, checksum)
	update.ID = existing.ID
	if _, err := i.store.Update(ctx, update); err != nil {
		return fmt.Errorf("record importer: update post %s: %w", slug, err)
	}
	acc.updated(slug)
	i.log("record.import.updated", rec, slug)
	return nil
}

func (i *Importer) deleteOrphaned(ctx context.Context, seen map[string]struct{}, opts interfaces.SyncOptions, acc *syncAccumulator) error {
	existing, err := i.store.List(ctx)
	if err != nil {
		return fmt.Errorf("record importer: list catalogue: %w", err)
	}

	for _, post := range existing {
		if _, ok := seen[post.Slug]; ok {
			continue
		}
		if opts.DryRun {
			acc.deleted++
			continue
		}
		if err := i.store.Delete(ctx, interfaces.PostDeleteRequest{ID: post.ID, Slug: post.Slug}); err != nil {
			return fmt.Errorf("record importer: delete post %s: %w", post.Slug, err)
		}
		acc.deleted++
		if i.logger != nil {
			i.logger.Info("record.import.orphan_deleted", "slug", post.Slug)
		}
	}

	return nil
}

func (i *Importer) log(msg string, rec *interfaces.Record, slug string) {
	if i.logger == nil {
		return
	}
	i.logger.Info(msg, "slug", slug, "path", rec.FilePath, "section", rec.Section)
}

func buildCreateRequest(rec *interfaces.Record, slug, checksum string) interfaces.PostCreateRequest {
	fm := rec.FrontMatter
	return interfaces.PostCreateRequest{
		Slug:        slug,
		Section:     rec.Section,
		Title:       strings.TrimSpace(fm.Title),
		Description: fm.Description,
		Author:      fm.Author,
		Date:        fm.Date,
		LastMod:     fm.LastMod,
		Draft:       fm.Draft,
		Categories:  fm.Categories,
		Tags:        fm.Tags,
		Body:        string(rec.Body),
		SourcePath:  rec.FilePath,
		Format:      rec.Format,
		Checksum:    checksum,
		Metadata:    fm.Custom,
	}
}

func buildUpdateRequest(rec *interfaces.Record, slug, checksum string) interfaces.PostUpdateRequest {
	create := buildCreateRequest(rec, slug, checksum)
	return interfaces.PostUpdateRequest{
		Slug:        create.Slug,
		Section:     create.Section,
		Title:       create.Title,
		Description: create.Description,
		Author:      create.Author,
		Date:        create.Date,
		LastMod:     create.LastMod,
		Draft:       create.Draft,
		Categories:  create.Categories,
		Tags:        create.Tags,
		Body:        create.Body,
		SourcePath:  create.SourcePath,
		Format:      create.Format,
		Checksum:    create.Checksum,
		Metadata:    create.Metadata,
	}
}

type importAccumulator struct {
	createdSlugs []string
	updatedSlugs []string
	skippedSlugs []string
	errors       []error
}

func newImportAccumulator() *importAccumulator {
	return &importAccumulator{}
}

func (a *importAccumulator) created(slug string) { a.createdSlugs = append(a.createdSlugs, slug) }
func (a *importAccumulator) updated(slug string) { a.updatedSlugs = append(a.updatedSlugs, slug) }
func (a *importAccumulator) skip(slug string)    { a.skippedSlugs = append(a.skippedSlugs, slug) }
func (a *importAccumulator) addError(err error)  { a.errors = append(a.errors, err) }

func (a *importAccumulator) result() *interfaces.ImportResult {
	return &interfaces.ImportResult{
		CreatedSlugs: a.createdSlugs,
		UpdatedSlugs: a.updatedSlugs,
		SkippedSlugs: a.skippedSlugs,
		Errors:       a.errors,
	}
}

type syncAccumulator struct {
	created int
	updated int
	deleted int
	skipped int
	errors  []error
}

func newSyncAccumulator() *syncAccumulator {
	return &syncAccumulator{}
}

func (a *syncAccumulator) merge(res *interfaces.ImportResult) {
	if res == nil {
		return
	}
	a.created += len(res.CreatedSlugs)
	a.updated += len(res.UpdatedSlugs)
	a.skipped += len(res.SkippedSlugs)
	a.errors = append(a.errors, res.Errors...)
}

func (a *syncAccumulator) addError(err error) { a.errors = append(a.errors, err) }

func (a *syncAccumulator) result() *interfaces.SyncResult {
	return &interfaces.SyncResult{
		Created: a.created,
		Updated: a.updated,
		Deleted: a.deleted,
		Skipped: a.skipped,
		Errors:  a.errors,
	}
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
