package di

import (
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/markdown"
	recordstore "github.com/goliatone/go-blog/internal/record"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/internal/validation"
	"github.com/goliatone/go-blog/pkg/interfaces"
	blogrecord "github.com/goliatone/go-blog/record"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// Container wires module dependencies from configuration plus optional overrides.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider  interfaces.LoggerProvider
	schemaValidator interfaces.SchemaValidator

	recordFS fs.FS

	postStore interfaces.PostStore
	recordSvc interfaces.RecordService
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB supplies the database handle backing the post catalogue.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default repository cache bindings.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides logger construction entirely.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithSchemaValidator overrides the custom field validator binding.
func WithSchemaValidator(validator interfaces.SchemaValidator) Option {
	return func(c *Container) {
		c.schemaValidator = validator
	}
}

// WithPostStore overrides the default post catalogue binding.
func WithPostStore(store interfaces.PostStore) Option {
	return func(c *Container) {
		c.postStore = store
	}
}

// WithRecordService overrides the default record service binding.
func WithRecordService(svc interfaces.RecordService) Option {
	return func(c *Container) {
		c.recordSvc = svc
	}
}

// WithRecordFS overrides the content filesystem, primarily for tests.
func WithRecordFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.recordFS = fsys
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cacheTTL,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	if err := c.configureSchemaValidator(); err != nil {
		return nil, err
	}
	if err := c.configureStore(); err != nil {
		return nil, err
	}
	if err := c.configureRecords(); err != nil {
		return nil, err
	}

	return c, nil
}

// LoggerProvider exposes the configured logging provider; may be nil when the
// logging feature is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// PostStore returns the configured catalogue service; nil without storage.
func (c *Container) PostStore() interfaces.PostStore {
	return c.postStore
}

// RecordService returns the configured record service; nil when the records
// feature is disabled.
func (c *Container) RecordService() interfaces.RecordService {
	return c.recordSvc
}

// SchemaValidator returns the custom field validator; nil when unset.
func (c *Container) SchemaValidator() interfaces.SchemaValidator {
	return c.schemaValidator
}

// BunDB exposes the database handle for host-managed migrations.
func (c *Container) BunDB() *bun.DB {
	return c.bunDB
}

// CacheService exposes the repository cache binding for advanced integrations.
func (c *Container) CacheService() repocache.CacheService {
	return c.cacheService
}

// KeySerializer exposes the cache key serializer binding.
func (c *Container) KeySerializer() repocache.KeySerializer {
	return c.keySerializer
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	logCfg := c.Config.Logging
	switch strings.ToLower(strings.TrimSpace(logCfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
			Focus:     logCfg.Focus,
		})
		if err != nil {
			return fmt.Errorf("configure logging: %w", err)
		}
		c.loggerProvider = provider
	default:
		// Console falls back to go-logger's console output.
		provider, err := gologger.NewProvider(gologger.Config{
			Level:  logCfg.Level,
			Format: "console",
		})
		if err != nil {
			return fmt.Errorf("configure logging: %w", err)
		}
		c.loggerProvider = provider
	}
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureSchemaValidator() error {
	if c.schemaValidator != nil || !c.Config.Schema.Enabled {
		return nil
	}
	validator, err := validation.NewValidator(c.Config.Schema.Document)
	if err != nil {
		return fmt.Errorf("configure schema validator: %w", err)
	}
	c.schemaValidator = validator
	return nil
}

func (c *Container) configureStore() error {
	if c.postStore != nil || c.bunDB == nil {
		return nil
	}

	repo := recordstore.NewBunPostRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)

	svcOpts := []blogrecord.ServiceOption{
		blogrecord.WithLogger(logging.StoreLogger(c.loggerProvider)),
	}
	if c.schemaValidator != nil {
		svcOpts = append(svcOpts, blogrecord.WithSchemaValidator(c.schemaValidator))
	}

	c.postStore = blogrecord.NewService(repo, svcOpts...)
	return nil
}

func (c *Container) configureRecords() error {
	if c.recordSvc != nil || !c.Config.Features.Records {
		return nil
	}

	recCfg := c.Config.Records
	svcCfg := markdown.Config{
		BasePath:        recCfg.ContentDir,
		DefaultSection:  recCfg.DefaultSection,
		Sections:        recCfg.Sections,
		SectionPatterns: recCfg.SectionPatterns,
		Pattern:         recCfg.Pattern,
		Recursive:       recCfg.Recursive,
		AllowDrafts:     c.Config.Features.Drafts,
		Inspector: interfaces.InspectOptions{
			Extensions:     recCfg.Inspect.Extensions,
			SkipShortcodes: recCfg.Inspect.SkipShortcodes,
		},
	}

	var (
		svc *markdown.Service
		err error
	)
	if c.recordFS != nil {
		svc, err = markdown.NewServiceWithFS(c.recordFS, svcCfg, nil)
	} else {
		svc, err = markdown.NewService(svcCfg, nil)
	}
	if err != nil {
		return fmt.Errorf("configure records: %w", err)
	}

	if c.postStore != nil {
		svc.AttachStore(c.postStore, logging.MarkdownLogger(c.loggerProvider))
	}

	c.recordSvc = svc
	return nil
}
