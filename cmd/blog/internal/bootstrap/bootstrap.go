package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	blog "github.com/goliatone/go-blog"
	"github.com/goliatone/go-blog/internal/di"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Options captures configuration for blog CLI bootstraps.
type Options struct {
	ContentDir      string
	Pattern         string
	Recursive       bool
	DefaultSection  string
	Sections        []string
	SectionPatterns map[string]string
	Driver          string
	DSN             string
	CacheEnabled    bool
	LoggerProvider  interfaces.LoggerProvider
}

// Module wraps the blog module and the configured record service/logger.
type Module struct {
	Module  *blog.Module
	Service interfaces.RecordService
	Logger  interfaces.Logger
}

// BuildModule constructs a blog module configured for record operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := blog.DefaultConfig()
	cfg.Features.Records = true
	cfg.Features.Logger = true
	cfg.Records.ContentDir = strings.TrimSpace(opts.ContentDir)
	if cfg.Records.ContentDir == "" {
		cfg.Records.ContentDir = "content"
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Records.Pattern = trimmed
	}
	if opts.SectionPatterns != nil {
		cfg.Records.SectionPatterns = opts.SectionPatterns
	}
	if len(opts.Sections) > 0 {
		cfg.Records.Sections = cloneStrings(opts.Sections)
	}
	if section := strings.TrimSpace(opts.DefaultSection); section != "" {
		cfg.Records.DefaultSection = section
	}
	cfg.Records.Recursive = opts.Recursive

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	if dsn := strings.TrimSpace(opts.DSN); dsn != "" {
		cfg.Storage.Enabled = true
		cfg.Storage.Driver = normalizeDriver(opts.Driver)
		cfg.Storage.DSN = dsn
		cfg.Cache.Enabled = opts.CacheEnabled

		db, err := OpenDatabase(cfg.Storage.Driver, dsn)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if err := blog.EnsureSchema(context.Background(), db); err != nil {
			return nil, fmt.Errorf("prepare database schema: %w", err)
		}
		diOpts = append(diOpts, di.WithBunDB(db))
	}

	module, err := blog.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise blog module: %w", err)
	}

	service := module.Records()
	if service == nil {
		return nil, fmt.Errorf("record service not configured; ensure records feature is enabled")
	}

	logger := logging.RecordLogger(module.Container().LoggerProvider())

	return &Module{
		Module:  module,
		Service: service,
		Logger:  logger,
	}, nil
}

// OpenDatabase connects to the configured database and wraps it with bun.
func OpenDatabase(driver, dsn string) (*bun.DB, error) {
	switch normalizeDriver(driver) {
	case "postgres":
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		return bun.NewDB(sqldb, pgdialect.New()), nil
	case "sqlite", "":
		sqldb, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, err
		}
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}

// SplitSections parses a comma separated section list into a trimmed slice.
func SplitSections(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	sections := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sections = append(sections, trimmed)
		}
	}
	return sections
}

func normalizeDriver(driver string) string {
	return strings.ToLower(strings.TrimSpace(driver))
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
