package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrContentDirRequired indicates the records module is enabled without a content root.
var ErrContentDirRequired = errors.New("blog config: records content directory is required when records are enabled")

// ErrStorageDriverUnknown indicates an unsupported storage driver identifier.
var ErrStorageDriverUnknown = errors.New("blog config: storage driver is invalid")

// ErrStorageDSNRequired indicates storage was enabled without a connection string.
var ErrStorageDSNRequired = errors.New("blog config: storage DSN is required when storage is enabled")

// ErrCacheRequiresStorage ensures the repository cache only builds on top of an enabled store.
var ErrCacheRequiresStorage = errors.New("blog config: cache requires storage to be enabled")

var ErrLoggingProviderRequired = errors.New("blog config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("blog config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("blog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("blog config: logging format is invalid")
var ErrSchemaInvalid = errors.New("blog config: custom field schema must be a JSON object")

// Config aggregates feature flags and adapter bindings for the blog module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Records  RecordsConfig
	Storage  StorageConfig
	Cache    CacheConfig
	Schema   SchemaConfig
	Logging  LoggingConfig
	Features Features
}

// RecordsConfig captures filesystem and parser behaviour for post ingestion.
type RecordsConfig struct {
	ContentDir      string
	DefaultSection  string
	Sections        []string
	SectionPatterns map[string]string
	Pattern         string
	Recursive       bool
	Inspect         InspectConfig
}

// InspectConfig mirrors interfaces.InspectOptions for runtime configuration.
type InspectConfig struct {
	Extensions     []string
	SkipShortcodes bool
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Enabled bool
	Driver  string
	DSN     string
}

// CacheConfig captures repository cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// SchemaConfig optionally constrains custom front matter fields with a JSON schema.
type SchemaConfig struct {
	Enabled bool
	// Document holds the JSON schema applied to the free-form metadata map.
	Document map[string]any
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality. Drafts makes import and sync include
// records flagged draft: true without requiring AllowDrafts on every call.
type Features struct {
	Records bool
	Drafts  bool
	Logger  bool
}

// DefaultConfig returns opinionated defaults for embedding hosts.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Records: RecordsConfig{
			ContentDir:      "content",
			DefaultSection:  "posts",
			Pattern:         "*.md",
			Recursive:       true,
			SectionPatterns: map[string]string{},
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			DSN:    "file::memory:?cache=shared",
		},
		Cache: CacheConfig{
			Enabled:    false,
			DefaultTTL: time.Minute,
		},
		Schema: SchemaConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
		Features: Features{
			Records: true,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Features.Records {
		if strings.TrimSpace(cfg.Records.ContentDir) == "" {
			return ErrContentDirRequired
		}
	}
	if cfg.Storage.Enabled {
		driver := normalizeDriver(cfg.Storage.Driver)
		if !isSupportedDriver(driver) {
			return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
		}
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	}
	if cfg.Cache.Enabled && !cfg.Storage.Enabled {
		return ErrCacheRequiresStorage
	}
	if cfg.Schema.Enabled && len(cfg.Schema.Document) == 0 {
		return ErrSchemaInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeDriver(driver string) string {
	return strings.ToLower(strings.TrimSpace(driver))
}

func isSupportedDriver(driver string) bool {
	switch driver {
	case "sqlite", "postgres":
		return true
	default:
		return false
	}
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
