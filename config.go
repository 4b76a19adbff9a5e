package blog

import "github.com/goliatone/go-blog/internal/runtimeconfig"

var (
	ErrContentDirRequired      = runtimeconfig.ErrContentDirRequired
	ErrStorageDriverUnknown    = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired      = runtimeconfig.ErrStorageDSNRequired
	ErrCacheRequiresStorage    = runtimeconfig.ErrCacheRequiresStorage
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrSchemaInvalid           = runtimeconfig.ErrSchemaInvalid
)

type (
	Config        = runtimeconfig.Config
	RecordsConfig = runtimeconfig.RecordsConfig
	InspectConfig = runtimeconfig.InspectConfig
	StorageConfig = runtimeconfig.StorageConfig
	CacheConfig   = runtimeconfig.CacheConfig
	SchemaConfig  = runtimeconfig.SchemaConfig
	LoggingConfig = runtimeconfig.LoggingConfig
	Features      = runtimeconfig.Features
)

// DefaultConfig exposes the runtime defaults for embedding hosts.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
