package coursebuilder

import "github.com/goliatone/go-coursebuilder/internal/runtimeconfig"

var (
	ErrStorageProviderUnknown        = runtimeconfig.ErrStorageProviderUnknown
	ErrCacheRequiresEnabledCache     = runtimeconfig.ErrCacheRequiresEnabledCache
	ErrCacheTTLInvalid               = runtimeconfig.ErrCacheTTLInvalid
	ErrImportFeatureRequiresMarkdown = runtimeconfig.ErrImportFeatureRequiresMarkdown
	ErrLoggingProviderRequired       = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown        = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid           = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid          = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	StorageConfig        = runtimeconfig.StorageConfig
	CacheConfig          = runtimeconfig.CacheConfig
	Features             = runtimeconfig.Features
	CommandsConfig       = runtimeconfig.CommandsConfig
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
