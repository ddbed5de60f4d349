package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrStorageProviderUnknown indicates an unsupported storage provider identifier.
var ErrStorageProviderUnknown = errors.New("coursebuilder config: storage provider is invalid")

// ErrCacheRequiresEnabledCache ensures cached repositories build only when cache is enabled.
var ErrCacheRequiresEnabledCache = errors.New("coursebuilder config: cached repositories require cache to be enabled")

// ErrCacheTTLInvalid rejects negative cache lifetimes.
var ErrCacheTTLInvalid = errors.New("coursebuilder config: cache TTL must be zero or positive")
var ErrImportFeatureRequiresMarkdown = errors.New("coursebuilder config: import feature requires markdown to be enabled")
var ErrLoggingProviderRequired = errors.New("coursebuilder config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("coursebuilder config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("coursebuilder config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("coursebuilder config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the course builder
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Enabled  bool
	Storage  StorageConfig
	Cache    CacheConfig
	Features Features
	Commands CommandsConfig
	Markdown MarkdownConfig
	Logging  LoggingConfig
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
	Driver   string
}

// CacheConfig captures cache behaviour toggles for the repository layer.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// Features toggles module functionality.
type Features struct {
	Markdown bool
	Import   bool
	Commands bool
	Cache    bool
	Logger   bool
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled                bool
	AutoRegisterDispatcher bool
}

// MarkdownConfig captures parser behaviour for worksheet and lesson-plan previews.
type MarkdownConfig struct {
	Enabled bool
	Parser  MarkdownParserConfig
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for in-memory usage.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Provider: "memory",
			Driver:   "sqlite",
		},
		Cache: CacheConfig{
			Enabled:    false,
			DefaultTTL: time.Minute,
		},
		Features: Features{
			Markdown: true,
		},
		Commands: CommandsConfig{},
		Markdown: MarkdownConfig{
			Enabled: true,
			Parser: MarkdownParserConfig{
				Extensions: []string{"gfm"},
				SafeMode:   true,
			},
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if provider := normalizeProvider(cfg.Storage.Provider); provider != "" && !isSupportedStorage(provider) {
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}
	if cfg.Features.Cache && !cfg.Cache.Enabled {
		return ErrCacheRequiresEnabledCache
	}
	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if cfg.Features.Import && !cfg.Markdown.Enabled {
		return ErrImportFeatureRequiresMarkdown
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

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedStorage(provider string) bool {
	switch provider {
	case "memory", "bun":
		return true
	default:
		return false
	}
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
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
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
