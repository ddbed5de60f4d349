package di

import (
	"strings"
	"time"

	"github.com/goliatone/go-coursebuilder/internal/lessonplan"
	"github.com/goliatone/go-coursebuilder/internal/logging"
	"github.com/goliatone/go-coursebuilder/internal/logging/gologger"
	"github.com/goliatone/go-coursebuilder/internal/markdown"
	"github.com/goliatone/go-coursebuilder/internal/runtimeconfig"
	"github.com/goliatone/go-coursebuilder/internal/worksheet"
	"github.com/goliatone/go-coursebuilder/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// Container wires module dependencies. Memory repositories are the default;
// providing a bun.DB switches the storage layer to bun-backed repositories.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider
	parser         interfaces.MarkdownParser

	worksheetRepo  worksheet.Repository
	lessonPlanRepo lessonplan.Repository

	worksheetSvc  worksheet.Service
	lessonPlanSvc lessonplan.Service
	importer      *markdown.Importer

	worksheetOpts  []worksheet.ServiceOption
	lessonPlanOpts []lessonplan.ServiceOption
}

// Option mutates the container before it is finalised.
type Option func(*Container)

func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the default logger provider binding.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithMarkdownParser overrides the default goldmark parser binding.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.parser = parser
	}
}

// WithWorksheetRepository overrides the default worksheet repository binding.
func WithWorksheetRepository(repo worksheet.Repository) Option {
	return func(c *Container) {
		if repo != nil {
			c.worksheetRepo = repo
		}
	}
}

// WithLessonPlanRepository overrides the default lesson-plan repository binding.
func WithLessonPlanRepository(repo lessonplan.Repository) Option {
	return func(c *Container) {
		if repo != nil {
			c.lessonPlanRepo = repo
		}
	}
}

// WithWorksheetService overrides the default worksheet service binding.
func WithWorksheetService(svc worksheet.Service) Option {
	return func(c *Container) {
		c.worksheetSvc = svc
	}
}

// WithLessonPlanService overrides the default lesson-plan service binding.
func WithLessonPlanService(svc lessonplan.Service) Option {
	return func(c *Container) {
		c.lessonPlanSvc = svc
	}
}

// WithWorksheetServiceOptions forwards options to the default worksheet service constructor.
func WithWorksheetServiceOptions(opts ...worksheet.ServiceOption) Option {
	return func(c *Container) {
		c.worksheetOpts = append(c.worksheetOpts, opts...)
	}
}

// WithLessonPlanServiceOptions forwards options to the default lesson-plan service constructor.
func WithLessonPlanServiceOptions(opts ...lessonplan.ServiceOption) Option {
	return func(c *Container) {
		c.lessonPlanOpts = append(c.lessonPlanOpts, opts...)
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
		Config:         cfg,
		cacheTTL:       cacheTTL,
		worksheetRepo:  worksheet.NewMemoryRepository(),
		lessonPlanRepo: lessonplan.NewMemoryRepository(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureRepositories()
	c.configureMarkdown()

	if c.worksheetSvc == nil {
		svcOpts := []worksheet.ServiceOption{}
		if c.parser != nil {
			svcOpts = append(svcOpts, worksheet.WithParser(c.parser))
		}
		svcOpts = append(svcOpts, c.worksheetOpts...)
		c.worksheetSvc = worksheet.NewService(c.worksheetRepo, svcOpts...)
	}

	if c.lessonPlanSvc == nil {
		svcOpts := []lessonplan.ServiceOption{}
		if c.parser != nil {
			svcOpts = append(svcOpts, lessonplan.WithParser(c.parser))
		}
		svcOpts = append(svcOpts, c.lessonPlanOpts...)
		c.lessonPlanSvc = lessonplan.NewService(c.lessonPlanRepo, svcOpts...)
	}

	c.importer = markdown.NewImporter(markdown.ImporterConfig{
		Worksheets:  c.worksheetSvc,
		LessonPlans: c.lessonPlanSvc,
		Logger:      logging.MarkdownLogger(c.loggerProvider),
	})

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}
	if provider := strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)); provider != "gologger" {
		return nil
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
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
		if err != nil {
			// Repositories fall back to uncached access; surface the reason.
			logging.ModuleLogger(c.loggerProvider, "").Warn("cache.service.unavailable", "error", err)
			return
		}
		c.cacheService = service
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.bunDB == nil {
		return
	}
	c.worksheetRepo = worksheet.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.lessonPlanRepo = lessonplan.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
}

func (c *Container) configureMarkdown() {
	if c.parser != nil || !c.Config.Markdown.Enabled {
		return
	}
	c.parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{
		Extensions: c.Config.Markdown.Parser.Extensions,
		Sanitize:   c.Config.Markdown.Parser.Sanitize,
		HardWraps:  c.Config.Markdown.Parser.HardWraps,
		SafeMode:   c.Config.Markdown.Parser.SafeMode,
	})
}

// WorksheetService returns the configured worksheet service.
func (c *Container) WorksheetService() worksheet.Service {
	return c.worksheetSvc
}

// LessonPlanService returns the configured lesson-plan service.
func (c *Container) LessonPlanService() lessonplan.Service {
	return c.lessonPlanSvc
}

// Importer returns the Markdown document importer.
func (c *Container) Importer() *markdown.Importer {
	return c.importer
}

// MarkdownParser returns the configured parser, or nil when markdown is disabled.
func (c *Container) MarkdownParser() interfaces.MarkdownParser {
	return c.parser
}

// LoggerProvider returns the configured logger provider, which may be nil.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// DB returns the configured bun database handle, which may be nil.
func (c *Container) DB() *bun.DB {
	return c.bunDB
}
