package lessonplancmd

import (
	"errors"

	"github.com/goliatone/go-coursebuilder/internal/commands"
	"github.com/goliatone/go-coursebuilder/internal/lessonplan"
	"github.com/goliatone/go-coursebuilder/internal/logging"
	"github.com/goliatone/go-coursebuilder/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the lesson-plan command handlers produced by
// RegisterLessonPlanCommands.
type HandlerSet struct {
	Generate *GenerateLessonPlanHandler
	Save     *SaveLessonPlanHandler
	Delete   *DeleteLessonPlanHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	generateHandlerOpts []commands.HandlerOption[GenerateLessonPlanCommand]
	saveHandlerOpts     []commands.HandlerOption[SaveLessonPlanCommand]
	deleteHandlerOpts   []commands.HandlerOption[DeleteLessonPlanCommand]
}

// WithGenerateHandlerOptions forwards options to the GenerateLessonPlanHandler constructor.
func WithGenerateHandlerOptions(opts ...commands.HandlerOption[GenerateLessonPlanCommand]) Option {
	return func(cfg *options) {
		cfg.generateHandlerOpts = append(cfg.generateHandlerOpts, opts...)
	}
}

// WithSaveHandlerOptions forwards options to the SaveLessonPlanHandler constructor.
func WithSaveHandlerOptions(opts ...commands.HandlerOption[SaveLessonPlanCommand]) Option {
	return func(cfg *options) {
		cfg.saveHandlerOpts = append(cfg.saveHandlerOpts, opts...)
	}
}

// WithDeleteHandlerOptions forwards options to the DeleteLessonPlanHandler constructor.
func WithDeleteHandlerOptions(opts ...commands.HandlerOption[DeleteLessonPlanCommand]) Option {
	return func(cfg *options) {
		cfg.deleteHandlerOpts = append(cfg.deleteHandlerOpts, opts...)
	}
}

// RegisterLessonPlanCommands builds lesson-plan command handlers and registers
// them with the provided registry. The constructed HandlerSet is returned so
// callers can wire additional integrations as needed.
func RegisterLessonPlanCommands(reg CommandRegistry, service lessonplan.Service, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("lesson plan command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := logging.CommandsLogger(provider)
	set := &HandlerSet{
		Generate: NewGenerateLessonPlanHandler(service, logger, cfg.generateHandlerOpts...),
		Save:     NewSaveLessonPlanHandler(service, logger, cfg.saveHandlerOpts...),
		Delete:   NewDeleteLessonPlanHandler(service, logger, cfg.deleteHandlerOpts...),
	}

	if reg != nil {
		if err := reg.RegisterCommand(set.Generate); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(set.Save); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(set.Delete); err != nil {
			return nil, err
		}
	}

	return set, nil
}
