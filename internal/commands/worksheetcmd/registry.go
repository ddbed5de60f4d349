package worksheetcmd

import (
	"errors"

	"github.com/goliatone/go-coursebuilder/internal/commands"
	"github.com/goliatone/go-coursebuilder/internal/logging"
	"github.com/goliatone/go-coursebuilder/internal/worksheet"
	"github.com/goliatone/go-coursebuilder/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the worksheet command handlers produced by
// RegisterWorksheetCommands.
type HandlerSet struct {
	Generate *GenerateWorksheetHandler
	Save     *SaveWorksheetHandler
	Delete   *DeleteWorksheetHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	generateHandlerOpts []commands.HandlerOption[GenerateWorksheetCommand]
	saveHandlerOpts     []commands.HandlerOption[SaveWorksheetCommand]
	deleteHandlerOpts   []commands.HandlerOption[DeleteWorksheetCommand]
}

// WithGenerateHandlerOptions forwards options to the GenerateWorksheetHandler constructor.
func WithGenerateHandlerOptions(opts ...commands.HandlerOption[GenerateWorksheetCommand]) Option {
	return func(cfg *options) {
		cfg.generateHandlerOpts = append(cfg.generateHandlerOpts, opts...)
	}
}

// WithSaveHandlerOptions forwards options to the SaveWorksheetHandler constructor.
func WithSaveHandlerOptions(opts ...commands.HandlerOption[SaveWorksheetCommand]) Option {
	return func(cfg *options) {
		cfg.saveHandlerOpts = append(cfg.saveHandlerOpts, opts...)
	}
}

// WithDeleteHandlerOptions forwards options to the DeleteWorksheetHandler constructor.
func WithDeleteHandlerOptions(opts ...commands.HandlerOption[DeleteWorksheetCommand]) Option {
	return func(cfg *options) {
		cfg.deleteHandlerOpts = append(cfg.deleteHandlerOpts, opts...)
	}
}

// RegisterWorksheetCommands builds worksheet command handlers and registers
// them with the provided registry. The constructed HandlerSet is returned so
// callers can wire additional integrations as needed.
func RegisterWorksheetCommands(reg CommandRegistry, service worksheet.Service, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("worksheet command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := logging.CommandsLogger(provider)
	set := &HandlerSet{
		Generate: NewGenerateWorksheetHandler(service, logger, cfg.generateHandlerOpts...),
		Save:     NewSaveWorksheetHandler(service, logger, cfg.saveHandlerOpts...),
		Delete:   NewDeleteWorksheetHandler(service, logger, cfg.deleteHandlerOpts...),
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
