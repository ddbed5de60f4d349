package commands

import (
	"errors"

	"github.com/goliatone/go-coursebuilder/internal/commands/lessonplancmd"
	"github.com/goliatone/go-coursebuilder/internal/commands/worksheetcmd"
	"github.com/goliatone/go-coursebuilder/internal/di"
	"github.com/goliatone/go-coursebuilder/pkg/interfaces"
)

// CommandRegistry records command handlers so hosts can expose them via CLI or cron.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	LoggerProvider interfaces.LoggerProvider
}

// RegistrationResult captures the constructed command handlers and any dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// RegisterContainerCommands builds the command handlers exposed by the provided
// container and optionally registers them with registry/dispatcher integrations.
// Dispatcher registration additionally requires Commands.AutoRegisterDispatcher.
func RegisterContainerCommands(container *di.Container, opts RegistrationOptions) (*RegistrationResult, error) {
	if container == nil {
		return &RegistrationResult{}, nil
	}

	cfg := container.Config

	provider := opts.LoggerProvider
	if provider == nil {
		provider = container.LoggerProvider()
	}

	result := &RegistrationResult{
		Handlers:      make([]any, 0),
		Subscriptions: make([]CommandSubscription, 0),
	}

	if !cfg.Features.Commands && !cfg.Commands.Enabled {
		return result, errors.New("no command handlers registered; enable the commands feature")
	}

	var errs error

	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil && cfg.Commands.AutoRegisterDispatcher {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}
	}

	if service := container.WorksheetService(); service != nil {
		set, err := worksheetcmd.RegisterWorksheetCommands(nil, service, provider)
		if err != nil {
			errs = errors.Join(errs, err)
		} else if set != nil {
			register(set.Generate)
			register(set.Save)
			register(set.Delete)
		}
	}

	if service := container.LessonPlanService(); service != nil {
		set, err := lessonplancmd.RegisterLessonPlanCommands(nil, service, provider)
		if err != nil {
			errs = errors.Join(errs, err)
		} else if set != nil {
			register(set.Generate)
			register(set.Save)
			register(set.Delete)
		}
	}

	if errs != nil && len(result.Handlers) == 0 {
		return result, errs
	}

	if len(result.Handlers) == 0 {
		return result, errors.New("no command handlers registered; ensure services are configured")
	}

	return result, errs
}
