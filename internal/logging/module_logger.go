package logging

import (
	"context"

	"github.com/goliatone/go-coursebuilder/pkg/interfaces"
)

const (
	rootModule       = "coursebuilder"
	worksheetModule  = "coursebuilder.worksheet"
	lessonPlanModule = "coursebuilder.lessonplan"
	markdownModule   = "coursebuilder.markdown"
	commandsModule   = "coursebuilder.commands"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// WorksheetLogger returns the logger namespace reserved for worksheet services.
func WorksheetLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, worksheetModule)
}

// LessonPlanLogger returns the logger namespace reserved for lesson-plan services.
func LessonPlanLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, lessonPlanModule)
}

// MarkdownLogger returns the logger namespace reserved for markdown rendering.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// CommandsLogger returns the logger namespace reserved for the command layer.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
