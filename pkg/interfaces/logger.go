package interfaces

import "context"

// Logger is the leveled logging contract used across the builder packages.
// The method set matches github.com/goliatone/go-logger, so hosts already on
// that stack can wire their loggers in directly.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider resolves named loggers, typically one child per module.
// Returning a shared instance for every name is a valid implementation.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for loggers that can carry persistent
// structured fields. The returned logger applies the fields to every entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
