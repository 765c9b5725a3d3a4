// Package logging provides structured JSON logging for Spriteforge.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with additional context fields.
type Logger struct {
	*slog.Logger
}

type contextKey string

const (
	runIDKey   contextKey = "run_id"
	projectKey contextKey = "project"
	commandKey contextKey = "command"
)

// New creates a new Logger with JSON output.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a new Logger with JSON output to the provided writer.
func NewWithWriter(w io.Writer) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{Logger: slog.New(handler)}
}

// Discard returns a logger that drops all output.
func Discard() *Logger {
	return NewWithWriter(io.Discard)
}

// WithContext returns a logger with context values attached.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	logger := l.Logger

	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		logger = logger.With(slog.String("run_id", runID))
	}
	if project, ok := ctx.Value(projectKey).(string); ok && project != "" {
		logger = logger.With(slog.String("project", project))
	}
	if command, ok := ctx.Value(commandKey).(string); ok && command != "" {
		logger = logger.With(slog.String("command", command))
	}

	return &Logger{Logger: logger}
}

// With returns a new logger with additional attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// ContextWithRunID adds an optimizer run ID to the context.
func ContextWithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// ContextWithProject adds a project name to the context.
func ContextWithProject(ctx context.Context, project string) context.Context {
	return context.WithValue(ctx, projectKey, project)
}

// ContextWithCommand adds a CLI command name to the context.
func ContextWithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}
