package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with additional context and structured logging
type Logger struct {
	*slog.Logger
	component string
}

// Config holds logger configuration
type Config struct {
	Level     slog.Level
	Format    string // "text" or "json"
	Component string
	Output    io.Writer
	Handler   slog.Handler
}

// DefaultConfig returns sensible defaults for logging. Output goes to stderr
// so that command output on stdout stays clean.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelWarn,
		Format:    "text",
		Component: ComponentApp,
		Output:    os.Stderr,
	}
}

// ParseLevel maps a config string onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// New creates a new logger with the given configuration
func New(config Config) *Logger {
	var handler slog.Handler
	if config.Handler != nil {
		handler = config.Handler
	} else {
		out := config.Output
		if out == nil {
			out = os.Stderr
		}
		opts := &slog.HandlerOptions{Level: config.Level}
		if config.Format == "json" {
			handler = slog.NewJSONHandler(out, opts)
		} else {
			handler = slog.NewTextHandler(out, opts)
		}
	}

	return &Logger{
		Logger:    slog.New(handler),
		component: config.Component,
	}
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *Logger {
	return New(Config{Component: ComponentApp, Output: io.Discard})
}

// With returns a new logger with the given attributes
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		component: l.component,
	}
}

// WithComponent returns a new logger with a specific component name
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger,
		component: component,
	}
}

// InfoContext logs at Info level with context and component
func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.Logger.InfoContext(ctx, msg, append([]any{FieldComponent, l.component}, args...)...)
}

// WarnContext logs at Warn level with context and component
func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.Logger.WarnContext(ctx, msg, append([]any{FieldComponent, l.component}, args...)...)
}

// ErrorContext logs at Error level with context and component
func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.Logger.ErrorContext(ctx, msg, append([]any{FieldComponent, l.component}, args...)...)
}

// DebugContext logs at Debug level with context and component
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.Logger.DebugContext(ctx, msg, append([]any{FieldComponent, l.component}, args...)...)
}

// SetDefault sets the default logger for the application
func SetDefault(logger *Logger) {
	slog.SetDefault(logger.Logger)
}

// Component returns the logger's component name
func (l *Logger) Component() string {
	return l.component
}
