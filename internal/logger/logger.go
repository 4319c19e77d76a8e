// Package logger wraps log/slog with the handful of constructors the service needs.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LoggerInterface is what the rest of the service logs through.
type LoggerInterface interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Debug(msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	With(args ...any) LoggerInterface
}

type Logger struct {
	*slog.Logger
}

type Config struct {
	Level     slog.Level
	Output    io.Writer
	Format    string // "json" or "text"
	AddSource bool
}

func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelInfo,
		Output: os.Stdout,
		Format: "json",
	}
}

func New(config Config) LoggerInterface {
	opts := &slog.HandlerOptions{
		Level:     config.Level,
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	switch config.Format {
	case "text":
		handler = slog.NewTextHandler(config.Output, opts)
	default:
		handler = slog.NewJSONHandler(config.Output, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewWithOptions builds a logger from DefaultConfig adjusted by opts.
func NewWithOptions(opts ...Option) LoggerInterface {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return New(config)
}

// ParseLevel maps "debug", "warn", "error" to slog levels; anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.Logger.Log(ctx, slog.LevelInfo, msg, args...)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.Logger.Log(ctx, slog.LevelError, msg, args...)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.Logger.Log(ctx, slog.LevelWarn, msg, args...)
}

func (l *Logger) With(args ...any) LoggerInterface {
	return &Logger{Logger: l.Logger.With(args...)}
}

// NoOpLogger discards everything; used by tests.
func NoOpLogger() LoggerInterface {
	return &Logger{Logger: slog.New(noOpHandler{})}
}

type noOpHandler struct{}

func (h noOpHandler) Handle(_ context.Context, _ slog.Record) error { return nil }

func (h noOpHandler) Enabled(_ context.Context, _ slog.Level) bool { return false }

func (h noOpHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h noOpHandler) WithGroup(_ string) slog.Handler { return h }
