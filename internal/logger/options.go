package logger

import (
	"io"
	"log/slog"
)

type Option func(*Config)

func WithLevel(level slog.Level) Option {
	return func(c *Config) {
		c.Level = level
	}
}

func WithOutput(output io.Writer) Option {
	return func(c *Config) {
		c.Output = output
	}
}

// WithFormat sets the log format ("json" or "text").
func WithFormat(format string) Option {
	return func(c *Config) {
		c.Format = format
	}
}

func WithSource(enabled bool) Option {
	return func(c *Config) {
		c.AddSource = enabled
	}
}
