// Package logger builds the structured logger used across the module.
// It wraps "log/slog" so that format (JSON or text), level and the identity
// attributes are decided in one place from config.AppConfig.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/rafaeljc/guard/internal/config"
	"github.com/rafaeljc/guard/internal/guard"
)

// New returns a logger for cfg writing to os.Stdout.
func New(cfg *config.AppConfig) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter returns a logger for cfg writing to w.
// It panics with a guard error when cfg or w is nil.
func NewWithWriter(cfg *config.AppConfig, w io.Writer) *slog.Logger {
	guard.AssertNotNil(cfg, "logger config")
	guard.MustNotNull("log writer", w)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
		// file:line is useful while developing, too costly in production
		AddSource: !cfg.IsProduction(),
	}

	var handler slog.Handler
	switch cfg.LogFormat {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("service", cfg.Name),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Environment),
	)
}

// Error returns the conventional "error" attribute for err.
// Guard failures are rendered as a group with the offending argument.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}

	var argErr *guard.ArgumentError
	if !errors.As(err, &argErr) {
		return slog.String("error", err.Error())
	}
	if error(argErr) == err {
		return slog.Any("error", argErr)
	}

	// wrapped: keep the caller's context next to the structured cause
	return slog.Group("error",
		slog.String("message", err.Error()),
		slog.Any("cause", argErr),
	)
}

// parseLevel converts s to a slog.Level, defaulting to INFO.
func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
