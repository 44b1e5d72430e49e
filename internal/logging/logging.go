// Package logging provides context-scoped structured logging built on zerolog.
//
// Commands attach a configured logger to their context at startup; every
// downstream component retrieves it with FromContext and adds component and
// operation fields. Components never construct their own root loggers.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ctxKey is the private context key type for logger storage.
type ctxKey struct{}

// New creates a root logger writing human-readable output to w at the given
// level. An unparseable level string falls back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(console).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// WithContext returns a child context carrying the given logger.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext retrieves the logger stored in ctx. If no logger was attached,
// a disabled-by-default stderr logger is returned so call sites never need a
// nil check.
func FromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger()
}
