package logger

import (
	"context"
	"log/slog"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey int

const loggerKey contextKey = iota

// WithLogger returns a new context carrying the given logger.
// Handlers and middleware attach request-scoped loggers this way so
// downstream code picks up the request's trace attributes.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext retrieves the logger stored in the context.
// It falls back to slog.Default when the context carries no logger,
// so callers always get a usable logger back.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger stored in the context, or
// returns the provided default when the context carries none. Components
// that hold their own configured logger use this to prefer a
// request-scoped one when available.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
		return log
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
