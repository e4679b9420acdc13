// Package middleware contains HTTP middleware for the local API server.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/factum-app/factum/internal/api/shared"
	"github.com/factum-app/factum/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and attaches a
// trace-scoped logger that downstream handlers and services pick up via
// logger.FromContext. Apply it early in the middleware chain.
func TraceMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			reqLogger := log.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, reqLogger)

			reqLogger.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
