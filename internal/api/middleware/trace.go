// Package middleware holds the HTTP middleware specific to this service.
// Generic middleware comes from github.com/go-chi/chi/v5/middleware.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/lesson-plan-api/internal/api/shared"
)

// TraceMiddleware adds a trace ID to the request context and echoes it in the
// X-Trace-ID response header. A well-formed UUID supplied by the client in the
// same header is reused.
// This middleware should be applied early in the middleware chain to ensure
// that all subsequent handlers have access to the trace ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if incoming := r.Header.Get(shared.TraceIDHeader); incoming != "" {
			if _, err := uuid.Parse(incoming); err == nil {
				ctx = shared.WithTraceID(ctx, incoming)
			}
		}
		if shared.GetTraceID(ctx) == "" {
			ctx = shared.SetTraceID(ctx)
		}

		traceID := shared.GetTraceID(ctx)
		w.Header().Set(shared.TraceIDHeader, traceID)

		slog.DebugContext(ctx, "request started",
			slog.String("trace_id", traceID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
