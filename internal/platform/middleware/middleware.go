// Package middleware holds the request pipeline stages shared by every route:
// correlation ID assignment, request-scoped time, access logging, panic
// recovery, and traffic metrics. Stages communicate with handlers only
// through the request context.
package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"campusdir/internal/platform/metrics"
	"campusdir/pkg/platform/httputil"
	"campusdir/pkg/requestcontext"
)

// RequestIDHeader is the response header carrying the correlation ID.
const RequestIDHeader = "X-Request-ID"

// RequestID mints a correlation ID for each request, stores it in the context
// and echoes it on the response. IDs are always generated server-side; inbound
// headers are ignored.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		ctx := requestcontext.WithRequestID(r.Context(), id)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestTime captures the current time at the start of the request so all
// work within one request sees the same "now".
func RequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger emits one access-log line per completed response.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.InfoContext(r.Context(), "request completed",
					"request_id", requestcontext.RequestID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"duration_ms", time.Since(start).Milliseconds(),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// Recovery converts handler panics into the standard 500 envelope instead of
// tearing down the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					ctx := r.Context()
					requestID := requestcontext.RequestID(ctx)
					logger.ErrorContext(ctx, "panic recovered",
						"request_id", requestID,
						"method", r.Method,
						"path", r.URL.Path,
						"panic", rec,
						"stack", string(debug.Stack()),
					)
					httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ErrorEnvelope{
						Error: httputil.ErrorBody{
							Message:    "Internal server error",
							StatusCode: http.StatusInternalServerError,
							RequestID:  requestID,
						},
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Latency observes request count and duration. A nil Metrics disables
// observation, which handler tests rely on to avoid duplicate registration.
func Latency(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m == nil {
				next.ServeHTTP(w, r)
				return
			}
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			m.ObserveRequest(r.Method, ww.Status(), start)
		})
	}
}
