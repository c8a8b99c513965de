// Package httptransport assembles the public HTTP surface: the middleware
// pipeline, operational endpoints, and the school routes.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campusdir/internal/platform/metrics"
	"campusdir/internal/platform/middleware"
	"campusdir/internal/school/handler"
	dErrors "campusdir/pkg/domain-errors"
	"campusdir/pkg/platform/httputil"
	"campusdir/pkg/requestcontext"
)

// NewRouter wires all public endpoints behind the shared middleware chain.
// RequestID runs first so every later stage, including panic recovery and the
// not-found responder, sees the correlation ID.
func NewRouter(logger *slog.Logger, m *metrics.Metrics, school *handler.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Latency(m))

	r.Get("/health", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	school.Register(r)

	routeNotFound := func(w http.ResponseWriter, req *http.Request) {
		httputil.WriteError(w, req, logger,
			dErrors.New(dErrors.CodeNotFound, "Route not found: "+req.URL.Path))
	}
	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	return r
}

// handleHealth reports liveness regardless of dataset state.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": requestcontext.Now(r.Context()).UTC().Format(time.RFC3339),
	})
}
