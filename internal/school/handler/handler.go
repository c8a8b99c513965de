// Package handler wires the school read endpoints to the school service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"campusdir/internal/school/metrics"
	"campusdir/internal/school/models"
	"campusdir/pkg/platform/httputil"
	"campusdir/pkg/requestcontext"
)

// Service defines the interface for school read operations.
type Service interface {
	List(ctx context.Context) ([]models.Record, error)
	Get(ctx context.Context, guid string) (models.Record, error)
}

// Handler handles the school endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs a school handler with its dependencies.
func New(service Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: m,
	}
}

// Register mounts the school endpoints on the router. The single-record
// route is a bare path parameter, so it must be registered after any static
// routes the caller owns.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.HandleList)
	r.Get("/{guid}", h.HandleGet)
}

// HandleList handles GET / requests, returning the full dataset in order.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	records, err := h.service.List(ctx)
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}

	h.metrics.ObserveList(start)
	h.metrics.AddRecordsServed(len(records))
	h.logger.DebugContext(ctx, "records listed",
		"request_id", requestcontext.RequestID(ctx),
		"count", len(records),
	)

	httputil.WriteJSON(w, http.StatusOK, records)
}

// HandleGet handles GET /{guid} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	guid := chi.URLParam(r, "guid")

	record, err := h.service.Get(ctx, guid)
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}

	h.metrics.ObserveLookup(start)
	h.metrics.AddRecordsServed(1)
	h.logger.DebugContext(ctx, "record fetched",
		"request_id", requestcontext.RequestID(ctx),
		"guid", guid,
	)

	httputil.WriteJSON(w, http.StatusOK, record)
}
