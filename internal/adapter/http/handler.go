package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"perfcore/internal/core/port"
	"perfcore/internal/observability/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the analytics usecase and a logger for structured logging.
// Routes are registered on a chi.Router.
type Handler struct {
	svc    port.AnalyticsUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.AnalyticsUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(instrument)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Unversioned /api is what the data injector scripts call.
	r.Route("/api/v1", h.apiRoutes)
	r.Route("/api", h.apiRoutes)
	h.router = r
	return h
}

func (h *Handler) apiRoutes(r chi.Router) {
	r.Get("/campaigns", h.handleListCampaigns)
	r.Post("/campaigns", h.handleCreateCampaign)
	r.Get("/stats/overview", h.handleStatsOverview)
	r.Post("/ga4/seed-data/{campaignID}", h.handleSeedGA4)
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// instrument records request count and latency per route pattern.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps usecase errors onto status codes. Unknown errors are
// logged and reported as 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, port.ErrInvalidDays),
		errors.Is(err, port.ErrUnknownWebsiteType),
		errors.Is(err, port.ErrInvalidCampaign):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
