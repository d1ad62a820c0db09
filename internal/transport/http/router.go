package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"attendsync/pkg/platform/middleware/metadata"
	"attendsync/pkg/platform/middleware/requesttime"
)

// NewRouter wires the trigger and operational endpoints.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(metadata.RequestMetadata)
	r.Use(requesttime.Middleware)

	r.Post("/api/v1/sync", h.handleSync)
	r.Post("/api/v1/reports/exceptional", h.handleReport)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}
