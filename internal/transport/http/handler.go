// Package httptransport exposes the manual trigger and operational
// endpoints. It is a thin layer: requests enqueue jobs and return, the real
// work happens on the queue worker.
package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"attendsync/internal/platform/queue"
	"attendsync/pkg/platform/sentinel"
	"attendsync/pkg/requestcontext"
)

// HealthChecker is anything that can report readiness of a dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthFunc adapts a plain function to HealthChecker.
type HealthFunc func(ctx context.Context) error

func (f HealthFunc) Health(ctx context.Context) error {
	return f(ctx)
}

type Handler struct {
	queue       *queue.Queue
	syncJob     func() queue.Job
	reportJob   func() queue.Job
	healthDeps  map[string]HealthChecker
	logger      *slog.Logger
}

func NewHandler(q *queue.Queue, syncJob, reportJob func() queue.Job, healthDeps map[string]HealthChecker, logger *slog.Logger) *Handler {
	return &Handler{
		queue:      q,
		syncJob:    syncJob,
		reportJob:  reportJob,
		healthDeps: healthDeps,
		logger:     logger,
	}
}

func (h *Handler) handleSync(w http.ResponseWriter, r *http.Request) {
	h.enqueue(w, r, h.syncJob(), "employee checkin synchronization has started in the background")
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	h.enqueue(w, r, h.reportJob(), "exceptional report generation has started in the background")
}

func (h *Handler) enqueue(w http.ResponseWriter, r *http.Request, job queue.Job, message string) {
	ctx := r.Context()
	if err := h.queue.Submit(job); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, sentinel.ErrUnavailable) {
			status = http.StatusServiceUnavailable
		}
		h.logger.Warn("job submission rejected",
			"job", job.Name,
			"request_id", requestcontext.RequestID(ctx),
			"client_ip", requestcontext.ClientIP(ctx),
			"error", err)
		writeJSON(w, status, map[string]string{"error": "job queue unavailable"})
		return
	}
	h.logger.Info("job enqueued",
		"job", job.Name,
		"request_id", requestcontext.RequestID(ctx),
		"client_ip", requestcontext.ClientIP(ctx))
	writeJSON(w, http.StatusAccepted, map[string]string{"message": message})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	for name, dep := range h.healthDeps {
		if err := dep.Health(ctx); err != nil {
			h.logger.Warn("health check failed", "dependency", name, "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":     "unhealthy",
				"dependency": name,
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
