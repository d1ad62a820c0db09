package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendsync/internal/platform/queue"
)

func newTestHandler(t *testing.T, queueSize int, healthDeps map[string]HealthChecker) (*Handler, *queue.Queue) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	q := queue.New(queueSize, logger)
	job := func() queue.Job {
		return queue.Job{Name: "test", Run: func(context.Context) error { return nil }}
	}
	return NewHandler(q, job, job, healthDeps, logger), q
}

func TestSyncTrigger(t *testing.T) {
	h, _ := newTestHandler(t, 4, nil)
	router := NewRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body["message"], "started in the background")
}

func TestReportTrigger(t *testing.T) {
	h, _ := newTestHandler(t, 4, nil)
	router := NewRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/exceptional", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestTriggerMethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t, 4, nil)
	router := NewRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sync", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSyncTriggerFullQueue(t *testing.T) {
	h, q := newTestHandler(t, 1, nil)
	router := NewRouter(h)

	// Fill the queue; no worker is draining it.
	require.NoError(t, q.Submit(queue.Job{Name: "filler", Run: func(context.Context) error { return nil }}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthz(t *testing.T) {
	t.Run("healthy dependencies", func(t *testing.T) {
		deps := map[string]HealthChecker{
			"postgres": HealthFunc(func(context.Context) error { return nil }),
		}
		h, _ := newTestHandler(t, 4, deps)
		router := NewRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unhealthy dependency surfaces its name", func(t *testing.T) {
		deps := map[string]HealthChecker{
			"postgres": HealthFunc(func(context.Context) error { return errors.New("down") }),
		}
		h, _ := newTestHandler(t, 4, deps)
		router := NewRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "postgres", body["dependency"])
	})
}
