// Package queue runs named background jobs one at a time. The channel-backed
// worker keeps long passes off scheduler and HTTP goroutines without wiring a
// broker.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"attendsync/internal/attendance/metrics"
	"attendsync/pkg/platform/audit"
	"attendsync/pkg/platform/sentinel"
)

// Job is one unit of background work.
type Job struct {
	Name string
	// Timeout bounds the execution; zero means no bound.
	Timeout time.Duration
	Run     func(ctx context.Context) error
}

type Queue struct {
	jobs    chan Job
	logger  *slog.Logger
	sink    audit.Sink
	metrics *metrics.Metrics
}

type Option func(*Queue)

func WithAuditSink(sink audit.Sink) Option {
	return func(q *Queue) {
		q.sink = sink
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(q *Queue) {
		q.metrics = m
	}
}

func New(size int, logger *slog.Logger, opts ...Option) *Queue {
	if size <= 0 {
		size = 16
	}
	q := &Queue{
		jobs:   make(chan Job, size),
		logger: logger,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Submit enqueues a job without blocking. A full queue returns
// sentinel.ErrUnavailable so callers can shed load instead of stalling.
func (q *Queue) Submit(job Job) error {
	if job.Run == nil {
		return fmt.Errorf("job %q has no work function", job.Name)
	}
	select {
	case q.jobs <- job:
		return nil
	default:
		return fmt.Errorf("job queue full, dropping %q: %w", job.Name, sentinel.ErrUnavailable)
	}
}

// Run consumes jobs until ctx is cancelled. Job failures are logged and
// audited, never fatal: the worker outlives any single job.
func (q *Queue) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job := <-q.jobs:
			q.execute(ctx, job)
		}
	}
}

func (q *Queue) execute(ctx context.Context, job Job) {
	if job.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, job.Timeout)
		defer cancel()
	}

	start := time.Now()
	q.logger.Info("job started", "job", job.Name)

	if err := job.Run(ctx); err != nil {
		q.logger.Error("job failed", "job", job.Name, "elapsed", time.Since(start), "error", err)
		if q.metrics != nil {
			q.metrics.JobFailures.WithLabelValues(job.Name).Inc()
		}
		if q.sink != nil {
			event := audit.Event{
				Category: audit.CategoryScheduledJob,
				Message:  fmt.Sprintf("job %s failed: %v", job.Name, err),
				RefID:    job.Name,
			}
			if aerr := q.sink.Append(context.WithoutCancel(ctx), event); aerr != nil {
				q.logger.Warn("audit append failed", "error", aerr)
			}
		}
		return
	}

	q.logger.Info("job finished", "job", job.Name, "elapsed", time.Since(start))
}
