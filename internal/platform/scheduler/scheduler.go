// Package scheduler registers named periodic triggers on a cron runner.
// Registration is idempotent create-or-update so startup can declare the
// schedule unconditionally.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"attendsync/pkg/platform/audit"
)

// Job binds a periodic trigger to a callable unit of work.
type Job struct {
	Name string
	// Schedule is a cron expression; descriptors like @hourly are accepted.
	Schedule string
	Enabled  bool
	// CreateLog appends an audit event for every execution.
	CreateLog bool
	Run       func(ctx context.Context) error
}

type entry struct {
	job Job
	id  cron.EntryID
}

type Registry struct {
	cron   *cron.Cron
	logger *slog.Logger
	sink   audit.Sink

	mu      sync.Mutex
	entries map[string]entry
}

func NewRegistry(logger *slog.Logger, sink audit.Sink) *Registry {
	return &Registry{
		cron:    cron.New(),
		logger:  logger,
		sink:    sink,
		entries: make(map[string]entry),
	}
}

// Register creates or updates the named trigger. A disabled job stays
// registered but is removed from the cron runner.
func (r *Registry) Register(job Job) error {
	if job.Name == "" {
		return fmt.Errorf("job name is required")
	}
	if job.Run == nil {
		return fmt.Errorf("job %q has no work function", job.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[job.Name]; ok && existing.id != 0 {
		r.cron.Remove(existing.id)
	}

	if !job.Enabled {
		r.entries[job.Name] = entry{job: job}
		r.logger.Info("scheduled job registered disabled", "job", job.Name)
		return nil
	}

	id, err := r.cron.AddFunc(job.Schedule, r.wrap(job))
	if err != nil {
		return fmt.Errorf("schedule job %q: %w", job.Name, err)
	}
	r.entries[job.Name] = entry{job: job, id: id}
	r.logger.Info("scheduled job registered", "job", job.Name, "schedule", job.Schedule)
	return nil
}

// Registered reports whether a job of that name exists and whether it is
// currently enabled.
func (r *Registry) Registered(name string) (bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[name]
	if !ok {
		return false, false
	}
	return true, e.job.Enabled
}

func (r *Registry) wrap(job Job) func() {
	return func() {
		ctx := context.Background()
		err := job.Run(ctx)
		if err != nil {
			r.logger.Error("scheduled job failed", "job", job.Name, "error", err)
		}
		if !job.CreateLog || r.sink == nil {
			return
		}
		message := fmt.Sprintf("job %s executed", job.Name)
		if err != nil {
			message = fmt.Sprintf("job %s failed: %v", job.Name, err)
		}
		event := audit.Event{
			Category: audit.CategoryScheduledJob,
			Message:  message,
			RefID:    job.Name,
		}
		if aerr := r.sink.Append(ctx, event); aerr != nil {
			r.logger.Warn("audit append failed", "error", aerr)
		}
	}
}

// Start launches the cron runner in its own goroutine.
func (r *Registry) Start() {
	r.cron.Start()
}

// Stop halts scheduling and waits for running jobs to finish.
func (r *Registry) Stop(ctx context.Context) error {
	stopped := r.cron.Stop()
	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
