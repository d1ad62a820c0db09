// Package sync implements the staging-to-checkin reconciliation engine. It
// is the sole writer of staged punch statuses and the sole creator of
// checkin records.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"attendsync/internal/attendance/metrics"
	"attendsync/internal/attendance/models"
	"attendsync/internal/attendance/ports"
	"attendsync/pkg/platform/audit"
	"attendsync/pkg/platform/sentinel"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type Service struct {
	runner    ports.TxRunner
	staging   ports.StagingStore
	employees ports.EmployeeDirectory
	checkins  ports.CheckinStore

	locker  ports.Locker
	sink    audit.Sink
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithAuditSink routes per-record failures into the audit log.
func WithAuditSink(sink audit.Sink) Option {
	return func(s *Service) {
		s.sink = sink
	}
}

// WithLocker serializes passes across processes. Without a locker the caller
// is responsible for never running two passes at once.
func WithLocker(locker ports.Locker) Option {
	return func(s *Service) {
		s.locker = locker
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(runner ports.TxRunner, staging ports.StagingStore, employees ports.EmployeeDirectory, checkins ports.CheckinStore, opts ...Option) (*Service, error) {
	if runner == nil {
		return nil, fmt.Errorf("tx runner is required")
	}
	if staging == nil {
		return nil, fmt.Errorf("staging store is required")
	}
	if employees == nil {
		return nil, fmt.Errorf("employee directory is required")
	}
	if checkins == nil {
		return nil, fmt.Errorf("checkin store is required")
	}

	svc := &Service{
		runner:    runner,
		staging:   staging,
		employees: employees,
		checkins:  checkins,
		logger:    slog.Default(),
		tracer:    otel.Tracer("attendsync/sync"),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Reconcile sweeps every pending staged punch once. Per record: resolve the
// employee by attendance device id (no match marks the record Ignored), check
// for an existing checkin at the exact punch time (a hit marks it Duplicate),
// otherwise create the checkin and mark the record Processed. A failing
// record is logged and left untouched for the next pass; it never aborts the
// batch. All mutations commit together at the end of the pass.
func (s *Service) Reconcile(ctx context.Context) (models.SyncReport, error) {
	ctx, span := s.tracer.Start(ctx, "reconcile.pass")
	defer span.End()

	var report models.SyncReport

	if s.locker != nil {
		acquired, err := s.locker.TryLock(ctx)
		if err != nil {
			return report, fmt.Errorf("acquire pass lock: %w", err)
		}
		if !acquired {
			s.logger.Info("reconciliation pass already active, skipping")
			s.countPass("skipped")
			return report, nil
		}
		defer func() {
			if err := s.locker.Unlock(context.WithoutCancel(ctx)); err != nil {
				s.logger.Warn("release pass lock failed", "error", err)
			}
		}()
	}

	start := time.Now()
	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		pending, err := s.staging.ListPending(ctx)
		if err != nil {
			// Pass-level failure: nothing was swept, let the scheduler see it.
			return fmt.Errorf("list pending punches: %w", err)
		}

		for _, punch := range pending {
			var outcome models.PunchStatus
			err := s.runner.Isolated(ctx, func(ctx context.Context) error {
				var perr error
				outcome, perr = s.processRecord(ctx, punch)
				return perr
			})
			if err != nil {
				report.Failed++
				s.recordFailure(ctx, punch, err)
				continue
			}

			switch outcome {
			case models.StatusProcessed:
				report.Processed++
			case models.StatusIgnored:
				report.Ignored++
			case models.StatusDuplicate:
				report.Duplicate++
			}
		}
		return nil
	})

	s.observe(report, time.Since(start))
	span.SetAttributes(
		attribute.Int("reconcile.processed", report.Processed),
		attribute.Int("reconcile.ignored", report.Ignored),
		attribute.Int("reconcile.duplicate", report.Duplicate),
		attribute.Int("reconcile.failed", report.Failed),
	)
	if err != nil {
		s.countPass("failed")
		return report, err
	}

	s.countPass("ok")
	s.logger.Info("reconciliation pass complete",
		"total", report.Total(),
		"processed", report.Processed,
		"ignored", report.Ignored,
		"duplicate", report.Duplicate,
		"failed", report.Failed,
	)
	return report, nil
}

// processRecord decides one record's outcome. The returned status has
// already been written to the staging store when the error is nil.
func (s *Service) processRecord(ctx context.Context, punch models.StagedPunch) (models.PunchStatus, error) {
	emp, err := s.employees.ByDeviceID(ctx, punch.AttendanceDeviceID)
	if errors.Is(err, sentinel.ErrNotFound) {
		if err := s.staging.SetStatus(ctx, punch.ID, models.StatusIgnored); err != nil {
			return "", err
		}
		return models.StatusIgnored, nil
	}
	if err != nil {
		return "", err
	}

	// Duplicate check precedes creation: a record is never Processed when a
	// matching checkin already exists.
	exists, err := s.checkins.Exists(ctx, emp.ID, punch.Timestamp)
	if err != nil {
		return "", err
	}
	if exists {
		if err := s.staging.SetStatus(ctx, punch.ID, models.StatusDuplicate); err != nil {
			return "", err
		}
		return models.StatusDuplicate, nil
	}

	err = s.checkins.Create(ctx, models.Checkin{
		EmployeeID: emp.ID,
		Time:       punch.Timestamp,
		LogType:    punch.PunchType,
		DeviceID:   punch.DeviceID,
	})
	if errors.Is(err, sentinel.ErrConflict) {
		// Lost a race with another writer between the existence check and
		// the insert. Same outcome as the duplicate check.
		if err := s.staging.SetStatus(ctx, punch.ID, models.StatusDuplicate); err != nil {
			return "", err
		}
		return models.StatusDuplicate, nil
	}
	if err != nil {
		return "", err
	}

	if err := s.staging.SetStatus(ctx, punch.ID, models.StatusProcessed); err != nil {
		return "", err
	}
	return models.StatusProcessed, nil
}

func (s *Service) recordFailure(ctx context.Context, punch models.StagedPunch, err error) {
	if errors.Is(err, sentinel.ErrAmbiguous) {
		s.logger.Warn("staged punch skipped",
			"record", punch.ID, "device_id", punch.DeviceID, "error", err)
	} else {
		s.logger.Error("staged punch failed",
			"record", punch.ID, "device_id", punch.DeviceID, "error", err)
	}

	if s.sink == nil {
		return
	}
	event := audit.Event{
		Category: audit.CategorySyncError,
		Message:  fmt.Sprintf("failed to process log %s: %v", punch.ID, err),
		RefID:    punch.ID.String(),
	}
	if err := s.sink.Append(ctx, event); err != nil {
		s.logger.Warn("audit append failed", "error", err)
	}
}

func (s *Service) observe(report models.SyncReport, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordOutcomes.WithLabelValues("processed").Add(float64(report.Processed))
	s.metrics.RecordOutcomes.WithLabelValues("ignored").Add(float64(report.Ignored))
	s.metrics.RecordOutcomes.WithLabelValues("duplicate").Add(float64(report.Duplicate))
	s.metrics.RecordOutcomes.WithLabelValues("failed").Add(float64(report.Failed))
	s.metrics.PassDuration.Observe(elapsed.Seconds())
}

func (s *Service) countPass(result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.Passes.WithLabelValues(result).Inc()
}
