// Package report generates the daily exceptional-status summary and emails
// it to the configured roles.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"attendsync/internal/attendance/metrics"
	"attendsync/internal/attendance/models"
	"attendsync/internal/attendance/ports"
	"attendsync/pkg/platform/audit"
	"attendsync/pkg/platform/sentinel"
	strutil "attendsync/pkg/platform/strings"

	"github.com/google/uuid"
)

const (
	subject   = "Exceptional Report - Attendance Staging"
	reference = "attendance-staging"
)

// DefaultRoles receive the report unless overridden by configuration.
var DefaultRoles = []string{"System Manager", "HR Manager"}

var reportedStatuses = []models.PunchStatus{
	models.StatusPending,
	models.StatusIgnored,
	models.StatusProcessed,
}

type Service struct {
	staging  ports.StagingStore
	accounts ports.AccountDirectory
	comms    ports.CommunicationStore
	mailer   ports.Mailer

	roles   []string
	sink    audit.Sink
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditSink(sink audit.Sink) Option {
	return func(s *Service) {
		s.sink = sink
	}
}

// WithRoles overrides the recipient roles.
func WithRoles(roles []string) Option {
	return func(s *Service) {
		if len(roles) > 0 {
			s.roles = roles
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithNow fixes the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(staging ports.StagingStore, accounts ports.AccountDirectory, comms ports.CommunicationStore, mailer ports.Mailer, opts ...Option) (*Service, error) {
	if staging == nil {
		return nil, fmt.Errorf("staging store is required")
	}
	if accounts == nil {
		return nil, fmt.Errorf("account directory is required")
	}
	if comms == nil {
		return nil, fmt.Errorf("communication store is required")
	}
	if mailer == nil {
		return nil, fmt.Errorf("mailer is required")
	}

	svc := &Service{
		staging:  staging,
		accounts: accounts,
		comms:    comms,
		mailer:   mailer,
		roles:    DefaultRoles,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// SendDaily aggregates today's staged-record counts by status and emails one
// summary. Missing data, recipients, or sender are non-fatal: the run logs
// and returns nil so the scheduler never sees a failed job for an empty day.
func (s *Service) SendDaily(ctx context.Context) error {
	today := s.now()

	counts, err := s.staging.CountByStatusOn(ctx, today, reportedStatuses)
	if err != nil {
		return fmt.Errorf("aggregate staging counts: %w", err)
	}
	if len(counts) == 0 {
		s.logger.Info("no exceptional records to report", "day", today.Format("2006-01-02"))
		return nil
	}

	body, err := renderHTML(counts)
	if err != nil {
		return fmt.Errorf("render report body: %w", err)
	}

	recipients, err := s.accounts.EmailsByRoles(ctx, s.roles)
	if err != nil {
		return fmt.Errorf("resolve recipients: %w", err)
	}
	recipients = strutil.DedupeAndTrimLower(recipients)
	if len(recipients) == 0 {
		s.precondition(ctx, "no recipients found for the exceptional report")
		return nil
	}

	sender, err := s.accounts.DefaultSender(ctx)
	if errors.Is(err, sentinel.ErrNotFound) {
		s.precondition(ctx, "no default sender email is configured")
		return nil
	}
	if err != nil {
		return fmt.Errorf("resolve sender: %w", err)
	}

	// Record the communication before dispatch; a send failure must not
	// erase the trail of what we attempted to send.
	comm := models.Communication{
		ID:         uuid.New(),
		Subject:    subject,
		Content:    body,
		Sender:     sender,
		Recipients: recipients,
		Reference:  reference,
	}
	if err := s.comms.Create(ctx, comm); err != nil {
		return fmt.Errorf("record communication: %w", err)
	}

	msg := ports.Message{
		Recipients: recipients,
		Subject:    subject,
		HTMLBody:   body,
		Sender:     sender,
		Reference:  comm.ID.String(),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("exceptional report email failed",
			"recipients", len(recipients), "error", err)
		s.appendAudit(ctx, fmt.Sprintf("failed to send email: %v", err))
		return nil
	}

	if s.metrics != nil {
		s.metrics.ReportEmails.Inc()
	}
	s.logger.Info("exceptional report email sent",
		"recipients", strings.Join(recipients, ", "))
	return nil
}

func (s *Service) precondition(ctx context.Context, message string) {
	s.logger.Warn(message)
	s.appendAudit(ctx, message)
}

func (s *Service) appendAudit(ctx context.Context, message string) {
	if s.sink == nil {
		return
	}
	event := audit.Event{
		Category: audit.CategoryReport,
		Message:  message,
		RefID:    reference,
	}
	if err := s.sink.Append(ctx, event); err != nil {
		s.logger.Warn("audit append failed", "error", err)
	}
}
