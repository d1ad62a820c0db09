// Package ports declares the collaborator interfaces the attendance services
// consume. Implementations live under internal/attendance/store and
// internal/platform; services receive them by injection so no package reaches
// for ambient globals.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"attendsync/internal/attendance/models"

	"github.com/google/uuid"
)

// StagingStore reads and mutates staged punch records.
type StagingStore interface {
	// ListPending returns every record still awaiting reconciliation.
	ListPending(ctx context.Context) ([]models.StagedPunch, error)
	// SetStatus updates the status of a single record by id.
	SetStatus(ctx context.Context, id uuid.UUID, status models.PunchStatus) error
	// CountByStatusOn aggregates records whose punch timestamp falls on the
	// given calendar day, grouped by status.
	CountByStatusOn(ctx context.Context, day time.Time, statuses []models.PunchStatus) ([]models.StatusCount, error)
}

// EmployeeDirectory resolves device-local identifiers to employees.
type EmployeeDirectory interface {
	// ByDeviceID returns the employee enrolled under the given attendance
	// device id. sentinel.ErrNotFound when no employee matches,
	// sentinel.ErrAmbiguous when more than one does.
	ByDeviceID(ctx context.Context, attendanceDeviceID string) (models.Employee, error)
}

// CheckinStore persists confirmed attendance events.
type CheckinStore interface {
	// Exists reports whether a checkin is already recorded for the employee
	// at exactly the given time.
	Exists(ctx context.Context, employeeID uuid.UUID, at time.Time) (bool, error)
	// Create inserts a new checkin. sentinel.ErrConflict when the
	// (employee, time) uniqueness constraint fires.
	Create(ctx context.Context, checkin models.Checkin) error
}

// AccountDirectory resolves mail endpoints from the system-user registry.
type AccountDirectory interface {
	// EmailsByRoles returns the distinct addresses of enabled system users
	// holding any of the given roles.
	EmailsByRoles(ctx context.Context, roles []string) ([]string, error)
	// DefaultSender returns the configured outgoing address.
	// sentinel.ErrNotFound when none is configured.
	DefaultSender(ctx context.Context) (string, error)
}

// CommunicationStore records outbound emails.
type CommunicationStore interface {
	Create(ctx context.Context, comm models.Communication) error
}

// Message is one outbound email.
type Message struct {
	Recipients []string
	Subject    string
	HTMLBody   string
	Sender     string
	// Reference correlates the message with the communication entry.
	Reference string
}

// Mailer dispatches email. Callers treat Send as fire-and-forget: failures
// are logged, never propagated past the caller.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// TxRunner scopes a batch of store mutations to a single commit.
type TxRunner interface {
	// RunInTx runs fn inside one transaction; all mutations become durable
	// together when fn returns nil.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	// Isolated runs fn so that a failure discards fn's own writes without
	// invalidating the surrounding transaction.
	Isolated(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker serializes reconciliation passes across processes.
type Locker interface {
	// TryLock attempts to take the lock without blocking.
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}
