package models

import (
	"time"

	"github.com/google/uuid"
)

// PunchStatus tracks a staged punch through the reconciliation lifecycle.
// A record starts Pending and is mutated exactly once per pass; every other
// value is terminal.
type PunchStatus string

const (
	StatusPending   PunchStatus = "Pending"
	StatusProcessed PunchStatus = "Processed"
	StatusDuplicate PunchStatus = "Duplicate"
	StatusIgnored   PunchStatus = "Ignored"
)

// IsValid checks if the status is one of the supported enum values.
func (s PunchStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessed, StatusDuplicate, StatusIgnored:
		return true
	}
	return false
}

// IsTerminal reports whether the reconciliation engine is done with a record.
func (s PunchStatus) IsTerminal() bool {
	return s.IsValid() && s != StatusPending
}

// String returns the string representation.
func (s PunchStatus) String() string {
	return string(s)
}

// PunchType is the direction reported by the device.
type PunchType string

const (
	PunchIn  PunchType = "IN"
	PunchOut PunchType = "OUT"
)

// StagedPunch is a raw device punch event awaiting reconciliation. Ingestion
// creates it in state Pending; the reconciliation engine is the sole writer
// of Status afterwards.
type StagedPunch struct {
	ID                 uuid.UUID
	AttendanceDeviceID string
	Timestamp          time.Time
	PunchType          PunchType
	DeviceID           string
	Status             PunchStatus
}

// Employee carries the subset of the HR record the engine needs. The
// AttendanceDeviceID is the device-local join key and may be empty for
// employees never enrolled on a device.
type Employee struct {
	ID                 uuid.UUID
	Name               string
	AttendanceDeviceID string
}

// Checkin is a confirmed, deduplicated attendance event. At most one checkin
// exists per (EmployeeID, Time) pair; the store enforces this.
type Checkin struct {
	ID         uuid.UUID
	EmployeeID uuid.UUID
	Time       time.Time
	LogType    PunchType
	DeviceID   string
}

// SyncReport counts per-record outcomes of one reconciliation pass.
type SyncReport struct {
	Processed int
	Ignored   int
	Duplicate int
	Failed    int
}

// Total returns the number of records the pass visited.
func (r SyncReport) Total() int {
	return r.Processed + r.Ignored + r.Duplicate + r.Failed
}

// StatusCount is one row of the daily exceptional report.
type StatusCount struct {
	Status PunchStatus
	Count  int
}

// Communication records an outbound email for audit purposes. It is written
// before dispatch and never rolled back on send failure.
type Communication struct {
	ID         uuid.UUID
	Subject    string
	Content    string
	Sender     string
	Recipients []string
	Reference  string
	CreatedAt  time.Time
}
