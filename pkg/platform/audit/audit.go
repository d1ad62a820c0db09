// Package audit is the best-effort error and execution log sink. Callers
// append events for failures that must not abort them; sinks never make the
// caller fail.
package audit

import (
	"context"
	"time"
)

// EventCategory groups events for filtering in the log table.
type EventCategory string

const (
	CategorySyncError    EventCategory = "Biometric Log Processing Error"
	CategoryReport       EventCategory = "Exceptional Report"
	CategoryScheduledJob EventCategory = "Scheduled Job"
)

// Event is one audit entry.
type Event struct {
	Timestamp time.Time
	Category  EventCategory
	Message   string
	// RefID optionally names the record or job the event concerns.
	RefID string
}

// Sink appends audit events. Implementations are best-effort: an append
// failure is the sink's problem to log, not the caller's.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Fanout appends each event to every sink, returning the first error after
// all sinks have been attempted.
type Fanout []Sink

func (f Fanout) Append(ctx context.Context, event Event) error {
	var firstErr error
	for _, sink := range f {
		if err := sink.Append(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
