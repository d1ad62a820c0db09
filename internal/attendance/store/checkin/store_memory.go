package checkin

import (
	"context"
	"fmt"
	"sync"
	"time"

	"attendsync/internal/attendance/models"
	"attendsync/pkg/platform/sentinel"

	"github.com/google/uuid"
)

type checkinKey struct {
	employeeID uuid.UUID
	at         int64 // unix nanos, exact-equality dedup key
}

// InMemoryStore enforces the same (employee, time) uniqueness as the Postgres
// schema so unit tests exercise real conflict behavior.
type InMemoryStore struct {
	mu       sync.RWMutex
	checkins map[checkinKey]models.Checkin

	// CreateErr, when non-nil, makes the next Create call fail. Lets tests
	// exercise per-record failure isolation.
	CreateErr error
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{checkins: make(map[checkinKey]models.Checkin)}
}

func (s *InMemoryStore) Exists(_ context.Context, employeeID uuid.UUID, at time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.checkins[checkinKey{employeeID: employeeID, at: at.UnixNano()}]
	return ok, nil
}

func (s *InMemoryStore) Create(_ context.Context, checkin models.Checkin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateErr != nil {
		err := s.CreateErr
		s.CreateErr = nil
		return err
	}

	key := checkinKey{employeeID: checkin.EmployeeID, at: checkin.Time.UnixNano()}
	if _, ok := s.checkins[key]; ok {
		return fmt.Errorf("checkin for employee %s at %s: %w",
			checkin.EmployeeID, checkin.Time.Format(time.RFC3339), sentinel.ErrConflict)
	}
	if checkin.ID == uuid.Nil {
		checkin.ID = uuid.New()
	}
	s.checkins[key] = checkin
	return nil
}

// All returns every stored checkin for test assertions.
func (s *InMemoryStore) All() []models.Checkin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Checkin, 0, len(s.checkins))
	for _, checkin := range s.checkins {
		out = append(out, checkin)
	}
	return out
}
