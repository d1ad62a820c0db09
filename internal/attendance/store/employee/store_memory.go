package employee

import (
	"context"
	"fmt"
	"sync"

	"attendsync/internal/attendance/models"
	"attendsync/pkg/platform/sentinel"
)

// InMemoryStore backs unit tests without Postgres.
type InMemoryStore struct {
	mu        sync.RWMutex
	employees []models.Employee
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) ByDeviceID(_ context.Context, attendanceDeviceID string) (models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []models.Employee
	for _, emp := range s.employees {
		if emp.AttendanceDeviceID != "" && emp.AttendanceDeviceID == attendanceDeviceID {
			matches = append(matches, emp)
		}
	}

	switch len(matches) {
	case 0:
		return models.Employee{}, fmt.Errorf("no employee for device id %q: %w", attendanceDeviceID, sentinel.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return models.Employee{}, fmt.Errorf("device id %q maps to multiple employees: %w", attendanceDeviceID, sentinel.ErrAmbiguous)
	}
}

func (s *InMemoryStore) Create(_ context.Context, emp models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = append(s.employees, emp)
	return nil
}
