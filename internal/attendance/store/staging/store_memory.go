package staging

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"attendsync/internal/attendance/models"

	"github.com/google/uuid"
)

// InMemoryStore backs unit tests and local runs without Postgres.
type InMemoryStore struct {
	mu      sync.RWMutex
	punches map[uuid.UUID]models.StagedPunch

	// SetStatusErr, when set, makes SetStatus fail for the given record id.
	// Lets tests exercise per-record failure isolation.
	SetStatusErr map[uuid.UUID]error
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		punches:      make(map[uuid.UUID]models.StagedPunch),
		SetStatusErr: make(map[uuid.UUID]error),
	}
}

func (s *InMemoryStore) ListPending(_ context.Context) ([]models.StagedPunch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pending []models.StagedPunch
	for _, punch := range s.punches {
		if punch.Status == models.StatusPending {
			pending = append(pending, punch)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Timestamp.Before(pending[j].Timestamp)
	})
	return pending, nil
}

func (s *InMemoryStore) SetStatus(_ context.Context, id uuid.UUID, status models.PunchStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err, ok := s.SetStatusErr[id]; ok {
		return err
	}

	punch, ok := s.punches[id]
	if !ok {
		return fmt.Errorf("update punch status: no record %s", id)
	}
	punch.Status = status
	s.punches[id] = punch
	return nil
}

func (s *InMemoryStore) CountByStatusOn(_ context.Context, day time.Time, statuses []models.PunchStatus) ([]models.StatusCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[models.PunchStatus]bool, len(statuses))
	for _, status := range statuses {
		wanted[status] = true
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	counts := make(map[models.PunchStatus]int)
	for _, punch := range s.punches {
		if !wanted[punch.Status] {
			continue
		}
		if punch.Timestamp.Before(start) || !punch.Timestamp.Before(end) {
			continue
		}
		counts[punch.Status]++
	}

	var out []models.StatusCount
	for _, status := range statuses {
		if counts[status] > 0 {
			out = append(out, models.StatusCount{Status: status, Count: counts[status]})
		}
	}
	return out, nil
}

func (s *InMemoryStore) Create(_ context.Context, punch models.StagedPunch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.punches[punch.ID] = punch
	return nil
}

// Get returns a record by id for test assertions.
func (s *InMemoryStore) Get(id uuid.UUID) (models.StagedPunch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	punch, ok := s.punches[id]
	return punch, ok
}
