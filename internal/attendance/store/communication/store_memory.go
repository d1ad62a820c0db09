package communication

import (
	"context"
	"sync"
	"time"

	"attendsync/internal/attendance/models"

	"github.com/google/uuid"
)

// InMemoryStore backs unit tests without Postgres.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries []models.Communication
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Create(_ context.Context, comm models.Communication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if comm.ID == uuid.Nil {
		comm.ID = uuid.New()
	}
	if comm.CreatedAt.IsZero() {
		comm.CreatedAt = time.Now().UTC()
	}
	s.entries = append(s.entries, comm)
	return nil
}

// All returns every recorded communication for test assertions.
func (s *InMemoryStore) All() []models.Communication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Communication{}, s.entries...)
}
