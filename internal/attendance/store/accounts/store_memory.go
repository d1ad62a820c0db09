package accounts

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"attendsync/pkg/platform/sentinel"
)

// Account is one system-user entry in the in-memory directory.
type Account struct {
	Email   string
	Enabled bool
	Roles   []string
}

// InMemoryStore backs unit tests without Postgres.
type InMemoryStore struct {
	mu       sync.RWMutex
	accounts []Account
	sender   string
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Add(account Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, account)
}

func (s *InMemoryStore) SetDefaultSender(sender string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sender = sender
}

func (s *InMemoryStore) EmailsByRoles(_ context.Context, roles []string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]bool, len(roles))
	for _, role := range roles {
		wanted[role] = true
	}

	seen := make(map[string]bool)
	var emails []string
	for _, account := range s.accounts {
		if !account.Enabled || account.Email == "" || seen[account.Email] {
			continue
		}
		for _, role := range account.Roles {
			if wanted[role] {
				seen[account.Email] = true
				emails = append(emails, account.Email)
				break
			}
		}
	}
	sort.Strings(emails)
	return emails, nil
}

func (s *InMemoryStore) DefaultSender(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sender == "" {
		return "", fmt.Errorf("no default outgoing account: %w", sentinel.ErrNotFound)
	}
	return s.sender, nil
}
