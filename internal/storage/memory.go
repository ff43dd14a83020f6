package storage

import (
	"context"
	"sync"

	"portfoliomaker/internal/models"
)

// MemoryStore is an in-memory UserStore used in tests and local runs
// without a database.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]models.UserAccount
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]models.UserAccount)}
}

func (s *MemoryStore) Insert(_ context.Context, user models.UserAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Username]; exists {
		return ErrDuplicateUser
	}
	s.users[user.Username] = user
	return nil
}

func (s *MemoryStore) FindByUsername(_ context.Context, username string) (models.UserAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, exists := s.users[username]
	if !exists {
		return models.UserAccount{}, ErrNotFound
	}
	return user, nil
}

func (s *MemoryStore) UpdatePortfolio(_ context.Context, username string, profile models.ProfileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, exists := s.users[username]
	if !exists {
		return ErrNotFound
	}
	user.Portfolio = profile
	s.users[username] = user
	return nil
}
