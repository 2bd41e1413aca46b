package session

import (
	"context"
	"sync"
	"time"
)

// Store tracks the ids of issued session tokens so they can be checked and
// revoked before their JWT expiry.
type Store interface {
	Save(ctx context.Context, id string, ttl time.Duration) error
	Active(ctx context.Context, id string) (bool, error)
	Revoke(ctx context.Context, id string) error
}

// MemoryStore keeps session ids in process memory. It is the fallback when
// no Redis address is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	expires map[string]time.Time
	now     func() time.Time
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{expires: make(map[string]time.Time), now: time.Now}
}

// Save records a session id with its lifetime.
func (s *MemoryStore) Save(ctx context.Context, id string, ttl time.Duration) error {
	s.mu.Lock()
	s.expires[id] = s.now().Add(ttl)
	s.mu.Unlock()
	return nil
}

// Active reports whether the id is known and unexpired.
func (s *MemoryStore) Active(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	expiry, ok := s.expires[id]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if s.now().After(expiry) {
		s.mu.Lock()
		delete(s.expires, id)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}

// Revoke removes a session id.
func (s *MemoryStore) Revoke(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.expires, id)
	s.mu.Unlock()
	return nil
}
