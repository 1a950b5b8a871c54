package memory

import (
	"context"
	"strings"
	"sync"
	"time"
)

// NonceStore implements ports.NonceStore for single-instance deployments
// running without Redis.
type NonceStore struct {
	mu     sync.Mutex
	seen   map[string]time.Time
	now    func() time.Time
	writes int
}

// NewNonceStore creates an empty nonce store.
func NewNonceStore() *NonceStore {
	return &NonceStore{seen: make(map[string]time.Time), now: time.Now}
}

// CheckAndSet returns true if nonce was not seen for principal within ttl.
func (s *NonceStore) CheckAndSet(_ context.Context, principal string, nonce string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	key := strings.ToLower(principal) + ":" + nonce
	if exp, ok := s.seen[key]; ok && now.Before(exp) {
		return false, nil
	}
	s.seen[key] = now.Add(ttl)

	s.writes++
	if s.writes%1024 == 0 {
		s.sweep(now)
	}
	return true, nil
}

// sweep drops expired entries. Caller holds mu.
func (s *NonceStore) sweep(now time.Time) {
	for k, exp := range s.seen {
		if !now.Before(exp) {
			delete(s.seen, k)
		}
	}
}
