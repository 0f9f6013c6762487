package auth

import (
	"sync"
	"time"
)

// RevocationStore tracks revoked session token jtis in memory, dropping
// entries once the token would have expired anyway. Thread-safe.
type RevocationStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time // jti -> natural expiry
	done    chan struct{}
}

// NewRevocationStore creates a store and starts a background goroutine
// that cleans up expired entries every five minutes.
func NewRevocationStore() *RevocationStore {
	s := &RevocationStore{
		entries: make(map[string]time.Time),
		done:    make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

// Revoke marks a jti as revoked until expiresAt.
func (s *RevocationStore) Revoke(jti string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[jti] = expiresAt
}

// IsRevoked reports whether a jti has been revoked.
func (s *RevocationStore) IsRevoked(jti string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[jti]
	return ok
}

// Close stops the cleanup goroutine.
func (s *RevocationStore) Close() {
	close(s.done)
}

func (s *RevocationStore) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for jti, exp := range s.entries {
				if now.After(exp) {
					delete(s.entries, jti)
				}
			}
			s.mu.Unlock()
		}
	}
}
