package session

import (
	"sync"
	"time"
)

// Line is one product+quantity entry in an anonymous cart.
type Line struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// Store keeps anonymous carts in memory, keyed by guest session ID. Carts
// live only for the session TTL and are never written to the database.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
}

type entry struct {
	lines     []Line
	expiresAt time.Time
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
	go s.sweep()
	return s
}

// Get returns a copy of the cart for the session, or nil when the session is
// unknown or expired. A stored empty cart comes back as a non-nil empty slice.
func (s *Store) Get(sessionID string) []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		return nil
	}
	lines := make([]Line, len(e.lines))
	copy(lines, e.lines)
	return lines
}

// Set replaces the session's cart and refreshes its expiry.
func (s *Store) Set(sessionID string, lines []Line) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]Line, len(lines))
	copy(stored, lines)
	s.entries[sessionID] = entry{
		lines:     stored,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Remove drops the session's cart entirely.
func (s *Store) Remove(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
}

func (s *Store) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for id, e := range s.entries {
			if now.After(e.expiresAt) {
				delete(s.entries, id)
			}
		}
		s.mu.Unlock()
	}
}
