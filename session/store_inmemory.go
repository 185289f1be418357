package session

import "sync"

// InMemoryStore is a Store backed by process memory. It is the default for
// library consumers that manage a single logged-in session per process.
type InMemoryStore struct {
	mu   sync.RWMutex
	pair TokenPair
}

// NewInMemoryStore creates an empty in-memory token store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Get returns the current token pair.
func (s *InMemoryStore) Get() (TokenPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pair, nil
}

// Set replaces the stored token pair.
func (s *InMemoryStore) Set(pair TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = pair
	return nil
}

// Clear removes both tokens.
func (s *InMemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = TokenPair{}
	return nil
}
