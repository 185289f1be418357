package storefakes

import (
	"sync"

	"github.com/bumilsoft/intraclient/session"
)

// FakeStore is a test double for session.Store that records every mutation.
// Inspect the exported fields only after all goroutines using the store have
// finished.
type FakeStore struct {
	mu         sync.Mutex
	Pair       session.TokenPair
	GetErr     error
	SetErr     error
	ClearErr   error
	SetCalls   int
	ClearCalls int
}

// NewFakeStore creates a fake store preloaded with the given pair.
func NewFakeStore(pair session.TokenPair) *FakeStore {
	return &FakeStore{Pair: pair}
}

func (f *FakeStore) Get() (session.TokenPair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return session.TokenPair{}, f.GetErr
	}
	return f.Pair, nil
}

func (f *FakeStore) Set(pair session.TokenPair) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SetCalls++
	if f.SetErr != nil {
		return f.SetErr
	}
	f.Pair = pair
	return nil
}

func (f *FakeStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ClearCalls++
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.Pair = session.TokenPair{}
	return nil
}
