package history

import (
	"context"
	"sync"
)

// MemoryStore keeps history in process memory. It backs the service
// when no database is configured and doubles as the test store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]Entry)}
}

func (s *MemoryStore) Load(_ context.Context, session string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Entry(nil), s.sessions[session]...), nil
}

func (s *MemoryStore) Save(_ context.Context, session string, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session] = append([]Entry(nil), entries...)
	return nil
}
