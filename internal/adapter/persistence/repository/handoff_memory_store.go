package repository

import (
	"context"
	"sync"
	"time"

	"sqv_cleaning/internal/usecase/interfaces"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// HandoffMemoryStore keeps hand-off records in process memory. It is the
// default for local runs and does not survive restarts.
type HandoffMemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

var _ interfaces.IHandoffStore = (*HandoffMemoryStore)(nil)

func NewHandoffMemoryStore() *HandoffMemoryStore {
	return &HandoffMemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *HandoffMemoryStore) Put(_ context.Context, key string, data []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	s.entries[key] = memoryEntry{
		data:      append([]byte(nil), data...),
		expiresAt: expiryFor(s.now(), ttl),
	}
	return nil
}

func (s *HandoffMemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || expired(entry.expiresAt, s.now()) {
		return nil, nil
	}
	return append([]byte(nil), entry.data...), nil
}

// sweepLocked drops expired entries; callers hold the write lock.
func (s *HandoffMemoryStore) sweepLocked() {
	now := s.now()
	for k, e := range s.entries {
		if expired(e.expiresAt, now) {
			delete(s.entries, k)
		}
	}
}
