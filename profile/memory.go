package profile

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	mu      sync.RWMutex
	profile *Profile
}

// MemoryStore is the default process-local Store. A short structural lock
// guards entry creation; each user's state is guarded by its own RWMutex so
// cross-user operations never contend.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory profile store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) entry(userID string) *memoryEntry {
	s.mu.RLock()
	e, ok := s.entries[userID]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.entries[userID]; ok {
		return e
	}
	e = &memoryEntry{}
	s.entries[userID] = e
	return e
}

// Update describes the update operation and its observable behavior.
//
// Update runs fn under the user's exclusive lock, creating the profile on
// first touch. Different users are served by independent locks.
func (s *MemoryStore) Update(ctx context.Context, userID string, fn func(p *Profile) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.profile == nil {
		e.profile = NewProfile(userID, s.now().UTC())
	}
	return fn(e.profile)
}

// View describes the view operation and its observable behavior.
//
// View runs fn under the user's shared lock. fn receives nil when the user
// has never been observed.
func (s *MemoryStore) View(ctx context.Context, userID string, fn func(p *Profile) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	e, ok := s.entries[userID]
	s.mu.RUnlock()
	if !ok {
		return fn(nil)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return fn(e.profile)
}

// Len reports how many user profiles the store currently holds.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
