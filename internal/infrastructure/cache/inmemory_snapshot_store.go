package cache

import (
	"context"
	"sync"
	"time"

	"github.com/cruisehub/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

type inmemoryEntry struct {
	snapshot  PriceSnapshot
	expiresAt time.Time
}

// InMemorySnapshotStore implements PriceSnapshotStore with a local map.
// Suitable for single-instance deployments and testing; state is not
// shared across processes.
type InMemorySnapshotStore struct {
	mu      sync.RWMutex
	entries map[string]inmemoryEntry
	now     func() time.Time
}

// NewInMemorySnapshotStore creates an in-memory snapshot store
func NewInMemorySnapshotStore() *InMemorySnapshotStore {
	return &InMemorySnapshotStore{
		entries: make(map[string]inmemoryEntry),
		now:     time.Now,
	}
}

// Get returns the snapshot for a pair; the boolean is false on a miss
// or when the entry has expired
func (s *InMemorySnapshotStore) Get(_ context.Context, cruiseID uuid.UUID, category catalog.CabinCategory) (*PriceSnapshot, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[snapshotKey(cruiseID, category)]
	s.mu.RUnlock()

	if !ok || s.now().After(entry.expiresAt) {
		return nil, false, nil
	}
	snapshot := entry.snapshot
	return &snapshot, true, nil
}

// Set stores a snapshot with the given TTL
func (s *InMemorySnapshotStore) Set(_ context.Context, cruiseID uuid.UUID, category catalog.CabinCategory, snapshot PriceSnapshot, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[snapshotKey(cruiseID, category)] = inmemoryEntry{
		snapshot:  snapshot,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

// Invalidate drops the snapshot for a pair
func (s *InMemorySnapshotStore) Invalidate(_ context.Context, cruiseID uuid.UUID, category catalog.CabinCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, snapshotKey(cruiseID, category))
	return nil
}

// Ping always succeeds for the in-memory store
func (s *InMemorySnapshotStore) Ping() error {
	return nil
}

// Close is a no-op for the in-memory store
func (s *InMemorySnapshotStore) Close() error {
	return nil
}

// Ensure InMemorySnapshotStore implements PriceSnapshotStore
var _ PriceSnapshotStore = (*InMemorySnapshotStore)(nil)
