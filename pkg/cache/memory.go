package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	agg       Aggregate
	expiresAt time.Time
}

// MemoryAggregateStore is the single-process fallback used when no Redis
// address is configured, and the double of choice in tests.
type MemoryAggregateStore struct {
	mu   sync.RWMutex
	data map[uuid.UUID]memoryEntry
}

func NewMemoryAggregateStore() *MemoryAggregateStore {
	return &MemoryAggregateStore{data: make(map[uuid.UUID]memoryEntry)}
}

func (s *MemoryAggregateStore) Get(_ context.Context, userID uuid.UUID) (*Aggregate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[userID]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	agg := e.agg
	return &agg, true
}

func (s *MemoryAggregateStore) Set(_ context.Context, userID uuid.UUID, agg Aggregate, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = memoryEntry{agg: agg, expiresAt: time.Now().Add(ttl)}
}

func (s *MemoryAggregateStore) Invalidate(_ context.Context, userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
}
