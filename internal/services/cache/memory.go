package cache

import (
	"context"
	"sync"
	"time"
)

type entry[T any] struct {
	value   T
	touched time.Time
}

// MemoryStore keeps values in process memory. Idle entries are removed by
// Sweep, not on access.
type MemoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]entry[T]
	now   func() time.Time
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{items: make(map[string]entry[T]), now: time.Now}
}

func (s *MemoryStore[T]) Set(_ context.Context, id string, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = entry[T]{value: value, touched: s.now()}
	return nil
}

//nolint:ireturn
func (s *MemoryStore[T]) Get(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return e.value, nil
}

func (s *MemoryStore[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

// Sweep drops entries not written for longer than idle and reports how many
// were removed.
func (s *MemoryStore[T]) Sweep(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.items {
		if e.touched.Before(cutoff) {
			delete(s.items, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
