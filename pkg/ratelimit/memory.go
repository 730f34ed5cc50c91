package ratelimit

import (
	"context"
	"sync"
	"time"
)

// sweepThreshold bounds the entry map: once it grows past this size,
// expired entries are swept on the next check. Sweeping is memory
// hygiene only, never needed for correctness.
const sweepThreshold = 10000

type entry struct {
	count   int
	resetAt time.Time
}

// MemoryStore is a process-local Store. The single mutex makes the
// increment-and-compare atomic, so two concurrent requests can never
// both take the last slot.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Check(ctx context.Context, key string, max int, window time.Duration) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	if len(s.entries) > sweepThreshold {
		s.sweep(now)
	}

	e, ok := s.entries[key]
	if !ok || e.resetAt.Before(now) {
		e = &entry{count: 1, resetAt: now.Add(window)}
		s.entries[key] = e
		return Result{Allowed: true, Remaining: max - 1, ResetAt: e.resetAt}, nil
	}

	if e.count >= max {
		return Result{Allowed: false, Remaining: 0, ResetAt: e.resetAt}, nil
	}

	e.count++
	return Result{Allowed: true, Remaining: max - e.count, ResetAt: e.resetAt}, nil
}

func (s *MemoryStore) sweep(now time.Time) {
	for key, e := range s.entries {
		if e.resetAt.Before(now) {
			delete(s.entries, key)
		}
	}
}

// Len reports the current number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
