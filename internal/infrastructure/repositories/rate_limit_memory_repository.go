package repositories

import (
	"context"
	"sync"
	"time"
)

type rateLimitEntry struct {
	count   int
	resetAt time.Time
}

// RateLimitMemoryRepository implements fixed-window counters in process
// memory. This is the default backend: rate-limit state is deliberately
// process-local and not persisted.
type RateLimitMemoryRepository struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	now     func() time.Time
}

func NewRateLimitMemoryRepository() *RateLimitMemoryRepository {
	return &RateLimitMemoryRepository{
		entries: make(map[string]*rateLimitEntry),
		now:     time.Now,
	}
}

// Take consumes one slot for userID in the current window. A request at or
// over the limit is rejected without incrementing, so rejected retries never
// extend the exhaustion.
func (r *RateLimitMemoryRepository) Take(ctx context.Context, userID string, limit int, window time.Duration) (bool, int, time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	e, ok := r.entries[userID]
	if !ok || now.After(e.resetAt) {
		e = &rateLimitEntry{count: 1, resetAt: now.Add(window)}
		r.entries[userID] = e
		return true, 1, e.resetAt, nil
	}

	if e.count >= limit {
		return false, e.count, e.resetAt, nil
	}

	e.count++
	return true, e.count, e.resetAt, nil
}
