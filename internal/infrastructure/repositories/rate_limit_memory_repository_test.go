package repositories

import (
	"context"
	"testing"
	"time"
)

func TestMemoryTake_WindowLifecycle(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	repo := NewRateLimitMemoryRepository()
	repo.now = func() time.Time { return now }

	const limit = 30
	window := time.Minute

	// The first 30 requests in the window are allowed.
	for i := 1; i <= limit; i++ {
		allowed, count, _, err := repo.Take(context.Background(), "u", limit, window)
		if err != nil {
			t.Fatalf("take failed: %v", err)
		}
		if !allowed || count != i {
			t.Fatalf("request %d: allowed=%v count=%d", i, allowed, count)
		}
	}

	// The 31st is rejected and does not consume window capacity.
	allowed, count, resetAt, _ := repo.Take(context.Background(), "u", limit, window)
	if allowed {
		t.Fatal("expected 31st request to be rejected")
	}
	if count != limit {
		t.Fatalf("rejection must not increment the counter, got %d", count)
	}
	if want := now.Add(window); !resetAt.Equal(want) {
		t.Fatalf("expected reset at %v, got %v", want, resetAt)
	}

	// After the window expires a fresh one starts.
	now = now.Add(window + time.Second)
	allowed, count, _, _ = repo.Take(context.Background(), "u", limit, window)
	if !allowed || count != 1 {
		t.Fatalf("expected fresh window, got allowed=%v count=%d", allowed, count)
	}
}

func TestMemoryTake_UsersAreIndependent(t *testing.T) {
	repo := NewRateLimitMemoryRepository()

	for i := 0; i < 5; i++ {
		repo.Take(context.Background(), "a", 5, time.Minute)
	}
	if allowed, _, _, _ := repo.Take(context.Background(), "a", 5, time.Minute); allowed {
		t.Fatal("user a should be exhausted")
	}
	if allowed, _, _, _ := repo.Take(context.Background(), "b", 5, time.Minute); !allowed {
		t.Fatal("user b has their own window")
	}
}
