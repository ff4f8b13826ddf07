package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	impl "github.com/offmylawn101/slopwatch/internal/application/services"
	"github.com/offmylawn101/slopwatch/test/mocks"
)

func TestRateLimiter_AllowWithinWindow(t *testing.T) {
	repo := &mocks.RateLimitRepositoryMock{
		TakeFn: func(ctx context.Context, userID string, limit int, window time.Duration) (bool, int, time.Time, error) {
			if limit != 30 || window != time.Minute {
				t.Fatalf("unexpected policy: limit=%d window=%v", limit, window)
			}
			return true, 5, time.Now().Add(window), nil
		},
	}
	svc := impl.NewRateLimiterService(repo, nil, nil)

	allowed, remaining, limit, _, err := svc.Allow(context.Background(), "u")
	if err != nil {
		t.Fatalf("allow failed: %v", err)
	}
	if !allowed || remaining != 25 || limit != 30 {
		t.Fatalf("unexpected result: allowed=%v remaining=%d limit=%d", allowed, remaining, limit)
	}
}

func TestRateLimiter_RejectOverLimit(t *testing.T) {
	repo := &mocks.RateLimitRepositoryMock{
		TakeFn: func(ctx context.Context, userID string, limit int, window time.Duration) (bool, int, time.Time, error) {
			return false, limit, time.Now().Add(window), nil
		},
	}
	svc := impl.NewRateLimiterService(repo, nil, nil)

	allowed, remaining, _, _, err := svc.Allow(context.Background(), "u")
	if err != nil {
		t.Fatalf("allow failed: %v", err)
	}
	if allowed || remaining != 0 {
		t.Fatalf("expected rejection, got allowed=%v remaining=%d", allowed, remaining)
	}
}

func TestRateLimiter_FailsOpenOnRepoError(t *testing.T) {
	repo := &mocks.RateLimitRepositoryMock{
		TakeFn: func(ctx context.Context, userID string, limit int, window time.Duration) (bool, int, time.Time, error) {
			return false, 0, time.Time{}, errors.New("redis down")
		},
	}
	svc := impl.NewRateLimiterService(repo, nil, nil)

	allowed, _, _, _, err := svc.Allow(context.Background(), "u")
	if err == nil {
		t.Fatal("expected error to surface")
	}
	if !allowed {
		t.Fatal("limiter must fail open when the backend is down")
	}
}

func TestRateLimiter_ConfigOverridesDefaults(t *testing.T) {
	var gotLimit int
	var gotWindow time.Duration
	repo := &mocks.RateLimitRepositoryMock{
		TakeFn: func(ctx context.Context, userID string, limit int, window time.Duration) (bool, int, time.Time, error) {
			gotLimit, gotWindow = limit, window
			return true, 1, time.Now().Add(window), nil
		},
	}
	svc := impl.NewRateLimiterService(repo, &impl.RateLimiterConfig{RequestsPerWindow: 5, Window: 10 * time.Second}, nil)

	svc.Allow(context.Background(), "u")
	if gotLimit != 5 || gotWindow != 10*time.Second {
		t.Fatalf("config not applied: limit=%d window=%v", gotLimit, gotWindow)
	}
}
