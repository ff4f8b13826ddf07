package ports

import (
	"context"
	"time"
)

// RateLimitRepository provides low-level atomic operations for rate limiting
// counters, keyed by anonymous user token. It abstracts storage (in-memory or
// Redis). Implementations must be safe for concurrent use.
type RateLimitRepository interface {
	// Take attempts to consume one request slot for the user in the current
	// fixed window. A request arriving at or over the limit is rejected
	// without consuming capacity, so hostile retry storms cannot wedge the
	// window open forever. Returns whether the request is allowed, the number
	// of consumed slots, and when the window resets.
	Take(ctx context.Context, userID string, limit int, window time.Duration) (allowed bool, count int, resetAt time.Time, err error)
}

// RateLimiterService defines the per-user gate applied to mutating vote
// operations. Read-only queries are unmetered.
type RateLimiterService interface {
	// Allow consumes one request unit for the user and reports whether it is permitted.
	// remaining: number of additional requests allowed in current window after this one (>=0)
	// limit: configured max requests per window
	// reset: time when the current window resets (Unix semantics for headers)
	Allow(ctx context.Context, userID string) (allowed bool, remaining int, limit int, reset time.Time, err error)
}
