package services

import (
	"context"
	"time"

	"github.com/offmylawn101/slopwatch/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// RateLimiterService gates vote toggles with a single static fixed-window
// policy per anonymous user token.
type RateLimiterService struct {
	repo   ports.RateLimitRepository
	limit  int
	window time.Duration
	logger *logrus.Logger
}

// RateLimiterConfig groups configuration parameters for the rate limiter.
type RateLimiterConfig struct {
	RequestsPerWindow int
	Window            time.Duration
}

func NewRateLimiterService(repo ports.RateLimitRepository, cfg *RateLimiterConfig, logger *logrus.Logger) *RateLimiterService {
	// Apply defaults
	limit := 30
	w := time.Minute
	if cfg != nil {
		if cfg.RequestsPerWindow > 0 {
			limit = cfg.RequestsPerWindow
		}
		if cfg.Window > 0 {
			w = cfg.Window
		}
	}
	return &RateLimiterService{repo: repo, limit: limit, window: w, logger: logger}
}

func (s *RateLimiterService) Allow(ctx context.Context, userID string) (bool, int, int, time.Time, error) {
	allowed, count, resetAt, err := s.repo.Take(ctx, userID, s.limit, s.window)
	if err != nil {
		if s.logger != nil {
			s.logger.WithField("user_id", userID).WithError(err).Error("rate limiter: failed to take window slot")
		}
		// fail open
		return true, s.limit, s.limit, time.Now().Add(s.window), err
	}
	if !allowed {
		rateLimitedTotal.Inc()
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"user_id": userID, "count": count, "limit": s.limit}).Debug("rate limit exceeded")
		}
		return false, 0, s.limit, resetAt, nil
	}
	remaining := s.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return true, remaining, s.limit, resetAt, nil
}
