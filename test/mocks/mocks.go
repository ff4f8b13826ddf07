package mocks

import (
	"context"
	"time"

	"github.com/offmylawn101/slopwatch/internal/core/domain/vote"
)

// VoteServiceMock is a lightweight mock for VoteService
type VoteServiceMock struct {
	ToggleVoteFn     func(ctx context.Context, tweetID, userID string) (vote.Status, error)
	GetStatusFn      func(ctx context.Context, tweetID, userID string) (vote.Status, error)
	GetVotesFn       func(ctx context.Context, tweetIDs []string, userID string) (map[string]vote.Status, error)
	GetUserStatsFn   func(ctx context.Context, userID string) (*vote.UserStatsView, error)
	GetGlobalStatsFn func(ctx context.Context) (*vote.GlobalStatsView, error)
}

func (m *VoteServiceMock) ToggleVote(ctx context.Context, tweetID, userID string) (vote.Status, error) {
	if m.ToggleVoteFn != nil {
		return m.ToggleVoteFn(ctx, tweetID, userID)
	}
	return vote.Status{}, nil
}
func (m *VoteServiceMock) GetStatus(ctx context.Context, tweetID, userID string) (vote.Status, error) {
	if m.GetStatusFn != nil {
		return m.GetStatusFn(ctx, tweetID, userID)
	}
	return vote.Status{}, nil
}
func (m *VoteServiceMock) GetVotes(ctx context.Context, tweetIDs []string, userID string) (map[string]vote.Status, error) {
	if m.GetVotesFn != nil {
		return m.GetVotesFn(ctx, tweetIDs, userID)
	}
	return map[string]vote.Status{}, nil
}
func (m *VoteServiceMock) GetUserStats(ctx context.Context, userID string) (*vote.UserStatsView, error) {
	if m.GetUserStatsFn != nil {
		return m.GetUserStatsFn(ctx, userID)
	}
	return &vote.UserStatsView{}, nil
}
func (m *VoteServiceMock) GetGlobalStats(ctx context.Context) (*vote.GlobalStatsView, error) {
	if m.GetGlobalStatsFn != nil {
		return m.GetGlobalStatsFn(ctx)
	}
	return &vote.GlobalStatsView{}, nil
}

// RateLimiterServiceMock is a lightweight mock for RateLimiterService
type RateLimiterServiceMock struct {
	AllowFn func(ctx context.Context, userID string) (bool, int, int, time.Time, error)
}

func (m *RateLimiterServiceMock) Allow(ctx context.Context, userID string) (bool, int, int, time.Time, error) {
	if m.AllowFn != nil {
		return m.AllowFn(ctx, userID)
	}
	return true, 29, 30, time.Now().Add(time.Minute), nil
}

// SnapshotRepositoryMock is a lightweight mock for SnapshotRepository
type SnapshotRepositoryMock struct {
	LoadFn func(ctx context.Context) (*vote.Snapshot, error)
	SaveFn func(ctx context.Context, snap *vote.Snapshot) error
}

func (m *SnapshotRepositoryMock) Load(ctx context.Context) (*vote.Snapshot, error) {
	if m.LoadFn != nil {
		return m.LoadFn(ctx)
	}
	return vote.NewSnapshot(), nil
}
func (m *SnapshotRepositoryMock) Save(ctx context.Context, snap *vote.Snapshot) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, snap)
	}
	return nil
}

// RateLimitRepositoryMock is a lightweight mock for RateLimitRepository
type RateLimitRepositoryMock struct {
	TakeFn func(ctx context.Context, userID string, limit int, window time.Duration) (bool, int, time.Time, error)
}

func (m *RateLimitRepositoryMock) Take(ctx context.Context, userID string, limit int, window time.Duration) (bool, int, time.Time, error) {
	if m.TakeFn != nil {
		return m.TakeFn(ctx, userID, limit, window)
	}
	return true, 1, time.Now().Add(window), nil
}
