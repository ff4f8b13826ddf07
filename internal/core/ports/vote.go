package ports

import (
	"context"

	"github.com/offmylawn101/slopwatch/internal/core/domain/vote"
)

// SnapshotRepository persists the full vote store document and restores it at
// startup. Load returns an empty snapshot when no prior state exists; a read
// or decode failure is an error the caller may degrade from (empty store).
type SnapshotRepository interface {
	Load(ctx context.Context) (*vote.Snapshot, error)
	Save(ctx context.Context, snap *vote.Snapshot) error
}

// VoteService defines the vote aggregation engine: the authoritative toggle
// operation plus the read-only status and statistics queries.
type VoteService interface {
	// ToggleVote flips userID's vote on tweetID and returns the new state.
	// Identifiers must be validated by the caller.
	ToggleVote(ctx context.Context, tweetID, userID string) (vote.Status, error)
	// GetStatus returns (count, voted) for one post without creating records.
	GetStatus(ctx context.Context, tweetID, userID string) (vote.Status, error)
	// GetVotes returns statuses for a batch of post IDs keyed by ID.
	GetVotes(ctx context.Context, tweetIDs []string, userID string) (map[string]vote.Status, error)
	// GetUserStats returns derived stats for a user; unknown users read as zeroed.
	GetUserStats(ctx context.Context, userID string) (*vote.UserStatsView, error)
	// GetGlobalStats returns the aggregate totals.
	GetGlobalStats(ctx context.Context) (*vote.GlobalStatsView, error)
}
