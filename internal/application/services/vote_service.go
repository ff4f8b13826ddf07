package services

import (
	"context"
	"sync"
	"time"

	"github.com/offmylawn101/slopwatch/internal/core/domain/vote"
	"github.com/offmylawn101/slopwatch/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// VoteService is the authoritative vote store. All mutation goes through a
// single coarse-grained lock around the read-modify-write-persist sequence:
// every toggle touches the global totals, so per-post locking would not help.
// Read queries take the shared lock and observe a consistent snapshot.
type VoteService struct {
	mu     sync.RWMutex
	snap   *vote.Snapshot
	repo   ports.SnapshotRepository
	logger *logrus.Logger
}

// NewVoteService restores prior state through repo and returns a ready store.
// A load failure is logged and degrades to an empty store; it is never fatal.
// Legacy snapshots without per-user stats are backfilled once, here.
func NewVoteService(ctx context.Context, repo ports.SnapshotRepository, logger *logrus.Logger) *VoteService {
	s := &VoteService{repo: repo, logger: logger}

	snap, err := repo.Load(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Warn("failed to load vote snapshot, starting empty")
		}
		snap = nil
	}
	if snap == nil {
		snap = vote.NewSnapshot()
	}
	snap.Normalize()
	s.snap = snap

	if snap.NeedsBackfill() {
		if s.logger != nil {
			s.logger.Info("migrating legacy snapshot to stats format")
		}
		snap.Backfill(time.Now())
		s.persist(ctx)
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"users": len(snap.UserStats), "posts": len(snap.Counts)}).Info("snapshot migration complete")
		}
	}

	return s
}

// ToggleVote flips userID's vote on tweetID. Adding a vote updates the user's
// streak and may confirm the post; removing one never un-confirms it.
func (s *VoteService) ToggleVote(ctx context.Context, tweetID, userID string) (vote.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hasVoted := s.snap.HasVoted(tweetID, userID)
	isNewPost := s.snap.Counts[tweetID] == 0

	stats, ok := s.snap.UserStats[userID]
	if !ok {
		stats = &vote.UserStats{}
		s.snap.UserStats[userID] = stats
	}

	if hasVoted {
		s.removeVoter(tweetID, userID)
		if c := s.snap.Counts[tweetID] - 1; c > 0 {
			s.snap.Counts[tweetID] = c
		} else {
			s.snap.Counts[tweetID] = 0
		}
		stats.TotalVotes--
		s.snap.GlobalStats.TotalVotes--
		votesRemovedTotal.Inc()
	} else {
		s.snap.Voters[tweetID] = append(s.snap.Voters[tweetID], userID)
		s.snap.Counts[tweetID]++
		stats.TotalVotes++
		s.snap.GlobalStats.TotalVotes++
		stats.RecordDailyVote(time.Now())
		if isNewPost {
			s.snap.GlobalStats.TotalPosts++
		}
		votesCastTotal.Inc()

		// The vote that lands the count exactly on the threshold confirms the
		// post and retroactively credits every current voter. Removals are
		// excluded above, so the credit cannot fire twice for one post.
		if s.snap.Counts[tweetID] == vote.ConfirmThreshold {
			s.confirmPost(tweetID)
		}
	}

	s.persist(ctx)

	return vote.Status{Count: s.snap.Counts[tweetID], Voted: !hasVoted}, nil
}

// GetStatus returns (count, voted) for a single post without creating records.
func (s *VoteService) GetStatus(ctx context.Context, tweetID, userID string) (vote.Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Status(tweetID, userID), nil
}

// GetVotes returns the status of each requested post, keyed by post ID.
func (s *VoteService) GetVotes(ctx context.Context, tweetIDs []string, userID string) (map[string]vote.Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make(map[string]vote.Status, len(tweetIDs))
	for _, tweetID := range tweetIDs {
		results[tweetID] = s.snap.Status(tweetID, userID)
	}
	return results, nil
}

// GetUserStats returns the derived stats view for userID. Users that never
// voted read as all zeroes.
func (s *VoteService) GetUserStats(ctx context.Context, userID string) (*vote.UserStatsView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats, ok := s.snap.UserStats[userID]
	if !ok {
		stats = &vote.UserStats{}
	}
	return stats.View(time.Now()), nil
}

// GetGlobalStats returns the aggregate totals across all posts and users.
func (s *VoteService) GetGlobalStats(ctx context.Context) (*vote.GlobalStatsView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &vote.GlobalStatsView{
		TotalVotes:    s.snap.GlobalStats.TotalVotes,
		TotalPosts:    s.snap.GlobalStats.TotalPosts,
		ConfirmedSlop: s.snap.GlobalStats.ConfirmedSlop,
		TotalUsers:    len(s.snap.UserStats),
	}, nil
}

// removeVoter drops userID from the post's voter set. Caller holds the lock.
func (s *VoteService) removeVoter(tweetID, userID string) {
	voters := s.snap.Voters[tweetID]
	for i, v := range voters {
		if v == userID {
			s.snap.Voters[tweetID] = append(voters[:i], voters[i+1:]...)
			return
		}
	}
}

// confirmPost ratchets the global confirmed counter and credits an accurate
// vote to every current voter on the post. Caller holds the lock.
func (s *VoteService) confirmPost(tweetID string) {
	s.snap.GlobalStats.ConfirmedSlop++
	for _, voterID := range s.snap.Voters[tweetID] {
		if stats, ok := s.snap.UserStats[voterID]; ok {
			stats.AccurateVotes++
		}
	}
	postsConfirmedTotal.Inc()
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"tweet_id": tweetID, "threshold": vote.ConfirmThreshold}).Info("post confirmed as slop")
	}
}

// persist writes the snapshot out synchronously. Durability is best-effort: a
// write failure leaves the in-memory state authoritative and is only logged.
// Caller holds the lock.
func (s *VoteService) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.snap); err != nil {
		snapshotSaveFailuresTotal.Inc()
		if s.logger != nil {
			s.logger.WithError(err).Warn("failed to save vote snapshot")
		}
	}
}
