package vote

import "time"

// Snapshot is the full persisted state of the vote store: per-post counts and
// voter sets, per-user stats, and the global totals. It matches the on-disk
// JSON document layout one to one.
type Snapshot struct {
	Counts      map[string]int        `json:"counts"`
	Voters      map[string][]string   `json:"voters"`
	UserStats   map[string]*UserStats `json:"userStats"`
	GlobalStats GlobalStats           `json:"globalStats"`
}

// NewSnapshot returns an empty snapshot with all maps initialized.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Counts:    make(map[string]int),
		Voters:    make(map[string][]string),
		UserStats: make(map[string]*UserStats),
	}
}

// Normalize replaces nil maps after deserialization of partial documents.
func (s *Snapshot) Normalize() {
	if s.Counts == nil {
		s.Counts = make(map[string]int)
	}
	if s.Voters == nil {
		s.Voters = make(map[string][]string)
	}
	if s.UserStats == nil {
		s.UserStats = make(map[string]*UserStats)
	}
}

// HasVoted reports whether userID currently holds an active vote on tweetID.
func (s *Snapshot) HasVoted(tweetID, userID string) bool {
	for _, v := range s.Voters[tweetID] {
		if v == userID {
			return true
		}
	}
	return false
}

// Status returns the public (count, voted) pair for tweetID without creating
// any record. Unknown posts read as count 0, not voted.
func (s *Snapshot) Status(tweetID, userID string) Status {
	return Status{
		Count: s.Counts[tweetID],
		Voted: userID != "" && s.HasVoted(tweetID, userID),
	}
}

// NeedsBackfill reports whether the snapshot is in the legacy format that
// predates per-user statistics: voter data exists but no user stats records.
func (s *Snapshot) NeedsBackfill() bool {
	return len(s.UserStats) == 0 && len(s.Voters) > 0
}

// Backfill upgrades a legacy snapshot in place: global totals are recomputed
// from the raw counts, posts at or above ConfirmThreshold are marked as
// historically confirmed, and each user's vote totals are rebuilt from the
// voter sets. Streak history cannot be reconstructed, so every discovered
// user is seeded with a one-day streak anchored at now.
func (s *Snapshot) Backfill(now time.Time) {
	today := now.UTC().Format(DateLayout)

	s.GlobalStats.TotalPosts = len(s.Counts)
	s.GlobalStats.TotalVotes = 0
	s.GlobalStats.ConfirmedSlop = 0
	for _, count := range s.Counts {
		s.GlobalStats.TotalVotes += count
		if count >= ConfirmThreshold {
			s.GlobalStats.ConfirmedSlop++
		}
	}

	for tweetID, voters := range s.Voters {
		confirmed := s.Counts[tweetID] >= ConfirmThreshold
		for _, voterID := range voters {
			stats, ok := s.UserStats[voterID]
			if !ok {
				stats = &UserStats{
					CurrentStreak: 1,
					LongestStreak: 1,
					LastVoteDate:  today,
				}
				s.UserStats[voterID] = stats
			}
			stats.TotalVotes++
			if confirmed {
				stats.AccurateVotes++
			}
		}
	}
}
