package vote

import (
	"math"
	"time"
)

// ConfirmThreshold is the number of votes at which a post counts as confirmed slop.
const ConfirmThreshold = 3

// DateLayout is the calendar-day precision used for streak bookkeeping (UTC).
const DateLayout = "2006-01-02"

// Status is the public vote state of a single post for one user.
type Status struct {
	Count int  `json:"count"`
	Voted bool `json:"voted"`
}

// UserStats tracks per-user engagement. AccurateVotes counts votes on posts
// that reached ConfirmThreshold. Invariants: AccurateVotes <= TotalVotes,
// CurrentStreak <= LongestStreak.
type UserStats struct {
	TotalVotes    int    `json:"totalVotes"`
	AccurateVotes int    `json:"accurateVotes"`
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	LastVoteDate  string `json:"lastVoteDate"`
}

// GlobalStats are the singleton totals across all posts and users.
// ConfirmedSlop is a one-way ratchet: it never decreases, even when votes
// are later removed from a confirmed post.
type GlobalStats struct {
	TotalVotes    int `json:"totalVotes"`
	TotalPosts    int `json:"totalPosts"`
	ConfirmedSlop int `json:"confirmedSlop"`
}

// UserStatsView is the query shape for user stats, with the derived accuracy
// percentage and the liveness-gated current streak.
type UserStatsView struct {
	TotalVotes    int    `json:"totalVotes"`
	AccurateVotes int    `json:"accurateVotes"`
	Accuracy      int    `json:"accuracy"`
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	LastVoteDate  string `json:"lastVoteDate"`
}

// GlobalStatsView is the query shape for global stats.
type GlobalStatsView struct {
	TotalVotes    int `json:"totalVotes"`
	TotalPosts    int `json:"totalPosts"`
	ConfirmedSlop int `json:"confirmedSlop"`
	TotalUsers    int `json:"totalUsers"`
}

// RecordDailyVote applies the streak rules for a new (non-removal) vote cast
// at now. Voting again on the same calendar day is a no-op; voting on the
// following day extends the streak; any larger gap resets it to one.
func (s *UserStats) RecordDailyVote(now time.Time) {
	today := now.UTC().Format(DateLayout)
	yesterday := now.UTC().AddDate(0, 0, -1).Format(DateLayout)

	switch s.LastVoteDate {
	case today:
		return
	case yesterday:
		s.CurrentStreak++
	default:
		s.CurrentStreak = 1
	}

	s.LastVoteDate = today
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
}

// View computes the query shape as of now. The stored streak is reported only
// while it is still live (last vote today or yesterday); a lapsed streak reads
// as zero without mutating the stored value.
func (s *UserStats) View(now time.Time) *UserStatsView {
	accuracy := 0
	if s.TotalVotes > 0 {
		accuracy = int(math.Round(float64(s.AccurateVotes) / float64(s.TotalVotes) * 100))
	}

	today := now.UTC().Format(DateLayout)
	yesterday := now.UTC().AddDate(0, 0, -1).Format(DateLayout)
	current := 0
	if s.LastVoteDate == today || s.LastVoteDate == yesterday {
		current = s.CurrentStreak
	}

	return &UserStatsView{
		TotalVotes:    s.TotalVotes,
		AccurateVotes: s.AccurateVotes,
		Accuracy:      accuracy,
		CurrentStreak: current,
		LongestStreak: s.LongestStreak,
		LastVoteDate:  s.LastVoteDate,
	}
}
