package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	impl "github.com/offmylawn101/slopwatch/internal/application/services"
	"github.com/offmylawn101/slopwatch/internal/core/domain/vote"
	"github.com/offmylawn101/slopwatch/internal/utils"
	"github.com/offmylawn101/slopwatch/test/mocks"
)

func newStore(t *testing.T) *impl.VoteService {
	t.Helper()
	return impl.NewVoteService(context.Background(), &mocks.SnapshotRepositoryMock{}, nil)
}

func TestToggleVote_AddThenRemove(t *testing.T) {
	svc := newStore(t)
	user := utils.NewAnonymousID()

	st, err := svc.ToggleVote(context.Background(), "1001", user)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if st.Count != 1 || !st.Voted {
		t.Fatalf("expected {1 true}, got %+v", st)
	}

	st, _ = svc.ToggleVote(context.Background(), "1001", user)
	if st.Count != 0 || st.Voted {
		t.Fatalf("expected {0 false}, got %+v", st)
	}
}

func TestToggleVote_ParityAfterRepeatedToggles(t *testing.T) {
	svc := newStore(t)
	user := utils.NewAnonymousID()

	for i := 1; i <= 7; i++ {
		st, _ := svc.ToggleVote(context.Background(), "1001", user)
		odd := i%2 == 1
		if st.Voted != odd {
			t.Fatalf("after %d toggles expected voted=%v, got %v", i, odd, st.Voted)
		}
		wantCount := 0
		if odd {
			wantCount = 1
		}
		if st.Count != wantCount {
			t.Fatalf("after %d toggles expected count=%d, got %d", i, wantCount, st.Count)
		}
	}
}

func TestToggleVote_GlobalTotalsTrackItemCounts(t *testing.T) {
	svc := newStore(t)
	a, b := utils.NewAnonymousID(), utils.NewAnonymousID()

	svc.ToggleVote(context.Background(), "1001", a)
	svc.ToggleVote(context.Background(), "1001", b)
	svc.ToggleVote(context.Background(), "1002", a)
	svc.ToggleVote(context.Background(), "1001", b) // remove

	g, _ := svc.GetGlobalStats(context.Background())
	if g.TotalVotes != 2 {
		t.Fatalf("expected 2 active votes, got %d", g.TotalVotes)
	}
	if g.TotalPosts != 2 {
		t.Fatalf("totalPosts counts posts that ever had a vote, got %d", g.TotalPosts)
	}
	if g.TotalUsers != 2 {
		t.Fatalf("expected 2 users, got %d", g.TotalUsers)
	}
}

func TestToggleVote_ThresholdCreditsAllVotersExactlyOnce(t *testing.T) {
	svc := newStore(t)
	voters := []string{utils.NewAnonymousID(), utils.NewAnonymousID(), utils.NewAnonymousID()}

	for _, u := range voters {
		svc.ToggleVote(context.Background(), "1001", u)
	}

	g, _ := svc.GetGlobalStats(context.Background())
	if g.ConfirmedSlop != 1 {
		t.Fatalf("expected 1 confirmed post, got %d", g.ConfirmedSlop)
	}
	for _, u := range voters {
		st, _ := svc.GetUserStats(context.Background(), u)
		if st.AccurateVotes != 1 {
			t.Fatalf("every voter is credited on confirmation, got %d", st.AccurateVotes)
		}
	}

	// A fourth vote moves past the threshold without re-crediting.
	svc.ToggleVote(context.Background(), "1001", utils.NewAnonymousID())
	g, _ = svc.GetGlobalStats(context.Background())
	if g.ConfirmedSlop != 1 {
		t.Fatalf("threshold credit must fire once, got %d", g.ConfirmedSlop)
	}
	st, _ := svc.GetUserStats(context.Background(), voters[0])
	if st.AccurateVotes != 1 {
		t.Fatalf("no re-credit on later votes, got %d", st.AccurateVotes)
	}
}

func TestToggleVote_RemovalBackToThresholdDoesNotRefire(t *testing.T) {
	svc := newStore(t)
	voters := make([]string, 4)
	for i := range voters {
		voters[i] = utils.NewAnonymousID()
		svc.ToggleVote(context.Background(), "1001", voters[i])
	}

	// 4 -> 3: the count lands back on the threshold via a removal.
	svc.ToggleVote(context.Background(), "1001", voters[3])

	g, _ := svc.GetGlobalStats(context.Background())
	if g.ConfirmedSlop != 1 {
		t.Fatalf("removal must never confirm, got %d", g.ConfirmedSlop)
	}
	st, _ := svc.GetUserStats(context.Background(), voters[0])
	if st.AccurateVotes != 1 {
		t.Fatalf("removal must not re-credit voters, got %d", st.AccurateVotes)
	}
}

func TestToggleVote_ConfirmedSlopIsOneWayRatchet(t *testing.T) {
	svc := newStore(t)
	voters := make([]string, 3)
	for i := range voters {
		voters[i] = utils.NewAnonymousID()
		svc.ToggleVote(context.Background(), "1001", voters[i])
	}
	for _, u := range voters {
		svc.ToggleVote(context.Background(), "1001", u) // remove all
	}

	g, _ := svc.GetGlobalStats(context.Background())
	if g.ConfirmedSlop != 1 {
		t.Fatalf("confirmedSlop never decrements, got %d", g.ConfirmedSlop)
	}
	if g.TotalVotes != 0 {
		t.Fatalf("expected 0 active votes, got %d", g.TotalVotes)
	}
}

func TestToggleVote_StreakNotDoubleCountedSameDay(t *testing.T) {
	svc := newStore(t)
	user := utils.NewAnonymousID()

	svc.ToggleVote(context.Background(), "1001", user)
	svc.ToggleVote(context.Background(), "1002", user)

	st, _ := svc.GetUserStats(context.Background(), user)
	if st.CurrentStreak != 1 {
		t.Fatalf("two votes on one day are one streak day, got %d", st.CurrentStreak)
	}
}

func TestToggleVote_RemovalSkipsStreakUpdate(t *testing.T) {
	svc := newStore(t)
	user := utils.NewAnonymousID()

	svc.ToggleVote(context.Background(), "1001", user)
	svc.ToggleVote(context.Background(), "1001", user) // remove

	st, _ := svc.GetUserStats(context.Background(), user)
	if st.TotalVotes != 0 {
		t.Fatalf("expected 0 net votes, got %d", st.TotalVotes)
	}
	if st.CurrentStreak != 1 {
		t.Fatalf("removal leaves the streak untouched, got %d", st.CurrentStreak)
	}
}

func TestToggleVote_SaveFailureDoesNotFailRequest(t *testing.T) {
	repo := &mocks.SnapshotRepositoryMock{
		SaveFn: func(ctx context.Context, snap *vote.Snapshot) error {
			return errors.New("disk full")
		},
	}
	svc := impl.NewVoteService(context.Background(), repo, nil)

	st, err := svc.ToggleVote(context.Background(), "1001", utils.NewAnonymousID())
	if err != nil {
		t.Fatalf("save failure must not fail the toggle: %v", err)
	}
	if st.Count != 1 || !st.Voted {
		t.Fatalf("in-memory state stays authoritative, got %+v", st)
	}
}

func TestNewVoteService_LoadFailureStartsEmpty(t *testing.T) {
	repo := &mocks.SnapshotRepositoryMock{
		LoadFn: func(ctx context.Context) (*vote.Snapshot, error) {
			return nil, errors.New("corrupt file")
		},
	}
	svc := impl.NewVoteService(context.Background(), repo, nil)

	g, _ := svc.GetGlobalStats(context.Background())
	if g.TotalVotes != 0 || g.TotalPosts != 0 {
		t.Fatalf("expected empty store after load failure, got %+v", g)
	}
}

func TestNewVoteService_MigratesLegacySnapshot(t *testing.T) {
	legacy := vote.NewSnapshot()
	legacy.Counts = map[string]int{"1001": 3}
	legacy.Voters = map[string][]string{"1001": {"a", "b", "c"}}

	saved := 0
	repo := &mocks.SnapshotRepositoryMock{
		LoadFn: func(ctx context.Context) (*vote.Snapshot, error) { return legacy, nil },
		SaveFn: func(ctx context.Context, snap *vote.Snapshot) error {
			saved++
			return nil
		},
	}
	svc := impl.NewVoteService(context.Background(), repo, nil)

	if saved != 1 {
		t.Fatalf("migration must persist immediately, saves=%d", saved)
	}
	g, _ := svc.GetGlobalStats(context.Background())
	if g.TotalVotes != 3 || g.TotalPosts != 1 || g.ConfirmedSlop != 1 || g.TotalUsers != 3 {
		t.Fatalf("unexpected migrated totals: %+v", g)
	}
	st, _ := svc.GetUserStats(context.Background(), "a")
	if st.TotalVotes != 1 || st.AccurateVotes != 1 || st.Accuracy != 100 {
		t.Fatalf("unexpected migrated user stats: %+v", st)
	}
	if st.CurrentStreak != 1 {
		t.Fatalf("migrated users are seeded with a live one-day streak, got %d", st.CurrentStreak)
	}
}

func TestGetUserStats_UnknownUserZeroed(t *testing.T) {
	svc := newStore(t)
	st, _ := svc.GetUserStats(context.Background(), utils.NewAnonymousID())
	if st.TotalVotes != 0 || st.Accuracy != 0 || st.CurrentStreak != 0 || st.LastVoteDate != "" {
		t.Fatalf("expected zeroed stats, got %+v", st)
	}
}

func TestGetVotes_ReportsPerUserState(t *testing.T) {
	svc := newStore(t)
	a, b := utils.NewAnonymousID(), utils.NewAnonymousID()
	svc.ToggleVote(context.Background(), "1001", a)
	svc.ToggleVote(context.Background(), "1002", b)

	votes, _ := svc.GetVotes(context.Background(), []string{"1001", "1002", "1003"}, a)
	if votes["1001"].Count != 1 || !votes["1001"].Voted {
		t.Fatalf("unexpected state for 1001: %+v", votes["1001"])
	}
	if votes["1002"].Count != 1 || votes["1002"].Voted {
		t.Fatalf("unexpected state for 1002: %+v", votes["1002"])
	}
	if votes["1003"].Count != 0 || votes["1003"].Voted {
		t.Fatalf("unknown post reads as zero: %+v", votes["1003"])
	}
}

func TestToggleVote_ConcurrentTogglesSerialize(t *testing.T) {
	svc := newStore(t)

	const n = 32
	users := make([]string, n)
	for i := range users {
		users[i] = utils.NewAnonymousID()
	}

	var wg sync.WaitGroup
	for _, u := range users {
		wg.Add(1)
		go func(u string) {
			defer wg.Done()
			svc.ToggleVote(context.Background(), "1001", u)
		}(u)
	}
	wg.Wait()

	st, _ := svc.GetStatus(context.Background(), "1001", users[0])
	if st.Count != n {
		t.Fatalf("expected %d votes after concurrent toggles, got %d", n, st.Count)
	}
	g, _ := svc.GetGlobalStats(context.Background())
	if g.TotalVotes != n {
		t.Fatalf("global total diverged from item count: %d", g.TotalVotes)
	}
}
