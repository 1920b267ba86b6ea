package streak

import (
	"context"
	"testing"
	"time"

	"github.com/rkoval/brightpath/internal/store"
)

// mockStreakRepo is an in-memory StreakRepo for tests.
type mockStreakRepo struct {
	states map[string]*store.StreakState
}

func newMockStreakRepo() *mockStreakRepo {
	return &mockStreakRepo{states: make(map[string]*store.StreakState)}
}

func (m *mockStreakRepo) Get(_ context.Context, learnerID string) (*store.StreakState, error) {
	state, ok := m.states[learnerID]
	if !ok {
		return nil, nil
	}
	copied := *state
	return &copied, nil
}

func (m *mockStreakRepo) Upsert(_ context.Context, state *store.StreakState) error {
	copied := *state
	m.states[state.LearnerID] = &copied
	return nil
}

func (m *mockStreakRepo) Top(_ context.Context, limit int) ([]*store.StreakState, error) {
	var out []*store.StreakState
	for _, state := range m.states {
		copied := *state
		out = append(out, &copied)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockStreakRepo) Delete(_ context.Context, learnerID string) error {
	delete(m.states, learnerID)
	return nil
}

func newTestTracker(repo *mockStreakRepo) (*Tracker, *time.Time) {
	tracker := NewTracker(repo)
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	clock := &now
	tracker.now = func() time.Time { return *clock }
	return tracker, clock
}

func TestUpdate_FirstActivityStartsStreak(t *testing.T) {
	repo := newMockStreakRepo()
	tracker, clock := newTestTracker(repo)

	if err := tracker.Update(context.Background(), "learner-a"); err != nil {
		t.Fatalf("update: %v", err)
	}

	state := repo.states["learner-a"]
	if state == nil {
		t.Fatal("expected streak state")
	}
	if state.CurrentStreak != 1 {
		t.Errorf("currentStreak = %d, want 1", state.CurrentStreak)
	}
	if state.LongestStreak != 1 {
		t.Errorf("longestStreak = %d, want 1", state.LongestStreak)
	}
	if !state.StreakStartedAt.Equal(*clock) {
		t.Errorf("streakStartedAt = %v, want %v", state.StreakStartedAt, *clock)
	}
}

func TestUpdate_SameDayKeepsStreak(t *testing.T) {
	repo := newMockStreakRepo()
	tracker, clock := newTestTracker(repo)
	ctx := context.Background()

	if err := tracker.Update(ctx, "learner-a"); err != nil {
		t.Fatalf("first update: %v", err)
	}
	started := repo.states["learner-a"].StreakStartedAt

	// 23h59m later is still the same elapsed-time day even though the
	// calendar date changed.
	*clock = clock.Add(23*time.Hour + 59*time.Minute)
	if err := tracker.Update(ctx, "learner-a"); err != nil {
		t.Fatalf("second update: %v", err)
	}

	state := repo.states["learner-a"]
	if state.CurrentStreak != 1 {
		t.Errorf("currentStreak = %d, want 1", state.CurrentStreak)
	}
	if !state.StreakStartedAt.Equal(started) {
		t.Errorf("streakStartedAt moved: %v, want %v", state.StreakStartedAt, started)
	}
	if !state.LastActivityAt.Equal(*clock) {
		t.Errorf("lastActivityAt = %v, want %v", state.LastActivityAt, *clock)
	}
}

func TestUpdate_NextDayExtendsStreak(t *testing.T) {
	repo := newMockStreakRepo()
	tracker, clock := newTestTracker(repo)
	ctx := context.Background()

	if err := tracker.Update(ctx, "learner-a"); err != nil {
		t.Fatalf("first update: %v", err)
	}
	started := repo.states["learner-a"].StreakStartedAt

	for day := 1; day <= 3; day++ {
		*clock = clock.Add(25 * time.Hour)
		if err := tracker.Update(ctx, "learner-a"); err != nil {
			t.Fatalf("day %d update: %v", day, err)
		}
	}

	state := repo.states["learner-a"]
	if state.CurrentStreak != 4 {
		t.Errorf("currentStreak = %d, want 4", state.CurrentStreak)
	}
	if state.LongestStreak != 4 {
		t.Errorf("longestStreak = %d, want 4", state.LongestStreak)
	}
	if !state.StreakStartedAt.Equal(started) {
		t.Errorf("streakStartedAt moved: %v, want %v", state.StreakStartedAt, started)
	}
}

func TestUpdate_GapResetsStreak(t *testing.T) {
	repo := newMockStreakRepo()
	tracker, clock := newTestTracker(repo)
	ctx := context.Background()

	for day := 0; day < 3; day++ {
		if day > 0 {
			*clock = clock.Add(24 * time.Hour)
		}
		if err := tracker.Update(ctx, "learner-a"); err != nil {
			t.Fatalf("day %d update: %v", day, err)
		}
	}

	// Two full days of silence.
	*clock = clock.Add(49 * time.Hour)
	if err := tracker.Update(ctx, "learner-a"); err != nil {
		t.Fatalf("update after gap: %v", err)
	}

	state := repo.states["learner-a"]
	if state.CurrentStreak != 1 {
		t.Errorf("currentStreak = %d, want 1", state.CurrentStreak)
	}
	// Longest streak keeps the pre-gap high-water mark.
	if state.LongestStreak != 3 {
		t.Errorf("longestStreak = %d, want 3", state.LongestStreak)
	}
	if !state.StreakStartedAt.Equal(*clock) {
		t.Errorf("streakStartedAt = %v, want reset to %v", state.StreakStartedAt, *clock)
	}
}

func TestUpdate_LongestStreakNeverDecreases(t *testing.T) {
	repo := newMockStreakRepo()
	tracker, clock := newTestTracker(repo)
	ctx := context.Background()

	// An arbitrary mix of same-day, next-day, and gap updates.
	gaps := []time.Duration{
		0, 24 * time.Hour, 24 * time.Hour, 72 * time.Hour,
		24 * time.Hour, 2 * time.Hour, 24 * time.Hour, 96 * time.Hour,
	}
	prevLongest := 0
	for i, gap := range gaps {
		*clock = clock.Add(gap)
		if err := tracker.Update(ctx, "learner-a"); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
		state := repo.states["learner-a"]
		if state.LongestStreak < prevLongest {
			t.Fatalf("update %d: longestStreak decreased from %d to %d", i, prevLongest, state.LongestStreak)
		}
		if state.LongestStreak < state.CurrentStreak {
			t.Fatalf("update %d: longest %d < current %d", i, state.LongestStreak, state.CurrentStreak)
		}
		prevLongest = state.LongestStreak
	}
}

func TestGet_MissingLearnerReturnsNil(t *testing.T) {
	repo := newMockStreakRepo()
	tracker, _ := newTestTracker(repo)

	state, err := tracker.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if state != nil {
		t.Errorf("state = %+v, want nil", state)
	}
}
