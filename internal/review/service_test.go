package review

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rkoval/brightpath/internal/store"
)

// mockReviewRepo is an in-memory ReviewRepo for tests.
type mockReviewRepo struct {
	states  map[string]*store.ReviewState
	failAll bool
}

func newMockReviewRepo() *mockReviewRepo {
	return &mockReviewRepo{states: make(map[string]*store.ReviewState)}
}

func key(learnerID, itemID string) string { return learnerID + "/" + itemID }

var errStoreDown = errors.New("store unavailable")

func (m *mockReviewRepo) Get(_ context.Context, learnerID, itemID string) (*store.ReviewState, error) {
	if m.failAll {
		return nil, errStoreDown
	}
	state, ok := m.states[key(learnerID, itemID)]
	if !ok {
		return nil, nil
	}
	copied := *state
	return &copied, nil
}

func (m *mockReviewRepo) Upsert(_ context.Context, state *store.ReviewState) error {
	if m.failAll {
		return errStoreDown
	}
	copied := *state
	m.states[key(state.LearnerID, state.ItemID)] = &copied
	return nil
}

func (m *mockReviewRepo) ListByLearner(_ context.Context, learnerID string) ([]*store.ReviewState, error) {
	if m.failAll {
		return nil, errStoreDown
	}
	var out []*store.ReviewState
	for _, state := range m.states {
		if state.LearnerID == learnerID {
			copied := *state
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockReviewRepo) DueBefore(_ context.Context, learnerID string, asOf time.Time) ([]*store.ReviewState, error) {
	if m.failAll {
		return nil, errStoreDown
	}
	var out []*store.ReviewState
	for _, state := range m.states {
		if state.LearnerID == learnerID && state.NextReviewAt.Before(asOf) {
			copied := *state
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockReviewRepo) DeleteByLearner(_ context.Context, learnerID string) (int, error) {
	n := 0
	for k, state := range m.states {
		if state.LearnerID == learnerID {
			delete(m.states, k)
			n++
		}
	}
	return n, nil
}

// mockItemRepo serves items from a fixed map.
type mockItemRepo struct {
	items map[string]*store.Item
}

func (m *mockItemRepo) Get(_ context.Context, itemID string) (*store.Item, error) {
	return m.items[itemID], nil
}

func (m *mockItemRepo) ListByLevel(_ context.Context, _ string) ([]*store.Item, error) {
	return nil, nil
}

func (m *mockItemRepo) Create(_ context.Context, _ *store.Item) error { return nil }

func newTestService(reviews *mockReviewRepo, items *mockItemRepo, now time.Time) *Service {
	if items == nil {
		items = &mockItemRepo{items: map[string]*store.Item{}}
	}
	svc := NewService(reviews, items)
	svc.now = func() time.Time { return now }
	return svc
}

func TestScheduleReview_FirstReviewUsesDefaults(t *testing.T) {
	repo := newMockReviewRepo()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, nil, now)

	if err := svc.ScheduleReview(context.Background(), "learner-a", "item-1", 5); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	state := repo.states[key("learner-a", "item-1")]
	if state == nil {
		t.Fatal("expected state after first review")
	}
	// Defaults ease 2.5, interval 1; quality 5 gives ease 2.6 and the
	// fixed 3-day graduation step.
	if state.IntervalDays != 3 {
		t.Errorf("interval = %d, want 3", state.IntervalDays)
	}
	if math.Abs(state.EaseFactor-2.6) > 1e-9 {
		t.Errorf("ease = %v, want 2.6", state.EaseFactor)
	}
	if state.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", state.Repetitions)
	}
	if !state.LastReviewedAt.Equal(now) {
		t.Errorf("lastReviewedAt = %v, want %v", state.LastReviewedAt, now)
	}
	if want := now.AddDate(0, 0, 3); !state.NextReviewAt.Equal(want) {
		t.Errorf("nextReviewAt = %v, want %v", state.NextReviewAt, want)
	}
}

func TestScheduleReview_FailureStillIncrementsRepetitions(t *testing.T) {
	repo := newMockReviewRepo()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	repo.states[key("learner-a", "item-1")] = &store.ReviewState{
		LearnerID:    "learner-a",
		ItemID:       "item-1",
		IntervalDays: 10,
		EaseFactor:   2.0,
		Repetitions:  4,
	}
	svc := newTestService(repo, nil, now)

	if err := svc.ScheduleReview(context.Background(), "learner-a", "item-1", 2); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	state := repo.states[key("learner-a", "item-1")]
	if state.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", state.IntervalDays)
	}
	if math.Abs(state.EaseFactor-1.68) > 1e-9 {
		t.Errorf("ease = %v, want 1.68", state.EaseFactor)
	}
	// A failed recall resets the interval but never the repetition count.
	if state.Repetitions != 5 {
		t.Errorf("repetitions = %d, want 5", state.Repetitions)
	}
}

func TestScheduleReview_RejectsOutOfRangeQuality(t *testing.T) {
	repo := newMockReviewRepo()
	svc := newTestService(repo, nil, time.Now())

	for _, q := range []int{-1, 6} {
		err := svc.ScheduleReview(context.Background(), "learner-a", "item-1", q)
		if !errors.Is(err, ErrInvalidQuality) {
			t.Errorf("quality %d: err = %v, want ErrInvalidQuality", q, err)
		}
	}
	if len(repo.states) != 0 {
		t.Errorf("states = %d, want 0 after rejected reviews", len(repo.states))
	}
}

func TestScheduleReview_PropagatesStoreErrors(t *testing.T) {
	repo := newMockReviewRepo()
	repo.failAll = true
	svc := newTestService(repo, nil, time.Now())

	err := svc.ScheduleReview(context.Background(), "learner-a", "item-1", 4)
	if !errors.Is(err, errStoreDown) {
		t.Errorf("err = %v, want wrapped store error", err)
	}
}

func TestDueForReview_StrictBoundary(t *testing.T) {
	repo := newMockReviewRepo()
	asOf := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	items := &mockItemRepo{items: map[string]*store.Item{
		"item-past":  {ItemID: "item-past", Prompt: "past"},
		"item-exact": {ItemID: "item-exact", Prompt: "exact"},
	}}
	repo.states[key("learner-a", "item-past")] = &store.ReviewState{
		LearnerID: "learner-a", ItemID: "item-past", NextReviewAt: asOf.Add(-time.Millisecond),
	}
	repo.states[key("learner-a", "item-exact")] = &store.ReviewState{
		LearnerID: "learner-a", ItemID: "item-exact", NextReviewAt: asOf,
	}
	svc := newTestService(repo, items, asOf)

	due, err := svc.DueForReview(context.Background(), "learner-a", asOf)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("due = %d items, want 1", len(due))
	}
	// An item whose next review equals asOf exactly is not due yet.
	if due[0].ItemID != "item-past" {
		t.Errorf("due item = %q, want %q", due[0].ItemID, "item-past")
	}
	if due[0].Prompt != "past" {
		t.Errorf("prompt = %q, want %q", due[0].Prompt, "past")
	}
}

func TestDueForReview_SkipsMissingItems(t *testing.T) {
	repo := newMockReviewRepo()
	asOf := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	items := &mockItemRepo{items: map[string]*store.Item{
		"item-kept": {ItemID: "item-kept", Prompt: "kept"},
	}}
	for _, id := range []string{"item-kept", "item-gone"} {
		repo.states[key("learner-a", id)] = &store.ReviewState{
			LearnerID: "learner-a", ItemID: id, NextReviewAt: asOf.Add(-time.Hour),
		}
	}
	svc := newTestService(repo, items, asOf)

	due, err := svc.DueForReview(context.Background(), "learner-a", asOf)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 1 || due[0].ItemID != "item-kept" {
		t.Errorf("due = %+v, want only item-kept", due)
	}
}

func TestStats_EmptyLearner(t *testing.T) {
	repo := newMockReviewRepo()
	svc := newTestService(repo, nil, time.Now())

	stats, err := svc.Stats(context.Background(), "learner-a")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := Stats{}
	if *stats != want {
		t.Errorf("stats = %+v, want all zero", stats)
	}
}

func TestStats_Aggregates(t *testing.T) {
	repo := newMockReviewRepo()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	repo.states[key("learner-a", "item-1")] = &store.ReviewState{
		LearnerID: "learner-a", ItemID: "item-1",
		Repetitions: 3, EaseFactor: 2.5, NextReviewAt: now.Add(-time.Hour),
	}
	repo.states[key("learner-a", "item-2")] = &store.ReviewState{
		LearnerID: "learner-a", ItemID: "item-2",
		Repetitions: 2, EaseFactor: 1.8, NextReviewAt: now.Add(time.Hour),
	}
	// Another learner's state must not leak in.
	repo.states[key("learner-b", "item-1")] = &store.ReviewState{
		LearnerID: "learner-b", ItemID: "item-1",
		Repetitions: 9, EaseFactor: 1.3, NextReviewAt: now.Add(-time.Hour),
	}
	svc := newTestService(repo, nil, now)

	stats, err := svc.Stats(context.Background(), "learner-a")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalReviews != 5 {
		t.Errorf("totalReviews = %d, want 5", stats.TotalReviews)
	}
	if stats.ItemsScheduled != 2 {
		t.Errorf("itemsScheduled = %d, want 2", stats.ItemsScheduled)
	}
	// (2.5 + 1.8) / 2 = 2.15
	if math.Abs(stats.AvgEaseFactor-2.15) > 1e-9 {
		t.Errorf("avgEaseFactor = %v, want 2.15", stats.AvgEaseFactor)
	}
	if stats.DueForReview != 1 {
		t.Errorf("dueForReview = %d, want 1", stats.DueForReview)
	}
}
