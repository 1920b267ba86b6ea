package app

import (
	"context"
	"testing"

	"github.com/rkoval/brightpath/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return New(st)
}

func seedItem(t *testing.T, a *App, itemID string) {
	t.Helper()
	catalog := []byte(`{"items": [{"id": "` + itemID + `", "prompt": "2 + 2?", "answer": "4", "level": "level-1"}]}`)
	if _, err := a.Items.Import(context.Background(), catalog); err != nil {
		t.Fatalf("seed item: %v", err)
	}
}

func TestRecordReview_EndToEnd(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	seedItem(t, a, "item-1")

	if err := a.RecordReview(ctx, "learner-a", "item-1", 5); err != nil {
		t.Fatalf("record review: %v", err)
	}

	stats, err := a.Review.Stats(ctx, "learner-a")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalReviews != 1 || stats.ItemsScheduled != 1 {
		t.Errorf("stats = %+v, want 1 review of 1 item", stats)
	}

	state, err := a.Streak.Get(ctx, "learner-a")
	if err != nil {
		t.Fatalf("streak: %v", err)
	}
	if state == nil || state.CurrentStreak != 1 {
		t.Errorf("streak = %+v, want current 1", state)
	}

	ranked, err := a.Difficulty.RankByLevel(ctx, "level-1", true)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(ranked) != 1 || ranked[0].Estimated {
		t.Errorf("ranked = %+v, want one rated item", ranked)
	}
}

func TestRecordReview_RejectsBadQualityBeforeSideEffects(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	seedItem(t, a, "item-1")

	if err := a.RecordReview(ctx, "learner-a", "item-1", 7); err == nil {
		t.Fatal("expected error for quality 7")
	}

	state, err := a.Streak.Get(ctx, "learner-a")
	if err != nil {
		t.Fatalf("streak: %v", err)
	}
	if state != nil {
		t.Errorf("streak = %+v, want none after rejected review", state)
	}
}

func TestResetLearner_ClearsReviewAndStreakOnly(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	seedItem(t, a, "item-1")

	if err := a.RecordReview(ctx, "learner-a", "item-1", 4); err != nil {
		t.Fatalf("record review: %v", err)
	}

	n, err := a.ResetLearner(ctx, "learner-a")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}

	stats, err := a.Review.Stats(ctx, "learner-a")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.ItemsScheduled != 0 {
		t.Errorf("itemsScheduled = %d, want 0 after reset", stats.ItemsScheduled)
	}

	// Item difficulty survives the learner reset.
	ranked, err := a.Difficulty.RankByLevel(ctx, "level-1", true)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(ranked) != 1 || ranked[0].Estimated {
		t.Errorf("ranked = %+v, want the rated item to survive", ranked)
	}
}
