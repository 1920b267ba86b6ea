package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestReviewRepo_GetMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()

	state, err := repo.Get(context.Background(), "learner-a", "item-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if state != nil {
		t.Fatal("expected nil state when none exists")
	}
}

func TestReviewRepo_UpsertCreatesThenUpdates(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	state := &ReviewState{
		LearnerID:      "learner-a",
		ItemID:         "item-1",
		IntervalDays:   3,
		EaseFactor:     2.6,
		Repetitions:    1,
		LastReviewedAt: now,
		NextReviewAt:   now.AddDate(0, 0, 3),
	}
	if err := repo.Upsert(ctx, state); err != nil {
		t.Fatalf("upsert (create): %v", err)
	}

	state.IntervalDays = 8
	state.Repetitions = 2
	if err := repo.Upsert(ctx, state); err != nil {
		t.Fatalf("upsert (update): %v", err)
	}

	got, err := repo.Get(ctx, "learner-a", "item-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected state after upsert")
	}
	if got.IntervalDays != 8 {
		t.Errorf("interval = %d, want 8", got.IntervalDays)
	}
	if got.Repetitions != 2 {
		t.Errorf("repetitions = %d, want 2", got.Repetitions)
	}

	// Upsert must not create a second row for the same key.
	all, err := repo.ListByLearner(ctx, "learner-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("states = %d, want 1", len(all))
	}
}

func TestReviewRepo_DueBeforeIsStrict(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()

	asOf := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	save := func(itemID string, next time.Time) {
		t.Helper()
		err := repo.Upsert(ctx, &ReviewState{
			LearnerID:      "learner-a",
			ItemID:         itemID,
			IntervalDays:   1,
			EaseFactor:     2.5,
			LastReviewedAt: next.AddDate(0, 0, -1),
			NextReviewAt:   next,
		})
		if err != nil {
			t.Fatalf("upsert %s: %v", itemID, err)
		}
	}

	save("past", asOf.Add(-time.Second))
	save("exact", asOf)
	save("future", asOf.Add(time.Second))

	due, err := repo.DueBefore(ctx, "learner-a", asOf)
	if err != nil {
		t.Fatalf("due before: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("due = %d states, want 1", len(due))
	}
	if due[0].ItemID != "past" {
		t.Errorf("due item = %q, want %q", due[0].ItemID, "past")
	}
}

func TestReviewRepo_DeleteByLearner(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	for _, itemID := range []string{"item-1", "item-2"} {
		err := repo.Upsert(ctx, &ReviewState{
			LearnerID:      "learner-a",
			ItemID:         itemID,
			IntervalDays:   1,
			EaseFactor:     2.5,
			LastReviewedAt: now,
			NextReviewAt:   now.AddDate(0, 0, 1),
		})
		if err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	n, err := repo.DeleteByLearner(ctx, "learner-a")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}

	all, err := repo.ListByLearner(ctx, "learner-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("states after delete = %d, want 0", len(all))
	}
}

func TestAttemptRepo_AppendAndListInSequenceOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	outcomes := []bool{true, false, true}
	for _, correct := range outcomes {
		err := repo.Append(ctx, AttemptData{
			ItemID:    "item-1",
			LearnerID: "learner-a",
			Correct:   correct,
			Quality:   4,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	attempts, err := repo.ListByItem(ctx, "item-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("attempts = %d, want 3", len(attempts))
	}
	for i, a := range attempts {
		if a.Correct != outcomes[i] {
			t.Errorf("attempt %d correct = %v, want %v", i, a.Correct, outcomes[i])
		}
		if i > 0 && a.Sequence <= attempts[i-1].Sequence {
			t.Errorf("sequence not increasing at %d: %d then %d", i, attempts[i-1].Sequence, a.Sequence)
		}
	}
}

func TestDifficultyRepo_UpsertOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.DifficultyRepo()
	ctx := context.Background()

	err := repo.Upsert(ctx, &DifficultyRecord{
		ItemID: "item-1", Difficulty: 0.5, TotalAttempts: 2, SuccessRate: 50,
	})
	if err != nil {
		t.Fatalf("upsert (create): %v", err)
	}
	err = repo.Upsert(ctx, &DifficultyRecord{
		ItemID: "item-1", Difficulty: 0.3, TotalAttempts: 10, SuccessRate: 70,
	})
	if err != nil {
		t.Fatalf("upsert (update): %v", err)
	}

	got, err := repo.Get(ctx, "item-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalAttempts != 10 || got.SuccessRate != 70 {
		t.Errorf("record = %+v, want total 10, rate 70", got)
	}
}

func TestStreakRepo_TopOrdersByCurrentStreak(t *testing.T) {
	s := openTestStore(t)
	repo := s.StreakRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	for learner, streak := range map[string]int{"a": 2, "b": 9, "c": 5} {
		err := repo.Upsert(ctx, &StreakState{
			LearnerID:       learner,
			CurrentStreak:   streak,
			LongestStreak:   streak,
			LastActivityAt:  now,
			StreakStartedAt: now,
		})
		if err != nil {
			t.Fatalf("upsert %s: %v", learner, err)
		}
	}

	top, err := repo.Top(ctx, 2)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("top = %d states, want 2", len(top))
	}
	if top[0].LearnerID != "b" || top[1].LearnerID != "c" {
		t.Errorf("top order = %s, %s; want b, c", top[0].LearnerID, top[1].LearnerID)
	}
}

func TestItemRepo_ListByLevelPreservesInsertionOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	ids := []string{"q-3", "q-1", "q-2"}
	for _, id := range ids {
		err := repo.Create(ctx, &Item{ItemID: id, Prompt: "p", LevelID: "level-1"})
		if err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	items, err := repo.ListByLevel(ctx, "level-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	for i, it := range items {
		if it.ItemID != ids[i] {
			t.Errorf("item[%d] = %q, want %q", i, it.ItemID, ids[i])
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
