package difficulty

import (
	"context"
	"math"
	"testing"

	"github.com/rkoval/brightpath/internal/store"
)

// mockAttemptRepo serves attempts from a fixed per-item list.
type mockAttemptRepo struct {
	attempts map[string][]*store.Attempt
}

func (m *mockAttemptRepo) Append(_ context.Context, data store.AttemptData) error {
	m.attempts[data.ItemID] = append(m.attempts[data.ItemID], &store.Attempt{
		ItemID:    data.ItemID,
		LearnerID: data.LearnerID,
		Correct:   data.Correct,
	})
	return nil
}

func (m *mockAttemptRepo) ListByItem(_ context.Context, itemID string) ([]*store.Attempt, error) {
	return m.attempts[itemID], nil
}

// mockDifficultyRepo is an in-memory DifficultyRepo.
type mockDifficultyRepo struct {
	records map[string]*store.DifficultyRecord
	upserts int
}

func (m *mockDifficultyRepo) Get(_ context.Context, itemID string) (*store.DifficultyRecord, error) {
	return m.records[itemID], nil
}

func (m *mockDifficultyRepo) Upsert(_ context.Context, record *store.DifficultyRecord) error {
	copied := *record
	m.records[record.ItemID] = &copied
	m.upserts++
	return nil
}

func (m *mockDifficultyRepo) ForItems(_ context.Context, itemIDs []string) (map[string]*store.DifficultyRecord, error) {
	out := make(map[string]*store.DifficultyRecord)
	for _, id := range itemIDs {
		if r, ok := m.records[id]; ok {
			out[id] = r
		}
	}
	return out, nil
}

// mockItemRepo lists a fixed catalog in insertion order.
type mockItemRepo struct {
	items []*store.Item
}

func (m *mockItemRepo) Get(_ context.Context, itemID string) (*store.Item, error) {
	for _, it := range m.items {
		if it.ItemID == itemID {
			return it, nil
		}
	}
	return nil, nil
}

func (m *mockItemRepo) ListByLevel(_ context.Context, levelID string) ([]*store.Item, error) {
	var out []*store.Item
	for _, it := range m.items {
		if it.LevelID == levelID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockItemRepo) Create(_ context.Context, item *store.Item) error {
	m.items = append(m.items, item)
	return nil
}

func attemptsOf(correct ...bool) []*store.Attempt {
	out := make([]*store.Attempt, len(correct))
	for i, c := range correct {
		out[i] = &store.Attempt{Correct: c}
	}
	return out
}

func newTestService(attempts *mockAttemptRepo, records *mockDifficultyRepo, items *mockItemRepo) *Service {
	if attempts == nil {
		attempts = &mockAttemptRepo{attempts: map[string][]*store.Attempt{}}
	}
	if records == nil {
		records = &mockDifficultyRepo{records: map[string]*store.DifficultyRecord{}}
	}
	if items == nil {
		items = &mockItemRepo{}
	}
	return NewService(attempts, records, items)
}

func TestUpdate_ComputesFromFullHistory(t *testing.T) {
	attempts := &mockAttemptRepo{attempts: map[string][]*store.Attempt{
		// 10 attempts, 7 passes.
		"item-1": attemptsOf(true, true, true, true, true, true, true, false, false, false),
	}}
	records := &mockDifficultyRepo{records: map[string]*store.DifficultyRecord{}}
	svc := newTestService(attempts, records, nil)

	if err := svc.Update(context.Background(), "item-1"); err != nil {
		t.Fatalf("update: %v", err)
	}

	record := records.records["item-1"]
	if record == nil {
		t.Fatal("expected record after update")
	}
	if record.SuccessRate != 70 {
		t.Errorf("successRate = %d, want 70", record.SuccessRate)
	}
	if math.Abs(record.Difficulty-0.30) > 1e-9 {
		t.Errorf("difficulty = %v, want 0.30", record.Difficulty)
	}
	if record.TotalAttempts != 10 {
		t.Errorf("totalAttempts = %d, want 10", record.TotalAttempts)
	}
}

func TestUpdate_ZeroAttemptsIsNoOp(t *testing.T) {
	records := &mockDifficultyRepo{records: map[string]*store.DifficultyRecord{
		"item-1": {ItemID: "item-1", Difficulty: 0.2, TotalAttempts: 5, SuccessRate: 80},
	}}
	svc := newTestService(nil, records, nil)

	if err := svc.Update(context.Background(), "item-1"); err != nil {
		t.Fatalf("update: %v", err)
	}

	// The existing record must be left untouched.
	record := records.records["item-1"]
	if record.TotalAttempts != 5 || record.SuccessRate != 80 {
		t.Errorf("record = %+v, want unchanged", record)
	}
	if records.upserts != 0 {
		t.Errorf("upserts = %d, want 0", records.upserts)
	}
}

func TestUpdate_Idempotent(t *testing.T) {
	attempts := &mockAttemptRepo{attempts: map[string][]*store.Attempt{
		"item-1": attemptsOf(true, false, true),
	}}
	records := &mockDifficultyRepo{records: map[string]*store.DifficultyRecord{}}
	svc := newTestService(attempts, records, nil)
	ctx := context.Background()

	if err := svc.Update(ctx, "item-1"); err != nil {
		t.Fatalf("first update: %v", err)
	}
	first := *records.records["item-1"]

	if err := svc.Update(ctx, "item-1"); err != nil {
		t.Fatalf("second update: %v", err)
	}
	second := *records.records["item-1"]

	if first != second {
		t.Errorf("records differ: %+v then %+v", first, second)
	}
}

func TestUpdate_RoundsSuccessRate(t *testing.T) {
	attempts := &mockAttemptRepo{attempts: map[string][]*store.Attempt{
		// 2 of 3: 66.67% rounds to 67.
		"item-1": attemptsOf(true, true, false),
	}}
	records := &mockDifficultyRepo{records: map[string]*store.DifficultyRecord{}}
	svc := newTestService(attempts, records, nil)

	if err := svc.Update(context.Background(), "item-1"); err != nil {
		t.Fatalf("update: %v", err)
	}

	record := records.records["item-1"]
	if record.SuccessRate != 67 {
		t.Errorf("successRate = %d, want 67", record.SuccessRate)
	}
	if math.Abs(record.Difficulty-0.33) > 1e-9 {
		t.Errorf("difficulty = %v, want 0.33", record.Difficulty)
	}
}

func TestRankByLevel_DefaultsAndOrder(t *testing.T) {
	items := &mockItemRepo{items: []*store.Item{
		{ItemID: "hard", LevelID: "level-1"},
		{ItemID: "unrated", LevelID: "level-1"},
		{ItemID: "easy", LevelID: "level-1"},
		{ItemID: "other", LevelID: "level-2"},
	}}
	records := &mockDifficultyRepo{records: map[string]*store.DifficultyRecord{
		"hard": {ItemID: "hard", Difficulty: 0.9},
		"easy": {ItemID: "easy", Difficulty: 0.1},
	}}
	svc := newTestService(nil, records, items)

	ranked, err := svc.RankByLevel(context.Background(), "level-1", true)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("ranked = %d items, want 3", len(ranked))
	}

	wantOrder := []string{"easy", "unrated", "hard"}
	for i, want := range wantOrder {
		if ranked[i].ItemID != want {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].ItemID, want)
		}
	}
	if math.Abs(ranked[1].Difficulty-DefaultScore) > 1e-9 {
		t.Errorf("unrated difficulty = %v, want %v", ranked[1].Difficulty, DefaultScore)
	}
	if !ranked[1].Estimated {
		t.Error("unrated item should be marked estimated")
	}
}

func TestRankByLevel_Descending(t *testing.T) {
	items := &mockItemRepo{items: []*store.Item{
		{ItemID: "a", LevelID: "level-1"},
		{ItemID: "b", LevelID: "level-1"},
	}}
	records := &mockDifficultyRepo{records: map[string]*store.DifficultyRecord{
		"a": {ItemID: "a", Difficulty: 0.2},
		"b": {ItemID: "b", Difficulty: 0.8},
	}}
	svc := newTestService(nil, records, items)

	ranked, err := svc.RankByLevel(context.Background(), "level-1", false)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if ranked[0].ItemID != "b" || ranked[1].ItemID != "a" {
		t.Errorf("order = %s, %s; want b, a", ranked[0].ItemID, ranked[1].ItemID)
	}
}

func TestRankByLevel_TiesKeepInsertionOrder(t *testing.T) {
	items := &mockItemRepo{items: []*store.Item{
		{ItemID: "first", LevelID: "level-1"},
		{ItemID: "second", LevelID: "level-1"},
		{ItemID: "third", LevelID: "level-1"},
	}}
	records := &mockDifficultyRepo{records: map[string]*store.DifficultyRecord{
		"first":  {ItemID: "first", Difficulty: 0.5},
		"second": {ItemID: "second", Difficulty: 0.5},
		"third":  {ItemID: "third", Difficulty: 0.5},
	}}
	svc := newTestService(nil, records, items)

	ranked, err := svc.RankByLevel(context.Background(), "level-1", true)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	wantOrder := []string{"first", "second", "third"}
	for i, want := range wantOrder {
		if ranked[i].ItemID != want {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].ItemID, want)
		}
	}
}
