package items

import (
	"context"
	"testing"

	"github.com/rkoval/brightpath/internal/store"
)

// mockItemRepo is an in-memory ItemRepo for tests.
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

func TestImport_ValidCatalog(t *testing.T) {
	repo := &mockItemRepo{}
	svc := NewService(repo)

	catalog := []byte(`{
		"items": [
			{"id": "q-1", "prompt": "What is 6 x 7?", "answer": "42", "level": "level-1"},
			{"prompt": "Name the capital of France", "level": "level-1"}
		]
	}`)

	result, err := svc.Import(context.Background(), catalog)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("imported = %d, want 2", result.Imported)
	}
	if len(repo.items) != 2 {
		t.Fatalf("stored items = %d, want 2", len(repo.items))
	}
	if repo.items[0].ItemID != "q-1" {
		t.Errorf("item id = %q, want q-1", repo.items[0].ItemID)
	}
	// Missing id must be generated.
	if repo.items[1].ItemID == "" {
		t.Error("expected generated id for item without one")
	}
}

func TestImport_SkipsExistingIDs(t *testing.T) {
	repo := &mockItemRepo{items: []*store.Item{
		{ItemID: "q-1", Prompt: "old prompt", LevelID: "level-1"},
	}}
	svc := NewService(repo)

	catalog := []byte(`{
		"items": [{"id": "q-1", "prompt": "new prompt", "level": "level-1"}]
	}`)

	result, err := svc.Import(context.Background(), catalog)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Imported != 0 || result.Skipped != 1 {
		t.Errorf("result = %+v, want 0 imported, 1 skipped", result)
	}
	if repo.items[0].Prompt != "old prompt" {
		t.Errorf("prompt = %q, want the existing item untouched", repo.items[0].Prompt)
	}
}

func TestImport_RejectsInvalidCatalog(t *testing.T) {
	svc := NewService(&mockItemRepo{})
	ctx := context.Background()

	tests := []struct {
		name    string
		catalog string
	}{
		{"missing prompt", `{"items": [{"level": "level-1"}]}`},
		{"missing level", `{"items": [{"prompt": "p"}]}`},
		{"empty items", `{"items": []}`},
		{"unknown field", `{"items": [{"prompt": "p", "level": "l", "difficulty": 1}]}`},
		{"not json", `{{`},
	}
	for _, tt := range tests {
		if _, err := svc.Import(ctx, []byte(tt.catalog)); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
}
