package store

import (
	"context"
	"fmt"

	"github.com/rkoval/brightpath/ent"
	"github.com/rkoval/brightpath/ent/item"
)

// itemRepo implements ItemRepo using the ent client.
type itemRepo struct {
	client *ent.Client
}

func (r *itemRepo) Get(ctx context.Context, itemID string) (*Item, error) {
	row, err := r.client.Item.Query().
		Where(item.ItemID(itemID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return entItem(row), nil
}

func (r *itemRepo) ListByLevel(ctx context.Context, levelID string) ([]*Item, error) {
	// Insertion order; this is the documented tie-break order for
	// difficulty ranking.
	rows, err := r.client.Item.Query().
		Where(item.LevelID(levelID)).
		Order(ent.Asc(item.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	items := make([]*Item, len(rows))
	for i, row := range rows {
		items[i] = entItem(row)
	}
	return items, nil
}

func (r *itemRepo) Create(ctx context.Context, it *Item) error {
	builder := r.client.Item.Create().
		SetItemID(it.ItemID).
		SetPrompt(it.Prompt).
		SetLevelID(it.LevelID)
	if it.Answer != "" {
		builder = builder.SetAnswer(it.Answer)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func entItem(row *ent.Item) *Item {
	return &Item{
		ItemID:  row.ItemID,
		Prompt:  row.Prompt,
		Answer:  row.Answer,
		LevelID: row.LevelID,
	}
}
