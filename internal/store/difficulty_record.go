package store

import (
	"context"
	"fmt"

	"github.com/rkoval/brightpath/ent"
	"github.com/rkoval/brightpath/ent/difficultyrecord"
)

// difficultyRepo implements DifficultyRepo using the ent client.
type difficultyRepo struct {
	client *ent.Client
}

func (r *difficultyRepo) Get(ctx context.Context, itemID string) (*DifficultyRecord, error) {
	row, err := r.client.DifficultyRecord.Query().
		Where(difficultyrecord.ItemID(itemID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query difficulty record: %w", err)
	}
	return entDifficultyRecord(row), nil
}

func (r *difficultyRepo) Upsert(ctx context.Context, record *DifficultyRecord) error {
	row, err := r.client.DifficultyRecord.Query().
		Where(difficultyrecord.ItemID(record.ItemID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query difficulty record: %w", err)
		}
		_, err = r.client.DifficultyRecord.Create().
			SetItemID(record.ItemID).
			SetDifficulty(record.Difficulty).
			SetTotalAttempts(record.TotalAttempts).
			SetSuccessRate(record.SuccessRate).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create difficulty record: %w", err)
		}
		return nil
	}

	_, err = row.Update().
		SetDifficulty(record.Difficulty).
		SetTotalAttempts(record.TotalAttempts).
		SetSuccessRate(record.SuccessRate).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update difficulty record: %w", err)
	}
	return nil
}

func (r *difficultyRepo) ForItems(ctx context.Context, itemIDs []string) (map[string]*DifficultyRecord, error) {
	if len(itemIDs) == 0 {
		return map[string]*DifficultyRecord{}, nil
	}
	rows, err := r.client.DifficultyRecord.Query().
		Where(difficultyrecord.ItemIDIn(itemIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query difficulty records: %w", err)
	}

	records := make(map[string]*DifficultyRecord, len(rows))
	for _, row := range rows {
		records[row.ItemID] = entDifficultyRecord(row)
	}
	return records, nil
}

func entDifficultyRecord(row *ent.DifficultyRecord) *DifficultyRecord {
	return &DifficultyRecord{
		ItemID:        row.ItemID,
		Difficulty:    row.Difficulty,
		TotalAttempts: row.TotalAttempts,
		SuccessRate:   row.SuccessRate,
	}
}
