package store

import (
	"context"
	"fmt"

	"github.com/rkoval/brightpath/ent"
	"github.com/rkoval/brightpath/ent/attemptevent"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetItemID(data.ItemID).
		SetLearnerID(data.LearnerID).
		SetCorrect(data.Correct).
		SetQuality(data.Quality)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) ListByItem(ctx context.Context, itemID string) ([]*Attempt, error) {
	rows, err := r.client.AttemptEvent.Query().
		Where(attemptevent.ItemID(itemID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	attempts := make([]*Attempt, len(rows))
	for i, row := range rows {
		attempts[i] = &Attempt{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			ItemID:    row.ItemID,
			LearnerID: row.LearnerID,
			Correct:   row.Correct,
			Quality:   row.Quality,
			SessionID: row.SessionID,
		}
	}
	return attempts, nil
}
