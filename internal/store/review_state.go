package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rkoval/brightpath/ent"
	"github.com/rkoval/brightpath/ent/reviewstate"
)

// reviewRepo implements ReviewRepo using the ent client.
type reviewRepo struct {
	client *ent.Client
}

func (r *reviewRepo) Get(ctx context.Context, learnerID, itemID string) (*ReviewState, error) {
	row, err := r.client.ReviewState.Query().
		Where(
			reviewstate.LearnerID(learnerID),
			reviewstate.ItemID(itemID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query review state: %w", err)
	}
	return entReviewState(row), nil
}

func (r *reviewRepo) Upsert(ctx context.Context, state *ReviewState) error {
	row, err := r.client.ReviewState.Query().
		Where(
			reviewstate.LearnerID(state.LearnerID),
			reviewstate.ItemID(state.ItemID),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query review state: %w", err)
		}
		_, err = r.client.ReviewState.Create().
			SetLearnerID(state.LearnerID).
			SetItemID(state.ItemID).
			SetIntervalDays(state.IntervalDays).
			SetEaseFactor(state.EaseFactor).
			SetRepetitions(state.Repetitions).
			SetLastReviewedAt(state.LastReviewedAt).
			SetNextReviewAt(state.NextReviewAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create review state: %w", err)
		}
		return nil
	}

	_, err = row.Update().
		SetIntervalDays(state.IntervalDays).
		SetEaseFactor(state.EaseFactor).
		SetRepetitions(state.Repetitions).
		SetLastReviewedAt(state.LastReviewedAt).
		SetNextReviewAt(state.NextReviewAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update review state: %w", err)
	}
	return nil
}

func (r *reviewRepo) ListByLearner(ctx context.Context, learnerID string) ([]*ReviewState, error) {
	rows, err := r.client.ReviewState.Query().
		Where(reviewstate.LearnerID(learnerID)).
		Order(ent.Asc(reviewstate.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list review states: %w", err)
	}
	return entReviewStates(rows), nil
}

func (r *reviewRepo) DueBefore(ctx context.Context, learnerID string, asOf time.Time) ([]*ReviewState, error) {
	// Strictly before: a state due exactly at asOf is not yet due.
	rows, err := r.client.ReviewState.Query().
		Where(
			reviewstate.LearnerID(learnerID),
			reviewstate.NextReviewAtLT(asOf),
		).
		Order(ent.Asc(reviewstate.FieldNextReviewAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due review states: %w", err)
	}
	return entReviewStates(rows), nil
}

func (r *reviewRepo) DeleteByLearner(ctx context.Context, learnerID string) (int, error) {
	n, err := r.client.ReviewState.Delete().
		Where(reviewstate.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete review states: %w", err)
	}
	return n, nil
}

func entReviewState(row *ent.ReviewState) *ReviewState {
	return &ReviewState{
		LearnerID:      row.LearnerID,
		ItemID:         row.ItemID,
		IntervalDays:   row.IntervalDays,
		EaseFactor:     row.EaseFactor,
		Repetitions:    row.Repetitions,
		LastReviewedAt: row.LastReviewedAt,
		NextReviewAt:   row.NextReviewAt,
	}
}

func entReviewStates(rows []*ent.ReviewState) []*ReviewState {
	states := make([]*ReviewState, len(rows))
	for i, row := range rows {
		states[i] = entReviewState(row)
	}
	return states
}
