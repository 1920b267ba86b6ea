package store

import (
	"context"
	"fmt"

	"github.com/rkoval/brightpath/ent"
	"github.com/rkoval/brightpath/ent/streakstate"
)

// streakRepo implements StreakRepo using the ent client.
type streakRepo struct {
	client *ent.Client
}

func (r *streakRepo) Get(ctx context.Context, learnerID string) (*StreakState, error) {
	row, err := r.client.StreakState.Query().
		Where(streakstate.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query streak state: %w", err)
	}
	return entStreakState(row), nil
}

func (r *streakRepo) Upsert(ctx context.Context, state *StreakState) error {
	row, err := r.client.StreakState.Query().
		Where(streakstate.LearnerID(state.LearnerID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query streak state: %w", err)
		}
		_, err = r.client.StreakState.Create().
			SetLearnerID(state.LearnerID).
			SetCurrentStreak(state.CurrentStreak).
			SetLongestStreak(state.LongestStreak).
			SetLastActivityAt(state.LastActivityAt).
			SetStreakStartedAt(state.StreakStartedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create streak state: %w", err)
		}
		return nil
	}

	_, err = row.Update().
		SetCurrentStreak(state.CurrentStreak).
		SetLongestStreak(state.LongestStreak).
		SetLastActivityAt(state.LastActivityAt).
		SetStreakStartedAt(state.StreakStartedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update streak state: %w", err)
	}
	return nil
}

func (r *streakRepo) Top(ctx context.Context, limit int) ([]*StreakState, error) {
	rows, err := r.client.StreakState.Query().
		Order(ent.Desc(streakstate.FieldCurrentStreak)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query top streaks: %w", err)
	}

	states := make([]*StreakState, len(rows))
	for i, row := range rows {
		states[i] = entStreakState(row)
	}
	return states, nil
}

func (r *streakRepo) Delete(ctx context.Context, learnerID string) error {
	_, err := r.client.StreakState.Delete().
		Where(streakstate.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete streak state: %w", err)
	}
	return nil
}

func entStreakState(row *ent.StreakState) *StreakState {
	return &StreakState{
		LearnerID:       row.LearnerID,
		CurrentStreak:   row.CurrentStreak,
		LongestStreak:   row.LongestStreak,
		LastActivityAt:  row.LastActivityAt,
		StreakStartedAt: row.StreakStartedAt,
	}
}
