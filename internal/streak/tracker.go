// Package streak tracks consecutive-day learner activity.
//
// Day boundaries are elapsed-time buckets: the gap between two
// activities is floor(elapsed / 24h), not a calendar-date comparison.
// Two activities 23h59m apart count as the same day even when they fall
// on different dates.
package streak

import (
	"context"
	"fmt"
	"time"

	"github.com/rkoval/brightpath/internal/keylock"
	"github.com/rkoval/brightpath/internal/store"
)

// Tracker maintains per-learner streak state.
type Tracker struct {
	streaks store.StreakRepo
	locks   *keylock.Map
	now     func() time.Time
}

// NewTracker creates a streak tracker over the given repo.
func NewTracker(streaks store.StreakRepo) *Tracker {
	return &Tracker{
		streaks: streaks,
		locks:   keylock.New(),
		now:     time.Now,
	}
}

// Update records one qualifying activity event for a learner and
// advances the streak state machine:
//
//	no prior record  -> streak 1, started now
//	same day (0)     -> streak and start unchanged, activity time advances
//	next day (1)     -> streak + 1
//	gap (>= 2 days)  -> streak back to 1, started now
//
// After every branch the longest streak is raised to at least the
// current streak, so it never decreases.
func (t *Tracker) Update(ctx context.Context, learnerID string) error {
	unlock := t.locks.Lock(learnerID)
	defer unlock()

	state, err := t.streaks.Get(ctx, learnerID)
	if err != nil {
		return fmt.Errorf("load streak: %w", err)
	}

	now := t.now()
	if state == nil {
		state = &store.StreakState{
			LearnerID:       learnerID,
			CurrentStreak:   1,
			StreakStartedAt: now,
		}
	} else {
		switch days := int(now.Sub(state.LastActivityAt).Hours() / 24); {
		case days == 0:
			// Same elapsed-time day; only the activity timestamp moves.
		case days == 1:
			state.CurrentStreak++
		default:
			state.CurrentStreak = 1
			state.StreakStartedAt = now
		}
	}
	state.LastActivityAt = now
	if state.CurrentStreak > state.LongestStreak {
		state.LongestStreak = state.CurrentStreak
	}

	if err := t.streaks.Upsert(ctx, state); err != nil {
		return fmt.Errorf("save streak: %w", err)
	}
	return nil
}

// Get returns the learner's streak state, or nil if the learner has
// never been active.
func (t *Tracker) Get(ctx context.Context, learnerID string) (*store.StreakState, error) {
	state, err := t.streaks.Get(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load streak: %w", err)
	}
	return state, nil
}

// Top returns up to limit learners ordered by current streak length.
func (t *Tracker) Top(ctx context.Context, limit int) ([]*store.StreakState, error) {
	states, err := t.streaks.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load top streaks: %w", err)
	}
	return states, nil
}
