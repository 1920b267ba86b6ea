// Package app wires the brightpath services together. Services are
// constructed once per process and passed by reference; nothing in the
// tree relies on package-level singletons.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rkoval/brightpath/internal/difficulty"
	"github.com/rkoval/brightpath/internal/items"
	"github.com/rkoval/brightpath/internal/review"
	"github.com/rkoval/brightpath/internal/srs"
	"github.com/rkoval/brightpath/internal/store"
	"github.com/rkoval/brightpath/internal/streak"
)

// App bundles the constructed services over one store.
type App struct {
	Review     *review.Service
	Difficulty *difficulty.Service
	Streak     *streak.Tracker
	Items      *items.Service

	attempts store.AttemptRepo
	reviews  store.ReviewRepo
	streaks  store.StreakRepo
}

// New constructs the service graph over an open store.
func New(st *store.Store) *App {
	reviews := st.ReviewRepo()
	attempts := st.AttemptRepo()
	records := st.DifficultyRepo()
	streaks := st.StreakRepo()
	itemRepo := st.ItemRepo()

	return &App{
		Review:     review.NewService(reviews, itemRepo),
		Difficulty: difficulty.NewService(attempts, records, itemRepo),
		Streak:     streak.NewTracker(streaks),
		Items:      items.NewService(itemRepo),
		attempts:   attempts,
		reviews:    reviews,
		streaks:    streaks,
	}
}

// RecordReview runs the full flow for one answered item: append the
// attempt to history, reschedule the item, refresh its difficulty, and
// count the activity toward the learner's streak.
func (a *App) RecordReview(ctx context.Context, learnerID, itemID string, quality int) error {
	if err := a.Review.ScheduleReview(ctx, learnerID, itemID, quality); err != nil {
		return err
	}

	err := a.attempts.Append(ctx, store.AttemptData{
		ItemID:    itemID,
		LearnerID: learnerID,
		Correct:   quality >= srs.PassingQuality,
		Quality:   quality,
		SessionID: uuid.New().String(),
	})
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}

	if err := a.Difficulty.Update(ctx, itemID); err != nil {
		return fmt.Errorf("update difficulty: %w", err)
	}
	if err := a.Streak.Update(ctx, learnerID); err != nil {
		return fmt.Errorf("update streak: %w", err)
	}
	return nil
}

// ResetLearner deletes all of a learner's review and streak state. The
// shared attempt history and item difficulty records stay: they belong
// to the items, not the learner.
func (a *App) ResetLearner(ctx context.Context, learnerID string) (int, error) {
	n, err := a.reviews.DeleteByLearner(ctx, learnerID)
	if err != nil {
		return 0, fmt.Errorf("reset review states: %w", err)
	}
	if err := a.streaks.Delete(ctx, learnerID); err != nil {
		return n, fmt.Errorf("reset streak: %w", err)
	}
	return n, nil
}

// DueForReview lists what the learner should review right now.
func (a *App) DueForReview(ctx context.Context, learnerID string) ([]*review.DueItem, error) {
	return a.Review.DueForReview(ctx, learnerID, time.Now())
}
