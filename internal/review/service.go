// Package review orchestrates spaced repetition scheduling: it loads
// prior state, runs the SM-2 calculation, and persists the result.
package review

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rkoval/brightpath/internal/keylock"
	"github.com/rkoval/brightpath/internal/srs"
	"github.com/rkoval/brightpath/internal/store"
)

// ErrInvalidQuality is returned when a quality score is outside [0,5].
var ErrInvalidQuality = errors.New("quality must be between 0 and 5")

// DueItem is a review state joined with its item's prompt.
type DueItem struct {
	store.ReviewState
	Prompt string
}

// Stats aggregates a learner's scheduling state.
type Stats struct {
	TotalReviews   int
	ItemsScheduled int
	AvgEaseFactor  float64
	DueForReview   int
}

// Service is the review orchestrator.
type Service struct {
	reviews store.ReviewRepo
	items   store.ItemRepo
	locks   *keylock.Map
	now     func() time.Time
}

// NewService creates a review orchestrator over the given repos.
func NewService(reviews store.ReviewRepo, items store.ItemRepo) *Service {
	return &Service{
		reviews: reviews,
		items:   items,
		locks:   keylock.New(),
		now:     time.Now,
	}
}

// ScheduleReview records the outcome of a review and reschedules the
// item. Quality outside [0,5] is rejected with ErrInvalidQuality.
//
// Repetitions count reviews, not successes: the count is incremented on
// every call, pass or fail, and is never reset by a failed recall.
func (s *Service) ScheduleReview(ctx context.Context, learnerID, itemID string, quality int) error {
	if !srs.ValidQuality(quality) {
		return fmt.Errorf("%w: got %d", ErrInvalidQuality, quality)
	}

	// Serialize concurrent reviews of the same (learner, item) pair so
	// the read-modify-write below can't lose an update.
	unlock := s.locks.Lock(learnerID + "\x00" + itemID)
	defer unlock()

	state, err := s.reviews.Get(ctx, learnerID, itemID)
	if err != nil {
		return fmt.Errorf("load review state: %w", err)
	}
	if state == nil {
		state = &store.ReviewState{
			LearnerID:    learnerID,
			ItemID:       itemID,
			IntervalDays: srs.DefaultIntervalDays,
			EaseFactor:   srs.DefaultEaseFactor,
			Repetitions:  0,
		}
	}

	interval, ease := srs.Calculate(quality, state.EaseFactor, state.IntervalDays)

	now := s.now()
	state.IntervalDays = interval
	state.EaseFactor = ease
	state.Repetitions++
	state.LastReviewedAt = now
	state.NextReviewAt = now.AddDate(0, 0, interval)

	if err := s.reviews.Upsert(ctx, state); err != nil {
		return fmt.Errorf("save review state: %w", err)
	}
	return nil
}

// DueForReview returns the learner's review states with next review
// strictly before asOf, joined with item prompts. States referencing an
// item that no longer exists are skipped.
func (s *Service) DueForReview(ctx context.Context, learnerID string, asOf time.Time) ([]*DueItem, error) {
	states, err := s.reviews.DueBefore(ctx, learnerID, asOf)
	if err != nil {
		return nil, fmt.Errorf("query due states: %w", err)
	}

	due := make([]*DueItem, 0, len(states))
	for _, state := range states {
		item, err := s.items.Get(ctx, state.ItemID)
		if err != nil {
			return nil, fmt.Errorf("load item %s: %w", state.ItemID, err)
		}
		if item == nil {
			// Dangling reference; the item was removed from the catalog.
			continue
		}
		due = append(due, &DueItem{ReviewState: *state, Prompt: item.Prompt})
	}
	return due, nil
}

// Stats returns aggregate scheduling statistics for a learner. A
// learner with no review states gets all-zero stats, not an error.
func (s *Service) Stats(ctx context.Context, learnerID string) (*Stats, error) {
	states, err := s.reviews.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list review states: %w", err)
	}

	stats := &Stats{ItemsScheduled: len(states)}
	if len(states) == 0 {
		return stats, nil
	}

	now := s.now()
	var easeSum float64
	for _, state := range states {
		stats.TotalReviews += state.Repetitions
		easeSum += state.EaseFactor
		if state.NextReviewAt.Before(now) {
			stats.DueForReview++
		}
	}
	stats.AvgEaseFactor = math.Round(easeSum/float64(len(states))*100) / 100
	return stats, nil
}
