package store

import (
	"context"
	"time"
)

// ReviewState is the scheduling state for one (learner, item) pair.
// NextReviewAt is always derived from LastReviewedAt plus the interval;
// it is never written independently.
type ReviewState struct {
	LearnerID      string
	ItemID         string
	IntervalDays   int
	EaseFactor     float64
	Repetitions    int
	LastReviewedAt time.Time
	NextReviewAt   time.Time
}

// Attempt is one recorded pass/fail outcome for an item.
type Attempt struct {
	Sequence  int64
	Timestamp time.Time
	ItemID    string
	LearnerID string
	Correct   bool
	Quality   int
	SessionID string
}

// AttemptData is the input for appending a new attempt event.
type AttemptData struct {
	ItemID    string
	LearnerID string
	Correct   bool
	Quality   int
	SessionID string
}

// DifficultyRecord is the derived per-item difficulty statistic.
type DifficultyRecord struct {
	ItemID        string
	Difficulty    float64
	TotalAttempts int
	SuccessRate   int
}

// StreakState is the consecutive-activity state for one learner.
type StreakState struct {
	LearnerID       string
	CurrentStreak   int
	LongestStreak   int
	LastActivityAt  time.Time
	StreakStartedAt time.Time
}

// Item is a unit of learning content.
type Item struct {
	ItemID  string
	Prompt  string
	Answer  string
	LevelID string
}

// ReviewRepo persists ReviewState rows keyed by (learner, item).
//
// Lookups for absent rows return (nil, nil) so callers can tell
// "no data yet" apart from a storage failure.
type ReviewRepo interface {
	// Get returns the state for (learnerID, itemID), or nil if none exists.
	Get(ctx context.Context, learnerID, itemID string) (*ReviewState, error)

	// Upsert creates or replaces the state for (state.LearnerID, state.ItemID).
	Upsert(ctx context.Context, state *ReviewState) error

	// ListByLearner returns all states for a learner.
	ListByLearner(ctx context.Context, learnerID string) ([]*ReviewState, error)

	// DueBefore returns states with next_review_at strictly before asOf.
	// A state due exactly at asOf is not included.
	DueBefore(ctx context.Context, learnerID string, asOf time.Time) ([]*ReviewState, error)

	// DeleteByLearner removes all states for a learner and returns the count.
	DeleteByLearner(ctx context.Context, learnerID string) (int, error)
}

// AttemptRepo provides append and history access to attempt events.
type AttemptRepo interface {
	// Append records a new attempt.
	Append(ctx context.Context, data AttemptData) error

	// ListByItem returns every attempt for an item in sequence order.
	ListByItem(ctx context.Context, itemID string) ([]*Attempt, error)
}

// DifficultyRepo persists per-item difficulty records.
type DifficultyRepo interface {
	// Get returns the record for itemID, or nil if none exists.
	Get(ctx context.Context, itemID string) (*DifficultyRecord, error)

	// Upsert creates or replaces the record for record.ItemID.
	Upsert(ctx context.Context, record *DifficultyRecord) error

	// ForItems returns the records for the given item ids, keyed by item id.
	// Items without a record are absent from the map.
	ForItems(ctx context.Context, itemIDs []string) (map[string]*DifficultyRecord, error)
}

// StreakRepo persists per-learner streak state.
type StreakRepo interface {
	// Get returns the streak for learnerID, or nil if none exists.
	Get(ctx context.Context, learnerID string) (*StreakState, error)

	// Upsert creates or replaces the streak for state.LearnerID.
	Upsert(ctx context.Context, state *StreakState) error

	// Top returns up to limit streaks ordered by current streak, longest first.
	Top(ctx context.Context, limit int) ([]*StreakState, error)

	// Delete removes the streak for a learner. Deleting a missing row is a no-op.
	Delete(ctx context.Context, learnerID string) error
}

// ItemRepo provides lookup and catalog access to learning items.
type ItemRepo interface {
	// Get returns the item for itemID, or nil if none exists.
	Get(ctx context.Context, itemID string) (*Item, error)

	// ListByLevel returns all items for a level in insertion order.
	ListByLevel(ctx context.Context, levelID string) ([]*Item, error)

	// Create stores a new item. Item ids are unique across levels.
	Create(ctx context.Context, item *Item) error
}
