// Package difficulty derives per-item difficulty scores from attempt
// history and orders level content by them.
package difficulty

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rkoval/brightpath/internal/keylock"
	"github.com/rkoval/brightpath/internal/store"
)

// DefaultScore is the difficulty assumed for items with no recorded
// attempts ("medium").
const DefaultScore = 0.5

// RankedItem is an item paired with its difficulty score.
type RankedItem struct {
	store.Item
	Difficulty float64
	Estimated  bool // true when no record existed and DefaultScore was used
}

// Service recomputes and serves item difficulty.
type Service struct {
	attempts store.AttemptRepo
	records  store.DifficultyRepo
	items    store.ItemRepo
	locks    *keylock.Map
}

// NewService creates a difficulty estimator over the given repos.
func NewService(attempts store.AttemptRepo, records store.DifficultyRepo, items store.ItemRepo) *Service {
	return &Service{
		attempts: attempts,
		records:  records,
		items:    items,
		locks:    keylock.New(),
	}
}

// Update recomputes the difficulty record for an item from its full
// attempt history. The recomputation is idempotent: running it twice
// with no new attempts produces an identical record. An item with zero
// attempts is left untouched.
//
// Full-history recomputation costs O(attempts) but stays correct even
// when attempts are retroactively corrected.
func (s *Service) Update(ctx context.Context, itemID string) error {
	unlock := s.locks.Lock(itemID)
	defer unlock()

	attempts, err := s.attempts.ListByItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("load attempts: %w", err)
	}
	if len(attempts) == 0 {
		return nil
	}

	passes := 0
	for _, a := range attempts {
		if a.Correct {
			passes++
		}
	}

	successRate := int(math.Round(100 * float64(passes) / float64(len(attempts))))
	record := &store.DifficultyRecord{
		ItemID:        itemID,
		Difficulty:    1 - float64(successRate)/100,
		TotalAttempts: len(attempts),
		SuccessRate:   successRate,
	}

	if err := s.records.Upsert(ctx, record); err != nil {
		return fmt.Errorf("save difficulty record: %w", err)
	}
	return nil
}

// RankByLevel returns a level's items ordered by difficulty, easiest
// first when ascending. Items without a difficulty record rank at
// DefaultScore. Ties keep the catalog's insertion order (stable sort).
func (s *Service) RankByLevel(ctx context.Context, levelID string, ascending bool) ([]*RankedItem, error) {
	items, err := s.items.ListByLevel(ctx, levelID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ItemID
	}
	records, err := s.records.ForItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load difficulty records: %w", err)
	}

	ranked := make([]*RankedItem, len(items))
	for i, it := range items {
		r := &RankedItem{Item: *it, Difficulty: DefaultScore, Estimated: true}
		if record, ok := records[it.ItemID]; ok {
			r.Difficulty = record.Difficulty
			r.Estimated = false
		}
		ranked[i] = r
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ascending {
			return ranked[i].Difficulty < ranked[j].Difficulty
		}
		return ranked[i].Difficulty > ranked[j].Difficulty
	})
	return ranked, nil
}
