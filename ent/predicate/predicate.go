// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// DifficultyRecord is the predicate function for difficultyrecord builders.
type DifficultyRecord func(*sql.Selector)

// Item is the predicate function for item builders.
type Item func(*sql.Selector)

// ReviewState is the predicate function for reviewstate builders.
type ReviewState func(*sql.Selector)

// StreakState is the predicate function for streakstate builders.
type StreakState func(*sql.Selector)
