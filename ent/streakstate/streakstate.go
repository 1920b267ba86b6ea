// Code generated by ent, DO NOT EDIT.

package streakstate

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the streakstate type in the database.
	Label = "streak_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldCurrentStreak holds the string denoting the current_streak field in the database.
	FieldCurrentStreak = "current_streak"
	// FieldLongestStreak holds the string denoting the longest_streak field in the database.
	FieldLongestStreak = "longest_streak"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// FieldStreakStartedAt holds the string denoting the streak_started_at field in the database.
	FieldStreakStartedAt = "streak_started_at"
	// Table holds the table name of the streakstate in the database.
	Table = "streak_states"
)

// Columns holds all SQL columns for streakstate fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldCurrentStreak,
	FieldLongestStreak,
	FieldLastActivityAt,
	FieldStreakStartedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// CurrentStreakValidator is a validator for the "current_streak" field. It is called by the builders before save.
	CurrentStreakValidator func(int) error
	// LongestStreakValidator is a validator for the "longest_streak" field. It is called by the builders before save.
	LongestStreakValidator func(int) error
)

// OrderOption defines the ordering options for the StreakState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByCurrentStreak orders the results by the current_streak field.
func ByCurrentStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStreak, opts...).ToFunc()
}

// ByLongestStreak orders the results by the longest_streak field.
func ByLongestStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongestStreak, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}

// ByStreakStartedAt orders the results by the streak_started_at field.
func ByStreakStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakStartedAt, opts...).ToFunc()
}
