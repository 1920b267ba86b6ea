// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rkoval/brightpath/ent/streakstate"
)

// StreakState is the model entity for the StreakState schema.
type StreakState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// CurrentStreak holds the value of the "current_streak" field.
	CurrentStreak int `json:"current_streak,omitempty"`
	// Invariant: longest_streak >= current_streak
	LongestStreak int `json:"longest_streak,omitempty"`
	// LastActivityAt holds the value of the "last_activity_at" field.
	LastActivityAt time.Time `json:"last_activity_at,omitempty"`
	// StreakStartedAt holds the value of the "streak_started_at" field.
	StreakStartedAt time.Time `json:"streak_started_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StreakState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case streakstate.FieldID, streakstate.FieldCurrentStreak, streakstate.FieldLongestStreak:
			values[i] = new(sql.NullInt64)
		case streakstate.FieldLearnerID:
			values[i] = new(sql.NullString)
		case streakstate.FieldLastActivityAt, streakstate.FieldStreakStartedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StreakState fields.
func (_m *StreakState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case streakstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case streakstate.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case streakstate.FieldCurrentStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_streak", values[i])
			} else if value.Valid {
				_m.CurrentStreak = int(value.Int64)
			}
		case streakstate.FieldLongestStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field longest_streak", values[i])
			} else if value.Valid {
				_m.LongestStreak = int(value.Int64)
			}
		case streakstate.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				_m.LastActivityAt = value.Time
			}
		case streakstate.FieldStreakStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field streak_started_at", values[i])
			} else if value.Valid {
				_m.StreakStartedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StreakState.
// This includes values selected through modifiers, order, etc.
func (_m *StreakState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StreakState.
// Note that you need to call StreakState.Unwrap() before calling this method if this StreakState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StreakState) Update() *StreakStateUpdateOne {
	return NewStreakStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StreakState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StreakState) Unwrap() *StreakState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StreakState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StreakState) String() string {
	var builder strings.Builder
	builder.WriteString("StreakState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("current_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStreak))
	builder.WriteString(", ")
	builder.WriteString("longest_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.LongestStreak))
	builder.WriteString(", ")
	builder.WriteString("last_activity_at=")
	builder.WriteString(_m.LastActivityAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("streak_started_at=")
	builder.WriteString(_m.StreakStartedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StreakStates is a parsable slice of StreakState.
type StreakStates []*StreakState
