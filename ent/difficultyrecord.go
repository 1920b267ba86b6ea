// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rkoval/brightpath/ent/difficultyrecord"
)

// DifficultyRecord is the model entity for the DifficultyRecord schema.
type DifficultyRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// 1 - success_rate/100; higher is harder
	Difficulty float64 `json:"difficulty,omitempty"`
	// TotalAttempts holds the value of the "total_attempts" field.
	TotalAttempts int `json:"total_attempts,omitempty"`
	// SuccessRate holds the value of the "success_rate" field.
	SuccessRate  int `json:"success_rate,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DifficultyRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case difficultyrecord.FieldDifficulty:
			values[i] = new(sql.NullFloat64)
		case difficultyrecord.FieldID, difficultyrecord.FieldTotalAttempts, difficultyrecord.FieldSuccessRate:
			values[i] = new(sql.NullInt64)
		case difficultyrecord.FieldItemID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DifficultyRecord fields.
func (_m *DifficultyRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case difficultyrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case difficultyrecord.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case difficultyrecord.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.Float64
			}
		case difficultyrecord.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				_m.TotalAttempts = int(value.Int64)
			}
		case difficultyrecord.FieldSuccessRate:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field success_rate", values[i])
			} else if value.Valid {
				_m.SuccessRate = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DifficultyRecord.
// This includes values selected through modifiers, order, etc.
func (_m *DifficultyRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DifficultyRecord.
// Note that you need to call DifficultyRecord.Unwrap() before calling this method if this DifficultyRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DifficultyRecord) Update() *DifficultyRecordUpdateOne {
	return NewDifficultyRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DifficultyRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DifficultyRecord) Unwrap() *DifficultyRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DifficultyRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DifficultyRecord) String() string {
	var builder strings.Builder
	builder.WriteString("DifficultyRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("success_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessRate))
	builder.WriteByte(')')
	return builder.String()
}

// DifficultyRecords is a parsable slice of DifficultyRecord.
type DifficultyRecords []*DifficultyRecord
