// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "quality", Type: field.TypeInt, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
		},
	}
	// DifficultyRecordsColumns holds the columns for the "difficulty_records" table.
	DifficultyRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "total_attempts", Type: field.TypeInt},
		{Name: "success_rate", Type: field.TypeInt},
	}
	// DifficultyRecordsTable holds the schema information for the "difficulty_records" table.
	DifficultyRecordsTable = &schema.Table{
		Name:       "difficulty_records",
		Columns:    DifficultyRecordsColumns,
		PrimaryKey: []*schema.Column{DifficultyRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "difficultyrecord_difficulty",
				Unique:  false,
				Columns: []*schema.Column{DifficultyRecordsColumns[2]},
			},
		},
	}
	// ItemsColumns holds the columns for the "items" table.
	ItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "prompt", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString, Nullable: true},
		{Name: "level_id", Type: field.TypeString},
	}
	// ItemsTable holds the schema information for the "items" table.
	ItemsTable = &schema.Table{
		Name:       "items",
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "item_level_id",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[4]},
			},
		},
	}
	// ReviewStatesColumns holds the columns for the "review_states" table.
	ReviewStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed_at", Type: field.TypeTime},
		{Name: "next_review_at", Type: field.TypeTime},
	}
	// ReviewStatesTable holds the schema information for the "review_states" table.
	ReviewStatesTable = &schema.Table{
		Name:       "review_states",
		Columns:    ReviewStatesColumns,
		PrimaryKey: []*schema.Column{ReviewStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewstate_learner_id_item_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewStatesColumns[1], ReviewStatesColumns[2]},
			},
			{
				Name:    "reviewstate_learner_id_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewStatesColumns[1], ReviewStatesColumns[7]},
			},
		},
	}
	// StreakStatesColumns holds the columns for the "streak_states" table.
	StreakStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "current_streak", Type: field.TypeInt},
		{Name: "longest_streak", Type: field.TypeInt},
		{Name: "last_activity_at", Type: field.TypeTime},
		{Name: "streak_started_at", Type: field.TypeTime},
	}
	// StreakStatesTable holds the schema information for the "streak_states" table.
	StreakStatesTable = &schema.Table{
		Name:       "streak_states",
		Columns:    StreakStatesColumns,
		PrimaryKey: []*schema.Column{StreakStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "streakstate_current_streak",
				Unique:  false,
				Columns: []*schema.Column{StreakStatesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		DifficultyRecordsTable,
		ItemsTable,
		ReviewStatesTable,
		StreakStatesTable,
	}
)

func init() {
}
