package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DifficultyRecord holds the derived difficulty statistic for one item,
// shared across all learners. Recomputed wholesale from the attempt
// history on every update, never incrementally.
type DifficultyRecord struct {
	ent.Schema
}

func (DifficultyRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty().
			Unique(),
		field.Float("difficulty").
			Min(0).
			Max(1).
			Comment("1 - success_rate/100; higher is harder"),
		field.Int("total_attempts").
			NonNegative(),
		field.Int("success_rate").
			Min(0).
			Max(100),
	}
}

func (DifficultyRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("difficulty"),
	}
}
