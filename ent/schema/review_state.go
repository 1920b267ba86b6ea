package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewState holds the spaced repetition scheduling state for one
// (learner, item) pair. Created on the first review, mutated on every
// subsequent one, deleted only by an explicit learner data reset.
type ReviewState struct {
	ent.Schema
}

func (ReviewState) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("item_id").NotEmpty(),
		field.Int("interval_days").
			Default(1).
			Positive(),
		field.Float("ease_factor").
			Default(2.5).
			Min(1.3).
			Comment("SM-2 ease factor, floored at 1.3"),
		field.Int("repetitions").
			Default(0).
			NonNegative(),
		field.Time("last_reviewed_at"),
		field.Time("next_review_at").
			Comment("Always derived: last_reviewed_at + interval_days"),
	}
}

func (ReviewState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "item_id").Unique(),
		index.Fields("learner_id", "next_review_at"),
	}
}
