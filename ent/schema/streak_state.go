package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StreakState tracks consecutive-day activity for one learner.
// Day boundaries are elapsed-time buckets (24h since last activity),
// not calendar dates.
type StreakState struct {
	ent.Schema
}

func (StreakState) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Unique(),
		field.Int("current_streak").
			NonNegative(),
		field.Int("longest_streak").
			NonNegative().
			Comment("Invariant: longest_streak >= current_streak"),
		field.Time("last_activity_at"),
		field.Time("streak_started_at"),
	}
}

func (StreakState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("current_streak"),
	}
}
