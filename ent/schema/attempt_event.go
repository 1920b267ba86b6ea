package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single pass/fail attempt at an item. The
// difficulty estimator recomputes per-item statistics from the full
// attempt history, so events are append-only and never updated.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").NotEmpty(),
		field.String("learner_id").NotEmpty(),
		field.Bool("correct"),
		field.Int("quality").
			Optional().
			Comment("Self-assessed recall quality 0-5, when the attempt came from a review"),
		field.String("session_id").Optional(),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("learner_id"),
	}
}
