package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item is a unit of learning content subject to spaced repetition.
// The auto-increment primary key preserves insertion order, which is
// the tie-break order for difficulty ranking.
type Item struct {
	ent.Schema
}

func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty().
			Unique(),
		field.String("prompt").NotEmpty(),
		field.String("answer").Optional(),
		field.String("level_id").NotEmpty(),
	}
}

func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level_id"),
	}
}
