package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SentimentEvent records one sentiment reading captured after a lesson
// segment reflection.
type SentimentEvent struct {
	ent.Schema
}

func (SentimentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SentimentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("topic").
			NotEmpty(),
		field.Int("segment_index"),
		field.Float("confusion").
			Comment("0.0 - 1.0"),
		field.Float("confidence").
			Comment("0.0 - 1.0"),
		field.Float("engagement").
			Comment("0.0 - 1.0"),
		field.String("understanding").
			Default("").
			Comment("poor/fair/good/excellent"),
		field.String("suggestion").
			Default(""),
	}
}

func (SentimentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
