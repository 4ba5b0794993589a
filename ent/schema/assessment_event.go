package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records one answered assessment question.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("topic").
			NotEmpty(),
		field.String("phase").
			NotEmpty().
			Comment("initial or adaptive"),
		field.Int("question_index"),
		field.String("question_text").
			NotEmpty(),
		field.String("concept").
			Default("general"),
		field.String("chosen_option"),
		field.String("correct_option").
			NotEmpty(),
		field.Bool("correct"),
		field.Int("difficulty").
			Default(0),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
		index.Fields("concept"),
	}
}
