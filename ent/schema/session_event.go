package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// SentimentSummary is the serialized aggregate of a session's readings.
type SentimentSummary struct {
	AvgConfusion  float64 `json:"avg_confusion"`
	AvgConfidence float64 `json:"avg_confidence"`
	AvgEngagement float64 `json:"avg_engagement"`
	ReadingCount  int     `json:"reading_count"`
	Note          string  `json:"note"`
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("topic").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Float("pre_score").
			Default(0).
			Comment("Assessment score out of 10 (on end only)"),
		field.Int("questions_served").
			Default(0).
			Comment("Total assessment questions (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on end only)"),
		field.Int("segments_completed").
			Default(0).
			Comment("Lesson segments traversed (on end only)"),
		field.Bool("completed").
			Default(false).
			Comment("False when the session was abandoned"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
		field.JSON("sentiment_summary", &SentimentSummary{}).
			Optional().
			Comment("Aggregated sentiment (on end only, absent when no readings)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
		index.Fields("action"),
	}
}
