// Code generated by ent, DO NOT EDIT.

package sentimentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mkline/tutora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldSessionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldTopic, v))
}

// SegmentIndex applies equality check predicate on the "segment_index" field. It's identical to SegmentIndexEQ.
func SegmentIndex(v int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldSegmentIndex, v))
}

// Confusion applies equality check predicate on the "confusion" field. It's identical to ConfusionEQ.
func Confusion(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldConfusion, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldConfidence, v))
}

// Engagement applies equality check predicate on the "engagement" field. It's identical to EngagementEQ.
func Engagement(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldEngagement, v))
}

// Understanding applies equality check predicate on the "understanding" field. It's identical to UnderstandingEQ.
func Understanding(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldUnderstanding, v))
}

// Suggestion applies equality check predicate on the "suggestion" field. It's identical to SuggestionEQ.
func Suggestion(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldSuggestion, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldContainsFold(FieldTopic, v))
}

// SegmentIndexEQ applies the EQ predicate on the "segment_index" field.
func SegmentIndexEQ(v int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldSegmentIndex, v))
}

// SegmentIndexNEQ applies the NEQ predicate on the "segment_index" field.
func SegmentIndexNEQ(v int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNEQ(FieldSegmentIndex, v))
}

// SegmentIndexIn applies the In predicate on the "segment_index" field.
func SegmentIndexIn(vs ...int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldIn(FieldSegmentIndex, vs...))
}

// SegmentIndexNotIn applies the NotIn predicate on the "segment_index" field.
func SegmentIndexNotIn(vs ...int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNotIn(FieldSegmentIndex, vs...))
}

// SegmentIndexGT applies the GT predicate on the "segment_index" field.
func SegmentIndexGT(v int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGT(FieldSegmentIndex, v))
}

// SegmentIndexGTE applies the GTE predicate on the "segment_index" field.
func SegmentIndexGTE(v int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGTE(FieldSegmentIndex, v))
}

// SegmentIndexLT applies the LT predicate on the "segment_index" field.
func SegmentIndexLT(v int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLT(FieldSegmentIndex, v))
}

// SegmentIndexLTE applies the LTE predicate on the "segment_index" field.
func SegmentIndexLTE(v int) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLTE(FieldSegmentIndex, v))
}

// ConfusionEQ applies the EQ predicate on the "confusion" field.
func ConfusionEQ(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldConfusion, v))
}

// ConfusionNEQ applies the NEQ predicate on the "confusion" field.
func ConfusionNEQ(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNEQ(FieldConfusion, v))
}

// ConfusionIn applies the In predicate on the "confusion" field.
func ConfusionIn(vs ...float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldIn(FieldConfusion, vs...))
}

// ConfusionNotIn applies the NotIn predicate on the "confusion" field.
func ConfusionNotIn(vs ...float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNotIn(FieldConfusion, vs...))
}

// ConfusionGT applies the GT predicate on the "confusion" field.
func ConfusionGT(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGT(FieldConfusion, v))
}

// ConfusionGTE applies the GTE predicate on the "confusion" field.
func ConfusionGTE(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGTE(FieldConfusion, v))
}

// ConfusionLT applies the LT predicate on the "confusion" field.
func ConfusionLT(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLT(FieldConfusion, v))
}

// ConfusionLTE applies the LTE predicate on the "confusion" field.
func ConfusionLTE(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLTE(FieldConfusion, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLTE(FieldConfidence, v))
}

// EngagementEQ applies the EQ predicate on the "engagement" field.
func EngagementEQ(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldEngagement, v))
}

// EngagementNEQ applies the NEQ predicate on the "engagement" field.
func EngagementNEQ(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNEQ(FieldEngagement, v))
}

// EngagementIn applies the In predicate on the "engagement" field.
func EngagementIn(vs ...float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldIn(FieldEngagement, vs...))
}

// EngagementNotIn applies the NotIn predicate on the "engagement" field.
func EngagementNotIn(vs ...float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNotIn(FieldEngagement, vs...))
}

// EngagementGT applies the GT predicate on the "engagement" field.
func EngagementGT(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGT(FieldEngagement, v))
}

// EngagementGTE applies the GTE predicate on the "engagement" field.
func EngagementGTE(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGTE(FieldEngagement, v))
}

// EngagementLT applies the LT predicate on the "engagement" field.
func EngagementLT(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLT(FieldEngagement, v))
}

// EngagementLTE applies the LTE predicate on the "engagement" field.
func EngagementLTE(v float64) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLTE(FieldEngagement, v))
}

// UnderstandingEQ applies the EQ predicate on the "understanding" field.
func UnderstandingEQ(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldUnderstanding, v))
}

// UnderstandingNEQ applies the NEQ predicate on the "understanding" field.
func UnderstandingNEQ(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNEQ(FieldUnderstanding, v))
}

// UnderstandingIn applies the In predicate on the "understanding" field.
func UnderstandingIn(vs ...string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldIn(FieldUnderstanding, vs...))
}

// UnderstandingNotIn applies the NotIn predicate on the "understanding" field.
func UnderstandingNotIn(vs ...string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNotIn(FieldUnderstanding, vs...))
}

// UnderstandingGT applies the GT predicate on the "understanding" field.
func UnderstandingGT(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGT(FieldUnderstanding, v))
}

// UnderstandingGTE applies the GTE predicate on the "understanding" field.
func UnderstandingGTE(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGTE(FieldUnderstanding, v))
}

// UnderstandingLT applies the LT predicate on the "understanding" field.
func UnderstandingLT(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLT(FieldUnderstanding, v))
}

// UnderstandingLTE applies the LTE predicate on the "understanding" field.
func UnderstandingLTE(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLTE(FieldUnderstanding, v))
}

// UnderstandingContains applies the Contains predicate on the "understanding" field.
func UnderstandingContains(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldContains(FieldUnderstanding, v))
}

// UnderstandingHasPrefix applies the HasPrefix predicate on the "understanding" field.
func UnderstandingHasPrefix(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldHasPrefix(FieldUnderstanding, v))
}

// UnderstandingHasSuffix applies the HasSuffix predicate on the "understanding" field.
func UnderstandingHasSuffix(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldHasSuffix(FieldUnderstanding, v))
}

// UnderstandingEqualFold applies the EqualFold predicate on the "understanding" field.
func UnderstandingEqualFold(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEqualFold(FieldUnderstanding, v))
}

// UnderstandingContainsFold applies the ContainsFold predicate on the "understanding" field.
func UnderstandingContainsFold(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldContainsFold(FieldUnderstanding, v))
}

// SuggestionEQ applies the EQ predicate on the "suggestion" field.
func SuggestionEQ(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEQ(FieldSuggestion, v))
}

// SuggestionNEQ applies the NEQ predicate on the "suggestion" field.
func SuggestionNEQ(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNEQ(FieldSuggestion, v))
}

// SuggestionIn applies the In predicate on the "suggestion" field.
func SuggestionIn(vs ...string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldIn(FieldSuggestion, vs...))
}

// SuggestionNotIn applies the NotIn predicate on the "suggestion" field.
func SuggestionNotIn(vs ...string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldNotIn(FieldSuggestion, vs...))
}

// SuggestionGT applies the GT predicate on the "suggestion" field.
func SuggestionGT(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGT(FieldSuggestion, v))
}

// SuggestionGTE applies the GTE predicate on the "suggestion" field.
func SuggestionGTE(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldGTE(FieldSuggestion, v))
}

// SuggestionLT applies the LT predicate on the "suggestion" field.
func SuggestionLT(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLT(FieldSuggestion, v))
}

// SuggestionLTE applies the LTE predicate on the "suggestion" field.
func SuggestionLTE(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldLTE(FieldSuggestion, v))
}

// SuggestionContains applies the Contains predicate on the "suggestion" field.
func SuggestionContains(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldContains(FieldSuggestion, v))
}

// SuggestionHasPrefix applies the HasPrefix predicate on the "suggestion" field.
func SuggestionHasPrefix(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldHasPrefix(FieldSuggestion, v))
}

// SuggestionHasSuffix applies the HasSuffix predicate on the "suggestion" field.
func SuggestionHasSuffix(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldHasSuffix(FieldSuggestion, v))
}

// SuggestionEqualFold applies the EqualFold predicate on the "suggestion" field.
func SuggestionEqualFold(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldEqualFold(FieldSuggestion, v))
}

// SuggestionContainsFold applies the ContainsFold predicate on the "suggestion" field.
func SuggestionContainsFold(v string) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.FieldContainsFold(FieldSuggestion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SentimentEvent) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SentimentEvent) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SentimentEvent) predicate.SentimentEvent {
	return predicate.SentimentEvent(sql.NotPredicates(p))
}
