// Code generated by ent, DO NOT EDIT.

package sentimentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sentimentevent type in the database.
	Label = "sentiment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldSegmentIndex holds the string denoting the segment_index field in the database.
	FieldSegmentIndex = "segment_index"
	// FieldConfusion holds the string denoting the confusion field in the database.
	FieldConfusion = "confusion"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldEngagement holds the string denoting the engagement field in the database.
	FieldEngagement = "engagement"
	// FieldUnderstanding holds the string denoting the understanding field in the database.
	FieldUnderstanding = "understanding"
	// FieldSuggestion holds the string denoting the suggestion field in the database.
	FieldSuggestion = "suggestion"
	// Table holds the table name of the sentimentevent in the database.
	Table = "sentiment_events"
)

// Columns holds all SQL columns for sentimentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldTopic,
	FieldSegmentIndex,
	FieldConfusion,
	FieldConfidence,
	FieldEngagement,
	FieldUnderstanding,
	FieldSuggestion,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultUnderstanding holds the default value on creation for the "understanding" field.
	DefaultUnderstanding string
	// DefaultSuggestion holds the default value on creation for the "suggestion" field.
	DefaultSuggestion string
)

// OrderOption defines the ordering options for the SentimentEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// BySegmentIndex orders the results by the segment_index field.
func BySegmentIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSegmentIndex, opts...).ToFunc()
}

// ByConfusion orders the results by the confusion field.
func ByConfusion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfusion, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByEngagement orders the results by the engagement field.
func ByEngagement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagement, opts...).ToFunc()
}

// ByUnderstanding orders the results by the understanding field.
func ByUnderstanding(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnderstanding, opts...).ToFunc()
}

// BySuggestion orders the results by the suggestion field.
func BySuggestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestion, opts...).ToFunc()
}
