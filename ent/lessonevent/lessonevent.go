// Code generated by ent, DO NOT EDIT.

package lessonevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonevent type in the database.
	Label = "lesson_event"
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
	// FieldSegmentTitle holds the string denoting the segment_title field in the database.
	FieldSegmentTitle = "segment_title"
	// FieldReflectionSubmitted holds the string denoting the reflection_submitted field in the database.
	FieldReflectionSubmitted = "reflection_submitted"
	// FieldSentimentCaptured holds the string denoting the sentiment_captured field in the database.
	FieldSentimentCaptured = "sentiment_captured"
	// Table holds the table name of the lessonevent in the database.
	Table = "lesson_events"
)

// Columns holds all SQL columns for lessonevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldTopic,
	FieldSegmentIndex,
	FieldSegmentTitle,
	FieldReflectionSubmitted,
	FieldSentimentCaptured,
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
	// SegmentTitleValidator is a validator for the "segment_title" field. It is called by the builders before save.
	SegmentTitleValidator func(string) error
)

// OrderOption defines the ordering options for the LessonEvent queries.
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

// BySegmentTitle orders the results by the segment_title field.
func BySegmentTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSegmentTitle, opts...).ToFunc()
}

// ByReflectionSubmitted orders the results by the reflection_submitted field.
func ByReflectionSubmitted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReflectionSubmitted, opts...).ToFunc()
}

// BySentimentCaptured orders the results by the sentiment_captured field.
func BySentimentCaptured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentimentCaptured, opts...).ToFunc()
}
