// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mkline/tutora/ent/sentimentevent"
)

// SentimentEvent is the model entity for the SentimentEvent schema.
type SentimentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// SegmentIndex holds the value of the "segment_index" field.
	SegmentIndex int `json:"segment_index,omitempty"`
	// 0.0 - 1.0
	Confusion float64 `json:"confusion,omitempty"`
	// 0.0 - 1.0
	Confidence float64 `json:"confidence,omitempty"`
	// 0.0 - 1.0
	Engagement float64 `json:"engagement,omitempty"`
	// poor/fair/good/excellent
	Understanding string `json:"understanding,omitempty"`
	// Suggestion holds the value of the "suggestion" field.
	Suggestion   string `json:"suggestion,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SentimentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sentimentevent.FieldConfusion, sentimentevent.FieldConfidence, sentimentevent.FieldEngagement:
			values[i] = new(sql.NullFloat64)
		case sentimentevent.FieldID, sentimentevent.FieldSequence, sentimentevent.FieldSegmentIndex:
			values[i] = new(sql.NullInt64)
		case sentimentevent.FieldSessionID, sentimentevent.FieldTopic, sentimentevent.FieldUnderstanding, sentimentevent.FieldSuggestion:
			values[i] = new(sql.NullString)
		case sentimentevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SentimentEvent fields.
func (_m *SentimentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sentimentevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sentimentevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case sentimentevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case sentimentevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sentimentevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case sentimentevent.FieldSegmentIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field segment_index", values[i])
			} else if value.Valid {
				_m.SegmentIndex = int(value.Int64)
			}
		case sentimentevent.FieldConfusion:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confusion", values[i])
			} else if value.Valid {
				_m.Confusion = value.Float64
			}
		case sentimentevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case sentimentevent.FieldEngagement:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field engagement", values[i])
			} else if value.Valid {
				_m.Engagement = value.Float64
			}
		case sentimentevent.FieldUnderstanding:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field understanding", values[i])
			} else if value.Valid {
				_m.Understanding = value.String
			}
		case sentimentevent.FieldSuggestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suggestion", values[i])
			} else if value.Valid {
				_m.Suggestion = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SentimentEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SentimentEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SentimentEvent.
// Note that you need to call SentimentEvent.Unwrap() before calling this method if this SentimentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SentimentEvent) Update() *SentimentEventUpdateOne {
	return NewSentimentEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SentimentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SentimentEvent) Unwrap() *SentimentEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SentimentEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SentimentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SentimentEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("segment_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.SegmentIndex))
	builder.WriteString(", ")
	builder.WriteString("confusion=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confusion))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("engagement=")
	builder.WriteString(fmt.Sprintf("%v", _m.Engagement))
	builder.WriteString(", ")
	builder.WriteString("understanding=")
	builder.WriteString(_m.Understanding)
	builder.WriteString(", ")
	builder.WriteString("suggestion=")
	builder.WriteString(_m.Suggestion)
	builder.WriteByte(')')
	return builder.String()
}

// SentimentEvents is a parsable slice of SentimentEvent.
type SentimentEvents []*SentimentEvent
