// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkline/tutora/ent/predicate"
	"github.com/mkline/tutora/ent/sentimentevent"
)

// SentimentEventUpdate is the builder for updating SentimentEvent entities.
type SentimentEventUpdate struct {
	config
	hooks    []Hook
	mutation *SentimentEventMutation
}

// Where appends a list predicates to the SentimentEventUpdate builder.
func (_u *SentimentEventUpdate) Where(ps ...predicate.SentimentEvent) *SentimentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SentimentEventUpdate) SetSessionID(v string) *SentimentEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SentimentEventUpdate) SetNillableSessionID(v *string) *SentimentEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SentimentEventUpdate) SetTopic(v string) *SentimentEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SentimentEventUpdate) SetNillableTopic(v *string) *SentimentEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSegmentIndex sets the "segment_index" field.
func (_u *SentimentEventUpdate) SetSegmentIndex(v int) *SentimentEventUpdate {
	_u.mutation.ResetSegmentIndex()
	_u.mutation.SetSegmentIndex(v)
	return _u
}

// SetNillableSegmentIndex sets the "segment_index" field if the given value is not nil.
func (_u *SentimentEventUpdate) SetNillableSegmentIndex(v *int) *SentimentEventUpdate {
	if v != nil {
		_u.SetSegmentIndex(*v)
	}
	return _u
}

// AddSegmentIndex adds value to the "segment_index" field.
func (_u *SentimentEventUpdate) AddSegmentIndex(v int) *SentimentEventUpdate {
	_u.mutation.AddSegmentIndex(v)
	return _u
}

// SetConfusion sets the "confusion" field.
func (_u *SentimentEventUpdate) SetConfusion(v float64) *SentimentEventUpdate {
	_u.mutation.ResetConfusion()
	_u.mutation.SetConfusion(v)
	return _u
}

// SetNillableConfusion sets the "confusion" field if the given value is not nil.
func (_u *SentimentEventUpdate) SetNillableConfusion(v *float64) *SentimentEventUpdate {
	if v != nil {
		_u.SetConfusion(*v)
	}
	return _u
}

// AddConfusion adds value to the "confusion" field.
func (_u *SentimentEventUpdate) AddConfusion(v float64) *SentimentEventUpdate {
	_u.mutation.AddConfusion(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SentimentEventUpdate) SetConfidence(v float64) *SentimentEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SentimentEventUpdate) SetNillableConfidence(v *float64) *SentimentEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SentimentEventUpdate) AddConfidence(v float64) *SentimentEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEngagement sets the "engagement" field.
func (_u *SentimentEventUpdate) SetEngagement(v float64) *SentimentEventUpdate {
	_u.mutation.ResetEngagement()
	_u.mutation.SetEngagement(v)
	return _u
}

// SetNillableEngagement sets the "engagement" field if the given value is not nil.
func (_u *SentimentEventUpdate) SetNillableEngagement(v *float64) *SentimentEventUpdate {
	if v != nil {
		_u.SetEngagement(*v)
	}
	return _u
}

// AddEngagement adds value to the "engagement" field.
func (_u *SentimentEventUpdate) AddEngagement(v float64) *SentimentEventUpdate {
	_u.mutation.AddEngagement(v)
	return _u
}

// SetUnderstanding sets the "understanding" field.
func (_u *SentimentEventUpdate) SetUnderstanding(v string) *SentimentEventUpdate {
	_u.mutation.SetUnderstanding(v)
	return _u
}

// SetNillableUnderstanding sets the "understanding" field if the given value is not nil.
func (_u *SentimentEventUpdate) SetNillableUnderstanding(v *string) *SentimentEventUpdate {
	if v != nil {
		_u.SetUnderstanding(*v)
	}
	return _u
}

// SetSuggestion sets the "suggestion" field.
func (_u *SentimentEventUpdate) SetSuggestion(v string) *SentimentEventUpdate {
	_u.mutation.SetSuggestion(v)
	return _u
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_u *SentimentEventUpdate) SetNillableSuggestion(v *string) *SentimentEventUpdate {
	if v != nil {
		_u.SetSuggestion(*v)
	}
	return _u
}

// Mutation returns the SentimentEventMutation object of the builder.
func (_u *SentimentEventUpdate) Mutation() *SentimentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SentimentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SentimentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SentimentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SentimentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SentimentEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sentimentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SentimentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := sentimentevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SentimentEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *SentimentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sentimentevent.Table, sentimentevent.Columns, sqlgraph.NewFieldSpec(sentimentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sentimentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sentimentevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.SegmentIndex(); ok {
		_spec.SetField(sentimentevent.FieldSegmentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSegmentIndex(); ok {
		_spec.AddField(sentimentevent.FieldSegmentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confusion(); ok {
		_spec.SetField(sentimentevent.FieldConfusion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfusion(); ok {
		_spec.AddField(sentimentevent.FieldConfusion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(sentimentevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(sentimentevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Engagement(); ok {
		_spec.SetField(sentimentevent.FieldEngagement, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagement(); ok {
		_spec.AddField(sentimentevent.FieldEngagement, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Understanding(); ok {
		_spec.SetField(sentimentevent.FieldUnderstanding, field.TypeString, value)
	}
	if value, ok := _u.mutation.Suggestion(); ok {
		_spec.SetField(sentimentevent.FieldSuggestion, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sentimentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SentimentEventUpdateOne is the builder for updating a single SentimentEvent entity.
type SentimentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SentimentEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SentimentEventUpdateOne) SetSessionID(v string) *SentimentEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SentimentEventUpdateOne) SetNillableSessionID(v *string) *SentimentEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SentimentEventUpdateOne) SetTopic(v string) *SentimentEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SentimentEventUpdateOne) SetNillableTopic(v *string) *SentimentEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSegmentIndex sets the "segment_index" field.
func (_u *SentimentEventUpdateOne) SetSegmentIndex(v int) *SentimentEventUpdateOne {
	_u.mutation.ResetSegmentIndex()
	_u.mutation.SetSegmentIndex(v)
	return _u
}

// SetNillableSegmentIndex sets the "segment_index" field if the given value is not nil.
func (_u *SentimentEventUpdateOne) SetNillableSegmentIndex(v *int) *SentimentEventUpdateOne {
	if v != nil {
		_u.SetSegmentIndex(*v)
	}
	return _u
}

// AddSegmentIndex adds value to the "segment_index" field.
func (_u *SentimentEventUpdateOne) AddSegmentIndex(v int) *SentimentEventUpdateOne {
	_u.mutation.AddSegmentIndex(v)
	return _u
}

// SetConfusion sets the "confusion" field.
func (_u *SentimentEventUpdateOne) SetConfusion(v float64) *SentimentEventUpdateOne {
	_u.mutation.ResetConfusion()
	_u.mutation.SetConfusion(v)
	return _u
}

// SetNillableConfusion sets the "confusion" field if the given value is not nil.
func (_u *SentimentEventUpdateOne) SetNillableConfusion(v *float64) *SentimentEventUpdateOne {
	if v != nil {
		_u.SetConfusion(*v)
	}
	return _u
}

// AddConfusion adds value to the "confusion" field.
func (_u *SentimentEventUpdateOne) AddConfusion(v float64) *SentimentEventUpdateOne {
	_u.mutation.AddConfusion(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SentimentEventUpdateOne) SetConfidence(v float64) *SentimentEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SentimentEventUpdateOne) SetNillableConfidence(v *float64) *SentimentEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SentimentEventUpdateOne) AddConfidence(v float64) *SentimentEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEngagement sets the "engagement" field.
func (_u *SentimentEventUpdateOne) SetEngagement(v float64) *SentimentEventUpdateOne {
	_u.mutation.ResetEngagement()
	_u.mutation.SetEngagement(v)
	return _u
}

// SetNillableEngagement sets the "engagement" field if the given value is not nil.
func (_u *SentimentEventUpdateOne) SetNillableEngagement(v *float64) *SentimentEventUpdateOne {
	if v != nil {
		_u.SetEngagement(*v)
	}
	return _u
}

// AddEngagement adds value to the "engagement" field.
func (_u *SentimentEventUpdateOne) AddEngagement(v float64) *SentimentEventUpdateOne {
	_u.mutation.AddEngagement(v)
	return _u
}

// SetUnderstanding sets the "understanding" field.
func (_u *SentimentEventUpdateOne) SetUnderstanding(v string) *SentimentEventUpdateOne {
	_u.mutation.SetUnderstanding(v)
	return _u
}

// SetNillableUnderstanding sets the "understanding" field if the given value is not nil.
func (_u *SentimentEventUpdateOne) SetNillableUnderstanding(v *string) *SentimentEventUpdateOne {
	if v != nil {
		_u.SetUnderstanding(*v)
	}
	return _u
}

// SetSuggestion sets the "suggestion" field.
func (_u *SentimentEventUpdateOne) SetSuggestion(v string) *SentimentEventUpdateOne {
	_u.mutation.SetSuggestion(v)
	return _u
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_u *SentimentEventUpdateOne) SetNillableSuggestion(v *string) *SentimentEventUpdateOne {
	if v != nil {
		_u.SetSuggestion(*v)
	}
	return _u
}

// Mutation returns the SentimentEventMutation object of the builder.
func (_u *SentimentEventUpdateOne) Mutation() *SentimentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SentimentEventUpdate builder.
func (_u *SentimentEventUpdateOne) Where(ps ...predicate.SentimentEvent) *SentimentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SentimentEventUpdateOne) Select(field string, fields ...string) *SentimentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SentimentEvent entity.
func (_u *SentimentEventUpdateOne) Save(ctx context.Context) (*SentimentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SentimentEventUpdateOne) SaveX(ctx context.Context) *SentimentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SentimentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SentimentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SentimentEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sentimentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SentimentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := sentimentevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SentimentEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *SentimentEventUpdateOne) sqlSave(ctx context.Context) (_node *SentimentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sentimentevent.Table, sentimentevent.Columns, sqlgraph.NewFieldSpec(sentimentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SentimentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sentimentevent.FieldID)
		for _, f := range fields {
			if !sentimentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sentimentevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sentimentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sentimentevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.SegmentIndex(); ok {
		_spec.SetField(sentimentevent.FieldSegmentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSegmentIndex(); ok {
		_spec.AddField(sentimentevent.FieldSegmentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confusion(); ok {
		_spec.SetField(sentimentevent.FieldConfusion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfusion(); ok {
		_spec.AddField(sentimentevent.FieldConfusion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(sentimentevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(sentimentevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Engagement(); ok {
		_spec.SetField(sentimentevent.FieldEngagement, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagement(); ok {
		_spec.AddField(sentimentevent.FieldEngagement, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Understanding(); ok {
		_spec.SetField(sentimentevent.FieldUnderstanding, field.TypeString, value)
	}
	if value, ok := _u.mutation.Suggestion(); ok {
		_spec.SetField(sentimentevent.FieldSuggestion, field.TypeString, value)
	}
	_node = &SentimentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sentimentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
