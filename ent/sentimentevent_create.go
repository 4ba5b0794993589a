// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkline/tutora/ent/sentimentevent"
)

// SentimentEventCreate is the builder for creating a SentimentEvent entity.
type SentimentEventCreate struct {
	config
	mutation *SentimentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SentimentEventCreate) SetSequence(v int64) *SentimentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SentimentEventCreate) SetTimestamp(v time.Time) *SentimentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SentimentEventCreate) SetNillableTimestamp(v *time.Time) *SentimentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SentimentEventCreate) SetSessionID(v string) *SentimentEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *SentimentEventCreate) SetTopic(v string) *SentimentEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSegmentIndex sets the "segment_index" field.
func (_c *SentimentEventCreate) SetSegmentIndex(v int) *SentimentEventCreate {
	_c.mutation.SetSegmentIndex(v)
	return _c
}

// SetConfusion sets the "confusion" field.
func (_c *SentimentEventCreate) SetConfusion(v float64) *SentimentEventCreate {
	_c.mutation.SetConfusion(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *SentimentEventCreate) SetConfidence(v float64) *SentimentEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetEngagement sets the "engagement" field.
func (_c *SentimentEventCreate) SetEngagement(v float64) *SentimentEventCreate {
	_c.mutation.SetEngagement(v)
	return _c
}

// SetUnderstanding sets the "understanding" field.
func (_c *SentimentEventCreate) SetUnderstanding(v string) *SentimentEventCreate {
	_c.mutation.SetUnderstanding(v)
	return _c
}

// SetNillableUnderstanding sets the "understanding" field if the given value is not nil.
func (_c *SentimentEventCreate) SetNillableUnderstanding(v *string) *SentimentEventCreate {
	if v != nil {
		_c.SetUnderstanding(*v)
	}
	return _c
}

// SetSuggestion sets the "suggestion" field.
func (_c *SentimentEventCreate) SetSuggestion(v string) *SentimentEventCreate {
	_c.mutation.SetSuggestion(v)
	return _c
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_c *SentimentEventCreate) SetNillableSuggestion(v *string) *SentimentEventCreate {
	if v != nil {
		_c.SetSuggestion(*v)
	}
	return _c
}

// Mutation returns the SentimentEventMutation object of the builder.
func (_c *SentimentEventCreate) Mutation() *SentimentEventMutation {
	return _c.mutation
}

// Save creates the SentimentEvent in the database.
func (_c *SentimentEventCreate) Save(ctx context.Context) (*SentimentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SentimentEventCreate) SaveX(ctx context.Context) *SentimentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SentimentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SentimentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SentimentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sentimentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Understanding(); !ok {
		v := sentimentevent.DefaultUnderstanding
		_c.mutation.SetUnderstanding(v)
	}
	if _, ok := _c.mutation.Suggestion(); !ok {
		v := sentimentevent.DefaultSuggestion
		_c.mutation.SetSuggestion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SentimentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SentimentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SentimentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SentimentEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sentimentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SentimentEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "SentimentEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := sentimentevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SentimentEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SegmentIndex(); !ok {
		return &ValidationError{Name: "segment_index", err: errors.New(`ent: missing required field "SentimentEvent.segment_index"`)}
	}
	if _, ok := _c.mutation.Confusion(); !ok {
		return &ValidationError{Name: "confusion", err: errors.New(`ent: missing required field "SentimentEvent.confusion"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "SentimentEvent.confidence"`)}
	}
	if _, ok := _c.mutation.Engagement(); !ok {
		return &ValidationError{Name: "engagement", err: errors.New(`ent: missing required field "SentimentEvent.engagement"`)}
	}
	if _, ok := _c.mutation.Understanding(); !ok {
		return &ValidationError{Name: "understanding", err: errors.New(`ent: missing required field "SentimentEvent.understanding"`)}
	}
	if _, ok := _c.mutation.Suggestion(); !ok {
		return &ValidationError{Name: "suggestion", err: errors.New(`ent: missing required field "SentimentEvent.suggestion"`)}
	}
	return nil
}

func (_c *SentimentEventCreate) sqlSave(ctx context.Context) (*SentimentEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SentimentEventCreate) createSpec() (*SentimentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SentimentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sentimentevent.Table, sqlgraph.NewFieldSpec(sentimentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(sentimentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sentimentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sentimentevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(sentimentevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.SegmentIndex(); ok {
		_spec.SetField(sentimentevent.FieldSegmentIndex, field.TypeInt, value)
		_node.SegmentIndex = value
	}
	if value, ok := _c.mutation.Confusion(); ok {
		_spec.SetField(sentimentevent.FieldConfusion, field.TypeFloat64, value)
		_node.Confusion = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(sentimentevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Engagement(); ok {
		_spec.SetField(sentimentevent.FieldEngagement, field.TypeFloat64, value)
		_node.Engagement = value
	}
	if value, ok := _c.mutation.Understanding(); ok {
		_spec.SetField(sentimentevent.FieldUnderstanding, field.TypeString, value)
		_node.Understanding = value
	}
	if value, ok := _c.mutation.Suggestion(); ok {
		_spec.SetField(sentimentevent.FieldSuggestion, field.TypeString, value)
		_node.Suggestion = value
	}
	return _node, _spec
}

// SentimentEventCreateBulk is the builder for creating many SentimentEvent entities in bulk.
type SentimentEventCreateBulk struct {
	config
	err      error
	builders []*SentimentEventCreate
}

// Save creates the SentimentEvent entities in the database.
func (_c *SentimentEventCreateBulk) Save(ctx context.Context) ([]*SentimentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SentimentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SentimentEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SentimentEventCreateBulk) SaveX(ctx context.Context) []*SentimentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SentimentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SentimentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
