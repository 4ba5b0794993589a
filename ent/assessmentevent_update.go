// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkline/tutora/ent/assessmentevent"
	"github.com/mkline/tutora/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdate) SetSessionID(v string) *AssessmentEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSessionID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AssessmentEventUpdate) SetTopic(v string) *AssessmentEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableTopic(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AssessmentEventUpdate) SetPhase(v string) *AssessmentEventUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillablePhase(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AssessmentEventUpdate) SetQuestionIndex(v int) *AssessmentEventUpdate {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableQuestionIndex(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AssessmentEventUpdate) AddQuestionIndex(v int) *AssessmentEventUpdate {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AssessmentEventUpdate) SetQuestionText(v string) *AssessmentEventUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableQuestionText(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *AssessmentEventUpdate) SetConcept(v string) *AssessmentEventUpdate {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableConcept(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetChosenOption sets the "chosen_option" field.
func (_u *AssessmentEventUpdate) SetChosenOption(v string) *AssessmentEventUpdate {
	_u.mutation.SetChosenOption(v)
	return _u
}

// SetNillableChosenOption sets the "chosen_option" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableChosenOption(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetChosenOption(*v)
	}
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *AssessmentEventUpdate) SetCorrectOption(v string) *AssessmentEventUpdate {
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableCorrectOption(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AssessmentEventUpdate) SetCorrect(v bool) *AssessmentEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableCorrect(v *bool) *AssessmentEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AssessmentEventUpdate) SetDifficulty(v int) *AssessmentEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableDifficulty(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AssessmentEventUpdate) AddDifficulty(v int) *AssessmentEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := assessmentevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := assessmentevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := assessmentevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectOption(); ok {
		if err := assessmentevent.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.correct_option": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(assessmentevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(assessmentevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(assessmentevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(assessmentevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(assessmentevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(assessmentevent.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChosenOption(); ok {
		_spec.SetField(assessmentevent.FieldChosenOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(assessmentevent.FieldCorrectOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(assessmentevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(assessmentevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(assessmentevent.FieldDifficulty, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdateOne) SetSessionID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSessionID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AssessmentEventUpdateOne) SetTopic(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableTopic(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AssessmentEventUpdateOne) SetPhase(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillablePhase(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AssessmentEventUpdateOne) SetQuestionIndex(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableQuestionIndex(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AssessmentEventUpdateOne) AddQuestionIndex(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AssessmentEventUpdateOne) SetQuestionText(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableQuestionText(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *AssessmentEventUpdateOne) SetConcept(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableConcept(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetChosenOption sets the "chosen_option" field.
func (_u *AssessmentEventUpdateOne) SetChosenOption(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetChosenOption(v)
	return _u
}

// SetNillableChosenOption sets the "chosen_option" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableChosenOption(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetChosenOption(*v)
	}
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *AssessmentEventUpdateOne) SetCorrectOption(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableCorrectOption(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AssessmentEventUpdateOne) SetCorrect(v bool) *AssessmentEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableCorrect(v *bool) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AssessmentEventUpdateOne) SetDifficulty(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableDifficulty(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AssessmentEventUpdateOne) AddDifficulty(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := assessmentevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := assessmentevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := assessmentevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectOption(); ok {
		if err := assessmentevent.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.correct_option": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
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
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(assessmentevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(assessmentevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(assessmentevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(assessmentevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(assessmentevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(assessmentevent.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChosenOption(); ok {
		_spec.SetField(assessmentevent.FieldChosenOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(assessmentevent.FieldCorrectOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(assessmentevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(assessmentevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(assessmentevent.FieldDifficulty, field.TypeInt, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
