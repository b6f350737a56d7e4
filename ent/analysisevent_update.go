// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptutor/ent/analysisevent"
	"github.com/abhisek/adaptutor/ent/predicate"
)

// AnalysisEventUpdate is the builder for updating AnalysisEvent entities.
type AnalysisEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdate) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnalysisEventUpdate) SetSessionID(v string) *AnalysisEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableSessionID(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLoadLevel sets the "load_level" field.
func (_u *AnalysisEventUpdate) SetLoadLevel(v string) *AnalysisEventUpdate {
	_u.mutation.SetLoadLevel(v)
	return _u
}

// SetNillableLoadLevel sets the "load_level" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableLoadLevel(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetLoadLevel(*v)
	}
	return _u
}

// SetLearningState sets the "learning_state" field.
func (_u *AnalysisEventUpdate) SetLearningState(v string) *AnalysisEventUpdate {
	_u.mutation.SetLearningState(v)
	return _u
}

// SetNillableLearningState sets the "learning_state" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableLearningState(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetLearningState(*v)
	}
	return _u
}

// SetLoadScore sets the "load_score" field.
func (_u *AnalysisEventUpdate) SetLoadScore(v int) *AnalysisEventUpdate {
	_u.mutation.ResetLoadScore()
	_u.mutation.SetLoadScore(v)
	return _u
}

// SetNillableLoadScore sets the "load_score" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableLoadScore(v *int) *AnalysisEventUpdate {
	if v != nil {
		_u.SetLoadScore(*v)
	}
	return _u
}

// AddLoadScore adds value to the "load_score" field.
func (_u *AnalysisEventUpdate) AddLoadScore(v int) *AnalysisEventUpdate {
	_u.mutation.AddLoadScore(v)
	return _u
}

// SetLoadConfidence sets the "load_confidence" field.
func (_u *AnalysisEventUpdate) SetLoadConfidence(v int) *AnalysisEventUpdate {
	_u.mutation.ResetLoadConfidence()
	_u.mutation.SetLoadConfidence(v)
	return _u
}

// SetNillableLoadConfidence sets the "load_confidence" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableLoadConfidence(v *int) *AnalysisEventUpdate {
	if v != nil {
		_u.SetLoadConfidence(*v)
	}
	return _u
}

// AddLoadConfidence adds value to the "load_confidence" field.
func (_u *AnalysisEventUpdate) AddLoadConfidence(v int) *AnalysisEventUpdate {
	_u.mutation.AddLoadConfidence(v)
	return _u
}

// SetDetectedStyle sets the "detected_style" field.
func (_u *AnalysisEventUpdate) SetDetectedStyle(v string) *AnalysisEventUpdate {
	_u.mutation.SetDetectedStyle(v)
	return _u
}

// SetNillableDetectedStyle sets the "detected_style" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableDetectedStyle(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetDetectedStyle(*v)
	}
	return _u
}

// SetStyleConfidence sets the "style_confidence" field.
func (_u *AnalysisEventUpdate) SetStyleConfidence(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetStyleConfidence()
	_u.mutation.SetStyleConfidence(v)
	return _u
}

// SetNillableStyleConfidence sets the "style_confidence" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableStyleConfidence(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetStyleConfidence(*v)
	}
	return _u
}

// AddStyleConfidence adds value to the "style_confidence" field.
func (_u *AnalysisEventUpdate) AddStyleConfidence(v float64) *AnalysisEventUpdate {
	_u.mutation.AddStyleConfidence(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *AnalysisEventUpdate) SetMode(v string) *AnalysisEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableMode(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *AnalysisEventUpdate) SetSubject(v string) *AnalysisEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableSubject(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AnalysisEventUpdate) SetPrompt(v string) *AnalysisEventUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillablePrompt(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AnalysisEventUpdate) SetPayload(v string) *AnalysisEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillablePayload(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdate) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := analysisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(analysisevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LoadLevel(); ok {
		_spec.SetField(analysisevent.FieldLoadLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningState(); ok {
		_spec.SetField(analysisevent.FieldLearningState, field.TypeString, value)
	}
	if value, ok := _u.mutation.LoadScore(); ok {
		_spec.SetField(analysisevent.FieldLoadScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLoadScore(); ok {
		_spec.AddField(analysisevent.FieldLoadScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LoadConfidence(); ok {
		_spec.SetField(analysisevent.FieldLoadConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLoadConfidence(); ok {
		_spec.AddField(analysisevent.FieldLoadConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DetectedStyle(); ok {
		_spec.SetField(analysisevent.FieldDetectedStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.StyleConfidence(); ok {
		_spec.SetField(analysisevent.FieldStyleConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStyleConfidence(); ok {
		_spec.AddField(analysisevent.FieldStyleConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(analysisevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(analysisevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(analysisevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(analysisevent.FieldPayload, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisEventUpdateOne is the builder for updating a single AnalysisEvent entity.
type AnalysisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnalysisEventUpdateOne) SetSessionID(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableSessionID(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLoadLevel sets the "load_level" field.
func (_u *AnalysisEventUpdateOne) SetLoadLevel(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetLoadLevel(v)
	return _u
}

// SetNillableLoadLevel sets the "load_level" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableLoadLevel(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetLoadLevel(*v)
	}
	return _u
}

// SetLearningState sets the "learning_state" field.
func (_u *AnalysisEventUpdateOne) SetLearningState(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetLearningState(v)
	return _u
}

// SetNillableLearningState sets the "learning_state" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableLearningState(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetLearningState(*v)
	}
	return _u
}

// SetLoadScore sets the "load_score" field.
func (_u *AnalysisEventUpdateOne) SetLoadScore(v int) *AnalysisEventUpdateOne {
	_u.mutation.ResetLoadScore()
	_u.mutation.SetLoadScore(v)
	return _u
}

// SetNillableLoadScore sets the "load_score" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableLoadScore(v *int) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetLoadScore(*v)
	}
	return _u
}

// AddLoadScore adds value to the "load_score" field.
func (_u *AnalysisEventUpdateOne) AddLoadScore(v int) *AnalysisEventUpdateOne {
	_u.mutation.AddLoadScore(v)
	return _u
}

// SetLoadConfidence sets the "load_confidence" field.
func (_u *AnalysisEventUpdateOne) SetLoadConfidence(v int) *AnalysisEventUpdateOne {
	_u.mutation.ResetLoadConfidence()
	_u.mutation.SetLoadConfidence(v)
	return _u
}

// SetNillableLoadConfidence sets the "load_confidence" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableLoadConfidence(v *int) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetLoadConfidence(*v)
	}
	return _u
}

// AddLoadConfidence adds value to the "load_confidence" field.
func (_u *AnalysisEventUpdateOne) AddLoadConfidence(v int) *AnalysisEventUpdateOne {
	_u.mutation.AddLoadConfidence(v)
	return _u
}

// SetDetectedStyle sets the "detected_style" field.
func (_u *AnalysisEventUpdateOne) SetDetectedStyle(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetDetectedStyle(v)
	return _u
}

// SetNillableDetectedStyle sets the "detected_style" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableDetectedStyle(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetDetectedStyle(*v)
	}
	return _u
}

// SetStyleConfidence sets the "style_confidence" field.
func (_u *AnalysisEventUpdateOne) SetStyleConfidence(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetStyleConfidence()
	_u.mutation.SetStyleConfidence(v)
	return _u
}

// SetNillableStyleConfidence sets the "style_confidence" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableStyleConfidence(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetStyleConfidence(*v)
	}
	return _u
}

// AddStyleConfidence adds value to the "style_confidence" field.
func (_u *AnalysisEventUpdateOne) AddStyleConfidence(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddStyleConfidence(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *AnalysisEventUpdateOne) SetMode(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableMode(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *AnalysisEventUpdateOne) SetSubject(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableSubject(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AnalysisEventUpdateOne) SetPrompt(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillablePrompt(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AnalysisEventUpdateOne) SetPayload(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillablePayload(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdateOne) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdateOne) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisEventUpdateOne) Select(field string, fields ...string) *AnalysisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisEvent entity.
func (_u *AnalysisEventUpdateOne) Save(ctx context.Context) (*AnalysisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) SaveX(ctx context.Context) *AnalysisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := analysisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisevent.FieldID)
		for _, f := range fields {
			if !analysisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisevent.FieldID {
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
		_spec.SetField(analysisevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LoadLevel(); ok {
		_spec.SetField(analysisevent.FieldLoadLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningState(); ok {
		_spec.SetField(analysisevent.FieldLearningState, field.TypeString, value)
	}
	if value, ok := _u.mutation.LoadScore(); ok {
		_spec.SetField(analysisevent.FieldLoadScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLoadScore(); ok {
		_spec.AddField(analysisevent.FieldLoadScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LoadConfidence(); ok {
		_spec.SetField(analysisevent.FieldLoadConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLoadConfidence(); ok {
		_spec.AddField(analysisevent.FieldLoadConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DetectedStyle(); ok {
		_spec.SetField(analysisevent.FieldDetectedStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.StyleConfidence(); ok {
		_spec.SetField(analysisevent.FieldStyleConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStyleConfidence(); ok {
		_spec.AddField(analysisevent.FieldStyleConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(analysisevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(analysisevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(analysisevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(analysisevent.FieldPayload, field.TypeString, value)
	}
	_node = &AnalysisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
