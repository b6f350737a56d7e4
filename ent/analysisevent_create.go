// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptutor/ent/analysisevent"
)

// AnalysisEventCreate is the builder for creating a AnalysisEvent entity.
type AnalysisEventCreate struct {
	config
	mutation *AnalysisEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnalysisEventCreate) SetSequence(v int64) *AnalysisEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnalysisEventCreate) SetTimestamp(v time.Time) *AnalysisEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableTimestamp(v *time.Time) *AnalysisEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AnalysisEventCreate) SetSessionID(v string) *AnalysisEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLoadLevel sets the "load_level" field.
func (_c *AnalysisEventCreate) SetLoadLevel(v string) *AnalysisEventCreate {
	_c.mutation.SetLoadLevel(v)
	return _c
}

// SetLearningState sets the "learning_state" field.
func (_c *AnalysisEventCreate) SetLearningState(v string) *AnalysisEventCreate {
	_c.mutation.SetLearningState(v)
	return _c
}

// SetLoadScore sets the "load_score" field.
func (_c *AnalysisEventCreate) SetLoadScore(v int) *AnalysisEventCreate {
	_c.mutation.SetLoadScore(v)
	return _c
}

// SetLoadConfidence sets the "load_confidence" field.
func (_c *AnalysisEventCreate) SetLoadConfidence(v int) *AnalysisEventCreate {
	_c.mutation.SetLoadConfidence(v)
	return _c
}

// SetDetectedStyle sets the "detected_style" field.
func (_c *AnalysisEventCreate) SetDetectedStyle(v string) *AnalysisEventCreate {
	_c.mutation.SetDetectedStyle(v)
	return _c
}

// SetStyleConfidence sets the "style_confidence" field.
func (_c *AnalysisEventCreate) SetStyleConfidence(v float64) *AnalysisEventCreate {
	_c.mutation.SetStyleConfidence(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *AnalysisEventCreate) SetMode(v string) *AnalysisEventCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableMode(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *AnalysisEventCreate) SetSubject(v string) *AnalysisEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableSubject(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *AnalysisEventCreate) SetPrompt(v string) *AnalysisEventCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillablePrompt(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetPrompt(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *AnalysisEventCreate) SetPayload(v string) *AnalysisEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillablePayload(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetPayload(*v)
	}
	return _c
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_c *AnalysisEventCreate) Mutation() *AnalysisEventMutation {
	return _c.mutation
}

// Save creates the AnalysisEvent in the database.
func (_c *AnalysisEventCreate) Save(ctx context.Context) (*AnalysisEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisEventCreate) SaveX(ctx context.Context) *AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := analysisevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Mode(); !ok {
		v := analysisevent.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.Subject(); !ok {
		v := analysisevent.DefaultSubject
		_c.mutation.SetSubject(v)
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		v := analysisevent.DefaultPrompt
		_c.mutation.SetPrompt(v)
	}
	if _, ok := _c.mutation.Payload(); !ok {
		v := analysisevent.DefaultPayload
		_c.mutation.SetPayload(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnalysisEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnalysisEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnalysisEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := analysisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LoadLevel(); !ok {
		return &ValidationError{Name: "load_level", err: errors.New(`ent: missing required field "AnalysisEvent.load_level"`)}
	}
	if _, ok := _c.mutation.LearningState(); !ok {
		return &ValidationError{Name: "learning_state", err: errors.New(`ent: missing required field "AnalysisEvent.learning_state"`)}
	}
	if _, ok := _c.mutation.LoadScore(); !ok {
		return &ValidationError{Name: "load_score", err: errors.New(`ent: missing required field "AnalysisEvent.load_score"`)}
	}
	if _, ok := _c.mutation.LoadConfidence(); !ok {
		return &ValidationError{Name: "load_confidence", err: errors.New(`ent: missing required field "AnalysisEvent.load_confidence"`)}
	}
	if _, ok := _c.mutation.DetectedStyle(); !ok {
		return &ValidationError{Name: "detected_style", err: errors.New(`ent: missing required field "AnalysisEvent.detected_style"`)}
	}
	if _, ok := _c.mutation.StyleConfidence(); !ok {
		return &ValidationError{Name: "style_confidence", err: errors.New(`ent: missing required field "AnalysisEvent.style_confidence"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "AnalysisEvent.mode"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "AnalysisEvent.subject"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "AnalysisEvent.prompt"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "AnalysisEvent.payload"`)}
	}
	return nil
}

func (_c *AnalysisEventCreate) sqlSave(ctx context.Context) (*AnalysisEvent, error) {
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

func (_c *AnalysisEventCreate) createSpec() (*AnalysisEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisevent.Table, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(analysisevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(analysisevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(analysisevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LoadLevel(); ok {
		_spec.SetField(analysisevent.FieldLoadLevel, field.TypeString, value)
		_node.LoadLevel = value
	}
	if value, ok := _c.mutation.LearningState(); ok {
		_spec.SetField(analysisevent.FieldLearningState, field.TypeString, value)
		_node.LearningState = value
	}
	if value, ok := _c.mutation.LoadScore(); ok {
		_spec.SetField(analysisevent.FieldLoadScore, field.TypeInt, value)
		_node.LoadScore = value
	}
	if value, ok := _c.mutation.LoadConfidence(); ok {
		_spec.SetField(analysisevent.FieldLoadConfidence, field.TypeInt, value)
		_node.LoadConfidence = value
	}
	if value, ok := _c.mutation.DetectedStyle(); ok {
		_spec.SetField(analysisevent.FieldDetectedStyle, field.TypeString, value)
		_node.DetectedStyle = value
	}
	if value, ok := _c.mutation.StyleConfidence(); ok {
		_spec.SetField(analysisevent.FieldStyleConfidence, field.TypeFloat64, value)
		_node.StyleConfidence = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(analysisevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(analysisevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(analysisevent.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(analysisevent.FieldPayload, field.TypeString, value)
		_node.Payload = value
	}
	return _node, _spec
}

// AnalysisEventCreateBulk is the builder for creating many AnalysisEvent entities in bulk.
type AnalysisEventCreateBulk struct {
	config
	err      error
	builders []*AnalysisEventCreate
}

// Save creates the AnalysisEvent entities in the database.
func (_c *AnalysisEventCreateBulk) Save(ctx context.Context) ([]*AnalysisEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisEventMutation)
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
func (_c *AnalysisEventCreateBulk) SaveX(ctx context.Context) []*AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
