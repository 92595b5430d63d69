// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oslerlabs/osler/ent/turnevent"
)

// TurnEventCreate is the builder for creating a TurnEvent entity.
type TurnEventCreate struct {
	config
	mutation *TurnEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TurnEventCreate) SetSequence(v int64) *TurnEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TurnEventCreate) SetTimestamp(v time.Time) *TurnEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableTimestamp(v *time.Time) *TurnEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TurnEventCreate) SetSessionID(v string) *TurnEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSubtopic sets the "subtopic" field.
func (_c *TurnEventCreate) SetSubtopic(v string) *TurnEventCreate {
	_c.mutation.SetSubtopic(v)
	return _c
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableSubtopic(v *string) *TurnEventCreate {
	if v != nil {
		_c.SetSubtopic(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *TurnEventCreate) SetRole(v string) *TurnEventCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *TurnEventCreate) SetContent(v string) *TurnEventCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *TurnEventCreate) SetQuestionType(v string) *TurnEventCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableQuestionType(v *string) *TurnEventCreate {
	if v != nil {
		_c.SetQuestionType(*v)
	}
	return _c
}

// Mutation returns the TurnEventMutation object of the builder.
func (_c *TurnEventCreate) Mutation() *TurnEventMutation {
	return _c.mutation
}

// Save creates the TurnEvent in the database.
func (_c *TurnEventCreate) Save(ctx context.Context) (*TurnEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TurnEventCreate) SaveX(ctx context.Context) *TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TurnEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := turnevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Subtopic(); !ok {
		v := turnevent.DefaultSubtopic
		_c.mutation.SetSubtopic(v)
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		v := turnevent.DefaultQuestionType
		_c.mutation.SetQuestionType(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TurnEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TurnEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TurnEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TurnEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subtopic(); !ok {
		return &ValidationError{Name: "subtopic", err: errors.New(`ent: missing required field "TurnEvent.subtopic"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "TurnEvent.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := turnevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "TurnEvent.content"`)}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "TurnEvent.question_type"`)}
	}
	return nil
}

func (_c *TurnEventCreate) sqlSave(ctx context.Context) (*TurnEvent, error) {
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

func (_c *TurnEventCreate) createSpec() (*TurnEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TurnEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(turnevent.Table, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(turnevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(turnevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Subtopic(); ok {
		_spec.SetField(turnevent.FieldSubtopic, field.TypeString, value)
		_node.Subtopic = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(turnevent.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(turnevent.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(turnevent.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	return _node, _spec
}

// TurnEventCreateBulk is the builder for creating many TurnEvent entities in bulk.
type TurnEventCreateBulk struct {
	config
	err      error
	builders []*TurnEventCreate
}

// Save creates the TurnEvent entities in the database.
func (_c *TurnEventCreateBulk) Save(ctx context.Context) ([]*TurnEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TurnEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TurnEventMutation)
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
func (_c *TurnEventCreateBulk) SaveX(ctx context.Context) []*TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
