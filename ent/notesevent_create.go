// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oslerlabs/osler/ent/notesevent"
)

// NotesEventCreate is the builder for creating a NotesEvent entity.
type NotesEventCreate struct {
	config
	mutation *NotesEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *NotesEventCreate) SetSequence(v int64) *NotesEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *NotesEventCreate) SetTimestamp(v time.Time) *NotesEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *NotesEventCreate) SetNillableTimestamp(v *time.Time) *NotesEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *NotesEventCreate) SetSessionID(v string) *NotesEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *NotesEventCreate) SetTopic(v string) *NotesEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *NotesEventCreate) SetPath(v string) *NotesEventCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetChars sets the "chars" field.
func (_c *NotesEventCreate) SetChars(v int) *NotesEventCreate {
	_c.mutation.SetChars(v)
	return _c
}

// SetNillableChars sets the "chars" field if the given value is not nil.
func (_c *NotesEventCreate) SetNillableChars(v *int) *NotesEventCreate {
	if v != nil {
		_c.SetChars(*v)
	}
	return _c
}

// Mutation returns the NotesEventMutation object of the builder.
func (_c *NotesEventCreate) Mutation() *NotesEventMutation {
	return _c.mutation
}

// Save creates the NotesEvent in the database.
func (_c *NotesEventCreate) Save(ctx context.Context) (*NotesEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotesEventCreate) SaveX(ctx context.Context) *NotesEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotesEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotesEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotesEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := notesevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Chars(); !ok {
		v := notesevent.DefaultChars
		_c.mutation.SetChars(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotesEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "NotesEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "NotesEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "NotesEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := notesevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "NotesEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "NotesEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := notesevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "NotesEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "NotesEvent.path"`)}
	}
	if _, ok := _c.mutation.Chars(); !ok {
		return &ValidationError{Name: "chars", err: errors.New(`ent: missing required field "NotesEvent.chars"`)}
	}
	return nil
}

func (_c *NotesEventCreate) sqlSave(ctx context.Context) (*NotesEvent, error) {
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

func (_c *NotesEventCreate) createSpec() (*NotesEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &NotesEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notesevent.Table, sqlgraph.NewFieldSpec(notesevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(notesevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(notesevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(notesevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(notesevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(notesevent.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.Chars(); ok {
		_spec.SetField(notesevent.FieldChars, field.TypeInt, value)
		_node.Chars = value
	}
	return _node, _spec
}

// NotesEventCreateBulk is the builder for creating many NotesEvent entities in bulk.
type NotesEventCreateBulk struct {
	config
	err      error
	builders []*NotesEventCreate
}

// Save creates the NotesEvent entities in the database.
func (_c *NotesEventCreateBulk) Save(ctx context.Context) ([]*NotesEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotesEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotesEventMutation)
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
func (_c *NotesEventCreateBulk) SaveX(ctx context.Context) []*NotesEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotesEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotesEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
