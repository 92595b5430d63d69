// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oslerlabs/osler/ent/assessmentevent"
)

// AssessmentEventCreate is the builder for creating a AssessmentEvent entity.
type AssessmentEventCreate struct {
	config
	mutation *AssessmentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentEventCreate) SetSequence(v int64) *AssessmentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentEventCreate) SetTimestamp(v time.Time) *AssessmentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableTimestamp(v *time.Time) *AssessmentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AssessmentEventCreate) SetSessionID(v string) *AssessmentEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSubtopic sets the "subtopic" field.
func (_c *AssessmentEventCreate) SetSubtopic(v string) *AssessmentEventCreate {
	_c.mutation.SetSubtopic(v)
	return _c
}

// SetQuality sets the "quality" field.
func (_c *AssessmentEventCreate) SetQuality(v string) *AssessmentEventCreate {
	_c.mutation.SetQuality(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AssessmentEventCreate) SetConfidence(v float64) *AssessmentEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *AssessmentEventCreate) SetPhase(v string) *AssessmentEventCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNextAction sets the "next_action" field.
func (_c *AssessmentEventCreate) SetNextAction(v string) *AssessmentEventCreate {
	_c.mutation.SetNextAction(v)
	return _c
}

// SetStruggling sets the "struggling" field.
func (_c *AssessmentEventCreate) SetStruggling(v bool) *AssessmentEventCreate {
	_c.mutation.SetStruggling(v)
	return _c
}

// SetNillableStruggling sets the "struggling" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableStruggling(v *bool) *AssessmentEventCreate {
	if v != nil {
		_c.SetStruggling(*v)
	}
	return _c
}

// SetMissingConcepts sets the "missing_concepts" field.
func (_c *AssessmentEventCreate) SetMissingConcepts(v []string) *AssessmentEventCreate {
	_c.mutation.SetMissingConcepts(v)
	return _c
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_c *AssessmentEventCreate) Mutation() *AssessmentEventMutation {
	return _c.mutation
}

// Save creates the AssessmentEvent in the database.
func (_c *AssessmentEventCreate) Save(ctx context.Context) (*AssessmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentEventCreate) SaveX(ctx context.Context) *AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Struggling(); !ok {
		v := assessmentevent.DefaultStruggling
		_c.mutation.SetStruggling(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AssessmentEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subtopic(); !ok {
		return &ValidationError{Name: "subtopic", err: errors.New(`ent: missing required field "AssessmentEvent.subtopic"`)}
	}
	if v, ok := _c.mutation.Subtopic(); ok {
		if err := assessmentevent.SubtopicValidator(v); err != nil {
			return &ValidationError{Name: "subtopic", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.subtopic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quality(); !ok {
		return &ValidationError{Name: "quality", err: errors.New(`ent: missing required field "AssessmentEvent.quality"`)}
	}
	if v, ok := _c.mutation.Quality(); ok {
		if err := assessmentevent.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.quality": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "AssessmentEvent.confidence"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "AssessmentEvent.phase"`)}
	}
	if _, ok := _c.mutation.NextAction(); !ok {
		return &ValidationError{Name: "next_action", err: errors.New(`ent: missing required field "AssessmentEvent.next_action"`)}
	}
	if _, ok := _c.mutation.Struggling(); !ok {
		return &ValidationError{Name: "struggling", err: errors.New(`ent: missing required field "AssessmentEvent.struggling"`)}
	}
	return nil
}

func (_c *AssessmentEventCreate) sqlSave(ctx context.Context) (*AssessmentEvent, error) {
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

func (_c *AssessmentEventCreate) createSpec() (*AssessmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentevent.Table, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Subtopic(); ok {
		_spec.SetField(assessmentevent.FieldSubtopic, field.TypeString, value)
		_node.Subtopic = value
	}
	if value, ok := _c.mutation.Quality(); ok {
		_spec.SetField(assessmentevent.FieldQuality, field.TypeString, value)
		_node.Quality = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(assessmentevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(assessmentevent.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.NextAction(); ok {
		_spec.SetField(assessmentevent.FieldNextAction, field.TypeString, value)
		_node.NextAction = value
	}
	if value, ok := _c.mutation.Struggling(); ok {
		_spec.SetField(assessmentevent.FieldStruggling, field.TypeBool, value)
		_node.Struggling = value
	}
	if value, ok := _c.mutation.MissingConcepts(); ok {
		_spec.SetField(assessmentevent.FieldMissingConcepts, field.TypeJSON, value)
		_node.MissingConcepts = value
	}
	return _node, _spec
}

// AssessmentEventCreateBulk is the builder for creating many AssessmentEvent entities in bulk.
type AssessmentEventCreateBulk struct {
	config
	err      error
	builders []*AssessmentEventCreate
}

// Save creates the AssessmentEvent entities in the database.
func (_c *AssessmentEventCreateBulk) Save(ctx context.Context) ([]*AssessmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentEventMutation)
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
func (_c *AssessmentEventCreateBulk) SaveX(ctx context.Context) []*AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
