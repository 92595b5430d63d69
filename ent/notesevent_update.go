// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oslerlabs/osler/ent/notesevent"
	"github.com/oslerlabs/osler/ent/predicate"
)

// NotesEventUpdate is the builder for updating NotesEvent entities.
type NotesEventUpdate struct {
	config
	hooks    []Hook
	mutation *NotesEventMutation
}

// Where appends a list predicates to the NotesEventUpdate builder.
func (_u *NotesEventUpdate) Where(ps ...predicate.NotesEvent) *NotesEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *NotesEventUpdate) SetSessionID(v string) *NotesEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *NotesEventUpdate) SetNillableSessionID(v *string) *NotesEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *NotesEventUpdate) SetTopic(v string) *NotesEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *NotesEventUpdate) SetNillableTopic(v *string) *NotesEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *NotesEventUpdate) SetPath(v string) *NotesEventUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *NotesEventUpdate) SetNillablePath(v *string) *NotesEventUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetChars sets the "chars" field.
func (_u *NotesEventUpdate) SetChars(v int) *NotesEventUpdate {
	_u.mutation.ResetChars()
	_u.mutation.SetChars(v)
	return _u
}

// SetNillableChars sets the "chars" field if the given value is not nil.
func (_u *NotesEventUpdate) SetNillableChars(v *int) *NotesEventUpdate {
	if v != nil {
		_u.SetChars(*v)
	}
	return _u
}

// AddChars adds value to the "chars" field.
func (_u *NotesEventUpdate) AddChars(v int) *NotesEventUpdate {
	_u.mutation.AddChars(v)
	return _u
}

// Mutation returns the NotesEventMutation object of the builder.
func (_u *NotesEventUpdate) Mutation() *NotesEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotesEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotesEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotesEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotesEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotesEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := notesevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "NotesEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := notesevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "NotesEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *NotesEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notesevent.Table, notesevent.Columns, sqlgraph.NewFieldSpec(notesevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(notesevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(notesevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(notesevent.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chars(); ok {
		_spec.SetField(notesevent.FieldChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChars(); ok {
		_spec.AddField(notesevent.FieldChars, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notesevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotesEventUpdateOne is the builder for updating a single NotesEvent entity.
type NotesEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotesEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *NotesEventUpdateOne) SetSessionID(v string) *NotesEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *NotesEventUpdateOne) SetNillableSessionID(v *string) *NotesEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *NotesEventUpdateOne) SetTopic(v string) *NotesEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *NotesEventUpdateOne) SetNillableTopic(v *string) *NotesEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *NotesEventUpdateOne) SetPath(v string) *NotesEventUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *NotesEventUpdateOne) SetNillablePath(v *string) *NotesEventUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetChars sets the "chars" field.
func (_u *NotesEventUpdateOne) SetChars(v int) *NotesEventUpdateOne {
	_u.mutation.ResetChars()
	_u.mutation.SetChars(v)
	return _u
}

// SetNillableChars sets the "chars" field if the given value is not nil.
func (_u *NotesEventUpdateOne) SetNillableChars(v *int) *NotesEventUpdateOne {
	if v != nil {
		_u.SetChars(*v)
	}
	return _u
}

// AddChars adds value to the "chars" field.
func (_u *NotesEventUpdateOne) AddChars(v int) *NotesEventUpdateOne {
	_u.mutation.AddChars(v)
	return _u
}

// Mutation returns the NotesEventMutation object of the builder.
func (_u *NotesEventUpdateOne) Mutation() *NotesEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotesEventUpdate builder.
func (_u *NotesEventUpdateOne) Where(ps ...predicate.NotesEvent) *NotesEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotesEventUpdateOne) Select(field string, fields ...string) *NotesEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotesEvent entity.
func (_u *NotesEventUpdateOne) Save(ctx context.Context) (*NotesEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotesEventUpdateOne) SaveX(ctx context.Context) *NotesEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotesEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotesEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotesEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := notesevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "NotesEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := notesevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "NotesEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *NotesEventUpdateOne) sqlSave(ctx context.Context) (_node *NotesEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notesevent.Table, notesevent.Columns, sqlgraph.NewFieldSpec(notesevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NotesEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notesevent.FieldID)
		for _, f := range fields {
			if !notesevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notesevent.FieldID {
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
		_spec.SetField(notesevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(notesevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(notesevent.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chars(); ok {
		_spec.SetField(notesevent.FieldChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChars(); ok {
		_spec.AddField(notesevent.FieldChars, field.TypeInt, value)
	}
	_node = &NotesEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notesevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
