// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/meghna/questly/ent/predicate"
	"github.com/meghna/questly/ent/sessionartifact"
)

// SessionArtifactUpdate is the builder for updating SessionArtifact entities.
type SessionArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *SessionArtifactMutation
}

// Where appends a list predicates to the SessionArtifactUpdate builder.
func (_u *SessionArtifactUpdate) Where(ps ...predicate.SessionArtifact) *SessionArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionArtifactUpdate) SetSessionID(v string) *SessionArtifactUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionArtifactUpdate) SetNillableSessionID(v *string) *SessionArtifactUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetField sets the "field" field.
func (_u *SessionArtifactUpdate) SetField(v string) *SessionArtifactUpdate {
	_u.mutation.SetFieldField(v)
	return _u
}

// SetNillableField sets the "field" field if the given value is not nil.
func (_u *SessionArtifactUpdate) SetNillableField(v *string) *SessionArtifactUpdate {
	if v != nil {
		_u.SetField(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *SessionArtifactUpdate) SetPayload(v json.RawMessage) *SessionArtifactUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *SessionArtifactUpdate) AppendPayload(v json.RawMessage) *SessionArtifactUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionArtifactUpdate) SetUpdatedAt(v time.Time) *SessionArtifactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionArtifactMutation object of the builder.
func (_u *SessionArtifactUpdate) Mutation() *SessionArtifactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionArtifactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionArtifactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionartifact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionArtifactUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionartifact.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionArtifact.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetField(); ok {
		if err := sessionartifact.FieldValidator(v); err != nil {
			return &ValidationError{Name: "field", err: fmt.Errorf(`ent: validator failed for field "SessionArtifact.field": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionartifact.Table, sessionartifact.Columns, sqlgraph.NewFieldSpec(sessionartifact.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionartifact.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetField(); ok {
		_spec.SetField(sessionartifact.FieldField, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(sessionartifact.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionartifact.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionartifact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionArtifactUpdateOne is the builder for updating a single SessionArtifact entity.
type SessionArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionArtifactMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionArtifactUpdateOne) SetSessionID(v string) *SessionArtifactUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionArtifactUpdateOne) SetNillableSessionID(v *string) *SessionArtifactUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetField sets the "field" field.
func (_u *SessionArtifactUpdateOne) SetField(v string) *SessionArtifactUpdateOne {
	_u.mutation.SetFieldField(v)
	return _u
}

// SetNillableField sets the "field" field if the given value is not nil.
func (_u *SessionArtifactUpdateOne) SetNillableField(v *string) *SessionArtifactUpdateOne {
	if v != nil {
		_u.SetField(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *SessionArtifactUpdateOne) SetPayload(v json.RawMessage) *SessionArtifactUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *SessionArtifactUpdateOne) AppendPayload(v json.RawMessage) *SessionArtifactUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionArtifactUpdateOne) SetUpdatedAt(v time.Time) *SessionArtifactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionArtifactMutation object of the builder.
func (_u *SessionArtifactUpdateOne) Mutation() *SessionArtifactMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionArtifactUpdate builder.
func (_u *SessionArtifactUpdateOne) Where(ps ...predicate.SessionArtifact) *SessionArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionArtifactUpdateOne) Select(field string, fields ...string) *SessionArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionArtifact entity.
func (_u *SessionArtifactUpdateOne) Save(ctx context.Context) (*SessionArtifact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionArtifactUpdateOne) SaveX(ctx context.Context) *SessionArtifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionArtifactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionartifact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionArtifactUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionartifact.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionArtifact.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetField(); ok {
		if err := sessionartifact.FieldValidator(v); err != nil {
			return &ValidationError{Name: "field", err: fmt.Errorf(`ent: validator failed for field "SessionArtifact.field": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionArtifactUpdateOne) sqlSave(ctx context.Context) (_node *SessionArtifact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionartifact.Table, sessionartifact.Columns, sqlgraph.NewFieldSpec(sessionartifact.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionArtifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionartifact.FieldID)
		for _, f := range fields {
			if !sessionartifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionartifact.FieldID {
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
		_spec.SetField(sessionartifact.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetField(); ok {
		_spec.SetField(sessionartifact.FieldField, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(sessionartifact.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionartifact.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionartifact.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SessionArtifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
