// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meghna/questly/ent/sessionartifact"
)

// SessionArtifactCreate is the builder for creating a SessionArtifact entity.
type SessionArtifactCreate struct {
	config
	mutation *SessionArtifactMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionArtifactCreate) SetSessionID(v string) *SessionArtifactCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetField sets the "field" field.
func (_c *SessionArtifactCreate) SetField(v string) *SessionArtifactCreate {
	_c.mutation.SetFieldField(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *SessionArtifactCreate) SetPayload(v json.RawMessage) *SessionArtifactCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionArtifactCreate) SetUpdatedAt(v time.Time) *SessionArtifactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionArtifactCreate) SetNillableUpdatedAt(v *time.Time) *SessionArtifactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SessionArtifactMutation object of the builder.
func (_c *SessionArtifactCreate) Mutation() *SessionArtifactMutation {
	return _c.mutation
}

// Save creates the SessionArtifact in the database.
func (_c *SessionArtifactCreate) Save(ctx context.Context) (*SessionArtifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionArtifactCreate) SaveX(ctx context.Context) *SessionArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionArtifactCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionartifact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionArtifactCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionArtifact.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionartifact.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionArtifact.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetField(); !ok {
		return &ValidationError{Name: "field", err: errors.New(`ent: missing required field "SessionArtifact.field"`)}
	}
	if v, ok := _c.mutation.GetField(); ok {
		if err := sessionartifact.FieldValidator(v); err != nil {
			return &ValidationError{Name: "field", err: fmt.Errorf(`ent: validator failed for field "SessionArtifact.field": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "SessionArtifact.payload"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionArtifact.updated_at"`)}
	}
	return nil
}

func (_c *SessionArtifactCreate) sqlSave(ctx context.Context) (*SessionArtifact, error) {
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

func (_c *SessionArtifactCreate) createSpec() (*SessionArtifact, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionArtifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionartifact.Table, sqlgraph.NewFieldSpec(sessionartifact.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionartifact.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.GetField(); ok {
		_spec.SetField(sessionartifact.FieldField, field.TypeString, value)
		_node.Field = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(sessionartifact.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionartifact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SessionArtifactCreateBulk is the builder for creating many SessionArtifact entities in bulk.
type SessionArtifactCreateBulk struct {
	config
	err      error
	builders []*SessionArtifactCreate
}

// Save creates the SessionArtifact entities in the database.
func (_c *SessionArtifactCreateBulk) Save(ctx context.Context) ([]*SessionArtifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionArtifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionArtifactMutation)
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
func (_c *SessionArtifactCreateBulk) SaveX(ctx context.Context) []*SessionArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
