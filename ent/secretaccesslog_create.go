// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxisworks/supervisor/ent/secretaccesslog"
)

// SecretAccessLogCreate is the builder for creating a SecretAccessLog entity.
type SecretAccessLogCreate struct {
	config
	mutation *SecretAccessLogMutation
	hooks    []Hook
}

// SetSecretID sets the "secret_id" field.
func (_c *SecretAccessLogCreate) SetSecretID(v string) *SecretAccessLogCreate {
	_c.mutation.SetSecretID(v)
	return _c
}

// SetNillableSecretID sets the "secret_id" field if the given value is not nil.
func (_c *SecretAccessLogCreate) SetNillableSecretID(v *string) *SecretAccessLogCreate {
	if v != nil {
		_c.SetSecretID(*v)
	}
	return _c
}

// SetKeyPath sets the "key_path" field.
func (_c *SecretAccessLogCreate) SetKeyPath(v string) *SecretAccessLogCreate {
	_c.mutation.SetKeyPath(v)
	return _c
}

// SetAccessedBy sets the "accessed_by" field.
func (_c *SecretAccessLogCreate) SetAccessedBy(v string) *SecretAccessLogCreate {
	_c.mutation.SetAccessedBy(v)
	return _c
}

// SetAccessType sets the "access_type" field.
func (_c *SecretAccessLogCreate) SetAccessType(v secretaccesslog.AccessType) *SecretAccessLogCreate {
	_c.mutation.SetAccessType(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *SecretAccessLogCreate) SetSuccess(v bool) *SecretAccessLogCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetError sets the "error" field.
func (_c *SecretAccessLogCreate) SetError(v string) *SecretAccessLogCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *SecretAccessLogCreate) SetNillableError(v *string) *SecretAccessLogCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetAccessedAt sets the "accessed_at" field.
func (_c *SecretAccessLogCreate) SetAccessedAt(v time.Time) *SecretAccessLogCreate {
	_c.mutation.SetAccessedAt(v)
	return _c
}

// SetNillableAccessedAt sets the "accessed_at" field if the given value is not nil.
func (_c *SecretAccessLogCreate) SetNillableAccessedAt(v *time.Time) *SecretAccessLogCreate {
	if v != nil {
		_c.SetAccessedAt(*v)
	}
	return _c
}

// Mutation returns the SecretAccessLogMutation object of the builder.
func (_c *SecretAccessLogCreate) Mutation() *SecretAccessLogMutation {
	return _c.mutation
}

// Save creates the SecretAccessLog in the database.
func (_c *SecretAccessLogCreate) Save(ctx context.Context) (*SecretAccessLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SecretAccessLogCreate) SaveX(ctx context.Context) *SecretAccessLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SecretAccessLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SecretAccessLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SecretAccessLogCreate) defaults() {
	if _, ok := _c.mutation.AccessedAt(); !ok {
		v := secretaccesslog.DefaultAccessedAt()
		_c.mutation.SetAccessedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SecretAccessLogCreate) check() error {
	if _, ok := _c.mutation.KeyPath(); !ok {
		return &ValidationError{Name: "key_path", err: errors.New(`ent: missing required field "SecretAccessLog.key_path"`)}
	}
	if _, ok := _c.mutation.AccessedBy(); !ok {
		return &ValidationError{Name: "accessed_by", err: errors.New(`ent: missing required field "SecretAccessLog.accessed_by"`)}
	}
	if _, ok := _c.mutation.AccessType(); !ok {
		return &ValidationError{Name: "access_type", err: errors.New(`ent: missing required field "SecretAccessLog.access_type"`)}
	}
	if v, ok := _c.mutation.AccessType(); ok {
		if err := secretaccesslog.AccessTypeValidator(v); err != nil {
			return &ValidationError{Name: "access_type", err: fmt.Errorf(`ent: validator failed for field "SecretAccessLog.access_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "SecretAccessLog.success"`)}
	}
	if _, ok := _c.mutation.AccessedAt(); !ok {
		return &ValidationError{Name: "accessed_at", err: errors.New(`ent: missing required field "SecretAccessLog.accessed_at"`)}
	}
	return nil
}

func (_c *SecretAccessLogCreate) sqlSave(ctx context.Context) (*SecretAccessLog, error) {
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

func (_c *SecretAccessLogCreate) createSpec() (*SecretAccessLog, *sqlgraph.CreateSpec) {
	var (
		_node = &SecretAccessLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(secretaccesslog.Table, sqlgraph.NewFieldSpec(secretaccesslog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SecretID(); ok {
		_spec.SetField(secretaccesslog.FieldSecretID, field.TypeString, value)
		_node.SecretID = &value
	}
	if value, ok := _c.mutation.KeyPath(); ok {
		_spec.SetField(secretaccesslog.FieldKeyPath, field.TypeString, value)
		_node.KeyPath = value
	}
	if value, ok := _c.mutation.AccessedBy(); ok {
		_spec.SetField(secretaccesslog.FieldAccessedBy, field.TypeString, value)
		_node.AccessedBy = value
	}
	if value, ok := _c.mutation.AccessType(); ok {
		_spec.SetField(secretaccesslog.FieldAccessType, field.TypeEnum, value)
		_node.AccessType = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(secretaccesslog.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(secretaccesslog.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.AccessedAt(); ok {
		_spec.SetField(secretaccesslog.FieldAccessedAt, field.TypeTime, value)
		_node.AccessedAt = value
	}
	return _node, _spec
}

// SecretAccessLogCreateBulk is the builder for creating many SecretAccessLog entities in bulk.
type SecretAccessLogCreateBulk struct {
	config
	err      error
	builders []*SecretAccessLogCreate
}

// Save creates the SecretAccessLog entities in the database.
func (_c *SecretAccessLogCreateBulk) Save(ctx context.Context) ([]*SecretAccessLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SecretAccessLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SecretAccessLogMutation)
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
func (_c *SecretAccessLogCreateBulk) SaveX(ctx context.Context) []*SecretAccessLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SecretAccessLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SecretAccessLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
