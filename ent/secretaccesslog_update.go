// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxisworks/supervisor/ent/predicate"
	"github.com/praxisworks/supervisor/ent/secretaccesslog"
)

// SecretAccessLogUpdate is the builder for updating SecretAccessLog entities.
type SecretAccessLogUpdate struct {
	config
	hooks    []Hook
	mutation *SecretAccessLogMutation
}

// Where appends a list predicates to the SecretAccessLogUpdate builder.
func (_u *SecretAccessLogUpdate) Where(ps ...predicate.SecretAccessLog) *SecretAccessLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the SecretAccessLogMutation object of the builder.
func (_u *SecretAccessLogUpdate) Mutation() *SecretAccessLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SecretAccessLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SecretAccessLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SecretAccessLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SecretAccessLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SecretAccessLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(secretaccesslog.Table, secretaccesslog.Columns, sqlgraph.NewFieldSpec(secretaccesslog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SecretIDCleared() {
		_spec.ClearField(secretaccesslog.FieldSecretID, field.TypeString)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(secretaccesslog.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{secretaccesslog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SecretAccessLogUpdateOne is the builder for updating a single SecretAccessLog entity.
type SecretAccessLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SecretAccessLogMutation
}

// Mutation returns the SecretAccessLogMutation object of the builder.
func (_u *SecretAccessLogUpdateOne) Mutation() *SecretAccessLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the SecretAccessLogUpdate builder.
func (_u *SecretAccessLogUpdateOne) Where(ps ...predicate.SecretAccessLog) *SecretAccessLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SecretAccessLogUpdateOne) Select(field string, fields ...string) *SecretAccessLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SecretAccessLog entity.
func (_u *SecretAccessLogUpdateOne) Save(ctx context.Context) (*SecretAccessLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SecretAccessLogUpdateOne) SaveX(ctx context.Context) *SecretAccessLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SecretAccessLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SecretAccessLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SecretAccessLogUpdateOne) sqlSave(ctx context.Context) (_node *SecretAccessLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(secretaccesslog.Table, secretaccesslog.Columns, sqlgraph.NewFieldSpec(secretaccesslog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SecretAccessLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, secretaccesslog.FieldID)
		for _, f := range fields {
			if !secretaccesslog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != secretaccesslog.FieldID {
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
	if _u.mutation.SecretIDCleared() {
		_spec.ClearField(secretaccesslog.FieldSecretID, field.TypeString)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(secretaccesslog.FieldError, field.TypeString)
	}
	_node = &SecretAccessLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{secretaccesslog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
