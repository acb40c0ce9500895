// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxisworks/supervisor/ent/predicate"
	"github.com/praxisworks/supervisor/ent/secretaccesslog"
)

// SecretAccessLogDelete is the builder for deleting a SecretAccessLog entity.
type SecretAccessLogDelete struct {
	config
	hooks    []Hook
	mutation *SecretAccessLogMutation
}

// Where appends a list predicates to the SecretAccessLogDelete builder.
func (_d *SecretAccessLogDelete) Where(ps ...predicate.SecretAccessLog) *SecretAccessLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SecretAccessLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SecretAccessLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SecretAccessLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(secretaccesslog.Table, sqlgraph.NewFieldSpec(secretaccesslog.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SecretAccessLogDeleteOne is the builder for deleting a single SecretAccessLog entity.
type SecretAccessLogDeleteOne struct {
	_d *SecretAccessLogDelete
}

// Where appends a list predicates to the SecretAccessLogDelete builder.
func (_d *SecretAccessLogDeleteOne) Where(ps ...predicate.SecretAccessLog) *SecretAccessLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SecretAccessLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{secretaccesslog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SecretAccessLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
