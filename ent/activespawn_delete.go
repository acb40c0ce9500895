// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxisworks/supervisor/ent/activespawn"
	"github.com/praxisworks/supervisor/ent/predicate"
)

// ActiveSpawnDelete is the builder for deleting a ActiveSpawn entity.
type ActiveSpawnDelete struct {
	config
	hooks    []Hook
	mutation *ActiveSpawnMutation
}

// Where appends a list predicates to the ActiveSpawnDelete builder.
func (_d *ActiveSpawnDelete) Where(ps ...predicate.ActiveSpawn) *ActiveSpawnDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ActiveSpawnDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ActiveSpawnDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ActiveSpawnDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(activespawn.Table, sqlgraph.NewFieldSpec(activespawn.FieldID, field.TypeString))
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

// ActiveSpawnDeleteOne is the builder for deleting a single ActiveSpawn entity.
type ActiveSpawnDeleteOne struct {
	_d *ActiveSpawnDelete
}

// Where appends a list predicates to the ActiveSpawnDelete builder.
func (_d *ActiveSpawnDeleteOne) Where(ps ...predicate.ActiveSpawn) *ActiveSpawnDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ActiveSpawnDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{activespawn.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ActiveSpawnDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
