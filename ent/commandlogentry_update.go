// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxisworks/supervisor/ent/commandlogentry"
	"github.com/praxisworks/supervisor/ent/predicate"
)

// CommandLogEntryUpdate is the builder for updating CommandLogEntry entities.
type CommandLogEntryUpdate struct {
	config
	hooks    []Hook
	mutation *CommandLogEntryMutation
}

// Where appends a list predicates to the CommandLogEntryUpdate builder.
func (_u *CommandLogEntryUpdate) Where(ps ...predicate.CommandLogEntry) *CommandLogEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CommandLogEntryMutation object of the builder.
func (_u *CommandLogEntryUpdate) Mutation() *CommandLogEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommandLogEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommandLogEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommandLogEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommandLogEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CommandLogEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(commandlogentry.Table, commandlogentry.Columns, sqlgraph.NewFieldSpec(commandlogentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(commandlogentry.FieldToolName, field.TypeString)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(commandlogentry.FieldParameters, field.TypeJSON)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(commandlogentry.FieldResult, field.TypeJSON)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(commandlogentry.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.ExecutionTimeMsCleared() {
		_spec.ClearField(commandlogentry.FieldExecutionTimeMs, field.TypeInt64)
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(commandlogentry.FieldTags, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commandlogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommandLogEntryUpdateOne is the builder for updating a single CommandLogEntry entity.
type CommandLogEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommandLogEntryMutation
}

// Mutation returns the CommandLogEntryMutation object of the builder.
func (_u *CommandLogEntryUpdateOne) Mutation() *CommandLogEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the CommandLogEntryUpdate builder.
func (_u *CommandLogEntryUpdateOne) Where(ps ...predicate.CommandLogEntry) *CommandLogEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommandLogEntryUpdateOne) Select(field string, fields ...string) *CommandLogEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CommandLogEntry entity.
func (_u *CommandLogEntryUpdateOne) Save(ctx context.Context) (*CommandLogEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommandLogEntryUpdateOne) SaveX(ctx context.Context) *CommandLogEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommandLogEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommandLogEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CommandLogEntryUpdateOne) sqlSave(ctx context.Context) (_node *CommandLogEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(commandlogentry.Table, commandlogentry.Columns, sqlgraph.NewFieldSpec(commandlogentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CommandLogEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commandlogentry.FieldID)
		for _, f := range fields {
			if !commandlogentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != commandlogentry.FieldID {
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
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(commandlogentry.FieldToolName, field.TypeString)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(commandlogentry.FieldParameters, field.TypeJSON)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(commandlogentry.FieldResult, field.TypeJSON)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(commandlogentry.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.ExecutionTimeMsCleared() {
		_spec.ClearField(commandlogentry.FieldExecutionTimeMs, field.TypeInt64)
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(commandlogentry.FieldTags, field.TypeJSON)
	}
	_node = &CommandLogEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commandlogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
