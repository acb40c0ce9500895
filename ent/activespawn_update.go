// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxisworks/supervisor/ent/activespawn"
	"github.com/praxisworks/supervisor/ent/predicate"
)

// ActiveSpawnUpdate is the builder for updating ActiveSpawn entities.
type ActiveSpawnUpdate struct {
	config
	hooks    []Hook
	mutation *ActiveSpawnMutation
}

// Where appends a list predicates to the ActiveSpawnUpdate builder.
func (_u *ActiveSpawnUpdate) Where(ps ...predicate.ActiveSpawn) *ActiveSpawnUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActiveSpawnUpdate) SetStatus(v activespawn.Status) *ActiveSpawnUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActiveSpawnUpdate) SetNillableStatus(v *activespawn.Status) *ActiveSpawnUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *ActiveSpawnUpdate) SetExitCode(v int) *ActiveSpawnUpdate {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *ActiveSpawnUpdate) SetNillableExitCode(v *int) *ActiveSpawnUpdate {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *ActiveSpawnUpdate) AddExitCode(v int) *ActiveSpawnUpdate {
	_u.mutation.AddExitCode(v)
	return _u
}

// ClearExitCode clears the value of the "exit_code" field.
func (_u *ActiveSpawnUpdate) ClearExitCode() *ActiveSpawnUpdate {
	_u.mutation.ClearExitCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ActiveSpawnUpdate) SetErrorMessage(v string) *ActiveSpawnUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ActiveSpawnUpdate) SetNillableErrorMessage(v *string) *ActiveSpawnUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ActiveSpawnUpdate) ClearErrorMessage() *ActiveSpawnUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetHostMachine sets the "host_machine" field.
func (_u *ActiveSpawnUpdate) SetHostMachine(v string) *ActiveSpawnUpdate {
	_u.mutation.SetHostMachine(v)
	return _u
}

// SetNillableHostMachine sets the "host_machine" field if the given value is not nil.
func (_u *ActiveSpawnUpdate) SetNillableHostMachine(v *string) *ActiveSpawnUpdate {
	if v != nil {
		_u.SetHostMachine(*v)
	}
	return _u
}

// ClearHostMachine clears the value of the "host_machine" field.
func (_u *ActiveSpawnUpdate) ClearHostMachine() *ActiveSpawnUpdate {
	_u.mutation.ClearHostMachine()
	return _u
}

// SetDeadlineAt sets the "deadline_at" field.
func (_u *ActiveSpawnUpdate) SetDeadlineAt(v time.Time) *ActiveSpawnUpdate {
	_u.mutation.SetDeadlineAt(v)
	return _u
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_u *ActiveSpawnUpdate) SetNillableDeadlineAt(v *time.Time) *ActiveSpawnUpdate {
	if v != nil {
		_u.SetDeadlineAt(*v)
	}
	return _u
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (_u *ActiveSpawnUpdate) ClearDeadlineAt() *ActiveSpawnUpdate {
	_u.mutation.ClearDeadlineAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *ActiveSpawnUpdate) SetEndedAt(v time.Time) *ActiveSpawnUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *ActiveSpawnUpdate) SetNillableEndedAt(v *time.Time) *ActiveSpawnUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *ActiveSpawnUpdate) ClearEndedAt() *ActiveSpawnUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// Mutation returns the ActiveSpawnMutation object of the builder.
func (_u *ActiveSpawnUpdate) Mutation() *ActiveSpawnMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActiveSpawnUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActiveSpawnUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActiveSpawnUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActiveSpawnUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActiveSpawnUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := activespawn.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ActiveSpawn.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ActiveSpawnUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activespawn.Table, activespawn.Columns, sqlgraph.NewFieldSpec(activespawn.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(activespawn.FieldInstanceID, field.TypeString)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(activespawn.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(activespawn.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(activespawn.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(activespawn.FieldExitCode, field.TypeInt, value)
	}
	if _u.mutation.ExitCodeCleared() {
		_spec.ClearField(activespawn.FieldExitCode, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(activespawn.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(activespawn.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.HostMachine(); ok {
		_spec.SetField(activespawn.FieldHostMachine, field.TypeString, value)
	}
	if _u.mutation.HostMachineCleared() {
		_spec.ClearField(activespawn.FieldHostMachine, field.TypeString)
	}
	if value, ok := _u.mutation.DeadlineAt(); ok {
		_spec.SetField(activespawn.FieldDeadlineAt, field.TypeTime, value)
	}
	if _u.mutation.DeadlineAtCleared() {
		_spec.ClearField(activespawn.FieldDeadlineAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(activespawn.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(activespawn.FieldEndedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activespawn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActiveSpawnUpdateOne is the builder for updating a single ActiveSpawn entity.
type ActiveSpawnUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActiveSpawnMutation
}

// SetStatus sets the "status" field.
func (_u *ActiveSpawnUpdateOne) SetStatus(v activespawn.Status) *ActiveSpawnUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActiveSpawnUpdateOne) SetNillableStatus(v *activespawn.Status) *ActiveSpawnUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *ActiveSpawnUpdateOne) SetExitCode(v int) *ActiveSpawnUpdateOne {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *ActiveSpawnUpdateOne) SetNillableExitCode(v *int) *ActiveSpawnUpdateOne {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *ActiveSpawnUpdateOne) AddExitCode(v int) *ActiveSpawnUpdateOne {
	_u.mutation.AddExitCode(v)
	return _u
}

// ClearExitCode clears the value of the "exit_code" field.
func (_u *ActiveSpawnUpdateOne) ClearExitCode() *ActiveSpawnUpdateOne {
	_u.mutation.ClearExitCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ActiveSpawnUpdateOne) SetErrorMessage(v string) *ActiveSpawnUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ActiveSpawnUpdateOne) SetNillableErrorMessage(v *string) *ActiveSpawnUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ActiveSpawnUpdateOne) ClearErrorMessage() *ActiveSpawnUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetHostMachine sets the "host_machine" field.
func (_u *ActiveSpawnUpdateOne) SetHostMachine(v string) *ActiveSpawnUpdateOne {
	_u.mutation.SetHostMachine(v)
	return _u
}

// SetNillableHostMachine sets the "host_machine" field if the given value is not nil.
func (_u *ActiveSpawnUpdateOne) SetNillableHostMachine(v *string) *ActiveSpawnUpdateOne {
	if v != nil {
		_u.SetHostMachine(*v)
	}
	return _u
}

// ClearHostMachine clears the value of the "host_machine" field.
func (_u *ActiveSpawnUpdateOne) ClearHostMachine() *ActiveSpawnUpdateOne {
	_u.mutation.ClearHostMachine()
	return _u
}

// SetDeadlineAt sets the "deadline_at" field.
func (_u *ActiveSpawnUpdateOne) SetDeadlineAt(v time.Time) *ActiveSpawnUpdateOne {
	_u.mutation.SetDeadlineAt(v)
	return _u
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_u *ActiveSpawnUpdateOne) SetNillableDeadlineAt(v *time.Time) *ActiveSpawnUpdateOne {
	if v != nil {
		_u.SetDeadlineAt(*v)
	}
	return _u
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (_u *ActiveSpawnUpdateOne) ClearDeadlineAt() *ActiveSpawnUpdateOne {
	_u.mutation.ClearDeadlineAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *ActiveSpawnUpdateOne) SetEndedAt(v time.Time) *ActiveSpawnUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *ActiveSpawnUpdateOne) SetNillableEndedAt(v *time.Time) *ActiveSpawnUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *ActiveSpawnUpdateOne) ClearEndedAt() *ActiveSpawnUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// Mutation returns the ActiveSpawnMutation object of the builder.
func (_u *ActiveSpawnUpdateOne) Mutation() *ActiveSpawnMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActiveSpawnUpdate builder.
func (_u *ActiveSpawnUpdateOne) Where(ps ...predicate.ActiveSpawn) *ActiveSpawnUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActiveSpawnUpdateOne) Select(field string, fields ...string) *ActiveSpawnUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActiveSpawn entity.
func (_u *ActiveSpawnUpdateOne) Save(ctx context.Context) (*ActiveSpawn, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActiveSpawnUpdateOne) SaveX(ctx context.Context) *ActiveSpawn {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActiveSpawnUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActiveSpawnUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActiveSpawnUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := activespawn.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ActiveSpawn.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ActiveSpawnUpdateOne) sqlSave(ctx context.Context) (_node *ActiveSpawn, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activespawn.Table, activespawn.Columns, sqlgraph.NewFieldSpec(activespawn.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActiveSpawn.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activespawn.FieldID)
		for _, f := range fields {
			if !activespawn.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activespawn.FieldID {
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
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(activespawn.FieldInstanceID, field.TypeString)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(activespawn.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(activespawn.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(activespawn.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(activespawn.FieldExitCode, field.TypeInt, value)
	}
	if _u.mutation.ExitCodeCleared() {
		_spec.ClearField(activespawn.FieldExitCode, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(activespawn.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(activespawn.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.HostMachine(); ok {
		_spec.SetField(activespawn.FieldHostMachine, field.TypeString, value)
	}
	if _u.mutation.HostMachineCleared() {
		_spec.ClearField(activespawn.FieldHostMachine, field.TypeString)
	}
	if value, ok := _u.mutation.DeadlineAt(); ok {
		_spec.SetField(activespawn.FieldDeadlineAt, field.TypeTime, value)
	}
	if _u.mutation.DeadlineAtCleared() {
		_spec.ClearField(activespawn.FieldDeadlineAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(activespawn.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(activespawn.FieldEndedAt, field.TypeTime)
	}
	_node = &ActiveSpawn{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activespawn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
