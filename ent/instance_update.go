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
	"github.com/praxisworks/supervisor/ent/checkpoint"
	"github.com/praxisworks/supervisor/ent/commandlogentry"
	"github.com/praxisworks/supervisor/ent/event"
	"github.com/praxisworks/supervisor/ent/instance"
	"github.com/praxisworks/supervisor/ent/predicate"
)

// InstanceUpdate is the builder for updating Instance entities.
type InstanceUpdate struct {
	config
	hooks    []Hook
	mutation *InstanceMutation
}

// Where appends a list predicates to the InstanceUpdate builder.
func (_u *InstanceUpdate) Where(ps ...predicate.Instance) *InstanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InstanceUpdate) SetStatus(v instance.Status) *InstanceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableStatus(v *instance.Status) *InstanceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContextPercent sets the "context_percent" field.
func (_u *InstanceUpdate) SetContextPercent(v int) *InstanceUpdate {
	_u.mutation.ResetContextPercent()
	_u.mutation.SetContextPercent(v)
	return _u
}

// SetNillableContextPercent sets the "context_percent" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableContextPercent(v *int) *InstanceUpdate {
	if v != nil {
		_u.SetContextPercent(*v)
	}
	return _u
}

// AddContextPercent adds value to the "context_percent" field.
func (_u *InstanceUpdate) AddContextPercent(v int) *InstanceUpdate {
	_u.mutation.AddContextPercent(v)
	return _u
}

// SetCurrentEpic sets the "current_epic" field.
func (_u *InstanceUpdate) SetCurrentEpic(v string) *InstanceUpdate {
	_u.mutation.SetCurrentEpic(v)
	return _u
}

// SetNillableCurrentEpic sets the "current_epic" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableCurrentEpic(v *string) *InstanceUpdate {
	if v != nil {
		_u.SetCurrentEpic(*v)
	}
	return _u
}

// ClearCurrentEpic clears the value of the "current_epic" field.
func (_u *InstanceUpdate) ClearCurrentEpic() *InstanceUpdate {
	_u.mutation.ClearCurrentEpic()
	return _u
}

// SetHostMachine sets the "host_machine" field.
func (_u *InstanceUpdate) SetHostMachine(v string) *InstanceUpdate {
	_u.mutation.SetHostMachine(v)
	return _u
}

// SetNillableHostMachine sets the "host_machine" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableHostMachine(v *string) *InstanceUpdate {
	if v != nil {
		_u.SetHostMachine(*v)
	}
	return _u
}

// ClearHostMachine clears the value of the "host_machine" field.
func (_u *InstanceUpdate) ClearHostMachine() *InstanceUpdate {
	_u.mutation.ClearHostMachine()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *InstanceUpdate) SetLastHeartbeat(v time.Time) *InstanceUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableLastHeartbeat(v *time.Time) *InstanceUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *InstanceUpdate) SetClosedAt(v time.Time) *InstanceUpdate {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *InstanceUpdate) SetNillableClosedAt(v *time.Time) *InstanceUpdate {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *InstanceUpdate) ClearClosedAt() *InstanceUpdate {
	_u.mutation.ClearClosedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *InstanceUpdate) AddEventIDs(ids ...string) *InstanceUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *InstanceUpdate) AddEvents(v ...*Event) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddCommandEntryIDs adds the "command_entries" edge to the CommandLogEntry entity by IDs.
func (_u *InstanceUpdate) AddCommandEntryIDs(ids ...int) *InstanceUpdate {
	_u.mutation.AddCommandEntryIDs(ids...)
	return _u
}

// AddCommandEntries adds the "command_entries" edges to the CommandLogEntry entity.
func (_u *InstanceUpdate) AddCommandEntries(v ...*CommandLogEntry) *InstanceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommandEntryIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *InstanceUpdate) AddCheckpointIDs(ids ...string) *InstanceUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *InstanceUpdate) AddCheckpoints(v ...*Checkpoint) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// Mutation returns the InstanceMutation object of the builder.
func (_u *InstanceUpdate) Mutation() *InstanceMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *InstanceUpdate) ClearEvents() *InstanceUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *InstanceUpdate) RemoveEventIDs(ids ...string) *InstanceUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *InstanceUpdate) RemoveEvents(v ...*Event) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearCommandEntries clears all "command_entries" edges to the CommandLogEntry entity.
func (_u *InstanceUpdate) ClearCommandEntries() *InstanceUpdate {
	_u.mutation.ClearCommandEntries()
	return _u
}

// RemoveCommandEntryIDs removes the "command_entries" edge to CommandLogEntry entities by IDs.
func (_u *InstanceUpdate) RemoveCommandEntryIDs(ids ...int) *InstanceUpdate {
	_u.mutation.RemoveCommandEntryIDs(ids...)
	return _u
}

// RemoveCommandEntries removes "command_entries" edges to CommandLogEntry entities.
func (_u *InstanceUpdate) RemoveCommandEntries(v ...*CommandLogEntry) *InstanceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommandEntryIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *InstanceUpdate) ClearCheckpoints() *InstanceUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *InstanceUpdate) RemoveCheckpointIDs(ids ...string) *InstanceUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *InstanceUpdate) RemoveCheckpoints(v ...*Checkpoint) *InstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InstanceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InstanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstanceUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := instance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Instance.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContextPercent(); ok {
		if err := instance.ContextPercentValidator(v); err != nil {
			return &ValidationError{Name: "context_percent", err: fmt.Errorf(`ent: validator failed for field "Instance.context_percent": %w`, err)}
		}
	}
	return nil
}

func (_u *InstanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instance.Table, instance.Columns, sqlgraph.NewFieldSpec(instance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(instance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContextPercent(); ok {
		_spec.SetField(instance.FieldContextPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContextPercent(); ok {
		_spec.AddField(instance.FieldContextPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentEpic(); ok {
		_spec.SetField(instance.FieldCurrentEpic, field.TypeString, value)
	}
	if _u.mutation.CurrentEpicCleared() {
		_spec.ClearField(instance.FieldCurrentEpic, field.TypeString)
	}
	if value, ok := _u.mutation.HostMachine(); ok {
		_spec.SetField(instance.FieldHostMachine, field.TypeString, value)
	}
	if _u.mutation.HostMachineCleared() {
		_spec.ClearField(instance.FieldHostMachine, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(instance.FieldLastHeartbeat, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(instance.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(instance.FieldClosedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.EventsTable,
			Columns: []string{instance.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.EventsTable,
			Columns: []string{instance.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.EventsTable,
			Columns: []string{instance.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommandEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CommandEntriesTable,
			Columns: []string{instance.CommandEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commandlogentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommandEntriesIDs(); len(nodes) > 0 && !_u.mutation.CommandEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CommandEntriesTable,
			Columns: []string{instance.CommandEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commandlogentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommandEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CommandEntriesTable,
			Columns: []string{instance.CommandEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commandlogentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CheckpointsTable,
			Columns: []string{instance.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CheckpointsTable,
			Columns: []string{instance.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CheckpointsTable,
			Columns: []string{instance.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InstanceUpdateOne is the builder for updating a single Instance entity.
type InstanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InstanceMutation
}

// SetStatus sets the "status" field.
func (_u *InstanceUpdateOne) SetStatus(v instance.Status) *InstanceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableStatus(v *instance.Status) *InstanceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContextPercent sets the "context_percent" field.
func (_u *InstanceUpdateOne) SetContextPercent(v int) *InstanceUpdateOne {
	_u.mutation.ResetContextPercent()
	_u.mutation.SetContextPercent(v)
	return _u
}

// SetNillableContextPercent sets the "context_percent" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableContextPercent(v *int) *InstanceUpdateOne {
	if v != nil {
		_u.SetContextPercent(*v)
	}
	return _u
}

// AddContextPercent adds value to the "context_percent" field.
func (_u *InstanceUpdateOne) AddContextPercent(v int) *InstanceUpdateOne {
	_u.mutation.AddContextPercent(v)
	return _u
}

// SetCurrentEpic sets the "current_epic" field.
func (_u *InstanceUpdateOne) SetCurrentEpic(v string) *InstanceUpdateOne {
	_u.mutation.SetCurrentEpic(v)
	return _u
}

// SetNillableCurrentEpic sets the "current_epic" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableCurrentEpic(v *string) *InstanceUpdateOne {
	if v != nil {
		_u.SetCurrentEpic(*v)
	}
	return _u
}

// ClearCurrentEpic clears the value of the "current_epic" field.
func (_u *InstanceUpdateOne) ClearCurrentEpic() *InstanceUpdateOne {
	_u.mutation.ClearCurrentEpic()
	return _u
}

// SetHostMachine sets the "host_machine" field.
func (_u *InstanceUpdateOne) SetHostMachine(v string) *InstanceUpdateOne {
	_u.mutation.SetHostMachine(v)
	return _u
}

// SetNillableHostMachine sets the "host_machine" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableHostMachine(v *string) *InstanceUpdateOne {
	if v != nil {
		_u.SetHostMachine(*v)
	}
	return _u
}

// ClearHostMachine clears the value of the "host_machine" field.
func (_u *InstanceUpdateOne) ClearHostMachine() *InstanceUpdateOne {
	_u.mutation.ClearHostMachine()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *InstanceUpdateOne) SetLastHeartbeat(v time.Time) *InstanceUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableLastHeartbeat(v *time.Time) *InstanceUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *InstanceUpdateOne) SetClosedAt(v time.Time) *InstanceUpdateOne {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *InstanceUpdateOne) SetNillableClosedAt(v *time.Time) *InstanceUpdateOne {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *InstanceUpdateOne) ClearClosedAt() *InstanceUpdateOne {
	_u.mutation.ClearClosedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *InstanceUpdateOne) AddEventIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *InstanceUpdateOne) AddEvents(v ...*Event) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddCommandEntryIDs adds the "command_entries" edge to the CommandLogEntry entity by IDs.
func (_u *InstanceUpdateOne) AddCommandEntryIDs(ids ...int) *InstanceUpdateOne {
	_u.mutation.AddCommandEntryIDs(ids...)
	return _u
}

// AddCommandEntries adds the "command_entries" edges to the CommandLogEntry entity.
func (_u *InstanceUpdateOne) AddCommandEntries(v ...*CommandLogEntry) *InstanceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommandEntryIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *InstanceUpdateOne) AddCheckpointIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *InstanceUpdateOne) AddCheckpoints(v ...*Checkpoint) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// Mutation returns the InstanceMutation object of the builder.
func (_u *InstanceUpdateOne) Mutation() *InstanceMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *InstanceUpdateOne) ClearEvents() *InstanceUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *InstanceUpdateOne) RemoveEventIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *InstanceUpdateOne) RemoveEvents(v ...*Event) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearCommandEntries clears all "command_entries" edges to the CommandLogEntry entity.
func (_u *InstanceUpdateOne) ClearCommandEntries() *InstanceUpdateOne {
	_u.mutation.ClearCommandEntries()
	return _u
}

// RemoveCommandEntryIDs removes the "command_entries" edge to CommandLogEntry entities by IDs.
func (_u *InstanceUpdateOne) RemoveCommandEntryIDs(ids ...int) *InstanceUpdateOne {
	_u.mutation.RemoveCommandEntryIDs(ids...)
	return _u
}

// RemoveCommandEntries removes "command_entries" edges to CommandLogEntry entities.
func (_u *InstanceUpdateOne) RemoveCommandEntries(v ...*CommandLogEntry) *InstanceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommandEntryIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *InstanceUpdateOne) ClearCheckpoints() *InstanceUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *InstanceUpdateOne) RemoveCheckpointIDs(ids ...string) *InstanceUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *InstanceUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *InstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// Where appends a list predicates to the InstanceUpdate builder.
func (_u *InstanceUpdateOne) Where(ps ...predicate.Instance) *InstanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InstanceUpdateOne) Select(field string, fields ...string) *InstanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Instance entity.
func (_u *InstanceUpdateOne) Save(ctx context.Context) (*Instance, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstanceUpdateOne) SaveX(ctx context.Context) *Instance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InstanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstanceUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := instance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Instance.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContextPercent(); ok {
		if err := instance.ContextPercentValidator(v); err != nil {
			return &ValidationError{Name: "context_percent", err: fmt.Errorf(`ent: validator failed for field "Instance.context_percent": %w`, err)}
		}
	}
	return nil
}

func (_u *InstanceUpdateOne) sqlSave(ctx context.Context) (_node *Instance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instance.Table, instance.Columns, sqlgraph.NewFieldSpec(instance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Instance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, instance.FieldID)
		for _, f := range fields {
			if !instance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != instance.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(instance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContextPercent(); ok {
		_spec.SetField(instance.FieldContextPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContextPercent(); ok {
		_spec.AddField(instance.FieldContextPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentEpic(); ok {
		_spec.SetField(instance.FieldCurrentEpic, field.TypeString, value)
	}
	if _u.mutation.CurrentEpicCleared() {
		_spec.ClearField(instance.FieldCurrentEpic, field.TypeString)
	}
	if value, ok := _u.mutation.HostMachine(); ok {
		_spec.SetField(instance.FieldHostMachine, field.TypeString, value)
	}
	if _u.mutation.HostMachineCleared() {
		_spec.ClearField(instance.FieldHostMachine, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(instance.FieldLastHeartbeat, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(instance.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(instance.FieldClosedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.EventsTable,
			Columns: []string{instance.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.EventsTable,
			Columns: []string{instance.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.EventsTable,
			Columns: []string{instance.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommandEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CommandEntriesTable,
			Columns: []string{instance.CommandEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commandlogentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommandEntriesIDs(); len(nodes) > 0 && !_u.mutation.CommandEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CommandEntriesTable,
			Columns: []string{instance.CommandEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commandlogentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommandEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CommandEntriesTable,
			Columns: []string{instance.CommandEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commandlogentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CheckpointsTable,
			Columns: []string{instance.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CheckpointsTable,
			Columns: []string{instance.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   instance.CheckpointsTable,
			Columns: []string{instance.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Instance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
