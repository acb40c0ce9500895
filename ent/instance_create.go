// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxisworks/supervisor/ent/checkpoint"
	"github.com/praxisworks/supervisor/ent/commandlogentry"
	"github.com/praxisworks/supervisor/ent/event"
	"github.com/praxisworks/supervisor/ent/instance"
)

// InstanceCreate is the builder for creating a Instance entity.
type InstanceCreate struct {
	config
	mutation *InstanceMutation
	hooks    []Hook
}

// SetProject sets the "project" field.
func (_c *InstanceCreate) SetProject(v string) *InstanceCreate {
	_c.mutation.SetProject(v)
	return _c
}

// SetType sets the "type" field.
func (_c *InstanceCreate) SetType(v instance.Type) *InstanceCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *InstanceCreate) SetStatus(v instance.Status) *InstanceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableStatus(v *instance.Status) *InstanceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetContextPercent sets the "context_percent" field.
func (_c *InstanceCreate) SetContextPercent(v int) *InstanceCreate {
	_c.mutation.SetContextPercent(v)
	return _c
}

// SetNillableContextPercent sets the "context_percent" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableContextPercent(v *int) *InstanceCreate {
	if v != nil {
		_c.SetContextPercent(*v)
	}
	return _c
}

// SetCurrentEpic sets the "current_epic" field.
func (_c *InstanceCreate) SetCurrentEpic(v string) *InstanceCreate {
	_c.mutation.SetCurrentEpic(v)
	return _c
}

// SetNillableCurrentEpic sets the "current_epic" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableCurrentEpic(v *string) *InstanceCreate {
	if v != nil {
		_c.SetCurrentEpic(*v)
	}
	return _c
}

// SetHostMachine sets the "host_machine" field.
func (_c *InstanceCreate) SetHostMachine(v string) *InstanceCreate {
	_c.mutation.SetHostMachine(v)
	return _c
}

// SetNillableHostMachine sets the "host_machine" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableHostMachine(v *string) *InstanceCreate {
	if v != nil {
		_c.SetHostMachine(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InstanceCreate) SetCreatedAt(v time.Time) *InstanceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableCreatedAt(v *time.Time) *InstanceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *InstanceCreate) SetLastHeartbeat(v time.Time) *InstanceCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableLastHeartbeat(v *time.Time) *InstanceCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetClosedAt sets the "closed_at" field.
func (_c *InstanceCreate) SetClosedAt(v time.Time) *InstanceCreate {
	_c.mutation.SetClosedAt(v)
	return _c
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_c *InstanceCreate) SetNillableClosedAt(v *time.Time) *InstanceCreate {
	if v != nil {
		_c.SetClosedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InstanceCreate) SetID(v string) *InstanceCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *InstanceCreate) AddEventIDs(ids ...string) *InstanceCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *InstanceCreate) AddEvents(v ...*Event) *InstanceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddCommandEntryIDs adds the "command_entries" edge to the CommandLogEntry entity by IDs.
func (_c *InstanceCreate) AddCommandEntryIDs(ids ...int) *InstanceCreate {
	_c.mutation.AddCommandEntryIDs(ids...)
	return _c
}

// AddCommandEntries adds the "command_entries" edges to the CommandLogEntry entity.
func (_c *InstanceCreate) AddCommandEntries(v ...*CommandLogEntry) *InstanceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCommandEntryIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_c *InstanceCreate) AddCheckpointIDs(ids ...string) *InstanceCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_c *InstanceCreate) AddCheckpoints(v ...*Checkpoint) *InstanceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// Mutation returns the InstanceMutation object of the builder.
func (_c *InstanceCreate) Mutation() *InstanceMutation {
	return _c.mutation
}

// Save creates the Instance in the database.
func (_c *InstanceCreate) Save(ctx context.Context) (*Instance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InstanceCreate) SaveX(ctx context.Context) *Instance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InstanceCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := instance.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ContextPercent(); !ok {
		v := instance.DefaultContextPercent
		_c.mutation.SetContextPercent(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := instance.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastHeartbeat(); !ok {
		v := instance.DefaultLastHeartbeat()
		_c.mutation.SetLastHeartbeat(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InstanceCreate) check() error {
	if _, ok := _c.mutation.Project(); !ok {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required field "Instance.project"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Instance.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := instance.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Instance.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Instance.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := instance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Instance.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContextPercent(); !ok {
		return &ValidationError{Name: "context_percent", err: errors.New(`ent: missing required field "Instance.context_percent"`)}
	}
	if v, ok := _c.mutation.ContextPercent(); ok {
		if err := instance.ContextPercentValidator(v); err != nil {
			return &ValidationError{Name: "context_percent", err: fmt.Errorf(`ent: validator failed for field "Instance.context_percent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Instance.created_at"`)}
	}
	if _, ok := _c.mutation.LastHeartbeat(); !ok {
		return &ValidationError{Name: "last_heartbeat", err: errors.New(`ent: missing required field "Instance.last_heartbeat"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := instance.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Instance.id": %w`, err)}
		}
	}
	return nil
}

func (_c *InstanceCreate) sqlSave(ctx context.Context) (*Instance, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Instance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InstanceCreate) createSpec() (*Instance, *sqlgraph.CreateSpec) {
	var (
		_node = &Instance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(instance.Table, sqlgraph.NewFieldSpec(instance.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Project(); ok {
		_spec.SetField(instance.FieldProject, field.TypeString, value)
		_node.Project = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(instance.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(instance.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ContextPercent(); ok {
		_spec.SetField(instance.FieldContextPercent, field.TypeInt, value)
		_node.ContextPercent = value
	}
	if value, ok := _c.mutation.CurrentEpic(); ok {
		_spec.SetField(instance.FieldCurrentEpic, field.TypeString, value)
		_node.CurrentEpic = &value
	}
	if value, ok := _c.mutation.HostMachine(); ok {
		_spec.SetField(instance.FieldHostMachine, field.TypeString, value)
		_node.HostMachine = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(instance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(instance.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = value
	}
	if value, ok := _c.mutation.ClosedAt(); ok {
		_spec.SetField(instance.FieldClosedAt, field.TypeTime, value)
		_node.ClosedAt = &value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CommandEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InstanceCreateBulk is the builder for creating many Instance entities in bulk.
type InstanceCreateBulk struct {
	config
	err      error
	builders []*InstanceCreate
}

// Save creates the Instance entities in the database.
func (_c *InstanceCreateBulk) Save(ctx context.Context) ([]*Instance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Instance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InstanceMutation)
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
func (_c *InstanceCreateBulk) SaveX(ctx context.Context) []*Instance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
