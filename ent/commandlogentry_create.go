// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxisworks/supervisor/ent/commandlogentry"
	"github.com/praxisworks/supervisor/ent/instance"
)

// CommandLogEntryCreate is the builder for creating a CommandLogEntry entity.
type CommandLogEntryCreate struct {
	config
	mutation *CommandLogEntryMutation
	hooks    []Hook
}

// SetInstanceID sets the "instance_id" field.
func (_c *CommandLogEntryCreate) SetInstanceID(v string) *CommandLogEntryCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_c *CommandLogEntryCreate) SetNillableInstanceID(v *string) *CommandLogEntryCreate {
	if v != nil {
		_c.SetInstanceID(*v)
	}
	return _c
}

// SetCommandType sets the "command_type" field.
func (_c *CommandLogEntryCreate) SetCommandType(v string) *CommandLogEntryCreate {
	_c.mutation.SetCommandType(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *CommandLogEntryCreate) SetAction(v string) *CommandLogEntryCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *CommandLogEntryCreate) SetToolName(v string) *CommandLogEntryCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_c *CommandLogEntryCreate) SetNillableToolName(v *string) *CommandLogEntryCreate {
	if v != nil {
		_c.SetToolName(*v)
	}
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *CommandLogEntryCreate) SetParameters(v map[string]interface{}) *CommandLogEntryCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *CommandLogEntryCreate) SetResult(v map[string]interface{}) *CommandLogEntryCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *CommandLogEntryCreate) SetSuccess(v bool) *CommandLogEntryCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CommandLogEntryCreate) SetErrorMessage(v string) *CommandLogEntryCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CommandLogEntryCreate) SetNillableErrorMessage(v *string) *CommandLogEntryCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_c *CommandLogEntryCreate) SetExecutionTimeMs(v int64) *CommandLogEntryCreate {
	_c.mutation.SetExecutionTimeMs(v)
	return _c
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_c *CommandLogEntryCreate) SetNillableExecutionTimeMs(v *int64) *CommandLogEntryCreate {
	if v != nil {
		_c.SetExecutionTimeMs(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *CommandLogEntryCreate) SetTags(v []string) *CommandLogEntryCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommandLogEntryCreate) SetCreatedAt(v time.Time) *CommandLogEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommandLogEntryCreate) SetNillableCreatedAt(v *time.Time) *CommandLogEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetInstance sets the "instance" edge to the Instance entity.
func (_c *CommandLogEntryCreate) SetInstance(v *Instance) *CommandLogEntryCreate {
	return _c.SetInstanceID(v.ID)
}

// Mutation returns the CommandLogEntryMutation object of the builder.
func (_c *CommandLogEntryCreate) Mutation() *CommandLogEntryMutation {
	return _c.mutation
}

// Save creates the CommandLogEntry in the database.
func (_c *CommandLogEntryCreate) Save(ctx context.Context) (*CommandLogEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommandLogEntryCreate) SaveX(ctx context.Context) *CommandLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommandLogEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommandLogEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommandLogEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := commandlogentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommandLogEntryCreate) check() error {
	if _, ok := _c.mutation.CommandType(); !ok {
		return &ValidationError{Name: "command_type", err: errors.New(`ent: missing required field "CommandLogEntry.command_type"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "CommandLogEntry.action"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "CommandLogEntry.success"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CommandLogEntry.created_at"`)}
	}
	return nil
}

func (_c *CommandLogEntryCreate) sqlSave(ctx context.Context) (*CommandLogEntry, error) {
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

func (_c *CommandLogEntryCreate) createSpec() (*CommandLogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &CommandLogEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commandlogentry.Table, sqlgraph.NewFieldSpec(commandlogentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CommandType(); ok {
		_spec.SetField(commandlogentry.FieldCommandType, field.TypeString, value)
		_node.CommandType = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(commandlogentry.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(commandlogentry.FieldToolName, field.TypeString, value)
		_node.ToolName = &value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(commandlogentry.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(commandlogentry.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(commandlogentry.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(commandlogentry.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(commandlogentry.FieldExecutionTimeMs, field.TypeInt64, value)
		_node.ExecutionTimeMs = &value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(commandlogentry.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(commandlogentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.InstanceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commandlogentry.InstanceTable,
			Columns: []string{commandlogentry.InstanceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InstanceID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CommandLogEntryCreateBulk is the builder for creating many CommandLogEntry entities in bulk.
type CommandLogEntryCreateBulk struct {
	config
	err      error
	builders []*CommandLogEntryCreate
}

// Save creates the CommandLogEntry entities in the database.
func (_c *CommandLogEntryCreateBulk) Save(ctx context.Context) ([]*CommandLogEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CommandLogEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommandLogEntryMutation)
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
func (_c *CommandLogEntryCreateBulk) SaveX(ctx context.Context) []*CommandLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommandLogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommandLogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
