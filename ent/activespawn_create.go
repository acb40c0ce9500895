// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxisworks/supervisor/ent/activespawn"
)

// ActiveSpawnCreate is the builder for creating a ActiveSpawn entity.
type ActiveSpawnCreate struct {
	config
	mutation *ActiveSpawnMutation
	hooks    []Hook
}

// SetInstanceID sets the "instance_id" field.
func (_c *ActiveSpawnCreate) SetInstanceID(v string) *ActiveSpawnCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_c *ActiveSpawnCreate) SetNillableInstanceID(v *string) *ActiveSpawnCreate {
	if v != nil {
		_c.SetInstanceID(*v)
	}
	return _c
}

// SetProjectPath sets the "project_path" field.
func (_c *ActiveSpawnCreate) SetProjectPath(v string) *ActiveSpawnCreate {
	_c.mutation.SetProjectPath(v)
	return _c
}

// SetProjectName sets the "project_name" field.
func (_c *ActiveSpawnCreate) SetProjectName(v string) *ActiveSpawnCreate {
	_c.mutation.SetProjectName(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *ActiveSpawnCreate) SetTaskType(v string) *ActiveSpawnCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ActiveSpawnCreate) SetDescription(v string) *ActiveSpawnCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *ActiveSpawnCreate) SetContext(v map[string]interface{}) *ActiveSpawnCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetService sets the "service" field.
func (_c *ActiveSpawnCreate) SetService(v string) *ActiveSpawnCreate {
	_c.mutation.SetService(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *ActiveSpawnCreate) SetModel(v string) *ActiveSpawnCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ActiveSpawnCreate) SetStatus(v activespawn.Status) *ActiveSpawnCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ActiveSpawnCreate) SetNillableStatus(v *activespawn.Status) *ActiveSpawnCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInstructionsPath sets the "instructions_path" field.
func (_c *ActiveSpawnCreate) SetInstructionsPath(v string) *ActiveSpawnCreate {
	_c.mutation.SetInstructionsPath(v)
	return _c
}

// SetOutputPath sets the "output_path" field.
func (_c *ActiveSpawnCreate) SetOutputPath(v string) *ActiveSpawnCreate {
	_c.mutation.SetOutputPath(v)
	return _c
}

// SetExitCode sets the "exit_code" field.
func (_c *ActiveSpawnCreate) SetExitCode(v int) *ActiveSpawnCreate {
	_c.mutation.SetExitCode(v)
	return _c
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_c *ActiveSpawnCreate) SetNillableExitCode(v *int) *ActiveSpawnCreate {
	if v != nil {
		_c.SetExitCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ActiveSpawnCreate) SetErrorMessage(v string) *ActiveSpawnCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ActiveSpawnCreate) SetNillableErrorMessage(v *string) *ActiveSpawnCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetHostMachine sets the "host_machine" field.
func (_c *ActiveSpawnCreate) SetHostMachine(v string) *ActiveSpawnCreate {
	_c.mutation.SetHostMachine(v)
	return _c
}

// SetNillableHostMachine sets the "host_machine" field if the given value is not nil.
func (_c *ActiveSpawnCreate) SetNillableHostMachine(v *string) *ActiveSpawnCreate {
	if v != nil {
		_c.SetHostMachine(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ActiveSpawnCreate) SetStartedAt(v time.Time) *ActiveSpawnCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ActiveSpawnCreate) SetNillableStartedAt(v *time.Time) *ActiveSpawnCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetDeadlineAt sets the "deadline_at" field.
func (_c *ActiveSpawnCreate) SetDeadlineAt(v time.Time) *ActiveSpawnCreate {
	_c.mutation.SetDeadlineAt(v)
	return _c
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_c *ActiveSpawnCreate) SetNillableDeadlineAt(v *time.Time) *ActiveSpawnCreate {
	if v != nil {
		_c.SetDeadlineAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *ActiveSpawnCreate) SetEndedAt(v time.Time) *ActiveSpawnCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *ActiveSpawnCreate) SetNillableEndedAt(v *time.Time) *ActiveSpawnCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActiveSpawnCreate) SetID(v string) *ActiveSpawnCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ActiveSpawnMutation object of the builder.
func (_c *ActiveSpawnCreate) Mutation() *ActiveSpawnMutation {
	return _c.mutation
}

// Save creates the ActiveSpawn in the database.
func (_c *ActiveSpawnCreate) Save(ctx context.Context) (*ActiveSpawn, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActiveSpawnCreate) SaveX(ctx context.Context) *ActiveSpawn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActiveSpawnCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActiveSpawnCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActiveSpawnCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := activespawn.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := activespawn.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActiveSpawnCreate) check() error {
	if _, ok := _c.mutation.ProjectPath(); !ok {
		return &ValidationError{Name: "project_path", err: errors.New(`ent: missing required field "ActiveSpawn.project_path"`)}
	}
	if _, ok := _c.mutation.ProjectName(); !ok {
		return &ValidationError{Name: "project_name", err: errors.New(`ent: missing required field "ActiveSpawn.project_name"`)}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "ActiveSpawn.task_type"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ActiveSpawn.description"`)}
	}
	if _, ok := _c.mutation.Service(); !ok {
		return &ValidationError{Name: "service", err: errors.New(`ent: missing required field "ActiveSpawn.service"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "ActiveSpawn.model"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ActiveSpawn.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := activespawn.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ActiveSpawn.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InstructionsPath(); !ok {
		return &ValidationError{Name: "instructions_path", err: errors.New(`ent: missing required field "ActiveSpawn.instructions_path"`)}
	}
	if _, ok := _c.mutation.OutputPath(); !ok {
		return &ValidationError{Name: "output_path", err: errors.New(`ent: missing required field "ActiveSpawn.output_path"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ActiveSpawn.started_at"`)}
	}
	return nil
}

func (_c *ActiveSpawnCreate) sqlSave(ctx context.Context) (*ActiveSpawn, error) {
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
			return nil, fmt.Errorf("unexpected ActiveSpawn.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActiveSpawnCreate) createSpec() (*ActiveSpawn, *sqlgraph.CreateSpec) {
	var (
		_node = &ActiveSpawn{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activespawn.Table, sqlgraph.NewFieldSpec(activespawn.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.InstanceID(); ok {
		_spec.SetField(activespawn.FieldInstanceID, field.TypeString, value)
		_node.InstanceID = &value
	}
	if value, ok := _c.mutation.ProjectPath(); ok {
		_spec.SetField(activespawn.FieldProjectPath, field.TypeString, value)
		_node.ProjectPath = value
	}
	if value, ok := _c.mutation.ProjectName(); ok {
		_spec.SetField(activespawn.FieldProjectName, field.TypeString, value)
		_node.ProjectName = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(activespawn.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(activespawn.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(activespawn.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Service(); ok {
		_spec.SetField(activespawn.FieldService, field.TypeString, value)
		_node.Service = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(activespawn.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(activespawn.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InstructionsPath(); ok {
		_spec.SetField(activespawn.FieldInstructionsPath, field.TypeString, value)
		_node.InstructionsPath = value
	}
	if value, ok := _c.mutation.OutputPath(); ok {
		_spec.SetField(activespawn.FieldOutputPath, field.TypeString, value)
		_node.OutputPath = value
	}
	if value, ok := _c.mutation.ExitCode(); ok {
		_spec.SetField(activespawn.FieldExitCode, field.TypeInt, value)
		_node.ExitCode = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(activespawn.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.HostMachine(); ok {
		_spec.SetField(activespawn.FieldHostMachine, field.TypeString, value)
		_node.HostMachine = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(activespawn.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.DeadlineAt(); ok {
		_spec.SetField(activespawn.FieldDeadlineAt, field.TypeTime, value)
		_node.DeadlineAt = &value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(activespawn.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	return _node, _spec
}

// ActiveSpawnCreateBulk is the builder for creating many ActiveSpawn entities in bulk.
type ActiveSpawnCreateBulk struct {
	config
	err      error
	builders []*ActiveSpawnCreate
}

// Save creates the ActiveSpawn entities in the database.
func (_c *ActiveSpawnCreateBulk) Save(ctx context.Context) ([]*ActiveSpawn, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActiveSpawn, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActiveSpawnMutation)
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
func (_c *ActiveSpawnCreateBulk) SaveX(ctx context.Context) []*ActiveSpawn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActiveSpawnCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActiveSpawnCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
