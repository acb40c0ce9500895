// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxisworks/supervisor/ent/activespawn"
	"github.com/praxisworks/supervisor/ent/checkpoint"
	"github.com/praxisworks/supervisor/ent/commandlogentry"
	"github.com/praxisworks/supervisor/ent/event"
	"github.com/praxisworks/supervisor/ent/instance"
	"github.com/praxisworks/supervisor/ent/predicate"
	"github.com/praxisworks/supervisor/ent/secret"
	"github.com/praxisworks/supervisor/ent/secretaccesslog"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActiveSpawn     = "ActiveSpawn"
	TypeCheckpoint      = "Checkpoint"
	TypeCommandLogEntry = "CommandLogEntry"
	TypeEvent           = "Event"
	TypeInstance        = "Instance"
	TypeSecret          = "Secret"
	TypeSecretAccessLog = "SecretAccessLog"
)

// ActiveSpawnMutation represents an operation that mutates the ActiveSpawn nodes in the graph.
type ActiveSpawnMutation struct {
	config
	op                Op
	typ               string
	id                *string
	instance_id       *string
	project_path      *string
	project_name      *string
	task_type         *string
	description       *string
	context           *map[string]interface{}
	service           *string
	model             *string
	status            *activespawn.Status
	instructions_path *string
	output_path       *string
	exit_code         *int
	addexit_code      *int
	error_message     *string
	host_machine      *string
	started_at        *time.Time
	deadline_at       *time.Time
	ended_at          *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ActiveSpawn, error)
	predicates        []predicate.ActiveSpawn
}

var _ ent.Mutation = (*ActiveSpawnMutation)(nil)

// activespawnOption allows management of the mutation configuration using functional options.
type activespawnOption func(*ActiveSpawnMutation)

// newActiveSpawnMutation creates new mutation for the ActiveSpawn entity.
func newActiveSpawnMutation(c config, op Op, opts ...activespawnOption) *ActiveSpawnMutation {
	m := &ActiveSpawnMutation{
		config:        c,
		op:            op,
		typ:           TypeActiveSpawn,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActiveSpawnID sets the ID field of the mutation.
func withActiveSpawnID(id string) activespawnOption {
	return func(m *ActiveSpawnMutation) {
		var (
			err   error
			once  sync.Once
			value *ActiveSpawn
		)
		m.oldValue = func(ctx context.Context) (*ActiveSpawn, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActiveSpawn.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActiveSpawn sets the old ActiveSpawn of the mutation.
func withActiveSpawn(node *ActiveSpawn) activespawnOption {
	return func(m *ActiveSpawnMutation) {
		m.oldValue = func(context.Context) (*ActiveSpawn, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActiveSpawnMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActiveSpawnMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActiveSpawn entities.
func (m *ActiveSpawnMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActiveSpawnMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActiveSpawnMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActiveSpawn.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInstanceID sets the "instance_id" field.
func (m *ActiveSpawnMutation) SetInstanceID(s string) {
	m.instance_id = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *ActiveSpawnMutation) InstanceID() (r string, exists bool) {
	v := m.instance_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldInstanceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ClearInstanceID clears the value of the "instance_id" field.
func (m *ActiveSpawnMutation) ClearInstanceID() {
	m.instance_id = nil
	m.clearedFields[activespawn.FieldInstanceID] = struct{}{}
}

// InstanceIDCleared returns if the "instance_id" field was cleared in this mutation.
func (m *ActiveSpawnMutation) InstanceIDCleared() bool {
	_, ok := m.clearedFields[activespawn.FieldInstanceID]
	return ok
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *ActiveSpawnMutation) ResetInstanceID() {
	m.instance_id = nil
	delete(m.clearedFields, activespawn.FieldInstanceID)
}

// SetProjectPath sets the "project_path" field.
func (m *ActiveSpawnMutation) SetProjectPath(s string) {
	m.project_path = &s
}

// ProjectPath returns the value of the "project_path" field in the mutation.
func (m *ActiveSpawnMutation) ProjectPath() (r string, exists bool) {
	v := m.project_path
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectPath returns the old "project_path" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldProjectPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectPath: %w", err)
	}
	return oldValue.ProjectPath, nil
}

// ResetProjectPath resets all changes to the "project_path" field.
func (m *ActiveSpawnMutation) ResetProjectPath() {
	m.project_path = nil
}

// SetProjectName sets the "project_name" field.
func (m *ActiveSpawnMutation) SetProjectName(s string) {
	m.project_name = &s
}

// ProjectName returns the value of the "project_name" field in the mutation.
func (m *ActiveSpawnMutation) ProjectName() (r string, exists bool) {
	v := m.project_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectName returns the old "project_name" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldProjectName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectName: %w", err)
	}
	return oldValue.ProjectName, nil
}

// ResetProjectName resets all changes to the "project_name" field.
func (m *ActiveSpawnMutation) ResetProjectName() {
	m.project_name = nil
}

// SetTaskType sets the "task_type" field.
func (m *ActiveSpawnMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *ActiveSpawnMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *ActiveSpawnMutation) ResetTaskType() {
	m.task_type = nil
}

// SetDescription sets the "description" field.
func (m *ActiveSpawnMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ActiveSpawnMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ActiveSpawnMutation) ResetDescription() {
	m.description = nil
}

// SetContext sets the "context" field.
func (m *ActiveSpawnMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *ActiveSpawnMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *ActiveSpawnMutation) ClearContext() {
	m.context = nil
	m.clearedFields[activespawn.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *ActiveSpawnMutation) ContextCleared() bool {
	_, ok := m.clearedFields[activespawn.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *ActiveSpawnMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, activespawn.FieldContext)
}

// SetService sets the "service" field.
func (m *ActiveSpawnMutation) SetService(s string) {
	m.service = &s
}

// Service returns the value of the "service" field in the mutation.
func (m *ActiveSpawnMutation) Service() (r string, exists bool) {
	v := m.service
	if v == nil {
		return
	}
	return *v, true
}

// OldService returns the old "service" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldService(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldService is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldService requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldService: %w", err)
	}
	return oldValue.Service, nil
}

// ResetService resets all changes to the "service" field.
func (m *ActiveSpawnMutation) ResetService() {
	m.service = nil
}

// SetModel sets the "model" field.
func (m *ActiveSpawnMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ActiveSpawnMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ActiveSpawnMutation) ResetModel() {
	m.model = nil
}

// SetStatus sets the "status" field.
func (m *ActiveSpawnMutation) SetStatus(a activespawn.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ActiveSpawnMutation) Status() (r activespawn.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldStatus(ctx context.Context) (v activespawn.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ActiveSpawnMutation) ResetStatus() {
	m.status = nil
}

// SetInstructionsPath sets the "instructions_path" field.
func (m *ActiveSpawnMutation) SetInstructionsPath(s string) {
	m.instructions_path = &s
}

// InstructionsPath returns the value of the "instructions_path" field in the mutation.
func (m *ActiveSpawnMutation) InstructionsPath() (r string, exists bool) {
	v := m.instructions_path
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructionsPath returns the old "instructions_path" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldInstructionsPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructionsPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructionsPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructionsPath: %w", err)
	}
	return oldValue.InstructionsPath, nil
}

// ResetInstructionsPath resets all changes to the "instructions_path" field.
func (m *ActiveSpawnMutation) ResetInstructionsPath() {
	m.instructions_path = nil
}

// SetOutputPath sets the "output_path" field.
func (m *ActiveSpawnMutation) SetOutputPath(s string) {
	m.output_path = &s
}

// OutputPath returns the value of the "output_path" field in the mutation.
func (m *ActiveSpawnMutation) OutputPath() (r string, exists bool) {
	v := m.output_path
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputPath returns the old "output_path" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldOutputPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputPath: %w", err)
	}
	return oldValue.OutputPath, nil
}

// ResetOutputPath resets all changes to the "output_path" field.
func (m *ActiveSpawnMutation) ResetOutputPath() {
	m.output_path = nil
}

// SetExitCode sets the "exit_code" field.
func (m *ActiveSpawnMutation) SetExitCode(i int) {
	m.exit_code = &i
	m.addexit_code = nil
}

// ExitCode returns the value of the "exit_code" field in the mutation.
func (m *ActiveSpawnMutation) ExitCode() (r int, exists bool) {
	v := m.exit_code
	if v == nil {
		return
	}
	return *v, true
}

// OldExitCode returns the old "exit_code" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldExitCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExitCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExitCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExitCode: %w", err)
	}
	return oldValue.ExitCode, nil
}

// AddExitCode adds i to the "exit_code" field.
func (m *ActiveSpawnMutation) AddExitCode(i int) {
	if m.addexit_code != nil {
		*m.addexit_code += i
	} else {
		m.addexit_code = &i
	}
}

// AddedExitCode returns the value that was added to the "exit_code" field in this mutation.
func (m *ActiveSpawnMutation) AddedExitCode() (r int, exists bool) {
	v := m.addexit_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearExitCode clears the value of the "exit_code" field.
func (m *ActiveSpawnMutation) ClearExitCode() {
	m.exit_code = nil
	m.addexit_code = nil
	m.clearedFields[activespawn.FieldExitCode] = struct{}{}
}

// ExitCodeCleared returns if the "exit_code" field was cleared in this mutation.
func (m *ActiveSpawnMutation) ExitCodeCleared() bool {
	_, ok := m.clearedFields[activespawn.FieldExitCode]
	return ok
}

// ResetExitCode resets all changes to the "exit_code" field.
func (m *ActiveSpawnMutation) ResetExitCode() {
	m.exit_code = nil
	m.addexit_code = nil
	delete(m.clearedFields, activespawn.FieldExitCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *ActiveSpawnMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ActiveSpawnMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ActiveSpawnMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[activespawn.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ActiveSpawnMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[activespawn.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ActiveSpawnMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, activespawn.FieldErrorMessage)
}

// SetHostMachine sets the "host_machine" field.
func (m *ActiveSpawnMutation) SetHostMachine(s string) {
	m.host_machine = &s
}

// HostMachine returns the value of the "host_machine" field in the mutation.
func (m *ActiveSpawnMutation) HostMachine() (r string, exists bool) {
	v := m.host_machine
	if v == nil {
		return
	}
	return *v, true
}

// OldHostMachine returns the old "host_machine" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldHostMachine(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHostMachine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHostMachine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHostMachine: %w", err)
	}
	return oldValue.HostMachine, nil
}

// ClearHostMachine clears the value of the "host_machine" field.
func (m *ActiveSpawnMutation) ClearHostMachine() {
	m.host_machine = nil
	m.clearedFields[activespawn.FieldHostMachine] = struct{}{}
}

// HostMachineCleared returns if the "host_machine" field was cleared in this mutation.
func (m *ActiveSpawnMutation) HostMachineCleared() bool {
	_, ok := m.clearedFields[activespawn.FieldHostMachine]
	return ok
}

// ResetHostMachine resets all changes to the "host_machine" field.
func (m *ActiveSpawnMutation) ResetHostMachine() {
	m.host_machine = nil
	delete(m.clearedFields, activespawn.FieldHostMachine)
}

// SetStartedAt sets the "started_at" field.
func (m *ActiveSpawnMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ActiveSpawnMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ActiveSpawnMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetDeadlineAt sets the "deadline_at" field.
func (m *ActiveSpawnMutation) SetDeadlineAt(t time.Time) {
	m.deadline_at = &t
}

// DeadlineAt returns the value of the "deadline_at" field in the mutation.
func (m *ActiveSpawnMutation) DeadlineAt() (r time.Time, exists bool) {
	v := m.deadline_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadlineAt returns the old "deadline_at" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldDeadlineAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadlineAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadlineAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadlineAt: %w", err)
	}
	return oldValue.DeadlineAt, nil
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (m *ActiveSpawnMutation) ClearDeadlineAt() {
	m.deadline_at = nil
	m.clearedFields[activespawn.FieldDeadlineAt] = struct{}{}
}

// DeadlineAtCleared returns if the "deadline_at" field was cleared in this mutation.
func (m *ActiveSpawnMutation) DeadlineAtCleared() bool {
	_, ok := m.clearedFields[activespawn.FieldDeadlineAt]
	return ok
}

// ResetDeadlineAt resets all changes to the "deadline_at" field.
func (m *ActiveSpawnMutation) ResetDeadlineAt() {
	m.deadline_at = nil
	delete(m.clearedFields, activespawn.FieldDeadlineAt)
}

// SetEndedAt sets the "ended_at" field.
func (m *ActiveSpawnMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *ActiveSpawnMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the ActiveSpawn entity.
// If the ActiveSpawn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSpawnMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *ActiveSpawnMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[activespawn.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *ActiveSpawnMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[activespawn.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *ActiveSpawnMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, activespawn.FieldEndedAt)
}

// Where appends a list predicates to the ActiveSpawnMutation builder.
func (m *ActiveSpawnMutation) Where(ps ...predicate.ActiveSpawn) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActiveSpawnMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActiveSpawnMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActiveSpawn, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActiveSpawnMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActiveSpawnMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActiveSpawn).
func (m *ActiveSpawnMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActiveSpawnMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.instance_id != nil {
		fields = append(fields, activespawn.FieldInstanceID)
	}
	if m.project_path != nil {
		fields = append(fields, activespawn.FieldProjectPath)
	}
	if m.project_name != nil {
		fields = append(fields, activespawn.FieldProjectName)
	}
	if m.task_type != nil {
		fields = append(fields, activespawn.FieldTaskType)
	}
	if m.description != nil {
		fields = append(fields, activespawn.FieldDescription)
	}
	if m.context != nil {
		fields = append(fields, activespawn.FieldContext)
	}
	if m.service != nil {
		fields = append(fields, activespawn.FieldService)
	}
	if m.model != nil {
		fields = append(fields, activespawn.FieldModel)
	}
	if m.status != nil {
		fields = append(fields, activespawn.FieldStatus)
	}
	if m.instructions_path != nil {
		fields = append(fields, activespawn.FieldInstructionsPath)
	}
	if m.output_path != nil {
		fields = append(fields, activespawn.FieldOutputPath)
	}
	if m.exit_code != nil {
		fields = append(fields, activespawn.FieldExitCode)
	}
	if m.error_message != nil {
		fields = append(fields, activespawn.FieldErrorMessage)
	}
	if m.host_machine != nil {
		fields = append(fields, activespawn.FieldHostMachine)
	}
	if m.started_at != nil {
		fields = append(fields, activespawn.FieldStartedAt)
	}
	if m.deadline_at != nil {
		fields = append(fields, activespawn.FieldDeadlineAt)
	}
	if m.ended_at != nil {
		fields = append(fields, activespawn.FieldEndedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActiveSpawnMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activespawn.FieldInstanceID:
		return m.InstanceID()
	case activespawn.FieldProjectPath:
		return m.ProjectPath()
	case activespawn.FieldProjectName:
		return m.ProjectName()
	case activespawn.FieldTaskType:
		return m.TaskType()
	case activespawn.FieldDescription:
		return m.Description()
	case activespawn.FieldContext:
		return m.Context()
	case activespawn.FieldService:
		return m.Service()
	case activespawn.FieldModel:
		return m.Model()
	case activespawn.FieldStatus:
		return m.Status()
	case activespawn.FieldInstructionsPath:
		return m.InstructionsPath()
	case activespawn.FieldOutputPath:
		return m.OutputPath()
	case activespawn.FieldExitCode:
		return m.ExitCode()
	case activespawn.FieldErrorMessage:
		return m.ErrorMessage()
	case activespawn.FieldHostMachine:
		return m.HostMachine()
	case activespawn.FieldStartedAt:
		return m.StartedAt()
	case activespawn.FieldDeadlineAt:
		return m.DeadlineAt()
	case activespawn.FieldEndedAt:
		return m.EndedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActiveSpawnMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activespawn.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case activespawn.FieldProjectPath:
		return m.OldProjectPath(ctx)
	case activespawn.FieldProjectName:
		return m.OldProjectName(ctx)
	case activespawn.FieldTaskType:
		return m.OldTaskType(ctx)
	case activespawn.FieldDescription:
		return m.OldDescription(ctx)
	case activespawn.FieldContext:
		return m.OldContext(ctx)
	case activespawn.FieldService:
		return m.OldService(ctx)
	case activespawn.FieldModel:
		return m.OldModel(ctx)
	case activespawn.FieldStatus:
		return m.OldStatus(ctx)
	case activespawn.FieldInstructionsPath:
		return m.OldInstructionsPath(ctx)
	case activespawn.FieldOutputPath:
		return m.OldOutputPath(ctx)
	case activespawn.FieldExitCode:
		return m.OldExitCode(ctx)
	case activespawn.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case activespawn.FieldHostMachine:
		return m.OldHostMachine(ctx)
	case activespawn.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case activespawn.FieldDeadlineAt:
		return m.OldDeadlineAt(ctx)
	case activespawn.FieldEndedAt:
		return m.OldEndedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActiveSpawn field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActiveSpawnMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activespawn.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case activespawn.FieldProjectPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectPath(v)
		return nil
	case activespawn.FieldProjectName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectName(v)
		return nil
	case activespawn.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case activespawn.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case activespawn.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case activespawn.FieldService:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetService(v)
		return nil
	case activespawn.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case activespawn.FieldStatus:
		v, ok := value.(activespawn.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case activespawn.FieldInstructionsPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructionsPath(v)
		return nil
	case activespawn.FieldOutputPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputPath(v)
		return nil
	case activespawn.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExitCode(v)
		return nil
	case activespawn.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case activespawn.FieldHostMachine:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHostMachine(v)
		return nil
	case activespawn.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case activespawn.FieldDeadlineAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadlineAt(v)
		return nil
	case activespawn.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActiveSpawn field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActiveSpawnMutation) AddedFields() []string {
	var fields []string
	if m.addexit_code != nil {
		fields = append(fields, activespawn.FieldExitCode)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActiveSpawnMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case activespawn.FieldExitCode:
		return m.AddedExitCode()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActiveSpawnMutation) AddField(name string, value ent.Value) error {
	switch name {
	case activespawn.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExitCode(v)
		return nil
	}
	return fmt.Errorf("unknown ActiveSpawn numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActiveSpawnMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activespawn.FieldInstanceID) {
		fields = append(fields, activespawn.FieldInstanceID)
	}
	if m.FieldCleared(activespawn.FieldContext) {
		fields = append(fields, activespawn.FieldContext)
	}
	if m.FieldCleared(activespawn.FieldExitCode) {
		fields = append(fields, activespawn.FieldExitCode)
	}
	if m.FieldCleared(activespawn.FieldErrorMessage) {
		fields = append(fields, activespawn.FieldErrorMessage)
	}
	if m.FieldCleared(activespawn.FieldHostMachine) {
		fields = append(fields, activespawn.FieldHostMachine)
	}
	if m.FieldCleared(activespawn.FieldDeadlineAt) {
		fields = append(fields, activespawn.FieldDeadlineAt)
	}
	if m.FieldCleared(activespawn.FieldEndedAt) {
		fields = append(fields, activespawn.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActiveSpawnMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActiveSpawnMutation) ClearField(name string) error {
	switch name {
	case activespawn.FieldInstanceID:
		m.ClearInstanceID()
		return nil
	case activespawn.FieldContext:
		m.ClearContext()
		return nil
	case activespawn.FieldExitCode:
		m.ClearExitCode()
		return nil
	case activespawn.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case activespawn.FieldHostMachine:
		m.ClearHostMachine()
		return nil
	case activespawn.FieldDeadlineAt:
		m.ClearDeadlineAt()
		return nil
	case activespawn.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown ActiveSpawn nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActiveSpawnMutation) ResetField(name string) error {
	switch name {
	case activespawn.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case activespawn.FieldProjectPath:
		m.ResetProjectPath()
		return nil
	case activespawn.FieldProjectName:
		m.ResetProjectName()
		return nil
	case activespawn.FieldTaskType:
		m.ResetTaskType()
		return nil
	case activespawn.FieldDescription:
		m.ResetDescription()
		return nil
	case activespawn.FieldContext:
		m.ResetContext()
		return nil
	case activespawn.FieldService:
		m.ResetService()
		return nil
	case activespawn.FieldModel:
		m.ResetModel()
		return nil
	case activespawn.FieldStatus:
		m.ResetStatus()
		return nil
	case activespawn.FieldInstructionsPath:
		m.ResetInstructionsPath()
		return nil
	case activespawn.FieldOutputPath:
		m.ResetOutputPath()
		return nil
	case activespawn.FieldExitCode:
		m.ResetExitCode()
		return nil
	case activespawn.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case activespawn.FieldHostMachine:
		m.ResetHostMachine()
		return nil
	case activespawn.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case activespawn.FieldDeadlineAt:
		m.ResetDeadlineAt()
		return nil
	case activespawn.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	}
	return fmt.Errorf("unknown ActiveSpawn field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActiveSpawnMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActiveSpawnMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActiveSpawnMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActiveSpawnMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActiveSpawnMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActiveSpawnMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActiveSpawnMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActiveSpawn unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActiveSpawnMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActiveSpawn edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	sequence_num              *int
	addsequence_num           *int
	checkpoint_type           *checkpoint.CheckpointType
	context_window_percent    *int
	addcontext_window_percent *int
	work_state                *map[string]interface{}
	created_at                *time.Time
	clearedFields             map[string]struct{}
	instance                  *string
	clearedinstance           bool
	done                      bool
	oldValue                  func(context.Context) (*Checkpoint, error)
	predicates                []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInstanceID sets the "instance_id" field.
func (m *CheckpointMutation) SetInstanceID(s string) {
	m.instance = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *CheckpointMutation) InstanceID() (r string, exists bool) {
	v := m.instance
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *CheckpointMutation) ResetInstanceID() {
	m.instance = nil
}

// SetSequenceNum sets the "sequence_num" field.
func (m *CheckpointMutation) SetSequenceNum(i int) {
	m.sequence_num = &i
	m.addsequence_num = nil
}

// SequenceNum returns the value of the "sequence_num" field in the mutation.
func (m *CheckpointMutation) SequenceNum() (r int, exists bool) {
	v := m.sequence_num
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNum returns the old "sequence_num" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSequenceNum(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNum: %w", err)
	}
	return oldValue.SequenceNum, nil
}

// AddSequenceNum adds i to the "sequence_num" field.
func (m *CheckpointMutation) AddSequenceNum(i int) {
	if m.addsequence_num != nil {
		*m.addsequence_num += i
	} else {
		m.addsequence_num = &i
	}
}

// AddedSequenceNum returns the value that was added to the "sequence_num" field in this mutation.
func (m *CheckpointMutation) AddedSequenceNum() (r int, exists bool) {
	v := m.addsequence_num
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNum resets all changes to the "sequence_num" field.
func (m *CheckpointMutation) ResetSequenceNum() {
	m.sequence_num = nil
	m.addsequence_num = nil
}

// SetCheckpointType sets the "checkpoint_type" field.
func (m *CheckpointMutation) SetCheckpointType(ct checkpoint.CheckpointType) {
	m.checkpoint_type = &ct
}

// CheckpointType returns the value of the "checkpoint_type" field in the mutation.
func (m *CheckpointMutation) CheckpointType() (r checkpoint.CheckpointType, exists bool) {
	v := m.checkpoint_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointType returns the old "checkpoint_type" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCheckpointType(ctx context.Context) (v checkpoint.CheckpointType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointType: %w", err)
	}
	return oldValue.CheckpointType, nil
}

// ResetCheckpointType resets all changes to the "checkpoint_type" field.
func (m *CheckpointMutation) ResetCheckpointType() {
	m.checkpoint_type = nil
}

// SetContextWindowPercent sets the "context_window_percent" field.
func (m *CheckpointMutation) SetContextWindowPercent(i int) {
	m.context_window_percent = &i
	m.addcontext_window_percent = nil
}

// ContextWindowPercent returns the value of the "context_window_percent" field in the mutation.
func (m *CheckpointMutation) ContextWindowPercent() (r int, exists bool) {
	v := m.context_window_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldContextWindowPercent returns the old "context_window_percent" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldContextWindowPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextWindowPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextWindowPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextWindowPercent: %w", err)
	}
	return oldValue.ContextWindowPercent, nil
}

// AddContextWindowPercent adds i to the "context_window_percent" field.
func (m *CheckpointMutation) AddContextWindowPercent(i int) {
	if m.addcontext_window_percent != nil {
		*m.addcontext_window_percent += i
	} else {
		m.addcontext_window_percent = &i
	}
}

// AddedContextWindowPercent returns the value that was added to the "context_window_percent" field in this mutation.
func (m *CheckpointMutation) AddedContextWindowPercent() (r int, exists bool) {
	v := m.addcontext_window_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetContextWindowPercent resets all changes to the "context_window_percent" field.
func (m *CheckpointMutation) ResetContextWindowPercent() {
	m.context_window_percent = nil
	m.addcontext_window_percent = nil
}

// SetWorkState sets the "work_state" field.
func (m *CheckpointMutation) SetWorkState(value map[string]interface{}) {
	m.work_state = &value
}

// WorkState returns the value of the "work_state" field in the mutation.
func (m *CheckpointMutation) WorkState() (r map[string]interface{}, exists bool) {
	v := m.work_state
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkState returns the old "work_state" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldWorkState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkState: %w", err)
	}
	return oldValue.WorkState, nil
}

// ResetWorkState resets all changes to the "work_state" field.
func (m *CheckpointMutation) ResetWorkState() {
	m.work_state = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInstance clears the "instance" edge to the Instance entity.
func (m *CheckpointMutation) ClearInstance() {
	m.clearedinstance = true
	m.clearedFields[checkpoint.FieldInstanceID] = struct{}{}
}

// InstanceCleared reports if the "instance" edge to the Instance entity was cleared.
func (m *CheckpointMutation) InstanceCleared() bool {
	return m.clearedinstance
}

// InstanceIDs returns the "instance" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InstanceID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) InstanceIDs() (ids []string) {
	if id := m.instance; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInstance resets all changes to the "instance" edge.
func (m *CheckpointMutation) ResetInstance() {
	m.instance = nil
	m.clearedinstance = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.instance != nil {
		fields = append(fields, checkpoint.FieldInstanceID)
	}
	if m.sequence_num != nil {
		fields = append(fields, checkpoint.FieldSequenceNum)
	}
	if m.checkpoint_type != nil {
		fields = append(fields, checkpoint.FieldCheckpointType)
	}
	if m.context_window_percent != nil {
		fields = append(fields, checkpoint.FieldContextWindowPercent)
	}
	if m.work_state != nil {
		fields = append(fields, checkpoint.FieldWorkState)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldInstanceID:
		return m.InstanceID()
	case checkpoint.FieldSequenceNum:
		return m.SequenceNum()
	case checkpoint.FieldCheckpointType:
		return m.CheckpointType()
	case checkpoint.FieldContextWindowPercent:
		return m.ContextWindowPercent()
	case checkpoint.FieldWorkState:
		return m.WorkState()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case checkpoint.FieldSequenceNum:
		return m.OldSequenceNum(ctx)
	case checkpoint.FieldCheckpointType:
		return m.OldCheckpointType(ctx)
	case checkpoint.FieldContextWindowPercent:
		return m.OldContextWindowPercent(ctx)
	case checkpoint.FieldWorkState:
		return m.OldWorkState(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case checkpoint.FieldSequenceNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNum(v)
		return nil
	case checkpoint.FieldCheckpointType:
		v, ok := value.(checkpoint.CheckpointType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointType(v)
		return nil
	case checkpoint.FieldContextWindowPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextWindowPercent(v)
		return nil
	case checkpoint.FieldWorkState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkState(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_num != nil {
		fields = append(fields, checkpoint.FieldSequenceNum)
	}
	if m.addcontext_window_percent != nil {
		fields = append(fields, checkpoint.FieldContextWindowPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldSequenceNum:
		return m.AddedSequenceNum()
	case checkpoint.FieldContextWindowPercent:
		return m.AddedContextWindowPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldSequenceNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNum(v)
		return nil
	case checkpoint.FieldContextWindowPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContextWindowPercent(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case checkpoint.FieldSequenceNum:
		m.ResetSequenceNum()
		return nil
	case checkpoint.FieldCheckpointType:
		m.ResetCheckpointType()
		return nil
	case checkpoint.FieldContextWindowPercent:
		m.ResetContextWindowPercent()
		return nil
	case checkpoint.FieldWorkState:
		m.ResetWorkState()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.instance != nil {
		edges = append(edges, checkpoint.EdgeInstance)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeInstance:
		if id := m.instance; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinstance {
		edges = append(edges, checkpoint.EdgeInstance)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeInstance:
		return m.clearedinstance
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeInstance:
		m.ClearInstance()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeInstance:
		m.ResetInstance()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// CommandLogEntryMutation represents an operation that mutates the CommandLogEntry nodes in the graph.
type CommandLogEntryMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	command_type         *string
	action               *string
	tool_name            *string
	parameters           *map[string]interface{}
	result               *map[string]interface{}
	success              *bool
	error_message        *string
	execution_time_ms    *int64
	addexecution_time_ms *int64
	tags                 *[]string
	appendtags           []string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	instance             *string
	clearedinstance      bool
	done                 bool
	oldValue             func(context.Context) (*CommandLogEntry, error)
	predicates           []predicate.CommandLogEntry
}

var _ ent.Mutation = (*CommandLogEntryMutation)(nil)

// commandlogentryOption allows management of the mutation configuration using functional options.
type commandlogentryOption func(*CommandLogEntryMutation)

// newCommandLogEntryMutation creates new mutation for the CommandLogEntry entity.
func newCommandLogEntryMutation(c config, op Op, opts ...commandlogentryOption) *CommandLogEntryMutation {
	m := &CommandLogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeCommandLogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommandLogEntryID sets the ID field of the mutation.
func withCommandLogEntryID(id int) commandlogentryOption {
	return func(m *CommandLogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *CommandLogEntry
		)
		m.oldValue = func(ctx context.Context) (*CommandLogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CommandLogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommandLogEntry sets the old CommandLogEntry of the mutation.
func withCommandLogEntry(node *CommandLogEntry) commandlogentryOption {
	return func(m *CommandLogEntryMutation) {
		m.oldValue = func(context.Context) (*CommandLogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommandLogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommandLogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommandLogEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommandLogEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CommandLogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInstanceID sets the "instance_id" field.
func (m *CommandLogEntryMutation) SetInstanceID(s string) {
	m.instance = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *CommandLogEntryMutation) InstanceID() (r string, exists bool) {
	v := m.instance
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the CommandLogEntry entity.
// If the CommandLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogEntryMutation) OldInstanceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ClearInstanceID clears the value of the "instance_id" field.
func (m *CommandLogEntryMutation) ClearInstanceID() {
	m.instance = nil
	m.clearedFields[commandlogentry.FieldInstanceID] = struct{}{}
}

// InstanceIDCleared returns if the "instance_id" field was cleared in this mutation.
func (m *CommandLogEntryMutation) InstanceIDCleared() bool {
	_, ok := m.clearedFields[commandlogentry.FieldInstanceID]
	return ok
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *CommandLogEntryMutation) ResetInstanceID() {
	m.instance = nil
	delete(m.clearedFields, commandlogentry.FieldInstanceID)
}

// SetCommandType sets the "command_type" field.
func (m *CommandLogEntryMutation) SetCommandType(s string) {
	m.command_type = &s
}

// CommandType returns the value of the "command_type" field in the mutation.
func (m *CommandLogEntryMutation) CommandType() (r string, exists bool) {
	v := m.command_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCommandType returns the old "command_type" field's value of the CommandLogEntry entity.
// If the CommandLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogEntryMutation) OldCommandType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommandType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommandType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommandType: %w", err)
	}
	return oldValue.CommandType, nil
}

// ResetCommandType resets all changes to the "command_type" field.
func (m *CommandLogEntryMutation) ResetCommandType() {
	m.command_type = nil
}

// SetAction sets the "action" field.
func (m *CommandLogEntryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *CommandLogEntryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the CommandLogEntry entity.
// If the CommandLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogEntryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *CommandLogEntryMutation) ResetAction() {
	m.action = nil
}

// SetToolName sets the "tool_name" field.
func (m *CommandLogEntryMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *CommandLogEntryMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the CommandLogEntry entity.
// If the CommandLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogEntryMutation) OldToolName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ClearToolName clears the value of the "tool_name" field.
func (m *CommandLogEntryMutation) ClearToolName() {
	m.tool_name = nil
	m.clearedFields[commandlogentry.FieldToolName] = struct{}{}
}

// ToolNameCleared returns if the "tool_name" field was cleared in this mutation.
func (m *CommandLogEntryMutation) ToolNameCleared() bool {
	_, ok := m.clearedFields[commandlogentry.FieldToolName]
	return ok
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *CommandLogEntryMutation) ResetToolName() {
	m.tool_name = nil
	delete(m.clearedFields, commandlogentry.FieldToolName)
}

// SetParameters sets the "parameters" field.
func (m *CommandLogEntryMutation) SetParameters(value map[string]interface{}) {
	m.parameters = &value
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *CommandLogEntryMutation) Parameters() (r map[string]interface{}, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the CommandLogEntry entity.
// If the CommandLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogEntryMutation) OldParameters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// ClearParameters clears the value of the "parameters" field.
func (m *CommandLogEntryMutation) ClearParameters() {
	m.parameters = nil
	m.clearedFields[commandlogentry.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *CommandLogEntryMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[commandlogentry.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *CommandLogEntryMutation) ResetParameters() {
	m.parameters = nil
	delete(m.clearedFields, commandlogentry.FieldParameters)
}

// SetResult sets the "result" field.
func (m *CommandLogEntryMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *CommandLogEntryMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the CommandLogEntry entity.
// If the CommandLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogEntryMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *CommandLogEntryMutation) ClearResult() {
	m.result = nil
	m.clearedFields[commandlogentry.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *CommandLogEntryMutation) ResultCleared() bool {
	_, ok := m.clearedFields[commandlogentry.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *CommandLogEntryMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, commandlogentry.FieldResult)
}

// SetSuccess sets the "success" field.
func (m *CommandLogEntryMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *CommandLogEntryMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the CommandLogEntry entity.
// If the CommandLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogEntryMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *CommandLogEntryMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *CommandLogEntryMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CommandLogEntryMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the CommandLogEntry entity.
// If the CommandLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogEntryMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *CommandLogEntryMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[commandlogentry.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *CommandLogEntryMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[commandlogentry.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CommandLogEntryMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, commandlogentry.FieldErrorMessage)
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (m *CommandLogEntryMutation) SetExecutionTimeMs(i int64) {
	m.execution_time_ms = &i
	m.addexecution_time_ms = nil
}

// ExecutionTimeMs returns the value of the "execution_time_ms" field in the mutation.
func (m *CommandLogEntryMutation) ExecutionTimeMs() (r int64, exists bool) {
	v := m.execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionTimeMs returns the old "execution_time_ms" field's value of the CommandLogEntry entity.
// If the CommandLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogEntryMutation) OldExecutionTimeMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionTimeMs: %w", err)
	}
	return oldValue.ExecutionTimeMs, nil
}

// AddExecutionTimeMs adds i to the "execution_time_ms" field.
func (m *CommandLogEntryMutation) AddExecutionTimeMs(i int64) {
	if m.addexecution_time_ms != nil {
		*m.addexecution_time_ms += i
	} else {
		m.addexecution_time_ms = &i
	}
}

// AddedExecutionTimeMs returns the value that was added to the "execution_time_ms" field in this mutation.
func (m *CommandLogEntryMutation) AddedExecutionTimeMs() (r int64, exists bool) {
	v := m.addexecution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (m *CommandLogEntryMutation) ClearExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
	m.clearedFields[commandlogentry.FieldExecutionTimeMs] = struct{}{}
}

// ExecutionTimeMsCleared returns if the "execution_time_ms" field was cleared in this mutation.
func (m *CommandLogEntryMutation) ExecutionTimeMsCleared() bool {
	_, ok := m.clearedFields[commandlogentry.FieldExecutionTimeMs]
	return ok
}

// ResetExecutionTimeMs resets all changes to the "execution_time_ms" field.
func (m *CommandLogEntryMutation) ResetExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
	delete(m.clearedFields, commandlogentry.FieldExecutionTimeMs)
}

// SetTags sets the "tags" field.
func (m *CommandLogEntryMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *CommandLogEntryMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the CommandLogEntry entity.
// If the CommandLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogEntryMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *CommandLogEntryMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *CommandLogEntryMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *CommandLogEntryMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[commandlogentry.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *CommandLogEntryMutation) TagsCleared() bool {
	_, ok := m.clearedFields[commandlogentry.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *CommandLogEntryMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, commandlogentry.FieldTags)
}

// SetCreatedAt sets the "created_at" field.
func (m *CommandLogEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommandLogEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CommandLogEntry entity.
// If the CommandLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommandLogEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInstance clears the "instance" edge to the Instance entity.
func (m *CommandLogEntryMutation) ClearInstance() {
	m.clearedinstance = true
	m.clearedFields[commandlogentry.FieldInstanceID] = struct{}{}
}

// InstanceCleared reports if the "instance" edge to the Instance entity was cleared.
func (m *CommandLogEntryMutation) InstanceCleared() bool {
	return m.InstanceIDCleared() || m.clearedinstance
}

// InstanceIDs returns the "instance" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InstanceID instead. It exists only for internal usage by the builders.
func (m *CommandLogEntryMutation) InstanceIDs() (ids []string) {
	if id := m.instance; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInstance resets all changes to the "instance" edge.
func (m *CommandLogEntryMutation) ResetInstance() {
	m.instance = nil
	m.clearedinstance = false
}

// Where appends a list predicates to the CommandLogEntryMutation builder.
func (m *CommandLogEntryMutation) Where(ps ...predicate.CommandLogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommandLogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommandLogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CommandLogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommandLogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommandLogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CommandLogEntry).
func (m *CommandLogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommandLogEntryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.instance != nil {
		fields = append(fields, commandlogentry.FieldInstanceID)
	}
	if m.command_type != nil {
		fields = append(fields, commandlogentry.FieldCommandType)
	}
	if m.action != nil {
		fields = append(fields, commandlogentry.FieldAction)
	}
	if m.tool_name != nil {
		fields = append(fields, commandlogentry.FieldToolName)
	}
	if m.parameters != nil {
		fields = append(fields, commandlogentry.FieldParameters)
	}
	if m.result != nil {
		fields = append(fields, commandlogentry.FieldResult)
	}
	if m.success != nil {
		fields = append(fields, commandlogentry.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, commandlogentry.FieldErrorMessage)
	}
	if m.execution_time_ms != nil {
		fields = append(fields, commandlogentry.FieldExecutionTimeMs)
	}
	if m.tags != nil {
		fields = append(fields, commandlogentry.FieldTags)
	}
	if m.created_at != nil {
		fields = append(fields, commandlogentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommandLogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case commandlogentry.FieldInstanceID:
		return m.InstanceID()
	case commandlogentry.FieldCommandType:
		return m.CommandType()
	case commandlogentry.FieldAction:
		return m.Action()
	case commandlogentry.FieldToolName:
		return m.ToolName()
	case commandlogentry.FieldParameters:
		return m.Parameters()
	case commandlogentry.FieldResult:
		return m.Result()
	case commandlogentry.FieldSuccess:
		return m.Success()
	case commandlogentry.FieldErrorMessage:
		return m.ErrorMessage()
	case commandlogentry.FieldExecutionTimeMs:
		return m.ExecutionTimeMs()
	case commandlogentry.FieldTags:
		return m.Tags()
	case commandlogentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommandLogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case commandlogentry.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case commandlogentry.FieldCommandType:
		return m.OldCommandType(ctx)
	case commandlogentry.FieldAction:
		return m.OldAction(ctx)
	case commandlogentry.FieldToolName:
		return m.OldToolName(ctx)
	case commandlogentry.FieldParameters:
		return m.OldParameters(ctx)
	case commandlogentry.FieldResult:
		return m.OldResult(ctx)
	case commandlogentry.FieldSuccess:
		return m.OldSuccess(ctx)
	case commandlogentry.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case commandlogentry.FieldExecutionTimeMs:
		return m.OldExecutionTimeMs(ctx)
	case commandlogentry.FieldTags:
		return m.OldTags(ctx)
	case commandlogentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CommandLogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommandLogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case commandlogentry.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case commandlogentry.FieldCommandType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommandType(v)
		return nil
	case commandlogentry.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case commandlogentry.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case commandlogentry.FieldParameters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case commandlogentry.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case commandlogentry.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case commandlogentry.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case commandlogentry.FieldExecutionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionTimeMs(v)
		return nil
	case commandlogentry.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case commandlogentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CommandLogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommandLogEntryMutation) AddedFields() []string {
	var fields []string
	if m.addexecution_time_ms != nil {
		fields = append(fields, commandlogentry.FieldExecutionTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommandLogEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case commandlogentry.FieldExecutionTimeMs:
		return m.AddedExecutionTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommandLogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case commandlogentry.FieldExecutionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown CommandLogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommandLogEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(commandlogentry.FieldInstanceID) {
		fields = append(fields, commandlogentry.FieldInstanceID)
	}
	if m.FieldCleared(commandlogentry.FieldToolName) {
		fields = append(fields, commandlogentry.FieldToolName)
	}
	if m.FieldCleared(commandlogentry.FieldParameters) {
		fields = append(fields, commandlogentry.FieldParameters)
	}
	if m.FieldCleared(commandlogentry.FieldResult) {
		fields = append(fields, commandlogentry.FieldResult)
	}
	if m.FieldCleared(commandlogentry.FieldErrorMessage) {
		fields = append(fields, commandlogentry.FieldErrorMessage)
	}
	if m.FieldCleared(commandlogentry.FieldExecutionTimeMs) {
		fields = append(fields, commandlogentry.FieldExecutionTimeMs)
	}
	if m.FieldCleared(commandlogentry.FieldTags) {
		fields = append(fields, commandlogentry.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommandLogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommandLogEntryMutation) ClearField(name string) error {
	switch name {
	case commandlogentry.FieldInstanceID:
		m.ClearInstanceID()
		return nil
	case commandlogentry.FieldToolName:
		m.ClearToolName()
		return nil
	case commandlogentry.FieldParameters:
		m.ClearParameters()
		return nil
	case commandlogentry.FieldResult:
		m.ClearResult()
		return nil
	case commandlogentry.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case commandlogentry.FieldExecutionTimeMs:
		m.ClearExecutionTimeMs()
		return nil
	case commandlogentry.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown CommandLogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommandLogEntryMutation) ResetField(name string) error {
	switch name {
	case commandlogentry.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case commandlogentry.FieldCommandType:
		m.ResetCommandType()
		return nil
	case commandlogentry.FieldAction:
		m.ResetAction()
		return nil
	case commandlogentry.FieldToolName:
		m.ResetToolName()
		return nil
	case commandlogentry.FieldParameters:
		m.ResetParameters()
		return nil
	case commandlogentry.FieldResult:
		m.ResetResult()
		return nil
	case commandlogentry.FieldSuccess:
		m.ResetSuccess()
		return nil
	case commandlogentry.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case commandlogentry.FieldExecutionTimeMs:
		m.ResetExecutionTimeMs()
		return nil
	case commandlogentry.FieldTags:
		m.ResetTags()
		return nil
	case commandlogentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CommandLogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommandLogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.instance != nil {
		edges = append(edges, commandlogentry.EdgeInstance)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommandLogEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case commandlogentry.EdgeInstance:
		if id := m.instance; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommandLogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommandLogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommandLogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinstance {
		edges = append(edges, commandlogentry.EdgeInstance)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommandLogEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case commandlogentry.EdgeInstance:
		return m.clearedinstance
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommandLogEntryMutation) ClearEdge(name string) error {
	switch name {
	case commandlogentry.EdgeInstance:
		m.ClearInstance()
		return nil
	}
	return fmt.Errorf("unknown CommandLogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommandLogEntryMutation) ResetEdge(name string) error {
	switch name {
	case commandlogentry.EdgeInstance:
		m.ResetInstance()
		return nil
	}
	return fmt.Errorf("unknown CommandLogEntry edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op              Op
	typ             string
	id              *string
	sequence_num    *int
	addsequence_num *int
	event_type      *event.EventType
	event_data      *map[string]interface{}
	metadata        *map[string]interface{}
	timestamp       *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	instance        *string
	clearedinstance bool
	done            bool
	oldValue        func(context.Context) (*Event, error)
	predicates      []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id string) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInstanceID sets the "instance_id" field.
func (m *EventMutation) SetInstanceID(s string) {
	m.instance = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *EventMutation) InstanceID() (r string, exists bool) {
	v := m.instance
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *EventMutation) ResetInstanceID() {
	m.instance = nil
}

// SetSequenceNum sets the "sequence_num" field.
func (m *EventMutation) SetSequenceNum(i int) {
	m.sequence_num = &i
	m.addsequence_num = nil
}

// SequenceNum returns the value of the "sequence_num" field in the mutation.
func (m *EventMutation) SequenceNum() (r int, exists bool) {
	v := m.sequence_num
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNum returns the old "sequence_num" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSequenceNum(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNum: %w", err)
	}
	return oldValue.SequenceNum, nil
}

// AddSequenceNum adds i to the "sequence_num" field.
func (m *EventMutation) AddSequenceNum(i int) {
	if m.addsequence_num != nil {
		*m.addsequence_num += i
	} else {
		m.addsequence_num = &i
	}
}

// AddedSequenceNum returns the value that was added to the "sequence_num" field in this mutation.
func (m *EventMutation) AddedSequenceNum() (r int, exists bool) {
	v := m.addsequence_num
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNum resets all changes to the "sequence_num" field.
func (m *EventMutation) ResetSequenceNum() {
	m.sequence_num = nil
	m.addsequence_num = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(et event.EventType) {
	m.event_type = &et
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r event.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v event.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetEventData sets the "event_data" field.
func (m *EventMutation) SetEventData(value map[string]interface{}) {
	m.event_data = &value
}

// EventData returns the value of the "event_data" field in the mutation.
func (m *EventMutation) EventData() (r map[string]interface{}, exists bool) {
	v := m.event_data
	if v == nil {
		return
	}
	return *v, true
}

// OldEventData returns the old "event_data" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventData: %w", err)
	}
	return oldValue.EventData, nil
}

// ResetEventData resets all changes to the "event_data" field.
func (m *EventMutation) ResetEventData() {
	m.event_data = nil
}

// SetMetadata sets the "metadata" field.
func (m *EventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *EventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[event.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *EventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[event.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, event.FieldMetadata)
}

// SetTimestamp sets the "timestamp" field.
func (m *EventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *EventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *EventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInstance clears the "instance" edge to the Instance entity.
func (m *EventMutation) ClearInstance() {
	m.clearedinstance = true
	m.clearedFields[event.FieldInstanceID] = struct{}{}
}

// InstanceCleared reports if the "instance" edge to the Instance entity was cleared.
func (m *EventMutation) InstanceCleared() bool {
	return m.clearedinstance
}

// InstanceIDs returns the "instance" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InstanceID instead. It exists only for internal usage by the builders.
func (m *EventMutation) InstanceIDs() (ids []string) {
	if id := m.instance; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInstance resets all changes to the "instance" edge.
func (m *EventMutation) ResetInstance() {
	m.instance = nil
	m.clearedinstance = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.instance != nil {
		fields = append(fields, event.FieldInstanceID)
	}
	if m.sequence_num != nil {
		fields = append(fields, event.FieldSequenceNum)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.event_data != nil {
		fields = append(fields, event.FieldEventData)
	}
	if m.metadata != nil {
		fields = append(fields, event.FieldMetadata)
	}
	if m.timestamp != nil {
		fields = append(fields, event.FieldTimestamp)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldInstanceID:
		return m.InstanceID()
	case event.FieldSequenceNum:
		return m.SequenceNum()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldEventData:
		return m.EventData()
	case event.FieldMetadata:
		return m.Metadata()
	case event.FieldTimestamp:
		return m.Timestamp()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case event.FieldSequenceNum:
		return m.OldSequenceNum(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldEventData:
		return m.OldEventData(ctx)
	case event.FieldMetadata:
		return m.OldMetadata(ctx)
	case event.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case event.FieldSequenceNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNum(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(event.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldEventData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventData(v)
		return nil
	case event.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case event.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_num != nil {
		fields = append(fields, event.FieldSequenceNum)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSequenceNum:
		return m.AddedSequenceNum()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldSequenceNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNum(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldMetadata) {
		fields = append(fields, event.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case event.FieldSequenceNum:
		m.ResetSequenceNum()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldEventData:
		m.ResetEventData()
		return nil
	case event.FieldMetadata:
		m.ResetMetadata()
		return nil
	case event.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.instance != nil {
		edges = append(edges, event.EdgeInstance)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeInstance:
		if id := m.instance; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinstance {
		edges = append(edges, event.EdgeInstance)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeInstance:
		return m.clearedinstance
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeInstance:
		m.ClearInstance()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeInstance:
		m.ResetInstance()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// InstanceMutation represents an operation that mutates the Instance nodes in the graph.
type InstanceMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	project                *string
	_type                  *instance.Type
	status                 *instance.Status
	context_percent        *int
	addcontext_percent     *int
	current_epic           *string
	host_machine           *string
	created_at             *time.Time
	last_heartbeat         *time.Time
	closed_at              *time.Time
	clearedFields          map[string]struct{}
	events                 map[string]struct{}
	removedevents          map[string]struct{}
	clearedevents          bool
	command_entries        map[int]struct{}
	removedcommand_entries map[int]struct{}
	clearedcommand_entries bool
	checkpoints            map[string]struct{}
	removedcheckpoints     map[string]struct{}
	clearedcheckpoints     bool
	done                   bool
	oldValue               func(context.Context) (*Instance, error)
	predicates             []predicate.Instance
}

var _ ent.Mutation = (*InstanceMutation)(nil)

// instanceOption allows management of the mutation configuration using functional options.
type instanceOption func(*InstanceMutation)

// newInstanceMutation creates new mutation for the Instance entity.
func newInstanceMutation(c config, op Op, opts ...instanceOption) *InstanceMutation {
	m := &InstanceMutation{
		config:        c,
		op:            op,
		typ:           TypeInstance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInstanceID sets the ID field of the mutation.
func withInstanceID(id string) instanceOption {
	return func(m *InstanceMutation) {
		var (
			err   error
			once  sync.Once
			value *Instance
		)
		m.oldValue = func(ctx context.Context) (*Instance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Instance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInstance sets the old Instance of the mutation.
func withInstance(node *Instance) instanceOption {
	return func(m *InstanceMutation) {
		m.oldValue = func(context.Context) (*Instance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InstanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InstanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Instance entities.
func (m *InstanceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InstanceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InstanceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Instance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProject sets the "project" field.
func (m *InstanceMutation) SetProject(s string) {
	m.project = &s
}

// Project returns the value of the "project" field in the mutation.
func (m *InstanceMutation) Project() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProject returns the old "project" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldProject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProject: %w", err)
	}
	return oldValue.Project, nil
}

// ResetProject resets all changes to the "project" field.
func (m *InstanceMutation) ResetProject() {
	m.project = nil
}

// SetType sets the "type" field.
func (m *InstanceMutation) SetType(i instance.Type) {
	m._type = &i
}

// GetType returns the value of the "type" field in the mutation.
func (m *InstanceMutation) GetType() (r instance.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldType(ctx context.Context) (v instance.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *InstanceMutation) ResetType() {
	m._type = nil
}

// SetStatus sets the "status" field.
func (m *InstanceMutation) SetStatus(i instance.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InstanceMutation) Status() (r instance.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldStatus(ctx context.Context) (v instance.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InstanceMutation) ResetStatus() {
	m.status = nil
}

// SetContextPercent sets the "context_percent" field.
func (m *InstanceMutation) SetContextPercent(i int) {
	m.context_percent = &i
	m.addcontext_percent = nil
}

// ContextPercent returns the value of the "context_percent" field in the mutation.
func (m *InstanceMutation) ContextPercent() (r int, exists bool) {
	v := m.context_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldContextPercent returns the old "context_percent" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldContextPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextPercent: %w", err)
	}
	return oldValue.ContextPercent, nil
}

// AddContextPercent adds i to the "context_percent" field.
func (m *InstanceMutation) AddContextPercent(i int) {
	if m.addcontext_percent != nil {
		*m.addcontext_percent += i
	} else {
		m.addcontext_percent = &i
	}
}

// AddedContextPercent returns the value that was added to the "context_percent" field in this mutation.
func (m *InstanceMutation) AddedContextPercent() (r int, exists bool) {
	v := m.addcontext_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetContextPercent resets all changes to the "context_percent" field.
func (m *InstanceMutation) ResetContextPercent() {
	m.context_percent = nil
	m.addcontext_percent = nil
}

// SetCurrentEpic sets the "current_epic" field.
func (m *InstanceMutation) SetCurrentEpic(s string) {
	m.current_epic = &s
}

// CurrentEpic returns the value of the "current_epic" field in the mutation.
func (m *InstanceMutation) CurrentEpic() (r string, exists bool) {
	v := m.current_epic
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentEpic returns the old "current_epic" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldCurrentEpic(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentEpic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentEpic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentEpic: %w", err)
	}
	return oldValue.CurrentEpic, nil
}

// ClearCurrentEpic clears the value of the "current_epic" field.
func (m *InstanceMutation) ClearCurrentEpic() {
	m.current_epic = nil
	m.clearedFields[instance.FieldCurrentEpic] = struct{}{}
}

// CurrentEpicCleared returns if the "current_epic" field was cleared in this mutation.
func (m *InstanceMutation) CurrentEpicCleared() bool {
	_, ok := m.clearedFields[instance.FieldCurrentEpic]
	return ok
}

// ResetCurrentEpic resets all changes to the "current_epic" field.
func (m *InstanceMutation) ResetCurrentEpic() {
	m.current_epic = nil
	delete(m.clearedFields, instance.FieldCurrentEpic)
}

// SetHostMachine sets the "host_machine" field.
func (m *InstanceMutation) SetHostMachine(s string) {
	m.host_machine = &s
}

// HostMachine returns the value of the "host_machine" field in the mutation.
func (m *InstanceMutation) HostMachine() (r string, exists bool) {
	v := m.host_machine
	if v == nil {
		return
	}
	return *v, true
}

// OldHostMachine returns the old "host_machine" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldHostMachine(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHostMachine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHostMachine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHostMachine: %w", err)
	}
	return oldValue.HostMachine, nil
}

// ClearHostMachine clears the value of the "host_machine" field.
func (m *InstanceMutation) ClearHostMachine() {
	m.host_machine = nil
	m.clearedFields[instance.FieldHostMachine] = struct{}{}
}

// HostMachineCleared returns if the "host_machine" field was cleared in this mutation.
func (m *InstanceMutation) HostMachineCleared() bool {
	_, ok := m.clearedFields[instance.FieldHostMachine]
	return ok
}

// ResetHostMachine resets all changes to the "host_machine" field.
func (m *InstanceMutation) ResetHostMachine() {
	m.host_machine = nil
	delete(m.clearedFields, instance.FieldHostMachine)
}

// SetCreatedAt sets the "created_at" field.
func (m *InstanceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InstanceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InstanceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *InstanceMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *InstanceMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldLastHeartbeat(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *InstanceMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
}

// SetClosedAt sets the "closed_at" field.
func (m *InstanceMutation) SetClosedAt(t time.Time) {
	m.closed_at = &t
}

// ClosedAt returns the value of the "closed_at" field in the mutation.
func (m *InstanceMutation) ClosedAt() (r time.Time, exists bool) {
	v := m.closed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedAt returns the old "closed_at" field's value of the Instance entity.
// If the Instance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstanceMutation) OldClosedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedAt: %w", err)
	}
	return oldValue.ClosedAt, nil
}

// ClearClosedAt clears the value of the "closed_at" field.
func (m *InstanceMutation) ClearClosedAt() {
	m.closed_at = nil
	m.clearedFields[instance.FieldClosedAt] = struct{}{}
}

// ClosedAtCleared returns if the "closed_at" field was cleared in this mutation.
func (m *InstanceMutation) ClosedAtCleared() bool {
	_, ok := m.clearedFields[instance.FieldClosedAt]
	return ok
}

// ResetClosedAt resets all changes to the "closed_at" field.
func (m *InstanceMutation) ResetClosedAt() {
	m.closed_at = nil
	delete(m.clearedFields, instance.FieldClosedAt)
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *InstanceMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *InstanceMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *InstanceMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *InstanceMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *InstanceMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *InstanceMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *InstanceMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddCommandEntryIDs adds the "command_entries" edge to the CommandLogEntry entity by ids.
func (m *InstanceMutation) AddCommandEntryIDs(ids ...int) {
	if m.command_entries == nil {
		m.command_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.command_entries[ids[i]] = struct{}{}
	}
}

// ClearCommandEntries clears the "command_entries" edge to the CommandLogEntry entity.
func (m *InstanceMutation) ClearCommandEntries() {
	m.clearedcommand_entries = true
}

// CommandEntriesCleared reports if the "command_entries" edge to the CommandLogEntry entity was cleared.
func (m *InstanceMutation) CommandEntriesCleared() bool {
	return m.clearedcommand_entries
}

// RemoveCommandEntryIDs removes the "command_entries" edge to the CommandLogEntry entity by IDs.
func (m *InstanceMutation) RemoveCommandEntryIDs(ids ...int) {
	if m.removedcommand_entries == nil {
		m.removedcommand_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.command_entries, ids[i])
		m.removedcommand_entries[ids[i]] = struct{}{}
	}
}

// RemovedCommandEntries returns the removed IDs of the "command_entries" edge to the CommandLogEntry entity.
func (m *InstanceMutation) RemovedCommandEntriesIDs() (ids []int) {
	for id := range m.removedcommand_entries {
		ids = append(ids, id)
	}
	return
}

// CommandEntriesIDs returns the "command_entries" edge IDs in the mutation.
func (m *InstanceMutation) CommandEntriesIDs() (ids []int) {
	for id := range m.command_entries {
		ids = append(ids, id)
	}
	return
}

// ResetCommandEntries resets all changes to the "command_entries" edge.
func (m *InstanceMutation) ResetCommandEntries() {
	m.command_entries = nil
	m.clearedcommand_entries = false
	m.removedcommand_entries = nil
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *InstanceMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *InstanceMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *InstanceMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *InstanceMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *InstanceMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *InstanceMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *InstanceMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// Where appends a list predicates to the InstanceMutation builder.
func (m *InstanceMutation) Where(ps ...predicate.Instance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InstanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InstanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Instance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InstanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InstanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Instance).
func (m *InstanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InstanceMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.project != nil {
		fields = append(fields, instance.FieldProject)
	}
	if m._type != nil {
		fields = append(fields, instance.FieldType)
	}
	if m.status != nil {
		fields = append(fields, instance.FieldStatus)
	}
	if m.context_percent != nil {
		fields = append(fields, instance.FieldContextPercent)
	}
	if m.current_epic != nil {
		fields = append(fields, instance.FieldCurrentEpic)
	}
	if m.host_machine != nil {
		fields = append(fields, instance.FieldHostMachine)
	}
	if m.created_at != nil {
		fields = append(fields, instance.FieldCreatedAt)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, instance.FieldLastHeartbeat)
	}
	if m.closed_at != nil {
		fields = append(fields, instance.FieldClosedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InstanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case instance.FieldProject:
		return m.Project()
	case instance.FieldType:
		return m.GetType()
	case instance.FieldStatus:
		return m.Status()
	case instance.FieldContextPercent:
		return m.ContextPercent()
	case instance.FieldCurrentEpic:
		return m.CurrentEpic()
	case instance.FieldHostMachine:
		return m.HostMachine()
	case instance.FieldCreatedAt:
		return m.CreatedAt()
	case instance.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case instance.FieldClosedAt:
		return m.ClosedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InstanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case instance.FieldProject:
		return m.OldProject(ctx)
	case instance.FieldType:
		return m.OldType(ctx)
	case instance.FieldStatus:
		return m.OldStatus(ctx)
	case instance.FieldContextPercent:
		return m.OldContextPercent(ctx)
	case instance.FieldCurrentEpic:
		return m.OldCurrentEpic(ctx)
	case instance.FieldHostMachine:
		return m.OldHostMachine(ctx)
	case instance.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case instance.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case instance.FieldClosedAt:
		return m.OldClosedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Instance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case instance.FieldProject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProject(v)
		return nil
	case instance.FieldType:
		v, ok := value.(instance.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case instance.FieldStatus:
		v, ok := value.(instance.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case instance.FieldContextPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextPercent(v)
		return nil
	case instance.FieldCurrentEpic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentEpic(v)
		return nil
	case instance.FieldHostMachine:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHostMachine(v)
		return nil
	case instance.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case instance.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case instance.FieldClosedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Instance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InstanceMutation) AddedFields() []string {
	var fields []string
	if m.addcontext_percent != nil {
		fields = append(fields, instance.FieldContextPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InstanceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case instance.FieldContextPercent:
		return m.AddedContextPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case instance.FieldContextPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContextPercent(v)
		return nil
	}
	return fmt.Errorf("unknown Instance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InstanceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(instance.FieldCurrentEpic) {
		fields = append(fields, instance.FieldCurrentEpic)
	}
	if m.FieldCleared(instance.FieldHostMachine) {
		fields = append(fields, instance.FieldHostMachine)
	}
	if m.FieldCleared(instance.FieldClosedAt) {
		fields = append(fields, instance.FieldClosedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InstanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InstanceMutation) ClearField(name string) error {
	switch name {
	case instance.FieldCurrentEpic:
		m.ClearCurrentEpic()
		return nil
	case instance.FieldHostMachine:
		m.ClearHostMachine()
		return nil
	case instance.FieldClosedAt:
		m.ClearClosedAt()
		return nil
	}
	return fmt.Errorf("unknown Instance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InstanceMutation) ResetField(name string) error {
	switch name {
	case instance.FieldProject:
		m.ResetProject()
		return nil
	case instance.FieldType:
		m.ResetType()
		return nil
	case instance.FieldStatus:
		m.ResetStatus()
		return nil
	case instance.FieldContextPercent:
		m.ResetContextPercent()
		return nil
	case instance.FieldCurrentEpic:
		m.ResetCurrentEpic()
		return nil
	case instance.FieldHostMachine:
		m.ResetHostMachine()
		return nil
	case instance.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case instance.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case instance.FieldClosedAt:
		m.ResetClosedAt()
		return nil
	}
	return fmt.Errorf("unknown Instance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InstanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.events != nil {
		edges = append(edges, instance.EdgeEvents)
	}
	if m.command_entries != nil {
		edges = append(edges, instance.EdgeCommandEntries)
	}
	if m.checkpoints != nil {
		edges = append(edges, instance.EdgeCheckpoints)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InstanceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case instance.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeCommandEntries:
		ids := make([]ent.Value, 0, len(m.command_entries))
		for id := range m.command_entries {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InstanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedevents != nil {
		edges = append(edges, instance.EdgeEvents)
	}
	if m.removedcommand_entries != nil {
		edges = append(edges, instance.EdgeCommandEntries)
	}
	if m.removedcheckpoints != nil {
		edges = append(edges, instance.EdgeCheckpoints)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InstanceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case instance.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeCommandEntries:
		ids := make([]ent.Value, 0, len(m.removedcommand_entries))
		for id := range m.removedcommand_entries {
			ids = append(ids, id)
		}
		return ids
	case instance.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InstanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedevents {
		edges = append(edges, instance.EdgeEvents)
	}
	if m.clearedcommand_entries {
		edges = append(edges, instance.EdgeCommandEntries)
	}
	if m.clearedcheckpoints {
		edges = append(edges, instance.EdgeCheckpoints)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InstanceMutation) EdgeCleared(name string) bool {
	switch name {
	case instance.EdgeEvents:
		return m.clearedevents
	case instance.EdgeCommandEntries:
		return m.clearedcommand_entries
	case instance.EdgeCheckpoints:
		return m.clearedcheckpoints
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InstanceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Instance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InstanceMutation) ResetEdge(name string) error {
	switch name {
	case instance.EdgeEvents:
		m.ResetEvents()
		return nil
	case instance.EdgeCommandEntries:
		m.ResetCommandEntries()
		return nil
	case instance.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	}
	return fmt.Errorf("unknown Instance edge %s", name)
}

// SecretMutation represents an operation that mutates the Secret nodes in the graph.
type SecretMutation struct {
	config
	op                Op
	typ               string
	id                *string
	key_path          *string
	encrypted_value   *[]byte
	encryption_key_id *string
	secret_type       *string
	description       *string
	access_count      *int
	addaccess_count   *int
	last_accessed_at  *time.Time
	expires_at        *time.Time
	metadata          *map[string]interface{}
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Secret, error)
	predicates        []predicate.Secret
}

var _ ent.Mutation = (*SecretMutation)(nil)

// secretOption allows management of the mutation configuration using functional options.
type secretOption func(*SecretMutation)

// newSecretMutation creates new mutation for the Secret entity.
func newSecretMutation(c config, op Op, opts ...secretOption) *SecretMutation {
	m := &SecretMutation{
		config:        c,
		op:            op,
		typ:           TypeSecret,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSecretID sets the ID field of the mutation.
func withSecretID(id string) secretOption {
	return func(m *SecretMutation) {
		var (
			err   error
			once  sync.Once
			value *Secret
		)
		m.oldValue = func(ctx context.Context) (*Secret, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Secret.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSecret sets the old Secret of the mutation.
func withSecret(node *Secret) secretOption {
	return func(m *SecretMutation) {
		m.oldValue = func(context.Context) (*Secret, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SecretMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SecretMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Secret entities.
func (m *SecretMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SecretMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SecretMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Secret.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKeyPath sets the "key_path" field.
func (m *SecretMutation) SetKeyPath(s string) {
	m.key_path = &s
}

// KeyPath returns the value of the "key_path" field in the mutation.
func (m *SecretMutation) KeyPath() (r string, exists bool) {
	v := m.key_path
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyPath returns the old "key_path" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldKeyPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyPath: %w", err)
	}
	return oldValue.KeyPath, nil
}

// ResetKeyPath resets all changes to the "key_path" field.
func (m *SecretMutation) ResetKeyPath() {
	m.key_path = nil
}

// SetEncryptedValue sets the "encrypted_value" field.
func (m *SecretMutation) SetEncryptedValue(b []byte) {
	m.encrypted_value = &b
}

// EncryptedValue returns the value of the "encrypted_value" field in the mutation.
func (m *SecretMutation) EncryptedValue() (r []byte, exists bool) {
	v := m.encrypted_value
	if v == nil {
		return
	}
	return *v, true
}

// OldEncryptedValue returns the old "encrypted_value" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldEncryptedValue(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncryptedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncryptedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncryptedValue: %w", err)
	}
	return oldValue.EncryptedValue, nil
}

// ResetEncryptedValue resets all changes to the "encrypted_value" field.
func (m *SecretMutation) ResetEncryptedValue() {
	m.encrypted_value = nil
}

// SetEncryptionKeyID sets the "encryption_key_id" field.
func (m *SecretMutation) SetEncryptionKeyID(s string) {
	m.encryption_key_id = &s
}

// EncryptionKeyID returns the value of the "encryption_key_id" field in the mutation.
func (m *SecretMutation) EncryptionKeyID() (r string, exists bool) {
	v := m.encryption_key_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEncryptionKeyID returns the old "encryption_key_id" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldEncryptionKeyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncryptionKeyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncryptionKeyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncryptionKeyID: %w", err)
	}
	return oldValue.EncryptionKeyID, nil
}

// ResetEncryptionKeyID resets all changes to the "encryption_key_id" field.
func (m *SecretMutation) ResetEncryptionKeyID() {
	m.encryption_key_id = nil
}

// SetSecretType sets the "secret_type" field.
func (m *SecretMutation) SetSecretType(s string) {
	m.secret_type = &s
}

// SecretType returns the value of the "secret_type" field in the mutation.
func (m *SecretMutation) SecretType() (r string, exists bool) {
	v := m.secret_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSecretType returns the old "secret_type" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldSecretType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecretType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecretType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecretType: %w", err)
	}
	return oldValue.SecretType, nil
}

// ClearSecretType clears the value of the "secret_type" field.
func (m *SecretMutation) ClearSecretType() {
	m.secret_type = nil
	m.clearedFields[secret.FieldSecretType] = struct{}{}
}

// SecretTypeCleared returns if the "secret_type" field was cleared in this mutation.
func (m *SecretMutation) SecretTypeCleared() bool {
	_, ok := m.clearedFields[secret.FieldSecretType]
	return ok
}

// ResetSecretType resets all changes to the "secret_type" field.
func (m *SecretMutation) ResetSecretType() {
	m.secret_type = nil
	delete(m.clearedFields, secret.FieldSecretType)
}

// SetDescription sets the "description" field.
func (m *SecretMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SecretMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SecretMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[secret.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SecretMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[secret.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SecretMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, secret.FieldDescription)
}

// SetAccessCount sets the "access_count" field.
func (m *SecretMutation) SetAccessCount(i int) {
	m.access_count = &i
	m.addaccess_count = nil
}

// AccessCount returns the value of the "access_count" field in the mutation.
func (m *SecretMutation) AccessCount() (r int, exists bool) {
	v := m.access_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessCount returns the old "access_count" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldAccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessCount: %w", err)
	}
	return oldValue.AccessCount, nil
}

// AddAccessCount adds i to the "access_count" field.
func (m *SecretMutation) AddAccessCount(i int) {
	if m.addaccess_count != nil {
		*m.addaccess_count += i
	} else {
		m.addaccess_count = &i
	}
}

// AddedAccessCount returns the value that was added to the "access_count" field in this mutation.
func (m *SecretMutation) AddedAccessCount() (r int, exists bool) {
	v := m.addaccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccessCount resets all changes to the "access_count" field.
func (m *SecretMutation) ResetAccessCount() {
	m.access_count = nil
	m.addaccess_count = nil
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (m *SecretMutation) SetLastAccessedAt(t time.Time) {
	m.last_accessed_at = &t
}

// LastAccessedAt returns the value of the "last_accessed_at" field in the mutation.
func (m *SecretMutation) LastAccessedAt() (r time.Time, exists bool) {
	v := m.last_accessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAccessedAt returns the old "last_accessed_at" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldLastAccessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAccessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAccessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAccessedAt: %w", err)
	}
	return oldValue.LastAccessedAt, nil
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (m *SecretMutation) ClearLastAccessedAt() {
	m.last_accessed_at = nil
	m.clearedFields[secret.FieldLastAccessedAt] = struct{}{}
}

// LastAccessedAtCleared returns if the "last_accessed_at" field was cleared in this mutation.
func (m *SecretMutation) LastAccessedAtCleared() bool {
	_, ok := m.clearedFields[secret.FieldLastAccessedAt]
	return ok
}

// ResetLastAccessedAt resets all changes to the "last_accessed_at" field.
func (m *SecretMutation) ResetLastAccessedAt() {
	m.last_accessed_at = nil
	delete(m.clearedFields, secret.FieldLastAccessedAt)
}

// SetExpiresAt sets the "expires_at" field.
func (m *SecretMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *SecretMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *SecretMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[secret.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *SecretMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[secret.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *SecretMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, secret.FieldExpiresAt)
}

// SetMetadata sets the "metadata" field.
func (m *SecretMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SecretMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SecretMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[secret.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SecretMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[secret.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SecretMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, secret.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *SecretMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SecretMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SecretMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SecretMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SecretMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SecretMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SecretMutation builder.
func (m *SecretMutation) Where(ps ...predicate.Secret) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SecretMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SecretMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Secret, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SecretMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SecretMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Secret).
func (m *SecretMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SecretMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.key_path != nil {
		fields = append(fields, secret.FieldKeyPath)
	}
	if m.encrypted_value != nil {
		fields = append(fields, secret.FieldEncryptedValue)
	}
	if m.encryption_key_id != nil {
		fields = append(fields, secret.FieldEncryptionKeyID)
	}
	if m.secret_type != nil {
		fields = append(fields, secret.FieldSecretType)
	}
	if m.description != nil {
		fields = append(fields, secret.FieldDescription)
	}
	if m.access_count != nil {
		fields = append(fields, secret.FieldAccessCount)
	}
	if m.last_accessed_at != nil {
		fields = append(fields, secret.FieldLastAccessedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, secret.FieldExpiresAt)
	}
	if m.metadata != nil {
		fields = append(fields, secret.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, secret.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, secret.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SecretMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case secret.FieldKeyPath:
		return m.KeyPath()
	case secret.FieldEncryptedValue:
		return m.EncryptedValue()
	case secret.FieldEncryptionKeyID:
		return m.EncryptionKeyID()
	case secret.FieldSecretType:
		return m.SecretType()
	case secret.FieldDescription:
		return m.Description()
	case secret.FieldAccessCount:
		return m.AccessCount()
	case secret.FieldLastAccessedAt:
		return m.LastAccessedAt()
	case secret.FieldExpiresAt:
		return m.ExpiresAt()
	case secret.FieldMetadata:
		return m.Metadata()
	case secret.FieldCreatedAt:
		return m.CreatedAt()
	case secret.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SecretMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case secret.FieldKeyPath:
		return m.OldKeyPath(ctx)
	case secret.FieldEncryptedValue:
		return m.OldEncryptedValue(ctx)
	case secret.FieldEncryptionKeyID:
		return m.OldEncryptionKeyID(ctx)
	case secret.FieldSecretType:
		return m.OldSecretType(ctx)
	case secret.FieldDescription:
		return m.OldDescription(ctx)
	case secret.FieldAccessCount:
		return m.OldAccessCount(ctx)
	case secret.FieldLastAccessedAt:
		return m.OldLastAccessedAt(ctx)
	case secret.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case secret.FieldMetadata:
		return m.OldMetadata(ctx)
	case secret.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case secret.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Secret field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SecretMutation) SetField(name string, value ent.Value) error {
	switch name {
	case secret.FieldKeyPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyPath(v)
		return nil
	case secret.FieldEncryptedValue:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncryptedValue(v)
		return nil
	case secret.FieldEncryptionKeyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncryptionKeyID(v)
		return nil
	case secret.FieldSecretType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecretType(v)
		return nil
	case secret.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case secret.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessCount(v)
		return nil
	case secret.FieldLastAccessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAccessedAt(v)
		return nil
	case secret.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case secret.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case secret.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case secret.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Secret field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SecretMutation) AddedFields() []string {
	var fields []string
	if m.addaccess_count != nil {
		fields = append(fields, secret.FieldAccessCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SecretMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case secret.FieldAccessCount:
		return m.AddedAccessCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SecretMutation) AddField(name string, value ent.Value) error {
	switch name {
	case secret.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccessCount(v)
		return nil
	}
	return fmt.Errorf("unknown Secret numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SecretMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(secret.FieldSecretType) {
		fields = append(fields, secret.FieldSecretType)
	}
	if m.FieldCleared(secret.FieldDescription) {
		fields = append(fields, secret.FieldDescription)
	}
	if m.FieldCleared(secret.FieldLastAccessedAt) {
		fields = append(fields, secret.FieldLastAccessedAt)
	}
	if m.FieldCleared(secret.FieldExpiresAt) {
		fields = append(fields, secret.FieldExpiresAt)
	}
	if m.FieldCleared(secret.FieldMetadata) {
		fields = append(fields, secret.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SecretMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SecretMutation) ClearField(name string) error {
	switch name {
	case secret.FieldSecretType:
		m.ClearSecretType()
		return nil
	case secret.FieldDescription:
		m.ClearDescription()
		return nil
	case secret.FieldLastAccessedAt:
		m.ClearLastAccessedAt()
		return nil
	case secret.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case secret.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Secret nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SecretMutation) ResetField(name string) error {
	switch name {
	case secret.FieldKeyPath:
		m.ResetKeyPath()
		return nil
	case secret.FieldEncryptedValue:
		m.ResetEncryptedValue()
		return nil
	case secret.FieldEncryptionKeyID:
		m.ResetEncryptionKeyID()
		return nil
	case secret.FieldSecretType:
		m.ResetSecretType()
		return nil
	case secret.FieldDescription:
		m.ResetDescription()
		return nil
	case secret.FieldAccessCount:
		m.ResetAccessCount()
		return nil
	case secret.FieldLastAccessedAt:
		m.ResetLastAccessedAt()
		return nil
	case secret.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case secret.FieldMetadata:
		m.ResetMetadata()
		return nil
	case secret.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case secret.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Secret field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SecretMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SecretMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SecretMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SecretMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SecretMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SecretMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SecretMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Secret unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SecretMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Secret edge %s", name)
}

// SecretAccessLogMutation represents an operation that mutates the SecretAccessLog nodes in the graph.
type SecretAccessLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	secret_id     *string
	key_path      *string
	accessed_by   *string
	access_type   *secretaccesslog.AccessType
	success       *bool
	error         *string
	accessed_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SecretAccessLog, error)
	predicates    []predicate.SecretAccessLog
}

var _ ent.Mutation = (*SecretAccessLogMutation)(nil)

// secretaccesslogOption allows management of the mutation configuration using functional options.
type secretaccesslogOption func(*SecretAccessLogMutation)

// newSecretAccessLogMutation creates new mutation for the SecretAccessLog entity.
func newSecretAccessLogMutation(c config, op Op, opts ...secretaccesslogOption) *SecretAccessLogMutation {
	m := &SecretAccessLogMutation{
		config:        c,
		op:            op,
		typ:           TypeSecretAccessLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSecretAccessLogID sets the ID field of the mutation.
func withSecretAccessLogID(id int) secretaccesslogOption {
	return func(m *SecretAccessLogMutation) {
		var (
			err   error
			once  sync.Once
			value *SecretAccessLog
		)
		m.oldValue = func(ctx context.Context) (*SecretAccessLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SecretAccessLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSecretAccessLog sets the old SecretAccessLog of the mutation.
func withSecretAccessLog(node *SecretAccessLog) secretaccesslogOption {
	return func(m *SecretAccessLogMutation) {
		m.oldValue = func(context.Context) (*SecretAccessLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SecretAccessLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SecretAccessLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SecretAccessLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SecretAccessLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SecretAccessLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSecretID sets the "secret_id" field.
func (m *SecretAccessLogMutation) SetSecretID(s string) {
	m.secret_id = &s
}

// SecretID returns the value of the "secret_id" field in the mutation.
func (m *SecretAccessLogMutation) SecretID() (r string, exists bool) {
	v := m.secret_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSecretID returns the old "secret_id" field's value of the SecretAccessLog entity.
// If the SecretAccessLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretAccessLogMutation) OldSecretID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecretID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecretID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecretID: %w", err)
	}
	return oldValue.SecretID, nil
}

// ClearSecretID clears the value of the "secret_id" field.
func (m *SecretAccessLogMutation) ClearSecretID() {
	m.secret_id = nil
	m.clearedFields[secretaccesslog.FieldSecretID] = struct{}{}
}

// SecretIDCleared returns if the "secret_id" field was cleared in this mutation.
func (m *SecretAccessLogMutation) SecretIDCleared() bool {
	_, ok := m.clearedFields[secretaccesslog.FieldSecretID]
	return ok
}

// ResetSecretID resets all changes to the "secret_id" field.
func (m *SecretAccessLogMutation) ResetSecretID() {
	m.secret_id = nil
	delete(m.clearedFields, secretaccesslog.FieldSecretID)
}

// SetKeyPath sets the "key_path" field.
func (m *SecretAccessLogMutation) SetKeyPath(s string) {
	m.key_path = &s
}

// KeyPath returns the value of the "key_path" field in the mutation.
func (m *SecretAccessLogMutation) KeyPath() (r string, exists bool) {
	v := m.key_path
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyPath returns the old "key_path" field's value of the SecretAccessLog entity.
// If the SecretAccessLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretAccessLogMutation) OldKeyPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyPath: %w", err)
	}
	return oldValue.KeyPath, nil
}

// ResetKeyPath resets all changes to the "key_path" field.
func (m *SecretAccessLogMutation) ResetKeyPath() {
	m.key_path = nil
}

// SetAccessedBy sets the "accessed_by" field.
func (m *SecretAccessLogMutation) SetAccessedBy(s string) {
	m.accessed_by = &s
}

// AccessedBy returns the value of the "accessed_by" field in the mutation.
func (m *SecretAccessLogMutation) AccessedBy() (r string, exists bool) {
	v := m.accessed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessedBy returns the old "accessed_by" field's value of the SecretAccessLog entity.
// If the SecretAccessLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretAccessLogMutation) OldAccessedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessedBy: %w", err)
	}
	return oldValue.AccessedBy, nil
}

// ResetAccessedBy resets all changes to the "accessed_by" field.
func (m *SecretAccessLogMutation) ResetAccessedBy() {
	m.accessed_by = nil
}

// SetAccessType sets the "access_type" field.
func (m *SecretAccessLogMutation) SetAccessType(st secretaccesslog.AccessType) {
	m.access_type = &st
}

// AccessType returns the value of the "access_type" field in the mutation.
func (m *SecretAccessLogMutation) AccessType() (r secretaccesslog.AccessType, exists bool) {
	v := m.access_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessType returns the old "access_type" field's value of the SecretAccessLog entity.
// If the SecretAccessLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretAccessLogMutation) OldAccessType(ctx context.Context) (v secretaccesslog.AccessType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessType: %w", err)
	}
	return oldValue.AccessType, nil
}

// ResetAccessType resets all changes to the "access_type" field.
func (m *SecretAccessLogMutation) ResetAccessType() {
	m.access_type = nil
}

// SetSuccess sets the "success" field.
func (m *SecretAccessLogMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *SecretAccessLogMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the SecretAccessLog entity.
// If the SecretAccessLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretAccessLogMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *SecretAccessLogMutation) ResetSuccess() {
	m.success = nil
}

// SetError sets the "error" field.
func (m *SecretAccessLogMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *SecretAccessLogMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the SecretAccessLog entity.
// If the SecretAccessLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretAccessLogMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *SecretAccessLogMutation) ClearError() {
	m.error = nil
	m.clearedFields[secretaccesslog.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *SecretAccessLogMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[secretaccesslog.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *SecretAccessLogMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, secretaccesslog.FieldError)
}

// SetAccessedAt sets the "accessed_at" field.
func (m *SecretAccessLogMutation) SetAccessedAt(t time.Time) {
	m.accessed_at = &t
}

// AccessedAt returns the value of the "accessed_at" field in the mutation.
func (m *SecretAccessLogMutation) AccessedAt() (r time.Time, exists bool) {
	v := m.accessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessedAt returns the old "accessed_at" field's value of the SecretAccessLog entity.
// If the SecretAccessLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretAccessLogMutation) OldAccessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessedAt: %w", err)
	}
	return oldValue.AccessedAt, nil
}

// ResetAccessedAt resets all changes to the "accessed_at" field.
func (m *SecretAccessLogMutation) ResetAccessedAt() {
	m.accessed_at = nil
}

// Where appends a list predicates to the SecretAccessLogMutation builder.
func (m *SecretAccessLogMutation) Where(ps ...predicate.SecretAccessLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SecretAccessLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SecretAccessLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SecretAccessLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SecretAccessLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SecretAccessLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SecretAccessLog).
func (m *SecretAccessLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SecretAccessLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.secret_id != nil {
		fields = append(fields, secretaccesslog.FieldSecretID)
	}
	if m.key_path != nil {
		fields = append(fields, secretaccesslog.FieldKeyPath)
	}
	if m.accessed_by != nil {
		fields = append(fields, secretaccesslog.FieldAccessedBy)
	}
	if m.access_type != nil {
		fields = append(fields, secretaccesslog.FieldAccessType)
	}
	if m.success != nil {
		fields = append(fields, secretaccesslog.FieldSuccess)
	}
	if m.error != nil {
		fields = append(fields, secretaccesslog.FieldError)
	}
	if m.accessed_at != nil {
		fields = append(fields, secretaccesslog.FieldAccessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SecretAccessLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case secretaccesslog.FieldSecretID:
		return m.SecretID()
	case secretaccesslog.FieldKeyPath:
		return m.KeyPath()
	case secretaccesslog.FieldAccessedBy:
		return m.AccessedBy()
	case secretaccesslog.FieldAccessType:
		return m.AccessType()
	case secretaccesslog.FieldSuccess:
		return m.Success()
	case secretaccesslog.FieldError:
		return m.Error()
	case secretaccesslog.FieldAccessedAt:
		return m.AccessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SecretAccessLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case secretaccesslog.FieldSecretID:
		return m.OldSecretID(ctx)
	case secretaccesslog.FieldKeyPath:
		return m.OldKeyPath(ctx)
	case secretaccesslog.FieldAccessedBy:
		return m.OldAccessedBy(ctx)
	case secretaccesslog.FieldAccessType:
		return m.OldAccessType(ctx)
	case secretaccesslog.FieldSuccess:
		return m.OldSuccess(ctx)
	case secretaccesslog.FieldError:
		return m.OldError(ctx)
	case secretaccesslog.FieldAccessedAt:
		return m.OldAccessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SecretAccessLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SecretAccessLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case secretaccesslog.FieldSecretID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecretID(v)
		return nil
	case secretaccesslog.FieldKeyPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyPath(v)
		return nil
	case secretaccesslog.FieldAccessedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessedBy(v)
		return nil
	case secretaccesslog.FieldAccessType:
		v, ok := value.(secretaccesslog.AccessType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessType(v)
		return nil
	case secretaccesslog.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case secretaccesslog.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case secretaccesslog.FieldAccessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SecretAccessLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SecretAccessLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SecretAccessLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SecretAccessLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SecretAccessLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SecretAccessLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(secretaccesslog.FieldSecretID) {
		fields = append(fields, secretaccesslog.FieldSecretID)
	}
	if m.FieldCleared(secretaccesslog.FieldError) {
		fields = append(fields, secretaccesslog.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SecretAccessLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SecretAccessLogMutation) ClearField(name string) error {
	switch name {
	case secretaccesslog.FieldSecretID:
		m.ClearSecretID()
		return nil
	case secretaccesslog.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown SecretAccessLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SecretAccessLogMutation) ResetField(name string) error {
	switch name {
	case secretaccesslog.FieldSecretID:
		m.ResetSecretID()
		return nil
	case secretaccesslog.FieldKeyPath:
		m.ResetKeyPath()
		return nil
	case secretaccesslog.FieldAccessedBy:
		m.ResetAccessedBy()
		return nil
	case secretaccesslog.FieldAccessType:
		m.ResetAccessType()
		return nil
	case secretaccesslog.FieldSuccess:
		m.ResetSuccess()
		return nil
	case secretaccesslog.FieldError:
		m.ResetError()
		return nil
	case secretaccesslog.FieldAccessedAt:
		m.ResetAccessedAt()
		return nil
	}
	return fmt.Errorf("unknown SecretAccessLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SecretAccessLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SecretAccessLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SecretAccessLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SecretAccessLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SecretAccessLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SecretAccessLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SecretAccessLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SecretAccessLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SecretAccessLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SecretAccessLog edge %s", name)
}
