// Code generated by ent, DO NOT EDIT.

package activespawn

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the activespawn type in the database.
	Label = "active_spawn"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldInstanceID holds the string denoting the instance_id field in the database.
	FieldInstanceID = "instance_id"
	// FieldProjectPath holds the string denoting the project_path field in the database.
	FieldProjectPath = "project_path"
	// FieldProjectName holds the string denoting the project_name field in the database.
	FieldProjectName = "project_name"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldService holds the string denoting the service field in the database.
	FieldService = "service"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldInstructionsPath holds the string denoting the instructions_path field in the database.
	FieldInstructionsPath = "instructions_path"
	// FieldOutputPath holds the string denoting the output_path field in the database.
	FieldOutputPath = "output_path"
	// FieldExitCode holds the string denoting the exit_code field in the database.
	FieldExitCode = "exit_code"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldHostMachine holds the string denoting the host_machine field in the database.
	FieldHostMachine = "host_machine"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldDeadlineAt holds the string denoting the deadline_at field in the database.
	FieldDeadlineAt = "deadline_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// Table holds the table name of the activespawn in the database.
	Table = "active_spawns"
)

// Columns holds all SQL columns for activespawn fields.
var Columns = []string{
	FieldID,
	FieldInstanceID,
	FieldProjectPath,
	FieldProjectName,
	FieldTaskType,
	FieldDescription,
	FieldContext,
	FieldService,
	FieldModel,
	FieldStatus,
	FieldInstructionsPath,
	FieldOutputPath,
	FieldExitCode,
	FieldErrorMessage,
	FieldHostMachine,
	FieldStartedAt,
	FieldDeadlineAt,
	FieldEndedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusStalled   Status = "stalled"
	StatusAbandoned Status = "abandoned"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed, StatusStalled, StatusAbandoned:
		return nil
	default:
		return fmt.Errorf("activespawn: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ActiveSpawn queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInstanceID orders the results by the instance_id field.
func ByInstanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstanceID, opts...).ToFunc()
}

// ByProjectPath orders the results by the project_path field.
func ByProjectPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectPath, opts...).ToFunc()
}

// ByProjectName orders the results by the project_name field.
func ByProjectName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectName, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByService orders the results by the service field.
func ByService(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldService, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByInstructionsPath orders the results by the instructions_path field.
func ByInstructionsPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstructionsPath, opts...).ToFunc()
}

// ByOutputPath orders the results by the output_path field.
func ByOutputPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputPath, opts...).ToFunc()
}

// ByExitCode orders the results by the exit_code field.
func ByExitCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExitCode, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByHostMachine orders the results by the host_machine field.
func ByHostMachine(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHostMachine, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByDeadlineAt orders the results by the deadline_at field.
func ByDeadlineAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeadlineAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}
