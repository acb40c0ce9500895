// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxisworks/supervisor/ent/activespawn"
)

// ActiveSpawn is the model entity for the ActiveSpawn schema.
type ActiveSpawn struct {
	config `json:"-"`
	// ID of the ent.
	// Format: {epoch-ms}-{rand}
	ID string `json:"id,omitempty"`
	// Owning supervisor session, if any
	InstanceID *string `json:"instance_id,omitempty"`
	// Always equals the cwd of the launched CLI process
	ProjectPath string `json:"project_path,omitempty"`
	// ProjectName holds the value of the "project_name" field.
	ProjectName string `json:"project_name,omitempty"`
	// TaskType holds the value of the "task_type" field.
	TaskType string `json:"task_type,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Context holds the value of the "context" field.
	Context map[string]interface{} `json:"context,omitempty"`
	// claude | gemini | codex
	Service string `json:"service,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Status holds the value of the "status" field.
	Status activespawn.Status `json:"status,omitempty"`
	// InstructionsPath holds the value of the "instructions_path" field.
	InstructionsPath string `json:"instructions_path,omitempty"`
	// OutputPath holds the value of the "output_path" field.
	OutputPath string `json:"output_path,omitempty"`
	// ExitCode holds the value of the "exit_code" field.
	ExitCode *int `json:"exit_code,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// For startup orphan recovery
	HostMachine *string `json:"host_machine,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// Stall detection threshold
	DeadlineAt *time.Time `json:"deadline_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt      *time.Time `json:"ended_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActiveSpawn) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case activespawn.FieldContext:
			values[i] = new([]byte)
		case activespawn.FieldExitCode:
			values[i] = new(sql.NullInt64)
		case activespawn.FieldID, activespawn.FieldInstanceID, activespawn.FieldProjectPath, activespawn.FieldProjectName, activespawn.FieldTaskType, activespawn.FieldDescription, activespawn.FieldService, activespawn.FieldModel, activespawn.FieldStatus, activespawn.FieldInstructionsPath, activespawn.FieldOutputPath, activespawn.FieldErrorMessage, activespawn.FieldHostMachine:
			values[i] = new(sql.NullString)
		case activespawn.FieldStartedAt, activespawn.FieldDeadlineAt, activespawn.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActiveSpawn fields.
func (_m *ActiveSpawn) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case activespawn.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case activespawn.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = new(string)
				*_m.InstanceID = value.String
			}
		case activespawn.FieldProjectPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_path", values[i])
			} else if value.Valid {
				_m.ProjectPath = value.String
			}
		case activespawn.FieldProjectName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_name", values[i])
			} else if value.Valid {
				_m.ProjectName = value.String
			}
		case activespawn.FieldTaskType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_type", values[i])
			} else if value.Valid {
				_m.TaskType = value.String
			}
		case activespawn.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case activespawn.FieldContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Context); err != nil {
					return fmt.Errorf("unmarshal field context: %w", err)
				}
			}
		case activespawn.FieldService:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service", values[i])
			} else if value.Valid {
				_m.Service = value.String
			}
		case activespawn.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case activespawn.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = activespawn.Status(value.String)
			}
		case activespawn.FieldInstructionsPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instructions_path", values[i])
			} else if value.Valid {
				_m.InstructionsPath = value.String
			}
		case activespawn.FieldOutputPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_path", values[i])
			} else if value.Valid {
				_m.OutputPath = value.String
			}
		case activespawn.FieldExitCode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exit_code", values[i])
			} else if value.Valid {
				_m.ExitCode = new(int)
				*_m.ExitCode = int(value.Int64)
			}
		case activespawn.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case activespawn.FieldHostMachine:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field host_machine", values[i])
			} else if value.Valid {
				_m.HostMachine = new(string)
				*_m.HostMachine = value.String
			}
		case activespawn.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case activespawn.FieldDeadlineAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deadline_at", values[i])
			} else if value.Valid {
				_m.DeadlineAt = new(time.Time)
				*_m.DeadlineAt = value.Time
			}
		case activespawn.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActiveSpawn.
// This includes values selected through modifiers, order, etc.
func (_m *ActiveSpawn) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ActiveSpawn.
// Note that you need to call ActiveSpawn.Unwrap() before calling this method if this ActiveSpawn
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActiveSpawn) Update() *ActiveSpawnUpdateOne {
	return NewActiveSpawnClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActiveSpawn entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActiveSpawn) Unwrap() *ActiveSpawn {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActiveSpawn is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActiveSpawn) String() string {
	var builder strings.Builder
	builder.WriteString("ActiveSpawn(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.InstanceID; v != nil {
		builder.WriteString("instance_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("project_path=")
	builder.WriteString(_m.ProjectPath)
	builder.WriteString(", ")
	builder.WriteString("project_name=")
	builder.WriteString(_m.ProjectName)
	builder.WriteString(", ")
	builder.WriteString("task_type=")
	builder.WriteString(_m.TaskType)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(fmt.Sprintf("%v", _m.Context))
	builder.WriteString(", ")
	builder.WriteString("service=")
	builder.WriteString(_m.Service)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("instructions_path=")
	builder.WriteString(_m.InstructionsPath)
	builder.WriteString(", ")
	builder.WriteString("output_path=")
	builder.WriteString(_m.OutputPath)
	builder.WriteString(", ")
	if v := _m.ExitCode; v != nil {
		builder.WriteString("exit_code=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HostMachine; v != nil {
		builder.WriteString("host_machine=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeadlineAt; v != nil {
		builder.WriteString("deadline_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ActiveSpawns is a parsable slice of ActiveSpawn.
type ActiveSpawns []*ActiveSpawn
