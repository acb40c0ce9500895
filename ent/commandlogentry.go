// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxisworks/supervisor/ent/commandlogentry"
	"github.com/praxisworks/supervisor/ent/instance"
)

// CommandLogEntry is the model entity for the CommandLogEntry schema.
type CommandLogEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Nil for requests without a supervisor session (anonymous sink)
	InstanceID *string `json:"instance_id,omitempty"`
	// Coarse grouping, e.g. 'mcp_request', 'spawn', 'epic'
	CommandType string `json:"command_type,omitempty"`
	// Action holds the value of the "action" field.
	Action string `json:"action,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName *string `json:"tool_name,omitempty"`
	// Parameters holds the value of the "parameters" field.
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	// Result holds the value of the "result" field.
	Result map[string]interface{} `json:"result,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ExecutionTimeMs holds the value of the "execution_time_ms" field.
	ExecutionTimeMs *int64 `json:"execution_time_ms,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CommandLogEntryQuery when eager-loading is set.
	Edges        CommandLogEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CommandLogEntryEdges holds the relations/edges for other nodes in the graph.
type CommandLogEntryEdges struct {
	// Instance holds the value of the instance edge.
	Instance *Instance `json:"instance,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InstanceOrErr returns the Instance value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommandLogEntryEdges) InstanceOrErr() (*Instance, error) {
	if e.Instance != nil {
		return e.Instance, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: instance.Label}
	}
	return nil, &NotLoadedError{edge: "instance"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CommandLogEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case commandlogentry.FieldParameters, commandlogentry.FieldResult, commandlogentry.FieldTags:
			values[i] = new([]byte)
		case commandlogentry.FieldSuccess:
			values[i] = new(sql.NullBool)
		case commandlogentry.FieldID, commandlogentry.FieldExecutionTimeMs:
			values[i] = new(sql.NullInt64)
		case commandlogentry.FieldInstanceID, commandlogentry.FieldCommandType, commandlogentry.FieldAction, commandlogentry.FieldToolName, commandlogentry.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case commandlogentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CommandLogEntry fields.
func (_m *CommandLogEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case commandlogentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case commandlogentry.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = new(string)
				*_m.InstanceID = value.String
			}
		case commandlogentry.FieldCommandType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command_type", values[i])
			} else if value.Valid {
				_m.CommandType = value.String
			}
		case commandlogentry.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case commandlogentry.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = new(string)
				*_m.ToolName = value.String
			}
		case commandlogentry.FieldParameters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parameters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Parameters); err != nil {
					return fmt.Errorf("unmarshal field parameters: %w", err)
				}
			}
		case commandlogentry.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case commandlogentry.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case commandlogentry.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case commandlogentry.FieldExecutionTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_time_ms", values[i])
			} else if value.Valid {
				_m.ExecutionTimeMs = new(int64)
				*_m.ExecutionTimeMs = value.Int64
			}
		case commandlogentry.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case commandlogentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CommandLogEntry.
// This includes values selected through modifiers, order, etc.
func (_m *CommandLogEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInstance queries the "instance" edge of the CommandLogEntry entity.
func (_m *CommandLogEntry) QueryInstance() *InstanceQuery {
	return NewCommandLogEntryClient(_m.config).QueryInstance(_m)
}

// Update returns a builder for updating this CommandLogEntry.
// Note that you need to call CommandLogEntry.Unwrap() before calling this method if this CommandLogEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CommandLogEntry) Update() *CommandLogEntryUpdateOne {
	return NewCommandLogEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CommandLogEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CommandLogEntry) Unwrap() *CommandLogEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CommandLogEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CommandLogEntry) String() string {
	var builder strings.Builder
	builder.WriteString("CommandLogEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.InstanceID; v != nil {
		builder.WriteString("instance_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("command_type=")
	builder.WriteString(_m.CommandType)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	if v := _m.ToolName; v != nil {
		builder.WriteString("tool_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("parameters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parameters))
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExecutionTimeMs; v != nil {
		builder.WriteString("execution_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CommandLogEntries is a parsable slice of CommandLogEntry.
type CommandLogEntries []*CommandLogEntry
