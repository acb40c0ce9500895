// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxisworks/supervisor/ent/instance"
)

// Instance is the model entity for the Instance schema.
type Instance struct {
	config `json:"-"`
	// ID of the ent.
	// Format: {project}-{PS|MS}-{6 lowercase hex}
	ID string `json:"id,omitempty"`
	// Project slug the session operates on
	Project string `json:"project,omitempty"`
	// PS = primary session, MS = maintenance session
	Type instance.Type `json:"type,omitempty"`
	// Status holds the value of the "status" field.
	Status instance.Status `json:"status,omitempty"`
	// Caller-reported context window fill
	ContextPercent int `json:"context_percent,omitempty"`
	// CurrentEpic holds the value of the "current_epic" field.
	CurrentEpic *string `json:"current_epic,omitempty"`
	// For multi-host coordination
	HostMachine *string `json:"host_machine,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Staleness is derived from this, never stored ahead of it
	LastHeartbeat time.Time `json:"last_heartbeat,omitempty"`
	// Set iff status=closed
	ClosedAt *time.Time `json:"closed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InstanceQuery when eager-loading is set.
	Edges        InstanceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InstanceEdges holds the relations/edges for other nodes in the graph.
type InstanceEdges struct {
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// CommandEntries holds the value of the command_entries edge.
	CommandEntries []*CommandLogEntry `json:"command_entries,omitempty"`
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*Checkpoint `json:"checkpoints,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e InstanceEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// CommandEntriesOrErr returns the CommandEntries value or an error if the edge
// was not loaded in eager-loading.
func (e InstanceEdges) CommandEntriesOrErr() ([]*CommandLogEntry, error) {
	if e.loadedTypes[1] {
		return e.CommandEntries, nil
	}
	return nil, &NotLoadedError{edge: "command_entries"}
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e InstanceEdges) CheckpointsOrErr() ([]*Checkpoint, error) {
	if e.loadedTypes[2] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Instance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case instance.FieldContextPercent:
			values[i] = new(sql.NullInt64)
		case instance.FieldID, instance.FieldProject, instance.FieldType, instance.FieldStatus, instance.FieldCurrentEpic, instance.FieldHostMachine:
			values[i] = new(sql.NullString)
		case instance.FieldCreatedAt, instance.FieldLastHeartbeat, instance.FieldClosedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Instance fields.
func (_m *Instance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case instance.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case instance.FieldProject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project", values[i])
			} else if value.Valid {
				_m.Project = value.String
			}
		case instance.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = instance.Type(value.String)
			}
		case instance.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = instance.Status(value.String)
			}
		case instance.FieldContextPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field context_percent", values[i])
			} else if value.Valid {
				_m.ContextPercent = int(value.Int64)
			}
		case instance.FieldCurrentEpic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_epic", values[i])
			} else if value.Valid {
				_m.CurrentEpic = new(string)
				*_m.CurrentEpic = value.String
			}
		case instance.FieldHostMachine:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field host_machine", values[i])
			} else if value.Valid {
				_m.HostMachine = new(string)
				*_m.HostMachine = value.String
			}
		case instance.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case instance.FieldLastHeartbeat:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat", values[i])
			} else if value.Valid {
				_m.LastHeartbeat = value.Time
			}
		case instance.FieldClosedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field closed_at", values[i])
			} else if value.Valid {
				_m.ClosedAt = new(time.Time)
				*_m.ClosedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Instance.
// This includes values selected through modifiers, order, etc.
func (_m *Instance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the Instance entity.
func (_m *Instance) QueryEvents() *EventQuery {
	return NewInstanceClient(_m.config).QueryEvents(_m)
}

// QueryCommandEntries queries the "command_entries" edge of the Instance entity.
func (_m *Instance) QueryCommandEntries() *CommandLogEntryQuery {
	return NewInstanceClient(_m.config).QueryCommandEntries(_m)
}

// QueryCheckpoints queries the "checkpoints" edge of the Instance entity.
func (_m *Instance) QueryCheckpoints() *CheckpointQuery {
	return NewInstanceClient(_m.config).QueryCheckpoints(_m)
}

// Update returns a builder for updating this Instance.
// Note that you need to call Instance.Unwrap() before calling this method if this Instance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Instance) Update() *InstanceUpdateOne {
	return NewInstanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Instance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Instance) Unwrap() *Instance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Instance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Instance) String() string {
	var builder strings.Builder
	builder.WriteString("Instance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project=")
	builder.WriteString(_m.Project)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("context_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextPercent))
	builder.WriteString(", ")
	if v := _m.CurrentEpic; v != nil {
		builder.WriteString("current_epic=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HostMachine; v != nil {
		builder.WriteString("host_machine=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_heartbeat=")
	builder.WriteString(_m.LastHeartbeat.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ClosedAt; v != nil {
		builder.WriteString("closed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Instances is a parsable slice of Instance.
type Instances []*Instance
