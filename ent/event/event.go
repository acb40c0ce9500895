// Code generated by ent, DO NOT EDIT.

package event

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldInstanceID holds the string denoting the instance_id field in the database.
	FieldInstanceID = "instance_id"
	// FieldSequenceNum holds the string denoting the sequence_num field in the database.
	FieldSequenceNum = "sequence_num"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldEventData holds the string denoting the event_data field in the database.
	FieldEventData = "event_data"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeInstance holds the string denoting the instance edge name in mutations.
	EdgeInstance = "instance"
	// InstanceFieldID holds the string denoting the ID field of the Instance.
	InstanceFieldID = "instance_id"
	// Table holds the table name of the event in the database.
	Table = "events"
	// InstanceTable is the table that holds the instance relation/edge.
	InstanceTable = "events"
	// InstanceInverseTable is the table name for the Instance entity.
	// It exists in this package in order to avoid circular dependency with the "instance" package.
	InstanceInverseTable = "instances"
	// InstanceColumn is the table column denoting the instance relation/edge.
	InstanceColumn = "instance_id"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldInstanceID,
	FieldSequenceNum,
	FieldEventType,
	FieldEventData,
	FieldMetadata,
	FieldTimestamp,
	FieldCreatedAt,
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
	// SequenceNumValidator is a validator for the "sequence_num" field. It is called by the builders before save.
	SequenceNumValidator func(int) error
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeInstanceRegistered   EventType = "instance_registered"
	EventTypeInstanceHeartbeat    EventType = "instance_heartbeat"
	EventTypeInstanceStale        EventType = "instance_stale"
	EventTypeInstanceClosed       EventType = "instance_closed"
	EventTypeEpicStarted          EventType = "epic_started"
	EventTypeEpicPlanned          EventType = "epic_planned"
	EventTypeEpicCompleted        EventType = "epic_completed"
	EventTypeEpicFailed           EventType = "epic_failed"
	EventTypeTestStarted          EventType = "test_started"
	EventTypeTestPassed           EventType = "test_passed"
	EventTypeTestFailed           EventType = "test_failed"
	EventTypeValidationPassed     EventType = "validation_passed"
	EventTypeValidationFailed     EventType = "validation_failed"
	EventTypeCommitCreated        EventType = "commit_created"
	EventTypePrCreated            EventType = "pr_created"
	EventTypePrMerged             EventType = "pr_merged"
	EventTypeDeploymentStarted    EventType = "deployment_started"
	EventTypeDeploymentCompleted  EventType = "deployment_completed"
	EventTypeDeploymentFailed     EventType = "deployment_failed"
	EventTypeContextWindowUpdated EventType = "context_window_updated"
	EventTypeCheckpointCreated    EventType = "checkpoint_created"
	EventTypeCheckpointLoaded     EventType = "checkpoint_loaded"
	EventTypeFeatureRequested     EventType = "feature_requested"
	EventTypeTaskSpawned          EventType = "task_spawned"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeInstanceRegistered, EventTypeInstanceHeartbeat, EventTypeInstanceStale, EventTypeInstanceClosed, EventTypeEpicStarted, EventTypeEpicPlanned, EventTypeEpicCompleted, EventTypeEpicFailed, EventTypeTestStarted, EventTypeTestPassed, EventTypeTestFailed, EventTypeValidationPassed, EventTypeValidationFailed, EventTypeCommitCreated, EventTypePrCreated, EventTypePrMerged, EventTypeDeploymentStarted, EventTypeDeploymentCompleted, EventTypeDeploymentFailed, EventTypeContextWindowUpdated, EventTypeCheckpointCreated, EventTypeCheckpointLoaded, EventTypeFeatureRequested, EventTypeTaskSpawned:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for event_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInstanceID orders the results by the instance_id field.
func ByInstanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstanceID, opts...).ToFunc()
}

// BySequenceNum orders the results by the sequence_num field.
func BySequenceNum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceNum, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInstanceField orders the results by instance field.
func ByInstanceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInstanceStep(), sql.OrderByField(field, opts...))
	}
}
func newInstanceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InstanceInverseTable, InstanceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InstanceTable, InstanceColumn),
	)
}
