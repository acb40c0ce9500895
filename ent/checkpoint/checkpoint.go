// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the checkpoint type in the database.
	Label = "checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "checkpoint_id"
	// FieldInstanceID holds the string denoting the instance_id field in the database.
	FieldInstanceID = "instance_id"
	// FieldSequenceNum holds the string denoting the sequence_num field in the database.
	FieldSequenceNum = "sequence_num"
	// FieldCheckpointType holds the string denoting the checkpoint_type field in the database.
	FieldCheckpointType = "checkpoint_type"
	// FieldContextWindowPercent holds the string denoting the context_window_percent field in the database.
	FieldContextWindowPercent = "context_window_percent"
	// FieldWorkState holds the string denoting the work_state field in the database.
	FieldWorkState = "work_state"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeInstance holds the string denoting the instance edge name in mutations.
	EdgeInstance = "instance"
	// InstanceFieldID holds the string denoting the ID field of the Instance.
	InstanceFieldID = "instance_id"
	// Table holds the table name of the checkpoint in the database.
	Table = "checkpoints"
	// InstanceTable is the table that holds the instance relation/edge.
	InstanceTable = "checkpoints"
	// InstanceInverseTable is the table name for the Instance entity.
	// It exists in this package in order to avoid circular dependency with the "instance" package.
	InstanceInverseTable = "instances"
	// InstanceColumn is the table column denoting the instance relation/edge.
	InstanceColumn = "instance_id"
)

// Columns holds all SQL columns for checkpoint fields.
var Columns = []string{
	FieldID,
	FieldInstanceID,
	FieldSequenceNum,
	FieldCheckpointType,
	FieldContextWindowPercent,
	FieldWorkState,
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
	// ContextWindowPercentValidator is a validator for the "context_window_percent" field. It is called by the builders before save.
	ContextWindowPercentValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// CheckpointType defines the type for the "checkpoint_type" enum field.
type CheckpointType string

// CheckpointType values.
const (
	CheckpointTypeManual    CheckpointType = "manual"
	CheckpointTypeAutomatic CheckpointType = "automatic"
)

func (ct CheckpointType) String() string {
	return string(ct)
}

// CheckpointTypeValidator is a validator for the "checkpoint_type" field enum values. It is called by the builders before save.
func CheckpointTypeValidator(ct CheckpointType) error {
	switch ct {
	case CheckpointTypeManual, CheckpointTypeAutomatic:
		return nil
	default:
		return fmt.Errorf("checkpoint: invalid enum value for checkpoint_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the Checkpoint queries.
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

// ByCheckpointType orders the results by the checkpoint_type field.
func ByCheckpointType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointType, opts...).ToFunc()
}

// ByContextWindowPercent orders the results by the context_window_percent field.
func ByContextWindowPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextWindowPercent, opts...).ToFunc()
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
