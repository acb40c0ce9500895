package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CommandLogEntry holds the schema definition for the append-only command audit log.
type CommandLogEntry struct {
	ent.Schema
}

// Fields of the CommandLogEntry.
func (CommandLogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("instance_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Nil for requests without a supervisor session (anonymous sink)"),
		field.String("command_type").
			Immutable().
			Comment("Coarse grouping, e.g. 'mcp_request', 'spawn', 'epic'"),
		field.String("action").
			Immutable(),
		field.String("tool_name").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("parameters", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Bool("success").
			Immutable(),
		field.String("error_message").
			Optional().
			Nillable().
			Immutable(),
		field.Int64("execution_time_ms").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("tags", []string{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CommandLogEntry.
func (CommandLogEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("instance", Instance.Type).
			Ref("command_entries").
			Field("instance_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the CommandLogEntry.
func (CommandLogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instance_id", "created_at"),
		index.Fields("command_type"),
		index.Fields("success", "created_at"),
	}
}
