package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActiveSpawn holds the schema definition for subagent process records.
// Spawns reference their owning instance by plain id (no edge) — they can
// outlive the session that started them, and the health sweeper marks the
// leftovers abandoned rather than deleting them.
type ActiveSpawn struct {
	ent.Schema
}

// Fields of the ActiveSpawn.
func (ActiveSpawn) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable().
			Comment("Format: {epoch-ms}-{rand}"),
		field.String("instance_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Owning supervisor session, if any"),
		field.String("project_path").
			Immutable().
			Comment("Always equals the cwd of the launched CLI process"),
		field.String("project_name").
			Immutable(),
		field.String("task_type").
			Immutable(),
		field.Text("description").
			Immutable(),
		field.JSON("context", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("service").
			Immutable().
			Comment("claude | gemini | codex"),
		field.String("model").
			Immutable(),
		field.Enum("status").
			Values("running", "completed", "failed", "stalled", "abandoned").
			Default("running"),
		field.String("instructions_path").
			Immutable(),
		field.String("output_path").
			Immutable(),
		field.Int("exit_code").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("host_machine").
			Optional().
			Nillable().
			Comment("For startup orphan recovery"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("deadline_at").
			Optional().
			Nillable().
			Comment("Stall detection threshold"),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ActiveSpawn.
func (ActiveSpawn) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("instance_id"),
		index.Fields("status", "started_at"),
		index.Fields("status", "deadline_at"),
	}
}
