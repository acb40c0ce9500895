package schema

import (
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Instance holds the schema definition for a supervisor session.
type Instance struct {
	ent.Schema
}

// Fields of the Instance.
func (Instance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("instance_id").
			Unique().
			Immutable().
			Match(regexp.MustCompile(`^[a-z0-9-]+-(PS|MS)-[a-z0-9]{6}$`)).
			Comment("Format: {project}-{PS|MS}-{6 lowercase hex}"),
		field.String("project").
			Immutable().
			Comment("Project slug the session operates on"),
		field.Enum("type").
			Values("PS", "MS").
			Immutable().
			Comment("PS = primary session, MS = maintenance session"),
		field.Enum("status").
			Values("active", "stale", "closed").
			Default("active"),
		field.Int("context_percent").
			Default(0).
			Min(0).
			Max(100).
			Comment("Caller-reported context window fill"),
		field.String("current_epic").
			Optional().
			Nillable(),
		field.String("host_machine").
			Optional().
			Nillable().
			Comment("For multi-host coordination"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_heartbeat").
			Default(time.Now).
			Comment("Staleness is derived from this, never stored ahead of it"),
		field.Time("closed_at").
			Optional().
			Nillable().
			Comment("Set iff status=closed"),
	}
}

// Edges of the Instance.
func (Instance) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("command_entries", CommandLogEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Instance.
func (Instance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("project"),

		// Listing order and stale sweeps
		index.Fields("project", "last_heartbeat"),
		index.Fields("status", "last_heartbeat"),
	}
}
