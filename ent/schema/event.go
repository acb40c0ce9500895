package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the append-only per-instance event log.
// The event stream is canonical session state; checkpoints are advisory.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("instance_id").
			Immutable(),
		field.Int("sequence_num").
			Min(1).
			Immutable().
			Comment("Dense per-instance ordering; gaps only via explicit truncation"),
		field.Enum("event_type").
			Values(
				"instance_registered",
				"instance_heartbeat",
				"instance_stale",
				"instance_closed",
				"epic_started",
				"epic_planned",
				"epic_completed",
				"epic_failed",
				"test_started",
				"test_passed",
				"test_failed",
				"validation_passed",
				"validation_failed",
				"commit_created",
				"pr_created",
				"pr_merged",
				"deployment_started",
				"deployment_completed",
				"deployment_failed",
				"context_window_updated",
				"checkpoint_created",
				"checkpoint_loaded",
				"feature_requested",
				"task_spawned",
			).
			Immutable(),
		field.JSON("event_data", map[string]interface{}{}).
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("instance", Instance.Type).
			Ref("events").
			Field("instance_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Dense ordering guarantee
		index.Fields("instance_id", "sequence_num").
			Unique(),
		index.Fields("event_type"),
		index.Fields("created_at"),
	}
}
