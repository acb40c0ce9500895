package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for advisory work-state snapshots.
// A recovering instance may load the latest checkpoint instead of replaying
// the full event stream; the stream stays canonical.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("instance_id").
			Immutable(),
		field.Int("sequence_num").
			Immutable().
			Comment("Event sequence this snapshot was taken at"),
		field.Enum("checkpoint_type").
			Values("manual", "automatic").
			Immutable(),
		field.Int("context_window_percent").
			Min(0).
			Max(100).
			Immutable(),
		field.JSON("work_state", map[string]interface{}{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("instance", Instance.Type).
			Ref("checkpoints").
			Field("instance_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instance_id", "sequence_num"),
		index.Fields("instance_id", "created_at"),
	}
}
