package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SecretAccessLog holds the schema definition for the immutable secret audit trail.
// One row per get/set/delete attempt, successful or not. secret_id is a plain
// field, not an edge: audit rows must survive deletion of the secret itself.
type SecretAccessLog struct {
	ent.Schema
}

// Fields of the SecretAccessLog.
func (SecretAccessLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("secret_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Nil when the key_path did not resolve"),
		field.String("key_path").
			Immutable().
			Comment("Recorded even for failed lookups"),
		field.String("accessed_by").
			Immutable().
			Comment("Instance id or 'anonymous'"),
		field.Enum("access_type").
			Values("get", "set", "delete", "list").
			Immutable(),
		field.Bool("success").
			Immutable(),
		field.String("error").
			Optional().
			Nillable().
			Immutable(),
		field.Time("accessed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SecretAccessLog.
func (SecretAccessLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key_path", "accessed_at"),
		index.Fields("accessed_by"),
	}
}
