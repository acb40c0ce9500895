package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Secret holds the schema definition for encrypted key/value secrets.
// Values are AES-256-GCM ciphertext (nonce || ciphertext || tag) and are
// only ever decrypted in memory on get.
type Secret struct {
	ent.Schema
}

// Fields of the Secret.
func (Secret) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("secret_id").
			Unique().
			Immutable(),
		field.String("key_path").
			Unique().
			Comment("Hierarchical path: segment/segment/..."),
		field.Bytes("encrypted_value").
			Sensitive(),
		field.String("encryption_key_id").
			Comment("Identifies the master key used, for rotation"),
		field.String("secret_type").
			Optional().
			Nillable(),
		field.String("description").
			Optional().
			Nillable(),
		field.Int("access_count").
			Default(0),
		field.Time("last_accessed_at").
			Optional().
			Nillable(),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Secret.
func (Secret) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key_path"),
		index.Fields("secret_type"),
		index.Fields("expires_at").
			Annotations(entsql.IndexWhere("expires_at IS NOT NULL")),
	}
}
