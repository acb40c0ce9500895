// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/praxisworks/supervisor/ent/activespawn"
	"github.com/praxisworks/supervisor/ent/checkpoint"
	"github.com/praxisworks/supervisor/ent/commandlogentry"
	"github.com/praxisworks/supervisor/ent/event"
	"github.com/praxisworks/supervisor/ent/instance"
	"github.com/praxisworks/supervisor/ent/schema"
	"github.com/praxisworks/supervisor/ent/secret"
	"github.com/praxisworks/supervisor/ent/secretaccesslog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activespawnFields := schema.ActiveSpawn{}.Fields()
	_ = activespawnFields
	// activespawnDescStartedAt is the schema descriptor for started_at field.
	activespawnDescStartedAt := activespawnFields[15].Descriptor()
	// activespawn.DefaultStartedAt holds the default value on creation for the started_at field.
	activespawn.DefaultStartedAt = activespawnDescStartedAt.Default.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescContextWindowPercent is the schema descriptor for context_window_percent field.
	checkpointDescContextWindowPercent := checkpointFields[4].Descriptor()
	// checkpoint.ContextWindowPercentValidator is a validator for the "context_window_percent" field. It is called by the builders before save.
	checkpoint.ContextWindowPercentValidator = func() func(int) error {
		validators := checkpointDescContextWindowPercent.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(context_window_percent int) error {
			for _, fn := range fns {
				if err := fn(context_window_percent); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[6].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	commandlogentryFields := schema.CommandLogEntry{}.Fields()
	_ = commandlogentryFields
	// commandlogentryDescCreatedAt is the schema descriptor for created_at field.
	commandlogentryDescCreatedAt := commandlogentryFields[10].Descriptor()
	// commandlogentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	commandlogentry.DefaultCreatedAt = commandlogentryDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescSequenceNum is the schema descriptor for sequence_num field.
	eventDescSequenceNum := eventFields[2].Descriptor()
	// event.SequenceNumValidator is a validator for the "sequence_num" field. It is called by the builders before save.
	event.SequenceNumValidator = eventDescSequenceNum.Validators[0].(func(int) error)
	// eventDescTimestamp is the schema descriptor for timestamp field.
	eventDescTimestamp := eventFields[6].Descriptor()
	// event.DefaultTimestamp holds the default value on creation for the timestamp field.
	event.DefaultTimestamp = eventDescTimestamp.Default.(func() time.Time)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[7].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	instanceFields := schema.Instance{}.Fields()
	_ = instanceFields
	// instanceDescContextPercent is the schema descriptor for context_percent field.
	instanceDescContextPercent := instanceFields[4].Descriptor()
	// instance.DefaultContextPercent holds the default value on creation for the context_percent field.
	instance.DefaultContextPercent = instanceDescContextPercent.Default.(int)
	// instance.ContextPercentValidator is a validator for the "context_percent" field. It is called by the builders before save.
	instance.ContextPercentValidator = func() func(int) error {
		validators := instanceDescContextPercent.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(context_percent int) error {
			for _, fn := range fns {
				if err := fn(context_percent); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// instanceDescCreatedAt is the schema descriptor for created_at field.
	instanceDescCreatedAt := instanceFields[7].Descriptor()
	// instance.DefaultCreatedAt holds the default value on creation for the created_at field.
	instance.DefaultCreatedAt = instanceDescCreatedAt.Default.(func() time.Time)
	// instanceDescLastHeartbeat is the schema descriptor for last_heartbeat field.
	instanceDescLastHeartbeat := instanceFields[8].Descriptor()
	// instance.DefaultLastHeartbeat holds the default value on creation for the last_heartbeat field.
	instance.DefaultLastHeartbeat = instanceDescLastHeartbeat.Default.(func() time.Time)
	// instanceDescID is the schema descriptor for id field.
	instanceDescID := instanceFields[0].Descriptor()
	// instance.IDValidator is a validator for the "id" field. It is called by the builders before save.
	instance.IDValidator = instanceDescID.Validators[0].(func(string) error)
	secretFields := schema.Secret{}.Fields()
	_ = secretFields
	// secretDescAccessCount is the schema descriptor for access_count field.
	secretDescAccessCount := secretFields[6].Descriptor()
	// secret.DefaultAccessCount holds the default value on creation for the access_count field.
	secret.DefaultAccessCount = secretDescAccessCount.Default.(int)
	// secretDescCreatedAt is the schema descriptor for created_at field.
	secretDescCreatedAt := secretFields[10].Descriptor()
	// secret.DefaultCreatedAt holds the default value on creation for the created_at field.
	secret.DefaultCreatedAt = secretDescCreatedAt.Default.(func() time.Time)
	// secretDescUpdatedAt is the schema descriptor for updated_at field.
	secretDescUpdatedAt := secretFields[11].Descriptor()
	// secret.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	secret.DefaultUpdatedAt = secretDescUpdatedAt.Default.(func() time.Time)
	// secret.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	secret.UpdateDefaultUpdatedAt = secretDescUpdatedAt.UpdateDefault.(func() time.Time)
	secretaccesslogFields := schema.SecretAccessLog{}.Fields()
	_ = secretaccesslogFields
	// secretaccesslogDescAccessedAt is the schema descriptor for accessed_at field.
	secretaccesslogDescAccessedAt := secretaccesslogFields[6].Descriptor()
	// secretaccesslog.DefaultAccessedAt holds the default value on creation for the accessed_at field.
	secretaccesslog.DefaultAccessedAt = secretaccesslogDescAccessedAt.Default.(func() time.Time)
}
