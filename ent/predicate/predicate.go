// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActiveSpawn is the predicate function for activespawn builders.
type ActiveSpawn func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// CommandLogEntry is the predicate function for commandlogentry builders.
type CommandLogEntry func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Instance is the predicate function for instance builders.
type Instance func(*sql.Selector)

// Secret is the predicate function for secret builders.
type Secret func(*sql.Selector)

// SecretAccessLog is the predicate function for secretaccesslog builders.
type SecretAccessLog func(*sql.Selector)
