package models

import (
	"github.com/praxisworks/supervisor/ent"
)

// RegisterInstanceRequest contains fields for registering a supervisor session.
type RegisterInstanceRequest struct {
	Project        string         `json:"project"`
	Type           string         `json:"type"` // PS or MS
	HostMachine    string         `json:"host_machine,omitempty"`
	InitialContext map[string]any `json:"initial_context,omitempty"`
}

// HeartbeatRequest contains fields for an instance heartbeat.
type HeartbeatRequest struct {
	InstanceID     string `json:"instance_id"`
	ContextPercent int    `json:"context_percent"`
	CurrentEpic    string `json:"current_epic,omitempty"`
}

// InstanceListItem is a listing row with derived staleness fields.
type InstanceListItem struct {
	*ent.Instance
	AgeSeconds float64 `json:"age_seconds"`
	Stale      bool    `json:"stale"`
}

// InstanceFilters contains filtering options for listing instances.
type InstanceFilters struct {
	Project    string `json:"project,omitempty"`
	ActiveOnly bool   `json:"active_only,omitempty"`
}

// LookupOutcome discriminates the result of a prefix lookup.
type LookupOutcome string

// Lookup outcomes. A prefix that matches more than one id is never
// silently resolved.
const (
	LookupExact    LookupOutcome = "exact"
	LookupMultiple LookupOutcome = "multiple"
	LookupNotFound LookupOutcome = "not_found"
)

// InstanceLookup is the result of GetDetails with an id or suffix prefix.
type InstanceLookup struct {
	Outcome    LookupOutcome   `json:"outcome"`
	Instance   *ent.Instance   `json:"instance,omitempty"`
	Candidates []*ent.Instance `json:"candidates,omitempty"`
}
