package models

import (
	"github.com/praxisworks/supervisor/ent"
)

// LogEventRequest contains fields for appending an event to an instance stream.
// SequenceNum is assigned by the service, never by the caller.
type LogEventRequest struct {
	InstanceID string         `json:"instance_id"`
	EventType  string         `json:"event_type"`
	EventData  map[string]any `json:"event_data"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// EventsResponse contains an ordered slice of an instance's events.
type EventsResponse struct {
	Events  []*ent.Event `json:"events"`
	NextSeq int          `json:"next_seq"`
}
