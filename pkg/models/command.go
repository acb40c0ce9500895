package models

// CommandEntry contains fields for appending a command audit row.
// InstanceID is carried separately by the service call; entries without
// one land in the anonymous sink.
type CommandEntry struct {
	CommandType     string         `json:"command_type"`
	Action          string         `json:"action"`
	ToolName        string         `json:"tool_name,omitempty"`
	Parameters      map[string]any `json:"parameters,omitempty"`
	Result          map[string]any `json:"result,omitempty"`
	Success         bool           `json:"success"`
	ErrorMessage    string         `json:"error_message,omitempty"`
	ExecutionTimeMs int64          `json:"execution_time_ms,omitempty"`
	Tags            []string       `json:"tags,omitempty"`
}

// CreateCheckpointRequest contains fields for storing a work-state snapshot.
type CreateCheckpointRequest struct {
	InstanceID           string         `json:"instance_id"`
	CheckpointType       string         `json:"checkpoint_type"` // manual or automatic
	ContextWindowPercent int            `json:"context_window_percent"`
	WorkState            map[string]any `json:"work_state"`
}
