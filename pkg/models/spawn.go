package models

// TaskType is the closed set of subagent task categories.
type TaskType string

// Task types.
const (
	TaskResearch       TaskType = "research"
	TaskPlanning       TaskType = "planning"
	TaskImplementation TaskType = "implementation"
	TaskTesting        TaskType = "testing"
	TaskValidation     TaskType = "validation"
	TaskDocumentation  TaskType = "documentation"
	TaskFix            TaskType = "fix"
	TaskDeployment     TaskType = "deployment"
	TaskReview         TaskType = "review"
	TaskSecurity       TaskType = "security"
	TaskIntegration    TaskType = "integration"
)

// ValidTaskType reports whether t is a known task type.
func ValidTaskType(t TaskType) bool {
	switch t {
	case TaskResearch, TaskPlanning, TaskImplementation, TaskTesting,
		TaskValidation, TaskDocumentation, TaskFix, TaskDeployment,
		TaskReview, TaskSecurity, TaskIntegration:
		return true
	}
	return false
}

// ComplexityHint biases routing toward higher-tier models.
type ComplexityHint string

// Complexity hints.
const (
	ComplexitySimple   ComplexityHint = "simple"
	ComplexityModerate ComplexityHint = "moderate"
	ComplexityComplex  ComplexityHint = "complex"
)

// SpawnParams are the caller-supplied inputs to the spawn engine.
type SpawnParams struct {
	TaskType        TaskType       `json:"task_type"`
	Description     string         `json:"description"`
	Context         map[string]any `json:"context,omitempty"`
	ComplexityHint  ComplexityHint `json:"complexity_hint,omitempty"`
	EstimatedTokens int            `json:"estimated_tokens,omitempty"`
}

// SpawnResult is the structured outcome of one subagent run.
// Error is set alongside Success=false; the engine never panics past its
// caller and never retries on its own.
type SpawnResult struct {
	Success      bool      `json:"success"`
	AgentID      string    `json:"agent_id,omitempty"`
	ServiceUsed  string    `json:"service_used,omitempty"`
	ModelUsed    string    `json:"model_used,omitempty"`
	DurationMs   int64     `json:"duration_ms"`
	CostEstimate float64   `json:"cost_estimate"`
	OutputPath   string    `json:"output_path,omitempty"`
	ErrorKind    ErrorKind `json:"error_kind,omitempty"`
	Error        string    `json:"error,omitempty"`
}
