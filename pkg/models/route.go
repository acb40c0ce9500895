package models

// RouteRequest is the router input derived from spawn parameters.
type RouteRequest struct {
	TaskType        TaskType       `json:"task_type"`
	Description     string         `json:"description"`
	ComplexityHint  ComplexityHint `json:"complexity_hint,omitempty"`
	EstimatedTokens int            `json:"estimated_tokens,omitempty"`
}

// RouteDecision is the router output. EstimatedCostUSD is for accounting
// only and never feeds back into routing.
type RouteDecision struct {
	Service          string  `json:"service"`
	Model            string  `json:"model"`
	EstimatedCostUSD float64 `json:"estimated_cost_usd"`
	Reasoning        string  `json:"reasoning"`
}
