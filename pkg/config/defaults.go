package config

import "time"

// Built-in model catalog. Prices are USD per token and exist for cost
// accounting only; routing never compares absolute prices across vendors
// except through the tier labels.
func builtinModels() []ModelConfig {
	return []ModelConfig{
		{Service: "claude", Model: "claude-opus-4", Tier: "top", PricePerToken: 0.000075, ContextTokens: 200_000},
		{Service: "claude", Model: "claude-sonnet-4", Tier: "mid", PricePerToken: 0.000015, ContextTokens: 200_000},
		{Service: "gemini", Model: "gemini-2.5-pro", Tier: "mid", PricePerToken: 0.0000125, ContextTokens: 1_000_000},
		{Service: "gemini", Model: "gemini-2.5-flash", Tier: "flash", PricePerToken: 0.0000025, ContextTokens: 1_000_000},
		{Service: "codex", Model: "gpt-5-codex", Tier: "mid", PricePerToken: 0.00001, ContextTokens: 400_000},
		{Service: "codex", Model: "gpt-5-codex-mini", Tier: "flash", PricePerToken: 0.000002, ContextTokens: 400_000},
	}
}

// defaultComplexKeywords force top-tier routing when found in a task
// description.
func defaultComplexKeywords() []string {
	return []string{"architecture", "complex", "critical", "production"}
}

// DefaultRouterConfig returns the built-in router defaults.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		Models:                 builtinModels(),
		ComplexKeywords:        defaultComplexKeywords(),
		DefaultEstimatedTokens: 50_000,
	}
}

// DefaultAdapters returns the built-in CLI adapter configuration.
func DefaultAdapters() map[string]*AdapterConfig {
	return map[string]*AdapterConfig{
		"claude": {Executable: "claude", ExtraArgs: []string{"-p", "--output-format", "text"}},
		"gemini": {Executable: "gemini", ExtraArgs: []string{"--yolo"}},
		"codex":  {Executable: "codex", ExtraArgs: []string{"exec", "--full-auto"}},
	}
}

// DefaultSpawnConfig returns the built-in spawn engine defaults.
func DefaultSpawnConfig() *SpawnConfig {
	return &SpawnConfig{
		MaxConcurrent:  8,
		DefaultTimeout: 30 * time.Minute,
		KillGrace:      10 * time.Second,
	}
}

// DefaultOrchestratorConfig returns the built-in orchestrator defaults.
func DefaultOrchestratorConfig() *OrchestratorConfig {
	return &OrchestratorConfig{
		PhaseTimeout:          30 * time.Minute,
		ValidationConcurrency: 4,
	}
}

// DefaultHealthConfig returns the built-in health sweeper defaults.
func DefaultHealthConfig() *HealthConfig {
	return &HealthConfig{
		SweepInterval: 30 * time.Second,
		StaleAfter:    120 * time.Second,
	}
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SpawnRetention:      7 * 24 * time.Hour,
		CommandLogRetention: 30 * 24 * time.Hour,
		CleanupInterval:     time.Hour,
	}
}
