package config

import (
	"time"
)

// SupervisorYAMLConfig represents the complete supervisor.yaml file structure.
type SupervisorYAMLConfig struct {
	Projects     []*ProjectConfig          `yaml:"projects"`
	Router       *RouterConfig             `yaml:"router"`
	Adapters     map[string]*AdapterConfig `yaml:"adapters"`
	Spawn        *SpawnConfig              `yaml:"spawn"`
	Orchestrator *OrchestratorConfig       `yaml:"orchestrator"`
	Health       *HealthConfig             `yaml:"health"`
	Retention    *RetentionConfig          `yaml:"retention"`
	TemplatesDir string                    `yaml:"templates_dir,omitempty"`
}

// ProjectConfig is one registered project endpoint.
type ProjectConfig struct {
	Name        string   `yaml:"name"`
	DisplayName string   `yaml:"display_name,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Path        string   `yaml:"path"`
	Tools       []string `yaml:"tools,omitempty"`
	Enabled     *bool    `yaml:"enabled,omitempty"` // nil means enabled
}

// IsEnabled reports whether the project endpoint should be hosted.
func (p *ProjectConfig) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// ModelConfig describes one routable backend model.
type ModelConfig struct {
	Service       string  `yaml:"service"` // claude | gemini | codex
	Model         string  `yaml:"model"`
	Tier          string  `yaml:"tier"` // flash | mid | top
	PricePerToken float64 `yaml:"price_per_token"`
	ContextTokens int     `yaml:"context_tokens"`
}

// RouterConfig holds the deterministic routing policy inputs.
type RouterConfig struct {
	// Models is the routable catalog, merged over the built-in one.
	Models []ModelConfig `yaml:"models,omitempty"`

	// ComplexKeywords force the top-tier service when present in a task
	// description.
	ComplexKeywords []string `yaml:"complex_keywords,omitempty"`

	// DefaultEstimatedTokens is used for cost quoting when the caller
	// provides no estimate.
	DefaultEstimatedTokens int `yaml:"default_estimated_tokens,omitempty"`
}

// AdapterConfig configures one backend CLI.
type AdapterConfig struct {
	// Executable is the CLI binary name or absolute path.
	Executable string `yaml:"executable"`

	// ExtraArgs are appended to every invocation.
	ExtraArgs []string `yaml:"extra_args,omitempty"`

	// QuotaProbeArgs, when set, are run to probe remaining quota.
	QuotaProbeArgs []string `yaml:"quota_probe_args,omitempty"`
}

// SpawnConfig bounds subagent process execution.
type SpawnConfig struct {
	// MaxConcurrent is the global cap on concurrent external CLI processes.
	MaxConcurrent int `yaml:"max_concurrent"`

	// DefaultTimeout applies when the caller supplies no deadline.
	DefaultTimeout time.Duration `yaml:"default_timeout"`

	// KillGrace is the SIGTERM → SIGKILL escalation window.
	KillGrace time.Duration `yaml:"kill_grace"`

	// TempDir overrides os.TempDir for instruction/output files.
	TempDir string `yaml:"temp_dir,omitempty"`
}

// OrchestratorConfig bounds epic execution.
type OrchestratorConfig struct {
	// PhaseTimeout is the per-phase deadline for implementation and
	// validation spawns.
	PhaseTimeout time.Duration `yaml:"phase_timeout"`

	// ValidationConcurrency caps concurrent validation spawns per epic.
	ValidationConcurrency int `yaml:"validation_concurrency"`
}

// HealthConfig controls the stale-instance and stalled-spawn sweeper.
type HealthConfig struct {
	// SweepInterval is how often the sweeper runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// StaleAfter is the heartbeat silence that marks an instance stale.
	StaleAfter time.Duration `yaml:"stale_after"`
}

// RetentionConfig bounds how long finished work stays queryable.
type RetentionConfig struct {
	// SpawnRetention is how long terminal spawn rows are kept after
	// they end.
	SpawnRetention time.Duration `yaml:"spawn_retention"`

	// CommandLogRetention is how long command audit rows are kept.
	CommandLogRetention time.Duration `yaml:"command_log_retention"`

	// CleanupInterval is how often the retention pass runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// Config is the fully resolved runtime configuration. Immutable after
// Initialize; reload builds a fresh project snapshot instead of mutating.
type Config struct {
	configDir string

	Router       *RouterConfig
	Adapters     map[string]*AdapterConfig
	Spawn        *SpawnConfig
	Orchestrator *OrchestratorConfig
	Health       *HealthConfig
	Retention    *RetentionConfig
	TemplatesDir string

	// Projects is the project snapshot built at load time. The multiplexer
	// holds its own swappable copy.
	Projects *ProjectSnapshot
}

// ConfigDir returns the directory configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Stats summarizes loaded configuration for startup logging.
type Stats struct {
	Projects int
	Models   int
	Adapters int
}

// Stats returns counts of loaded configuration components.
func (c *Config) Stats() Stats {
	return Stats{
		Projects: c.Projects.Len(),
		Models:   len(c.Router.Models),
		Adapters: len(c.Adapters),
	}
}
