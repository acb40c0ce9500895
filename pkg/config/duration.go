package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Durations in supervisor.yaml use Go syntax ("30s", "15m", "24h").
// The custom unmarshalers below parse them into time.Duration fields;
// an absent field stays zero so merging keeps the built-in default.

func parseOptionalDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}

// UnmarshalYAML decodes spawn settings with duration-string support.
func (c *SpawnConfig) UnmarshalYAML(value *yaml.Node) error {
	type raw struct {
		MaxConcurrent  int    `yaml:"max_concurrent"`
		DefaultTimeout string `yaml:"default_timeout"`
		KillGrace      string `yaml:"kill_grace"`
		TempDir        string `yaml:"temp_dir"`
	}
	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}
	c.MaxConcurrent = r.MaxConcurrent
	c.TempDir = r.TempDir

	var err error
	if c.DefaultTimeout, err = parseOptionalDuration(r.DefaultTimeout); err != nil {
		return fmt.Errorf("spawn.default_timeout: %w", err)
	}
	if c.KillGrace, err = parseOptionalDuration(r.KillGrace); err != nil {
		return fmt.Errorf("spawn.kill_grace: %w", err)
	}
	return nil
}

// UnmarshalYAML decodes orchestrator settings with duration-string support.
func (c *OrchestratorConfig) UnmarshalYAML(value *yaml.Node) error {
	type raw struct {
		PhaseTimeout          string `yaml:"phase_timeout"`
		ValidationConcurrency int    `yaml:"validation_concurrency"`
	}
	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}
	c.ValidationConcurrency = r.ValidationConcurrency

	var err error
	if c.PhaseTimeout, err = parseOptionalDuration(r.PhaseTimeout); err != nil {
		return fmt.Errorf("orchestrator.phase_timeout: %w", err)
	}
	return nil
}

// UnmarshalYAML decodes health sweeper settings with duration-string support.
func (c *HealthConfig) UnmarshalYAML(value *yaml.Node) error {
	type raw struct {
		SweepInterval string `yaml:"sweep_interval"`
		StaleAfter    string `yaml:"stale_after"`
	}
	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}

	var err error
	if c.SweepInterval, err = parseOptionalDuration(r.SweepInterval); err != nil {
		return fmt.Errorf("health.sweep_interval: %w", err)
	}
	if c.StaleAfter, err = parseOptionalDuration(r.StaleAfter); err != nil {
		return fmt.Errorf("health.stale_after: %w", err)
	}
	return nil
}

// UnmarshalYAML decodes retention settings with duration-string support.
func (c *RetentionConfig) UnmarshalYAML(value *yaml.Node) error {
	type raw struct {
		SpawnRetention      string `yaml:"spawn_retention"`
		CommandLogRetention string `yaml:"command_log_retention"`
		CleanupInterval     string `yaml:"cleanup_interval"`
	}
	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}

	var err error
	if c.SpawnRetention, err = parseOptionalDuration(r.SpawnRetention); err != nil {
		return fmt.Errorf("retention.spawn_retention: %w", err)
	}
	if c.CommandLogRetention, err = parseOptionalDuration(r.CommandLogRetention); err != nil {
		return fmt.Errorf("retention.command_log_retention: %w", err)
	}
	if c.CleanupInterval, err = parseOptionalDuration(r.CleanupInterval); err != nil {
		return fmt.Errorf("retention.cleanup_interval: %w", err)
	}
	return nil
}
