package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load supervisor.yaml from configDir
//  2. Expand environment variables
//  3. Merge user values over built-in defaults
//  4. Build the project snapshot
//  5. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"projects", stats.Projects,
		"models", stats.Models,
		"adapters", stats.Adapters)

	return cfg, nil
}

// Reload re-reads the configuration directory and returns a fresh project
// snapshot. Router/adapter/limit settings are process-lifetime; only the
// project set is hot-swappable.
func Reload(ctx context.Context, configDir string) (*ProjectSnapshot, error) {
	cfg, err := Initialize(ctx, configDir)
	if err != nil {
		return nil, err
	}
	return cfg.Projects, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	var raw SupervisorYAMLConfig
	if err := loadYAML(configDir, "supervisor.yaml", &raw); err != nil {
		return nil, NewLoadError("supervisor.yaml", err)
	}

	// Merge user values over built-in defaults (non-zero overrides).
	router := DefaultRouterConfig()
	if raw.Router != nil {
		if err := mergo.Merge(router, raw.Router, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge router config: %w", err)
		}
	}

	adapters := DefaultAdapters()
	for name, ac := range raw.Adapters {
		if existing, ok := adapters[name]; ok {
			if err := mergo.Merge(existing, ac, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge adapter %q: %w", name, err)
			}
		} else {
			adapters[name] = ac
		}
	}

	spawn := DefaultSpawnConfig()
	if raw.Spawn != nil {
		if err := mergo.Merge(spawn, raw.Spawn, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge spawn config: %w", err)
		}
	}

	orch := DefaultOrchestratorConfig()
	if raw.Orchestrator != nil {
		if err := mergo.Merge(orch, raw.Orchestrator, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge orchestrator config: %w", err)
		}
	}

	health := DefaultHealthConfig()
	if raw.Health != nil {
		if err := mergo.Merge(health, raw.Health, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge health config: %w", err)
		}
	}

	retention := DefaultRetentionConfig()
	if raw.Retention != nil {
		if err := mergo.Merge(retention, raw.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	templatesDir := raw.TemplatesDir
	if templatesDir != "" && !filepath.IsAbs(templatesDir) {
		templatesDir = filepath.Join(configDir, templatesDir)
	}

	return &Config{
		configDir:    configDir,
		Router:       router,
		Adapters:     adapters,
		Spawn:        spawn,
		Orchestrator: orch,
		Health:       health,
		Retention:    retention,
		TemplatesDir: templatesDir,
		Projects:     NewProjectSnapshot(raw.Projects),
	}, nil
}

func loadYAML(configDir, filename string, target any) error {
	path := filepath.Join(configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func validate(cfg *Config) error {
	return NewValidator(cfg).ValidateAll()
}
