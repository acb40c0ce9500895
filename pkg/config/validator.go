package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/praxisworks/supervisor/pkg/models"
)

var projectSlugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Validator performs cross-component configuration validation.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll validates every configuration component, collecting the
// first error per component.
func (v *Validator) ValidateAll() error {
	if err := v.validateProjects(); err != nil {
		return err
	}
	if err := v.validateRouter(); err != nil {
		return err
	}
	if err := v.validateAdapters(); err != nil {
		return err
	}
	if err := v.validateLimits(); err != nil {
		return err
	}
	return nil
}

func (v *Validator) validateProjects() error {
	for _, name := range v.cfg.Projects.Names() {
		p, _ := v.cfg.Projects.Get(name)
		if !projectSlugPattern.MatchString(p.Name) {
			return NewValidationError("project", p.Name, "name", ErrInvalidValue)
		}
		if p.Name == models.MetaProject {
			return NewValidationError("project", p.Name, "name",
				fmt.Errorf("%w: %q is reserved", ErrInvalidValue, models.MetaProject))
		}
		if p.Path == "" {
			return NewValidationError("project", p.Name, "path", ErrMissingRequiredField)
		}
		if !filepath.IsAbs(p.Path) {
			return NewValidationError("project", p.Name, "path",
				fmt.Errorf("%w: must be absolute", ErrInvalidValue))
		}
	}
	return nil
}

func (v *Validator) validateRouter() error {
	if len(v.cfg.Router.Models) == 0 {
		return NewValidationError("router", "models", "", ErrMissingRequiredField)
	}
	for _, m := range v.cfg.Router.Models {
		id := m.Service + "/" + m.Model
		switch m.Service {
		case "claude", "gemini", "codex":
		default:
			return NewValidationError("router", id, "service", ErrInvalidValue)
		}
		switch m.Tier {
		case "flash", "mid", "top":
		default:
			return NewValidationError("router", id, "tier", ErrInvalidValue)
		}
		if m.PricePerToken < 0 {
			return NewValidationError("router", id, "price_per_token", ErrInvalidValue)
		}
	}
	return nil
}

func (v *Validator) validateAdapters() error {
	// Every routable service needs an adapter binding.
	services := make(map[string]bool)
	for _, m := range v.cfg.Router.Models {
		services[m.Service] = true
	}
	for svc := range services {
		ac, ok := v.cfg.Adapters[svc]
		if !ok {
			return NewValidationError("adapter", svc, "", ErrMissingRequiredField)
		}
		if strings.TrimSpace(ac.Executable) == "" {
			return NewValidationError("adapter", svc, "executable", ErrMissingRequiredField)
		}
	}
	return nil
}

func (v *Validator) validateLimits() error {
	if v.cfg.Spawn.MaxConcurrent < 1 {
		return NewValidationError("spawn", "max_concurrent", "", ErrInvalidValue)
	}
	if v.cfg.Spawn.DefaultTimeout <= 0 {
		return NewValidationError("spawn", "default_timeout", "", ErrInvalidValue)
	}
	if v.cfg.Orchestrator.PhaseTimeout <= 0 {
		return NewValidationError("orchestrator", "phase_timeout", "", ErrInvalidValue)
	}
	if v.cfg.Orchestrator.ValidationConcurrency < 1 {
		return NewValidationError("orchestrator", "validation_concurrency", "", ErrInvalidValue)
	}
	if v.cfg.Health.SweepInterval <= 0 || v.cfg.Health.StaleAfter <= 0 {
		return NewValidationError("health", "intervals", "", ErrInvalidValue)
	}
	if v.cfg.Retention.SpawnRetention <= 0 || v.cfg.Retention.CommandLogRetention <= 0 || v.cfg.Retention.CleanupInterval <= 0 {
		return NewValidationError("retention", "intervals", "", ErrInvalidValue)
	}
	return nil
}
