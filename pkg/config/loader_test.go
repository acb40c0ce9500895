package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisworks/supervisor/pkg/models"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "supervisor.yaml"), []byte(yaml), 0o644))
	return dir
}

const minimalYAML = `
projects:
  - name: billing
    display_name: Billing
    path: /srv/billing
  - name: website
    path: /srv/website
    tools: [register_instance, heartbeat]
  - name: legacy
    path: /srv/legacy
    enabled: false
`

func TestInitialize_Minimal(t *testing.T) {
	dir := writeConfig(t, minimalYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// untouched sections fall back to builtins
	assert.NotEmpty(t, cfg.Router.Models)
	assert.Equal(t, 50_000, cfg.Router.DefaultEstimatedTokens)
	assert.Equal(t, 8, cfg.Spawn.MaxConcurrent)
	assert.Equal(t, 30*time.Second, cfg.Health.SweepInterval)
	assert.Equal(t, 7*24*time.Hour, cfg.Retention.SpawnRetention)
	assert.Equal(t, "claude", cfg.Adapters["claude"].Executable)

	assert.Equal(t, []string{"billing", "website"}, cfg.Projects.Names(),
		"disabled projects are excluded from Names")
	assert.Equal(t, 2, cfg.Projects.Len())

	pc := cfg.Projects.Context("billing")
	require.NotNil(t, pc)
	assert.Equal(t, "Billing", pc.DisplayName)
	assert.Equal(t, "/srv/billing", pc.Path)

	assert.Nil(t, cfg.Projects.Context("legacy"), "disabled projects have no context")
	assert.Nil(t, cfg.Projects.Context("unknown"))

	website, ok := cfg.Projects.Get("website")
	require.True(t, ok)
	assert.Equal(t, []string{"register_instance", "heartbeat"}, website.Tools)
}

func TestInitialize_OverridesMergeOverDefaults(t *testing.T) {
	dir := writeConfig(t, minimalYAML+`
router:
  default_estimated_tokens: 9000
spawn:
  max_concurrent: 2
retention:
  spawn_retention: 48h
adapters:
  claude:
    executable: /opt/bin/claude
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Router.DefaultEstimatedTokens)
	assert.NotEmpty(t, cfg.Router.Models, "model catalog survives a partial override")
	assert.Equal(t, 2, cfg.Spawn.MaxConcurrent)
	assert.Equal(t, 30*time.Minute, cfg.Spawn.DefaultTimeout, "untouched fields keep defaults")
	assert.Equal(t, 48*time.Hour, cfg.Retention.SpawnRetention)
	assert.Equal(t, 30*24*time.Hour, cfg.Retention.CommandLogRetention)
	assert.Equal(t, "/opt/bin/claude", cfg.Adapters["claude"].Executable)
	assert.NotEmpty(t, cfg.Adapters["claude"].ExtraArgs, "merged adapters keep default args")
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("BILLING_ROOT", "/mnt/projects/billing")
	dir := writeConfig(t, `
projects:
  - name: billing
    path: "{{.BILLING_ROOT}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	p, _ := cfg.Projects.Get("billing")
	assert.Equal(t, "/mnt/projects/billing", p.Path)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad project slug", "projects:\n  - name: Billing!\n    path: /srv/x\n"},
		{"reserved meta slug", "projects:\n  - name: " + models.MetaProject + "\n    path: /srv/x\n"},
		{"relative path", "projects:\n  - name: billing\n    path: srv/billing\n"},
		{"missing path", "projects:\n  - name: billing\n"},
		{"unknown service", minimalYAML + "router:\n  models:\n    - service: grok\n      model: g1\n      tier: mid\n"},
		{"unknown tier", minimalYAML + "router:\n  models:\n    - service: claude\n      model: c1\n      tier: turbo\n"},
		{"negative retention", minimalYAML + "retention:\n  spawn_retention: -1h\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeConfig(t, tc.yaml)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestInitialize_MissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestReload_ReturnsFreshSnapshot(t *testing.T) {
	dir := writeConfig(t, minimalYAML)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"billing", "website"}, cfg.Projects.Names())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "supervisor.yaml"), []byte(`
projects:
  - name: newproj
    path: /srv/newproj
`), 0o644))

	snapshot, err := Reload(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"newproj"}, snapshot.Names())

	// the original config keeps its snapshot
	assert.Equal(t, []string{"billing", "website"}, cfg.Projects.Names())
}
