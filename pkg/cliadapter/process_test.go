package cliadapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisworks/supervisor/pkg/config"
	"github.com/praxisworks/supervisor/pkg/models"
)

// shAdapter wraps /bin/sh so process handling is tested against a real
// executable without any AI CLI installed.
func shAdapter(extraArgs ...string) *cliAdapter {
	return newAdapter("claude", "--model", &config.AdapterConfig{
		Executable: "/bin/sh",
		ExtraArgs:  extraArgs,
	})
}

func runSpec(t *testing.T) RunSpec {
	dir := t.TempDir()
	instructions := filepath.Join(dir, "instructions.md")
	require.NoError(t, os.WriteFile(instructions, []byte("hello from stdin\n"), 0o644))
	return RunSpec{
		InstructionsPath: instructions,
		Cwd:              dir,
		StdoutPath:       filepath.Join(dir, "stdout.log"),
		StderrPath:       filepath.Join(dir, "stderr.log"),
		KillGrace:        200 * time.Millisecond,
	}
}

func TestRun_CapturesOutputAndCwd(t *testing.T) {
	a := shAdapter("-c", "cat; pwd")
	spec := runSpec(t)
	spec.Model = "" // no model flag appended

	res, err := a.Run(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.GreaterOrEqual(t, res.DurationMs, int64(0))

	out, err := os.ReadFile(res.StdoutPath)
	require.NoError(t, err)
	assert.Contains(t, string(out), "hello from stdin")

	resolved, err := filepath.EvalSymlinks(spec.Cwd)
	require.NoError(t, err)
	assert.Contains(t, string(out), resolved)
}

func TestRun_NonZeroExit(t *testing.T) {
	a := shAdapter("-c", "echo boom >&2; exit 3")
	spec := runSpec(t)
	spec.Model = ""

	res, err := a.Run(context.Background(), spec)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindAdapterExit))
	require.NotNil(t, res)
	assert.Equal(t, 3, res.ExitCode)

	errOut, readErr := os.ReadFile(res.StderrPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(errOut), "boom")
}

func TestRun_DeadlineEscalation(t *testing.T) {
	// ignores SIGTERM, so SIGKILL must finish it
	a := shAdapter("-c", "trap '' TERM; sleep 30")
	spec := runSpec(t)
	spec.Model = ""

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	start := time.Now()
	res, err := a.Run(ctx, spec)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindTimeout))
	require.NotNil(t, res)
	assert.Less(t, time.Since(start), 5*time.Second, "SIGKILL escalation must not hang")
}

func TestRun_Cancellation(t *testing.T) {
	a := shAdapter("-c", "sleep 30")
	spec := runSpec(t)
	spec.Model = ""

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	_, err := a.Run(ctx, spec)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindCancelled))
}

func TestRun_MissingExecutable(t *testing.T) {
	a := newAdapter("claude", "--model", &config.AdapterConfig{Executable: "/nonexistent/cli"})
	spec := runSpec(t)

	_, err := a.Run(context.Background(), spec)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindAdapterIO))
}

func TestCheckQuota(t *testing.T) {
	t.Run("missing executable", func(t *testing.T) {
		a := newAdapter("claude", "--model", &config.AdapterConfig{Executable: "definitely-not-on-path-xyz"})
		status := a.CheckQuota(context.Background())
		assert.False(t, status.Available)
		assert.Contains(t, status.Reason, "not found")
	})

	t.Run("no probe configured means available", func(t *testing.T) {
		a := shAdapter()
		status := a.CheckQuota(context.Background())
		assert.True(t, status.Available)
	})

	t.Run("probe failure", func(t *testing.T) {
		a := newAdapter("claude", "--model", &config.AdapterConfig{
			Executable:     "/bin/sh",
			QuotaProbeArgs: []string{"-c", "echo quota exceeded; exit 1"},
		})
		status := a.CheckQuota(context.Background())
		assert.False(t, status.Available)
		assert.Contains(t, status.Reason, "quota exceeded")
	})

	t.Run("probe detects rate limit on success exit", func(t *testing.T) {
		a := newAdapter("claude", "--model", &config.AdapterConfig{
			Executable:     "/bin/sh",
			QuotaProbeArgs: []string{"-c", "echo rate limit reached"},
		})
		status := a.CheckQuota(context.Background())
		assert.False(t, status.Available)
	})
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry(config.DefaultAdapters())

	assert.Equal(t, []string{"claude", "codex", "gemini"}, reg.Services())

	a, err := reg.Get("claude")
	require.NoError(t, err)
	assert.Equal(t, "claude", a.Service())

	_, err = reg.Get("unknown")
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindValidation))
}
