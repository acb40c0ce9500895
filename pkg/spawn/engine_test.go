package spawn

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/ent/activespawn"
	"github.com/praxisworks/supervisor/ent/event"
	"github.com/praxisworks/supervisor/pkg/cliadapter"
	"github.com/praxisworks/supervisor/pkg/config"
	"github.com/praxisworks/supervisor/pkg/models"
	"github.com/praxisworks/supervisor/pkg/router"
	"github.com/praxisworks/supervisor/pkg/services"
	"github.com/praxisworks/supervisor/pkg/template"
	"github.com/praxisworks/supervisor/test/util"
)

// newTestEngine wires the engine against /bin/sh stand-ins for every
// backend CLI. script is what the selected "CLI" executes.
func newTestEngine(t *testing.T, script string) (*Engine, *ent.Client, *services.RegistryService) {
	client, _ := util.SetupTestDatabase(t)

	adapterCfg := map[string]*config.AdapterConfig{
		"claude": {Executable: "/bin/sh", ExtraArgs: []string{"-c", script}},
		"gemini": {Executable: "/bin/sh", ExtraArgs: []string{"-c", script}},
		"codex":  {Executable: "/bin/sh", ExtraArgs: []string{"-c", script}},
	}
	adapters := cliadapter.NewRegistry(adapterCfg)
	rtr := router.NewRouter(config.DefaultRouterConfig(), adapters)
	templates, err := template.NewLibrary("")
	require.NoError(t, err)
	events := services.NewEventLogService(client)
	registry := services.NewRegistryService(client, 120*time.Second)

	engine := NewEngine(client, rtr, adapters, templates, events, &config.SpawnConfig{
		MaxConcurrent:  2,
		DefaultTimeout: time.Minute,
		KillGrace:      200 * time.Millisecond,
		TempDir:        t.TempDir(),
	})
	return engine, client, registry
}

func TestEngine_PreconditionFailuresLeaveNoTrace(t *testing.T) {
	engine, client, _ := newTestEngine(t, "cat")
	ctx := context.Background()
	projectDir := t.TempDir()

	cases := []struct {
		name   string
		params models.SpawnParams
		caller models.CallerContext
		kind   models.ErrorKind
	}{
		{
			name:   "unknown task type",
			params: models.SpawnParams{TaskType: "juggling", Description: "x", Context: map[string]any{"project_path": projectDir}},
			kind:   models.KindValidation,
		},
		{
			name:   "empty description",
			params: models.SpawnParams{TaskType: models.TaskFix, Context: map[string]any{"project_path": projectDir}},
			kind:   models.KindValidation,
		},
		{
			name:   "no project context",
			params: models.SpawnParams{TaskType: models.TaskFix, Description: "fix it"},
			kind:   models.KindNoProjectContext,
		},
		{
			name:   "nonexistent project path",
			params: models.SpawnParams{TaskType: models.TaskFix, Description: "fix it", Context: map[string]any{"project_path": "/does/not/exist"}},
			kind:   models.KindValidation,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := engine.Spawn(ctx, tc.params, tc.caller)
			assert.False(t, res.Success)
			assert.Equal(t, tc.kind, res.ErrorKind)
			assert.Empty(t, res.AgentID)
		})
	}

	count, err := client.ActiveSpawn.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "precondition failures must not persist spawn rows")

	// the audit log still records every rejected attempt, with zero duration
	cmds, err := client.CommandLogEntry.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, cmds, len(cases))
	for _, cmd := range cmds {
		assert.False(t, cmd.Success)
		assert.Equal(t, "spawn", cmd.CommandType)
		require.NotNil(t, cmd.ErrorMessage)
		assert.Nil(t, cmd.ExecutionTimeMs)
	}
}

func TestEngine_QuotaExhaustedIsAudited(t *testing.T) {
	engine, client, _ := newTestEngine(t, "cat")
	engine.router = router.NewRouter(config.DefaultRouterConfig(), exhaustedQuota{})
	ctx := context.Background()

	res := engine.Spawn(ctx, models.SpawnParams{
		TaskType:    models.TaskFix,
		Description: "fix it",
		Context:     map[string]any{"project_path": t.TempDir()},
	}, models.CallerContext{})

	assert.False(t, res.Success)
	assert.Equal(t, models.KindQuotaExhausted, res.ErrorKind)

	count, err := client.ActiveSpawn.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	cmds, err := client.CommandLogEntry.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.False(t, cmds[0].Success)
	require.NotNil(t, cmds[0].ErrorMessage)
	assert.Contains(t, *cmds[0].ErrorMessage, "quota")
}

func TestEngine_CancelledWhileQueueing(t *testing.T) {
	engine, client, _ := newTestEngine(t, "cat")
	projectDir := t.TempDir()

	// fill every slot so the next spawn has to queue
	for i := 0; i < cap(engine.slots); i++ {
		engine.slots <- struct{}{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := engine.Spawn(ctx, models.SpawnParams{
		TaskType:    models.TaskFix,
		Description: "fix it",
		Context:     map[string]any{"project_path": projectDir},
	}, models.CallerContext{})

	assert.False(t, res.Success)
	assert.Equal(t, models.KindCancelled, res.ErrorKind)

	// giving up in the queue leaves no instruction files behind
	entries, err := os.ReadDir(engine.cfg.TempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	count, err := client.ActiveSpawn.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	cmds, err := client.CommandLogEntry.Query().All(context.Background())
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.False(t, cmds[0].Success)
}

// exhaustedQuota reports every backend service out of quota.
type exhaustedQuota struct{}

func (exhaustedQuota) QuotaAvailable(context.Context, string) (bool, string) {
	return false, "rate limited"
}

func TestEngine_SuccessfulSpawn(t *testing.T) {
	engine, client, registry := newTestEngine(t, "cat")
	ctx := context.Background()
	projectDir := t.TempDir()

	inst, err := registry.Register(ctx, models.RegisterInstanceRequest{Project: "billing", Type: "PS"})
	require.NoError(t, err)

	res := engine.Spawn(ctx, models.SpawnParams{
		TaskType:    models.TaskImplementation,
		Description: "add pagination to the list endpoint",
		Context:     map[string]any{"project_path": projectDir, "current_task": "wire the repo layer"},
	}, models.CallerContext{InstanceID: inst.ID})

	require.True(t, res.Success, "error: %s", res.Error)
	assert.Regexp(t, `^\d+-[0-9a-f]{6}$`, res.AgentID)
	assert.Equal(t, "codex", res.ServiceUsed)
	assert.NotZero(t, res.CostEstimate)

	// the CLI (cat) echoed the rendered instructions into the output file
	out, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(out), "add pagination to the list endpoint")
	assert.Contains(t, string(out), "wire the repo layer")
	assert.Contains(t, string(out), projectDir)

	row, err := client.ActiveSpawn.Get(ctx, res.AgentID)
	require.NoError(t, err)
	assert.Equal(t, activespawn.StatusCompleted, row.Status)
	require.NotNil(t, row.ExitCode)
	assert.Equal(t, 0, *row.ExitCode)
	assert.Equal(t, projectDir, row.ProjectPath)
	require.NotNil(t, row.InstanceID)
	assert.Equal(t, inst.ID, *row.InstanceID)
	assert.NotNil(t, row.EndedAt)

	spawned, err := client.Event.Query().
		Where(event.InstanceID(inst.ID), event.EventTypeEQ(event.EventTypeTaskSpawned)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.AgentID, spawned.EventData["agent_id"])

	cmds, err := client.CommandLogEntry.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.True(t, cmds[0].Success)
	assert.Contains(t, cmds[0].Tags, "codex")
}

func TestEngine_AdapterExit(t *testing.T) {
	engine, client, _ := newTestEngine(t, "echo nope >&2; exit 7")
	ctx := context.Background()

	res := engine.Spawn(ctx, models.SpawnParams{
		TaskType:    models.TaskFix,
		Description: "fix the flaky test",
		Context:     map[string]any{"project_path": t.TempDir()},
	}, models.CallerContext{})

	assert.False(t, res.Success)
	assert.Equal(t, models.KindAdapterExit, res.ErrorKind)

	row, err := client.ActiveSpawn.Get(ctx, res.AgentID)
	require.NoError(t, err)
	assert.Equal(t, activespawn.StatusFailed, row.Status)
	require.NotNil(t, row.ExitCode)
	assert.Equal(t, 7, *row.ExitCode)
	require.NotNil(t, row.ErrorMessage)
}

func TestEngine_TimeoutMarksStalled(t *testing.T) {
	engine, client, _ := newTestEngine(t, "sleep 30")

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	res := engine.Spawn(ctx, models.SpawnParams{
		TaskType:    models.TaskTesting,
		Description: "run the suite",
		Context:     map[string]any{"project_path": t.TempDir()},
	}, models.CallerContext{})

	assert.False(t, res.Success)
	assert.Equal(t, models.KindTimeout, res.ErrorKind)

	row, err := client.ActiveSpawn.Get(context.Background(), res.AgentID)
	require.NoError(t, err)
	assert.Equal(t, activespawn.StatusStalled, row.Status)
	require.NotNil(t, row.DeadlineAt)
}

func TestEngine_CallerProjectFallback(t *testing.T) {
	engine, client, _ := newTestEngine(t, "pwd")
	ctx := context.Background()
	projectDir := t.TempDir()

	res := engine.Spawn(ctx, models.SpawnParams{
		TaskType:    models.TaskReview,
		Description: "review the diff",
	}, models.CallerContext{
		Project: &models.ProjectContext{Name: "billing", Path: projectDir},
	})

	require.True(t, res.Success, "error: %s", res.Error)

	row, err := client.ActiveSpawn.Get(ctx, res.AgentID)
	require.NoError(t, err)
	assert.Equal(t, projectDir, row.ProjectPath)
	assert.Equal(t, "billing", row.ProjectName)
}
