package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisworks/supervisor/pkg/models"
	"github.com/praxisworks/supervisor/pkg/orchestrator"
	"github.com/praxisworks/supervisor/pkg/services"
)

type fakeSecrets struct {
	values     map[string]string
	accessedBy []string
}

func (f *fakeSecrets) Set(_ context.Context, accessedBy string, req models.SetSecretRequest) error {
	f.accessedBy = append(f.accessedBy, accessedBy)
	f.values[req.KeyPath] = req.Value
	return nil
}

func (f *fakeSecrets) Get(_ context.Context, accessedBy, keyPath string) (string, error) {
	f.accessedBy = append(f.accessedBy, accessedBy)
	v, ok := f.values[keyPath]
	if !ok {
		return "", services.ErrSecretNotFound
	}
	return v, nil
}

func (f *fakeSecrets) List(_ context.Context, accessedBy, prefix string) ([]models.SecretInfo, error) {
	f.accessedBy = append(f.accessedBy, accessedBy)
	var out []models.SecretInfo
	for k := range f.values {
		out = append(out, models.SecretInfo{KeyPath: k})
	}
	return out, nil
}

func (f *fakeSecrets) Delete(_ context.Context, accessedBy, keyPath string) error {
	f.accessedBy = append(f.accessedBy, accessedBy)
	delete(f.values, keyPath)
	return nil
}

type fakeEpicSpawner struct {
	last models.SpawnParams
}

func (f *fakeEpicSpawner) Spawn(_ context.Context, params models.SpawnParams, _ models.CallerContext) *models.SpawnResult {
	f.last = params
	return &models.SpawnResult{Success: true, AgentID: "100-abc123"}
}

type fakeOrch struct {
	lastMode string
	lastReq  orchestrator.EpicRequest
}

func (f *fakeOrch) run(mode string, req orchestrator.EpicRequest) *orchestrator.Outcome {
	f.lastMode = mode
	f.lastReq = req
	return &orchestrator.Outcome{Success: true}
}

func (f *fakeOrch) ImplementEpic(_ context.Context, _ models.CallerContext, req orchestrator.EpicRequest) *orchestrator.Outcome {
	return f.run("implement", req)
}
func (f *fakeOrch) RunPrime(_ context.Context, _ models.CallerContext, req orchestrator.EpicRequest) *orchestrator.Outcome {
	return f.run("prime", req)
}
func (f *fakeOrch) RunPlan(_ context.Context, _ models.CallerContext, req orchestrator.EpicRequest) *orchestrator.Outcome {
	return f.run("plan", req)
}
func (f *fakeOrch) RunExecute(_ context.Context, _ models.CallerContext, req orchestrator.EpicRequest) *orchestrator.Outcome {
	return f.run("execute", req)
}

func projectCaller() models.CallerContext {
	return models.CallerContext{
		InstanceID: "billing-PS-abc123",
		Project:    &models.ProjectContext{Name: "billing", Path: "/srv/billing"},
	}
}

func TestRegisterBuiltins_PartialDeps(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterBuiltins(r, Deps{
		Secrets: &fakeSecrets{values: map[string]string{}},
	}))

	defs := r.ListTools(models.MetaProject)
	var names []string
	for _, d := range defs {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"secret_delete", "secret_get", "secret_list", "secret_set"}, names)
}

func TestSecretTools(t *testing.T) {
	r := NewRegistry()
	secrets := &fakeSecrets{values: map[string]string{}}
	require.NoError(t, RegisterBuiltins(r, Deps{Secrets: secrets}))
	ctx := context.Background()

	_, err := r.Execute(ctx, "billing", "secret_set", map[string]any{
		"key_path": "projects/billing/api_key",
		"value":    "s3cret",
	}, projectCaller())
	require.NoError(t, err)

	result, err := r.Execute(ctx, "billing", "secret_get", map[string]any{
		"key_path": "projects/billing/api_key",
	}, projectCaller())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"key_path": "projects/billing/api_key", "value": "s3cret"}, result)

	// audit attribution follows the caller, anonymous without one
	assert.Equal(t, []string{"billing-PS-abc123", "billing-PS-abc123"}, secrets.accessedBy)
	_, err = r.Execute(ctx, "billing", "secret_get", map[string]any{"key_path": "projects/billing/api_key"}, models.CallerContext{})
	require.NoError(t, err)
	assert.Equal(t, services.AnonymousAccessor, secrets.accessedBy[len(secrets.accessedBy)-1])

	// schema rejects a missing key_path before the store is touched
	_, err = r.Execute(ctx, "billing", "secret_set", map[string]any{"value": "x"}, projectCaller())
	require.Error(t, err)
	assert.Equal(t, models.KindValidation, models.KindOf(err))

	_, err = r.Execute(ctx, "billing", "secret_get", map[string]any{"key_path": "missing"}, projectCaller())
	assert.ErrorIs(t, err, services.ErrSecretNotFound)
}

func TestSpawnSubagentTool(t *testing.T) {
	r := NewRegistry()
	sp := &fakeEpicSpawner{}
	require.NoError(t, RegisterBuiltins(r, Deps{Spawner: sp}))

	result, err := r.Execute(context.Background(), "billing", "spawn_subagent", map[string]any{
		"task_type":   "implementation",
		"description": "add pagination",
		"context":     map[string]any{"project_path": "/srv/billing"},
	}, projectCaller())
	require.NoError(t, err)

	res, ok := result.(*models.SpawnResult)
	require.True(t, ok)
	assert.True(t, res.Success)
	assert.Equal(t, models.TaskImplementation, sp.last.TaskType)
	assert.Equal(t, "add pagination", sp.last.Description)
}

func TestEpicTools_ProjectDefaults(t *testing.T) {
	r := NewRegistry()
	orch := &fakeOrch{}
	require.NoError(t, RegisterBuiltins(r, Deps{Orchestrator: orch}))
	ctx := context.Background()

	_, err := r.Execute(ctx, "billing", "implement_epic", map[string]any{
		"epic_file": "/srv/billing/epics/7.md",
		"create_pr": true,
	}, projectCaller())
	require.NoError(t, err)
	assert.Equal(t, "implement", orch.lastMode)
	assert.Equal(t, "billing", orch.lastReq.ProjectName)
	assert.Equal(t, "/srv/billing", orch.lastReq.ProjectPath)
	assert.True(t, orch.lastReq.CreatePR)

	// explicit arguments win over the endpoint project
	_, err = r.Execute(ctx, "billing", "run_execute", map[string]any{
		"epic_file":       "/elsewhere/epic.md",
		"project_path":    "/elsewhere",
		"completed_tasks": []any{"step one"},
	}, projectCaller())
	require.NoError(t, err)
	assert.Equal(t, "execute", orch.lastMode)
	assert.Equal(t, "/elsewhere", orch.lastReq.ProjectPath)
	assert.Equal(t, []string{"step one"}, orch.lastReq.CompletedTasks)

	_, err = r.Execute(ctx, "billing", "run_prime", map[string]any{"epic_file": "/e.md"}, projectCaller())
	require.NoError(t, err)
	assert.Equal(t, "prime", orch.lastMode)

	_, err = r.Execute(ctx, "billing", "run_plan", map[string]any{"epic_file": "/e.md"}, projectCaller())
	require.NoError(t, err)
	assert.Equal(t, "plan", orch.lastMode)
}

func TestCollaboratorTools(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterBuiltins(r, Deps{
		Collaborators: Collaborators{
			AllocatePort: func(_ context.Context, project, serviceName string) (int, error) {
				if serviceName == "taken" {
					return 0, errors.New("no free ports")
				}
				assert.Equal(t, "billing", project)
				return 40123, nil
			},
			SyncDNS: func(_ context.Context, _, hostname string, port int) (string, error) {
				return "https://" + hostname + ".example.dev", nil
			},
			CreatePR: func(_ context.Context, path, title, _ string) (string, error) {
				assert.Equal(t, "/srv/billing", path)
				return "https://example.com/pr/9", nil
			},
			Redact: func(s string) string { return "[masked]" },
		},
	}))
	ctx := context.Background()

	result, err := r.Execute(ctx, "billing", "allocate_port", map[string]any{"service_name": "dev-server"}, projectCaller())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"service_name": "dev-server", "port": 40123}, result)

	_, err = r.Execute(ctx, "billing", "allocate_port", map[string]any{"service_name": "taken"}, projectCaller())
	require.Error(t, err)
	assert.Equal(t, models.KindDependencyFailure, models.KindOf(err))

	result, err = r.Execute(ctx, "billing", "sync_dns", map[string]any{"hostname": "billing", "port": 40123.0}, projectCaller())
	require.NoError(t, err)
	assert.Equal(t, "https://billing.example.dev", result.(map[string]any)["url"])

	result, err = r.Execute(ctx, "billing", "create_pr", map[string]any{"title": "Epic 7"}, projectCaller())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/pr/9", result.(map[string]any)["url"])

	// create_pr is meaningless without a project working tree
	_, err = r.Execute(ctx, models.MetaProject, "create_pr", map[string]any{"title": "x"}, models.CallerContext{})
	require.Error(t, err)
	assert.Equal(t, models.KindNoProjectContext, models.KindOf(err))

	result, err = r.Execute(ctx, "billing", "redact_text", map[string]any{"text": "token=abc"}, projectCaller())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"text": "[masked]"}, result)
}

// The concrete services must satisfy the tool-facing views.
var (
	_ eventLog         = (*services.EventLogService)(nil)
	_ instanceRegistry = (*services.RegistryService)(nil)
	_ secretStore      = (*services.SecretService)(nil)
)
