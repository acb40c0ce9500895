package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/pkg/config"
	"github.com/praxisworks/supervisor/pkg/models"
)

const testEpic = `# Epic 7: Hello module

## Implementation Notes

1. Create src/hello.ts exporting hello()
2. Add test tests/hello.spec.ts

## Acceptance Criteria

- [ ] hello.ts exists
- [ ] tests pass
`

// fakeSpawner scripts spawn outcomes per task type and records every call.
type fakeSpawner struct {
	mu    sync.Mutex
	calls []models.SpawnParams

	failTask      string // implementation note that should fail
	failKind      models.ErrorKind
	unmetCriteria map[string]bool // criterion text → report met=false
	outputDir     string
}

func (f *fakeSpawner) Spawn(_ context.Context, params models.SpawnParams, _ models.CallerContext) *models.SpawnResult {
	f.mu.Lock()
	f.calls = append(f.calls, params)
	n := len(f.calls)
	f.mu.Unlock()

	if params.TaskType == models.TaskImplementation && params.Description == f.failTask {
		kind := f.failKind
		if kind == "" {
			kind = models.KindAdapterExit
		}
		msg := "exit 1"
		if kind == models.KindTimeout {
			msg = "run interrupted"
		}
		return &models.SpawnResult{Success: false, ErrorKind: kind, Error: msg}
	}

	res := &models.SpawnResult{Success: true, AgentID: fmt.Sprintf("100-%06d", n)}
	if params.TaskType == models.TaskValidation {
		criterion, _ := params.Context["current_task"].(string)
		met := !f.unmetCriteria[criterion]
		out := filepath.Join(f.outputDir, fmt.Sprintf("out-%d.log", n))
		verdict := fmt.Sprintf("thinking...\n{\"met\": %v, \"evidence\": \"checked %s\"}\n", met, criterion)
		if err := os.WriteFile(out, []byte(verdict), 0o644); err != nil {
			panic(err)
		}
		res.OutputPath = out
	}
	return res
}

func (f *fakeSpawner) byType(tt models.TaskType) []models.SpawnParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.SpawnParams
	for _, c := range f.calls {
		if c.TaskType == tt {
			out = append(out, c)
		}
	}
	return out
}

// fakeSink records emitted events.
type fakeSink struct {
	mu     sync.Mutex
	events []models.LogEventRequest
}

func (f *fakeSink) LogEvent(_ context.Context, req models.LogEventRequest) (*ent.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, req)
	return &ent.Event{}, nil
}

func (f *fakeSink) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, e := range f.events {
		out = append(out, e.EventType)
	}
	return out
}

func writeEpic(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "epic.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestOrchestrator(t *testing.T, pr PRFunc) (*Orchestrator, *fakeSpawner, *fakeSink) {
	spawner := &fakeSpawner{outputDir: t.TempDir(), unmetCriteria: map[string]bool{}}
	sink := &fakeSink{}
	o := New(spawner, sink, &config.OrchestratorConfig{
		PhaseTimeout:          time.Minute,
		ValidationConcurrency: 2,
	}, pr)
	return o, spawner, sink
}

func caller() models.CallerContext {
	return models.CallerContext{InstanceID: "billing-PS-abc123"}
}

func TestImplementEpic_HappyPath(t *testing.T) {
	o, spawner, sink := newTestOrchestrator(t, nil)
	path := writeEpic(t, testEpic)

	out := o.ImplementEpic(context.Background(), caller(), EpicRequest{
		ProjectName: "billing",
		ProjectPath: "/srv/billing",
		EpicFile:    path,
	})

	require.True(t, out.Success, "reason: %s", out.Reason)
	assert.Equal(t, 2, out.TasksCompleted)
	require.NotNil(t, out.CriteriaValidation)
	assert.True(t, out.CriteriaValidation.AllMet)
	require.Len(t, out.CriteriaValidation.Results, 2)
	for _, r := range out.CriteriaValidation.Results {
		assert.True(t, r.Met)
		assert.Contains(t, r.Evidence, "checked")
	}

	impls := spawner.byType(models.TaskImplementation)
	require.Len(t, impls, 2)
	assert.Equal(t, "Create src/hello.ts exporting hello()", impls[0].Description)
	assert.Equal(t, "Add test tests/hello.spec.ts", impls[1].Description)
	assert.Equal(t, 0, impls[0].Context["task_index"])
	assert.Empty(t, impls[0].Context["completed_tasks"])
	assert.Equal(t, []string{"Create src/hello.ts exporting hello()"}, impls[1].Context["completed_tasks"])

	assert.Len(t, spawner.byType(models.TaskValidation), 2)

	types := sink.types()
	assert.Contains(t, types, "epic_started")
	assert.Contains(t, types, "epic_planned")
	assert.Contains(t, types, "epic_completed")
	assert.Equal(t, 2, countOf(types, "validation_passed"))
	assert.NotContains(t, types, "epic_failed")
}

func TestImplementEpic_EmptyPlan(t *testing.T) {
	o, spawner, sink := newTestOrchestrator(t, nil)
	path := writeEpic(t, "# Epic 8: Nothing\n\n## Acceptance Criteria\n\n- [ ] impossible\n")

	out := o.ImplementEpic(context.Background(), caller(), EpicRequest{EpicFile: path})

	assert.False(t, out.Success)
	assert.Contains(t, out.Reason, "EmptyPlan")
	assert.Equal(t, models.KindValidation, out.ErrorKind)
	assert.Empty(t, spawner.calls)
	assert.Contains(t, sink.types(), "epic_failed")
}

func TestImplementEpic_TaskFailureStopsRun(t *testing.T) {
	o, spawner, sink := newTestOrchestrator(t, nil)
	spawner.failTask = "Add test tests/hello.spec.ts"
	path := writeEpic(t, testEpic)

	out := o.ImplementEpic(context.Background(), caller(), EpicRequest{EpicFile: path})

	assert.False(t, out.Success)
	assert.Equal(t, PhaseExecute, out.Phase)
	assert.Equal(t, 1, out.TaskIndex)
	assert.Equal(t, 1, out.TasksCompleted)
	assert.Empty(t, spawner.byType(models.TaskValidation), "no partial validation")
	assert.Contains(t, sink.types(), "epic_failed")
}

func TestImplementEpic_Timeout(t *testing.T) {
	o, spawner, _ := newTestOrchestrator(t, nil)
	spawner.failTask = "Add test tests/hello.spec.ts"
	spawner.failKind = models.KindTimeout
	path := writeEpic(t, testEpic)

	out := o.ImplementEpic(context.Background(), caller(), EpicRequest{EpicFile: path})

	assert.False(t, out.Success)
	assert.Equal(t, PhaseExecute, out.Phase)
	assert.Equal(t, 1, out.TaskIndex)
	assert.Equal(t, "Timeout", out.Reason)
	assert.Equal(t, models.KindTimeout, out.ErrorKind)
}

func TestRunExecute_Resume(t *testing.T) {
	o, spawner, _ := newTestOrchestrator(t, nil)
	path := writeEpic(t, testEpic)

	out := o.RunExecute(context.Background(), caller(), EpicRequest{
		EpicFile:       path,
		CompletedTasks: []string{"Create src/hello.ts exporting hello()"},
	})

	require.True(t, out.Success, "reason: %s", out.Reason)
	assert.Equal(t, 2, out.TasksCompleted)

	impls := spawner.byType(models.TaskImplementation)
	require.Len(t, impls, 1, "finished steps must not re-run")
	assert.Equal(t, "Add test tests/hello.spec.ts", impls[0].Description)
	assert.Equal(t, []string{"Create src/hello.ts exporting hello()"}, impls[0].Context["completed_tasks"])
}

func TestImplementEpic_UnmetCriteria(t *testing.T) {
	prCalled := false
	o, spawner, sink := newTestOrchestrator(t, func(context.Context, string, string, string) (string, error) {
		prCalled = true
		return "https://example.com/pr/1", nil
	})
	spawner.unmetCriteria["tests pass"] = true
	path := writeEpic(t, testEpic)

	out := o.ImplementEpic(context.Background(), caller(), EpicRequest{EpicFile: path, CreatePR: true})

	assert.False(t, out.Success)
	require.NotNil(t, out.CriteriaValidation)
	assert.False(t, out.CriteriaValidation.AllMet)

	var unmet []string
	for _, r := range out.CriteriaValidation.Results {
		if !r.Met {
			unmet = append(unmet, r.Criterion)
		}
	}
	assert.Equal(t, []string{"tests pass"}, unmet)

	assert.False(t, prCalled, "PR must only be created on full success")
	types := sink.types()
	assert.Equal(t, 1, countOf(types, "validation_failed"))
	assert.Contains(t, types, "epic_failed")
}

func TestImplementEpic_CreatePR(t *testing.T) {
	var gotTitle string
	o, _, sink := newTestOrchestrator(t, func(_ context.Context, _, title, _ string) (string, error) {
		gotTitle = title
		return "https://example.com/pr/42", nil
	})
	path := writeEpic(t, testEpic)

	out := o.ImplementEpic(context.Background(), caller(), EpicRequest{EpicFile: path, CreatePR: true})

	require.True(t, out.Success)
	assert.Equal(t, "https://example.com/pr/42", out.PRURL)
	assert.Contains(t, gotTitle, "Epic 7")
	assert.Contains(t, sink.types(), "pr_created")
}

func TestRunPrimeAndPlan(t *testing.T) {
	o, spawner, _ := newTestOrchestrator(t, nil)
	path := writeEpic(t, testEpic)

	out := o.RunPrime(context.Background(), caller(), EpicRequest{EpicFile: path})
	require.True(t, out.Success)
	assert.Equal(t, PhasePrime, out.Phase)

	out = o.RunPlan(context.Background(), caller(), EpicRequest{EpicFile: path})
	require.True(t, out.Success)
	assert.Equal(t, PhasePlan, out.Phase)

	require.Len(t, spawner.byType(models.TaskResearch), 1)
	require.Len(t, spawner.byType(models.TaskPlanning), 1)

	t.Run("missing epic file", func(t *testing.T) {
		out := o.RunPrime(context.Background(), caller(), EpicRequest{EpicFile: "/no/such.md"})
		assert.False(t, out.Success)
	})
}

func TestParseValidationOutput(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		return p
	}

	met, evidence, err := parseValidationOutput(write("ok", "noise\n{\"met\": true, \"evidence\": \"file exists\"}\n"))
	require.NoError(t, err)
	assert.True(t, met)
	assert.Equal(t, "file exists", evidence)

	met, _, err = parseValidationOutput(write("unmet", "{\"met\": false}\ntrailing noise"))
	require.NoError(t, err)
	assert.False(t, met)

	_, _, err = parseValidationOutput(write("junk", "no json here"))
	require.Error(t, err)

	_, _, err = parseValidationOutput(write("wrongjson", "{\"other\": 1}"))
	require.Error(t, err)
}

func countOf(items []string, want string) int {
	n := 0
	for _, item := range items {
		if item == want {
			n++
		}
	}
	return n
}
