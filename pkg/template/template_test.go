package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisworks/supervisor/pkg/models"
)

func TestLibrary_Select(t *testing.T) {
	lib, err := NewLibrary("")
	require.NoError(t, err)

	t.Run("task type match wins", func(t *testing.T) {
		tmpl, err := lib.Select(models.TaskValidation, "check the acceptance criterion")
		require.NoError(t, err)
		assert.Equal(t, "validation-default", tmpl.ID)
	})

	t.Run("every task type has a template", func(t *testing.T) {
		for _, tt := range []models.TaskType{
			models.TaskResearch, models.TaskPlanning, models.TaskImplementation,
			models.TaskTesting, models.TaskValidation, models.TaskDocumentation,
			models.TaskFix, models.TaskDeployment, models.TaskReview,
			models.TaskSecurity, models.TaskIntegration,
		} {
			_, err := lib.Select(tt, "anything")
			require.NoError(t, err, "task type %s", tt)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := lib.Select(models.TaskImplementation, "add a feature")
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := lib.Select(models.TaskImplementation, "add a feature")
			require.NoError(t, err)
			assert.Equal(t, first.ID, again.ID)
		}
	})
}

func TestLibrary_SelectTieBreak(t *testing.T) {
	dir := t.TempDir()
	// two templates matching the same task type with no keywords: the
	// lexicographically smaller id must win
	for _, id := range []string{"zz-research", "aa-research"} {
		body := "id: " + id + "\ntask_types: [research]\nbody: |\n  {{TASK_DESCRIPTION}}\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, id+".yaml"), []byte(body), 0o644))
	}
	lib, err := NewLibrary(dir)
	require.NoError(t, err)

	tmpl, err := lib.Select(models.TaskResearch, "plain description with no keywords")
	require.NoError(t, err)
	assert.Equal(t, "aa-research", tmpl.ID)
}

func TestLibrary_KeywordRefinement(t *testing.T) {
	dir := t.TempDir()
	body := `id: research-deps
task_types: [research]
keywords: [dependency, upgrade]
body: |
  deps: {{TASK_DESCRIPTION}}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "research-deps.yaml"), []byte(body), 0o644))
	lib, err := NewLibrary(dir)
	require.NoError(t, err)

	tmpl, err := lib.Select(models.TaskResearch, "investigate the dependency upgrade path")
	require.NoError(t, err)
	assert.Equal(t, "research-deps", tmpl.ID)

	// without the keywords the builtin (more keyword hits) wins
	tmpl, err = lib.Select(models.TaskResearch, "investigate and explore the cache layer")
	require.NoError(t, err)
	assert.Equal(t, "research-default", tmpl.ID)
}

func TestLibrary_UserOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	body := `id: fix-default
task_types: [fix]
body: |
  custom fix body {{TASK_DESCRIPTION}}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fix.yaml"), []byte(body), 0o644))
	lib, err := NewLibrary(dir)
	require.NoError(t, err)

	tmpl, err := lib.Get("fix-default")
	require.NoError(t, err)
	assert.Contains(t, tmpl.Body, "custom fix body")
}

func TestLibrary_Errors(t *testing.T) {
	t.Run("missing dir is fine", func(t *testing.T) {
		_, err := NewLibrary("/nonexistent/templates")
		require.NoError(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(":::"), 0o644))
		_, err := NewLibrary(dir)
		require.Error(t, err)
	})

	t.Run("missing id", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "noid.yaml"), []byte("body: x"), 0o644))
		_, err := NewLibrary(dir)
		require.Error(t, err)
	})

	t.Run("unknown template id", func(t *testing.T) {
		lib, err := NewLibrary("")
		require.NoError(t, err)
		_, err = lib.Get("nope")
		require.Error(t, err)
		assert.True(t, models.IsKind(err, models.KindTemplateNotFound))
	})
}

func TestTemplate_Render(t *testing.T) {
	lib, err := NewLibrary("")
	require.NoError(t, err)
	tmpl, err := lib.Get("implementation-default")
	require.NoError(t, err)

	out, err := tmpl.Render(RenderVars{
		TaskDescription: "add pagination",
		ProjectPath:     "/srv/projects/billing",
		ProjectName:     "billing",
		Context:         map[string]any{"epic_file": "epics/pagination.md"},
		CurrentTask:     "wire the repository layer",
		CompletedTasks:  []string{"define the API", "add the schema"},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "add pagination")
	assert.Contains(t, out, "/srv/projects/billing")
	assert.Contains(t, out, "wire the repository layer")
	assert.Contains(t, out, "1. define the API")
	assert.Contains(t, out, "2. add the schema")
	assert.Contains(t, out, `"epic_file": "epics/pagination.md"`)
	assert.NotContains(t, out, "{{")

	t.Run("empty optional vars", func(t *testing.T) {
		out, err := tmpl.Render(RenderVars{TaskDescription: "x", ProjectPath: "/p", ProjectName: "p"})
		require.NoError(t, err)
		assert.Contains(t, out, "{}")
		assert.Contains(t, out, "none")
	})
}
