package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisworks/supervisor/pkg/models"
)

func echoHandler(_ context.Context, _ models.CallerContext, args map[string]any) (any, error) {
	return args, nil
}

func defOf(name string, required []string, props map[string]any) Definition {
	return Definition{Name: name, Description: name, InputSchema: obj(required, props)}
}

func TestRegister_Validation(t *testing.T) {
	r := NewRegistry()

	err := r.Register(Definition{Name: ""}, echoHandler)
	require.Error(t, err)
	assert.Equal(t, models.KindValidation, models.KindOf(err))

	err = r.Register(Definition{Name: "no_handler"}, nil)
	require.Error(t, err)

	require.NoError(t, r.Register(defOf("dup", nil, nil), echoHandler))
	err = r.Register(defOf("dup", nil, nil), echoHandler)
	require.Error(t, err)
	assert.Equal(t, models.KindConflict, models.KindOf(err))

	err = r.Register(Definition{
		Name:        "bad_schema",
		InputSchema: map[string]any{"type": "not-a-type"},
	}, echoHandler)
	require.Error(t, err)
}

func TestRegister_NilProperties(t *testing.T) {
	r := NewRegistry()

	// schemas without properties compile and accept any object
	require.NoError(t, r.Register(Definition{
		Name:        "ping",
		Description: "ping",
		InputSchema: map[string]any{"type": "object", "properties": nil},
	}, echoHandler))
	require.NoError(t, r.Register(defOf("bare", nil, nil), echoHandler))

	_, err := r.Execute(context.Background(), "billing", "ping", nil, models.CallerContext{})
	require.NoError(t, err)
	_, err = r.Execute(context.Background(), "billing", "bare", map[string]any{"anything": 1}, models.CallerContext{})
	require.NoError(t, err)
}

func TestListTools_Scoping(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(defOf("alpha", nil, nil), echoHandler))
	require.NoError(t, r.Register(defOf("beta", nil, nil), echoHandler))
	require.NoError(t, r.Register(defOf("gamma", nil, nil), echoHandler))

	names := func(defs []Definition) []string {
		out := make([]string, len(defs))
		for i, d := range defs {
			out[i] = d.Name
		}
		return out
	}

	// no scope configured: everything, sorted
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names(r.ListTools("billing")))

	r.SetProjectTools("billing", []string{"beta"})
	assert.Equal(t, []string{"beta"}, names(r.ListTools("billing")))

	// meta ignores scoping entirely
	r.SetProjectTools(models.MetaProject, []string{"beta"})
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names(r.ListTools(models.MetaProject)))

	// other projects remain unrestricted
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names(r.ListTools("website")))

	// an empty list clears the restriction, matching a reload that
	// dropped the project's tool list
	r.SetProjectTools("billing", nil)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names(r.ListTools("billing")))
}

func TestExecute_ScopeErrors(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(defOf("visible", nil, nil), echoHandler))
	require.NoError(t, r.Register(defOf("hidden", nil, nil), echoHandler))
	r.SetProjectTools("billing", []string{"visible"})

	_, err := r.Execute(context.Background(), "billing", "nope", nil, models.CallerContext{})
	assert.ErrorIs(t, err, ErrUnknownTool)

	_, err = r.Execute(context.Background(), "billing", "hidden", nil, models.CallerContext{})
	assert.ErrorIs(t, err, ErrOutOfScope)

	// meta can still call the hidden tool
	_, err = r.Execute(context.Background(), models.MetaProject, "hidden", nil, models.CallerContext{})
	require.NoError(t, err)
}

func TestExecute_SchemaValidation(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(defOf("greet", []string{"name"}, map[string]any{
		"name":  str("who to greet"),
		"count": num("repeat count"),
	}), echoHandler))

	_, err := r.Execute(context.Background(), "p", "greet", map[string]any{}, models.CallerContext{})
	require.Error(t, err, "missing required field")
	assert.Equal(t, models.KindValidation, models.KindOf(err))

	_, err = r.Execute(context.Background(), "p", "greet", map[string]any{"name": 42.0}, models.CallerContext{})
	require.Error(t, err, "wrong type")
	assert.Equal(t, models.KindValidation, models.KindOf(err))

	result, err := r.Execute(context.Background(), "p", "greet", map[string]any{"name": "ada", "count": 2.0}, models.CallerContext{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "ada", "count": 2.0}, result)
}

func TestExecute_NilArgs(t *testing.T) {
	r := NewRegistry()
	var got map[string]any
	require.NoError(t, r.Register(defOf("probe", nil, nil), func(_ context.Context, _ models.CallerContext, args map[string]any) (any, error) {
		got = args
		return nil, nil
	}))

	_, err := r.Execute(context.Background(), "p", "probe", nil, models.CallerContext{})
	require.NoError(t, err)
	assert.NotNil(t, got, "handlers never see a nil args map")
}

func TestExecute_CallerPassthrough(t *testing.T) {
	r := NewRegistry()
	var seen models.CallerContext
	require.NoError(t, r.Register(defOf("whoami", nil, nil), func(_ context.Context, caller models.CallerContext, _ map[string]any) (any, error) {
		seen = caller
		return nil, nil
	}))

	caller := models.CallerContext{
		InstanceID: "billing-PS-abc123",
		Project:    &models.ProjectContext{Name: "billing", Path: "/srv/billing"},
	}
	_, err := r.Execute(context.Background(), "billing", "whoami", nil, caller)
	require.NoError(t, err)
	assert.Equal(t, caller, seen)
}
