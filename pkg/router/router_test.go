package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisworks/supervisor/pkg/config"
	"github.com/praxisworks/supervisor/pkg/models"
)

// fakeQuota reports exhausted quota for the listed services.
type fakeQuota struct {
	exhausted map[string]bool
}

func (f *fakeQuota) QuotaAvailable(_ context.Context, service string) (bool, string) {
	if f.exhausted[service] {
		return false, "rate limited"
	}
	return true, ""
}

func newTestRouter(exhausted ...string) *Router {
	ex := map[string]bool{}
	for _, s := range exhausted {
		ex[s] = true
	}
	return NewRouter(config.DefaultRouterConfig(), &fakeQuota{exhausted: ex})
}

func TestRouter_ComplexityRouting(t *testing.T) {
	r := newTestRouter()
	ctx := context.Background()

	t.Run("explicit hint routes to claude top tier", func(t *testing.T) {
		d, err := r.Route(ctx, models.RouteRequest{
			TaskType:       models.TaskImplementation,
			Description:    "refactor the parser",
			ComplexityHint: models.ComplexityComplex,
		})
		require.NoError(t, err)
		assert.Equal(t, "claude", d.Service)
		assert.Equal(t, "claude-opus-4", d.Model)
	})

	t.Run("keyword in description routes to claude", func(t *testing.T) {
		for _, desc := range []string{
			"redesign the service ARCHITECTURE",
			"fix a critical incident",
			"harden the production deploy",
		} {
			d, err := r.Route(ctx, models.RouteRequest{
				TaskType:    models.TaskFix,
				Description: desc,
			})
			require.NoError(t, err)
			assert.Equal(t, "claude", d.Service, "description %q", desc)
		}
	})
}

func TestRouter_CheapTaskTypes(t *testing.T) {
	r := newTestRouter()
	ctx := context.Background()

	// gpt-5-codex-mini undercuts gemini-2.5-flash in the default catalog;
	// cheap task types still go to gemini
	for _, tt := range []models.TaskType{models.TaskResearch, models.TaskDocumentation, models.TaskPlanning} {
		d, err := r.Route(ctx, models.RouteRequest{
			TaskType:    tt,
			Description: "summarize the codebase",
		})
		require.NoError(t, err)
		assert.Equal(t, "gemini", d.Service, "task %s", tt)
		assert.Equal(t, "gemini-2.5-flash", d.Model)
	}

	t.Run("no gemini in catalog falls back to cheapest overall", func(t *testing.T) {
		cfg := config.DefaultRouterConfig()
		kept := cfg.Models[:0]
		for _, m := range cfg.Models {
			if m.Service != "gemini" {
				kept = append(kept, m)
			}
		}
		cfg.Models = kept

		r := NewRouter(cfg, &fakeQuota{exhausted: map[string]bool{}})
		d, err := r.Route(ctx, models.RouteRequest{
			TaskType:    models.TaskResearch,
			Description: "summarize the codebase",
		})
		require.NoError(t, err)
		assert.Equal(t, "codex", d.Service)
		assert.Equal(t, "gpt-5-codex-mini", d.Model)
	})
}

func TestRouter_Default(t *testing.T) {
	r := newTestRouter()

	d, err := r.Route(context.Background(), models.RouteRequest{
		TaskType:    models.TaskImplementation,
		Description: "add pagination to the list endpoint",
	})
	require.NoError(t, err)
	assert.Equal(t, "codex", d.Service)
	assert.Equal(t, "gpt-5-codex", d.Model)
}

func TestRouter_QuotaFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("preferred exhausted falls back to cheapest available", func(t *testing.T) {
		r := newTestRouter("codex")
		d, err := r.Route(ctx, models.RouteRequest{
			TaskType:    models.TaskImplementation,
			Description: "add pagination",
		})
		require.NoError(t, err)
		assert.Equal(t, "gemini", d.Service)
		assert.Equal(t, "gemini-2.5-flash", d.Model)
		assert.Contains(t, d.Reasoning, "quota exhausted")
	})

	t.Run("all exhausted", func(t *testing.T) {
		r := newTestRouter("claude", "gemini", "codex")
		_, err := r.Route(ctx, models.RouteRequest{
			TaskType:    models.TaskImplementation,
			Description: "add pagination",
		})
		require.Error(t, err)
		assert.True(t, models.IsKind(err, models.KindQuotaExhausted))
	})
}

func TestRouter_CostEstimate(t *testing.T) {
	r := newTestRouter()

	d, err := r.Route(context.Background(), models.RouteRequest{
		TaskType:        models.TaskImplementation,
		Description:     "add pagination",
		EstimatedTokens: 123_456,
	})
	require.NoError(t, err)
	// 0.00001 * 123456 = 1.23456 → 1.2346
	assert.Equal(t, 1.2346, d.EstimatedCostUSD)

	t.Run("default token estimate", func(t *testing.T) {
		d, err := r.Route(context.Background(), models.RouteRequest{
			TaskType:    models.TaskImplementation,
			Description: "add pagination",
		})
		require.NoError(t, err)
		assert.Equal(t, 0.5, d.EstimatedCostUSD) // 0.00001 * 50000
	})
}

func TestRouter_Determinism(t *testing.T) {
	r := newTestRouter()
	req := models.RouteRequest{TaskType: models.TaskResearch, Description: "scan dependencies"}

	first, err := r.Route(context.Background(), req)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		d, err := r.Route(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, first, d)
	}
}
