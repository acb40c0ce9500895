// Package router selects a backend AI service and model for a task using
// a deterministic policy over the configured model catalog and live quota.
package router

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/praxisworks/supervisor/pkg/config"
	"github.com/praxisworks/supervisor/pkg/models"
)

// QuotaProvider reports whether a backend service currently has quota.
// The CLI adapter registry implements it.
type QuotaProvider interface {
	QuotaAvailable(ctx context.Context, service string) (bool, string)
}

// tier ranking for "highest-tier available"
var tierRank = map[string]int{"flash": 1, "mid": 2, "top": 3}

// Router applies the routing policy. Decisions are deterministic for a
// given request, catalog and quota state.
type Router struct {
	cfg    *config.RouterConfig
	quota  QuotaProvider
	logger *slog.Logger
}

// NewRouter creates a router over the given catalog and quota source.
func NewRouter(cfg *config.RouterConfig, quota QuotaProvider) *Router {
	return &Router{
		cfg:    cfg,
		quota:  quota,
		logger: slog.With("component", "router"),
	}
}

// Route picks a service and model for the request. Policy, in priority
// order:
//  1. complex hint or a complexity keyword in the description → Claude,
//     highest tier in the catalog
//  2. research / documentation / planning → cheapest gemini model with
//     enough context for the estimate; cheapest overall when the catalog
//     has no gemini models
//  3. otherwise Codex mid-tier
//
// When the preferred service has no quota the cheapest model on any
// service that still has quota wins; with every service exhausted the
// request fails with QuotaExhausted.
func (r *Router) Route(ctx context.Context, req models.RouteRequest) (*models.RouteDecision, error) {
	tokens := req.EstimatedTokens
	if tokens <= 0 {
		tokens = r.cfg.DefaultEstimatedTokens
	}

	preferred, reasoning := r.prefer(req, tokens)
	if preferred == nil {
		return nil, models.NewKindError(models.KindInternal, "model catalog is empty")
	}

	available, reason := r.quota.QuotaAvailable(ctx, preferred.Service)
	if !available {
		fallback := r.cheapestAvailable(ctx, tokens)
		if fallback == nil {
			return nil, models.NewKindError(models.KindQuotaExhausted, "all backend services report exhausted quota")
		}
		reasoning = fmt.Sprintf("%s; %s quota exhausted (%s), fell back to cheapest available", reasoning, preferred.Service, reason)
		preferred = fallback
	}

	decision := &models.RouteDecision{
		Service:          preferred.Service,
		Model:            preferred.Model,
		EstimatedCostUSD: roundCost(preferred.PricePerToken * float64(tokens)),
		Reasoning:        reasoning,
	}
	r.logger.Debug("Routed task",
		"task_type", req.TaskType,
		"service", decision.Service,
		"model", decision.Model,
		"estimated_cost_usd", decision.EstimatedCostUSD)
	return decision, nil
}

// prefer applies policy steps 1-3 without looking at quota.
func (r *Router) prefer(req models.RouteRequest, tokens int) (*config.ModelConfig, string) {
	if r.isComplex(req) {
		if m := r.highestTier("claude"); m != nil {
			return m, "complex task, routed to claude highest tier"
		}
	}
	switch req.TaskType {
	case models.TaskResearch, models.TaskDocumentation, models.TaskPlanning:
		// cheap task types stay on gemini; other vendors compete only
		// when the catalog carries no gemini model
		if m := r.cheapestWithContext(r.serviceModels("gemini"), tokens); m != nil {
			return m, fmt.Sprintf("%s task, routed to cheapest gemini model with sufficient context", req.TaskType)
		}
		if m := r.cheapestWithContext(r.cfg.Models, tokens); m != nil {
			return m, fmt.Sprintf("%s task, routed to cheapest model with sufficient context", req.TaskType)
		}
	}
	if m := r.pick("codex", "mid"); m != nil {
		return m, "default codex mid-tier"
	}
	// degenerate catalogs still route deterministically
	return r.cheapestWithContext(r.cfg.Models, tokens), "default, cheapest model with sufficient context"
}

func (r *Router) isComplex(req models.RouteRequest) bool {
	if req.ComplexityHint == models.ComplexityComplex {
		return true
	}
	desc := strings.ToLower(req.Description)
	for _, kw := range r.cfg.ComplexKeywords {
		if strings.Contains(desc, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// highestTier returns the highest-tier model of a service, ties broken by
// price then model name.
func (r *Router) highestTier(service string) *config.ModelConfig {
	var best *config.ModelConfig
	for i := range r.cfg.Models {
		m := &r.cfg.Models[i]
		if m.Service != service {
			continue
		}
		if best == nil ||
			tierRank[m.Tier] > tierRank[best.Tier] ||
			(tierRank[m.Tier] == tierRank[best.Tier] && lessByPriceThenName(m, best)) {
			best = m
		}
	}
	return best
}

// serviceModels returns the catalog entries for one service.
func (r *Router) serviceModels(service string) []config.ModelConfig {
	var out []config.ModelConfig
	for _, m := range r.cfg.Models {
		if m.Service == service {
			out = append(out, m)
		}
	}
	return out
}

func (r *Router) pick(service, tier string) *config.ModelConfig {
	for i := range r.cfg.Models {
		m := &r.cfg.Models[i]
		if m.Service == service && m.Tier == tier {
			return m
		}
	}
	return nil
}

// cheapestWithContext returns the cheapest model whose context window fits
// the token estimate; when nothing fits, the cheapest overall.
func (r *Router) cheapestWithContext(catalog []config.ModelConfig, tokens int) *config.ModelConfig {
	fitting := make([]*config.ModelConfig, 0, len(catalog))
	var all []*config.ModelConfig
	for i := range catalog {
		m := &catalog[i]
		all = append(all, m)
		if m.ContextTokens >= tokens {
			fitting = append(fitting, m)
		}
	}
	if len(fitting) == 0 {
		fitting = all
	}
	if len(fitting) == 0 {
		return nil
	}
	sort.Slice(fitting, func(i, j int) bool { return lessByPriceThenName(fitting[i], fitting[j]) })
	return fitting[0]
}

// cheapestAvailable returns the cheapest fitting model on a service that
// still reports quota, or nil when every service is exhausted.
func (r *Router) cheapestAvailable(ctx context.Context, tokens int) *config.ModelConfig {
	availability := map[string]bool{}
	var usable []config.ModelConfig
	for _, m := range r.cfg.Models {
		ok, known := availability[m.Service]
		if !known {
			ok, _ = r.quota.QuotaAvailable(ctx, m.Service)
			availability[m.Service] = ok
		}
		if ok {
			usable = append(usable, m)
		}
	}
	return r.cheapestWithContext(usable, tokens)
}

func lessByPriceThenName(a, b *config.ModelConfig) bool {
	if a.PricePerToken != b.PricePerToken {
		return a.PricePerToken < b.PricePerToken
	}
	return a.Model < b.Model
}

// roundCost rounds to 4 decimal places for accounting.
func roundCost(x float64) float64 {
	return math.Round(x*10_000) / 10_000
}
