// Package tools implements the global tool registry with per-project
// scoping and JSON Schema input validation.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/praxisworks/supervisor/pkg/models"
)

// Scope errors. Both map to JSON-RPC -32601: a caller must not be able
// to distinguish a tool that does not exist from one hidden by scope.
var (
	ErrUnknownTool = models.NewKindError(models.KindNotFound, "unknown tool")
	ErrOutOfScope  = models.NewKindError(models.KindNotFound, "tool not available on this endpoint")
)

// Handler executes one tool call. args have already passed schema
// validation.
type Handler func(ctx context.Context, caller models.CallerContext, args map[string]any) (any, error)

// Definition describes a tool as advertised by tools/list.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type registeredTool struct {
	def     Definition
	schema  *jsonschema.Schema
	handler Handler
}

// Registry holds the global tool set and per-project visibility.
// The meta project always sees everything.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]*registeredTool
	scopes map[string]map[string]bool // project → visible tool names
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools:  map[string]*registeredTool{},
		scopes: map[string]map[string]bool{},
		logger: slog.With("component", "tools"),
	}
}

// Register adds a global tool definition. The input schema is compiled
// once at registration; a nil schema means any object is accepted.
func (r *Registry) Register(def Definition, handler Handler) error {
	if strings.TrimSpace(def.Name) == "" {
		return models.NewKindError(models.KindValidation, "tool name is required")
	}
	if handler == nil {
		return models.NewKindError(models.KindValidation, fmt.Sprintf("tool %s has no handler", def.Name))
	}
	schema, err := compileSchema(def.InputSchema)
	if err != nil {
		return models.WrapKind(models.KindValidation, fmt.Sprintf("tool %s schema", def.Name), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[def.Name]; exists {
		return models.NewKindError(models.KindConflict, fmt.Sprintf("tool %s already registered", def.Name))
	}
	r.tools[def.Name] = &registeredTool{def: def, schema: schema, handler: handler}
	return nil
}

// SetProjectTools restricts which tools a project endpoint sees. Names
// not registered yet are kept; they become visible once registered.
// An empty list removes the restriction, so a config reload that drops
// a project's tool list restores full visibility. Calling with the meta
// project is a no-op by design: meta sees all.
func (r *Registry) SetProjectTools(project string, names []string) {
	if project == models.MetaProject {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(names) == 0 {
		delete(r.scopes, project)
		return
	}
	visible := make(map[string]bool, len(names))
	for _, name := range names {
		visible[name] = true
	}
	r.scopes[project] = visible
}

// ListTools returns the definitions visible on a project endpoint,
// sorted by name. A project without an explicit scope sees everything.
func (r *Registry) ListTools(project string) []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scope, restricted := r.scopes[project]
	out := make([]Definition, 0, len(r.tools))
	for name, t := range r.tools {
		if restricted && project != models.MetaProject && !scope[name] {
			continue
		}
		out = append(out, t.def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Execute validates scope and input, then dispatches to the handler.
func (r *Registry) Execute(ctx context.Context, project, name string, args map[string]any, caller models.CallerContext) (any, error) {
	r.mu.RLock()
	t, exists := r.tools[name]
	scope, restricted := r.scopes[project]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if restricted && project != models.MetaProject && !scope[name] {
		return nil, fmt.Errorf("%w: %s", ErrOutOfScope, name)
	}

	if args == nil {
		args = map[string]any{}
	}
	if t.schema != nil {
		if err := t.schema.Validate(args); err != nil {
			return nil, models.WrapKind(models.KindValidation, fmt.Sprintf("invalid arguments for %s", name), err)
		}
	}

	result, err := t.handler(ctx, caller, args)
	if err != nil {
		r.logger.Warn("Tool execution failed", "tool", name, "project", project, "error", err)
		return nil, err
	}
	return result, nil
}

func compileSchema(params map[string]any) (*jsonschema.Schema, error) {
	if params == nil {
		params = map[string]any{"type": "object", "properties": map[string]any{}}
	}
	// a nil properties map marshals to JSON null, which the 2020-12
	// metaschema rejects
	if v, ok := params["properties"]; ok && v == nil {
		clone := make(map[string]any, len(params))
		for k, val := range params {
			clone[k] = val
		}
		clone["properties"] = map[string]any{}
		params = clone
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", strings.NewReader(string(raw))); err != nil {
		return nil, err
	}
	return c.Compile("schema.json")
}
