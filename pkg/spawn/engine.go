// Package spawn launches subagent CLI processes for a task: routes to a
// backend, renders instructions, executes against the project directory
// and records the attempt.
package spawn

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/ent/activespawn"
	"github.com/praxisworks/supervisor/pkg/cliadapter"
	"github.com/praxisworks/supervisor/pkg/config"
	"github.com/praxisworks/supervisor/pkg/models"
	"github.com/praxisworks/supervisor/pkg/router"
	"github.com/praxisworks/supervisor/pkg/services"
	"github.com/praxisworks/supervisor/pkg/template"
)

// Engine executes one subagent per Spawn call. It never retries on its
// own and never falls back to the supervisor's working directory.
type Engine struct {
	client    *ent.Client
	router    *router.Router
	adapters  *cliadapter.Registry
	templates *template.Library
	events    *services.EventLogService
	cfg       *config.SpawnConfig
	hostname  string
	slots     chan struct{}
	logger    *slog.Logger
}

// NewEngine creates a spawn engine. cfg.MaxConcurrent caps concurrent CLI
// processes across all callers.
func NewEngine(client *ent.Client, rtr *router.Router, adapters *cliadapter.Registry, templates *template.Library, events *services.EventLogService, cfg *config.SpawnConfig) *Engine {
	hostname, _ := os.Hostname()
	max := cfg.MaxConcurrent
	if max <= 0 {
		max = 1
	}
	return &Engine{
		client:    client,
		router:    rtr,
		adapters:  adapters,
		templates: templates,
		events:    events,
		cfg:       cfg,
		hostname:  hostname,
		slots:     make(chan struct{}, max),
		logger:    slog.With("component", "spawn_engine"),
	}
}

// Spawn runs one subagent to completion. Failures are reported in the
// result, never panicked; precondition failures (validation, missing
// project context, exhausted quota, no template) leave no spawn row and
// no files, but the command audit log still records the rejected attempt
// with zero duration.
func (e *Engine) Spawn(ctx context.Context, params models.SpawnParams, caller models.CallerContext) *models.SpawnResult {
	start := time.Now()

	if !models.ValidTaskType(params.TaskType) {
		return e.reject(caller, params, models.NewKindError(models.KindValidation, fmt.Sprintf("unknown task type %q", params.TaskType)))
	}
	if params.Description == "" {
		return e.reject(caller, params, models.NewKindError(models.KindValidation, "description must not be empty"))
	}

	projectPath, err := resolveProjectPath(params, caller)
	if err != nil {
		return e.reject(caller, params, err)
	}
	projectName := stringFromContext(params.Context, "project_name")
	if projectName == "" {
		projectName = filepath.Base(projectPath)
	}

	decision, err := e.router.Route(ctx, models.RouteRequest{
		TaskType:        params.TaskType,
		Description:     params.Description,
		ComplexityHint:  params.ComplexityHint,
		EstimatedTokens: params.EstimatedTokens,
	})
	if err != nil {
		return e.reject(caller, params, err)
	}

	adapter, err := e.adapters.Get(decision.Service)
	if err != nil {
		return e.reject(caller, params, err)
	}

	tmpl, err := e.templates.Select(params.TaskType, params.Description)
	if err != nil {
		return e.reject(caller, params, err)
	}
	instructions, err := tmpl.Render(template.RenderVars{
		TaskDescription: params.Description,
		ProjectPath:     projectPath,
		ProjectName:     projectName,
		Context:         params.Context,
		CurrentTask:     stringFromContext(params.Context, "current_task"),
		CompletedTasks:  stringsFromContext(params.Context, "completed_tasks"),
	})
	if err != nil {
		return e.reject(caller, params, err)
	}

	// concurrency cap: wait for a slot, bounded by the caller's deadline.
	// Nothing is written to disk before the slot is held, so a caller that
	// gives up while queueing leaves no files behind.
	select {
	case e.slots <- struct{}{}:
		defer func() { <-e.slots }()
	case <-ctx.Done():
		return e.reject(caller, params, models.NewKindError(models.KindCancelled, "cancelled while waiting for a spawn slot"))
	}

	runCtx := ctx
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && e.cfg.DefaultTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.cfg.DefaultTimeout)
		defer cancel()
	}
	deadline, _ := runCtx.Deadline()

	agentID := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), randomSuffix())
	paths, err := e.writeInstructions(agentID, instructions)
	if err != nil {
		return e.reject(caller, params, err)
	}

	row, err := e.createSpawnRow(ctx, agentID, params, caller, decision, projectPath, projectName, paths, deadline)
	if err != nil {
		_ = os.Remove(paths.instructions)
		return e.reject(caller, params, err)
	}
	e.recordSpawnEvent(caller, agentID, params, decision)

	e.logger.Info("Spawning subagent",
		"agent_id", agentID,
		"task_type", params.TaskType,
		"service", decision.Service,
		"model", decision.Model,
		"project", projectName)

	runResult, runErr := adapter.Run(runCtx, cliadapter.RunSpec{
		InstructionsPath: paths.instructions,
		Cwd:              projectPath,
		Model:            decision.Model,
		StdoutPath:       paths.output,
		StderrPath:       paths.stderr,
		KillGrace:        e.cfg.KillGrace,
	})

	result := e.finish(row, params, caller, decision, runResult, runErr, time.Since(start))
	return result
}

type spawnPaths struct {
	instructions string
	output       string
	stderr       string
}

func (e *Engine) writeInstructions(agentID, instructions string) (spawnPaths, error) {
	dir := e.cfg.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	paths := spawnPaths{
		instructions: filepath.Join(dir, fmt.Sprintf("agent-%s-instructions.md", agentID)),
		output:       filepath.Join(dir, fmt.Sprintf("agent-%s-output.log", agentID)),
		stderr:       filepath.Join(dir, fmt.Sprintf("agent-%s-stderr.log", agentID)),
	}
	if err := os.WriteFile(paths.instructions, []byte(instructions), 0o644); err != nil {
		return paths, models.WrapKind(models.KindAdapterIO, "writing instructions file", err)
	}
	return paths, nil
}

func (e *Engine) createSpawnRow(ctx context.Context, agentID string, params models.SpawnParams, caller models.CallerContext, decision *models.RouteDecision, projectPath, projectName string, paths spawnPaths, deadline time.Time) (*ent.ActiveSpawn, error) {
	create := e.client.ActiveSpawn.Create().
		SetID(agentID).
		SetProjectPath(projectPath).
		SetProjectName(projectName).
		SetTaskType(string(params.TaskType)).
		SetDescription(params.Description).
		SetService(decision.Service).
		SetModel(decision.Model).
		SetInstructionsPath(paths.instructions).
		SetOutputPath(paths.output)
	if caller.InstanceID != "" {
		create.SetInstanceID(caller.InstanceID)
	}
	if len(params.Context) > 0 {
		create.SetContext(params.Context)
	}
	if e.hostname != "" {
		create.SetHostMachine(e.hostname)
	}
	if !deadline.IsZero() {
		create.SetDeadlineAt(deadline)
	}
	row, err := create.Save(ctx)
	if err != nil {
		return nil, models.WrapKind(models.KindInternal, "recording spawn", err)
	}
	return row, nil
}

// finish updates the spawn row, logs the command audit row and builds the
// result. Persistence happens on a background context so a cancelled
// caller still gets an accurate record.
func (e *Engine) finish(row *ent.ActiveSpawn, params models.SpawnParams, caller models.CallerContext, decision *models.RouteDecision, runResult *cliadapter.RunResult, runErr error, elapsed time.Duration) *models.SpawnResult {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result := &models.SpawnResult{
		Success:      runErr == nil,
		AgentID:      row.ID,
		ServiceUsed:  decision.Service,
		ModelUsed:    decision.Model,
		DurationMs:   elapsed.Milliseconds(),
		CostEstimate: decision.EstimatedCostUSD,
	}
	if runResult != nil {
		result.OutputPath = runResult.StdoutPath
		result.DurationMs = runResult.DurationMs
	}

	status := activespawn.StatusCompleted
	if runErr != nil {
		result.ErrorKind = models.KindOf(runErr)
		result.Error = runErr.Error()
		if result.ErrorKind == models.KindTimeout {
			status = activespawn.StatusStalled
		} else {
			status = activespawn.StatusFailed
		}
	}

	update := row.Update().
		SetStatus(status).
		SetEndedAt(time.Now())
	if runResult != nil {
		update.SetExitCode(runResult.ExitCode)
	}
	if result.Error != "" {
		update.SetErrorMessage(result.Error)
	}
	if err := update.Exec(ctx); err != nil {
		e.logger.Error("Failed to update spawn record", "agent_id", row.ID, "error", err)
	}

	if _, err := e.events.LogCommand(ctx, caller.InstanceID, models.CommandEntry{
		CommandType:     "spawn",
		Action:          string(params.TaskType),
		ToolName:        "spawn_subagent",
		Parameters:      map[string]any{"description": params.Description, "service": decision.Service, "model": decision.Model},
		Result:          map[string]any{"agent_id": row.ID, "cost_estimate": result.CostEstimate},
		Success:         result.Success,
		ErrorMessage:    result.Error,
		ExecutionTimeMs: result.DurationMs,
		Tags:            []string{decision.Service, decision.Model},
	}); err != nil {
		e.logger.Warn("Failed to log spawn command", "agent_id", row.ID, "error", err)
	}

	e.logger.Info("Subagent finished",
		"agent_id", row.ID,
		"status", status,
		"duration_ms", result.DurationMs)
	return result
}

// recordSpawnEvent emits task_spawned on the caller's stream, when there
// is one.
func (e *Engine) recordSpawnEvent(caller models.CallerContext, agentID string, params models.SpawnParams, decision *models.RouteDecision) {
	if caller.InstanceID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := e.events.LogEvent(ctx, models.LogEventRequest{
		InstanceID: caller.InstanceID,
		EventType:  "task_spawned",
		EventData: map[string]any{
			"agent_id":  agentID,
			"task_type": string(params.TaskType),
			"service":   decision.Service,
			"model":     decision.Model,
		},
	}); err != nil {
		e.logger.Warn("Failed to record task_spawned event", "agent_id", agentID, "error", err)
	}
}

// resolveProjectPath applies the strict resolution order: explicit
// context value, then the caller's endpoint project. The supervisor's own
// working directory is never a fallback.
func resolveProjectPath(params models.SpawnParams, caller models.CallerContext) (string, error) {
	path := stringFromContext(params.Context, "project_path")
	if path == "" && caller.Project != nil {
		path = caller.Project.Path
	}
	if path == "" {
		return "", models.NewKindError(models.KindNoProjectContext,
			"no project path in context and no project endpoint on the call")
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", models.WrapKind(models.KindValidation, fmt.Sprintf("project path %q", path), err)
	}
	if !info.IsDir() {
		return "", models.NewKindError(models.KindValidation, fmt.Sprintf("project path %q is not a directory", path))
	}
	return path, nil
}

// reject records an attempt that never reached the backend CLI in the
// command audit log, with zero duration, and builds the failure result.
// These paths leave no spawn row and no instruction file.
func (e *Engine) reject(caller models.CallerContext, params models.SpawnParams, err error) *models.SpawnResult {
	result := failureErr(err)

	action := string(params.TaskType)
	if action == "" {
		action = "spawn"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, logErr := e.events.LogCommand(ctx, caller.InstanceID, models.CommandEntry{
		CommandType:  "spawn",
		Action:       action,
		ToolName:     "spawn_subagent",
		Parameters:   map[string]any{"description": params.Description},
		Success:      false,
		ErrorMessage: result.Error,
	}); logErr != nil {
		e.logger.Warn("Failed to log rejected spawn attempt", "error", logErr)
	}
	return result
}

func failureErr(err error) *models.SpawnResult {
	return &models.SpawnResult{Success: false, ErrorKind: models.KindOf(err), Error: err.Error()}
}

func stringFromContext(ctx map[string]any, key string) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx[key].(string); ok {
		return v
	}
	return ""
}

func stringsFromContext(ctx map[string]any, key string) []string {
	if ctx == nil {
		return nil
	}
	switch v := ctx[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func randomSuffix() string {
	b := make([]byte, 3)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
