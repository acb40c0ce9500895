// Package orchestrator drives epic execution: sequential implementation
// spawns with per-phase deadlines, then bounded-concurrency validation of
// every acceptance criterion.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/pkg/config"
	"github.com/praxisworks/supervisor/pkg/epic"
	"github.com/praxisworks/supervisor/pkg/models"
)

// Phases reported in outcomes.
const (
	PhasePrime    = "prime"
	PhasePlan     = "plan"
	PhaseExecute  = "execute"
	PhaseValidate = "validate"
)

// Spawner launches one subagent. The spawn engine implements it.
type Spawner interface {
	Spawn(ctx context.Context, params models.SpawnParams, caller models.CallerContext) *models.SpawnResult
}

// eventSink is the slice of the event log service the orchestrator needs.
type eventSink interface {
	LogEvent(ctx context.Context, req models.LogEventRequest) (*ent.Event, error)
}

// PRFunc is the git/PR collaborator hook, invoked only on full success.
type PRFunc func(ctx context.Context, projectPath, title, body string) (url string, err error)

// EpicRequest identifies the epic to run and where.
type EpicRequest struct {
	ProjectName string `json:"project_name"`
	ProjectPath string `json:"project_path"`
	EpicFile    string `json:"epic_file"`
	CreatePR    bool   `json:"create_pr,omitempty"`

	// CompletedTasks lets RunExecute resume mid-epic: implementation
	// steps whose text appears here are skipped.
	CompletedTasks []string `json:"completed_tasks,omitempty"`
}

// CriterionResult is one validated acceptance criterion.
type CriterionResult struct {
	Criterion string `json:"criterion"`
	Section   string `json:"section"`
	Met       bool   `json:"met"`
	Evidence  string `json:"evidence,omitempty"`
}

// CriteriaValidation aggregates the validation phase.
type CriteriaValidation struct {
	AllMet  bool              `json:"all_met"`
	Results []CriterionResult `json:"results"`
}

// Outcome is the terminal state of an orchestrator run.
type Outcome struct {
	Success            bool                `json:"success"`
	Phase              string              `json:"phase,omitempty"`
	TaskIndex          int                 `json:"task_index,omitempty"`
	TasksCompleted     int                 `json:"tasks_completed"`
	Reason             string              `json:"reason,omitempty"`
	ErrorKind          models.ErrorKind    `json:"error_kind,omitempty"`
	CriteriaValidation *CriteriaValidation `json:"criteria_validation,omitempty"`
	Warnings           []string            `json:"warnings,omitempty"`
	PRURL              string              `json:"pr_url,omitempty"`
}

// Orchestrator runs epics through the LOADED → IMPLEMENTING → VALIDATING
// → DONE state machine. It owns no retries; callers restart failed phases
// through the Run* entry points.
type Orchestrator struct {
	spawner  Spawner
	events   eventSink
	cfg      *config.OrchestratorConfig
	createPR PRFunc
	logger   *slog.Logger
}

// New creates an orchestrator. createPR may be nil when no git/PR
// collaborator is wired.
func New(spawner Spawner, events eventSink, cfg *config.OrchestratorConfig, createPR PRFunc) *Orchestrator {
	return &Orchestrator{
		spawner:  spawner,
		events:   events,
		cfg:      cfg,
		createPR: createPR,
		logger:   slog.With("component", "orchestrator"),
	}
}

// ImplementEpic runs the full state machine from a clean start.
func (o *Orchestrator) ImplementEpic(ctx context.Context, caller models.CallerContext, req EpicRequest) *Outcome {
	req.CompletedTasks = nil
	return o.RunExecute(ctx, caller, req)
}

// RunPrime spawns one research subagent over the epic, with the same
// deadline and logging semantics as an implementation phase.
func (o *Orchestrator) RunPrime(ctx context.Context, caller models.CallerContext, req EpicRequest) *Outcome {
	return o.runSinglePhase(ctx, caller, req, PhasePrime, models.TaskResearch,
		"Study the epic and the repository; produce the context a planner needs")
}

// RunPlan spawns one planning subagent over the epic.
func (o *Orchestrator) RunPlan(ctx context.Context, caller models.CallerContext, req EpicRequest) *Outcome {
	return o.runSinglePhase(ctx, caller, req, PhasePlan, models.TaskPlanning,
		"Turn the epic into an ordered implementation plan with acceptance criteria")
}

func (o *Orchestrator) runSinglePhase(ctx context.Context, caller models.CallerContext, req EpicRequest, phase string, taskType models.TaskType, description string) *Outcome {
	doc, _, err := epic.ParseFile(req.EpicFile)
	if err != nil {
		return failed(phase, 0, 0, models.KindValidation, err.Error())
	}

	phaseCtx, cancel := context.WithTimeout(ctx, o.cfg.PhaseTimeout)
	defer cancel()

	res := o.spawner.Spawn(phaseCtx, models.SpawnParams{
		TaskType:    taskType,
		Description: fmt.Sprintf("%s: %s", description, doc.Title),
		Context: map[string]any{
			"project_path": req.ProjectPath,
			"project_name": req.ProjectName,
			"epic_file":    req.EpicFile,
			"epic_content": doc.Serialize(),
		},
	}, caller)
	if !res.Success {
		return failed(phase, 0, 0, res.ErrorKind, res.Error)
	}
	return &Outcome{Success: true, Phase: phase}
}

// RunExecute runs implementation then validation. Steps listed in
// req.CompletedTasks are skipped, so a caller can resume after a failure
// without redoing finished work.
func (o *Orchestrator) RunExecute(ctx context.Context, caller models.CallerContext, req EpicRequest) *Outcome {
	doc, warnings, err := epic.ParseFile(req.EpicFile)
	if err != nil {
		return failed(PhaseExecute, 0, 0, models.KindValidation, err.Error())
	}

	o.emit(caller, "epic_started", map[string]any{"epic_file": req.EpicFile, "epic_id": doc.ID, "title": doc.Title})

	if len(doc.ImplementationNotes) == 0 {
		o.emit(caller, "epic_failed", map[string]any{"epic_id": doc.ID, "reason": "EmptyPlan"})
		out := failed(PhaseExecute, 0, 0, models.KindValidation, "EmptyPlan: epic has no implementation notes")
		out.Warnings = warnings
		return out
	}
	o.emit(caller, "epic_planned", map[string]any{
		"epic_id":  doc.ID,
		"tasks":    len(doc.ImplementationNotes),
		"criteria": len(doc.AcceptanceCriteria),
	})

	completed := append([]string{}, req.CompletedTasks...)
	done := make(map[string]bool, len(completed))
	for _, task := range completed {
		done[task] = true
	}

	epicContent := doc.Serialize()
	for i, note := range doc.ImplementationNotes {
		if done[note] {
			continue
		}
		if out := o.implementTask(ctx, caller, req, doc, epicContent, i, note, completed); out != nil {
			o.emit(caller, "epic_failed", map[string]any{
				"epic_id":    doc.ID,
				"phase":      out.Phase,
				"task_index": out.TaskIndex,
				"reason":     out.Reason,
			})
			out.Warnings = warnings
			return out
		}
		completed = append(completed, note)
	}

	validation := o.validateCriteria(ctx, caller, req, doc, epicContent)
	outcome := &Outcome{
		Success:            validation.AllMet,
		Phase:              PhaseValidate,
		TasksCompleted:     len(completed),
		CriteriaValidation: validation,
		Warnings:           warnings,
	}
	if !validation.AllMet {
		o.emit(caller, "epic_failed", map[string]any{"epic_id": doc.ID, "reason": "criteria unmet"})
		outcome.Reason = "one or more acceptance criteria are not met"
		return outcome
	}

	outcome.Phase = ""
	o.emit(caller, "epic_completed", map[string]any{"epic_id": doc.ID, "tasks_completed": len(completed)})

	if req.CreatePR && o.createPR != nil {
		url, err := o.createPR(ctx, req.ProjectPath,
			fmt.Sprintf("Epic %s: %s", doc.ID, doc.Title),
			fmt.Sprintf("Implements epic %s (%d tasks, %d criteria validated).", doc.ID, len(completed), len(doc.AcceptanceCriteria)))
		if err != nil {
			// the epic itself succeeded; PR failure is reported, not fatal
			outcome.Reason = fmt.Sprintf("pr creation failed: %v", err)
			o.logger.Error("PR creation failed", "epic_id", doc.ID, "error", err)
		} else {
			outcome.PRURL = url
			o.emit(caller, "pr_created", map[string]any{"epic_id": doc.ID, "url": url})
		}
	}
	return outcome
}

// implementTask runs one sequential implementation spawn. nil means the
// task succeeded.
func (o *Orchestrator) implementTask(ctx context.Context, caller models.CallerContext, req EpicRequest, doc *epic.Epic, epicContent string, index int, note string, completed []string) *Outcome {
	o.logger.Info("Implementing epic task",
		"epic_id", doc.ID,
		"task_index", index,
		"task", note)

	phaseCtx, cancel := context.WithTimeout(ctx, o.cfg.PhaseTimeout)
	defer cancel()

	res := o.spawner.Spawn(phaseCtx, models.SpawnParams{
		TaskType:    models.TaskImplementation,
		Description: note,
		Context: map[string]any{
			"project_path":    req.ProjectPath,
			"project_name":    req.ProjectName,
			"epic_file":       req.EpicFile,
			"epic_content":    epicContent,
			"current_task":    note,
			"task_index":      index,
			"completed_tasks": append([]string{}, completed...),
		},
	}, caller)

	if res.Success {
		return nil
	}
	reason := res.Error
	if res.ErrorKind == models.KindTimeout {
		reason = "Timeout"
	}
	return failed(PhaseExecute, index, len(completed), res.ErrorKind, reason)
}

// validateCriteria spawns one validation subagent per criterion with
// bounded concurrency and collects every result before returning.
func (o *Orchestrator) validateCriteria(ctx context.Context, caller models.CallerContext, req EpicRequest, doc *epic.Epic, epicContent string) *CriteriaValidation {
	results := make([]CriterionResult, len(doc.AcceptanceCriteria))

	limit := o.cfg.ValidationConcurrency
	if limit <= 0 {
		limit = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, criterion := range doc.AcceptanceCriteria {
		g.Go(func() error {
			results[i] = o.validateOne(gctx, caller, req, epicContent, criterion)
			return nil
		})
	}
	_ = g.Wait()

	validation := &CriteriaValidation{AllMet: true, Results: results}
	for _, r := range results {
		eventType := "validation_passed"
		if !r.Met {
			validation.AllMet = false
			eventType = "validation_failed"
		}
		o.emit(caller, eventType, map[string]any{
			"criterion": r.Criterion,
			"section":   r.Section,
			"evidence":  r.Evidence,
		})
	}
	return validation
}

func (o *Orchestrator) validateOne(ctx context.Context, caller models.CallerContext, req EpicRequest, epicContent string, criterion epic.Criterion) CriterionResult {
	phaseCtx, cancel := context.WithTimeout(ctx, o.cfg.PhaseTimeout)
	defer cancel()

	res := o.spawner.Spawn(phaseCtx, models.SpawnParams{
		TaskType:    models.TaskValidation,
		Description: fmt.Sprintf("Verify acceptance criterion: %s", criterion.Text),
		Context: map[string]any{
			"project_path": req.ProjectPath,
			"project_name": req.ProjectName,
			"epic_content": epicContent,
			"current_task": criterion.Text,
			"section":      criterion.Section,
		},
	}, caller)

	result := CriterionResult{Criterion: criterion.Text, Section: criterion.Section}
	if !res.Success {
		result.Evidence = fmt.Sprintf("validation spawn failed: %s", res.Error)
		return result
	}
	met, evidence, err := parseValidationOutput(res.OutputPath)
	if err != nil {
		result.Evidence = fmt.Sprintf("unparseable validator output: %v", err)
		return result
	}
	result.Met = met
	result.Evidence = evidence
	return result
}

// parseValidationOutput reads the validator's verdict: the last line of
// output that is a JSON object with a "met" field.
func parseValidationOutput(path string) (bool, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, "", err
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var verdict struct {
			Met      *bool  `json:"met"`
			Evidence string `json:"evidence"`
		}
		if err := json.Unmarshal([]byte(line), &verdict); err != nil || verdict.Met == nil {
			continue
		}
		return *verdict.Met, verdict.Evidence, nil
	}
	return false, "", fmt.Errorf("no verdict line found")
}

// emit records an epic lifecycle event on the caller's stream, when there
// is one. Event failures never fail the run.
func (o *Orchestrator) emit(caller models.CallerContext, eventType string, data map[string]any) {
	if caller.InstanceID == "" || o.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := o.events.LogEvent(ctx, models.LogEventRequest{
		InstanceID: caller.InstanceID,
		EventType:  eventType,
		EventData:  data,
	}); err != nil {
		o.logger.Warn("Failed to record epic event", "event_type", eventType, "error", err)
	}
}

func failed(phase string, taskIndex, tasksCompleted int, kind models.ErrorKind, reason string) *Outcome {
	return &Outcome{
		Phase:          phase,
		TaskIndex:      taskIndex,
		TasksCompleted: tasksCompleted,
		ErrorKind:      kind,
		Reason:         reason,
	}
}
