package tools

import (
	"context"
	"encoding/json"

	"github.com/praxisworks/supervisor/ent"
	"github.com/praxisworks/supervisor/pkg/models"
	"github.com/praxisworks/supervisor/pkg/orchestrator"
	"github.com/praxisworks/supervisor/pkg/services"
)

// Narrow views of the services the builtin tools dispatch to. Tests
// substitute fakes; production wiring passes the concrete services.

type instanceRegistry interface {
	Register(ctx context.Context, req models.RegisterInstanceRequest) (*ent.Instance, error)
	Heartbeat(ctx context.Context, req models.HeartbeatRequest) (*ent.Instance, error)
	List(ctx context.Context, filters models.InstanceFilters) ([]models.InstanceListItem, error)
	GetDetails(ctx context.Context, idOrPrefix string) (*models.InstanceLookup, error)
	Close(ctx context.Context, instanceID, reason string) (*ent.Instance, error)
}

type eventLog interface {
	LogEvent(ctx context.Context, req models.LogEventRequest) (*ent.Event, error)
	ReplayEvents(ctx context.Context, instanceID string, fromSeq, limit int) (*models.EventsResponse, error)
	CreateCheckpoint(ctx context.Context, req models.CreateCheckpointRequest) (*ent.Checkpoint, error)
	LatestCheckpoint(ctx context.Context, instanceID string) (*ent.Checkpoint, error)
}

type secretStore interface {
	Set(ctx context.Context, accessedBy string, req models.SetSecretRequest) error
	Get(ctx context.Context, accessedBy, keyPath string) (string, error)
	List(ctx context.Context, accessedBy, pathPrefix string) ([]models.SecretInfo, error)
	Delete(ctx context.Context, accessedBy, keyPath string) error
}

type spawner interface {
	Spawn(ctx context.Context, params models.SpawnParams, caller models.CallerContext) *models.SpawnResult
}

type epicRunner interface {
	ImplementEpic(ctx context.Context, caller models.CallerContext, req orchestrator.EpicRequest) *orchestrator.Outcome
	RunPrime(ctx context.Context, caller models.CallerContext, req orchestrator.EpicRequest) *orchestrator.Outcome
	RunPlan(ctx context.Context, caller models.CallerContext, req orchestrator.EpicRequest) *orchestrator.Outcome
	RunExecute(ctx context.Context, caller models.CallerContext, req orchestrator.EpicRequest) *orchestrator.Outcome
}

// Collaborators are the external infra helpers exposed as tools. Nil
// fields leave the corresponding tool unregistered.
type Collaborators struct {
	// AllocatePort reserves a port for a named service in the caller's
	// project and returns it.
	AllocatePort func(ctx context.Context, project, serviceName string) (int, error)

	// SyncDNS publishes a hostname→port mapping and returns the public URL.
	SyncDNS func(ctx context.Context, project, hostname string, port int) (string, error)

	// CreatePR opens a pull request for the project working tree.
	CreatePR orchestrator.PRFunc

	// Redact replaces credential-like substrings in text.
	Redact func(text string) string
}

// Deps wires the builtin tool set to the supervisor services.
type Deps struct {
	Registry      instanceRegistry
	Events        eventLog
	Secrets       secretStore
	Spawner       spawner
	Orchestrator  epicRunner
	Collaborators Collaborators
}

// RegisterBuiltins registers the full builtin tool set. Tools whose
// dependency is nil are skipped so partial wirings (tests, the sweep
// command) stay usable.
func RegisterBuiltins(r *Registry, deps Deps) error {
	type entry struct {
		def     Definition
		handler Handler
		enabled bool
	}
	entries := []entry{
		{registerInstanceDef, registerInstance(deps.Registry), deps.Registry != nil},
		{heartbeatDef, heartbeat(deps.Registry), deps.Registry != nil},
		{listInstancesDef, listInstances(deps.Registry), deps.Registry != nil},
		{instanceDetailsDef, instanceDetails(deps.Registry), deps.Registry != nil},
		{closeInstanceDef, closeInstance(deps.Registry), deps.Registry != nil},

		{logEventDef, logEvent(deps.Events), deps.Events != nil},
		{replayEventsDef, replayEvents(deps.Events), deps.Events != nil},
		{createCheckpointDef, createCheckpoint(deps.Events), deps.Events != nil},
		{latestCheckpointDef, latestCheckpoint(deps.Events), deps.Events != nil},

		{secretSetDef, secretSet(deps.Secrets), deps.Secrets != nil},
		{secretGetDef, secretGet(deps.Secrets), deps.Secrets != nil},
		{secretListDef, secretList(deps.Secrets), deps.Secrets != nil},
		{secretDeleteDef, secretDelete(deps.Secrets), deps.Secrets != nil},

		{spawnSubagentDef, spawnSubagent(deps.Spawner), deps.Spawner != nil},

		{implementEpicDef, runEpic(deps.Orchestrator, "implement"), deps.Orchestrator != nil},
		{runPrimeDef, runEpic(deps.Orchestrator, "prime"), deps.Orchestrator != nil},
		{runPlanDef, runEpic(deps.Orchestrator, "plan"), deps.Orchestrator != nil},
		{runExecuteDef, runEpic(deps.Orchestrator, "execute"), deps.Orchestrator != nil},

		{allocatePortDef, allocatePort(deps.Collaborators.AllocatePort), deps.Collaborators.AllocatePort != nil},
		{syncDNSDef, syncDNS(deps.Collaborators.SyncDNS), deps.Collaborators.SyncDNS != nil},
		{createPRDef, createPR(deps.Collaborators.CreatePR), deps.Collaborators.CreatePR != nil},
		{redactTextDef, redactText(deps.Collaborators.Redact), deps.Collaborators.Redact != nil},
	}
	for _, e := range entries {
		if !e.enabled {
			continue
		}
		if err := r.Register(e.def, e.handler); err != nil {
			return err
		}
	}
	return nil
}

// decode binds validated arguments to a request struct.
func decode(args map[string]any, dst any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return models.WrapKind(models.KindValidation, "encoding arguments", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return models.WrapKind(models.KindValidation, "decoding arguments", err)
	}
	return nil
}

// accessor names the caller for secret audit rows.
func accessor(caller models.CallerContext) string {
	if caller.InstanceID != "" {
		return caller.InstanceID
	}
	return services.AnonymousAccessor
}

func obj(required []string, props map[string]any) map[string]any {
	if props == nil {
		props = map[string]any{}
	}
	s := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func str(desc string) map[string]any  { return map[string]any{"type": "string", "description": desc} }
func num(desc string) map[string]any  { return map[string]any{"type": "integer", "description": desc} }
func flag(desc string) map[string]any { return map[string]any{"type": "boolean", "description": desc} }
func dict(desc string) map[string]any { return map[string]any{"type": "object", "description": desc} }

// Instance lifecycle.

var registerInstanceDef = Definition{
	Name:        "register_instance",
	Description: "Register a supervisor session and get its instance id",
	InputSchema: obj([]string{"project", "instance_type"}, map[string]any{
		"project":         str("Project slug"),
		"instance_type":   map[string]any{"type": "string", "enum": []string{"PS", "MS"}},
		"host_machine":    str("Hostname the session runs on"),
		"initial_context": dict("Opaque startup context"),
	}),
}

func registerInstance(reg instanceRegistry) Handler {
	return func(ctx context.Context, _ models.CallerContext, args map[string]any) (any, error) {
		var req struct {
			Project        string         `json:"project"`
			InstanceType   string         `json:"instance_type"`
			HostMachine    string         `json:"host_machine"`
			InitialContext map[string]any `json:"initial_context"`
		}
		if err := decode(args, &req); err != nil {
			return nil, err
		}
		inst, err := reg.Register(ctx, models.RegisterInstanceRequest{
			Project:        req.Project,
			Type:           req.InstanceType,
			HostMachine:    req.HostMachine,
			InitialContext: req.InitialContext,
		})
		if err != nil {
			return nil, err
		}
		return inst, nil
	}
}

var heartbeatDef = Definition{
	Name:        "heartbeat",
	Description: "Report liveness and context window usage for an instance",
	InputSchema: obj([]string{"instance_id", "context_percent"}, map[string]any{
		"instance_id":     str("Instance id"),
		"context_percent": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"current_epic":    str("Epic the session is working on"),
	}),
}

func heartbeat(reg instanceRegistry) Handler {
	return func(ctx context.Context, _ models.CallerContext, args map[string]any) (any, error) {
		var req models.HeartbeatRequest
		if err := decode(args, &req); err != nil {
			return nil, err
		}
		return reg.Heartbeat(ctx, req)
	}
}

var listInstancesDef = Definition{
	Name:        "list_instances",
	Description: "List registered instances with staleness info",
	InputSchema: obj(nil, map[string]any{
		"project":     str("Filter by project slug"),
		"active_only": flag("Exclude closed instances"),
	}),
}

func listInstances(reg instanceRegistry) Handler {
	return func(ctx context.Context, _ models.CallerContext, args map[string]any) (any, error) {
		var filters models.InstanceFilters
		if err := decode(args, &filters); err != nil {
			return nil, err
		}
		items, err := reg.List(ctx, filters)
		if err != nil {
			return nil, err
		}
		return map[string]any{"instances": items, "count": len(items)}, nil
	}
}

var instanceDetailsDef = Definition{
	Name:        "get_instance_details",
	Description: "Look up one instance by id or unique suffix prefix",
	InputSchema: obj([]string{"instance_id"}, map[string]any{
		"instance_id": str("Full id or suffix prefix"),
	}),
}

func instanceDetails(reg instanceRegistry) Handler {
	return func(ctx context.Context, _ models.CallerContext, args map[string]any) (any, error) {
		id, _ := args["instance_id"].(string)
		return reg.GetDetails(ctx, id)
	}
}

var closeInstanceDef = Definition{
	Name:        "close_instance",
	Description: "Close an instance and seal its event stream",
	InputSchema: obj([]string{"instance_id"}, map[string]any{
		"instance_id": str("Instance id"),
		"reason":      str("Why the session ended"),
	}),
}

func closeInstance(reg instanceRegistry) Handler {
	return func(ctx context.Context, _ models.CallerContext, args map[string]any) (any, error) {
		id, _ := args["instance_id"].(string)
		reason, _ := args["reason"].(string)
		return reg.Close(ctx, id, reason)
	}
}

// Event log, checkpoints.

var logEventDef = Definition{
	Name:        "log_event",
	Description: "Append an event to an instance stream",
	InputSchema: obj([]string{"instance_id", "event_type"}, map[string]any{
		"instance_id": str("Instance id"),
		"event_type":  str("Event type"),
		"event_data":  dict("Event payload"),
		"metadata":    dict("Ambient metadata"),
	}),
}

func logEvent(events eventLog) Handler {
	return func(ctx context.Context, _ models.CallerContext, args map[string]any) (any, error) {
		var req models.LogEventRequest
		if err := decode(args, &req); err != nil {
			return nil, err
		}
		return events.LogEvent(ctx, req)
	}
}

var replayEventsDef = Definition{
	Name:        "replay_events",
	Description: "Read an instance's events in sequence order, resumable by from_seq",
	InputSchema: obj([]string{"instance_id"}, map[string]any{
		"instance_id": str("Instance id"),
		"from_seq":    num("First sequence number to return"),
		"limit":       num("Maximum events to return"),
	}),
}

func replayEvents(events eventLog) Handler {
	return func(ctx context.Context, _ models.CallerContext, args map[string]any) (any, error) {
		var req struct {
			InstanceID string `json:"instance_id"`
			FromSeq    int    `json:"from_seq"`
			Limit      int    `json:"limit"`
		}
		if err := decode(args, &req); err != nil {
			return nil, err
		}
		return events.ReplayEvents(ctx, req.InstanceID, req.FromSeq, req.Limit)
	}
}

var createCheckpointDef = Definition{
	Name:        "create_checkpoint",
	Description: "Store a work-state snapshot pinned to the current event sequence",
	InputSchema: obj([]string{"instance_id", "checkpoint_type", "work_state"}, map[string]any{
		"instance_id":            str("Instance id"),
		"checkpoint_type":        map[string]any{"type": "string", "enum": []string{"manual", "automatic"}},
		"context_window_percent": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"work_state":             dict("Snapshot payload"),
	}),
}

func createCheckpoint(events eventLog) Handler {
	return func(ctx context.Context, _ models.CallerContext, args map[string]any) (any, error) {
		var req models.CreateCheckpointRequest
		if err := decode(args, &req); err != nil {
			return nil, err
		}
		return events.CreateCheckpoint(ctx, req)
	}
}

var latestCheckpointDef = Definition{
	Name:        "get_latest_checkpoint",
	Description: "Fetch the most recent checkpoint for an instance",
	InputSchema: obj([]string{"instance_id"}, map[string]any{
		"instance_id": str("Instance id"),
	}),
}

func latestCheckpoint(events eventLog) Handler {
	return func(ctx context.Context, _ models.CallerContext, args map[string]any) (any, error) {
		id, _ := args["instance_id"].(string)
		return events.LatestCheckpoint(ctx, id)
	}
}

// Secrets. Values never appear in list results; every access is audited
// under the caller's instance id.

var secretSetDef = Definition{
	Name:        "secret_set",
	Description: "Store or update an encrypted secret",
	InputSchema: obj([]string{"key_path", "value"}, map[string]any{
		"key_path":    str("Hierarchical key, e.g. projects/billing/api_key"),
		"value":       str("Secret value"),
		"secret_type": str("Freeform classification"),
		"description": str("Human description"),
		"expires_at":  str("RFC 3339 expiry, optional"),
		"metadata":    dict("Non-secret metadata"),
	}),
}

func secretSet(secrets secretStore) Handler {
	return func(ctx context.Context, caller models.CallerContext, args map[string]any) (any, error) {
		var req models.SetSecretRequest
		if err := decode(args, &req); err != nil {
			return nil, err
		}
		if err := secrets.Set(ctx, accessor(caller), req); err != nil {
			return nil, err
		}
		return map[string]any{"key_path": req.KeyPath, "stored": true}, nil
	}
}

var secretGetDef = Definition{
	Name:        "secret_get",
	Description: "Fetch a decrypted secret value",
	InputSchema: obj([]string{"key_path"}, map[string]any{
		"key_path": str("Hierarchical key"),
	}),
}

func secretGet(secrets secretStore) Handler {
	return func(ctx context.Context, caller models.CallerContext, args map[string]any) (any, error) {
		keyPath, _ := args["key_path"].(string)
		value, err := secrets.Get(ctx, accessor(caller), keyPath)
		if err != nil {
			return nil, err
		}
		return map[string]any{"key_path": keyPath, "value": value}, nil
	}
}

var secretListDef = Definition{
	Name:        "secret_list",
	Description: "List secret metadata under a path prefix, values excluded",
	InputSchema: obj(nil, map[string]any{
		"path_prefix": str("Key path prefix"),
	}),
}

func secretList(secrets secretStore) Handler {
	return func(ctx context.Context, caller models.CallerContext, args map[string]any) (any, error) {
		prefix, _ := args["path_prefix"].(string)
		infos, err := secrets.List(ctx, accessor(caller), prefix)
		if err != nil {
			return nil, err
		}
		return map[string]any{"secrets": infos, "count": len(infos)}, nil
	}
}

var secretDeleteDef = Definition{
	Name:        "secret_delete",
	Description: "Delete a secret; its audit trail is retained",
	InputSchema: obj([]string{"key_path"}, map[string]any{
		"key_path": str("Hierarchical key"),
	}),
}

func secretDelete(secrets secretStore) Handler {
	return func(ctx context.Context, caller models.CallerContext, args map[string]any) (any, error) {
		keyPath, _ := args["key_path"].(string)
		if err := secrets.Delete(ctx, accessor(caller), keyPath); err != nil {
			return nil, err
		}
		return map[string]any{"key_path": keyPath, "deleted": true}, nil
	}
}

// Spawning and epics.

var spawnSubagentDef = Definition{
	Name:        "spawn_subagent",
	Description: "Route, template, and run one AI subagent against the project tree",
	InputSchema: obj([]string{"task_type", "description"}, map[string]any{
		"task_type":        str("One of the known task types, e.g. implementation"),
		"description":      str("What the subagent should do"),
		"context":          dict("Template variables and project overrides"),
		"complexity_hint":  map[string]any{"type": "string", "enum": []string{"simple", "moderate", "complex"}},
		"estimated_tokens": num("Estimated prompt+completion tokens"),
	}),
}

func spawnSubagent(sp spawner) Handler {
	return func(ctx context.Context, caller models.CallerContext, args map[string]any) (any, error) {
		var params models.SpawnParams
		if err := decode(args, &params); err != nil {
			return nil, err
		}
		return sp.Spawn(ctx, params, caller), nil
	}
}

var epicArgsSchema = obj([]string{"epic_file"}, map[string]any{
	"epic_file":       str("Path to the epic markdown document"),
	"project_name":    str("Overrides the endpoint project name"),
	"project_path":    str("Overrides the endpoint project path"),
	"create_pr":       flag("Open a PR when every criterion is met"),
	"completed_tasks": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
})

var implementEpicDef = Definition{
	Name:        "implement_epic",
	Description: "Run an epic end to end: implement every step, then validate all criteria",
	InputSchema: epicArgsSchema,
}

var runPrimeDef = Definition{
	Name:        "run_prime",
	Description: "Run only the research phase of an epic",
	InputSchema: epicArgsSchema,
}

var runPlanDef = Definition{
	Name:        "run_plan",
	Description: "Run only the planning phase of an epic",
	InputSchema: epicArgsSchema,
}

var runExecuteDef = Definition{
	Name:        "run_execute",
	Description: "Run implementation and validation, resuming past completed_tasks",
	InputSchema: epicArgsSchema,
}

func runEpic(orch epicRunner, mode string) Handler {
	return func(ctx context.Context, caller models.CallerContext, args map[string]any) (any, error) {
		var req orchestrator.EpicRequest
		if err := decode(args, &req); err != nil {
			return nil, err
		}
		if caller.Project != nil {
			if req.ProjectName == "" {
				req.ProjectName = caller.Project.Name
			}
			if req.ProjectPath == "" {
				req.ProjectPath = caller.Project.Path
			}
		}
		switch mode {
		case "prime":
			return orch.RunPrime(ctx, caller, req), nil
		case "plan":
			return orch.RunPlan(ctx, caller, req), nil
		case "execute":
			return orch.RunExecute(ctx, caller, req), nil
		default:
			return orch.ImplementEpic(ctx, caller, req), nil
		}
	}
}

// Collaborator pass-throughs.

var allocatePortDef = Definition{
	Name:        "allocate_port",
	Description: "Reserve a port for a named service in the caller's project",
	InputSchema: obj([]string{"service_name"}, map[string]any{
		"service_name": str("Service to bind, e.g. dev-server"),
	}),
}

func allocatePort(fn func(ctx context.Context, project, serviceName string) (int, error)) Handler {
	return func(ctx context.Context, caller models.CallerContext, args map[string]any) (any, error) {
		serviceName, _ := args["service_name"].(string)
		port, err := fn(ctx, callerProject(caller), serviceName)
		if err != nil {
			return nil, models.WrapKind(models.KindDependencyFailure, "port allocator", err)
		}
		return map[string]any{"service_name": serviceName, "port": port}, nil
	}
}

var syncDNSDef = Definition{
	Name:        "sync_dns",
	Description: "Publish a hostname to port mapping and return the public URL",
	InputSchema: obj([]string{"hostname", "port"}, map[string]any{
		"hostname": str("Hostname to publish"),
		"port":     num("Local port to expose"),
	}),
}

func syncDNS(fn func(ctx context.Context, project, hostname string, port int) (string, error)) Handler {
	return func(ctx context.Context, caller models.CallerContext, args map[string]any) (any, error) {
		var req struct {
			Hostname string `json:"hostname"`
			Port     int    `json:"port"`
		}
		if err := decode(args, &req); err != nil {
			return nil, err
		}
		url, err := fn(ctx, callerProject(caller), req.Hostname, req.Port)
		if err != nil {
			return nil, models.WrapKind(models.KindDependencyFailure, "dns sync", err)
		}
		return map[string]any{"hostname": req.Hostname, "url": url}, nil
	}
}

var createPRDef = Definition{
	Name:        "create_pr",
	Description: "Open a pull request for the caller's project working tree",
	InputSchema: obj([]string{"title"}, map[string]any{
		"title": str("PR title"),
		"body":  str("PR body"),
	}),
}

func createPR(fn orchestrator.PRFunc) Handler {
	return func(ctx context.Context, caller models.CallerContext, args map[string]any) (any, error) {
		if caller.Project == nil {
			return nil, models.NewKindError(models.KindNoProjectContext, "create_pr requires a project endpoint")
		}
		title, _ := args["title"].(string)
		body, _ := args["body"].(string)
		url, err := fn(ctx, caller.Project.Path, title, body)
		if err != nil {
			return nil, models.WrapKind(models.KindDependencyFailure, "pr creation", err)
		}
		return map[string]any{"url": url}, nil
	}
}

var redactTextDef = Definition{
	Name:        "redact_text",
	Description: "Replace credential-like substrings in text with masked markers",
	InputSchema: obj([]string{"text"}, map[string]any{
		"text": str("Text to scrub"),
	}),
}

func redactText(fn func(string) string) Handler {
	return func(_ context.Context, _ models.CallerContext, args map[string]any) (any, error) {
		text, _ := args["text"].(string)
		return map[string]any{"text": fn(text)}, nil
	}
}

func callerProject(caller models.CallerContext) string {
	if caller.Project != nil {
		return caller.Project.Name
	}
	return models.MetaProject
}
