// Package cliadapter executes backend AI CLIs (claude, gemini, codex) as
// external processes against a project working directory.
package cliadapter

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/praxisworks/supervisor/pkg/config"
	"github.com/praxisworks/supervisor/pkg/models"
)

// RunSpec describes one CLI invocation. The adapter runs in Cwd and never
// changes the supervisor's own working directory or environment.
type RunSpec struct {
	InstructionsPath string
	Cwd              string
	Model            string
	StdoutPath       string
	StderrPath       string

	// KillGrace is the SIGTERM → SIGKILL window on deadline expiry.
	KillGrace time.Duration
}

// RunResult is the raw process outcome. ExitCode is -1 when the process
// never ran or was killed before exiting normally.
type RunResult struct {
	StdoutPath string
	StderrPath string
	ExitCode   int
	DurationMs int64
}

// QuotaStatus is the result of a quota probe.
type QuotaStatus struct {
	Available bool
	Reason    string
}

// Adapter is one backend CLI.
type Adapter interface {
	// Service returns the backend name (claude, gemini, codex).
	Service() string

	// Run executes the CLI with the instruction file on stdin and the
	// model selected. The error carries KindTimeout / KindCancelled /
	// KindAdapterExit / KindAdapterIO; a result is returned alongside the
	// error when the process produced one.
	Run(ctx context.Context, spec RunSpec) (*RunResult, error)

	// CheckQuota probes whether the backend will accept work.
	CheckQuota(ctx context.Context) QuotaStatus
}

// quotaProbeTimeout bounds the probe so routing never hangs on a wedged CLI.
const quotaProbeTimeout = 15 * time.Second

// cliAdapter is the shared implementation; services differ only in how the
// model is passed.
type cliAdapter struct {
	service   string
	cfg       *config.AdapterConfig
	modelFlag string
	logger    *slog.Logger
}

func newAdapter(service, modelFlag string, cfg *config.AdapterConfig) *cliAdapter {
	return &cliAdapter{
		service:   service,
		cfg:       cfg,
		modelFlag: modelFlag,
		logger:    slog.With("component", "cliadapter", "service", service),
	}
}

// NewClaudeAdapter creates the claude CLI adapter.
func NewClaudeAdapter(cfg *config.AdapterConfig) Adapter {
	return newAdapter("claude", "--model", cfg)
}

// NewGeminiAdapter creates the gemini CLI adapter.
func NewGeminiAdapter(cfg *config.AdapterConfig) Adapter {
	return newAdapter("gemini", "-m", cfg)
}

// NewCodexAdapter creates the codex CLI adapter.
func NewCodexAdapter(cfg *config.AdapterConfig) Adapter {
	return newAdapter("codex", "-m", cfg)
}

func (a *cliAdapter) Service() string {
	return a.service
}

func (a *cliAdapter) argv(model string) []string {
	args := append([]string{}, a.cfg.ExtraArgs...)
	if model != "" {
		args = append(args, a.modelFlag, model)
	}
	return args
}

// CheckQuota runs the configured probe command. Without one, the check
// degrades to "executable resolvable on PATH".
func (a *cliAdapter) CheckQuota(ctx context.Context) QuotaStatus {
	if _, err := exec.LookPath(a.cfg.Executable); err != nil {
		return QuotaStatus{Available: false, Reason: fmt.Sprintf("executable %q not found", a.cfg.Executable)}
	}
	if len(a.cfg.QuotaProbeArgs) == 0 {
		return QuotaStatus{Available: true}
	}

	probeCtx, cancel := context.WithTimeout(ctx, quotaProbeTimeout)
	defer cancel()

	out, err := exec.CommandContext(probeCtx, a.cfg.Executable, a.cfg.QuotaProbeArgs...).CombinedOutput()
	if err != nil {
		reason := strings.TrimSpace(string(out))
		if reason == "" {
			reason = err.Error()
		}
		a.logger.Warn("Quota probe failed", "reason", reason)
		return QuotaStatus{Available: false, Reason: reason}
	}
	if lowered := strings.ToLower(string(out)); strings.Contains(lowered, "rate limit") || strings.Contains(lowered, "quota exceeded") {
		return QuotaStatus{Available: false, Reason: strings.TrimSpace(string(out))}
	}
	return QuotaStatus{Available: true}
}

// Registry holds the configured adapters and answers quota queries for
// the router.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry builds adapters for the configured services. Unknown service
// names are rejected at config validation, not here.
func NewRegistry(cfgs map[string]*config.AdapterConfig) *Registry {
	adapters := make(map[string]Adapter, len(cfgs))
	for service, cfg := range cfgs {
		switch service {
		case "claude":
			adapters[service] = NewClaudeAdapter(cfg)
		case "gemini":
			adapters[service] = NewGeminiAdapter(cfg)
		case "codex":
			adapters[service] = NewCodexAdapter(cfg)
		}
	}
	return &Registry{adapters: adapters}
}

// Get returns the adapter for a service.
func (r *Registry) Get(service string) (Adapter, error) {
	a, ok := r.adapters[service]
	if !ok {
		return nil, models.NewKindError(models.KindValidation, fmt.Sprintf("no adapter configured for service %q", service))
	}
	return a, nil
}

// Services returns the configured service names, sorted.
func (r *Registry) Services() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// QuotaAvailable implements the router's quota source.
func (r *Registry) QuotaAvailable(ctx context.Context, service string) (bool, string) {
	a, ok := r.adapters[service]
	if !ok {
		return false, fmt.Sprintf("no adapter configured for service %q", service)
	}
	status := a.CheckQuota(ctx)
	return status.Available, status.Reason
}
