// Package template holds the instruction templates rendered for subagent
// spawns, with deterministic selection by task type and keywords.
package template

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/praxisworks/supervisor/pkg/models"
)

// Template is one instruction template. User templates from the config
// directory override builtins with the same id.
type Template struct {
	ID        string   `yaml:"id"`
	TaskTypes []string `yaml:"task_types"`
	Keywords  []string `yaml:"keywords,omitempty"`
	Body      string   `yaml:"body"`
}

// taskTypeScore dominates any keyword overlap so a matching task type
// always beats keyword-only matches.
const taskTypeScore = 100

// RenderVars are the placeholder values substituted into a template body.
type RenderVars struct {
	TaskDescription string
	ProjectPath     string
	ProjectName     string
	Context         map[string]any
	CurrentTask     string
	CompletedTasks  []string
}

// Library is the loaded template set. Immutable after construction.
type Library struct {
	templates map[string]*Template
	logger    *slog.Logger
}

// NewLibrary loads the builtin templates plus any *.yaml templates from
// userDir (empty means builtins only).
func NewLibrary(userDir string) (*Library, error) {
	lib := &Library{
		templates: map[string]*Template{},
		logger:    slog.With("component", "template_library"),
	}
	for _, t := range builtinTemplates() {
		lib.templates[t.ID] = t
	}

	if userDir != "" {
		if err := lib.loadUserTemplates(userDir); err != nil {
			return nil, err
		}
	}
	lib.logger.Info("Template library loaded", "templates", len(lib.templates))
	return lib, nil
}

func (l *Library) loadUserTemplates(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading templates dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}
		var t Template
		if err := yaml.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}
		if t.ID == "" || t.Body == "" {
			return fmt.Errorf("template %s: id and body are required", path)
		}
		if _, exists := l.templates[t.ID]; exists {
			l.logger.Info("User template overrides builtin", "id", t.ID)
		}
		l.templates[t.ID] = &t
	}
	return nil
}

// Get returns a template by id.
func (l *Library) Get(id string) (*Template, error) {
	t, ok := l.templates[id]
	if !ok {
		return nil, models.NewKindError(models.KindTemplateNotFound, fmt.Sprintf("template %q not found", id))
	}
	return t, nil
}

// Select picks the best template for a task: task-type match dominates,
// keyword overlap with the description refines, ties break
// lexicographically by template id so selection is deterministic.
func (l *Library) Select(taskType models.TaskType, description string) (*Template, error) {
	desc := strings.ToLower(description)

	type scored struct {
		t     *Template
		score int
	}
	var candidates []scored
	for _, t := range l.templates {
		s := score(t, taskType, desc)
		if s > 0 {
			candidates = append(candidates, scored{t: t, score: s})
		}
	}
	if len(candidates) == 0 {
		return nil, models.NewKindError(models.KindTemplateNotFound,
			fmt.Sprintf("no template matches task type %q", taskType))
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].t.ID < candidates[j].t.ID
	})
	return candidates[0].t, nil
}

func score(t *Template, taskType models.TaskType, loweredDesc string) int {
	s := 0
	for _, tt := range t.TaskTypes {
		if tt == string(taskType) {
			s += taskTypeScore
			break
		}
	}
	for _, kw := range t.Keywords {
		if strings.Contains(loweredDesc, strings.ToLower(kw)) {
			s++
		}
	}
	return s
}

// Render substitutes placeholders into the template body. Unknown
// placeholders are left intact; only marshalling the context can fail.
func (t *Template) Render(vars RenderVars) (string, error) {
	contextJSON := "{}"
	if len(vars.Context) > 0 {
		data, err := json.MarshalIndent(vars.Context, "", "  ")
		if err != nil {
			return "", models.WrapKind(models.KindTemplateRender, "marshalling context", err)
		}
		contextJSON = string(data)
	}

	completed := "none"
	if len(vars.CompletedTasks) > 0 {
		var b strings.Builder
		for i, task := range vars.CompletedTasks {
			fmt.Fprintf(&b, "%d. %s\n", i+1, task)
		}
		completed = strings.TrimRight(b.String(), "\n")
	}

	replacer := strings.NewReplacer(
		"{{TASK_DESCRIPTION}}", vars.TaskDescription,
		"{{PROJECT_PATH}}", vars.ProjectPath,
		"{{PROJECT_NAME}}", vars.ProjectName,
		"{{CONTEXT_JSON}}", contextJSON,
		"{{CURRENT_TASK}}", vars.CurrentTask,
		"{{COMPLETED_TASKS}}", completed,
	)
	return replacer.Replace(t.Body), nil
}

// IDs returns all template ids, sorted.
func (l *Library) IDs() []string {
	ids := make([]string, 0, len(l.templates))
	for id := range l.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
