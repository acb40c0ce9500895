package config

import (
	"sort"

	"github.com/praxisworks/supervisor/pkg/models"
)

// ProjectSnapshot is an immutable view of the registered projects.
// Reload builds a new snapshot; in-flight requests keep the one they
// started with.
type ProjectSnapshot struct {
	byName map[string]*ProjectConfig
	names  []string // sorted, enabled only
}

// NewProjectSnapshot builds a snapshot from configured projects.
// Disabled projects are kept for lookup but excluded from Names.
func NewProjectSnapshot(projects []*ProjectConfig) *ProjectSnapshot {
	s := &ProjectSnapshot{
		byName: make(map[string]*ProjectConfig, len(projects)),
	}
	for _, p := range projects {
		s.byName[p.Name] = p
		if p.IsEnabled() {
			s.names = append(s.names, p.Name)
		}
	}
	sort.Strings(s.names)
	return s
}

// Get returns the project config for a slug.
func (s *ProjectSnapshot) Get(name string) (*ProjectConfig, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// Names returns the sorted slugs of enabled projects.
func (s *ProjectSnapshot) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of enabled projects.
func (s *ProjectSnapshot) Len() int {
	return len(s.names)
}

// Context builds the per-request ProjectContext for an enabled project.
// Returns nil when the project is unknown or disabled.
func (s *ProjectSnapshot) Context(name string) *models.ProjectContext {
	p, ok := s.byName[name]
	if !ok || !p.IsEnabled() {
		return nil
	}
	display := p.DisplayName
	if display == "" {
		display = p.Name
	}
	return &models.ProjectContext{
		Name:        p.Name,
		DisplayName: display,
		Description: p.Description,
		Path:        p.Path,
	}
}
