// Package epic parses and serializes the structured markdown documents
// the orchestrator executes.
package epic

import (
	"fmt"
	"sort"
	"strings"
)

// Criterion is one acceptance checkbox, grouped by its nearest preceding
// ### heading.
type Criterion struct {
	Text    string `json:"text"`
	Section string `json:"section"`
	Checked bool   `json:"checked"`
}

// Requirement is one Technical Requirements subsection.
type Requirement struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// DefaultSection groups criteria and requirements that appear before any
// ### heading.
const DefaultSection = "General"

// Epic is the parsed document. The orchestrator consumes
// ImplementationNotes and AcceptanceCriteria; subagents get the full text.
type Epic struct {
	ID                    string            `json:"id"`
	Title                 string            `json:"title"`
	Description           string            `json:"description"`
	Metadata              map[string]string `json:"metadata,omitempty"`
	TechnicalRequirements []Requirement     `json:"technical_requirements"`
	ImplementationNotes   []string          `json:"implementation_notes"`
	AcceptanceCriteria    []Criterion       `json:"acceptance_criteria"`
}

// Serialize renders the epic back to markdown. Parsing the output yields
// an equivalent structure.
func (e *Epic) Serialize() string {
	var b strings.Builder

	if len(e.Metadata) > 0 {
		b.WriteString("---\n")
		for _, key := range sortedKeys(e.Metadata) {
			fmt.Fprintf(&b, "%s: %s\n", key, e.Metadata[key])
		}
		b.WriteString("---\n\n")
	}

	switch {
	case e.ID != "":
		fmt.Fprintf(&b, "# Epic %s: %s\n", e.ID, e.Title)
	case e.Title != "":
		fmt.Fprintf(&b, "# %s\n", e.Title)
	}
	if e.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", e.Description)
	}

	if len(e.TechnicalRequirements) > 0 {
		b.WriteString("\n## Technical Requirements\n")
		for _, req := range e.TechnicalRequirements {
			if req.Title != "" && req.Title != DefaultSection {
				fmt.Fprintf(&b, "\n### %s\n", req.Title)
			}
			if req.Body != "" {
				fmt.Fprintf(&b, "\n%s\n", req.Body)
			}
		}
	}

	if len(e.ImplementationNotes) > 0 {
		b.WriteString("\n## Implementation Notes\n\n")
		for i, note := range e.ImplementationNotes {
			fmt.Fprintf(&b, "%d. %s\n", i+1, note)
		}
	}

	if len(e.AcceptanceCriteria) > 0 {
		b.WriteString("\n## Acceptance Criteria\n")
		current := ""
		for _, c := range e.AcceptanceCriteria {
			section := c.Section
			if section == "" {
				section = DefaultSection
			}
			if section != current {
				if section != DefaultSection || current != "" {
					fmt.Fprintf(&b, "\n### %s\n", section)
				}
				current = section
			}
			box := " "
			if c.Checked {
				box = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", box, c.Text)
		}
	}

	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
