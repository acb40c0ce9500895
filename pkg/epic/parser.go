package epic

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	epicTitlePattern = regexp.MustCompile(`^#\s+Epic\s+([^:]+):\s*(.+)$`)
	bareTitlePattern = regexp.MustCompile(`^#\s+(.+)$`)
	checkboxPattern  = regexp.MustCompile(`^-\s+\[([ xX])\]\s+(.+)$`)
	numberedPattern  = regexp.MustCompile(`^(\d+)[.)]\s+(.+)$`)
	metadataPattern  = regexp.MustCompile(`^([A-Za-z0-9_-]+):\s*(.*)$`)
)

// section names, matched case-insensitively on ## headings
const (
	sectionRequirements = "technical requirements"
	sectionNotes        = "implementation notes"
	sectionCriteria     = "acceptance criteria"
)

// ParseFile reads and parses an epic document.
func ParseFile(path string) (*Epic, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading epic file: %w", err)
	}
	e, warnings := Parse(string(data))
	return e, warnings, nil
}

// Parse extracts the epic structure from markdown. The parser is total:
// missing sections yield empty lists, duplicate sections concatenate in
// document order, and malformed checkbox lines are skipped with a warning.
func Parse(content string) (*Epic, []string) {
	e := &Epic{
		TechnicalRequirements: []Requirement{},
		ImplementationNotes:   []string{},
		AcceptanceCriteria:    []Criterion{},
	}
	var warnings []string

	lines := strings.Split(content, "\n")
	i := 0
	i, e.Metadata, warnings = parseFrontMatter(lines, warnings)

	section := ""                    // current ## section (normalized)
	subsection := ""                 // current ### heading
	var reqBody []string             // accumulating requirement body
	var descLines []string           // prose before the first ## section
	inFence := false                 // inside a fenced code block

	flushRequirement := func() {
		body := strings.TrimSpace(strings.Join(reqBody, "\n"))
		if subsection != "" || body != "" {
			title := subsection
			if title == "" {
				title = DefaultSection
			}
			e.TechnicalRequirements = append(e.TechnicalRequirements, Requirement{Title: title, Body: body})
		}
		reqBody = nil
	}

	for ; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
		}
		if !inFence {
			if m := epicTitlePattern.FindStringSubmatch(trimmed); m != nil && e.Title == "" {
				e.ID = strings.TrimSpace(m[1])
				e.Title = strings.TrimSpace(m[2])
				continue
			}
			if m := bareTitlePattern.FindStringSubmatch(trimmed); m != nil && e.Title == "" && !strings.HasPrefix(trimmed, "##") {
				e.Title = strings.TrimSpace(m[1])
				continue
			}
			if strings.HasPrefix(trimmed, "## ") && !strings.HasPrefix(trimmed, "### ") {
				if section == sectionRequirements {
					flushRequirement()
				}
				section = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(trimmed, "## ")))
				subsection = ""
				continue
			}
			if strings.HasPrefix(trimmed, "### ") {
				if section == sectionRequirements {
					flushRequirement()
				}
				subsection = strings.TrimSpace(strings.TrimPrefix(trimmed, "### "))
				continue
			}
		}

		switch section {
		case "":
			if trimmed != "" {
				descLines = append(descLines, trimmed)
			}
		case sectionRequirements:
			reqBody = append(reqBody, line)
		case sectionNotes:
			if inFence || strings.HasPrefix(trimmed, "```") {
				continue
			}
			if m := numberedPattern.FindStringSubmatch(trimmed); m != nil {
				e.ImplementationNotes = append(e.ImplementationNotes, strings.TrimSpace(m[2]))
			} else if trimmed != "" && len(e.ImplementationNotes) > 0 && !strings.HasPrefix(trimmed, "-") {
				// continuation of the previous step
				n := len(e.ImplementationNotes)
				e.ImplementationNotes[n-1] += " " + trimmed
			}
		case sectionCriteria:
			if inFence || strings.HasPrefix(trimmed, "```") {
				continue
			}
			if m := checkboxPattern.FindStringSubmatch(trimmed); m != nil {
				sectionName := subsection
				if sectionName == "" {
					sectionName = DefaultSection
				}
				e.AcceptanceCriteria = append(e.AcceptanceCriteria, Criterion{
					Text:    strings.TrimSpace(m[2]),
					Section: sectionName,
					Checked: m[1] == "x" || m[1] == "X",
				})
			} else if strings.HasPrefix(trimmed, "- [") {
				warnings = append(warnings, fmt.Sprintf("malformed checkbox skipped: %q", trimmed))
			}
		}
	}
	if section == sectionRequirements {
		flushRequirement()
	}

	e.Description = strings.Join(descLines, "\n")
	return e, warnings
}

// parseFrontMatter consumes an optional leading `---` block of key: value
// pairs. Returns the next line index to parse from.
func parseFrontMatter(lines []string, warnings []string) (int, map[string]string, []string) {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start >= len(lines) || strings.TrimSpace(lines[start]) != "---" {
		return 0, nil, warnings
	}

	meta := map[string]string{}
	var blockWarnings []string
	for i := start + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "---" {
			return i + 1, meta, append(warnings, blockWarnings...)
		}
		if trimmed == "" {
			continue
		}
		if m := metadataPattern.FindStringSubmatch(trimmed); m != nil {
			meta[m[1]] = strings.TrimSpace(m[2])
		} else {
			blockWarnings = append(blockWarnings, fmt.Sprintf("unparseable metadata line skipped: %q", trimmed))
		}
	}
	// unterminated front matter: treat the document as having none. The
	// scanned lines re-parse as content, so their per-line warnings are
	// dropped rather than kept.
	return 0, nil, append(warnings, "unterminated metadata block")
}
