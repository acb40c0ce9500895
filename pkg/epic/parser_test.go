package epic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEpic = `---
author: team-billing
priority: high
---

# Epic 42: Paginated listing

Expose cursor pagination on the list endpoint.

## Technical Requirements

The API must stay backward compatible.

### Storage

Add a covering index:

` + "```sql\nCREATE INDEX idx ON items (created_at, id);\n```" + `

### API

Cursor tokens are opaque base64.

## Implementation Notes

1. Add the index migration
2. Implement cursor encoding
   with overflow handling
3. Wire the handler

## Acceptance Criteria

- [ ] Listing returns at most page_size items

### Performance

- [x] P99 under 50ms
- [y] this one is malformed
- [ ] No full table scans
`

func TestParse_FullDocument(t *testing.T) {
	e, warnings := Parse(sampleEpic)

	assert.Equal(t, "42", e.ID)
	assert.Equal(t, "Paginated listing", e.Title)
	assert.Equal(t, "Expose cursor pagination on the list endpoint.", e.Description)
	assert.Equal(t, map[string]string{"author": "team-billing", "priority": "high"}, e.Metadata)

	require.Len(t, e.TechnicalRequirements, 3)
	assert.Equal(t, DefaultSection, e.TechnicalRequirements[0].Title)
	assert.Contains(t, e.TechnicalRequirements[0].Body, "backward compatible")
	assert.Equal(t, "Storage", e.TechnicalRequirements[1].Title)
	assert.Contains(t, e.TechnicalRequirements[1].Body, "CREATE INDEX")
	assert.Equal(t, "API", e.TechnicalRequirements[2].Title)

	require.Len(t, e.ImplementationNotes, 3)
	assert.Equal(t, "Add the index migration", e.ImplementationNotes[0])
	assert.Equal(t, "Implement cursor encoding with overflow handling", e.ImplementationNotes[1])
	assert.Equal(t, "Wire the handler", e.ImplementationNotes[2])

	require.Len(t, e.AcceptanceCriteria, 3)
	assert.Equal(t, Criterion{Text: "Listing returns at most page_size items", Section: "General"}, e.AcceptanceCriteria[0])
	assert.Equal(t, Criterion{Text: "P99 under 50ms", Section: "Performance", Checked: true}, e.AcceptanceCriteria[1])
	assert.Equal(t, Criterion{Text: "No full table scans", Section: "Performance"}, e.AcceptanceCriteria[2])

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "malformed checkbox")
}

func TestParse_Total(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		e, warnings := Parse("")
		assert.Empty(t, e.ImplementationNotes)
		assert.Empty(t, e.AcceptanceCriteria)
		assert.Empty(t, e.TechnicalRequirements)
		assert.Empty(t, warnings)
	})

	t.Run("missing sections", func(t *testing.T) {
		e, _ := Parse("# Epic 1: Minimal\n\nJust a description.\n")
		assert.Equal(t, "1", e.ID)
		assert.Equal(t, "Just a description.", e.Description)
		assert.Empty(t, e.ImplementationNotes)
	})

	t.Run("bare title", func(t *testing.T) {
		e, _ := Parse("# Some document\n")
		assert.Empty(t, e.ID)
		assert.Equal(t, "Some document", e.Title)
	})

	t.Run("duplicate sections concatenate", func(t *testing.T) {
		doc := `# Epic 2: Split

## Implementation Notes

1. first

## Acceptance Criteria

- [ ] one

## Implementation Notes

1. second
`
		e, _ := Parse(doc)
		assert.Equal(t, []string{"first", "second"}, e.ImplementationNotes)
	})

	t.Run("unterminated front matter", func(t *testing.T) {
		// the title line inside the would-be block must not leave a
		// stray per-line warning once the block turns out unterminated
		e, warnings := Parse("---\nkey: value\n# Epic 3: X\n")
		assert.Nil(t, e.Metadata)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "unterminated")
		assert.Equal(t, "3", e.ID)
		assert.Equal(t, "X", e.Title)
	})
}

func TestParse_RoundTrip(t *testing.T) {
	first, warnings := Parse(sampleEpic)
	require.Len(t, warnings, 1)

	second, warnings2 := Parse(first.Serialize())
	assert.Empty(t, warnings2)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Metadata, second.Metadata)
	assert.Equal(t, first.ImplementationNotes, second.ImplementationNotes)
	assert.Equal(t, first.AcceptanceCriteria, second.AcceptanceCriteria)
	assert.Equal(t, len(first.TechnicalRequirements), len(second.TechnicalRequirements))
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "epic.md")
	require.NoError(t, os.WriteFile(path, []byte(sampleEpic), 0o644))

	e, _, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "42", e.ID)

	_, _, err = ParseFile("/does/not/exist.md")
	require.Error(t, err)
}
