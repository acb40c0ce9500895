package template

// builtinTemplates returns the compiled-in template set. Every task type
// has at least one template so selection only fails on catalogs emptied
// deliberately.
func builtinTemplates() []*Template {
	return []*Template{
		{
			ID:        "research-default",
			TaskTypes: []string{"research"},
			Keywords:  []string{"investigate", "explore", "compare", "evaluate"},
			Body: `# Research Task

## Task
{{TASK_DESCRIPTION}}

## Project
{{PROJECT_NAME}} at {{PROJECT_PATH}}

## Context
{{CONTEXT_JSON}}

## Instructions
Investigate the question above within this repository. Read code before
drawing conclusions. Produce a structured summary with:
- Findings, each backed by a file reference
- Open questions
- A recommendation

Do not modify any files.
`,
		},
		{
			ID:        "planning-default",
			TaskTypes: []string{"planning"},
			Keywords:  []string{"plan", "design", "epic", "breakdown"},
			Body: `# Planning Task

## Task
{{TASK_DESCRIPTION}}

## Project
{{PROJECT_NAME}} at {{PROJECT_PATH}}

## Context
{{CONTEXT_JSON}}

## Instructions
Produce an ordered implementation plan as a numbered list. Each step must
be independently verifiable and small enough for a single focused session.
List acceptance criteria as markdown checkboxes. Do not modify any files.
`,
		},
		{
			ID:        "implementation-default",
			TaskTypes: []string{"implementation", "integration"},
			Keywords:  []string{"implement", "add", "build", "wire"},
			Body: `# Implementation Task

## Current Task
{{CURRENT_TASK}}

## Task Description
{{TASK_DESCRIPTION}}

## Project
{{PROJECT_NAME}} at {{PROJECT_PATH}}

## Completed So Far
{{COMPLETED_TASKS}}

## Context
{{CONTEXT_JSON}}

## Instructions
Implement exactly the current task above. Follow the existing code style.
Run the project's tests for the code you touch. Commit nothing; leave the
working tree dirty for review.
`,
		},
		{
			ID:        "testing-default",
			TaskTypes: []string{"testing"},
			Keywords:  []string{"test", "coverage", "regression"},
			Body: `# Testing Task

## Task
{{TASK_DESCRIPTION}}

## Project
{{PROJECT_NAME}} at {{PROJECT_PATH}}

## Context
{{CONTEXT_JSON}}

## Instructions
Write or extend tests for the behavior described above, following the
project's existing test conventions. Run them and report results.
`,
		},
		{
			ID:        "validation-default",
			TaskTypes: []string{"validation"},
			Keywords:  []string{"verify", "criterion", "acceptance"},
			Body: `# Validation Task

## Criterion
{{CURRENT_TASK}}

## Task
{{TASK_DESCRIPTION}}

## Project
{{PROJECT_NAME}} at {{PROJECT_PATH}}

## Context
{{CONTEXT_JSON}}

## Instructions
Determine whether the criterion above is met by the current state of the
repository. Respond with a JSON object on the last line of output:
{"met": true|false, "evidence": "short justification with file references"}
Do not modify any files.
`,
		},
		{
			ID:        "documentation-default",
			TaskTypes: []string{"documentation"},
			Keywords:  []string{"document", "readme", "docs"},
			Body: `# Documentation Task

## Task
{{TASK_DESCRIPTION}}

## Project
{{PROJECT_NAME}} at {{PROJECT_PATH}}

## Context
{{CONTEXT_JSON}}

## Instructions
Write the documentation described above in the project's existing style
and location conventions. Keep it accurate to the code as it is now.
`,
		},
		{
			ID:        "fix-default",
			TaskTypes: []string{"fix"},
			Keywords:  []string{"bug", "fix", "broken", "regression"},
			Body: `# Fix Task

## Task
{{TASK_DESCRIPTION}}

## Project
{{PROJECT_NAME}} at {{PROJECT_PATH}}

## Context
{{CONTEXT_JSON}}

## Instructions
Reproduce the problem first, then fix it with the smallest change that
passes the existing tests. Add a regression test.
`,
		},
		{
			ID:        "deployment-default",
			TaskTypes: []string{"deployment"},
			Keywords:  []string{"deploy", "release", "rollout"},
			Body: `# Deployment Task

## Task
{{TASK_DESCRIPTION}}

## Project
{{PROJECT_NAME}} at {{PROJECT_PATH}}

## Context
{{CONTEXT_JSON}}

## Instructions
Prepare the deployment described above. Verify build artifacts and config
before any rollout step. Stop and report instead of guessing when an
environment detail is missing.
`,
		},
		{
			ID:        "review-default",
			TaskTypes: []string{"review"},
			Keywords:  []string{"review", "audit", "feedback"},
			Body: `# Review Task

## Task
{{TASK_DESCRIPTION}}

## Project
{{PROJECT_NAME}} at {{PROJECT_PATH}}

## Context
{{CONTEXT_JSON}}

## Instructions
Review the changes described above. Report issues ordered by severity,
each with a file reference and a suggested fix. Do not modify any files.
`,
		},
		{
			ID:        "security-default",
			TaskTypes: []string{"security"},
			Keywords:  []string{"security", "vulnerability", "cve", "injection"},
			Body: `# Security Task

## Task
{{TASK_DESCRIPTION}}

## Project
{{PROJECT_NAME}} at {{PROJECT_PATH}}

## Context
{{CONTEXT_JSON}}

## Instructions
Assess the code paths relevant to the task for security issues. Never
print credential or token values; refer to them by location only. Report
findings ordered by severity with file references.
`,
		},
	}
}
