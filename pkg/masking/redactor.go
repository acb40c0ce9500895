// Package masking redacts credential-like substrings from text before it
// leaves the process: tool results, logged command parameters, subagent
// output echoed back to callers.
package masking

import "regexp"

// Pattern is one compiled credential matcher.
type Pattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns is the default matcher set, ordered: structural
// patterns (certificates, keys) run before the generic key/value ones so
// their replacements are not partially rewritten.
func builtinPatterns() []*Pattern {
	return []*Pattern{
		{
			Name:        "certificate",
			Regex:       regexp.MustCompile(`(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`),
			Replacement: `__MASKED_CERTIFICATE__`,
		},
		{
			Name:        "ssh_key",
			Regex:       regexp.MustCompile(`ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`),
			Replacement: `__MASKED_SSH_KEY__`,
		},
		{
			Name:        "github_token",
			Regex:       regexp.MustCompile(`gh[ps]_[A-Za-z0-9_]{36,255}`),
			Replacement: `__MASKED_GITHUB_TOKEN__`,
		},
		{
			Name:        "slack_token",
			Regex:       regexp.MustCompile(`(?i)xox[baprs]-[A-Za-z0-9-]{10,72}`),
			Replacement: `__MASKED_SLACK_TOKEN__`,
		},
		{
			Name:        "aws_access_key",
			Regex:       regexp.MustCompile(`\bAKIA[A-Z0-9]{16}\b`),
			Replacement: `__MASKED_AWS_KEY__`,
		},
		{
			Name:        "api_key",
			Regex:       regexp.MustCompile(`(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`),
			Replacement: `"api_key": "__MASKED_API_KEY__"`,
		},
		{
			Name:        "password",
			Regex:       regexp.MustCompile(`(?i)(?:password|pwd|passwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`),
			Replacement: `"password": "__MASKED_PASSWORD__"`,
		},
		{
			Name:        "token",
			Regex:       regexp.MustCompile(`(?i)(?:token|bearer)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`),
			Replacement: `"token": "__MASKED_TOKEN__"`,
		},
		{
			Name:        "secret_key",
			Regex:       regexp.MustCompile(`(?i)(?:secret[_-]?key|private[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`),
			Replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
		},
	}
}

// Redactor applies the pattern set in order. Immutable after creation,
// safe for concurrent use.
type Redactor struct {
	patterns []*Pattern
}

// NewRedactor creates a redactor with the builtin pattern set.
func NewRedactor() *Redactor {
	return &Redactor{patterns: builtinPatterns()}
}

// Redact replaces every credential match in text. Text without matches
// is returned unchanged.
func (r *Redactor) Redact(text string) string {
	for _, p := range r.patterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}

// Detect reports which pattern names match, in pattern order. An empty
// result means the text looks clean.
func (r *Redactor) Detect(text string) []string {
	var found []string
	for _, p := range r.patterns {
		if p.Regex.MatchString(text) {
			found = append(found, p.Name)
		}
	}
	return found
}
