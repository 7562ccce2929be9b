package security

import "regexp"

// Redactor scrubs secrets with built-in patterns. Staged diffs and file
// contents pass through Redact before being sent to the generation service;
// log lines pass through RedactLog.
type Redactor struct {
	patterns []*regexp.Regexp
}

// NewRedactor creates a new redactor with default patterns.
func NewRedactor() *Redactor {
	patterns := []*regexp.Regexp{
		// OpenAI-style API keys
		regexp.MustCompile(`sk-[a-zA-Z0-9\-_]{20,}`),
		// AWS access keys
		regexp.MustCompile(`(?i)AKIA[0-9A-Z]{16}`),
		// Authorization headers
		regexp.MustCompile(`(?i)(?:authorization|auth|token):\s*Bearer\s+[a-zA-Z0-9._\-]+`),
		// JSON API key fields
		regexp.MustCompile(`"(?:api_key|apiKey|API_KEY)":\s*"[^"]+"`),
		// Password assignments
		regexp.MustCompile(`(?i)(?:password|passwd|pwd):\s*"[^"]+"`),
		// Google API keys
		regexp.MustCompile(`AIza[0-9A-Za-z\-_]{35}`),
		// GitHub tokens
		regexp.MustCompile(`gh[pu]_[a-zA-Z0-9]{36}`),
		// Private keys (PEM header)
		regexp.MustCompile(`-----BEGIN (?:RSA |DSA |EC )?PRIVATE KEY-----`),
	}
	return &Redactor{patterns: patterns}
}

// Redact removes sensitive patterns from text.
func (r *Redactor) Redact(text string) string {
	result := text
	for _, pattern := range r.patterns {
		result = pattern.ReplaceAllString(result, "[REDACTED]")
	}
	return result
}

// RedactLog is more aggressive, also removing IP addresses and emails.
func (r *Redactor) RedactLog(text string) string {
	result := r.Redact(text)
	ipPattern := regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)
	result = ipPattern.ReplaceAllString(result, "[IP]")
	emailPattern := regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`)
	result = emailPattern.ReplaceAllString(result, "[EMAIL]")
	return result
}
