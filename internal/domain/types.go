package domain

import "strings"

// CommitType is a category label prefixed to a commit subject line.
type CommitType struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DefaultCommitType is a built-in commit type with its setup-time default.
type DefaultCommitType struct {
	CommitType
	Enabled bool
}

// DefaultCommitTypes is the built-in taxonomy offered by the setup wizard.
// Enabled marks the types pre-selected in the multi-select.
var DefaultCommitTypes = []DefaultCommitType{
	{CommitType{"feat", "a new feature"}, true},
	{CommitType{"fix", "a bug fix"}, true},
	{CommitType{"docs", "documentation only changes"}, true},
	{CommitType{"style", "formatting changes that do not affect meaning"}, false},
	{CommitType{"refactor", "a change that neither fixes a bug nor adds a feature"}, true},
	{CommitType{"perf", "a change that improves performance"}, false},
	{CommitType{"test", "adding or correcting tests"}, true},
	{CommitType{"chore", "build process or auxiliary tooling changes"}, true},
}

// ParseCustomTypes parses a comma-separated list of name:description pairs.
// Each pair is trimmed and split on the first colon; pairs missing a
// non-empty name or description are silently dropped. Order is preserved.
func ParseCustomTypes(s string) []CommitType {
	var out []CommitType
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		name, desc, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		desc = strings.TrimSpace(desc)
		if name == "" || desc == "" {
			continue
		}
		out = append(out, CommitType{Name: name, Description: desc})
	}
	return out
}
