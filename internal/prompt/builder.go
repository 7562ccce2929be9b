package prompt

import (
	"fmt"
	"strings"

	"github.com/jharland/commit-pilot/internal/domain"
)

// Build assembles the generation prompt from the staged file contents, the
// cached diff, and the configured commit-type taxonomy. It is a pure
// function: identical inputs always yield identical prompt text, and the
// rendered type list preserves input order.
//
// The numbered rules are instructions to the generation service; the
// returned message is never validated against them locally.
func Build(fileContents, diff string, types []domain.CommitType) string {
	var b strings.Builder

	b.WriteString("Write a git commit message for the staged changes below.\n\n")

	b.WriteString("Allowed commit types:\n")
	for _, t := range types {
		fmt.Fprintf(&b, "- %s: %s\n", t.Name, t.Description)
	}

	b.WriteString("\nRules the message must follow:\n")
	b.WriteString("1. the subject line begins with one of the allowed commit type names followed by \": \"\n")
	b.WriteString("2. use the imperative mood in the subject line\n")
	b.WriteString("3. the subject line is at most 50 characters including the type prefix\n")
	b.WriteString("4. the entire message is lower-case\n")
	b.WriteString("5. no trailing period on the subject line\n")
	b.WriteString("6. exactly one blank line separates the subject from the body\n")
	b.WriteString("7. body lines are wrapped at 72 characters\n")
	b.WriteString("8. the body explains what and why, not how\n")

	b.WriteString("\nStaged file contents:\n")
	b.WriteString(fileContents)

	b.WriteString("\nStaged diff:\n")
	b.WriteString(diff)

	b.WriteString("\nRespond with the commit message only, no markdown or commentary.\n")

	return b.String()
}
