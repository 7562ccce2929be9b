package domain

import "strings"

// Message is the subject/body view of a generated commit message.
// The split is presentation-only; the raw text is what gets committed.
type Message struct {
	Subject string
	Body    string
}

// Split breaks generated text into a subject (first line) and body
// (remaining lines, rejoined).
func Split(text string) Message {
	lines := strings.Split(text, "\n")
	body := ""
	if len(lines) > 1 {
		body = strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}
	return Message{
		Subject: strings.TrimSpace(lines[0]),
		Body:    body,
	}
}

// StagedChanges is everything collected from the repository for one run.
type StagedChanges struct {
	Files        []string
	Diff         string
	FileContents string
}
