package gitexec

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Executor implements ports.Git using os/exec.
type Executor struct{}

// New creates a new git executor.
func New() *Executor {
	return &Executor{}
}

// StagedFiles lists the staged paths (git diff --cached --name-only).
//
// The list mirrors git's line-based output: with nothing staged it comes
// back as a single empty entry, which the caller treats as "nothing staged".
// Diagnostic output on stderr is a hard failure for this query.
func (e *Executor) StagedFiles(ctx context.Context) ([]string, error) {
	out, errOut, err := e.run(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return nil, fmt.Errorf("git diff --name-only: %w", err)
	}
	if errOut != "" {
		return nil, fmt.Errorf("git diff --name-only: %s", errOut)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines, nil
}

// StagedDiff returns the cached diff of all staged content. As with
// StagedFiles, stderr output fails the query.
func (e *Executor) StagedDiff(ctx context.Context) (string, error) {
	out, errOut, err := e.run(ctx, "diff", "--cached")
	if err != nil {
		return "", fmt.Errorf("git diff --cached: %w", err)
	}
	if errOut != "" {
		return "", fmt.Errorf("git diff --cached: %s", errOut)
	}
	return out, nil
}

// Commit creates a commit with the approved message, passing it as a
// discrete argument so no shell quoting is involved. A failed command is an
// error; stderr output on a successful commit (hook chatter, GPG notices)
// is returned as a non-fatal warning.
func (e *Executor) Commit(ctx context.Context, message string, sign bool) (string, error) {
	_, errOut, err := e.run(ctx, commitArgs(message, sign)...)
	if err != nil {
		if errOut != "" {
			return "", fmt.Errorf("git commit: %s", errOut)
		}
		return "", fmt.Errorf("git commit: %w", err)
	}
	return errOut, nil
}

// commitArgs builds the argv for git commit.
func commitArgs(message string, sign bool) []string {
	args := []string{"commit", "-m", message}
	if sign {
		args = append(args, "-S")
	}
	return args
}

// run executes git with args, capturing stdout and stderr separately.
func (e *Executor) run(ctx context.Context, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err = cmd.Run()
	return out.String(), strings.TrimSpace(errOut.String()), err
}
