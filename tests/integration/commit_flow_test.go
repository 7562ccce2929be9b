package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jharland/commit-pilot/internal/app"
	"github.com/jharland/commit-pilot/internal/config"
	"github.com/jharland/commit-pilot/internal/domain"
	"github.com/jharland/commit-pilot/internal/prompt"
	"github.com/jharland/commit-pilot/internal/testutil"
)

// TestCommitFlowEndToEnd walks collect → build → generate → approve → commit
// against fakes and asserts the exact approved message reaches git.
func TestCommitFlowEndToEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.js"), []byte("console.log(1)\n"), 0o644))

	git := &testutil.FakeGit{
		Files: []string{"a.js"},
		Diff:  "+console.log(1)",
	}
	collector := app.NewCollector(git, dir)

	ctx := context.Background()
	changes, err := collector.Collect(ctx)
	require.NoError(t, err)
	assert.Contains(t, changes.FileContents, "File: a.js")

	types := []domain.CommitType{{Name: "feat", Description: "a new feature"}}
	promptText := prompt.Build(changes.FileContents, changes.Diff, types)

	gen := &testutil.FakeGenerator{Message: "feat: add logging\n\nadds a debug log line"}
	text, err := gen.Generate(ctx, promptText)
	require.NoError(t, err)
	assert.Contains(t, gen.LastPrompt, "+console.log(1)")

	msg := domain.Split(text)
	assert.Equal(t, "feat: add logging", msg.Subject)
	assert.Equal(t, "adds a debug log line", msg.Body)

	// User approves during review; the raw text is committed unchanged.
	warning, err := git.Commit(ctx, text, false)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, []string{"feat: add logging\n\nadds a debug log line"}, git.CommittedMessages)
	assert.Equal(t, []bool{false}, git.SignFlags)
}

// TestMissingConfigAbortsBeforeCollaborators mirrors the CLI's commit mode:
// a missing configuration stops the run before any git or generation call.
func TestMissingConfigAbortsBeforeCollaborators(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	git := &testutil.FakeGit{}
	gen := &testutil.FakeGenerator{}

	_, err := config.LoadFrom(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissing)

	assert.Equal(t, 0, git.FilesCalls)
	assert.Equal(t, 0, git.DiffCalls)
	assert.Equal(t, 0, git.CommitCalls)
	assert.Equal(t, 0, gen.CallCount)
}
