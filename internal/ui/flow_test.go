package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jharland/commit-pilot/internal/app"
	"github.com/jharland/commit-pilot/internal/testutil"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFlowApproveCommits(t *testing.T) {
	gen := &testutil.FakeGenerator{Message: testutil.SampleMessage}
	git := &testutil.FakeGit{}
	m := NewFlow(gen, git, "prompt text", false)

	// Generation finishes and the review is shown.
	_, _ = m.Update(m.cmdGenerate())
	assert.Equal(t, stateReview, m.state)
	assert.Equal(t, "feat: add logging", m.review.Subject)
	assert.Equal(t, "adds a debug log line", m.review.Body)
	assert.Equal(t, 1, gen.CallCount)
	assert.Equal(t, "prompt text", gen.LastPrompt)

	// User approves; the commit runs with the exact generated text.
	_, cmd := m.Update(key("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, stateCommitting, m.state)

	_, _ = m.Update(m.cmdCommit())
	assert.Equal(t, stateDone, m.state)

	res := m.Result()
	assert.True(t, res.Approved)
	assert.True(t, res.Committed)
	require.NoError(t, res.Err)
	assert.Equal(t, []string{testutil.SampleMessage}, git.CommittedMessages)
	assert.Equal(t, []bool{false}, git.SignFlags)
}

func TestFlowDeclineNeverCommits(t *testing.T) {
	gen := &testutil.FakeGenerator{Message: testutil.SampleMessage}
	git := &testutil.FakeGit{}
	m := NewFlow(gen, git, "prompt text", false)

	_, _ = m.Update(m.cmdGenerate())
	_, _ = m.Update(key("n"))

	res := m.Result()
	assert.False(t, res.Approved)
	assert.False(t, res.Committed)
	assert.Equal(t, 0, git.CommitCalls)
	// The full original text is still reported for the "cancelled" path.
	assert.Equal(t, testutil.SampleMessage, res.Message)
}

func TestFlowSignFlagPassedThrough(t *testing.T) {
	gen := &testutil.FakeGenerator{Message: testutil.SampleMessage}
	git := &testutil.FakeGit{}
	m := NewFlow(gen, git, "prompt text", true)

	_, _ = m.Update(m.cmdGenerate())
	_, _ = m.Update(key("y"))
	_, _ = m.Update(m.cmdCommit())

	assert.Equal(t, []bool{true}, git.SignFlags)
}

func TestFlowGenerationError(t *testing.T) {
	gen := &testutil.FakeGenerator{Err: errors.New("401 unauthorized")}
	git := &testutil.FakeGit{}
	m := NewFlow(gen, git, "prompt text", false)

	_, _ = m.Update(m.cmdGenerate())

	res := m.Result()
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, app.ErrGeneration)
	assert.Equal(t, 0, git.CommitCalls)
}

func TestFlowCommitError(t *testing.T) {
	gen := &testutil.FakeGenerator{Message: testutil.SampleMessage}
	git := &testutil.FakeGit{CommitErr: errors.New("pre-commit hook failed")}
	m := NewFlow(gen, git, "prompt text", false)

	_, _ = m.Update(m.cmdGenerate())
	_, _ = m.Update(key("y"))
	_, _ = m.Update(m.cmdCommit())

	res := m.Result()
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, app.ErrCommit)
	assert.False(t, res.Committed)
}

func TestFlowCommitWarningIsNonFatal(t *testing.T) {
	gen := &testutil.FakeGenerator{Message: testutil.SampleMessage}
	git := &testutil.FakeGit{CommitWarning: "hint: some hook output"}
	m := NewFlow(gen, git, "prompt text", false)

	_, _ = m.Update(m.cmdGenerate())
	_, _ = m.Update(key("y"))
	_, _ = m.Update(m.cmdCommit())

	res := m.Result()
	require.NoError(t, res.Err)
	assert.True(t, res.Committed)
	assert.Equal(t, "hint: some hook output", res.Warning)
}
