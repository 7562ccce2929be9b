package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jharland/commit-pilot/internal/testutil"
)

func TestCollectNothingStaged(t *testing.T) {
	tests := []struct {
		name  string
		files []string
	}{
		{name: "empty list", files: []string{}},
		{name: "single empty entry", files: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			git := &testutil.FakeGit{Files: tt.files, Diff: ""}
			// Point at an empty directory: any file read would fail loudly.
			c := NewCollector(git, t.TempDir())

			_, err := c.Collect(context.Background())
			assert.ErrorIs(t, err, ErrNothingStaged)
			assert.Equal(t, 1, git.FilesCalls)
			assert.Equal(t, 1, git.DiffCalls)
		})
	}
}

func TestCollectLabeledBlocksInGitOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.go"), []byte("package b\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.js"), []byte("console.log(1)\n"), 0o644))

	git := &testutil.FakeGit{
		Files: []string{"b.go", "a.js"},
		Diff:  testutil.SampleDiff,
	}
	c := NewCollector(git, dir)

	changes, err := c.Collect(context.Background())
	require.NoError(t, err)

	want := "File: b.go\npackage b\n\n\n" +
		"File: a.js\nconsole.log(1)\n\n\n"
	assert.Equal(t, want, changes.FileContents)
	assert.Equal(t, []string{"b.go", "a.js"}, changes.Files)
	assert.Equal(t, testutil.SampleDiff, changes.Diff)
}

func TestCollectUnreadableFileIsFatal(t *testing.T) {
	git := &testutil.FakeGit{
		Files: []string{"gone.js"},
		Diff:  "+x",
	}
	c := NewCollector(git, t.TempDir())

	_, err := c.Collect(context.Background())
	assert.ErrorIs(t, err, ErrFileRead)
}

func TestCollectQueryFailures(t *testing.T) {
	t.Run("staged files query", func(t *testing.T) {
		git := &testutil.FakeGit{FilesErr: errors.New("fatal: not a git repository")}
		c := NewCollector(git, t.TempDir())

		_, err := c.Collect(context.Background())
		assert.ErrorIs(t, err, ErrVcsQuery)
	})

	t.Run("staged diff query", func(t *testing.T) {
		git := &testutil.FakeGit{
			Files:   []string{"a.js"},
			DiffErr: fmt.Errorf("git diff --cached: warning: unexpected output"),
		}
		c := NewCollector(git, t.TempDir())

		_, err := c.Collect(context.Background())
		assert.ErrorIs(t, err, ErrVcsQuery)
	})
}
