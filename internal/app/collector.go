package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jharland/commit-pilot/internal/domain"
	"github.com/jharland/commit-pilot/internal/ports"
)

// Collector gathers the staged change set for one run.
type Collector struct {
	git     ports.Git
	baseDir string
}

// NewCollector creates a collector reading staged file contents relative to
// baseDir (usually the directory the CLI runs in).
func NewCollector(git ports.Git, baseDir string) *Collector {
	if baseDir == "" {
		baseDir = "."
	}
	return &Collector{git: git, baseDir: baseDir}
}

// Collect queries staged paths and the cached diff, then reads each staged
// file from disk into a labeled block.
//
// An empty path list, or a list whose sole entry is the empty string (git's
// line-split representation of empty output), both mean nothing is staged
// and short-circuit with ErrNothingStaged before any file is read.
func (c *Collector) Collect(ctx context.Context) (domain.StagedChanges, error) {
	files, err := c.git.StagedFiles(ctx)
	if err != nil {
		return domain.StagedChanges{}, fmt.Errorf("%w: %v", ErrVcsQuery, err)
	}

	diff, err := c.git.StagedDiff(ctx)
	if err != nil {
		return domain.StagedChanges{}, fmt.Errorf("%w: %v", ErrVcsQuery, err)
	}

	if len(files) == 0 || (len(files) == 1 && files[0] == "") {
		return domain.StagedChanges{}, ErrNothingStaged
	}

	var contents strings.Builder
	for _, path := range files {
		b, err := os.ReadFile(filepath.Join(c.baseDir, path))
		if err != nil {
			// No partial message from incomplete content.
			return domain.StagedChanges{}, fmt.Errorf("%w: %v", ErrFileRead, err)
		}
		fmt.Fprintf(&contents, "File: %s\n%s\n\n", path, b)
	}

	return domain.StagedChanges{
		Files:        files,
		Diff:         diff,
		FileContents: contents.String(),
	}, nil
}
