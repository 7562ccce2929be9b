package ports

import "context"

// Git is the interface for the external version-control tool.
type Git interface {
	// StagedFiles lists staged paths, one per line of git output.
	StagedFiles(ctx context.Context) ([]string, error)
	// StagedDiff returns the cached diff of all staged content.
	StagedDiff(ctx context.Context) (string, error)
	// Commit creates a commit with message, optionally GPG-signed.
	// A non-empty warning carries diagnostic output from a commit that
	// still succeeded (hook chatter and the like).
	Commit(ctx context.Context, message string, sign bool) (warning string, err error)
}

// Generator is the interface for the generative-text service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
