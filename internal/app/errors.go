package app

import "errors"

// Sentinel errors for the commit flow. Every failure is terminal; the CLI
// layer converts each into a single user-visible message and never retries.
var (
	// ErrNothingStaged is a user notice, not a failure: there is simply
	// nothing to commit.
	ErrNothingStaged = errors.New("nothing staged")

	// ErrVcsQuery covers a failed or noisy staged-files or staged-diff query.
	ErrVcsQuery = errors.New("git query failed")

	// ErrFileRead covers an unreadable staged file.
	ErrFileRead = errors.New("staged file unreadable")

	// ErrGeneration covers any failure of the generation service call.
	ErrGeneration = errors.New("message generation failed")

	// ErrCommit covers a failed git commit invocation.
	ErrCommit = errors.New("commit failed")
)
