package testutil

import "context"

// FakeGit is a scripted git collaborator for testing.
type FakeGit struct {
	Files    []string
	FilesErr error
	Diff     string
	DiffErr  error

	CommitWarning string
	CommitErr     error

	FilesCalls  int
	DiffCalls   int
	CommitCalls int

	CommittedMessages []string
	SignFlags         []bool
}

func (f *FakeGit) StagedFiles(ctx context.Context) ([]string, error) {
	f.FilesCalls++
	if f.FilesErr != nil {
		return nil, f.FilesErr
	}
	return f.Files, nil
}

func (f *FakeGit) StagedDiff(ctx context.Context) (string, error) {
	f.DiffCalls++
	if f.DiffErr != nil {
		return "", f.DiffErr
	}
	return f.Diff, nil
}

func (f *FakeGit) Commit(ctx context.Context, message string, sign bool) (string, error) {
	f.CommitCalls++
	if f.CommitErr != nil {
		return "", f.CommitErr
	}
	f.CommittedMessages = append(f.CommittedMessages, message)
	f.SignFlags = append(f.SignFlags, sign)
	return f.CommitWarning, nil
}

// FakeGenerator is a deterministic generation service for testing.
type FakeGenerator struct {
	Message    string
	Err        error
	CallCount  int
	LastPrompt string
}

func (f *FakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.CallCount++
	f.LastPrompt = prompt
	if f.Err != nil {
		return "", f.Err
	}
	return f.Message, nil
}
