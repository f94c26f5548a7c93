package git

import (
	"context"

	"github.com/masmgr/gitlanes/internal/layout"
	"github.com/masmgr/gitlanes/internal/logging"
)

// NewReader creates the reader for opts.Backend.
func NewReader(opts ReadOptions) (RepositoryReader, error) {
	backend, err := ParseBackend(string(opts.Backend))
	if err != nil {
		return nil, err
	}
	switch backend {
	case BackendGoGit:
		return NewGoGitReader(opts)
	default:
		return NewGitCLIReader(opts), nil
	}
}

// FetchCommits reads and parses the history. Any failure to read the log is
// logged and yields an empty commit list, never an error.
func FetchCommits(ctx context.Context, reader RepositoryReader) []layout.Commit {
	logger := logging.FromContext(ctx)

	raw, err := reader.ReadLog(ctx)
	if err != nil {
		logger.Warn("reading history failed", "err", err)
		return []layout.Commit{}
	}

	commits := layout.ParseLog(raw)
	logger.Debug("parsed history", "commits", len(commits))
	return commits
}

// Fetch creates the reader for opts and fetches its commits. A repository
// that cannot be opened yields an empty commit list like any other failure.
func Fetch(ctx context.Context, opts ReadOptions) []layout.Commit {
	reader, err := NewReader(opts)
	if err != nil {
		logging.FromContext(ctx).Warn("opening repository failed", "repo", opts.RepoPath, "err", err)
		return []layout.Commit{}
	}
	return FetchCommits(ctx, reader)
}
