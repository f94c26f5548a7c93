package git

import "context"

// RepositoryReader defines the interface for reading Git repository history.
// Implementations return raw log text, one record per line in LogFormat.
type RepositoryReader interface {
	// ReadLog reads the commit history of the selected refs.
	ReadLog(ctx context.Context) (string, error)
}

// Compile-time interface conformance checks.
var (
	_ RepositoryReader = (*GitCLIReader)(nil)
	_ RepositoryReader = (*GoGitReader)(nil)
)
