package git

import (
	"errors"
	"fmt"
	"strings"
)

// LogFormat is the pretty format producing one layout record per commit:
// hash, parent hashes, ref decorations and subject, separated by "|".
const LogFormat = "%H|%P|%D|%s"

// Backend selects how history is read.
type Backend string

const (
	// BackendCLI shells out to the git executable.
	BackendCLI Backend = "cli"
	// BackendGoGit reads the repository in-process with go-git.
	BackendGoGit Backend = "go-git"
)

// ErrUnknownBackend is returned for a backend name that is not supported.
var ErrUnknownBackend = errors.New("unknown git backend")

// ParseBackend parses a backend name. The empty string selects the CLI.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cli", "git", "exec":
		return BackendCLI, nil
	case "go-git", "gogit", "native":
		return BackendGoGit, nil
	default:
		return "", fmt.Errorf("%w: %q (expected cli or go-git)", ErrUnknownBackend, s)
	}
}

// ReadOptions configures the history readers.
type ReadOptions struct {
	RepoPath string
	Backend  Backend
	MaxCount int      // 0 reads the whole history
	Include  []string // Glob patterns over short ref names; empty selects all refs
	Exclude  []string // Glob patterns over short ref names
}
