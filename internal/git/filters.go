package git

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// refFilter selects the refs whose history is read.
type refFilter struct {
	include []string
	exclude []string
}

func newRefFilter(opts ReadOptions) refFilter {
	return refFilter{include: opts.Include, exclude: opts.Exclude}
}

// empty reports whether the filter selects every ref.
func (f refFilter) empty() bool {
	return len(f.include) == 0 && len(f.exclude) == 0
}

// matches checks a short ref name ("main", "origin/main", "v1.0") against
// the include/exclude patterns.
func (f refFilter) matches(name string) (bool, error) {
	// Normalize path separators
	name = strings.ReplaceAll(name, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range f.exclude {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		if matched {
			return false, nil
		}
	}

	// If no include patterns, accept all
	if len(f.include) == 0 {
		return true, nil
	}

	for _, pattern := range f.include {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}

	return false, nil
}

// shortRefName strips the refs/heads/, refs/remotes/ or refs/tags/ prefix.
func shortRefName(full string) string {
	for _, prefix := range []string{"refs/heads/", "refs/remotes/", "refs/tags/"} {
		if strings.HasPrefix(full, prefix) {
			return strings.TrimPrefix(full, prefix)
		}
	}
	return full
}
