package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/masmgr/gitlanes/internal/logging"
)

// GitCLIReader reads history by running the git executable.
type GitCLIReader struct {
	opts   ReadOptions
	filter refFilter
}

// NewGitCLIReader creates a reader shelling out to git in opts.RepoPath.
func NewGitCLIReader(opts ReadOptions) *GitCLIReader {
	return &GitCLIReader{opts: opts, filter: newRefFilter(opts)}
}

// ReadLog runs git log over all refs (or the refs selected by the filters)
// in date order and returns its output.
func (r *GitCLIReader) ReadLog(ctx context.Context) (string, error) {
	logger := logging.FromContext(ctx)

	revs := []string{"--all"}
	if !r.filter.empty() {
		selected, err := r.selectRefs(ctx)
		if err != nil {
			return "", err
		}
		if len(selected) == 0 {
			logger.Debug("no refs matched filters", "include", r.opts.Include, "exclude", r.opts.Exclude)
			return "", nil
		}
		revs = selected
	}

	args := r.logArgs(revs)
	logger.Debug("running git", "args", strings.Join(args, " "))

	out, err := r.run(ctx, args...)
	if err != nil {
		return "", fmt.Errorf("git log failed: %w", err)
	}
	return string(out), nil
}

func (r *GitCLIReader) logArgs(revs []string) []string {
	args := []string{
		"log",
		"--no-color",
		"--date-order",
		"--decorate=short",
		"--pretty=format:" + LogFormat,
	}
	if r.opts.MaxCount > 0 {
		args = append(args, "--max-count="+strconv.Itoa(r.opts.MaxCount))
	}
	args = append(args, revs...)
	return append(args, "--")
}

// selectRefs lists every ref of the repository and keeps the ones matching
// the filters, as full ref names usable as revisions.
func (r *GitCLIReader) selectRefs(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, "for-each-ref", "--format=%(refname)", "refs/heads", "refs/remotes", "refs/tags")
	if err != nil {
		return nil, fmt.Errorf("git for-each-ref failed: %w", err)
	}

	var selected []string
	for _, line := range strings.Split(string(out), "\n") {
		full := strings.TrimSpace(line)
		if full == "" || strings.HasSuffix(full, "/HEAD") {
			continue
		}
		ok, err := r.filter.matches(shortRefName(full))
		if err != nil {
			return nil, err
		}
		if ok {
			selected = append(selected, full)
		}
	}
	return selected, nil
}

func (r *GitCLIReader) run(ctx context.Context, args ...string) ([]byte, error) {
	full := append([]string{"-C", r.opts.RepoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", full...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}
