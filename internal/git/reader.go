package git

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/masmgr/gitlanes/internal/layout"
	"github.com/masmgr/gitlanes/internal/logging"
)

// GoGitReader reads history in-process with go-git and prints it in the
// same format as GitCLIReader.
type GoGitReader struct {
	repo   *git.Repository
	opts   ReadOptions
	filter refFilter
}

// NewGoGitReader opens the repository at opts.RepoPath.
func NewGoGitReader(opts ReadOptions) (*GoGitReader, error) {
	repo, err := git.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, err
	}
	return &GoGitReader{repo: repo, opts: opts, filter: newRefFilter(opts)}, nil
}

// refTip is a selected ref resolved to the commit it points at.
type refTip struct {
	name   plumbing.ReferenceName
	commit plumbing.Hash
}

// ReadLog walks the history reachable from the selected refs, newest commit
// first, and renders one record per commit.
func (r *GoGitReader) ReadLog(ctx context.Context) (string, error) {
	logger := logging.FromContext(ctx)

	tips, err := r.selectTips()
	if err != nil {
		return "", err
	}
	decorations, err := r.decorations(tips)
	if err != nil {
		return "", err
	}

	seeds := make([]plumbing.Hash, 0, len(tips)+1)
	for _, t := range tips {
		seeds = append(seeds, t.commit)
	}
	if r.filter.empty() {
		if head, err := r.repo.Head(); err == nil {
			seeds = append(seeds, head.Hash())
		}
	}
	logger.Debug("walking history", "refs", len(tips), "seeds", len(seeds))

	commits, err := r.walk(ctx, seeds)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, c := range commits {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(layout.FormatRecord(toLayoutCommit(c, decorations[c.Hash])))
	}
	return b.String(), nil
}

// walk collects every commit reachable from seeds, ordered by committer
// time with the newest first, like git log --date-order.
func (r *GoGitReader) walk(ctx context.Context, seeds []plumbing.Hash) ([]*object.Commit, error) {
	seen := make(map[plumbing.Hash]struct{})
	var commits []*object.Commit

	for _, seed := range seeds {
		if _, ok := seen[seed]; ok {
			continue
		}
		iter, err := r.repo.Log(&git.LogOptions{From: seed, Order: git.LogOrderCommitterTime})
		if err != nil {
			return nil, fmt.Errorf("log from %s: %w", seed, err)
		}
		err = iter.ForEach(func(c *object.Commit) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, ok := seen[c.Hash]; ok {
				return nil
			}
			seen[c.Hash] = struct{}{}
			commits = append(commits, c)
			return nil
		})
		iter.Close()
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(commits, func(i, j int) bool {
		ti, tj := commits[i].Committer.When, commits[j].Committer.When
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return commits[i].Hash.String() < commits[j].Hash.String()
	})

	if r.opts.MaxCount > 0 && len(commits) > r.opts.MaxCount {
		commits = commits[:r.opts.MaxCount]
	}
	return commits, nil
}

// selectTips returns the branch, remote and tag refs passing the filters,
// resolved to commits. Symbolic refs such as origin/HEAD are skipped.
func (r *GoGitReader) selectTips() ([]refTip, error) {
	iter, err := r.repo.References()
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var tips []refTip
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name()
		if !name.IsBranch() && !name.IsRemote() && !name.IsTag() {
			return nil
		}
		ok, err := r.filter.matches(name.Short())
		if err != nil || !ok {
			return err
		}
		commit, err := r.peel(ref.Hash())
		if err != nil {
			// Tags may point at trees or blobs; they decorate nothing.
			return nil
		}
		tips = append(tips, refTip{name: name, commit: commit})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(tips, func(i, j int) bool { return tips[i].name < tips[j].name })
	return tips, nil
}

// peel resolves annotated tags to the commit they point at.
func (r *GoGitReader) peel(h plumbing.Hash) (plumbing.Hash, error) {
	tag, err := r.repo.TagObject(h)
	if errors.Is(err, plumbing.ErrObjectNotFound) {
		if _, err := r.repo.CommitObject(h); err != nil {
			return plumbing.ZeroHash, err
		}
		return h, nil
	}
	if err != nil {
		return plumbing.ZeroHash, err
	}
	c, err := tag.Commit()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return c.Hash, nil
}

// decorations renders %D-style decorations per commit: "HEAD -> main" (or a
// bare "HEAD" when detached) first, then local branches, remote branches and
// "tag: " names.
func (r *GoGitReader) decorations(tips []refTip) (map[plumbing.Hash][]string, error) {
	out := make(map[plumbing.Hash][]string)

	headBranch := plumbing.ReferenceName("")
	head, err := r.repo.Head()
	switch {
	case err == nil:
		if head.Name().IsBranch() {
			headBranch = head.Name()
			out[head.Hash()] = append(out[head.Hash()], "HEAD -> "+head.Name().Short())
		} else {
			out[head.Hash()] = append(out[head.Hash()], "HEAD")
		}
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// Unborn HEAD: nothing checked out yet.
	default:
		return nil, err
	}

	for _, kind := range []func(plumbing.ReferenceName) bool{
		plumbing.ReferenceName.IsBranch,
		plumbing.ReferenceName.IsRemote,
		plumbing.ReferenceName.IsTag,
	} {
		for _, t := range tips {
			if !kind(t.name) || t.name == headBranch {
				continue
			}
			label := t.name.Short()
			if t.name.IsTag() {
				label = "tag: " + label
			}
			out[t.commit] = append(out[t.commit], label)
		}
	}
	return out, nil
}

func toLayoutCommit(c *object.Commit, refs []string) layout.Commit {
	parents := make([]string, len(c.ParentHashes))
	for i, p := range c.ParentHashes {
		parents[i] = p.String()
	}

	// Extract first line of commit message
	message := c.Message
	if idx := strings.IndexByte(message, '\n'); idx != -1 {
		message = message[:idx]
	}

	return layout.Commit{
		Hash:    c.Hash.String(),
		Parents: parents,
		Refs:    refs,
		Message: message,
	}
}
