package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// testRepo is a small repository built with go-git:
//
//	first (tag: v0.1, annotated) <- second (HEAD -> <base>, tag: v1.0) <- third (feature)
type testRepo struct {
	dir    string
	base   string
	first  string
	second string
	third  string
}

func newTestRepo(t *testing.T) testRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	now := time.Now()
	commit := func(msg, content string, when time.Time) plumbing.Hash {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, err := wt.Add("file.txt"); err != nil {
			t.Fatalf("Add: %v", err)
		}
		sig := &object.Signature{Name: "Test", Email: "test@example.com", When: when}
		h, err := wt.Commit(msg, &gogit.CommitOptions{Author: sig, Committer: sig})
		if err != nil {
			t.Fatalf("Commit: %v", err)
		}
		return h
	}

	first := commit("initial\n\nlonger body", "1\n", now.Add(-3*time.Hour))
	second := commit("second", "2\n", now.Add(-2*time.Hour))

	head, err := repo.Head()
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	base := head.Name()

	if err := wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName("feature"),
		Create: true,
	}); err != nil {
		t.Fatalf("Checkout(feature): %v", err)
	}
	third := commit("feature work | with pipe", "3\n", now.Add(-1*time.Hour))

	if err := wt.Checkout(&gogit.CheckoutOptions{Branch: base}); err != nil {
		t.Fatalf("Checkout(%s): %v", base.Short(), err)
	}

	if _, err := repo.CreateTag("v1.0", second, nil); err != nil {
		t.Fatalf("CreateTag(v1.0): %v", err)
	}
	if _, err := repo.CreateTag("v0.1", first, &gogit.CreateTagOptions{
		Message: "first release",
		Tagger:  &object.Signature{Name: "Test", Email: "test@example.com", When: now},
	}); err != nil {
		t.Fatalf("CreateTag(v0.1): %v", err)
	}

	return testRepo{
		dir:    dir,
		base:   base.Short(),
		first:  first.String(),
		second: second.String(),
		third:  third.String(),
	}
}
