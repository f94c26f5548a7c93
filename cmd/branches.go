package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/gitlanes/internal/layout"
	"github.com/masmgr/gitlanes/internal/output"
)

// BranchesCmd returns the branches command.
func BranchesCmd() *cli.Command {
	return &cli.Command{
		Name:    "branches",
		Aliases: []string{"b"},
		Usage:   "List branch tips with their lanes and the HEAD commit",
		Flags:   gitFlags(),
		Action:  branchesAction,
	}
}

func branchesAction(c *cli.Context) error {
	cc, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	repoPath := c.String("repo")
	commits := cc.FetchCommits(repoPath)

	var out io.Writer = os.Stdout
	if c.App.Writer != nil {
		out = c.App.Writer
	}
	return writeBranches(out, commits)
}

func writeBranches(out io.Writer, commits []layout.Commit) error {
	if len(commits) == 0 {
		fmt.Fprintln(out, "No commits found.")
		return nil
	}

	engine := layout.New(commits)
	tips := layout.BranchTips(commits)
	head, hasHead := layout.HeadCommit(commits)

	names := make([]string, 0, len(tips))
	for name := range tips {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Branch\tCommit\tLane\t")
	for _, name := range names {
		hash := tips[name]
		lane, _ := engine.Lane(hash)
		marker := ""
		if hasHead && hash == head {
			marker = color.GreenString("HEAD")
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", name, output.ShortHash(hash), lane, marker)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if hasHead {
		fmt.Fprintf(out, "\nHEAD: %s\n", output.ShortHash(head))
	} else {
		fmt.Fprintln(out, "\nHEAD: detached or not in history")
	}
	return nil
}
