package cmd

import (
	"github.com/urfave/cli/v2"
)

// LayoutCmd returns the layout command.
func LayoutCmd() *cli.Command {
	return &cli.Command{
		Name:    "layout",
		Aliases: []string{"l"},
		Usage:   "Lay out the commit graph of a repository",
		Flags:   append(gitFlags(), commonFlags()...),
		Action: func(c *cli.Context) error {
			return runLayout(c, c.String("repo"))
		},
	}
}

func runLayout(c *cli.Context, repoPath string) error {
	cc, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	commits := cc.FetchCommits(repoPath)
	if len(commits) == 0 {
		cc.Logger.Info("no commits found", "repo", repoPath)
	}

	report := cc.NewReport(repoPath, commits)
	return cc.WriteReport(c, report)
}
