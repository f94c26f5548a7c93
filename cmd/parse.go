package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/gitlanes/internal/layout"
)

// ParseCmd returns the parse command, which lays out a log captured with
// git log --pretty=format:%H|%P|%D|%s.
func ParseCmd() *cli.Command {
	flags := append([]cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "Log file to read (- reads stdin)",
			Value:   "-",
		},
	}, commonFlags()...)

	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "Lay out a captured log instead of reading a repository",
		ArgsUsage: "[log file]",
		Flags:     flags,
		Action:    parseAction,
	}
}

func parseAction(c *cli.Context) error {
	cc, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	input := c.String("input")
	if !c.IsSet("input") && c.NArg() > 0 {
		input = c.Args().First()
	}

	raw, err := readInput(c, input)
	if err != nil {
		return err
	}

	commits := layout.ParseLog(raw)
	cc.Logger.Debug("parsed log", "input", input, "bytes", len(raw), "commits", len(commits))

	source := input
	if input == "-" {
		source = "stdin"
	}
	return cc.WriteReport(c, cc.NewReport(source, commits))
}

func readInput(c *cli.Context, input string) (string, error) {
	if input == "-" {
		var r io.Reader = os.Stdin
		if c.App.Reader != nil {
			r = c.App.Reader
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("failed to read log: %w", err)
	}
	return string(data), nil
}
