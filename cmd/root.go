package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/gitlanes/config"
	"github.com/masmgr/gitlanes/internal/logging"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "gitlanes",
		Usage:   "Lay out Git commit graphs in lanes, like git log --graph",
		Version: "1.0.0",
		Commands: []*cli.Command{
			LayoutCmd(),
			ParseCmd(),
			BranchesCmd(),
			InitConfigCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (.json or .toml)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug details to stderr",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
			},
		},
		Before: setupLogging,
		Action: legacyAction,
	}
}

// setupLogging stores the logger for the chosen verbosity in the context
// shared with every command.
func setupLogging(c *cli.Context) error {
	var w io.Writer = os.Stderr
	if c.App.ErrWriter != nil {
		w = c.App.ErrWriter
	}
	logger := logging.New(w, logging.Level(c.Bool("verbose"), c.Bool("quiet")))
	c.Context = logging.WithLogger(c.Context, logger)
	return nil
}

// Flags shared by the commands that render a layout.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown, ci, dot)",
			Value:   "console",
		},
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"n"},
			Usage:   "Number of newest commits to show (0 shows all)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.IntFlag{
			Name:  "lane-width",
			Usage: "Horizontal distance between lanes",
		},
		&cli.IntFlag{
			Name:  "row-height",
			Usage: "Vertical distance between commits",
		},
		&cli.StringFlag{
			Name:  "primary-color",
			Usage: "Color of lane 0 (#rrggbb)",
		},
		&cli.StringSliceFlag{
			Name:  "palette",
			Usage: "Colors of the other lanes (can be specified multiple times)",
		},
	}
}

// Flags selecting the history read from a repository.
func gitFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "History reader (cli, go-git)",
		},
		&cli.IntFlag{
			Name:  "max-count",
			Usage: "Maximum number of commits to read (0 reads all)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns of refs to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns of refs to exclude (can be specified multiple times)",
		},
	}
}

// loadConfig loads configuration from file or defaults, then applies the
// flags set on the command line.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.IsSet("lane-width") {
		cfg.Layout.LaneWidth = c.Int("lane-width")
	}
	if c.IsSet("row-height") {
		cfg.Layout.RowHeight = c.Int("row-height")
	}
	if c.IsSet("primary-color") {
		cfg.Layout.PrimaryColor = c.String("primary-color")
	}
	if palette := c.StringSlice("palette"); len(palette) > 0 {
		cfg.Layout.Palette = palette
	}
	if c.IsSet("backend") {
		cfg.Git.Backend = c.String("backend")
	}
	if c.IsSet("max-count") {
		cfg.Git.MaxCount = c.Int("max-count")
	}
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Git.Refs.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Git.Refs.Exclude = excludes
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}
	if c.IsSet("top") {
		cfg.Output.Top = c.Int("top")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

// legacyAction handles the default command behavior.
// When a repository path is provided as an argument, it lays out that repository.
func legacyAction(c *cli.Context) error {
	// If no args and no subcommand, show help
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}
	return runLayout(c, c.Args().First())
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
