package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/gitlanes/config"
	"github.com/masmgr/gitlanes/internal/git"
	"github.com/masmgr/gitlanes/internal/layout"
	"github.com/masmgr/gitlanes/internal/logging"
	"github.com/masmgr/gitlanes/internal/output"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across the layout commands.
type CommandContext struct {
	Config *config.Config
	Ctx    context.Context
	Logger *log.Logger
}

// NewCommandContext loads the configuration with the flag overrides of c.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return &CommandContext{
		Config: cfg,
		Ctx:    ctx,
		Logger: logging.FromContext(ctx),
	}, nil
}

// ReadOptions creates the history read options for repoPath.
func (cc *CommandContext) ReadOptions(repoPath string) git.ReadOptions {
	return git.ReadOptions{
		RepoPath: repoPath,
		Backend:  git.Backend(cc.Config.Git.Backend),
		MaxCount: cc.Config.Git.MaxCount,
		Include:  cc.Config.Git.Refs.Include,
		Exclude:  cc.Config.Git.Refs.Exclude,
	}
}

// FetchCommits reads the history of repoPath. Read failures yield no commits.
func (cc *CommandContext) FetchCommits(repoPath string) []layout.Commit {
	return git.Fetch(cc.Ctx, cc.ReadOptions(repoPath))
}

// NewReport lays out commits with the configured geometry and colors.
func (cc *CommandContext) NewReport(source string, commits []layout.Commit) *output.LayoutReport {
	report := output.NewLayoutReport(source, commits, layout.WithOptions(cc.Config.LayoutOptions()))
	cc.Logger.Debug("laid out history", "commits", len(report.Nodes), "edges", len(report.Edges))
	return report
}

// OutputOptions creates OutputOptions from the configuration and the output flag.
func (cc *CommandContext) OutputOptions(c *cli.Context) (output.OutputOptions, error) {
	format, err := output.ParseFormat(cc.Config.Output.Format)
	if err != nil {
		return output.OutputOptions{}, err
	}
	return output.OutputOptions{
		Format:     format,
		Top:        cc.Config.Output.Top,
		OutputPath: c.String("output"),
	}, nil
}

// WriteReport renders report in the chosen format.
func (cc *CommandContext) WriteReport(c *cli.Context, report *output.LayoutReport) error {
	opts, err := cc.OutputOptions(c)
	if err != nil {
		return err
	}
	writer := output.NewLayoutWriter(opts.Format)
	if err := writer.Write(report, opts); err != nil {
		return fmt.Errorf("failed to write %s output: %w", opts.Format, err)
	}
	return nil
}
