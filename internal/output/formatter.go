package output

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/masmgr/gitlanes/internal/layout"
)

// Compile-time interface conformance checks.
var (
	_ LayoutWriter = (*ConsoleLayoutWriter)(nil)
	_ LayoutWriter = (*JSONLayoutWriter)(nil)
	_ LayoutWriter = (*CSVLayoutWriter)(nil)
	_ LayoutWriter = (*MarkdownLayoutWriter)(nil)
	_ LayoutWriter = (*CILayoutWriter)(nil)
	_ LayoutWriter = (*DOTLayoutWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
	FormatDOT      OutputFormat = "dot"
)

// ErrUnknownFormat is returned for an output format that is not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses a format name. The empty string selects the console.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatConsole, nil
	case "md":
		return FormatMarkdown, nil
	case "graphviz":
		return FormatDOT, nil
	case FormatConsole, FormatJSON, FormatCSV, FormatMarkdown, FormatCI, FormatDOT:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int // Limits rows to the newest Top commits; 0 shows all
	OutputPath string
}

// LayoutReport holds a laid out history ready for rendering.
type LayoutReport struct {
	RepoPath    string
	GeneratedAt time.Time
	Nodes       []layout.LayoutNode // Topological order, ancestors first
	Edges       []layout.Edge
	Tips        map[string]string // Branch name -> tip hash
	Head        string            // Empty when no commit carries HEAD
	Options     layout.Options
}

// NewLayoutReport lays out commits and collects everything the writers show.
func NewLayoutReport(repoPath string, commits []layout.Commit, opts ...layout.Option) *LayoutReport {
	engine := layout.New(commits, opts...)
	tips := layout.BranchTips(commits)
	head, _ := layout.HeadCommit(commits)

	nodes := engine.Layout(tips)
	return &LayoutReport{
		RepoPath:    repoPath,
		GeneratedAt: time.Now(),
		Nodes:       nodes,
		Edges:       layout.Edges(nodes),
		Tips:        tips,
		Head:        head,
		Options:     engine.Options(),
	}
}

// LayoutWriter writes layout reports.
type LayoutWriter interface {
	Write(report *LayoutReport, options OutputOptions) error
}

// NewLayoutWriter creates a report writer for the specified format.
func NewLayoutWriter(format OutputFormat) LayoutWriter {
	switch format {
	case FormatJSON:
		return &JSONLayoutWriter{}
	case FormatCSV:
		return &CSVLayoutWriter{}
	case FormatMarkdown:
		return &MarkdownLayoutWriter{}
	case FormatCI:
		return &CILayoutWriter{}
	case FormatDOT:
		return &DOTLayoutWriter{}
	default:
		return &ConsoleLayoutWriter{}
	}
}
