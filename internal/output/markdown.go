package output

import (
	"fmt"
	"strings"

	"github.com/masmgr/gitlanes/internal/aggregation"
)

// MarkdownLayoutWriter writes layout reports as Markdown.
type MarkdownLayoutWriter struct{}

// Write outputs the layout report as Markdown.
func (w *MarkdownLayoutWriter) Write(report *LayoutReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	// Header
	fmt.Fprintln(out, "# Commit Graph Layout")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Generated:** %s\n\n", report.GeneratedAt.Format(reportDateTimeLayout))
	fmt.Fprintf(out, "**Total Commits:** %d\n\n", len(report.Nodes))

	if len(report.Tips) > 0 {
		fmt.Fprintln(out, "## Branches")
		fmt.Fprintln(out)
		for _, name := range sortedTips(report.Tips) {
			marker := ""
			if report.Tips[name] == report.Head {
				marker = " (HEAD)"
			}
			fmt.Fprintf(out, "- `%s` at `%s`%s\n", name, ShortHash(report.Tips[name]), marker)
		}
		fmt.Fprintln(out)
	}

	if lanes := aggregation.NewLaneMetricsAggregator().Process(report.Nodes); len(lanes) > 0 {
		fmt.Fprintln(out, "## Lanes")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "| Lane | Color | Commits | Merges | Span | Branches |")
		fmt.Fprintln(out, "|------|-------|---------|--------|------|----------|")
		for _, m := range lanes {
			fmt.Fprintf(out, "| %d | %s | %d | %d | %d | %s |\n",
				m.Lane, m.Color, m.CommitCount, m.MergeCount, m.Span(),
				escapeMarkdown(strings.Join(m.BranchNames(), ", ")))
		}
		fmt.Fprintln(out)
	}

	// Table header
	fmt.Fprintln(out, "## Commits")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "| # | Hash | Lane | Color | Refs | Message |")
	fmt.Fprintln(out, "|---|------|------|-------|------|---------|")

	// Table rows
	for _, n := range newestFirst(report.Nodes, options.Top) {
		fmt.Fprintf(out, "| %d | `%s` | %d | %s | %s | %s |\n",
			n.Order, ShortHash(n.Hash), n.Lane, n.Color,
			escapeMarkdown(joinRefs(n.Refs)), escapeMarkdown(n.Message))
	}

	return nil
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
