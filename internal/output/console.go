package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/masmgr/gitlanes/internal/layout"
)

// ConsoleLayoutWriter draws the lane graph as text, newest commit first.
type ConsoleLayoutWriter struct{}

// Write outputs the layout report to the console.
func (w *ConsoleLayoutWriter) Write(report *LayoutReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	lanes := 0
	for _, n := range report.Nodes {
		if n.Lane+1 > lanes {
			lanes = n.Lane + 1
		}
	}

	color.New(color.FgGreen).Fprintln(out, "Commit Graph Layout")
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Commits: %d, Lanes: %d\n", len(report.Nodes), lanes)
	if report.Head != "" {
		fmt.Fprintf(out, "HEAD: %s\n", ShortHash(report.Head))
	}
	fmt.Fprintln(out)

	if len(report.Nodes) == 0 {
		fmt.Fprintln(out, "Nothing to draw.")
		return nil
	}

	g := newConsoleGraph(report.Nodes, report.Edges, lanes)
	refColor := color.New(color.FgYellow).SprintFunc()
	for _, n := range newestFirst(report.Nodes, options.Top) {
		refs := ""
		if len(n.Refs) > 0 {
			refs = refColor("("+joinRefs(n.Refs)+")") + " "
		}
		fmt.Fprintf(out, "%s  %s %s%s\n", g.row(n), ShortHash(n.Hash), refs, truncateMessage(n.Message, 60))
	}
	return nil
}

// consoleGraph knows which lanes carry a line through each row.
type consoleGraph struct {
	lanes   int
	through map[int]map[int]bool // order -> lanes with a passing line
	paint   map[int]func(a ...interface{}) string
}

func newConsoleGraph(nodes []layout.LayoutNode, edges []layout.Edge, lanes int) *consoleGraph {
	g := &consoleGraph{
		lanes:   lanes,
		through: make(map[int]map[int]bool),
		paint:   make(map[int]func(a ...interface{}) string),
	}

	byHash := make(map[string]layout.LayoutNode, len(nodes))
	for _, n := range nodes {
		byHash[n.Hash] = n
		if _, ok := g.paint[n.Lane]; !ok {
			g.paint[n.Lane] = hexColor(n.Color).SprintFunc()
		}
	}

	for _, e := range edges {
		child, parent := byHash[e.Child], byHash[e.Parent]
		lane := child.Lane
		// A merge's side parent is drawn on the merged lane.
		if child.IsMerge() && e.Parent != child.Parents[0] {
			lane = parent.Lane
		}
		for o := parent.Order + 1; o < child.Order; o++ {
			if g.through[o] == nil {
				g.through[o] = make(map[int]bool)
			}
			g.through[o][lane] = true
		}
	}
	return g
}

func (g *consoleGraph) row(n layout.LayoutNode) string {
	cells := make([]string, g.lanes)
	for lane := range cells {
		glyph := " "
		switch {
		case lane == n.Lane && n.IsMerge():
			glyph = "M"
		case lane == n.Lane:
			glyph = "*"
		case g.through[n.Order][lane]:
			glyph = "|"
		}
		if paint, ok := g.paint[lane]; ok && glyph != " " {
			glyph = paint(glyph)
		}
		cells[lane] = glyph
	}
	return strings.Join(cells, " ")
}

// hexColor converts "#rrggbb" to a terminal color. Unparseable values fall
// back to the default foreground.
func hexColor(hex string) *color.Color {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return color.New(color.Reset)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.New(color.Reset)
	}
	return color.RGB(int(v>>16&0xff), int(v>>8&0xff), int(v&0xff))
}
