package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/masmgr/gitlanes/internal/layout"
)

// DOTLayoutWriter writes layout reports as Graphviz DOT text. Node positions
// are pinned to the projected coordinates, so `neato -n` reproduces the
// layout exactly.
type DOTLayoutWriter struct{}

// Write outputs the layout report as a DOT digraph.
func (w *DOTLayoutWriter) Write(report *LayoutReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	_, err = out.Write(renderDOT(report, options.Top))
	return err
}

func renderDOT(report *LayoutReport, top int) []byte {
	nodes := newestFirst(report.Nodes, top)
	edges := edgesWithin(report.Edges, nodes)
	width, height := layout.Bounds(report.Nodes, report.Options)

	var buf bytes.Buffer
	buf.WriteString("digraph gitlanes {\n")
	fmt.Fprintf(&buf, "  graph [bb=\"0,0,%d,%d\", splines=true];\n", width, height)
	buf.WriteString("  node [shape=circle, style=filled, label=\"\", width=0.3, fixedsize=true];\n")
	buf.WriteString("  edge [arrowhead=none];\n")

	for _, n := range nodes {
		cx, cy := n.Center()
		attrs := []string{
			// Graphviz puts the origin bottom left.
			fmt.Sprintf("pos=%s", dotQuote(fmt.Sprintf("%d,%d!", cx, height-cy))),
			fmt.Sprintf("fillcolor=%s", dotQuote(n.Color)),
			fmt.Sprintf("tooltip=%s", dotQuote(n.Message)),
		}
		if len(n.Refs) > 0 {
			attrs = append(attrs, fmt.Sprintf("xlabel=%s", dotQuote(joinRefs(n.Refs))))
		}
		if n.Hash == report.Head {
			attrs = append(attrs, "penwidth=3")
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", dotQuote(n.Hash), strings.Join(attrs, ", "))
	}

	for _, e := range edges {
		style := "solid"
		if e.Kind == layout.EdgeCurved {
			style = "dashed"
		}
		fmt.Fprintf(&buf, "  %s -> %s [color=%s, style=%s];\n",
			dotQuote(e.Child), dotQuote(e.Parent), dotQuote(e.Color), style)
	}

	buf.WriteString("}\n")
	return buf.Bytes()
}

func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
