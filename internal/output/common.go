package output

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/masmgr/gitlanes/internal/layout"
)

const (
	reportDateTimeLayout = "2006-01-02T15:04:05"
	shortHashLen         = 8
)

func limitTop[T any](items []T, top int) []T {
	if top <= 0 || top >= len(items) {
		return items
	}
	return items[:top]
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

// newestFirst returns the nodes from the newest commit down, limited to top.
func newestFirst(nodes []layout.LayoutNode, top int) []layout.LayoutNode {
	rows := append([]layout.LayoutNode(nil), nodes...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Order > rows[j].Order })
	return limitTop(rows, top)
}

// edgesWithin keeps the edges whose both ends are among nodes.
func edgesWithin(edges []layout.Edge, nodes []layout.LayoutNode) []layout.Edge {
	shown := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		shown[n.Hash] = struct{}{}
	}
	kept := make([]layout.Edge, 0, len(edges))
	for _, e := range edges {
		_, child := shown[e.Child]
		_, parent := shown[e.Parent]
		if child && parent {
			kept = append(kept, e)
		}
	}
	return kept
}

// ShortHash abbreviates a commit hash for display.
func ShortHash(hash string) string {
	if len(hash) <= shortHashLen {
		return hash
	}
	return hash[:shortHashLen]
}

func joinRefs(refs []string) string {
	return strings.Join(refs, ", ")
}

// truncateMessage shortens msg to maxLen runes, ending in "...".
func truncateMessage(msg string, maxLen int) string {
	runes := []rune(msg)
	if len(runes) <= maxLen {
		return msg
	}
	return string(runes[:maxLen-3]) + "..."
}

// sortedTips returns the branch names of tips in name order.
func sortedTips(tips map[string]string) []string {
	names := make([]string, 0, len(tips))
	for name := range tips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
