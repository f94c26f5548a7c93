package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/masmgr/gitlanes/internal/layout"
)

// JSONLayoutWriter writes layout reports as JSON.
type JSONLayoutWriter struct{}

// JSONLayoutReport is the JSON output structure for a layout.
type JSONLayoutReport struct {
	RepoPath     string            `json:"repo"`
	GeneratedAt  string            `json:"generatedAt"`
	TotalCommits int               `json:"totalCommits"`
	Width        int               `json:"width"`
	Height       int               `json:"height"`
	Head         string            `json:"head,omitempty"`
	Tips         map[string]string `json:"tips"`
	Nodes        []JSONNode        `json:"nodes"`
	Edges        []JSONEdge        `json:"edges"`
}

// JSONNode is the JSON output structure for a single laid out commit.
type JSONNode struct {
	Hash        string   `json:"hash"`
	Parents     []string `json:"parents"`
	Children    []string `json:"children"`
	Refs        []string `json:"refs"`
	Tags        []string `json:"tags"`
	Message     string   `json:"message"`
	Lane        int      `json:"lane"`
	Order       int      `json:"order"`
	X           int      `json:"x"`
	Y           int      `json:"y"`
	Color       string   `json:"color"`
	IsMerge     bool     `json:"isMerge"`
	IsBranchTip bool     `json:"isBranchTip"`
}

// JSONEdge is the JSON output structure for a parent link.
type JSONEdge struct {
	Child  string `json:"child"`
	Parent string `json:"parent"`
	Color  string `json:"color"`
	Kind   string `json:"kind"`
}

// Write outputs the layout report as JSON.
func (w *JSONLayoutWriter) Write(report *LayoutReport, options OutputOptions) error {
	nodes := newestFirst(report.Nodes, options.Top)
	edges := edgesWithin(report.Edges, nodes)
	width, height := layout.Bounds(report.Nodes, report.Options)

	jsonNodes := make([]JSONNode, len(nodes))
	for i, n := range nodes {
		jsonNodes[i] = JSONNode{
			Hash:        n.Hash,
			Parents:     nonNil(n.Parents),
			Children:    nonNil(n.Children),
			Refs:        nonNil(n.Refs),
			Tags:        nonNil(layout.TagNames(n.Refs)),
			Message:     n.Message,
			Lane:        n.Lane,
			Order:       n.Order,
			X:           n.X,
			Y:           n.Y,
			Color:       n.Color,
			IsMerge:     n.IsMerge(),
			IsBranchTip: n.IsBranchTip(),
		}
	}

	jsonEdges := make([]JSONEdge, len(edges))
	for i, e := range edges {
		jsonEdges[i] = JSONEdge{Child: e.Child, Parent: e.Parent, Color: e.Color, Kind: e.Kind.String()}
	}

	tips := report.Tips
	if tips == nil {
		tips = map[string]string{}
	}

	jsonReport := JSONLayoutReport{
		RepoPath:     report.RepoPath,
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalCommits: len(report.Nodes),
		Width:        width,
		Height:       height,
		Head:         report.Head,
		Tips:         tips,
		Nodes:        jsonNodes,
		Edges:        jsonEdges,
	}

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return writeJSON(out, jsonReport)
}

func writeJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
