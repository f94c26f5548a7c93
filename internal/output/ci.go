package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/masmgr/gitlanes/internal/aggregation"
)

// CILayoutWriter writes layout reports as NDJSON (one JSON object per line) for CI pipelines.
type CILayoutWriter struct{}

// CISummary is the first line of CI output, containing aggregate statistics.
type CISummary struct {
	Type         string `json:"type"`
	TotalCommits int    `json:"totalCommits"`
	Lanes        int    `json:"lanes"`
	Merges       int    `json:"merges"`
	Branches     int    `json:"branches"`
	Head         string `json:"head,omitempty"`
}

// CILaneEntry represents a single lane in CI output.
type CILaneEntry struct {
	Type     string   `json:"type"`
	Lane     int      `json:"lane"`
	Color    string   `json:"color"`
	Commits  int      `json:"commits"`
	Merges   int      `json:"merges"`
	Span     int      `json:"span"`
	Branches []string `json:"branches"`
}

// CINodeEntry represents a single commit in CI output.
type CINodeEntry struct {
	Type  string `json:"type"`
	Hash  string `json:"hash"`
	Lane  int    `json:"lane"`
	Order int    `json:"order"`
	Color string `json:"color"`
}

// Write outputs the layout report as NDJSON.
func (w *CILayoutWriter) Write(report *LayoutReport, options OutputOptions) error {
	nodes := newestFirst(report.Nodes, options.Top)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	// Count over the whole layout, not just the rows shown
	lanes := aggregation.NewLaneMetricsAggregator().Process(report.Nodes)
	var merges int
	for _, m := range lanes {
		merges += m.MergeCount
	}

	summary := CISummary{
		Type:         "summary",
		TotalCommits: len(report.Nodes),
		Lanes:        len(lanes),
		Merges:       merges,
		Branches:     len(report.Tips),
		Head:         report.Head,
	}
	if err := writeNDJSONLine(out, summary); err != nil {
		return err
	}

	for _, m := range lanes {
		entry := CILaneEntry{
			Type:     "lane",
			Lane:     m.Lane,
			Color:    m.Color,
			Commits:  m.CommitCount,
			Merges:   m.MergeCount,
			Span:     m.Span(),
			Branches: m.BranchNames(),
		}
		if err := writeNDJSONLine(out, entry); err != nil {
			return err
		}
	}

	for _, n := range nodes {
		entry := CINodeEntry{
			Type:  "node",
			Hash:  n.Hash,
			Lane:  n.Lane,
			Order: n.Order,
			Color: n.Color,
		}
		if err := writeNDJSONLine(out, entry); err != nil {
			return err
		}
	}

	return nil
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
