package output

import (
	"errors"
	"testing"

	"github.com/masmgr/gitlanes/internal/layout"
)

func TestLimitTop(t *testing.T) {
	items := []int{1, 2, 3}

	tests := []struct {
		name string
		top  int
		want []int
	}{
		{name: "NoLimitWhenZero", top: 0, want: []int{1, 2, 3}},
		{name: "NoLimitWhenNegative", top: -1, want: []int{1, 2, 3}},
		{name: "Limited", top: 2, want: []int{1, 2}},
		{name: "NoLimitWhenTopExceedsLength", top: 5, want: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := limitTop(items, tt.top)
			if len(got) != len(tt.want) {
				t.Fatalf("len(limitTop(..., %d)) = %d, want %d", tt.top, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("limitTop(..., %d)[%d] = %d, want %d", tt.top, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNewestFirst(t *testing.T) {
	report := sampleReport()

	rows := newestFirst(report.Nodes, 0)
	want := []string{"d", "b", "c", "a"}
	for i, h := range want {
		if rows[i].Hash != h {
			t.Fatalf("rows[%d] = %q, want %q", i, rows[i].Hash, h)
		}
	}

	if top := newestFirst(report.Nodes, 2); len(top) != 2 || top[1].Hash != "b" {
		t.Fatalf("newestFirst(..., 2) = %v", top)
	}
	if report.Nodes[0].Hash != "a" {
		t.Fatal("newestFirst must not reorder the report nodes")
	}
}

func TestEdgesWithin(t *testing.T) {
	report := sampleReport()
	edges := edgesWithin(report.Edges, newestFirst(report.Nodes, 2))

	// Only d -> b links two of the newest two commits.
	if len(edges) != 1 || edges[0].Child != "d" || edges[0].Parent != "b" {
		t.Fatalf("edgesWithin = %+v", edges)
	}
}

func TestNewLayoutReport(t *testing.T) {
	report := sampleReport()

	if len(report.Nodes) != 4 {
		t.Fatalf("nodes = %d, want 4", len(report.Nodes))
	}
	if report.Head != "d" {
		t.Errorf("Head = %q, want %q", report.Head, "d")
	}
	if report.Tips["main"] != "d" || report.Tips["feature"] != "b" {
		t.Errorf("Tips = %v", report.Tips)
	}
	if len(report.Edges) != 4 {
		t.Errorf("edges = %d, want 4", len(report.Edges))
	}
}

func TestNewLayoutReport_Empty(t *testing.T) {
	report := NewLayoutReport("/empty", nil)
	if len(report.Nodes) != 0 || len(report.Edges) != 0 || report.Head != "" {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
	}{
		{input: "", want: FormatConsole},
		{input: "JSON", want: FormatJSON},
		{input: "md", want: FormatMarkdown},
		{input: "graphviz", want: FormatDOT},
		{input: "ci", want: FormatCI},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if _, err := ParseFormat("pdf"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestNewLayoutWriter(t *testing.T) {
	tests := []struct {
		format OutputFormat
		want   LayoutWriter
	}{
		{FormatConsole, &ConsoleLayoutWriter{}},
		{FormatJSON, &JSONLayoutWriter{}},
		{FormatCSV, &CSVLayoutWriter{}},
		{FormatMarkdown, &MarkdownLayoutWriter{}},
		{FormatCI, &CILayoutWriter{}},
		{FormatDOT, &DOTLayoutWriter{}},
	}
	for _, tt := range tests {
		got := NewLayoutWriter(tt.format)
		if gotType, wantType := typeName(got), typeName(tt.want); gotType != wantType {
			t.Errorf("NewLayoutWriter(%q) = %s, want %s", tt.format, gotType, wantType)
		}
	}
}

func typeName(w LayoutWriter) string {
	switch w.(type) {
	case *ConsoleLayoutWriter:
		return "console"
	case *JSONLayoutWriter:
		return "json"
	case *CSVLayoutWriter:
		return "csv"
	case *MarkdownLayoutWriter:
		return "markdown"
	case *CILayoutWriter:
		return "ci"
	case *DOTLayoutWriter:
		return "dot"
	default:
		return "unknown"
	}
}

func TestSampleLayout(t *testing.T) {
	// The writer tests below rely on this layout.
	lanes := map[string]int{"a": 0, "c": 0, "b": 1, "d": 0}
	for _, n := range sampleReport().Nodes {
		if n.Lane != lanes[n.Hash] {
			t.Errorf("lane(%s) = %d, want %d", n.Hash, n.Lane, lanes[n.Hash])
		}
	}
	if got := layout.DefaultPalette()[0]; got != "#3b82f6" {
		t.Fatalf("palette[0] = %q", got)
	}
}
