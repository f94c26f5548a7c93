package output

import (
	"strings"
	"testing"
)

func TestDOTLayoutWriter_Write(t *testing.T) {
	out := writeToFile(t, &DOTLayoutWriter{}, sampleReport(), OutputOptions{Format: FormatDOT})

	if !strings.HasPrefix(out, "digraph gitlanes {\n") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("not a digraph:\n%s", out)
	}

	for _, want := range []string{
		`graph [bb="0,0,160,240", splines=true];`,
		// d is the newest commit: top row, lane 0, center (40, 40) flipped to 200.
		`"d" [pos="40,200!", fillcolor="#000000", tooltip="Merge branch 'feature'", xlabel="HEAD -> main, tag: v1.0", penwidth=3];`,
		`"b" [pos="120,140!", fillcolor="#3b82f6", tooltip="feature work", xlabel="feature"];`,
		`"c" [pos="40,80!", fillcolor="#000000", tooltip="main work"];`,
		`"d" -> "c" [color="#000000", style=solid];`,
		`"d" -> "b" [color="#000000", style=dashed];`,
		`"b" -> "a" [color="#3b82f6", style=dashed];`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q:\n%s", want, out)
		}
	}
}

func TestDOTLayoutWriter_TopDropsHiddenEdges(t *testing.T) {
	out := writeToFile(t, &DOTLayoutWriter{}, sampleReport(), OutputOptions{Format: FormatDOT, Top: 2})

	if strings.Contains(out, `"c" [`) || strings.Contains(out, `-> "c"`) {
		t.Errorf("hidden commit c still rendered:\n%s", out)
	}
	if !strings.Contains(out, `"d" -> "b"`) {
		t.Errorf("expected the d -> b edge:\n%s", out)
	}
}

func TestDotQuote(t *testing.T) {
	tests := map[string]string{
		`plain`:      `"plain"`,
		`say "hi"`:   `"say \"hi\""`,
		`back\slash`: `"back\\slash"`,
		"two\nlines": `"two\nlines"`,
	}
	for in, want := range tests {
		if got := dotQuote(in); got != want {
			t.Errorf("dotQuote(%q) = %s, want %s", in, got, want)
		}
	}
}
