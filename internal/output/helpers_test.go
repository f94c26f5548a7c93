package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/masmgr/gitlanes/internal/layout"
)

// sampleCommits is a feature branch merged into main:
//
//	d (HEAD -> main, tag: v1.0) merges b (feature); both descend from a via c and b.
func sampleCommits() []layout.Commit {
	return layout.ParseLog(
		"d|c b|HEAD -> main, tag: v1.0|Merge branch 'feature'\n" +
			"b|a|feature|feature work\n" +
			"c|a||main work\n" +
			"a|||initial\n")
}

func sampleReport() *LayoutReport {
	report := NewLayoutReport("/test/repo", sampleCommits())
	report.GeneratedAt = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	return report
}

// writeToFile runs writer with OutputPath set to a temp file and returns what
// it wrote.
func writeToFile(t *testing.T, writer LayoutWriter, report *LayoutReport, options OutputOptions) string {
	t.Helper()
	options.OutputPath = filepath.Join(t.TempDir(), "out")
	if err := writer.Write(report, options); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(options.OutputPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	return string(data)
}

func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestTruncateMessage_Output(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		maxLen   int
		expected string
	}{
		{name: "Short message", msg: "hello", maxLen: 40, expected: "hello"},
		{name: "Exact length", msg: "1234567890", maxLen: 10, expected: "1234567890"},
		{name: "Over max length", msg: "a very long message here", maxLen: 10, expected: "a very ..."},
		{name: "Empty message", msg: "", maxLen: 40, expected: ""},
		{name: "Multibyte runes kept whole", msg: "日本語のコミットメッセージ", maxLen: 8, expected: "日本語のコ..."},
		{name: "Multibyte within limit", msg: "修正しました", maxLen: 6, expected: "修正しました"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncateMessage(tt.msg, tt.maxLen)
			if result != tt.expected {
				t.Errorf("truncateMessage(%q, %d) = %q, expected %q", tt.msg, tt.maxLen, result, tt.expected)
			}
		})
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Pipe", input: "a|b", expected: "a\\|b"},
		{name: "Asterisk", input: "a*b", expected: "a\\*b"},
		{name: "Underscore", input: "a_b", expected: "a\\_b"},
		{name: "Backtick", input: "a`b", expected: "a\\`b"},
		{name: "Multiple specials", input: "a|b*c_d", expected: "a\\|b\\*c\\_d"},
		{name: "No specials", input: "plain text", expected: "plain text"},
		{name: "Empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := escapeMarkdown(tt.input)
			if result != tt.expected {
				t.Errorf("escapeMarkdown(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestShortHash(t *testing.T) {
	if got := ShortHash("0123456789abcdef"); got != "01234567" {
		t.Errorf("ShortHash = %q, want %q", got, "01234567")
	}
	if got := ShortHash("abc"); got != "abc" {
		t.Errorf("ShortHash = %q, want %q", got, "abc")
	}
}
