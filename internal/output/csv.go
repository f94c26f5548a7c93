package output

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVLayoutWriter writes layout reports as CSV, newest commit first.
type CSVLayoutWriter struct{}

// Write outputs the layout report as CSV.
func (w *CSVLayoutWriter) Write(report *LayoutReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	writer := csv.NewWriter(out)

	// Write header
	headers := []string{"Order", "Hash", "Lane", "X", "Y", "Color", "Parents", "Children", "Refs", "Message"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	// Write data
	for _, n := range newestFirst(report.Nodes, options.Top) {
		row := []string{
			strconv.Itoa(n.Order),
			n.Hash,
			strconv.Itoa(n.Lane),
			strconv.Itoa(n.X),
			strconv.Itoa(n.Y),
			n.Color,
			strings.Join(n.Parents, " "),
			strings.Join(n.Children, " "),
			joinRefs(n.Refs),
			n.Message,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
