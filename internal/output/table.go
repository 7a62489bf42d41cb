package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/flatsql/internal/query"
)

// TableFormatter renders a result as a bordered grid
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format renders the header and one line per matched row
func (f *TableFormatter) Format(result *query.Result) error {
	if len(result.Columns) == 0 {
		return nil
	}

	data := make([][]string, result.Len())
	for row := range data {
		cells := make([]string, len(result.Columns))
		for i, col := range result.Columns {
			cells[i] = formatValue(col.Values[row])
		}
		data[row] = cells
	}

	tw := tablewriter.NewWriter(f.writer)
	tw.SetHeader(result.Names())
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.AppendBulk(data)
	tw.Render()
	return nil
}
