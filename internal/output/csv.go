package output

import (
	"encoding/csv"
	"io"

	"github.com/vegasq/flatsql/internal/query"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes a header of the selected columns followed by one record per
// matched row. Missing values are written as empty fields.
func (c *CSVFormatter) Format(result *query.Result) error {
	if len(result.Columns) == 0 {
		return nil
	}

	csvWriter := csv.NewWriter(c.writer)

	// Write header
	if err := csvWriter.Write(result.Names()); err != nil {
		return err
	}

	// Write rows
	for row := 0; row < result.Len(); row++ {
		record := make([]string, len(result.Columns))
		for i, col := range result.Columns {
			record[i] = formatValue(col.Values[row])
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
