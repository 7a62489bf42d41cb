package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/flatsql/internal/query"
)

// TextFormatter prints one line per column: "NAME: v1, v2, ..."
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TextFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes each selected column with its values
func (f *TextFormatter) Format(result *query.Result) error {
	for _, col := range result.Columns {
		values := make([]string, len(col.Values))
		for i, v := range col.Values {
			values[i] = formatValue(v)
		}
		if _, err := fmt.Fprintf(f.writer, "%s: %s\n", col.Column.Name, strings.Join(values, ", ")); err != nil {
			return err
		}
	}
	return nil
}
