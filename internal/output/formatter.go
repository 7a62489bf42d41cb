// Package output provides formatters for printing query results.
//
// Supported formats:
//   - text: one line per column, "NAME: v1, v2, ..."
//   - json: one object mapping each column to its values
//   - jsonl: one JSON object per matched row
//   - csv: comma-separated values with header row
//   - table: a bordered grid
//
// Example usage:
//
//	formatter, err := output.New("table", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(result); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/vegasq/flatsql/internal/query"
)

// ErrUnsupportedFormat is returned by New for an unknown format name
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a result in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes a query result in the formatter's specific format
	Format(result *query.Result) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Formats lists the supported format names
var Formats = []string{"text", "json", "jsonl", "csv", "table"}

// New returns the formatter registered under name
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "text":
		return NewTextFormatter(w), nil
	case "json":
		return NewJSONFormatter(w), nil
	case "jsonl":
		return NewJSONLinesFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "table":
		return NewTableFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnsupportedFormat, name, Formats)
	}
}

// IsValidFormat reports whether name is a supported format
func IsValidFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// formatValue converts a value to its display string
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
