package output

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"

	"github.com/vegasq/flatsql/internal/query"
)

// JSONFormatter outputs a result as one object mapping each column name to
// its array of values, keys in column order
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the result as a single JSON object
func (j *JSONFormatter) Format(result *query.Result) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range result.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, col.Column.Name, col.Values); err != nil {
			return err
		}
	}
	buf.WriteString("}\n")

	_, err := j.writer.Write(buf.Bytes())
	return err
}

// JSONLinesFormatter outputs rows as JSON Lines format
type JSONLinesFormatter struct {
	writer io.Writer
}

// NewJSONLinesFormatter creates a new JSON Lines formatter
func NewJSONLinesFormatter(w io.Writer) *JSONLinesFormatter {
	return &JSONLinesFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONLinesFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes rows as JSON Lines (one JSON object per line), keys in
// column order
func (j *JSONLinesFormatter) Format(result *query.Result) error {
	for row := 0; row < result.Len(); row++ {
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, col := range result.Columns {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeMember(&buf, col.Column.Name, col.Values[row]); err != nil {
				return err
			}
		}
		buf.WriteString("}\n")

		if _, err := j.writer.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// writeMember writes "name":value
func writeMember(buf *bytes.Buffer, name string, value interface{}) error {
	key, err := json.Marshal(name)
	if err != nil {
		return err
	}
	val, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(val)
	return nil
}
