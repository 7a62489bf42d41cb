// Package table holds the in-memory, read-only row store that queries run
// against.
//
// A Table is built once from a list of flat records. Its schema is inferred
// from the data: the first occurrence of each key fixes that column's type,
// and column order follows first appearance across the records.
//
// Example usage:
//
//	t, err := table.New(records)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	col, ok := t.Column("CITY")
package table

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/text/unicode/norm"
)

// ErrSchema is returned when a record holds a value that cannot become a column
var ErrSchema = errors.New("schema error")

// ColumnType is the inferred type of a column
type ColumnType int

const (
	String ColumnType = iota
	Number
)

func (t ColumnType) String() string {
	switch t {
	case String:
		return "string"
	case Number:
		return "number"
	default:
		return fmt.Sprintf("ColumnType(%d)", int(t))
	}
}

// Column is a named, typed column. Two columns are the same column when their
// names match.
type Column struct {
	Name string
	Type ColumnType
}

// Field is one key/value pair of a loaded record
type Field struct {
	Name  string
	Value interface{}
}

// Record is an ordered list of fields, as produced by the readers
type Record []Field

// Row maps column names to values. A row may lack columns other rows carry.
type Row map[string]interface{}

// Table is the loaded data: its columns in first-seen order and its rows in
// load order. It is never mutated after New returns.
type Table struct {
	columns []Column
	index   map[string]int
	rows    []Row
}

// New infers the schema from records and builds a table from them.
//
// Strings become String columns, integer and float values become Number
// columns (normalized to int64 and float64). Any other value type, or a value
// whose type disagrees with the type already inferred for its column, fails
// with ErrSchema.
func New(records []Record) (*Table, error) {
	t := &Table{
		index: make(map[string]int),
		rows:  make([]Row, 0, len(records)),
	}

	for i, rec := range records {
		row := make(Row, len(rec))
		for _, f := range rec {
			name := Normalize(f.Name)
			value, typ, err := normalizeValue(f.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid type %T for column %q", ErrSchema, f.Value, name)
			}

			if pos, ok := t.index[name]; ok {
				if t.columns[pos].Type != typ {
					return nil, fmt.Errorf("%w: column %q is %s but record %d holds a %s",
						ErrSchema, name, t.columns[pos].Type, i, typ)
				}
			} else {
				t.index[name] = len(t.columns)
				t.columns = append(t.columns, Column{Name: name, Type: typ})
			}
			row[name] = value
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}

// Columns returns the table's columns in first-seen order
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// Column looks a column up by exact, case-sensitive name
func (t *Table) Column(name string) (Column, bool) {
	pos, ok := t.index[Normalize(name)]
	if !ok {
		return Column{}, false
	}
	return t.columns[pos], true
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the row at index i
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Normalize returns the canonical (NFC) form of an identifier
func Normalize(name string) string {
	return norm.NFC.String(name)
}

// normalizeValue maps a loaded value onto the two supported value kinds
func normalizeValue(v interface{}) (interface{}, ColumnType, error) {
	switch val := v.(type) {
	case string:
		return val, String, nil
	case int:
		return int64(val), Number, nil
	case int8:
		return int64(val), Number, nil
	case int16:
		return int64(val), Number, nil
	case int32:
		return int64(val), Number, nil
	case int64:
		return val, Number, nil
	case uint:
		return uintValue(uint64(val)), Number, nil
	case uint8:
		return int64(val), Number, nil
	case uint16:
		return int64(val), Number, nil
	case uint32:
		return int64(val), Number, nil
	case uint64:
		return uintValue(val), Number, nil
	case float32:
		return float64(val), Number, nil
	case float64:
		return val, Number, nil
	default:
		return nil, 0, errors.New("unsupported type")
	}
}

func uintValue(v uint64) interface{} {
	if v > math.MaxInt64 {
		return float64(v)
	}
	return int64(v)
}
