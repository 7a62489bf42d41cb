package query

import (
	"github.com/vegasq/flatsql/internal/table"
)

// ColumnValues holds one selected column and its values across matched rows
type ColumnValues struct {
	Column table.Column
	Values []interface{}
}

// Result is the projection of a query: the requested columns, in request
// order, each with the values of the matched rows in table order.
type Result struct {
	Columns []ColumnValues
	rows    int
}

// Len returns the number of matched rows
func (r *Result) Len() int {
	return r.rows
}

// Names returns the selected column names in order
func (r *Result) Names() []string {
	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		names[i] = c.Column.Name
	}
	return names
}

// Values returns the values of the named column
func (r *Result) Values(name string) ([]interface{}, bool) {
	for _, c := range r.Columns {
		if c.Column.Name == name {
			return c.Values, true
		}
	}
	return nil, false
}

// Rows converts the result into one map per matched row
func (r *Result) Rows() []map[string]interface{} {
	rows := make([]map[string]interface{}, r.rows)
	for i := range rows {
		row := make(map[string]interface{}, len(r.Columns))
		for _, c := range r.Columns {
			row[c.Column.Name] = c.Values[i]
		}
		rows[i] = row
	}
	return rows
}

// Select runs expr over the rows of t, keeping at most limit matches, and
// projects columns from the matched rows. A value missing from a row is
// projected as nil.
func Select(t *table.Table, columns []table.Column, expr Expression, limit *int) *Result {
	indices := Filter(t, expr, limit)

	result := &Result{
		Columns: make([]ColumnValues, len(columns)),
		rows:    len(indices),
	}
	for i, col := range columns {
		values := make([]interface{}, len(indices))
		for j, idx := range indices {
			values[j] = t.Row(idx)[col.Name]
		}
		result.Columns[i] = ColumnValues{Column: col, Values: values}
	}

	return result
}
