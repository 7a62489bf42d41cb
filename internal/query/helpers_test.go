package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vegasq/flatsql/internal/table"
)

// newCityTable builds the three-row CITY/POP table used across tests
func newCityTable(t *testing.T) *table.Table {
	t.Helper()

	tbl, err := table.New([]table.Record{
		{{Name: "CITY", Value: "a"}, {Name: "POP", Value: int64(10)}},
		{{Name: "CITY", Value: "b"}, {Name: "POP", Value: int64(20)}},
		{{Name: "CITY", Value: "c"}, {Name: "POP", Value: int64(30)}},
	})
	require.NoError(t, err)
	return tbl
}

// newMixedTable has float values and a row missing a column
func newMixedTable(t *testing.T) *table.Table {
	t.Helper()

	tbl, err := table.New([]table.Record{
		{{Name: "name", Value: "alice"}, {Name: "score", Value: 95.5}, {Name: "age", Value: int64(30)}},
		{{Name: "name", Value: "bob"}, {Name: "score", Value: 82.0}},
		{{Name: "name", Value: "charlie"}, {Name: "score", Value: int64(88)}, {Name: "age", Value: int64(35)}},
	})
	require.NoError(t, err)
	return tbl
}

func cityColumn() table.Column {
	return table.Column{Name: "CITY", Type: table.String}
}

func popColumn() table.Column {
	return table.Column{Name: "POP", Type: table.Number}
}

func intPtr(n int) *int {
	return &n
}
