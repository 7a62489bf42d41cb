package reader

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/segmentio/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/flatsql/internal/query"
	"github.com/vegasq/flatsql/internal/table"
)

func TestReadJSON(t *testing.T) {
	input := `[
		{"CITY": "a", "POP": 10},
		{"POP": 2.5, "CITY": "b", "TAGS": ["x"]},
		{}
	]`

	records, err := ReadJSON(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []table.Record{
		{{Name: "CITY", Value: "a"}, {Name: "POP", Value: int64(10)}},
		{{Name: "POP", Value: 2.5}, {Name: "CITY", Value: "b"}, {Name: "TAGS", Value: []interface{}{"x"}}},
		nil,
	}, records)
}

func TestReadJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not an array", `{"a": 1}`},
		{"array of scalars", `[1, 2]`},
		{"truncated", `[{"a": 1}`},
		{"empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestReadJSON_EmptyArray(t *testing.T) {
	records, err := ReadJSON(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadCSV(t *testing.T) {
	input := "CITY,POP,CODE\na,10,x1\nb,007,\nc\n"

	records, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []table.Record{
		{{Name: "CITY", Value: "a"}, {Name: "POP", Value: int64(10)}, {Name: "CODE", Value: "x1"}},
		{{Name: "CITY", Value: "b"}, {Name: "POP", Value: int64(7)}},
		{{Name: "CITY", Value: "c"}},
	}, records)
}

func TestReadCSV_BlankNumericCell(t *testing.T) {
	records, err := ReadCSV(strings.NewReader("CITY,POP\na,10\nb,\nc,30\n"))
	require.NoError(t, err)

	tbl, err := table.New(records)
	require.NoError(t, err)
	assert.Equal(t, []table.Column{
		{Name: "CITY", Type: table.String},
		{Name: "POP", Type: table.Number},
	}, tbl.Columns())

	_, hasPop := tbl.Row(1)["POP"]
	assert.False(t, hasPop)

	q, err := query.Parse("SELECT CITY FROM table WHERE POP > 5", tbl)
	require.NoError(t, err)
	result := query.Select(tbl, q.Columns, q.Filter, q.Limit)

	cities, ok := result.Values("CITY")
	require.True(t, ok)
	assert.Equal(t, []interface{}{"a", "c"}, cities)
}

func TestReadCSV_Edges(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = ReadCSV(strings.NewReader("a,b\n1,2,3\n"))
	assert.Error(t, err)
}

func TestCSVValue(t *testing.T) {
	tests := []struct {
		cell string
		want interface{}
	}{
		{"42", int64(42)},
		{"007", int64(7)},
		{"-5", "-5"},
		{"1.5", "1.5"},
		{"", ""},
		{"99999999999999999999", "99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			assert.Equal(t, tt.want, csvValue(tt.cell))
		})
	}
}

func TestOpen_Fixtures(t *testing.T) {
	tests := []struct {
		name string
		path string
		cols []table.Column
	}{
		{
			name: "json",
			path: filepath.Join("testdata", "cities.json"),
			cols: []table.Column{
				{Name: "CITY", Type: table.String},
				{Name: "POP", Type: table.Number},
				{Name: "AREA", Type: table.Number},
			},
		},
		{
			name: "csv",
			path: filepath.Join("testdata", "cities.csv"),
			cols: []table.Column{
				{Name: "CITY", Type: table.String},
				{Name: "POP", Type: table.Number},
				{Name: "CODE", Type: table.String},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Load(tt.path, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.cols, tbl.Columns())
			assert.Equal(t, 3, tbl.Len())
			assert.Equal(t, "c", tbl.Row(2)["CITY"])
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open("data.xml", Options{})
	assert.ErrorIs(t, err, ErrUnsupportedSource)

	_, err = Open("data.db", Options{})
	assert.ErrorIs(t, err, ErrMissingTable)

	_, err = Open(filepath.Join(t.TempDir(), "missing.json"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Open(filepath.Join(t.TempDir(), "missing.db"), Options{Table: "cities"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// cityRow is the parquet layout used by the parquet tests
type cityRow struct {
	City string  `parquet:"CITY"`
	Pop  int64   `parquet:"POP"`
	Area float64 `parquet:"AREA"`
}

func createParquetFile(t *testing.T, rows []cityRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cities.parquet")

	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	writer := parquet.NewGenericWriter[cityRow](f)
	_, err = writer.Write(rows)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return path
}

func TestReadParquet(t *testing.T) {
	path := createParquetFile(t, []cityRow{
		{City: "a", Pop: 10, Area: 1.5},
		{City: "b", Pop: 20, Area: 2.5},
	})

	tbl, err := Load(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, []table.Column{
		{Name: "CITY", Type: table.String},
		{Name: "POP", Type: table.Number},
		{Name: "AREA", Type: table.Number},
	}, tbl.Columns())
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, table.Row{"CITY": "b", "POP": int64(20), "AREA": 2.5}, tbl.Row(1))
}

func TestParquetReader_CloseTwice(t *testing.T) {
	path := createParquetFile(t, []cityRow{{City: "a", Pop: 1}})

	r, err := NewParquetReader(path)
	require.NoError(t, err)
	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close())
}

func TestNewParquetReader_NotParquet(t *testing.T) {
	_, err := NewParquetReader(filepath.Join("testdata", "cities.json"))
	assert.Error(t, err)
}

func createSQLiteFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cities.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	stmts := []string{
		`CREATE TABLE "city list" (city TEXT, pop INTEGER, area REAL)`,
		`INSERT INTO "city list" VALUES ('a', 10, 1.5)`,
		`INSERT INTO "city list" VALUES ('b', 20, NULL)`,
		`INSERT INTO "city list" VALUES ('c', 30, 3.0)`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	return path
}

func TestReadSQL_SQLite(t *testing.T) {
	path := createSQLiteFile(t)

	records, err := ReadSQL(context.Background(), "sqlite", path, "city list")
	require.NoError(t, err)

	assert.Equal(t, []table.Record{
		{{Name: "city", Value: "a"}, {Name: "pop", Value: int64(10)}, {Name: "area", Value: 1.5}},
		{{Name: "city", Value: "b"}, {Name: "pop", Value: int64(20)}},
		{{Name: "city", Value: "c"}, {Name: "pop", Value: int64(30)}, {Name: "area", Value: 3.0}},
	}, records)
}

func TestOpen_SQLiteFile(t *testing.T) {
	path := createSQLiteFile(t)

	tbl, err := Load(path, Options{Table: "city list"})
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())

	_, hasArea := tbl.Row(1)["area"]
	assert.False(t, hasArea)
}

func TestReadSQL_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := ReadSQL(ctx, "oracle", "dsn", "t")
	assert.ErrorIs(t, err, ErrUnsupportedSource)

	_, err = ReadSQL(ctx, "sqlite", ":memory:", "")
	assert.ErrorIs(t, err, ErrMissingTable)

	_, err = ReadSQL(ctx, "sqlite", createSQLiteFile(t), "no_such_table")
	assert.Error(t, err)
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"city list"`, quoteIdent("sqlite", "city list"))
	assert.Equal(t, `"a""b"`, quoteIdent("postgres", `a"b`))
	assert.Equal(t, "`a``b`", quoteIdent("mysql", "a`b"))
}
