package reader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/flatsql/internal/table"
)

var (
	// ErrUnsupportedSource is returned for a file extension no loader handles
	ErrUnsupportedSource = errors.New("unsupported source")

	// ErrMissingTable is returned when a database source has no table name
	ErrMissingTable = errors.New("table name required for database sources")
)

// Options configures how a source is read
type Options struct {
	// Table names the table to read from database files
	Table string
}

// Open reads all records from the file at path, picking the loader from the
// file extension.
func Open(path string, opts Options) ([]table.Record, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		records []table.Record
		err     error
	)
	switch ext {
	case ".json":
		records, err = readFile(path, ReadJSON)
	case ".csv":
		records, err = readFile(path, ReadCSV)
	case ".parquet":
		records, err = ReadParquet(path)
	case ".db", ".sqlite", ".sqlite3":
		if opts.Table == "" {
			return nil, ErrMissingTable
		}
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, fmt.Errorf("failed to open file: %w", statErr)
		}
		records, err = ReadSQL(context.Background(), "sqlite", path, opts.Table)
	default:
		return nil, fmt.Errorf("%w: %q (expected .json, .csv, .parquet or a sqlite database)", ErrUnsupportedSource, ext)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("records loaded", "source", path, "records", len(records))
	return records, nil
}

// Load reads path, which may be a glob pattern, and builds a table from its
// records
func Load(path string, opts Options) (*table.Table, error) {
	records, err := ReadGlob(path, opts)
	if err != nil {
		return nil, err
	}
	return table.New(records)
}

// readFile opens path and hands it to decode
func readFile(path string, decode func(io.Reader) ([]table.Record, error)) ([]table.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return decode(file)
}
