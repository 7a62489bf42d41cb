package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/vegasq/flatsql/internal/table"
)

// ReadCSV reads a header row followed by data rows. A cell made only of
// digits becomes an int64; every other cell stays a string. Empty cells are
// left out of the record, so they read as missing values.
func ReadCSV(r io.Reader) ([]table.Record, error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []table.Record{}, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	records := make([]table.Record, 0)
	for {
		row, err := csvReader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if len(row) > len(header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", len(records)+1, len(row), len(header))
		}

		rec := make(table.Record, 0, len(row))
		for i, cell := range row {
			if cell == "" {
				continue
			}
			rec = append(rec, table.Field{Name: header[i], Value: csvValue(cell)})
		}
		records = append(records, rec)
	}

	return records, nil
}

func csvValue(cell string) interface{} {
	if cell == "" {
		return cell
	}
	for i := 0; i < len(cell); i++ {
		if cell[i] < '0' || cell[i] > '9' {
			return cell
		}
	}
	if n, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return n
	}
	return cell
}
