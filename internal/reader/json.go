package reader

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/vegasq/flatsql/internal/table"
)

// ReadJSON decodes an array of flat objects. Objects are read token by token
// so that key order is kept. Integers become int64 and other numbers float64;
// nested values are passed through for schema inference to reject.
func ReadJSON(r io.Reader) ([]table.Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}

	records := make([]table.Record, 0)
	for dec.More() {
		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("record %d: %w", len(records), err)
		}

		var rec table.Record
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("record %d: failed to read key: %w", len(records), err)
			}
			key, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("record %d: expected object key, got %v", len(records), tok)
			}

			var value interface{}
			if err := dec.Decode(&value); err != nil {
				return nil, fmt.Errorf("record %d: failed to read %q: %w", len(records), key, err)
			}
			rec = append(rec, table.Field{Name: key, Value: jsonValue(value)})
		}

		if err := expectDelim(dec, '}'); err != nil {
			return nil, fmt.Errorf("record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}

	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}

	return records, nil
}

// expectDelim reads the next token and checks it is the given delimiter
func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("invalid JSON: expected %q, got %v", want, tok)
	}
	return nil
}

// jsonValue converts json.Number into int64 or float64
func jsonValue(v interface{}) interface{} {
	num, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := num.Int64(); err == nil {
		return i
	}
	if f, err := num.Float64(); err == nil {
		return f
	}
	return num.String()
}
