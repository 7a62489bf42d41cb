package reader

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/vegasq/flatsql/internal/table"
)

var driverName = map[string]string{
	"postgres": "pgx",
	"mysql":    "mysql",
	"sqlite":   "sqlite",
}

// Engines lists the database engines ReadSQL accepts
func Engines() []string {
	return []string{"mysql", "postgres", "sqlite"}
}

// ReadSQL reads every row of tableName from a database. Column order follows
// the result set, NULLs are left out of the record and byte slices become
// strings.
func ReadSQL(ctx context.Context, engine, dsn, tableName string) ([]table.Record, error) {
	driver, ok := driverName[engine]
	if !ok {
		return nil, fmt.Errorf("%w: no driver for engine %q", ErrUnsupportedSource, engine)
	}
	if tableName == "" {
		return nil, ErrMissingTable
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(engine, tableName))
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]table.Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	records := make([]table.Record, 0)
	for rows.Next() {
		vals := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		rec := make(table.Record, 0, len(columns))
		for i, v := range vals {
			if v == nil {
				continue
			}
			rec = append(rec, table.Field{Name: columns[i], Value: sqlValue(v)})
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return records, nil
}

func sqlValue(v interface{}) interface{} {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return val
	}
}

// quoteIdent quotes a table name for the engine's SQL dialect
func quoteIdent(engine, name string) string {
	if engine == "mysql" {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
