package query

import (
	"log/slog"

	"github.com/vegasq/flatsql/internal/table"
)

// Executor runs query text against a loaded table. The table is read-only,
// so an Executor may be shared between goroutines.
type Executor struct {
	table  *table.Table
	logger *slog.Logger
}

// NewExecutor creates an executor over t
func NewExecutor(t *table.Table) *Executor {
	return &Executor{table: t, logger: slog.Default()}
}

// WithLogger returns a copy of the executor that logs to logger
func (e *Executor) WithLogger(logger *slog.Logger) *Executor {
	cp := *e
	cp.logger = logger
	return &cp
}

// Table returns the table queries run against
func (e *Executor) Table() *table.Table {
	return e.table
}

// Parse parses query text against the executor's table
func (e *Executor) Parse(text string) (*Query, error) {
	return Parse(text, e.table)
}

// Run selects the rows matched by q
func (e *Executor) Run(q *Query) *Result {
	return Select(e.table, q.Columns, q.Filter, q.Limit)
}

// Execute parses and runs one query. Nothing is scanned if parsing fails.
func (e *Executor) Execute(text string) (*Result, error) {
	q, err := e.Parse(text)
	if err != nil {
		e.logger.Debug("query rejected", "query", text, "error", err)
		return nil, err
	}

	result := e.Run(q)
	e.logger.Debug("query executed",
		"query", text,
		"columns", len(q.Columns),
		"filter", q.Filter != nil,
		"rows", result.Len(),
	)
	return result, nil
}
