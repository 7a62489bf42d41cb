package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vegasq/flatsql/internal/table"
)

// TableName is the only table name queries may select from
const TableName = "table"

// queryPattern splits a query into its column list, table name, WHERE text
// and LIMIT value. Keywords are case-insensitive.
var queryPattern = regexp.MustCompile(
	`(?is)^\s*SELECT\s+(.+?)\s+FROM\s+(\S+?)(?:\s+WHERE\s+(.+?))?(?:\s+LIMIT\s+(\d+))?\s*;?\s*$`,
)

// Parse parses a SQL query against the columns of t
func Parse(query string, t *table.Table) (*Query, error) {
	// Validate query length
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}

	groups := queryPattern.FindStringSubmatch(query)
	if groups == nil {
		return nil, fmt.Errorf("%w: could not parse top-level query: %s", ErrSyntax, query)
	}
	colsText, tableText, whereText, limitText := groups[1], groups[2], groups[3], groups[4]

	columns, err := parseColumns(colsText, t)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(tableText, TableName) {
		return nil, fmt.Errorf("%w: invalid table name: %s. Can only be 'table' or 'TABLE'", ErrSyntax, tableText)
	}

	q := &Query{
		TableName: tableText,
		Columns:   columns,
	}

	// Parse WHERE clause (optional)
	if whereText != "" {
		filter, err := ParseCondition(whereText, t)
		if err != nil {
			return nil, err
		}
		q.Filter = filter
	}

	// Parse LIMIT clause (optional)
	if limitText != "" {
		limit, err := strconv.Atoi(limitText)
		if err != nil || limit < 0 {
			return nil, fmt.Errorf("%w: invalid limit: %s", ErrSyntax, limitText)
		}
		q.Limit = &limit
	}

	return q, nil
}

// ParseCondition tokenizes a WHERE clause and builds its condition tree
func ParseCondition(clause string, t *table.Table) (Expression, error) {
	tokens, err := Tokenize(clause)
	if err != nil {
		return nil, err
	}

	// Validate token count
	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}

	return Build(tokens, t)
}

// parseColumns resolves "*" or a comma-separated list of column names
func parseColumns(text string, t *table.Table) ([]table.Column, error) {
	text = strings.TrimSpace(text)
	if text == "*" {
		return t.Columns(), nil
	}

	parts := strings.Split(text, ",")
	columns := make([]table.Column, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if err := ValidateColumnName(name); err != nil {
			return nil, err
		}
		col, ok := t.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: invalid column name: %s", ErrUnknownColumn, name)
		}
		columns = append(columns, col)
	}

	return columns, nil
}
