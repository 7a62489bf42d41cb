// Package query provides SQL query parsing and row selection over an
// in-memory table.
//
// It implements a small SQL-like language: SELECT with a column list, a fixed
// table name, an optional WHERE clause built from comparisons (=, !=, <, >)
// combined with AND/OR and parentheses, and an optional LIMIT. The package
// includes a lexer that splits a WHERE clause into tokens, a builder that
// folds the tokens into a condition tree, and an evaluator that runs the tree
// against rows.
//
// AND and OR have equal precedence and group left to right, so
// "a AND b OR c" means "(a AND b) OR c". Use parentheses to group otherwise.
//
// Example usage:
//
//	exec := query.NewExecutor(tbl)
//	result, err := exec.Execute("SELECT CITY FROM TABLE WHERE POP > 15")
//	if err != nil {
//	    log.Fatal(err)
//	}
package query

import (
	"fmt"
	"strconv"

	"github.com/vegasq/flatsql/internal/table"
)

// TokenType represents the type of a condition token
type TokenType int

const (
	TokenLParen TokenType = iota // (
	TokenRParen                  // )
	TokenAnd
	TokenOr
	TokenAtomic // <operand> <op> <operand>

	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenAtomic:
		return "comparison"
	case TokenEOF:
		return "end of input"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a lexical token of a WHERE clause
type Token struct {
	Type  TokenType
	Value string
}

// Operator is a comparison operator
type Operator int

const (
	OpEqual    Operator = iota // =
	OpNotEqual                 // !=
	OpLess                     // <
	OpGreater                  // >
)

func (o Operator) String() string {
	switch o {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Ordering reports whether the operator orders its operands (< or >)
func (o Operator) Ordering() bool {
	return o == OpLess || o == OpGreater
}

// JoinOperator combines two conditions
type JoinOperator int

const (
	JoinAnd JoinOperator = iota
	JoinOr
)

func (j JoinOperator) String() string {
	if j == JoinOr {
		return "OR"
	}
	return "AND"
}

// OperandKind tells column references apart from literals
type OperandKind int

const (
	OperandLiteral OperandKind = iota
	OperandColumn
)

// Operand is one side of a comparison: a column reference or a literal
// (string, int64 or float64).
type Operand struct {
	Kind    OperandKind
	Column  table.Column
	Literal interface{}
}

// ColumnRef returns an operand that reads col from each row
func ColumnRef(col table.Column) Operand {
	return Operand{Kind: OperandColumn, Column: col}
}

// Literal returns an operand holding a constant value
func Literal(v interface{}) Operand {
	return Operand{Kind: OperandLiteral, Literal: v}
}

// Type returns the operand's type as known at parse time
func (o Operand) Type() table.ColumnType {
	if o.Kind == OperandColumn {
		return o.Column.Type
	}
	if _, ok := o.Literal.(string); ok {
		return table.String
	}
	return table.Number
}

// resolve returns the operand's value for row
func (o Operand) resolve(row table.Row) interface{} {
	if o.Kind == OperandColumn {
		return row[o.Column.Name]
	}
	return o.Literal
}

func (o Operand) String() string {
	if o.Kind == OperandColumn {
		return o.Column.Name
	}
	switch v := o.Literal.(type) {
	case string:
		return "'" + v + "'"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Query represents a parsed SQL query
type Query struct {
	TableName string
	Columns   []table.Column
	Filter    Expression
	Limit     *int
}

// Expression is a node of a WHERE condition tree
type Expression interface {
	Evaluate(row table.Row) bool
	String() string
	expression()
}

// BinaryExpr joins two conditions with AND or OR
type BinaryExpr struct {
	Left     Expression
	Operator JoinOperator
	Right    Expression
}

// ComparisonExpr is an atomic comparison between two operands
type ComparisonExpr struct {
	Left     Operand
	Operator Operator
	Right    Operand
}

func (*BinaryExpr) expression()     {}
func (*ComparisonExpr) expression() {}

// Evaluate evaluates a binary expression. Both sides are always evaluated.
func (b *BinaryExpr) Evaluate(row table.Row) bool {
	left := b.Left.Evaluate(row)
	right := b.Right.Evaluate(row)

	if b.Operator == JoinOr {
		return left || right
	}
	return left && right
}

// String renders the expression with explicit parentheses
func (b *BinaryExpr) String() string {
	return "(" + b.Left.String() + " " + b.Operator.String() + " " + b.Right.String() + ")"
}

// Evaluate evaluates a comparison expression
func (c *ComparisonExpr) Evaluate(row table.Row) bool {
	return compare(c.Left.resolve(row), c.Operator, c.Right.resolve(row))
}

func (c *ComparisonExpr) String() string {
	return c.Left.String() + " " + c.Operator.String() + " " + c.Right.String()
}

// Evaluate evaluates expr against row. A nil expression (no WHERE clause)
// matches every row.
func Evaluate(expr Expression, row table.Row) bool {
	if expr == nil {
		return true
	}
	return expr.Evaluate(row)
}
