package query

import "errors"

var (
	// ErrSyntax is returned when query text, a comparison or an operand
	// cannot be parsed
	ErrSyntax = errors.New("syntax error")

	// ErrUnknownColumn is returned when an identifier names no column
	ErrUnknownColumn = errors.New("unknown column")

	// ErrType is returned when < or > is applied to a non-numeric operand
	ErrType = errors.New("type error")

	// ErrStructural is returned for unbalanced parentheses or a malformed
	// sequence of comparisons and AND/OR keywords
	ErrStructural = errors.New("structural error")
)
