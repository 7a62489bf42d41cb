package query

import (
	"fmt"

	"github.com/vegasq/flatsql/internal/table"
)

// ParseComparison parses one atomic comparison such as "POP > 15" or
// "CITY != 'a'". Operands are resolved against t. The ordering operators
// < and > are only accepted between two numeric operands; this is checked
// here, before any row is scanned.
func ParseComparison(text string, t *table.Table) (*ComparisonExpr, error) {
	l := NewLexer(text)
	l.skipWhitespace()

	lhsText, op, rhsText, err := l.readComparison()
	if err != nil {
		return nil, err
	}
	l.skipWhitespace()
	if !l.atEOF() {
		return nil, fmt.Errorf("%w: could not match condition: %s", ErrSyntax, text)
	}

	lhs, err := classify(lhsText, t)
	if err != nil {
		return nil, err
	}
	rhs, err := classify(rhsText, t)
	if err != nil {
		return nil, err
	}

	if op.Ordering() && (lhs.Type() != table.Number || rhs.Type() != table.Number) {
		return nil, fmt.Errorf("%w: invalid comparison, lhs type: %s, rhs type: %s, operator: %s",
			ErrType, lhs.Type(), rhs.Type(), op)
	}

	return &ComparisonExpr{
		Left:     lhs,
		Operator: op,
		Right:    rhs,
	}, nil
}
