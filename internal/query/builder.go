package query

import (
	"fmt"

	"github.com/vegasq/flatsql/internal/table"
)

// groupItem is one entry of a pending sibling list: either a finished
// expression or an AND/OR keyword
type groupItem struct {
	expr   Expression
	join   JoinOperator
	isJoin bool
}

// Build folds a token stream from Tokenize into a single condition tree.
//
// Parenthesized groups are tracked with an explicit stack of pending sibling
// lists; each group is folded into one node as soon as its ")" is seen, so no
// step recurses. Within a list, conditions fold strictly left to right with
// no precedence between AND and OR.
func Build(tokens []Token, t *table.Table) (Expression, error) {
	depth := NewExpressionDepthCounter()
	var stack [][]groupItem
	var current []groupItem

	for _, tok := range tokens {
		switch tok.Type {
		case TokenLParen:
			if err := depth.Enter(); err != nil {
				return nil, err
			}
			stack = append(stack, current)
			current = nil

		case TokenRParen:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unbalanced parentheses: unexpected )", ErrStructural)
			}
			group, err := fold(current)
			if err != nil {
				return nil, err
			}
			current = append(stack[len(stack)-1], groupItem{expr: group})
			stack = stack[:len(stack)-1]
			depth.Exit()

		case TokenAnd:
			current = append(current, groupItem{join: JoinAnd, isJoin: true})

		case TokenOr:
			current = append(current, groupItem{join: JoinOr, isJoin: true})

		case TokenAtomic:
			cmp, err := ParseComparison(tok.Value, t)
			if err != nil {
				return nil, err
			}
			current = append(current, groupItem{expr: cmp})

		default:
			return nil, fmt.Errorf("%w: unexpected token %v", ErrStructural, tok.Type)
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: unbalanced parentheses: %d unclosed (", ErrStructural, len(stack))
	}

	return fold(current)
}

// fold turns [cond, join, cond, join, cond, ...] into a left-leaning tree
func fold(items []groupItem) (Expression, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty condition", ErrStructural)
	}
	if items[0].isJoin {
		return nil, fmt.Errorf("%w: expected condition before %s", ErrStructural, items[0].join)
	}

	result := items[0].expr
	for i := 1; i < len(items); i += 2 {
		op := items[i]
		if !op.isJoin {
			return nil, fmt.Errorf("%w: expected AND or OR after %s", ErrStructural, result)
		}
		if i+1 >= len(items) {
			return nil, fmt.Errorf("%w: expected condition after %s", ErrStructural, op.join)
		}
		rhs := items[i+1]
		if rhs.isJoin {
			return nil, fmt.Errorf("%w: expected condition after %s, got %s", ErrStructural, op.join, rhs.join)
		}
		result = &BinaryExpr{
			Left:     result,
			Operator: op.join,
			Right:    rhs.expr,
		}
	}

	return result, nil
}
