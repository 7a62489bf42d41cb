package query

import (
	"fmt"

	"github.com/vegasq/flatsql/internal/table"
)

// compare compares two resolved values using the given operator
func compare(left interface{}, operator Operator, right interface{}) bool {
	switch operator {
	case OpEqual:
		return equal(left, right)
	case OpNotEqual:
		return !equal(left, right)
	case OpLess, OpGreater:
		return order(left, operator, right)
	default:
		return false
	}
}

// equal is type-agnostic equality: numbers compare numerically, strings
// exactly, and values of different kinds are never equal. A missing value
// only equals another missing value.
func equal(left, right interface{}) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}

	if l, ok := left.(int64); ok {
		if r, ok := right.(int64); ok {
			return l == r
		}
	}

	leftNum, leftIsNum := toFloat64(left)
	rightNum, rightIsNum := toFloat64(right)
	if leftIsNum && rightIsNum {
		return leftNum == rightNum
	}

	leftStr, leftIsStr := left.(string)
	rightStr, rightIsStr := right.(string)
	if leftIsStr && rightIsStr {
		return leftStr == rightStr
	}

	return false
}

// order applies < or >. Operand types are checked when the comparison is
// parsed, so a non-numeric value here means the table broke its schema.
func order(left interface{}, operator Operator, right interface{}) bool {
	if left == nil || right == nil {
		return false
	}

	if l, ok := left.(int64); ok {
		if r, ok := right.(int64); ok {
			if operator == OpLess {
				return l < r
			}
			return l > r
		}
	}

	leftNum, leftIsNum := toFloat64(left)
	rightNum, rightIsNum := toFloat64(right)
	if !leftIsNum || !rightIsNum {
		panic(fmt.Sprintf("query: ordering operator %s applied to %T and %T", operator, left, right))
	}

	if operator == OpLess {
		return leftNum < rightNum
	}
	return leftNum > rightNum
}

// toFloat64 converts a value to float64 if possible
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int64:
		return float64(val), true
	default:
		return 0, false
	}
}

// Filter returns the indices of the rows of t that satisfy expr, in table
// order. Collection stops once limit matches are found; a nil limit means no
// limit. Without a condition or a limit every row is returned and nothing is
// evaluated.
func Filter(t *table.Table, expr Expression, limit *int) []int {
	if expr == nil && limit == nil {
		indices := make([]int, t.Len())
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	indices := make([]int, 0)
	for i := 0; i < t.Len(); i++ {
		if limit != nil && len(indices) >= *limit {
			break
		}
		if Evaluate(expr, t.Row(i)) {
			indices = append(indices, i)
		}
	}

	return indices
}
