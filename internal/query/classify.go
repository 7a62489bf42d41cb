package query

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vegasq/flatsql/internal/table"
)

// classify resolves an operand token. The checks run in a fixed order: a
// quoted string, then a leading run of digits, then a leading identifier
// looked up in t. A bare digit sequence is therefore always a number, never a
// column name.
func classify(token string, t *table.Table) (Operand, error) {
	// 'quoted', greedy up to the last quote
	if strings.HasPrefix(token, "'") {
		if end := strings.LastIndexByte(token, '\''); end > 0 {
			return Literal(token[1:end]), nil
		}
	}

	// leading digits; anything after them is ignored
	if n := leadingDigits(token); n > 0 {
		digits := token[:n]
		if v, err := strconv.ParseInt(digits, 10, 64); err == nil {
			return Literal(v), nil
		}
		v, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return Operand{}, fmt.Errorf("%w: could not parse %s", ErrSyntax, token)
		}
		return Literal(v), nil
	}

	name := leadingWord(token)
	if name == "" {
		return Operand{}, fmt.Errorf("%w: could not parse %s", ErrSyntax, token)
	}
	if err := ValidateColumnName(name); err != nil {
		return Operand{}, err
	}
	col, ok := t.Column(name)
	if !ok {
		return Operand{}, fmt.Errorf("%w: %w: could not parse %s", ErrSyntax, ErrUnknownColumn, token)
	}
	return ColumnRef(col), nil
}

func leadingDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func leadingWord(s string) string {
	end := 0
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r) {
			break
		}
		end += size
	}
	return s[:end]
}
