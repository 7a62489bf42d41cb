package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "single comparison",
			input: "POP > 15",
			expected: []Token{
				{Type: TokenAtomic, Value: "POP > 15"},
			},
		},
		{
			name:  "no whitespace around operator",
			input: "POP>15",
			expected: []Token{
				{Type: TokenAtomic, Value: "POP>15"},
			},
		},
		{
			name:  "not equal",
			input: "CITY != 'a'",
			expected: []Token{
				{Type: TokenAtomic, Value: "CITY != 'a'"},
			},
		},
		{
			name:  "AND OR keywords any case",
			input: "a = 1 AND b = 2 or c = 3 And d = 4",
			expected: []Token{
				{Type: TokenAtomic, Value: "a = 1"},
				{Type: TokenAnd, Value: "AND"},
				{Type: TokenAtomic, Value: "b = 2"},
				{Type: TokenOr, Value: "or"},
				{Type: TokenAtomic, Value: "c = 3"},
				{Type: TokenAnd, Value: "And"},
				{Type: TokenAtomic, Value: "d = 4"},
			},
		},
		{
			name:  "parentheses",
			input: "(POP = 10 OR POP = 30) AND CITY != 'a'",
			expected: []Token{
				{Type: TokenLParen, Value: "("},
				{Type: TokenAtomic, Value: "POP = 10"},
				{Type: TokenOr, Value: "OR"},
				{Type: TokenAtomic, Value: "POP = 30"},
				{Type: TokenRParen, Value: ")"},
				{Type: TokenAnd, Value: "AND"},
				{Type: TokenAtomic, Value: "CITY != 'a'"},
			},
		},
		{
			name:  "nested parentheses without spaces",
			input: "((a=1))",
			expected: []Token{
				{Type: TokenLParen, Value: "("},
				{Type: TokenLParen, Value: "("},
				{Type: TokenAtomic, Value: "a=1"},
				{Type: TokenRParen, Value: ")"},
				{Type: TokenRParen, Value: ")"},
			},
		},
		{
			name:  "quoted string with spaces and parens",
			input: "NAME = 'x (y) AND z'",
			expected: []Token{
				{Type: TokenAtomic, Value: "NAME = 'x (y) AND z'"},
			},
		},
		{
			name:  "column starting with keyword",
			input: "ORDERS = 1 AND ANDY = 2",
			expected: []Token{
				{Type: TokenAtomic, Value: "ORDERS = 1"},
				{Type: TokenAnd, Value: "AND"},
				{Type: TokenAtomic, Value: "ANDY = 2"},
			},
		},
		{
			name:  "unbalanced is not checked",
			input: ") a = 1 (",
			expected: []Token{
				{Type: TokenRParen, Value: ")"},
				{Type: TokenAtomic, Value: "a = 1"},
				{Type: TokenLParen, Value: "("},
			},
		},
		{
			name:     "whitespace only",
			input:    "  \t ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing operator", "POP 15"},
		{"missing right operand", "POP >"},
		{"missing left operand", "= 15"},
		{"unsupported operator", "POP >= 15"},
		{"bang without equals", "POP ! 15"},
		{"unterminated string", "CITY = 'abc"},
		{"paren as operand", "POP > ("},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestTokenize_TooManyTokens(t *testing.T) {
	input := "a = 1"
	for i := 0; i < MaxTokens; i++ {
		input += " AND a = 1"
	}

	_, err := Tokenize(input)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyTokens)
}

func TestTokenType_String(t *testing.T) {
	assert.Equal(t, "(", TokenLParen.String())
	assert.Equal(t, "AND", TokenAnd.String())
	assert.Equal(t, "comparison", TokenAtomic.String())
}
