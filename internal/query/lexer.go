package query

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes WHERE clauses
type Lexer struct {
	input string
	pos   int // index of the byte after ch
	ch    byte
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar reads the next character
func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.pos]
	}
	l.pos++
}

// peekChar looks at the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

// offset returns the index of the current character
func (l *Lexer) offset() int {
	return l.pos - 1
}

// atEOF reports whether the whole input has been consumed
func (l *Lexer) atEOF() bool {
	return l.pos > len(l.input)
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readOperand reads a quoted string (quotes kept) or a bare run of
// characters up to whitespace, a paren, a quote or an operator character.
func (l *Lexer) readOperand() (string, error) {
	start := l.offset()

	if l.ch == '\'' {
		l.readChar()
		for l.ch != '\'' {
			if l.atEOF() {
				return "", fmt.Errorf("%w: unterminated string %s", ErrSyntax, l.input[start:])
			}
			l.readChar()
		}
		l.readChar() // closing quote
		return l.input[start:l.offset()], nil
	}

	for !l.atEOF() && isOperandChar(l.ch) {
		l.readChar()
	}
	if l.offset() == start {
		return "", fmt.Errorf("%w: could not match condition: %s", ErrSyntax, l.rest(start))
	}
	return l.input[start:l.offset()], nil
}

// readOperator reads one of =, !=, < and >
func (l *Lexer) readOperator() (Operator, error) {
	switch l.ch {
	case '=':
		l.readChar()
		return OpEqual, nil
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return OpNotEqual, nil
		}
	case '<':
		l.readChar()
		return OpLess, nil
	case '>':
		l.readChar()
		return OpGreater, nil
	}
	return 0, fmt.Errorf("%w: could not match condition: %s", ErrSyntax, l.rest(l.offset()))
}

// readComparison reads "<operand> <op> <operand>" and returns its parts
func (l *Lexer) readComparison() (lhs string, op Operator, rhs string, err error) {
	if lhs, err = l.readOperand(); err != nil {
		return "", 0, "", err
	}
	l.skipWhitespace()
	if op, err = l.readOperator(); err != nil {
		return "", 0, "", err
	}
	l.skipWhitespace()
	if rhs, err = l.readOperand(); err != nil {
		return "", 0, "", err
	}
	return lhs, op, rhs, nil
}

// joinKeyword returns the AND/OR token starting at the current character, if
// there is one standing alone as a word
func (l *Lexer) joinKeyword() (Token, bool) {
	start := l.offset()
	end := start
	for end < len(l.input) && isWordByte(l.input[end]) {
		end++
	}
	if end < len(l.input) {
		if r, _ := utf8.DecodeRuneInString(l.input[end:]); isWordRune(r) {
			return Token{}, false
		}
	}

	word := l.input[start:end]
	switch {
	case strings.EqualFold(word, "AND"):
		return Token{Type: TokenAnd, Value: word}, true
	case strings.EqualFold(word, "OR"):
		return Token{Type: TokenOr, Value: word}, true
	}
	return Token{}, false
}

// rest returns the input from start, for error messages
func (l *Lexer) rest(start int) string {
	if start >= len(l.input) {
		return l.input
	}
	return l.input[start:]
}

// NextToken returns the next token
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	if l.atEOF() {
		return Token{Type: TokenEOF}, nil
	}

	switch l.ch {
	case '(':
		l.readChar()
		return Token{Type: TokenLParen, Value: "("}, nil
	case ')':
		l.readChar()
		return Token{Type: TokenRParen, Value: ")"}, nil
	}

	if tok, ok := l.joinKeyword(); ok {
		for range tok.Value {
			l.readChar()
		}
		return tok, nil
	}

	start := l.offset()
	if _, _, _, err := l.readComparison(); err != nil {
		return Token{}, err
	}
	return Token{Type: TokenAtomic, Value: l.input[start:l.offset()]}, nil
}

// Tokenize splits a WHERE clause into parens, AND/OR keywords and atomic
// comparisons. It does not check that parentheses balance.
func Tokenize(input string) ([]Token, error) {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok, err := lexer.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenEOF {
			break
		}
		tokens = append(tokens, tok)
		if len(tokens) > MaxTokens {
			return nil, ValidateTokens(tokens)
		}
	}

	return tokens, nil
}

// isOperandChar reports whether c may appear in a bare operand
func isOperandChar(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')', '\'', '=', '!', '<', '>':
		return false
	}
	return true
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
