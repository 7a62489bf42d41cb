package repl

import (
	"sort"
	"strings"

	"github.com/vegasq/flatsql/internal/output"
	"github.com/vegasq/flatsql/internal/table"
)

var keywords = []string{"SELECT", "FROM", "WHERE", "LIMIT", "AND", "OR", "table"}
var firstWords = []string{"SELECT", "exit", "format", "help", "quit", "schema"}

// completer implements readline's AutoCompleter interface.
type completer struct {
	columns []string
}

func newCompleter(t *table.Table) *completer {
	cols := t.Columns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	sort.Strings(names)
	return &completer{columns: names}
}

// Do returns the suffixes that complete the word before pos, and the length
// of that word.
func (c *completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	before := string(line[:pos])
	prefix := lastWord(before)
	first := strings.TrimSpace(before) == prefix

	var suffixes []string
	switch {
	case first:
		suffixes = keywordSuffixes(firstWords, prefix)
	case strings.HasPrefix(strings.ToLower(strings.TrimLeft(before, " ")), "format "):
		suffixes = exactSuffixes(output.Formats, prefix)
	default:
		suffixes = append(exactSuffixes(c.columns, prefix), keywordSuffixes(keywords, prefix)...)
	}

	for _, suffix := range suffixes {
		newLine = append(newLine, []rune(suffix))
	}
	return newLine, len([]rune(prefix))
}

// lastWord returns the trailing run of word characters in s
func lastWord(s string) string {
	i := strings.LastIndexFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '(' || r == ')' || r == ',' ||
			r == '=' || r == '!' || r == '<' || r == '>' || r == '\''
	})
	return s[i+1:]
}

// exactSuffixes completes names that match case-sensitively, such as
// columns and format names.
func exactSuffixes(names []string, prefix string) []string {
	var result []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			result = append(result, name[len(prefix):])
		}
	}
	return result
}

// keywordSuffixes completes case-insensitive words. The suffix is upper case
// when the typed prefix is, lower case otherwise: "sel" completes to "select".
func keywordSuffixes(words []string, prefix string) []string {
	lowerPrefix := strings.ToLower(prefix)
	var result []string
	for _, word := range words {
		if !strings.HasPrefix(strings.ToLower(word), lowerPrefix) {
			continue
		}
		suffix := word[len(prefix):]
		if prefix != "" {
			if prefix == strings.ToUpper(prefix) {
				suffix = strings.ToUpper(suffix)
			} else {
				suffix = strings.ToLower(suffix)
			}
		}
		result = append(result, suffix)
	}
	return result
}
