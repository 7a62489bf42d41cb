package repl

import (
	"github.com/ergochat/readline"

	"github.com/vegasq/flatsql/internal/config"
	"github.com/vegasq/flatsql/internal/table"
)

// NewReadline creates a terminal line reader with history and completion
// over the columns of t.
func NewReadline(cfg *config.Config, t *table.Table) (*readline.Instance, error) {
	return readline.NewFromConfig(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		HistoryLimit:    cfg.HistoryLimit,
		AutoComplete:    newCompleter(t),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}
