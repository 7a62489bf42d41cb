// Package repl implements the interactive read/execute/print loop.
package repl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ergochat/readline"
	"github.com/google/uuid"

	"github.com/vegasq/flatsql/internal/output"
	"github.com/vegasq/flatsql/internal/query"
)

// errExit is returned by Execute when the user asks to leave the loop
var errExit = errors.New("exit")

// LineReader supplies input lines to the loop. *readline.Instance satisfies it.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// Session holds the state of one interactive session.
type Session struct {
	exec      *query.Executor
	format    string
	formatter output.Formatter
	out       io.Writer
	errOut    io.Writer
	logger    *slog.Logger
}

// NewSession creates a session that prints results in the named format.
func NewSession(exec *query.Executor, format string, out, errOut io.Writer) (*Session, error) {
	formatter, err := output.New(format, out)
	if err != nil {
		return nil, err
	}
	return &Session{
		exec:      exec,
		format:    format,
		formatter: formatter,
		out:       out,
		errOut:    errOut,
		logger:    slog.Default(),
	}, nil
}

// Format returns the name of the active output format
func (s *Session) Format() string {
	return s.format
}

// Run reads lines from r until exit, EOF or an interrupt. Command errors are
// printed and the loop keeps going; only a read failure is returned.
func (s *Session) Run(r LineReader) error {
	for {
		line, err := r.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		if err := s.Execute(line); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			fmt.Fprintf(s.errOut, "Encountered an error: %v\n", err)
		}
	}
}

// Execute handles one input line: a meta command or a query.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "exit", "quit":
		return errExit
	case "help":
		fmt.Fprint(s.out, helpText)
		return nil
	case "schema":
		output.WriteSchema(s.out, s.exec.Table().Columns())
		return nil
	case "format":
		if len(fields) != 2 {
			return fmt.Errorf("usage: format <%s>", strings.Join(output.Formats, "|"))
		}
		return s.setFormat(fields[1])
	}

	return s.query(line)
}

func (s *Session) setFormat(name string) error {
	formatter, err := output.New(name, s.out)
	if err != nil {
		return err
	}
	s.format = name
	s.formatter = formatter
	fmt.Fprintf(s.out, "Output format: %s\n", name)
	return nil
}

func (s *Session) query(text string) error {
	exec := s.exec.WithLogger(s.logger.With("request_id", uuid.NewString()))

	result, err := exec.Execute(text)
	if err != nil {
		return err
	}
	return s.formatter.Format(result)
}

const helpText = `Commands:
  SELECT <cols|*> FROM table [WHERE <condition>] [LIMIT <n>]
  schema           list columns and their types
  format <name>    switch output format (text, json, jsonl, csv, table)
  help             show this help
  exit, quit       leave

Conditions combine comparisons (=, !=, <, >) with AND, OR and parentheses.
AND and OR have equal precedence and are applied left to right.
`
