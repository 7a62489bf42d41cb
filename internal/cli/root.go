// Package cli wires the flatsql commands together.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vegasq/flatsql/internal/config"
	"github.com/vegasq/flatsql/internal/output"
	"github.com/vegasq/flatsql/internal/query"
	"github.com/vegasq/flatsql/internal/reader"
	"github.com/vegasq/flatsql/internal/repl"
	"github.com/vegasq/flatsql/internal/table"
)

var errNoSource = errors.New("no data source: pass a data file or set --engine and --dsn")

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Format     string
	Query      string
	Table      string
	Engine     string
	DSN        string
}

// NewRootCommand creates the root command for the flatsql CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "flatsql [data-file]",
		Short: "Query flat records with a small SELECT dialect",
		Long: `flatsql loads a flat list of records into memory and answers queries of the form

  SELECT <cols|*> FROM table [WHERE <condition>] [LIMIT <n>]

Records come from a .json, .csv or .parquet file, a SQLite database file
(with --table), or a database table named by --engine, --dsn and --table.
Without --query an interactive prompt is started.

Example:
  flatsql cities.json
  flatsql -q "SELECT CITY FROM table WHERE POP > 15" cities.csv
  flatsql --engine postgres --dsn postgres://localhost/geo --table city -f table`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Table, "table", "", "table to read from a database source")
	cmd.PersistentFlags().StringVar(&opts.Engine, "engine", "", fmt.Sprintf("database engine %v", reader.Engines()))
	cmd.PersistentFlags().StringVar(&opts.DSN, "dsn", "", "database connection string")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", config.DefaultFormat, fmt.Sprintf("output format %v", output.Formats))
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "run one query and exit")

	cmd.AddCommand(NewSchemaCommand(opts))

	return cmd
}

func runRoot(cmd *cobra.Command, opts *RootOptions, args []string) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	setupLogging(cmd.ErrOrStderr(), cfg.Verbose)

	tbl, err := loadTable(cmd, cfg, args)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load records", err)
	}
	exec := query.NewExecutor(tbl)

	if opts.Query != "" {
		return runQuery(cmd.OutOrStdout(), exec, cfg.Format, opts.Query)
	}
	return runREPL(cmd, exec, cfg)
}

func runQuery(w io.Writer, exec *query.Executor, format, text string) error {
	formatter, err := output.New(format, w)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid format", err)
	}

	result, err := exec.Execute(text)
	if err != nil {
		return WrapExitError(ExitFailure, "query failed", err)
	}
	if err := formatter.Format(result); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	return nil
}

func runREPL(cmd *cobra.Command, exec *query.Executor, cfg *config.Config) error {
	session, err := repl.NewSession(exec, cfg.Format, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid format", err)
	}

	rl, err := repl.NewReadline(cfg, exec.Table())
	if err != nil {
		return WrapExitError(ExitCommandError, "readline init", err)
	}
	defer func() { _ = rl.Close() }()

	if err := session.Run(rl); err != nil {
		return WrapExitError(ExitCommandError, "interactive session", err)
	}
	return nil
}

// resolveConfig loads the config file, if any, and applies the flags the
// user set on top of it.
func resolveConfig(cmd *cobra.Command, opts *RootOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = opts.Verbose
	}
	if flags.Changed("format") {
		cfg.Format = opts.Format
	}
	if flags.Changed("table") {
		cfg.Source.Table = opts.Table
	}
	if flags.Changed("engine") {
		cfg.Source.Engine = opts.Engine
	}
	if flags.Changed("dsn") {
		cfg.Source.DSN = opts.DSN
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadTable reads the data file named in args, or the configured database
// table when no file is given.
func loadTable(cmd *cobra.Command, cfg *config.Config, args []string) (*table.Table, error) {
	if len(args) == 1 {
		return reader.Load(args[0], reader.Options{Table: cfg.Source.Table})
	}
	if !cfg.Source.IsDatabase() {
		return nil, errNoSource
	}

	src := cfg.Source
	slog.Info("reading table", "engine", src.Engine, "table", src.Table)
	records, err := reader.ReadSQL(cmd.Context(), src.Engine, src.DSN, src.Table)
	if err != nil {
		return nil, err
	}
	slog.Info("records loaded", "source", src.Table, "records", len(records))
	return table.New(records)
}

// setupLogging installs a text slog handler on w, at debug level when
// verbose is set.
func setupLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// Main runs the CLI with the process arguments and returns the exit code.
func Main() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}
