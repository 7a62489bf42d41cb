package cli

import (
	"github.com/spf13/cobra"

	"github.com/vegasq/flatsql/internal/output"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [data-file]",
		Short: "Print the inferred columns and their types",
		Long: `Load the records and print every column in first-seen order with the type
inferred from its first value.

Example:
  flatsql schema cities.json
  flatsql schema --table city cities.db`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, rootOpts)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid configuration", err)
			}
			setupLogging(cmd.ErrOrStderr(), cfg.Verbose)

			tbl, err := loadTable(cmd, cfg, args)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load records", err)
			}

			output.WriteSchema(cmd.OutOrStdout(), tbl.Columns())
			return nil
		},
	}
}
