// Package cli wires the cobra command tree of the rowpipe binary.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command and attaches all sub-commands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rowpipe",
		Short: "rowpipe moves tabular data between sources and destinations",
		Long: `rowpipe runs extract-transform-load tasks defined in a JSON task file.
Sources include CSV files, zipped CSV, spreadsheets, SQL databases and
SPARQL endpoints; destinations include CSV, JSON, SQL, MongoDB and
Elasticsearch.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newListCmd())

	return rootCmd
}
