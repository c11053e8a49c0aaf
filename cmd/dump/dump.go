// Package dump handles the generic CSV to JSON command
package dump

import (
	"fjacquet/budget-prep/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the dump command
var Cmd = NewCommand()

// NewCommand builds the dump command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print any headerless CSV file as JSON rows",
		Long: `Read a CSV file without a header line and print its rows as indented JSON.
Columns are named header_1..header_N and each row gets an id starting at 1.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &root.UsageError{Msg: "Usage: budget-prep dump <file>"}
			}

			c := root.GetContainer()
			rows, err := c.GetDumper().DumpFile(args[0])
			if err != nil {
				return err
			}

			return c.GetReportGenerator().RenderIndentedJSON(cmd.OutOrStdout(), rows)
		},
	}
}
