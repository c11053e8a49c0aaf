// Package transform handles the summary reshaping command
package transform

import (
	"fjacquet/budget-prep/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the transform command
var Cmd = NewCommand()

// NewCommand builds the transform command.
func NewCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Flatten a summary read from stdin into records",
		Long: `Read the JSON summary produced by "prepare" from stdin and print one record
per category with an absolute amount and an Income or Expenditure tag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := root.GetContainer()

			records, err := c.GetPipeline().Transform(cmd.InOrStdin())
			if err != nil {
				return err
			}

			if format == "" {
				format = c.GetConfig().Output.Format
			}
			return c.GetReportGenerator().Render(cmd.OutOrStdout(), records, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format (json, yaml); defaults to output.format")

	return cmd
}
