// Package prepare handles the export aggregation command
package prepare

import (
	"fjacquet/budget-prep/cmd/root"
	"fjacquet/budget-prep/internal/validation"

	"github.com/spf13/cobra"
)

// Options holds the prepare command flags.
type Options struct {
	Records bool
	Format  string
}

// Cmd represents the prepare command
var Cmd = NewCommand()

// NewCommand builds the prepare command.
func NewCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "prepare <file>",
		Short: "Aggregate a transaction export into Income and Expenditure totals",
		Long: `Read a transaction export (Date, Amount, Name, Balance, Category) and print
per-category net totals split into Income and Expenditure. Transfers and
categories that net to zero are left out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Records, "records", false, "print reshaped records instead of the summary")
	cmd.Flags().StringVar(&opts.Format, "format", "", "output format (json, yaml); defaults to output.format")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *Options) error {
	if len(args) == 0 {
		return root.ErrNoFilePath
	}
	if len(args) > 1 {
		return &root.UsageError{Msg: "Expected exactly one file path"}
	}

	c := root.GetContainer()
	format := c.GetConfig().Output.Format
	if opts.Format != "" {
		if err := validation.IsValidOutputFormat(opts.Format); err != nil {
			return err
		}
		format = opts.Format
	}

	var result interface{}
	if opts.Records {
		records, err := c.GetPipeline().PrepareRecords(args[0])
		if err != nil {
			return err
		}
		result = records
	} else {
		summary, err := c.GetPipeline().Prepare(args[0])
		if err != nil {
			return err
		}
		result = summary
	}

	return c.GetReportGenerator().Render(cmd.OutOrStdout(), result, format)
}
