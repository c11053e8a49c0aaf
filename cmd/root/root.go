// Package root contains the root command for the application
package root

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/budget-prep/internal/config"
	"fjacquet/budget-prep/internal/container"
	"fjacquet/budget-prep/internal/logging"
	"fjacquet/budget-prep/internal/report"

	"github.com/spf13/cobra"
)

// GlobalFlags are the persistent flags shared by every command.
type GlobalFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
}

var (
	// AppConfig is the configuration loaded for the current invocation.
	AppConfig *config.Config

	// AppContainer holds the dependencies built from AppConfig.
	AppContainer *container.Container

	// Flags holds the values of the persistent flags.
	Flags = GlobalFlags{}

	// Cmd is the root command
	Cmd = NewCommand()
)

// UsageError reports wrong command-line arguments. It is printed together
// with the command usage instead of the JSON error envelope.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// ErrNoFilePath is returned when a command needs a file argument and gets none.
var ErrNoFilePath = &UsageError{Msg: "No file path provided"}

// NewCommand builds a root command with its persistent flags. Subcommands
// are attached by the caller.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget-prep",
		Short: "Prepare bank transaction exports for budget dashboards.",
		Long: `budget-prep aggregates a bank transaction export into per-category
Income and Expenditure totals and flattens them into records for front-end use.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: initialize,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&Flags.ConfigFile, "config", "", "config file (default searches $HOME/.budget-prep, .budget-prep and .)")
	cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&Flags.LogFormat, "log-format", "", "log format (text, json)")

	return cmd
}

// initialize loads configuration, applies flag overrides and builds the container.
func initialize(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(Flags.ConfigFile)
	if err != nil {
		return err
	}

	if Flags.LogLevel != "" {
		cfg.Log.Level = Flags.LogLevel
	}
	if Flags.LogFormat != "" {
		cfg.Log.Format = Flags.LogFormat
	}

	c, err := container.NewContainerWithLogOutput(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	c.GetLogger().Debug("Command called", logging.F("command", cmd.Name()))
	return nil
}

// Execute runs cmd and maps its outcome to a process exit status. Failures
// are written to stdout as the JSON error envelope; usage errors print the
// message followed by the command usage.
func Execute(cmd *cobra.Command, stdout, stderr io.Writer) int {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	executed, err := cmd.ExecuteC()
	if err == nil {
		return 0
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		_, _ = fmt.Fprintln(stdout, usageErr.Msg)
		_, _ = fmt.Fprint(stdout, executed.UsageString())
		return 1
	}

	if writeErr := report.WriteError(stdout, err); writeErr != nil {
		_, _ = fmt.Fprintln(stderr, err)
	}
	return 1
}

// GetContainer returns the container built for the current invocation.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the configuration loaded for the current invocation.
func GetConfig() *config.Config {
	return AppConfig
}

// ResetFlags restores the persistent flag values to their defaults.
func ResetFlags() {
	Flags = GlobalFlags{}
}
