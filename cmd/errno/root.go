package main

import (
	"github.com/spf13/cobra"

	"github.com/phillipmacon/pcsx2/report"
)

// Version is set at build time.
var Version = "0.1.0-dev"

// globalOptions carries persistent flags to subcommands.
type globalOptions struct {
	logLevel string
	logJSON  bool
	logger   *report.Logger
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "errno",
		Short:         "Explain error codes and file failures",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := report.ParseLogLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = report.NewLogger(report.LogConfig{
				Level:  level,
				Output: cmd.ErrOrStderr(),
				JSON:   opts.logJSON,
			})
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "Write log records as JSON")

	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newOpenCmd(opts))

	return rootCmd
}
