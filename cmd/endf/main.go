package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "endf",
		Short:         "Inspect ENDF-6 evaluated nuclear data tapes",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.configure(cmd); err != nil {
				return err
			}
			var logPath *string
			if app.logFile != "" {
				logPath = &app.logFile
			}
			commonlog.Configure(app.verbose, logPath)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/endf/config.yaml)")
	flags.CountVarP(&app.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	flags.StringVar(&app.logFile, "log-file", "", "write logs to this file instead of stderr")
	flags.BoolVar(&app.strict, "strict", false, "reject lines shorter than 80 columns")
	flags.BoolVar(&app.sequenceCheck, "sequence-check", false, "warn about sequence numbers that do not increase")
	flags.IntVarP(&app.workers, "workers", "j", 1, "decode materials in parallel with this many workers")

	rootCmd.AddCommand(newDumpCmd(app))
	rootCmd.AddCommand(newIndexCmd(app))
	rootCmd.AddCommand(newCheckCmd(app))
	rootCmd.AddCommand(newDescribeCmd(app))
	rootCmd.AddCommand(newPhotonsCmd(app))
	rootCmd.AddCommand(newLSPCmd(app))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "endf:", err)
		os.Exit(1)
	}
}
