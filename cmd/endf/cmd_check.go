package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/endf/endf"
)

var errCheckFailed = errors.New("check failed")

func newCheckCmd(a *app) *cobra.Command {
	var strictOrder bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate the structure of one or more tapes",
		Long: `Decode every file and report fatal errors and ordering warnings.
The exit status is non-zero if any file has an error, or a warning when
--warnings-as-errors is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := false
			for _, path := range args {
				var extra []endf.Option
				if strictOrder {
					extra = append(extra, endf.WithWarningHandler(func(e *endf.Error) error {
						return e
					}))
				}
				tape, err := a.decode(path, extra...)
				if tape != nil {
					for _, w := range tape.Warnings {
						if !strictOrder {
							fmt.Fprintf(out, "warning: %v\n", w)
						}
					}
				}
				if err != nil {
					fmt.Fprintf(out, "error: %v\n", err)
					failed = true
					continue
				}
				status := "terminated"
				if !tape.Terminated {
					status = "no TEND record"
				}
				fmt.Fprintf(out, "%s: ok, %d materials, %d warnings, %s\n", path, len(tape.Materials), len(tape.Warnings), status)
			}
			if failed {
				return errCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strictOrder, "warnings-as-errors", false, "treat ordering warnings as fatal")

	return cmd
}
