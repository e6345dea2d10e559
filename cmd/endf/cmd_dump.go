package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/endf/format"
)

func newDumpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Decode a tape and print its records",
		Long: `Decode a tape and print it in one of the output formats:

  line     one tab-separated line per scope and record
  json     the full record tree as JSON
  summary  JSON with record counts per section instead of records

Use - to read standard input. Files ending in .zst are decompressed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := format.New(a.format, os.Stdout)
			if enc == nil {
				return fmt.Errorf("unknown format: %s (expected %s)", a.format, strings.Join(format.Names, ", "))
			}
			tape, decodeErr := a.decode(args[0])
			if tape == nil {
				return decodeErr
			}
			if err := enc.Encode(tape); err != nil {
				return fmt.Errorf("encode %s: %w", a.format, err)
			}
			return decodeErr
		},
	}

	cmd.Flags().StringVarP(&a.format, "format", "f", "line", "output format ("+strings.Join(format.Names, ", ")+")")

	return cmd
}
