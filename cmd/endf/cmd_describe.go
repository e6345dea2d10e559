package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/endf/endf"
	"github.com/dhamidi/endf/sections"
)

func newDescribeCmd(a *app) *cobra.Command {
	var mat int
	var withDirectory, withComments bool

	cmd := &cobra.Command{
		Use:   "describe <file>",
		Short: "Print the descriptive data (MF=1, MT=451) of each material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tape, err := a.decode(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			found := false
			for _, m := range tape.Materials {
				if mat != 0 && m.MAT != mat {
					continue
				}
				found = true
				d, err := sections.DescriptionOf(m)
				if errors.Is(err, sections.ErrNoSection) {
					fmt.Fprintf(out, "MAT %d: no description\n", m.MAT)
					continue
				}
				if err != nil {
					return fmt.Errorf("MAT %d: %w", m.MAT, err)
				}
				printDescription(out, m, d, withDirectory, withComments)
			}
			if mat != 0 && !found {
				return fmt.Errorf("material %d not found", mat)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&mat, "mat", 0, "only describe this material")
	cmd.Flags().BoolVarP(&withDirectory, "directory", "d", false, "list the section directory")
	cmd.Flags().BoolVarP(&withComments, "comments", "c", false, "print the comment records")

	return cmd
}

func printDescription(w io.Writer, m *endf.Material, d *sections.Description, withDirectory, withComments bool) {
	fmt.Fprintf(w, "MAT %d\t%s\tZ=%d A=%d\tAWR=%g\n", m.MAT, strings.TrimSpace(d.ZSYMAM), d.Z(), d.A(), d.AWR)
	fmt.Fprintf(w, "  lab:      %s\n", strings.TrimSpace(d.ALAB))
	fmt.Fprintf(w, "  authors:  %s\n", strings.TrimSpace(d.AUTH))
	fmt.Fprintf(w, "  library:  NLIB=%d NVER=%d LREL=%d NSUB=%d NFOR=%d\n", d.NLIB, d.NVER, d.LREL, d.NSUB, d.NFOR)
	fmt.Fprintf(w, "  emax:     %g eV\n", d.EMAX)
	fmt.Fprintf(w, "  fissile:  %t\n", d.LFI != 0)
	if withComments {
		for _, c := range d.Comments {
			fmt.Fprintf(w, "  | %s\n", strings.TrimRight(c, " "))
		}
	}
	if withDirectory {
		for _, e := range d.Directory {
			fmt.Fprintf(w, "  MF=%d\tMT=%d\tNC=%d\tMOD=%d\n", e.MF, e.MT, e.NC, e.MOD)
		}
	}
}
