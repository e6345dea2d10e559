package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/endf/sections"
)

func newPhotonsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photons <file>",
		Short: "Print the delayed photon data (MF=1, MT=460) of each material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tape, err := a.decode(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range tape.Materials {
				p, err := sections.DelayedPhotonsOf(m)
				if errors.Is(err, sections.ErrNoSection) {
					continue
				}
				if err != nil {
					return fmt.Errorf("MAT %d: %w", m.MAT, err)
				}
				switch p.LO {
				case sections.DiscretePhotons:
					fmt.Fprintf(out, "MAT %d\tdiscrete\t%d photons\n", m.MAT, len(p.Discrete))
					for i, e := range p.Energies() {
						fmt.Fprintf(out, "  %d\t%g eV\t%d points\n", i+1, e, p.Discrete[i].NP())
					}
				case sections.ContinuousPhotons:
					fmt.Fprintf(out, "MAT %d\tcontinuous\t%d families\n", m.MAT, len(p.DecayConstants))
					for i, l := range p.DecayConstants {
						fmt.Fprintf(out, "  %d\t%g 1/s\n", i+1, l)
					}
				}
			}
			return nil
		},
	}

	return cmd
}
