package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/endf/endf"
)

func newIndexCmd(a *app) *cobra.Command {
	var sectionsToo bool

	cmd := &cobra.Command{
		Use:   "index <file>",
		Short: "List the line and byte extents of every material and file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			idx, err := endf.BuildIndex(r, a.options(args[0])...)
			if err != nil {
				return err
			}
			printIndex(os.Stdout, idx, sectionsToo)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&sectionsToo, "sections", "s", false, "also list sections")

	return cmd
}

func printIndex(w io.Writer, idx *endf.Index, sectionsToo bool) {
	extent := func(kind string, e endf.Extent) {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d-%d\t%d+%d\n",
			kind, e.MAT, e.MF, e.MT, e.FirstLine, e.LastLine, e.Offset, e.Length)
	}
	for _, m := range idx.Materials {
		extent("material", m.Extent)
		for _, f := range m.Files {
			extent("file", f.Extent)
			if !sectionsToo {
				continue
			}
			for _, s := range f.Sections {
				extent("section", s)
			}
		}
	}
	status := "terminated"
	if !idx.Terminated {
		status = "open"
	}
	fmt.Fprintf(w, "tape\t%d lines\t%s\n", idx.Lines, status)
}
