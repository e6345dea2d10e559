package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/endf/lsp"
)

func newLSPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Run a language server over stdio",
		Long: `Run a language server that publishes diagnostics for ENDF files and
describes the line and field under the cursor on hover.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.GetLogger("endf").Infof("starting language server %s", version)
			return lsp.NewServer(version, a.options("")...).RunStdio()
		},
	}

	return cmd
}
