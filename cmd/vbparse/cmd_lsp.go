package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/vbparse/vb6/workspace"
)

func newLSPCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			server := workspace.NewLSPServer("0.1.0")
			return server.RunStdio()
		},
	}
	cmd.Flags().IntVar(&verbosity, "verbose", 0, "log verbosity (0 = warnings only)")
	return cmd
}
