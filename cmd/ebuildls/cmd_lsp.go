package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/ogiekako/ebuildls/ebuild/server"
)

func newLSPCmd() *cobra.Command {
	var tcpAddress string
	var verbose int
	var logFile string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start the Language Server Protocol server.

By default the server speaks LSP over stdin and stdout, which is what
editors expect. Use --tcp to listen on a TCP address instead, which
keeps stdio free for debugging.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var logPath *string
			if logFile != "" {
				logPath = &logFile
			}
			commonlog.Configure(verbose, logPath)

			ls := server.NewLSPServer("0.1.0")
			if tcpAddress != "" {
				return ls.RunTCP(tcpAddress)
			}
			return ls.RunStdio()
		},
	}

	cmd.Flags().StringVar(&tcpAddress, "tcp", "", "listen on this TCP address instead of stdio")
	cmd.Flags().IntVar(&verbose, "verbose", 1, "log verbosity")
	cmd.Flags().StringVar(&logFile, "log", "", "write the log to this file instead of stderr")

	return cmd
}
