package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ebuildls",
		Short: "Editor tooling for ChromiumOS ebuilds and eclasses",
	}

	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newDocCmd())
	rootCmd.AddCommand(newLintCmd())
	rootCmd.AddCommand(newFmtCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
