package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ogiekako/ebuildls/project"
	"github.com/ogiekako/ebuildls/tooling"
)

func newFmtCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fmt <file>...",
		Short: "Run the checkout's format command on ebuild files",
		Long: `Run the checkout's format command on ebuild files.

The command defaults to "cros format" and can be overridden per
checkout in ` + project.ConfigName + `.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &tooling.Runner{Stdout: os.Stdout, Stderr: os.Stderr}
			for _, filename := range args {
				checkout, err := project.LoadFrom(filename)
				if err != nil {
					return err
				}
				argv := tooling.FormatCommand(filename, checkout.Config)
				if dryRun {
					fmt.Println(strings.Join(argv, " "))
					continue
				}
				if err := runner.Run(cmd.Context(), argv); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the command instead of running it")

	return cmd
}
