package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ogiekako/ebuildls/ebuild/parser"
	"github.com/ogiekako/ebuildls/project"
	"github.com/ogiekako/ebuildls/tooling"
)

func newLintCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "lint <file>...",
		Short: "Run the checkout's lint command on ebuild files",
		Long: `Run the checkout's lint command on ebuild files.

The command defaults to "cros lint" and can be overridden per checkout
in ` + project.ConfigName + `. Ebuilds that inherit cros-workon get the
configured workon-lint arguments appended.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &tooling.Runner{Stdout: os.Stdout, Stderr: os.Stderr}
			for _, filename := range args {
				checkout, err := project.LoadFrom(filename)
				if err != nil {
					return err
				}
				argv := tooling.LintCommand(parseForLint(filename), filename, checkout.Config)
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

// parseForLint extracts the inherit list used to pick lint arguments.
// A file that fails to read or parse still gets the base command.
func parseForLint(filename string) *parser.Document {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil
	}
	doc, err := parser.Parse(string(data))
	if err != nil {
		return nil
	}
	return doc
}
