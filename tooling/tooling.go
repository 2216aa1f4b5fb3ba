// Package tooling builds and runs the external lint and format
// commands for ebuild files.
package tooling

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/ogiekako/ebuildls/ebuild/parser"
	"github.com/ogiekako/ebuildls/project"
)

// LintCommand returns the argv that lints path. The default is
// "cros lint"; cfg.Lint replaces it. Ebuilds inheriting cros-workon
// additionally get cfg.WorkonLint. doc may be nil when the file did
// not parse.
func LintCommand(doc *parser.Document, path string, cfg project.Config) []string {
	argv := []string{"cros", "lint"}
	if len(cfg.Lint) > 0 {
		argv = append([]string(nil), cfg.Lint...)
	}
	if doc != nil && doc.HasInherit("cros-workon") {
		argv = append(argv, cfg.WorkonLint...)
	}
	return append(argv, path)
}

// FormatCommand returns the argv that formats path. The default is
// "cros format"; cfg.Format replaces it.
func FormatCommand(path string, cfg project.Config) []string {
	argv := []string{"cros", "format"}
	if len(cfg.Format) > 0 {
		argv = append([]string(nil), cfg.Format...)
	}
	return append(argv, path)
}

// Runner executes an argv with output passed through.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r *Runner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", strings.Join(argv, " "), err)
	}
	return nil
}
