package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigName is the per-checkout configuration file, looked up at the
// checkout root.
const ConfigName = ".ebuildls.yaml"

// Config tunes the server and the CLI per checkout. Every field is
// optional; the zero value means the built-in defaults.
type Config struct {
	// EclassDirs lists extra eclass directories, absolute or relative
	// to the checkout root. They take precedence over the overlays.
	EclassDirs []string `yaml:"eclass-dirs"`

	// LinkVariables replaces the set of variables whose values become
	// document links.
	LinkVariables []string `yaml:"link-variables"`

	// Lint and Format replace the argv the lint and fmt commands run;
	// the ebuild path is appended.
	Lint   []string `yaml:"lint"`
	Format []string `yaml:"format"`

	// WorkonLint appends extra lint arguments for ebuilds that
	// inherit cros-workon.
	WorkonLint []string `yaml:"workon-lint"`
}

// LoadConfig reads a Config from path. A missing file yields the zero
// Config and no error.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LinkVariableNames returns the variables whose string values turn
// into document links.
func (c Config) LinkVariableNames() []string {
	if len(c.LinkVariables) > 0 {
		return c.LinkVariables
	}
	return []string{"CROS_WORKON_LOCALNAME", "CROS_WORKON_SUBTREE"}
}
