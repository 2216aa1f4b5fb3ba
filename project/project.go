// Package project locates ChromiumOS checkouts and the overlay
// structure around an ebuild file.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// Checkout represents a ChromiumOS source checkout, the tree managed
// by repo with overlays under src/.
type Checkout struct {
	Root   string
	Config Config
}

// Load detects the checkout containing the current directory.
func Load() (*Checkout, error) {
	return LoadFrom(".")
}

// LoadFrom walks upward from start (a file or a directory) until it
// finds the checkout root, marked by a .repo directory or a
// src/overlays directory.
func LoadFrom(start string) (*Checkout, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, err
	}
	if fi, err := os.Stat(dir); err == nil && !fi.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		if isCheckoutRoot(dir) {
			cfg, err := LoadConfig(filepath.Join(dir, ConfigName))
			if err != nil {
				// Non-fatal: stay on the defaults.
				cfg = Config{}
			}
			return &Checkout{Root: dir, Config: cfg}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("could not detect checkout: no .repo or src/overlays directory above %s", start)
		}
		dir = parent
	}
}

func isCheckoutRoot(dir string) bool {
	return isDir(filepath.Join(dir, ".repo")) || isDir(filepath.Join(dir, "src", "overlays"))
}

// EclassDirs returns the eclass directories of the checkout in lookup
// order: directories named in the config first, then the overlay that
// holds forFile (when given), then the shared overlays. The ordering
// mirrors portage, where the ebuild's own repository shadows its
// masters.
func (c *Checkout) EclassDirs(forFile string) []string {
	var dirs []string
	for _, d := range c.Config.EclassDirs {
		if !filepath.IsAbs(d) {
			d = filepath.Join(c.Root, d)
		}
		dirs = append(dirs, d)
	}
	if forFile != "" {
		if d, ok := c.overlayEclassDir(forFile); ok {
			dirs = append(dirs, d)
		}
	}
	dirs = append(dirs,
		filepath.Join(c.Root, "src", "third_party", "chromiumos-overlay", "eclass"),
		filepath.Join(c.Root, "src", "third_party", "portage-stable", "eclass"),
	)
	dirs = append(dirs, c.privateOverlayEclassDirs()...)
	return dedup(dirs)
}

// EclassPath resolves an eclass name such as "cros-workon" to the file
// defining it. The first directory in EclassDirs order wins. forFile
// may be empty when no edited file gives the lookup an overlay context.
func (c *Checkout) EclassPath(name, forFile string) (string, bool) {
	for _, dir := range c.EclassDirs(forFile) {
		p := filepath.Join(dir, name+".eclass")
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p, true
		}
	}
	return "", false
}

// SourceDir resolves a CROS_WORKON_LOCALNAME value to the directory
// holding the project source. chromeos-base packages live under
// src/platform and everything else under src/third_party; values like
// "../platform2/shill" climb out of the base directory.
func (c *Checkout) SourceDir(category, localname string) string {
	base := "third_party"
	if category == "chromeos-base" {
		base = "platform"
	}
	return filepath.Join(c.Root, "src", base, localname)
}

// overlayEclassDir finds the eclass directory of the overlay holding
// file by walking upward until the checkout root.
func (c *Checkout) overlayEclassDir(file string) (string, bool) {
	dir := filepath.Dir(file)
	for {
		if d := filepath.Join(dir, "eclass"); isDir(d) {
			return d, true
		}
		if dir == c.Root {
			return "", false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func (c *Checkout) privateOverlayEclassDirs() []string {
	base := filepath.Join(c.Root, "src", "private-overlays")
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		d := filepath.Join(base, entry.Name(), "eclass")
		if isDir(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func dedup(dirs []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range dirs {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
