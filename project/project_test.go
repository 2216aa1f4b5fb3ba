package project

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// newCheckout builds a minimal checkout tree marked by a .repo
// directory and returns its root.
func newCheckout(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".repo"), 0755); err != nil {
		t.Fatal(err)
	}
	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFrom(t *testing.T) {
	root := newCheckout(t)
	dir := filepath.Join(root, "src", "third_party", "chromiumos-overlay", "chromeos-base", "shill")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.Root != root {
		t.Errorf("Root = %q, want %q", c.Root, root)
	}
}

func TestLoadFromFilePath(t *testing.T) {
	root := newCheckout(t)
	ebuild := filepath.Join(root, "src", "third_party", "chromiumos-overlay", "chromeos-base", "shill", "shill-9999.ebuild")
	writeFile(t, ebuild, "EAPI=7\n")

	c, err := LoadFrom(ebuild)
	if err != nil {
		t.Fatal(err)
	}
	if c.Root != root {
		t.Errorf("Root = %q, want %q", c.Root, root)
	}
}

func TestLoadFromOverlaysMarker(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src", "overlays"), 0755); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFrom(root)
	if err != nil {
		t.Fatal(err)
	}
	if c.Root != root {
		t.Errorf("Root = %q, want %q", c.Root, root)
	}
}

func TestLoadFromOutsideCheckout(t *testing.T) {
	if _, err := LoadFrom(t.TempDir()); err == nil {
		t.Error("LoadFrom succeeded, want error")
	}
}

func TestLoadFromReadsConfig(t *testing.T) {
	root := newCheckout(t)
	writeFile(t, filepath.Join(root, ConfigName),
		"eclass-dirs:\n"+
			"  - overlays/project-x/eclass\n"+
			"link-variables:\n"+
			"  - CROS_WORKON_LOCALNAME\n"+
			"lint: [cros, lint, --relaxed]\n")

	c, err := LoadFrom(root)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.Config.EclassDirs, []string{"overlays/project-x/eclass"}; !reflect.DeepEqual(got, want) {
		t.Errorf("EclassDirs = %v, want %v", got, want)
	}
	if got, want := c.Config.LinkVariables, []string{"CROS_WORKON_LOCALNAME"}; !reflect.DeepEqual(got, want) {
		t.Errorf("LinkVariables = %v, want %v", got, want)
	}
	if got, want := c.Config.Lint, []string{"cros", "lint", "--relaxed"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Lint = %v, want %v", got, want)
	}
}

func TestLoadFromBrokenConfig(t *testing.T) {
	root := newCheckout(t)
	writeFile(t, filepath.Join(root, ConfigName), "lint: [unclosed\n")

	c, err := LoadFrom(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Config.Lint) != 0 {
		t.Errorf("Config = %+v, want defaults", c.Config)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), ConfigName))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, Config{}) {
		t.Errorf("cfg = %+v, want zero", cfg)
	}
}

func TestLinkVariableNames(t *testing.T) {
	got := Config{}.LinkVariableNames()
	want := []string{"CROS_WORKON_LOCALNAME", "CROS_WORKON_SUBTREE"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LinkVariableNames = %v, want %v", got, want)
	}

	got = Config{LinkVariables: []string{"MY_SOURCES"}}.LinkVariableNames()
	if !reflect.DeepEqual(got, []string{"MY_SOURCES"}) {
		t.Errorf("LinkVariableNames = %v, want [MY_SOURCES]", got)
	}
}

func TestEclassPath(t *testing.T) {
	root := newCheckout(t)
	cros := filepath.Join(root, "src", "third_party", "chromiumos-overlay", "eclass", "cros-workon.eclass")
	writeFile(t, cros, "# @ECLASS: cros-workon.eclass\n")
	writeFile(t, filepath.Join(root, "src", "third_party", "portage-stable", "eclass", "cros-workon.eclass"), "# shadowed\n")
	funcs := filepath.Join(root, "src", "third_party", "portage-stable", "eclass", "toolchain-funcs.eclass")
	writeFile(t, funcs, "# @ECLASS: toolchain-funcs.eclass\n")

	c := &Checkout{Root: root}
	if got, ok := c.EclassPath("cros-workon", ""); !ok || got != cros {
		t.Errorf("EclassPath(cros-workon) = %q, %v, want %q, true", got, ok, cros)
	}
	if got, ok := c.EclassPath("toolchain-funcs", ""); !ok || got != funcs {
		t.Errorf("EclassPath(toolchain-funcs) = %q, %v, want %q, true", got, ok, funcs)
	}
	if _, ok := c.EclassPath("no-such-eclass", ""); ok {
		t.Error("EclassPath(no-such-eclass) found, want miss")
	}
}

func TestEclassPathPrefersOverlayOfFile(t *testing.T) {
	root := newCheckout(t)
	shared := filepath.Join(root, "src", "third_party", "chromiumos-overlay", "eclass", "cros-workon.eclass")
	writeFile(t, shared, "# shared\n")
	own := filepath.Join(root, "src", "overlays", "overlay-eve", "eclass", "cros-workon.eclass")
	writeFile(t, own, "# overlay copy\n")
	ebuild := filepath.Join(root, "src", "overlays", "overlay-eve", "chromeos-base", "foo", "foo-9999.ebuild")
	writeFile(t, ebuild, "EAPI=7\n")

	c := &Checkout{Root: root}
	if got, ok := c.EclassPath("cros-workon", ebuild); !ok || got != own {
		t.Errorf("EclassPath with file = %q, %v, want %q, true", got, ok, own)
	}
	if got, ok := c.EclassPath("cros-workon", ""); !ok || got != shared {
		t.Errorf("EclassPath without file = %q, %v, want %q, true", got, ok, shared)
	}
}

func TestEclassDirsConfigFirst(t *testing.T) {
	root := newCheckout(t)
	local := filepath.Join(root, "local-eclass", "cros-workon.eclass")
	writeFile(t, local, "# local override\n")
	writeFile(t, filepath.Join(root, "src", "third_party", "chromiumos-overlay", "eclass", "cros-workon.eclass"), "# shared\n")

	c := &Checkout{Root: root, Config: Config{EclassDirs: []string{"local-eclass"}}}
	dirs := c.EclassDirs("")
	if want := filepath.Join(root, "local-eclass"); dirs[0] != want {
		t.Errorf("dirs[0] = %q, want %q", dirs[0], want)
	}
	if got, ok := c.EclassPath("cros-workon", ""); !ok || got != local {
		t.Errorf("EclassPath = %q, %v, want %q, true", got, ok, local)
	}
}

func TestEclassDirsPrivateOverlays(t *testing.T) {
	root := newCheckout(t)
	eve := filepath.Join(root, "src", "private-overlays", "overlay-eve-private", "eclass", "eve.eclass")
	writeFile(t, eve, "# @ECLASS: eve.eclass\n")
	if err := os.MkdirAll(filepath.Join(root, "src", "private-overlays", "overlay-bare-private"), 0755); err != nil {
		t.Fatal(err)
	}

	c := &Checkout{Root: root}
	if got, ok := c.EclassPath("eve", ""); !ok || got != eve {
		t.Errorf("EclassPath(eve) = %q, %v, want %q, true", got, ok, eve)
	}

	want := filepath.Join(root, "src", "private-overlays", "overlay-eve-private", "eclass")
	dirs := c.EclassDirs("")
	if dirs[len(dirs)-1] != want {
		t.Errorf("dirs = %v, want last %q", dirs, want)
	}
}

func TestSourceDir(t *testing.T) {
	root := "/checkout"
	c := &Checkout{Root: root}
	tests := []struct {
		category  string
		localname string
		want      string
	}{
		{"chromeos-base", "shill", "/checkout/src/platform/shill"},
		{"chromeos-base", "../platform2/shill", "/checkout/src/platform2/shill"},
		{"net-misc", "curl", "/checkout/src/third_party/curl"},
		{"dev-libs", "../platform2/common-mk", "/checkout/src/platform2/common-mk"},
	}
	for _, tt := range tests {
		if got := c.SourceDir(tt.category, tt.localname); got != tt.want {
			t.Errorf("SourceDir(%q, %q) = %q, want %q", tt.category, tt.localname, got, tt.want)
		}
	}
}
