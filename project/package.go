package project

import (
	"path/filepath"
	"strings"
)

// PackageInfo identifies an ebuild by its position in the overlay
// layout, <overlay>/<category>/<package>/<package>-<version>.ebuild.
type PackageInfo struct {
	Category string
	Package  string
	Version  string
}

// InfoFromPath extracts the package coordinates from an ebuild path.
// It reports false for paths that do not follow the overlay layout.
func InfoFromPath(path string) (PackageInfo, bool) {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".ebuild") {
		return PackageInfo{}, false
	}
	stem := strings.TrimSuffix(base, ".ebuild")

	pkgDir := filepath.Dir(path)
	pkg := filepath.Base(pkgDir)
	category := filepath.Base(filepath.Dir(pkgDir))
	if pkg == "." || category == "." || pkg == string(filepath.Separator) || category == string(filepath.Separator) {
		return PackageInfo{}, false
	}

	prefix := pkg + "-"
	if !strings.HasPrefix(stem, prefix) {
		return PackageInfo{}, false
	}
	version := strings.TrimPrefix(stem, prefix)
	if version == "" || version[0] < '0' || version[0] > '9' {
		return PackageInfo{}, false
	}

	return PackageInfo{Category: category, Package: pkg, Version: version}, true
}

// IsLive reports whether the ebuild builds from the local tree instead
// of a pinned commit.
func (p PackageInfo) IsLive() bool {
	return p.Version == "9999"
}
