// Package ebuild carries the shared knowledge about Portage ebuild
// files that editor features build on: documented keyword tables and
// positional helpers over parsed documents.
package ebuild

// KeywordKind classifies a documented ebuild identifier.
type KeywordKind int

const (
	KeywordPhaseFunction KeywordKind = iota
	KeywordReadOnlyVariable
	KeywordEbuildVariable
	KeywordWorkonVariable
)

var keywordKindNames = map[KeywordKind]string{
	KeywordPhaseFunction:    "phase function",
	KeywordReadOnlyVariable: "read-only variable",
	KeywordEbuildVariable:   "ebuild variable",
	KeywordWorkonVariable:   "cros-workon variable",
}

func (k KeywordKind) String() string {
	if name, ok := keywordKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Keyword is one documented identifier with a short markdown blurb.
type Keyword struct {
	Name string
	Kind KeywordKind
	Doc  string
}

var phaseFunctions = map[string]string{
	"pkg_pretend":   "Run sanity checks before the main phases start, while dependencies may still be unmet.",
	"pkg_nofetch":   "Tell the user how to obtain distfiles that cannot be fetched automatically.",
	"pkg_setup":     "Per-package environment setup, run before the source phases.",
	"src_unpack":    "Extract the source archives into `${WORKDIR}`.",
	"src_prepare":   "Apply patches and other preparation to the unpacked sources.",
	"src_configure": "Configure the build, typically by calling `econf`.",
	"src_compile":   "Build the package, typically by calling `emake`.",
	"src_test":      "Run the package's test suite when tests are enabled.",
	"src_install":   "Install the build results into the staging directory `${D}`.",
	"pkg_preinst":   "Run right before the image is merged into the live filesystem.",
	"pkg_postinst":  "Run after the image has been merged into the live filesystem.",
	"pkg_prerm":     "Run before the package is unmerged.",
	"pkg_postrm":    "Run after the package has been unmerged.",
	"pkg_config":    "Run post-install configuration requested via `emerge --config`.",
	"pkg_info":      "Print extra package information for `emerge --info`.",
}

var readOnlyVariables = map[string]string{
	"P":          "Package name and version without the revision: `${PN}-${PV}`.",
	"PN":         "Package name, e.g. `shill`.",
	"PV":         "Package version without the revision; `9999` marks a live ebuild.",
	"PR":         "Package revision, `r0` if the ebuild has none.",
	"PVR":        "Package version with revision, e.g. `0.0.1-r42`.",
	"PF":         "Full package string: `${PN}-${PVR}`.",
	"CATEGORY":   "Category of the package, e.g. `chromeos-base`.",
	"A":          "All source archives of the package, space separated.",
	"FILESDIR":   "Path of the `files/` directory next to the ebuild.",
	"WORKDIR":    "Root of the build's working directory tree.",
	"T":          "Temporary directory private to the build.",
	"D":          "Staging directory `src_install` installs into.",
	"ROOT":       "Path of the root filesystem being merged into.",
	"SYSROOT":    "Path of the sysroot dependencies were installed into.",
	"BROOT":      "Path build-host tools were installed into.",
	"EPREFIX":    "Offset prefix of an offset installation.",
	"MERGE_TYPE": "How the package is merged: `source`, `binary`, or `buildonly`.",
}

var ebuildVariables = map[string]string{
	"EAPI":         "Ebuild API version this ebuild is written against.",
	"DESCRIPTION":  "Short single-line description of the package.",
	"HOMEPAGE":     "Upstream URLs of the package, space separated.",
	"SRC_URI":      "Download locations of the source archives.",
	"LICENSE":      "Licenses the package is distributed under.",
	"SLOT":         "Slot the package installs into; `0` when unslotted.",
	"KEYWORDS":     "Architectures the ebuild is tested on; cros-workon ebuilds use `~*`.",
	"IUSE":         "USE flags the ebuild honors; a leading `+` enables a flag by default.",
	"REQUIRED_USE": "Constraints between USE flags, checked before the build.",
	"RESTRICT":     "Portage features to disable for this package, e.g. `mirror` or `test`.",
	"PROPERTIES":   "Special package properties; live ebuilds set `live`.",
	"DEPEND":       "Build-time dependencies installed into the sysroot.",
	"BDEPEND":      "Build-time dependencies executed on the build host.",
	"RDEPEND":      "Runtime dependencies of the installed package.",
	"PDEPEND":      "Runtime dependencies that may be merged after the package.",
	"IDEPEND":      "Install-time dependencies executed on the build host.",
	"S":            "Directory the source phases run in; defaults to `${WORKDIR}/${P}`.",
	"DOCS":         "Files installed into the documentation directory by default.",
}

var workonVariables = map[string]string{
	"CROS_WORKON_PROJECT":           "Git project names to fetch, as listed in the manifest.",
	"CROS_WORKON_LOCALNAME":         "Paths of the source checkouts relative to `src/`; non chromeos-base packages resolve under `src/third_party/`.",
	"CROS_WORKON_SUBTREE":           "Space-separated subtrees of the checkout the package uses; only these are copied into the build.",
	"CROS_WORKON_COMMIT":            "Commit hashes pinned by the uprev process; unset on 9999 ebuilds.",
	"CROS_WORKON_TREE":              "Content hashes of the pinned subtrees, used for incremental builds.",
	"CROS_WORKON_DESTDIR":           "Directories under `${S}` the sources are copied to.",
	"CROS_WORKON_REPO":              "Git server the projects are fetched from.",
	"CROS_WORKON_EGIT_BRANCH":       "Branch to fetch when tracking a branch instead of a pinned commit.",
	"CROS_WORKON_USE_VCSID":         "Expose the VCSID of the source checkout to the build.",
	"CROS_WORKON_MANUAL_UPREV":      "Exclude the package from automatic uprevving by the builders.",
	"CROS_WORKON_OUTOFTREE_BUILD":   "Build straight from the source checkout instead of copying it.",
	"CROS_WORKON_INCREMENTAL_BUILD": "Reuse build artifacts between emerges of the package.",
	"CROS_WORKON_OPTIONAL_CHECKOUT": "Shell condition deciding whether each project checkout is required.",
}

var keywords = buildKeywords()

func buildKeywords() map[string]Keyword {
	m := make(map[string]Keyword)
	add := func(kind KeywordKind, entries map[string]string) {
		for name, doc := range entries {
			m[name] = Keyword{Name: name, Kind: kind, Doc: doc}
		}
	}
	add(KeywordPhaseFunction, phaseFunctions)
	add(KeywordReadOnlyVariable, readOnlyVariables)
	add(KeywordEbuildVariable, ebuildVariables)
	add(KeywordWorkonVariable, workonVariables)
	return m
}

// LookupKeyword resolves a word to its documentation entry.
func LookupKeyword(word string) (Keyword, bool) {
	k, ok := keywords[word]
	return k, ok
}
