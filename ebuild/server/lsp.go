package server

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ogiekako/ebuildls/ebuild"
	"github.com/ogiekako/ebuildls/ebuild/eclassdoc"
	"github.com/ogiekako/ebuildls/ebuild/parser"
	"github.com/ogiekako/ebuildls/project"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "ebuildls"

type LSPServer struct {
	store    *Store
	checkout *project.Checkout
	eclasses *EclassIndex
	handler  protocol.Handler
	server   *glspserver.Server
	version  string
	log      commonlog.Logger
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		store:   NewStore(),
		version: version,
		log:     commonlog.GetLogger(lsName),
	}

	ls.handler = protocol.Handler{
		Initialize:               ls.initialize,
		Initialized:              ls.initialized,
		Shutdown:                 ls.shutdown,
		SetTrace:                 ls.setTrace,
		TextDocumentDidOpen:      ls.textDocumentDidOpen,
		TextDocumentDidChange:    ls.textDocumentDidChange,
		TextDocumentDidClose:     ls.textDocumentDidClose,
		TextDocumentDidSave:      ls.textDocumentDidSave,
		TextDocumentHover:        ls.textDocumentHover,
		TextDocumentDocumentLink: ls.textDocumentDocumentLink,
		TextDocumentDefinition:   ls.textDocumentDefinition,
	}

	ls.server = glspserver.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) RunTCP(address string) error {
	return ls.server.RunTCP(address)
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	checkout, err := project.LoadFrom(rootDir)
	if err != nil {
		// Not inside a checkout: parsing and diagnostics still work,
		// eclass and source lookups stay off.
		ls.log.Infof("%s", err.Error())
	} else {
		ls.checkout = checkout
		ls.log.Infof("checkout at %s", checkout.Root)
	}

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if ls.checkout == nil {
		return nil
	}
	idx, err := NewEclassIndex(ls.checkout.EclassDirs(""))
	if err != nil {
		ls.log.Errorf("eclass index: %s", err.Error())
		return nil
	}
	ls.eclasses = idx
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.eclasses != nil {
		ls.eclasses.Close()
	}
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	info := ls.store.UpdateFile(path, params.TextDocument.Text)
	ls.publishDiagnostics(ctx, params.TextDocument.URI, info)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			info := ls.store.UpdateFile(path, whole.Text)
			ls.publishDiagnostics(ctx, params.TextDocument.URI, info)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.store.RemoveFile(path)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		info := ls.store.UpdateFile(path, *params.Text)
		ls.publishDiagnostics(ctx, params.TextDocument.URI, info)
	} else if content, err := os.ReadFile(path); err == nil {
		info := ls.store.UpdateFile(path, string(content))
		ls.publishDiagnostics(ctx, params.TextDocument.URI, info)
	}
	return nil
}

func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, info *FileInfo) {
	diagnostics := []protocol.Diagnostic{}
	var perr *parser.ParseError
	if errors.As(info.ParseErr, &perr) {
		severity := protocol.DiagnosticSeverityError
		source := lsName
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    errorRange(info.Index, perr),
			Severity: &severity,
			Source:   &source,
			Message:  perr.Error(),
		})
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// errorRange covers the whole line of the error position, so an
// unterminated construct reported at end of file still gets a visible
// marker.
func errorRange(index *parser.PositionIndex, perr *parser.ParseError) protocol.Range {
	if start, end, ok := index.LineRange(perr.Pos.Line); ok {
		return toProtocolRange(index.RangeBetween(start, end))
	}
	return protocol.Range{Start: toProtocolPosition(perr.Pos), End: toProtocolPosition(perr.Pos)}
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	markdown, r, ok := ls.hover(path, fromProtocolPosition(params.Position))
	if !ok {
		return nil, nil
	}
	rng := toProtocolRange(r)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: markdown,
		},
		Range: &rng,
	}, nil
}

// hover resolves the documentation shown at pos. Keyword hovers only
// need the raw text, so they keep working when the document failed to
// parse; everything that reads the parsed structure degrades to a miss.
func (ls *LSPServer) hover(path string, pos parser.Position) (string, parser.Range, bool) {
	info := ls.store.GetFile(path)
	if info == nil {
		return "", parser.Range{}, false
	}

	if info.Doc != nil {
		if inherit, ok := ebuild.InheritAt(info.Doc, pos); ok {
			if ec, ok := ls.lookupEclass(inherit.Name, path); ok {
				return eclassdoc.Format(ec.Doc), inherit.Range, true
			}
			return "", parser.Range{}, false
		}
	}

	word, wordRange, ok := ebuild.WordAt(info.Text, info.Index, pos)
	if !ok {
		return "", parser.Range{}, false
	}

	// An inherited eclass that documents the word wins over the
	// static tables.
	if info.Doc != nil {
		if markdown, ok := ls.inheritedDoc(info.Doc, word, path); ok {
			return markdown, wordRange, true
		}
	}

	if kw, ok := ebuild.LookupKeyword(word); ok {
		return kw.Doc, wordRange, true
	}

	return "", parser.Range{}, false
}

// inheritedDoc finds documentation for word among the eclasses the
// document inherits, in document order.
func (ls *LSPServer) inheritedDoc(doc *parser.Document, word, path string) (string, bool) {
	for _, inh := range doc.Inherits {
		ec, ok := ls.lookupEclass(inh.Name, path)
		if !ok {
			continue
		}
		if v, ok := ec.Doc.Variable(word); ok {
			return eclassdoc.FormatVariable(ec.Doc, v), true
		}
		if f, ok := ec.Doc.Function(word); ok {
			return eclassdoc.FormatFunction(ec.Doc, f), true
		}
	}
	return "", false
}

func (ls *LSPServer) textDocumentDocumentLink(ctx *glsp.Context, params *protocol.DocumentLinkParams) ([]protocol.DocumentLink, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	return ls.documentLinks(path), nil
}

// documentLinks collects links for the values of the configured link
// variables and for every inherited eclass name.
func (ls *LSPServer) documentLinks(path string) []protocol.DocumentLink {
	info := ls.store.GetFile(path)
	if info == nil || info.Doc == nil || ls.checkout == nil {
		return nil
	}

	links := ls.sourceLinks(info, path)
	for _, inh := range info.Doc.Inherits {
		ec, ok := ls.lookupEclass(inh.Name, path)
		if !ok {
			continue
		}
		links = append(links, fileLink(inh.Range, ec.Path))
	}
	return links
}

func (ls *LSPServer) sourceLinks(info *FileInfo, path string) []protocol.DocumentLink {
	pkg, ok := project.InfoFromPath(path)
	if !ok {
		return nil
	}
	localnames, _ := info.Doc.GetStrings("CROS_WORKON_LOCALNAME")

	var links []protocol.DocumentLink
	for _, name := range ls.checkout.Config.LinkVariableNames() {
		values, ok := info.Doc.GetStringValues(name)
		if !ok {
			continue
		}
		for i, sv := range values {
			target, ok := ls.linkTarget(name, sv.Value, i, pkg, localnames)
			if !ok {
				continue
			}
			links = append(links, fileLink(sv.Range, target))
		}
	}
	return links
}

// linkTarget resolves one link variable value to an existing directory.
// CROS_WORKON_SUBTREE values are relative to the localname with the
// same array index; a space-separated subtree list shares one range,
// so it links to the tree itself.
func (ls *LSPServer) linkTarget(variable, value string, i int, pkg project.PackageInfo, localnames []string) (string, bool) {
	if value == "" {
		return "", false
	}
	var target string
	if variable == "CROS_WORKON_SUBTREE" {
		if i >= len(localnames) {
			return "", false
		}
		base := ls.checkout.SourceDir(pkg.Category, localnames[i])
		switch fields := strings.Fields(value); len(fields) {
		case 0:
			return "", false
		case 1:
			target = filepath.Join(base, fields[0])
		default:
			target = base
		}
	} else {
		target = ls.checkout.SourceDir(pkg.Category, value)
	}
	if !isDir(target) {
		return "", false
	}
	return target, true
}

func (ls *LSPServer) textDocumentDefinition(ctx *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	target, ok := ls.definition(path, fromProtocolPosition(params.Position))
	if !ok {
		return nil, nil
	}
	return protocol.Location{URI: pathToURI(target)}, nil
}

// definition jumps from an inherit name to the eclass file defining it.
func (ls *LSPServer) definition(path string, pos parser.Position) (string, bool) {
	info := ls.store.GetFile(path)
	if info == nil || info.Doc == nil {
		return "", false
	}
	inherit, ok := ebuild.InheritAt(info.Doc, pos)
	if !ok {
		return "", false
	}
	ec, ok := ls.lookupEclass(inherit.Name, path)
	if !ok {
		return "", false
	}
	return ec.Path, true
}

// lookupEclass resolves name against the checkout, preferring the
// cached index when it points at the same file. forFile gives the
// lookup the overlay of the document being served.
func (ls *LSPServer) lookupEclass(name, forFile string) (*Eclass, bool) {
	if ls.checkout == nil {
		return nil, false
	}
	path, ok := ls.checkout.EclassPath(name, forFile)
	if !ok {
		return nil, false
	}
	if ls.eclasses != nil {
		if ec, ok := ls.eclasses.Lookup(name); ok && ec.Path == path {
			return ec, true
		}
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return &Eclass{Name: name, Path: path, Doc: eclassdoc.Parse(src)}, true
}

func fileLink(r parser.Range, target string) protocol.DocumentLink {
	uri := pathToURI(target)
	tooltip := target
	return protocol.DocumentLink{
		Range:   toProtocolRange(r),
		Target:  &uri,
		Tooltip: &tooltip,
	}
}

func toProtocolRange(r parser.Range) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(r.Start),
		End:   toProtocolPosition(r.End),
	}
}

func toProtocolPosition(p parser.Position) protocol.Position {
	return protocol.Position{Line: p.Line, Character: p.Character}
}

func fromProtocolPosition(p protocol.Position) parser.Position {
	return parser.Position{Line: p.Line, Character: p.Character}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) protocol.URI {
	return "file://" + path
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
