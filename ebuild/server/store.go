// Package server implements the ebuild language server: a store of
// open documents, an index of eclass documentation, and the LSP
// handlers tying them to an editor.
package server

import (
	"sync"

	"github.com/ogiekako/ebuildls/ebuild/parser"
)

// Store holds the open documents of one editing session.
type Store struct {
	mu    sync.RWMutex
	files map[string]*FileInfo
}

// FileInfo is one open document and what the last parse made of it.
// Doc is nil when the parse failed; ParseErr then says why.
type FileInfo struct {
	Path     string
	Text     string
	Index    *parser.PositionIndex
	Doc      *parser.Document
	ParseErr error
}

func NewStore() *Store {
	return &Store{files: make(map[string]*FileInfo)}
}

// UpdateFile replaces the stored text of path and reparses it. The
// entry is kept even when the parse fails, so positional features
// still work on broken documents.
func (s *Store) UpdateFile(path, text string) *FileInfo {
	doc, err := parser.Parse(text)
	info := &FileInfo{
		Path:     path,
		Text:     text,
		Index:    parser.NewPositionIndex(text),
		Doc:      doc,
		ParseErr: err,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = info
	return info
}

func (s *Store) GetFile(path string) *FileInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.files[path]
}

func (s *Store) RemoveFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
}
