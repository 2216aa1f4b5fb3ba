package server

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"

	"github.com/ogiekako/ebuildls/ebuild/eclassdoc"
)

// Eclass is one parsed eclass file.
type Eclass struct {
	Name string
	Path string
	Doc  *eclassdoc.Doc
}

// EclassIndex caches the parsed documentation of every *.eclass file
// under a fixed list of directories. A filesystem watcher rebuilds the
// cache when eclass files change; a debounce timer coalesces bursts
// such as a repo sync touching hundreds of files.
type EclassIndex struct {
	dirs     []string
	debounce time.Duration
	log      commonlog.Logger

	mu   sync.RWMutex
	docs map[string]*Eclass

	watcher *fsnotify.Watcher
	done    chan struct{}
	once    sync.Once
}

// NewEclassIndex scans dirs in lookup order (the first directory
// defining a name wins) and starts watching them. Directories that do
// not exist are skipped.
func NewEclassIndex(dirs []string) (*EclassIndex, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	idx := &EclassIndex{
		dirs:     dirs,
		debounce: 200 * time.Millisecond,
		log:      commonlog.GetLogger("ebuildls.eclasses"),
		watcher:  watcher,
		done:     make(chan struct{}),
	}
	idx.rebuild()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			idx.log.Debugf("not watching %s: %s", dir, err.Error())
		}
	}
	go idx.watch()

	return idx, nil
}

// Lookup returns the cached eclass with the given name.
func (x *EclassIndex) Lookup(name string) (*Eclass, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	ec, ok := x.docs[name]
	return ec, ok
}

// Len returns the number of indexed eclasses.
func (x *EclassIndex) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.docs)
}

// Close stops the watcher. The cached entries stay readable.
func (x *EclassIndex) Close() error {
	var err error
	x.once.Do(func() {
		close(x.done)
		err = x.watcher.Close()
	})
	return err
}

func (x *EclassIndex) rebuild() {
	docs := make(map[string]*Eclass)
	for _, dir := range x.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := strings.TrimSuffix(entry.Name(), ".eclass")
			if entry.IsDir() || name == entry.Name() {
				continue
			}
			if _, ok := docs[name]; ok {
				// An earlier directory already defines it.
				continue
			}
			path := filepath.Join(dir, entry.Name())
			src, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			docs[name] = &Eclass{Name: name, Path: path, Doc: eclassdoc.Parse(src)}
		}
	}

	x.mu.Lock()
	x.docs = docs
	x.mu.Unlock()
	x.log.Debugf("indexed %d eclasses", len(docs))
}

func (x *EclassIndex) watch() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-x.done:
			return
		case event, ok := <-x.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".eclass") {
				continue
			}
			x.log.Debugf("eclass changed: %s", event.Name)
			if timer == nil {
				timer = time.NewTimer(x.debounce)
				timerC = timer.C
			} else {
				timer.Reset(x.debounce)
			}
		case <-timerC:
			timer, timerC = nil, nil
			x.rebuild()
		case err, ok := <-x.watcher.Errors:
			if !ok {
				return
			}
			x.log.Errorf("watch: %s", err.Error())
		}
	}
}
