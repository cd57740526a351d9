package index

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher re-indexes files on disk changes once the Indexer's initial walk
// has completed. Grounded on buflsp/lsp.go's NewBufLsp, which wires an
// fsnotify.Watcher and consumes its events in a dedicated goroutine.
type Watcher struct {
	fsw     *fsnotify.Watcher
	indexer *Indexer
	logger  *zap.Logger
}

// NewWatcher creates an fsnotify watcher feeding indexer. Call Add for each
// root directory to watch, then Run to start consuming events.
func NewWatcher(indexer *Indexer, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fsw: fsw, indexer: indexer, logger: logger}, nil
}

// Add registers root (and, recursively, every directory beneath it) for
// change notifications.
func (w *Watcher) Add(root string) error {
	return addRecursive(w.fsw, root)
}

// addRecursive walks root and registers every directory beneath it:
// fsnotify watches are not recursive on their own. handle watches any
// directory created afterward the same way.
func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
}

// Run consumes filesystem events until ctx is cancelled or the watcher is
// closed. It is meant to run in its own goroutine, started only after the
// Indexer's initial walk reaches StateInactive.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Sugar().Warnf("index: watcher error: %v", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := addRecursive(w.fsw, event.Name); err != nil {
				w.logger.Sugar().Warnf("index: watch new directory %s: %v", event.Name, err)
			}
			return
		}
	}
	if !isIndexable(event.Name) {
		return
	}
	switch {
	case event.Op&fsnotify.Remove != 0, event.Op&fsnotify.Rename != 0:
		w.indexer.RemoveFile(event.Name)
	case event.Op&fsnotify.Write != 0, event.Op&fsnotify.Create != 0:
		w.indexer.IndexFile(event.Name)
	}
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
