package index

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dataflex-tools/dflsp/internal/syntax"
)

// State is the Indexer's lifecycle stage.
type State int

const (
	StateInitializing State = iota
	StateInitialIndexing
	StateInactive
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "Initializing"
	case StateInitialIndexing:
		return "InitialIndexing"
	case StateInactive:
		return "Inactive"
	default:
		return "Unknown"
	}
}

// Observer is notified of Indexer state transitions. The one prescribed use
// is the Document Engine rebuilding every open document's token map once
// the index reaches Inactive; that hook must
// run as a scheduled task, not inline under the index lock, which is why
// Observer methods here are plain callbacks invoked outside any lock the
// Indexer itself holds.
type Observer interface {
	OnStateChange(State)
}

// recognizedExtensions are the target-language file extensions treated as
// indexable.
var recognizedExtensions = map[string]bool{
	"pkg": true,
	"vw":  true,
	"wo":  true,
	"sl":  true,
	"dd":  true,
}

func isIndexable(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return recognizedExtensions[ext]
}

// Indexer walks workspace and system paths in parallel, parses each
// eligible file, extracts its symbols, and commits them to a Workspace.
// Grounded on buflsp/workspace.go's parallel WalkFileInfos + atomic
// per-file commit, with parallelism via golang.org/x/sync/errgroup in place
// of that file's hand-rolled worker pool.
type Indexer struct {
	workspace *Workspace
	logger    *zap.Logger

	mu        sync.Mutex
	state     State
	observers []Observer
}

// NewIndexer returns an Indexer over ws, initially in StateInitializing.
func NewIndexer(ws *Workspace, logger *zap.Logger) *Indexer {
	return &Indexer{workspace: ws, logger: logger, state: StateInitializing}
}

// Observe registers o to be notified of subsequent state transitions.
func (ix *Indexer) Observe(o Observer) {
	ix.mu.Lock()
	ix.observers = append(ix.observers, o)
	ix.mu.Unlock()
}

// State returns the Indexer's current lifecycle stage.
func (ix *Indexer) State() State {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.state
}

func (ix *Indexer) setState(s State) {
	ix.mu.Lock()
	ix.state = s
	observers := append([]Observer(nil), ix.observers...)
	ix.mu.Unlock()
	for _, o := range observers {
		o.OnStateChange(s)
	}
}

// Run performs the initial index over roots, completing once every enqueued
// file task has drained. roots are walked for files in the order given
// (callers put system paths first), but all discovered files then go to one
// shared parallel pool: files of a later root can be committed before those
// of an earlier one, so when two roots declare the same class name, which
// declaration the class lookup ends up holding is not defined.
func (ix *Indexer) Run(ctx context.Context, roots []string) error {
	ix.setState(StateInitializing)
	var files []string
	for _, root := range roots {
		files = append(files, discoverFiles(root)...)
	}

	ix.setState(StateInitialIndexing)
	g, gctx := errgroup.WithContext(ctx)
	for _, path := range files {
		path := path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			ix.IndexFile(path)
			return nil
		})
	}
	err := g.Wait()
	ix.setState(StateInactive)
	return err
}

func discoverFiles(root string) []string {
	var out []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // transient I/O: skip, continue
		}
		if d.IsDir() {
			return nil
		}
		if isIndexable(path) {
			out = append(out, path)
		}
		return nil
	})
	return out
}

// IndexFile parses path and commits its symbols to the workspace. A read
// failure or parse problem is logged and skipped silently, never
// propagated. This is also the entry point a file-system watcher calls on
// create/modify events.
func (ix *Indexer) IndexFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		ix.logger.Sugar().Warnf("index: skip %s: %v", path, err)
		return
	}
	tree := syntax.Parse(data)
	file := ExtractIndexFile(path, tree, data)
	ix.workspace.ApplyFile(file)
}

// RemoveFile removes path's prior contribution to the index. Called by the
// watcher on a delete event.
func (ix *Indexer) RemoveFile(path string) {
	ix.workspace.RemoveFile(path)
}
