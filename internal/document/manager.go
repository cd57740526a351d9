package document

import (
	"sync"

	"github.com/dataflex-tools/dflsp/internal/index"
)

// Manager tracks every open document, keyed by editor URI. Grounded on
// buflsp/file_manager.go's fileManager: a plain map guarded by its own
// lock, with Open/Get/Close mirroring that type's surface. We drop the
// refcounting that fileManager layers on top (buflsp shares file state
// across open editors and cross-file imports; a single document here has
// exactly one owner, its open editor, so open/close is a straight
// create/delete).
type Manager struct {
	mu      sync.Mutex
	byURI   map[string]*Engine
	ws      *index.Workspace
	mutexes mutexPool
}

// NewManager returns an empty document manager serving queries against ws.
func NewManager(ws *index.Workspace) *Manager {
	return &Manager{byURI: make(map[string]*Engine), ws: ws}
}

// Open creates a new Engine for uri over text, replacing any prior one
// (the editor protocol never sends didOpen twice for the same URI without
// an intervening didClose, but replacing rather than erroring keeps this
// robust to a misbehaving client).
func (mgr *Manager) Open(uri string, text []byte) *Engine {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	eng := NewEngine(uri, text, mgr.ws, mgr.mutexes.newMutex())
	mgr.byURI[uri] = eng
	return eng
}

// Get returns the Engine for uri, or nil if it is not open.
func (mgr *Manager) Get(uri string) *Engine {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.byURI[uri]
}

// Close drops uri's Engine.
func (mgr *Manager) Close(uri string) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	delete(mgr.byURI, uri)
}

// All returns every currently open Engine, for the indexer's
// Inactive-transition token-map refresh broadcast, the one place indexer
// events cross into the document domain.
func (mgr *Manager) All() []*Engine {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	out := make([]*Engine, 0, len(mgr.byURI))
	for _, eng := range mgr.byURI {
		out = append(out, eng)
	}
	return out
}
