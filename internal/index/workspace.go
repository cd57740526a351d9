package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-ini/ini"
	"go.uber.org/zap"
)

// Workspace is the shared, concurrently-read / serially-written index: the
// per-file map plus the Lookup Tables derived from it. It is protected by
// one coarse readers-writer lock — a finer-grained alternative would
// complicate diff atomicity and isn't warranted at workspace scales —
// grounded on buflsp/workspace.go's own RWMutex-guarded symbol table.
type Workspace struct {
	mu     sync.RWMutex
	files  map[IndexFileRef]*IndexFile
	tables *Tables
	logger *zap.Logger
}

// NewWorkspace returns an empty workspace index.
func NewWorkspace(logger *zap.Logger) *Workspace {
	return &Workspace{
		files:  make(map[IndexFileRef]*IndexFile),
		tables: NewTables(),
		logger: logger,
	}
}

// ApplyFile replaces the prior IndexFile at file.Path's ref (if any) and
// atomically updates the lookup tables with the resulting diff. The file
// write lock is held only for the duration of one file's commit.
func (w *Workspace) ApplyFile(file *IndexFile) {
	ref := NewIndexFileRef(file.Path)
	w.mu.Lock()
	defer w.mu.Unlock()

	var oldSymbols []*IndexSymbol
	if old, ok := w.files[ref]; ok {
		oldSymbols = old.Symbols
	}
	diff := ComputeDiff(oldSymbols, file.Symbols)
	w.files[ref] = file
	w.tables.Update(diff, ref)
}

// RemoveFile models a file deletion as a diff against an empty file: every
// symbol the old file held is retracted, nothing replaces it.
func (w *Workspace) RemoveFile(path string) {
	ref := NewIndexFileRef(path)
	w.mu.Lock()
	defer w.mu.Unlock()

	old, ok := w.files[ref]
	if !ok {
		return
	}
	diff := ComputeDiff(old.Symbols, nil)
	delete(w.files, ref)
	w.tables.Update(diff, ref)
}

// Resolve re-derives the live symbol a ref points to.
func (w *Workspace) Resolve(ref IndexSymbolRef) (*IndexSymbol, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return ref.Resolve(w.files)
}

// Class looks up a class by unqualified name.
func (w *Workspace) Class(name SymbolName) (IndexSymbolRef, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.tables.Class(name)
}

// Method looks up every ref of kind registered under name.
func (w *Workspace) Method(kind MethodKind, name SymbolName) []IndexSymbolRef {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]IndexSymbolRef(nil), w.tables.Method(kind, name)...)
}

// Property looks up every property ref registered under name.
func (w *Workspace) Property(name SymbolName) []IndexSymbolRef {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]IndexSymbolRef(nil), w.tables.Property(name)...)
}

// ClassNames returns every registered class name, for completion listing.
func (w *Workspace) ClassNames() []SymbolName {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.tables.ClassNames()
}

// MethodNames returns every name registered under kind's multimap.
func (w *Workspace) MethodNames(kind MethodKind) []SymbolName {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.tables.MethodNames(kind)
}

// PropertyNames returns every registered property name.
func (w *Workspace) PropertyNames() []SymbolName {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.tables.PropertyNames()
}

// IsKnownClass reports whether name is currently a registered class. Used
// by the Syntax Token Map's cross-index filter.
func (w *Workspace) IsKnownClass(name SymbolName) bool {
	_, ok := w.Class(name)
	return ok
}

// IsKnownMethod reports whether name is registered under any method kind.
func (w *Workspace) IsKnownMethod(name SymbolName) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for kind := range w.tables.methodLookup {
		if len(w.tables.methodLookup[kind][name]) > 0 {
			return true
		}
	}
	return false
}

// File returns the currently committed IndexFile for ref, if any.
func (w *Workspace) File(ref IndexFileRef) (*IndexFile, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	f, ok := w.files[ref]
	return f, ok
}

// Descriptor is the parsed form of a workspace's *.sws descriptor: a
// version tag and a set of project main-file paths resolved relative to
// <root>/AppSrc.
type Descriptor struct {
	Root     string
	Version  string
	Projects []string
}

type jsonDescriptor struct {
	DF       json.Number `json:"df"`
	Projects []string    `json:"projects"`
}

// LoadWorkspaceDescriptor reads root's *.sws descriptor, trying JSON
// `{"df": <number>, "projects": [...]}` first and falling back to the
// historical INI shape (`[Properties] Version=`, `[Projects]`). A missing
// or malformed descriptor falls back to an empty workspace rooted at
// root — this is never an error the caller must handle.
func LoadWorkspaceDescriptor(root string, logger *zap.Logger) *Descriptor {
	matches, _ := filepath.Glob(filepath.Join(root, "*.sws"))
	if len(matches) == 0 {
		return &Descriptor{Root: root}
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		logger.Sugar().Warnf("index: read workspace descriptor %s: %v", matches[0], err)
		return &Descriptor{Root: root}
	}
	if d, perr := parseJSONDescriptor(root, data); perr == nil {
		return d
	}
	if d, perr := parseINIDescriptor(root, data); perr == nil {
		return d
	}
	logger.Sugar().Warnf("index: malformed workspace descriptor %s, falling back to empty workspace", matches[0])
	return &Descriptor{Root: root}
}

func parseJSONDescriptor(root string, data []byte) (*Descriptor, error) {
	var jd jsonDescriptor
	if err := json.Unmarshal(data, &jd); err != nil {
		return nil, err
	}
	if jd.Projects == nil {
		return nil, fmt.Errorf("index: no \"projects\" key")
	}
	return &Descriptor{
		Root:     root,
		Version:  jd.DF.String(),
		Projects: resolveProjectPaths(root, jd.Projects),
	}, nil
}

func parseINIDescriptor(root string, data []byte) (*Descriptor, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, err
	}
	version := cfg.Section("Properties").Key("Version").String()
	var projects []string
	for _, key := range cfg.Section("Projects").Keys() {
		projects = append(projects, key.Value())
	}
	return &Descriptor{
		Root:     root,
		Version:  version,
		Projects: resolveProjectPaths(root, projects),
	}, nil
}

func resolveProjectPaths(root string, relative []string) []string {
	out := make([]string, len(relative))
	for i, p := range relative {
		out[i] = filepath.Join(root, "AppSrc", p)
	}
	return out
}
