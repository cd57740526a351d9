package document

import (
	"context"

	"github.com/dataflex-tools/dflsp/internal/index"
	"github.com/dataflex-tools/dflsp/internal/syntax"
)

// Change is one entry of an edit_content batch. Range nil means a
// full-document replace; otherwise Text splices into [Range.Start,
// Range.End).
type Change struct {
	Range *syntax.Range
	Text  string
}

// Location names where a resolved symbol lives: the file it was indexed
// from, and its range within that file.
type Location struct {
	File  index.IndexFileRef
	Range syntax.Range
}

// CompletionItemKind tags what a CompletionItem names.
type CompletionItemKind int

const (
	CompletionClass CompletionItemKind = iota
	CompletionMethod
	CompletionProperty
)

// CompletionItem is one candidate returned by code_completion.
type CompletionItem struct {
	Label string
	Kind  CompletionItemKind
}

// Engine is the per-open-document facade (C10): it owns the Line Map, the
// Syntax Tree Host, and the Syntax Token Map for one open document, and
// holds a shared handle to the workspace index without owning any of its
// data. Grounded on buflsp/file.go's file type, which plays the same role
// for a protobuf document.
type Engine struct {
	uri   string
	ws    *index.Workspace
	lock  reentrantMutex
	lines *LineMap
	tree  *TreeHost
	toks  *TokenMap
}

// NewEngine builds a fresh Engine over text, parsing it immediately and
// building its initial token map.
func NewEngine(uri string, text []byte, ws *index.Workspace, lock reentrantMutex) *Engine {
	eng := &Engine{uri: uri, ws: ws, lock: lock, lines: NewLineMap(text), tree: NewTreeHost()}
	eng.tree.ReplaceAll(text)
	eng.rebuildTokenMap()
	return eng
}

// URI returns the editor URI this engine was opened for.
func (e *Engine) URI() string {
	return e.uri
}

// EditContent applies a batch of changes in order, then reparses once and
// rebuilds the token map.
func (e *Engine) EditContent(ctx context.Context, changes []Change) {
	unlock := e.lock.Lock(ctx)
	defer unlock()

	for _, ch := range changes {
		if ch.Range == nil {
			e.lines = NewLineMap([]byte(ch.Text))
			e.tree.ReplaceAll(e.lines.Bytes())
			continue
		}
		edit := e.lines.ReplaceRange(ch.Range.Start, ch.Range.End, ch.Text)
		e.tree.NotifyEdit(edit)
	}
	e.tree.Reparse(e.lines.Bytes())
	e.rebuildTokenMap()
}

// UpdateSyntaxMap rebuilds the token map without reparsing, so that
// cross-index-filtered tokens can be (re)emitted once the indexer reaches
// Inactive, without paying for a reparse the source text never asked for.
func (e *Engine) UpdateSyntaxMap(ctx context.Context) {
	unlock := e.lock.Lock(ctx)
	defer unlock()
	e.rebuildTokenMap()
}

func (e *Engine) rebuildTokenMap() {
	var root *syntax.Node
	if t := e.tree.Tree(); t != nil {
		root = t.Root
	}
	e.toks = BuildTokenMap(root, e.lines.LineCount(), e.ws)
}

// SemanticTokensFull returns the document's full delta-encoded token
// stream.
func (e *Engine) SemanticTokensFull(ctx context.Context) []EncodedToken {
	unlock := e.lock.Lock(ctx)
	defer unlock()
	return e.toks.GetAllTokens()
}

// FindDefinition resolves the symbol at point and returns its first
// location, if any.
func (e *Engine) FindDefinition(ctx context.Context, point syntax.Point) (Location, bool) {
	unlock := e.lock.Lock(ctx)
	defer unlock()

	t := e.tree.Tree()
	if t == nil {
		return Location{}, false
	}
	snaps := ResolveReference(t.Root, e.ws, point)
	if len(snaps) == 0 {
		return Location{}, false
	}
	sym := snaps[0].Symbol
	return Location{File: sym.Location.File, Range: sym.Location.Range}, true
}

// CodeCompletion classifies the context at point and yields class names or
// method/property names per kind.
func (e *Engine) CodeCompletion(ctx context.Context, point syntax.Point) []CompletionItem {
	unlock := e.lock.Lock(ctx)
	defer unlock()

	t := e.tree.Tree()
	if t == nil {
		return nil
	}
	classCtx := ClassifyContext(t.Root, point)
	switch classCtx.Kind {
	case ContextClassReference:
		names := e.ws.ClassNames()
		items := make([]CompletionItem, 0, len(names))
		for _, n := range names {
			items = append(items, CompletionItem{Label: string(n), Kind: CompletionClass})
		}
		return items
	case ContextMethodReference:
		kind := toIndexMethodKind(classCtx.MethodKind)
		var items []CompletionItem
		for _, n := range e.ws.MethodNames(kind) {
			items = append(items, CompletionItem{Label: string(n), Kind: CompletionMethod})
		}
		if kind == index.MethodFunction || kind == index.MethodSet {
			for _, n := range e.ws.PropertyNames() {
				items = append(items, CompletionItem{Label: string(n), Kind: CompletionProperty})
			}
		}
		return items
	default:
		return nil
	}
}

// Hover resolves the symbol at point and returns its doc-comment as
// Markdown, if it has one, wiring textDocument/hover off the same
// resolution path find_definition uses.
func (e *Engine) Hover(ctx context.Context, point syntax.Point) (string, bool) {
	unlock := e.lock.Lock(ctx)
	defer unlock()

	t := e.tree.Tree()
	if t == nil {
		return "", false
	}
	snaps := ResolveReference(t.Root, e.ws, point)
	if len(snaps) == 0 || snaps[0].Symbol.DocComment == "" {
		return "", false
	}
	return snaps[0].Symbol.DocComment, true
}
