package document

import (
	"golang.org/x/text/cases"

	"github.com/dataflex-tools/dflsp/internal/syntax"
)

// fold is the case-insensitive comparator context keywords use: "is", "a",
// "send", "object", and the rest of this language's keywords match
// case-insensitively, unlike identifiers. internal/syntax folds ASCII case
// by hand for its own keyword set; this package instead reaches for
// golang.org/x/text/cases so the classifier's own dispatch logic doesn't
// grow a second hand-rolled folder.
var fold = cases.Fold()

func isKeyword(n *syntax.Node, want string) bool {
	return n != nil && n.Kind == syntax.KindKeyword && fold.String(n.Text) == fold.String(want)
}

// MethodKind mirrors internal/index.MethodKind without importing the index
// package from here: the classifier only needs to name which of the three
// slots a point falls in, not resolve symbols.
type MethodKind int

const (
	MethodProcedure MethodKind = iota
	MethodFunction
	MethodSet
)

// ContextKind is the classifier's verdict.
type ContextKind int

const (
	ContextNone ContextKind = iota
	ContextClassReference
	ContextMethodReference
)

// Context is the classifier's full answer: a kind, and — only meaningful
// when Kind is ContextMethodReference — which method kind the slot expects.
type Context struct {
	Kind       ContextKind
	MethodKind MethodKind
}

var noneContext = Context{Kind: ContextNone}

// ClassifyContext descends from the start of point's line to the first
// leaf, then dispatches on that leaf's keyword text.
func ClassifyContext(root *syntax.Node, point syntax.Point) Context {
	lineStart := syntax.Point{Row: point.Row, Column: 0}
	leaf := syntax.GotoFirstLeafNodeForPoint(root, lineStart)
	if leaf == nil || leaf.Kind != syntax.KindKeyword {
		return noneContext
	}

	switch {
	case isKeyword(leaf, "object"):
		return classifyObjectReference(leaf, point)
	case isKeyword(leaf, "send"):
		return classifyMethodReference(leaf, point, MethodProcedure)
	case isKeyword(leaf, "get"):
		return classifyMethodReference(leaf, point, MethodFunction)
	case isKeyword(leaf, "set"):
		return classifyMethodReference(leaf, point, MethodSet)
	default:
		return noneContext
	}
}

func classifyObjectReference(leaf *syntax.Node, point syntax.Point) Context {
	def := leaf.Parent
	if def == nil || def.Kind != syntax.KindObjectDefinition {
		return noneContext
	}
	name := def.ChildByFieldName("name")
	is := def.ChildByFieldName("is")
	a := def.ChildByFieldName("a")
	if name == nil || is == nil || a == nil {
		return noneContext
	}
	if !name.End.Before(point) || !is.End.Before(point) || !a.End.Before(point) {
		return noneContext
	}
	// The target identifier (def.ChildByFieldName("superclass")) may enclose
	// the point, start after it, or be entirely absent — all three still
	// classify as ClassReference.
	return Context{Kind: ContextClassReference}
}

func classifyMethodReference(leaf *syntax.Node, point syntax.Point, kind MethodKind) Context {
	call := leaf.Parent
	if call == nil || call.Kind != syntax.KindCallStatement {
		return noneContext
	}
	if !leaf.End.Before(point) {
		return noneContext
	}
	name := call.ChildByFieldName("name")
	switch {
	case name == nil:
		return Context{Kind: ContextMethodReference, MethodKind: kind}
	case name.Range().Contains(point):
		return Context{Kind: ContextMethodReference, MethodKind: kind}
	case point.Before(name.Start):
		return Context{Kind: ContextMethodReference, MethodKind: kind}
	default:
		return noneContext
	}
}
