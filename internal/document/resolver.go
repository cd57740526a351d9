package document

import (
	"github.com/dataflex-tools/dflsp/internal/index"
	"github.com/dataflex-tools/dflsp/internal/syntax"
)

// ResolveReference implements the Reference Resolver: given a point, it
// identifies the symbol text at the point, classifies the surrounding
// context, and returns zero or more resolved symbol snapshots from ws.
// Kept in this package rather than a standalone
// internal/resolve one: it leans directly on ClassifyContext and the
// cursor helpers the classifier already uses, and splitting it out would
// buy only an import-cycle workaround, not a real separation of concerns
// — the same flat-package shape buflsp itself uses for file.go/resolve.go/
// symbol.go.
func ResolveReference(root *syntax.Node, ws *index.Workspace, point syntax.Point) []index.IndexSymbolSnapshot {
	leaf := syntax.GotoFirstLeafNodeForPoint(root, point)
	if leaf == nil {
		return nil
	}
	ctx := ClassifyContext(root, point)
	switch ctx.Kind {
	case ContextClassReference:
		return resolveClassReference(ws, index.SymbolName(leaf.Text))
	case ContextMethodReference:
		return resolveMethodReference(root, ws, point, index.SymbolName(leaf.Text), toIndexMethodKind(ctx.MethodKind))
	default:
		return nil
	}
}

func toIndexMethodKind(k MethodKind) index.MethodKind {
	switch k {
	case MethodFunction:
		return index.MethodFunction
	case MethodSet:
		return index.MethodSet
	default:
		return index.MethodProcedure
	}
}

// resolveClassReference handles a reference to a class name directly: a
// single-element iterator returning the class lookup, if any.
func resolveClassReference(ws *index.Workspace, name index.SymbolName) []index.IndexSymbolSnapshot {
	ref, ok := ws.Class(name)
	if !ok {
		return nil
	}
	sym, ok := ws.Resolve(ref)
	if !ok {
		return nil
	}
	return []index.IndexSymbolSnapshot{{Path: ref.Path, Symbol: sym}}
}

// resolveMethodReference handles a reference to a method, function, or set
// call. It gathers every same-name candidate across all classes (methods
// of kind, plus — for
// Function/Set — properties of the same name), then, if the call's
// receiver resolves to a concrete class, narrows to the first class in
// that receiver's superclass chain declaring a matching member.
func resolveMethodReference(root *syntax.Node, ws *index.Workspace, point syntax.Point, name index.SymbolName, kind index.MethodKind) []index.IndexSymbolSnapshot {
	candidates := append([]index.IndexSymbolRef(nil), ws.Method(kind, name)...)
	if kind == index.MethodFunction || kind == index.MethodSet {
		candidates = append(candidates, ws.Property(name)...)
	}

	receiverClass, ok := inferReceiverClass(root, point)
	if !ok {
		return snapshotsFromRefs(ws, candidates)
	}

	visited := map[index.SymbolName]bool{}
	for className := receiverClass; className != "" && !visited[className]; {
		visited[className] = true
		classRef, ok := ws.Class(className)
		if !ok {
			break
		}
		classSym, ok := ws.Resolve(classRef)
		if !ok {
			break
		}
		for _, m := range classSym.Members {
			if memberMatches(m, name, kind) {
				return []index.IndexSymbolSnapshot{{Path: m.Path, Symbol: m}}
			}
		}
		className = classSym.Superclass
	}
	// The receiver resolved to a class, but no ancestor declares a matching
	// member: report no definition rather than falling back to every
	// same-named candidate in the workspace, which would misrepresent a
	// resolved-but-absent lookup as an unresolved one.
	return nil
}

func memberMatches(m *index.IndexSymbol, name index.SymbolName, kind index.MethodKind) bool {
	if m.UnqualifiedName() != name {
		return false
	}
	switch m.Variant {
	case index.VariantMethod:
		return m.Kind == kind
	case index.VariantProperty:
		return kind == index.MethodFunction || kind == index.MethodSet
	default:
		return false
	}
}

// inferReceiverClass walks up from the point to the enclosing method-call
// statement and reads its receiver. An absent or "self" (case-insensitive)
// receiver resolves through the enclosing class or object definition; any
// other receiver is not yet supported and reports unresolved.
func inferReceiverClass(root *syntax.Node, point syntax.Point) (index.SymbolName, bool) {
	leaf := syntax.GotoFirstLeafNodeForPoint(root, point)
	call := syntax.EnclosingCallStatement(leaf)
	if call == nil {
		return "", false
	}
	receiver := call.ChildByFieldName("receiver")
	if receiver != nil && !isSelfReceiver(receiver.Text) {
		return "", false
	}

	def := syntax.EnclosingDefinition(call)
	if def == nil {
		return "", false
	}
	switch def.Kind {
	case syntax.KindClassDefinition:
		name := def.ChildByFieldName("name")
		if name == nil {
			return "", false
		}
		return index.SymbolName(name.Text), true
	case syntax.KindObjectDefinition:
		sc := def.ChildByFieldName("superclass")
		if sc == nil {
			return "", false
		}
		return index.SymbolName(sc.Text), true
	default:
		return "", false
	}
}

func isSelfReceiver(text string) bool {
	return fold.String(text) == fold.String("self")
}

func snapshotsFromRefs(ws *index.Workspace, refs []index.IndexSymbolRef) []index.IndexSymbolSnapshot {
	if len(refs) == 0 {
		return nil
	}
	out := make([]index.IndexSymbolSnapshot, 0, len(refs))
	for _, ref := range refs {
		sym, ok := ws.Resolve(ref)
		if !ok {
			continue
		}
		out = append(out, index.IndexSymbolSnapshot{Path: ref.Path, Symbol: sym})
	}
	return out
}
