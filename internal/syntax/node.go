package syntax

// Node kinds produced by the parser. Block constructs (object/class/procedure/
// function definitions) are named after the source construct they represent;
// everything else (keyword, identifier, punctuation, comment) names the
// lexical category of a leaf, mirroring how a tree-sitter grammar would name
// its terminals.
const (
	KindSourceFile          = "source_file"
	KindUseStatement        = "use_statement"
	KindObjectDefinition    = "object_definition"
	KindClassDefinition     = "class_definition"
	KindProcedureDefinition = "procedure_definition"
	KindFunctionDefinition  = "function_definition"
	KindPropertyDefinition  = "property_definition"
	KindCallStatement       = "method_call_statement"
	KindExpressionStatement = "expression_statement"

	KindKeyword     = "keyword"
	KindIdentifier  = "identifier"
	KindPunctuation = "punctuation"
	KindComment     = "comment"
)

// Node is one element of the concrete syntax tree. Leaves (keyword,
// identifier, punctuation, comment) carry Text; interior nodes carry
// Children and, for constructs the parser gives names to, Fields.
//
// Fields mimics tree-sitter's ChildByFieldName: named children such as
// "name", "superclass", "receiver", and "keyword" let callers navigate a
// construct without guessing positional child indices.
type Node struct {
	Kind   string
	Start  Point
	End    Point
	Text   string
	Parent *Node

	Children []*Node
	Fields   map[string]*Node
}

// Range returns the node's source range.
func (n *Node) Range() Range {
	return Range{Start: n.Start, End: n.End}
}

// ChildByFieldName returns the named child, or nil if the node has none by
// that name. Only defined for interior nodes produced by the parser with a
// Fields map (definitions and call statements); leaves always return nil.
func (n *Node) ChildByFieldName(name string) *Node {
	if n == nil || n.Fields == nil {
		return nil
	}
	return n.Fields[name]
}

// ChildCount returns the number of positional children.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.Children)
}

// Child returns the i'th positional child, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// IsLeaf reports whether n has no positional children.
func (n *Node) IsLeaf() bool {
	return n != nil && len(n.Children) == 0
}

// IsKeyword reports whether n is a keyword leaf whose text case-insensitively
// equals one of want. Source-language context keywords ("is", "a", "send",
// "object", ...) are matched case-insensitively, unlike identifiers.
func (n *Node) IsKeyword(want ...string) bool {
	if n == nil || n.Kind != KindKeyword {
		return false
	}
	for _, w := range want {
		if equalFold(n.Text, w) {
			return true
		}
	}
	return false
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// Tree is a parsed document: a root node plus the source it was parsed from.
// A real tree-sitter Tree additionally knows how to apply byte-range edits to
// itself cheaply before a re-parse; ours records the same edit but always
// performs a full re-lex (see Parser.Parse), which keeps parse-then-render
// round-tripping trivially true at the cost of incremental-parse
// performance.
type Tree struct {
	Root   *Node
	Source []byte
}

// EditInput describes one source-level edit, in the shape tree-sitter's
// Tree.Edit expects: byte offsets plus the corresponding points.
type EditInput struct {
	StartByte  int
	OldEndByte int
	NewEndByte int
	StartPoint Point
	OldEndPoint Point
	NewEndPoint Point
}

// Edit records that an edit occurred. This implementation does not attempt
// incremental node reuse (see Tree); it exists so callers can follow
// the same "notify the prior tree, then re-parse" protocol a real
// incremental parser requires, and so future work can add reuse without
// changing call sites.
func (t *Tree) Edit(EditInput) {}
