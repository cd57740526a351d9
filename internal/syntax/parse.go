package syntax

import "strings"

// Parse builds a concrete syntax tree from source. The language this server
// edits is strongly line-oriented (one statement or block-header per line),
// so the parser groups tokens by row and only then nests blocks by keyword,
// rather than doing general recursive-descent over a flat token stream.
func Parse(source []byte) *Tree {
	lines := groupLines(scan(source))

	root := &Node{Kind: KindSourceFile}
	type frame struct {
		node      *Node
		closeWord string // lower-case keyword text that closes this frame
	}
	stack := []frame{{node: root}}

	attach := func(n *Node) {
		top := stack[len(stack)-1].node
		n.Parent = top
		top.Children = append(top.Children, n)
	}

	for _, ln := range lines {
		if len(ln) == 0 {
			continue
		}
		head := ln[0]
		switch {
		case head.kind == KindKeyword && equalFold(head.text, "object"):
			def := newBlockHeader(KindObjectDefinition, ln)
			attach(def)
			stack = append(stack, frame{node: def, closeWord: "end_object"})

		case head.kind == KindKeyword && equalFold(head.text, "class"):
			def := newBlockHeader(KindClassDefinition, ln)
			attach(def)
			stack = append(stack, frame{node: def, closeWord: "end_class"})

		case head.kind == KindKeyword && equalFold(head.text, "procedure"):
			def := newMethodHeader(KindProcedureDefinition, ln)
			attach(def)
			stack = append(stack, frame{node: def, closeWord: "end_procedure"})

		case head.kind == KindKeyword && equalFold(head.text, "function"):
			def := newMethodHeader(KindFunctionDefinition, ln)
			attach(def)
			stack = append(stack, frame{node: def, closeWord: "end_function"})

		case head.kind == KindKeyword && isBlockCloser(head.text):
			word := strings.ToLower(head.text)
			if len(stack) > 1 && stack[len(stack)-1].closeWord == word {
				top := stack[len(stack)-1]
				endKw := leaf(KindKeyword, head)
				endKw.Parent = top.node
				top.node.Children = append(top.node.Children, endKw)
				top.node.Fields["end_keyword"] = endKw
				top.node.End = head.end
				stack = stack[:len(stack)-1]
			} else {
				// Unmatched closer: treat as a bare statement so a single
				// syntax error doesn't corrupt the rest of the tree.
				attach(newStatement(ln))
			}

		case head.kind == KindKeyword && equalFold(head.text, "property"):
			attach(newPropertyDefinition(ln))

		case head.kind == KindKeyword && (equalFold(head.text, "send") || equalFold(head.text, "get") || equalFold(head.text, "set")):
			attach(newCallStatement(ln))

		case head.kind == KindKeyword && equalFold(head.text, "use"):
			attach(newUseStatement(ln))

		default:
			attach(newStatement(ln))
		}
	}

	// Close any still-open blocks at EOF; malformed input must degrade
	// gracefully here, not panic.
	for len(stack) > 1 {
		top := stack[len(stack)-1]
		if len(top.node.Children) > 0 {
			top.node.End = top.node.Children[len(top.node.Children)-1].End
		}
		stack = stack[:len(stack)-1]
	}

	if len(root.Children) > 0 {
		root.End = root.Children[len(root.Children)-1].End
	}
	return &Tree{Root: root, Source: source}
}

func isBlockCloser(text string) bool {
	switch strings.ToLower(text) {
	case "end_object", "end_class", "end_procedure", "end_function":
		return true
	}
	return false
}

func groupLines(tokens []token) [][]token {
	var lines [][]token
	curRow := -1
	var cur []token
	for _, t := range tokens {
		if t.kind == KindComment {
			continue // comments never participate in block structure
		}
		if t.start.Row != curRow {
			if cur != nil {
				lines = append(lines, cur)
			}
			cur = nil
			curRow = t.start.Row
		}
		cur = append(cur, t)
	}
	if cur != nil {
		lines = append(lines, cur)
	}
	return lines
}

func leaf(kind string, t token) *Node {
	return &Node{Kind: kind, Text: t.text, Start: t.start, End: t.end}
}

func leavesOf(line []token) []*Node {
	nodes := make([]*Node, len(line))
	for i, t := range line {
		nodes[i] = leaf(t.kind, t)
	}
	return nodes
}

func attachChildren(parent *Node, children []*Node) {
	for _, c := range children {
		c.Parent = parent
	}
	parent.Children = append(parent.Children, children...)
}

// newBlockHeader builds an object_definition/class_definition node from its
// opening line: KEYWORD name "is" "a" superclass.
func newBlockHeader(kind string, line []token) *Node {
	n := &Node{Kind: kind, Start: line[0].start, End: line[len(line)-1].end, Fields: map[string]*Node{}}
	children := leavesOf(line)
	attachChildren(n, children)

	n.Fields["keyword"] = children[0]
	if len(children) > 1 && children[1].Kind == KindIdentifier {
		n.Fields["name"] = children[1]
	}
	for i, c := range children {
		if c.IsKeyword("is") {
			n.Fields["is"] = c
		}
		if c.IsKeyword("a") {
			n.Fields["a"] = c
			if i+1 < len(children) && children[i+1].Kind == KindIdentifier {
				n.Fields["superclass"] = children[i+1]
			}
		}
	}
	return n
}

// newMethodHeader builds a procedure_definition/function_definition node
// from its opening line: KEYWORD ["Set"|"Get"] name [args...]. The optional
// qualifier distinguishes a setter ("Procedure Set psName ...") from a plain
// procedure; callers that need a MethodKind read Fields["qualifier"].
func newMethodHeader(kind string, line []token) *Node {
	n := &Node{Kind: kind, Start: line[0].start, End: line[len(line)-1].end, Fields: map[string]*Node{}}
	children := leavesOf(line)
	attachChildren(n, children)

	n.Fields["keyword"] = children[0]
	i := 1
	if i < len(children) && children[i].Kind == KindKeyword &&
		(equalFold(children[i].Text, "set") || equalFold(children[i].Text, "get")) {
		n.Fields["qualifier"] = children[i]
		i++
	}
	if i < len(children) && children[i].Kind == KindIdentifier {
		n.Fields["name"] = children[i]
	}
	return n
}

// newPropertyDefinition builds a single-line property_definition node:
// "Property" type name.
func newPropertyDefinition(line []token) *Node {
	n := &Node{Kind: KindPropertyDefinition, Start: line[0].start, End: line[len(line)-1].end, Fields: map[string]*Node{}}
	children := leavesOf(line)
	attachChildren(n, children)

	n.Fields["keyword"] = children[0]
	idents := identifiersOf(children)
	if len(idents) > 0 {
		n.Fields["type"] = idents[0]
	}
	if len(idents) > 1 {
		n.Fields["name"] = idents[len(idents)-1]
	}
	return n
}

// newCallStatement builds a method_call_statement node:
// ("Send"|"Get"|"Set") [receiver "."] name [args...].
func newCallStatement(line []token) *Node {
	n := &Node{Kind: KindCallStatement, Start: line[0].start, End: line[len(line)-1].end, Fields: map[string]*Node{}}
	children := leavesOf(line)
	attachChildren(n, children)

	n.Fields["keyword"] = children[0]
	rest := children[1:]
	if len(rest) >= 3 && (rest[0].Kind == KindIdentifier || rest[0].IsKeyword("self")) && rest[1].Kind == KindPunctuation && rest[1].Text == "." && rest[2].Kind == KindIdentifier {
		n.Fields["receiver"] = rest[0]
		n.Fields["name"] = rest[2]
	} else if len(rest) >= 1 && rest[0].Kind == KindIdentifier {
		n.Fields["name"] = rest[0]
	}
	return n
}

// newUseStatement builds a use_statement node: "Use" path.
func newUseStatement(line []token) *Node {
	n := &Node{Kind: KindUseStatement, Start: line[0].start, End: line[len(line)-1].end, Fields: map[string]*Node{}}
	children := leavesOf(line)
	attachChildren(n, children)
	n.Fields["keyword"] = children[0]
	return n
}

// newStatement builds a generic expression_statement node for any line the
// parser does not give special structure to (assignments, unrecognized
// syntax, stray block closers). It still carries leaf children so cursor
// helpers work uniformly.
func newStatement(line []token) *Node {
	n := &Node{Kind: KindExpressionStatement, Start: line[0].start, End: line[len(line)-1].end}
	attachChildren(n, leavesOf(line))
	return n
}

func identifiersOf(nodes []*Node) []*Node {
	var out []*Node
	for _, n := range nodes {
		if n.Kind == KindIdentifier {
			out = append(out, n)
		}
	}
	return out
}
