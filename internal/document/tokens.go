package document

import (
	"sort"

	"github.com/dataflex-tools/dflsp/internal/index"
	"github.com/dataflex-tools/dflsp/internal/syntax"
)

// Token kinds the Syntax Token Map emits. Only these three exist; method
// and inherited-class tokens are filtered through the index (see
// collectCaptures) while keyword tokens are unconditional.
const (
	TokenKeyword = iota
	TokenInheritedClass
	TokenMethodName
)

// SyntaxToken is one entry in a Line's token list: a column delta relative
// to the previous token on the same line (or absolute, for the first token
// on a line), a byte length, and a kind.
type SyntaxToken struct {
	DeltaStart int
	Length     int
	Kind       int
}

// Line holds the tokens whose Start.Row equals the line's index.
type Line struct {
	Tokens []SyntaxToken
}

// EncodedToken is one (deltaLine, deltaStart, length, kind) group of the
// flattened, fully delta-encoded stream an editor's semanticTokens/full
// response transmits.
type EncodedToken struct {
	DeltaLine  int
	DeltaStart int
	Length     int
	Kind       int
}

// TokenMap is the per-document Syntax Token Map (C5): one Line per source
// line, each carrying the tokens captured on it. Grounded on
// buflsp/semantic_tokens.go's three-phase collect/sort/delta-encode
// pipeline, generalized from protobuf-symbol-kind dispatch to the three
// token kinds this language's highlighter names.
type TokenMap struct {
	Lines []Line
}

type capture struct {
	start syntax.Point
	end   syntax.Point
	kind  int
}

// BuildTokenMap walks root (which may be nil, e.g. after a parse failure)
// and produces a TokenMap with lineCount lines. ws supplies the
// cross-index filter: inherited-class and method-name tokens are only
// emitted for names ws currently knows.
func BuildTokenMap(root *syntax.Node, lineCount int, ws *index.Workspace) *TokenMap {
	lines := make([]Line, lineCount)
	if root == nil {
		return &TokenMap{Lines: lines}
	}

	captures := collectCaptures(root, ws)
	sort.Slice(captures, func(i, j int) bool {
		if captures[i].start.Row != captures[j].start.Row {
			return captures[i].start.Row < captures[j].start.Row
		}
		return captures[i].start.Column < captures[j].start.Column
	})

	lastCol := make(map[int]int)
	for _, c := range captures {
		// Multi-line captures are dropped rather than split; none of our
		// own node kinds actually span lines, but a future grammar change
		// could introduce one.
		if c.start.Row != c.end.Row {
			continue
		}
		if c.start.Row < 0 || c.start.Row >= lineCount {
			continue
		}
		deltaStart := c.start.Column
		if last, ok := lastCol[c.start.Row]; ok {
			deltaStart = c.start.Column - last
		}
		lines[c.start.Row].Tokens = append(lines[c.start.Row].Tokens, SyntaxToken{
			DeltaStart: deltaStart,
			Length:     c.end.Column - c.start.Column,
			Kind:       c.kind,
		})
		lastCol[c.start.Row] = c.start.Column
	}
	return &TokenMap{Lines: lines}
}

// collectCaptures walks the tree once, emitting an unconditional keyword
// capture for every keyword leaf, plus a conditional inherited-class
// capture for every object/class definition's superclass identifier and a
// conditional method-name capture for every call statement's name
// identifier. "Conditional" means the cross-index filter: unknown names
// fall back to base syntactic highlighting by simply not producing a
// token.
func collectCaptures(root *syntax.Node, ws *index.Workspace) []capture {
	var out []capture
	var walk func(n *syntax.Node)
	walk = func(n *syntax.Node) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			if n.Kind == syntax.KindKeyword {
				out = append(out, capture{start: n.Start, end: n.End, kind: TokenKeyword})
			}
			return
		}
		switch n.Kind {
		case syntax.KindObjectDefinition, syntax.KindClassDefinition:
			if sc := n.ChildByFieldName("superclass"); sc != nil && ws.IsKnownClass(index.SymbolName(sc.Text)) {
				out = append(out, capture{start: sc.Start, end: sc.End, kind: TokenInheritedClass})
			}
		case syntax.KindCallStatement:
			if name := n.ChildByFieldName("name"); name != nil && ws.IsKnownMethod(index.SymbolName(name.Text)) {
				out = append(out, capture{start: name.Start, end: name.End, kind: TokenMethodName})
			}
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return out
}

// GetAllTokens flattens every line into the delta-encoded stream.
func (m *TokenMap) GetAllTokens() []EncodedToken {
	return m.GetTokensForLines(0, len(m.Lines))
}

// GetTokensForLines flattens lines [start, end) into the delta-encoded
// stream, computing the first emitted token's delta_line relative to the
// last non-empty line before start — not relative to start itself — so a
// partial-range query splices correctly into a client's existing view of
// the stream.
func (m *TokenMap) GetTokensForLines(start, end int) []EncodedToken {
	if start < 0 {
		start = 0
	}
	if end > len(m.Lines) {
		end = len(m.Lines)
	}
	lastLineWithTokens := -1
	for row := start - 1; row >= 0; row-- {
		if len(m.Lines[row].Tokens) > 0 {
			lastLineWithTokens = row
			break
		}
	}

	var out []EncodedToken
	for row := start; row < end; row++ {
		toks := m.Lines[row].Tokens
		if len(toks) == 0 {
			continue
		}
		for i, tok := range toks {
			deltaLine := 0
			if i == 0 {
				if lastLineWithTokens >= 0 {
					deltaLine = row - lastLineWithTokens
				} else {
					deltaLine = row
				}
			}
			out = append(out, EncodedToken{
				DeltaLine:  deltaLine,
				DeltaStart: tok.DeltaStart,
				Length:     tok.Length,
				Kind:       tok.Kind,
			})
		}
		lastLineWithTokens = row
	}
	return out
}
