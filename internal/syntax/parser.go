package syntax

// Parser re-parses source into a Tree. It mirrors the shape of a tree-sitter
// parser (New + Parse(oldTree, source)) so the document engine built on top
// of it is written the way it would be against a real incremental parser,
// even though this Parser always performs a full re-lex (see Tree.Edit).
type Parser struct{}

// NewParser returns a ready-to-use Parser. It carries no state; tree-sitter's
// equivalent holds per-language grammar state, which this package has no
// analogue for since it only ever parses one grammar.
func NewParser() *Parser {
	return &Parser{}
}

// Parse produces a fresh Tree for source. oldTree is accepted for interface
// parity with an incremental parser but is otherwise unused: this
// implementation does not reuse any part of a prior tree.
func (p *Parser) Parse(oldTree *Tree, source []byte) (*Tree, error) {
	_ = oldTree
	return Parse(source), nil
}
