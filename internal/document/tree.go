package document

import "github.com/dataflex-tools/dflsp/internal/syntax"

// TreeHost wraps the syntax parser and, optionally, the prior tree. On a
// full replace the prior tree is dropped and we parse fresh; on an
// incremental edit the prior tree is notified via Tree.Edit before a full
// re-parse (see the docs of syntax.Tree and syntax.Parser for why that
// re-parse is always full rather than incremental).
type TreeHost struct {
	parser *syntax.Parser
	tree   *syntax.Tree
}

// NewTreeHost returns an empty host with no tree yet parsed.
func NewTreeHost() *TreeHost {
	return &TreeHost{parser: syntax.NewParser()}
}

// Tree returns the current tree, or nil if ReplaceAll/Reparse has not been
// called yet, or the most recent parse failed: a parser failure means no
// tree, not a panic.
func (h *TreeHost) Tree() *syntax.Tree {
	return h.tree
}

// ReplaceAll drops any prior tree and parses source from scratch.
func (h *TreeHost) ReplaceAll(source []byte) {
	tree, err := h.parser.Parse(nil, source)
	if err != nil {
		h.tree = nil
		return
	}
	h.tree = tree
}

// NotifyEdit informs the prior tree of one edit, per the incremental-edit
// protocol. Call once per change in a batch, in order, before the batch's
// single Reparse.
func (h *TreeHost) NotifyEdit(edit EditResult) {
	if h.tree == nil {
		return
	}
	h.tree.Edit(syntax.EditInput{
		StartByte:   edit.StartByte,
		OldEndByte:  edit.OldEndByte,
		NewEndByte:  edit.NewEndByte,
		StartPoint:  edit.StartPoint,
		OldEndPoint: edit.OldEndPoint,
		NewEndPoint: edit.NewEndPoint,
	})
}

// Reparse re-parses source against the (possibly edit-notified) prior tree.
func (h *TreeHost) Reparse(source []byte) {
	tree, err := h.parser.Parse(h.tree, source)
	if err != nil {
		h.tree = nil
		return
	}
	h.tree = tree
}
