// Package syntax implements a small incremental-style scanner and parser for
// the legacy object-oriented language this server edits.
//
// No published tree-sitter grammar exists for this language, so this package
// hand-rolls a line-oriented parser (see Parse) instead of depending on
// github.com/smacker/go-tree-sitter. Its node and cursor API is deliberately
// shaped like that library's (Node, TreeCursor, GoToFirstChild/GoToNextSibling)
// so that callers read the way they would against a real tree-sitter binding.
package syntax

import "fmt"

// Point is a zero-based (row, column) position. Column is a byte offset
// within the row, not a rune or UTF-16 offset.
type Point struct {
	Row    int
	Column int
}

// Before reports whether p sorts strictly before other.
func (p Point) Before(other Point) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Column < other.Column
}

// Compare returns -1, 0, or 1 as p is before, equal to, or after other.
func (p Point) Compare(other Point) int {
	switch {
	case p.Before(other):
		return -1
	case other.Before(p):
		return 1
	default:
		return 0
	}
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// Range is a half-open [Start, End) span of positions.
type Range struct {
	Start Point
	End   Point
}

// Contains reports whether p falls within [r.Start, r.End).
func (r Range) Contains(p Point) bool {
	return !p.Before(r.Start) && p.Before(r.End)
}
