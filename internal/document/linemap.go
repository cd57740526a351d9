// Package document implements the per-open-document engine: the line map
// (C1), the syntax tree host (C2, wrapping internal/syntax), the context
// classifier (C4), the syntax token map (C5), and the Document Engine
// facade (C10) that ties them together. Grounded throughout on
// bufbuild-buf's buflsp/file.go, which plays the same per-document-state
// role for a protobuf-domain LSP.
package document

import (
	"strings"

	"github.com/dataflex-tools/dflsp/internal/syntax"
)

// LineMap is a byte-addressable, line-indexed mutable text store. Each
// line retains its line-ending bytes; the last line may lack one. A
// trailing line with no ending is an empty virtual row only when the
// preceding line ends with a newline — splitLines below produces exactly
// that shape by construction.
type LineMap struct {
	lines [][]byte
}

// NewLineMap builds a LineMap over text.
func NewLineMap(text []byte) *LineMap {
	return &LineMap{lines: splitLines(text)}
}

func splitLines(text []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	lines = append(lines, text[start:])
	return lines
}

// LineCount returns the number of lines, including a trailing virtual empty
// row when the text ends with a newline.
func (m *LineMap) LineCount() int {
	return len(m.lines)
}

// LineTextWithEnding returns row's text (with its line ending, if any), and
// false if row is out of range.
func (m *LineMap) LineTextWithEnding(row int) (string, bool) {
	if row < 0 || row >= len(m.lines) {
		return "", false
	}
	return string(m.lines[row]), true
}

// Text reconstructs the full document text. Intended for debugging and
// tests, not the hot path.
func (m *LineMap) Text() string {
	var b strings.Builder
	for _, l := range m.lines {
		b.Write(l)
	}
	return b.String()
}

// Bytes reconstructs the full document text as bytes, for feeding the
// parser.
func (m *LineMap) Bytes() []byte {
	return []byte(m.Text())
}

// OffsetAtPoint converts p to a byte offset. Columns and rows beyond the
// document's extent are clamped to the nearest valid position.
func (m *LineMap) OffsetAtPoint(p syntax.Point) int {
	row := clamp(p.Row, 0, len(m.lines)-1)
	offset := 0
	for i := 0; i < row; i++ {
		offset += len(m.lines[i])
	}
	col := clamp(p.Column, 0, len(m.lines[row]))
	return offset + col
}

// PointAtOffset converts a byte offset to a Point. Offsets beyond the
// document's extent clamp to the final position.
func (m *LineMap) PointAtOffset(offset int) syntax.Point {
	if offset < 0 {
		offset = 0
	}
	cum := 0
	for row, line := range m.lines {
		if offset < cum+len(line) || row == len(m.lines)-1 {
			return syntax.Point{Row: row, Column: offset - cum}
		}
		cum += len(line)
	}
	return syntax.Point{Row: 0, Column: 0}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EditResult reports the byte-offset/point triple the Syntax Tree Host
// needs to notify the prior tree of an edit.
type EditResult struct {
	StartByte, OldEndByte, NewEndByte    int
	StartPoint, OldEndPoint, NewEndPoint syntax.Point
}

// ReplaceRange splices text into [start, end), re-fusing surrounding lines
// as needed. An empty text is a pure deletion.
func (m *LineMap) ReplaceRange(start, end syntax.Point, text string) EditResult {
	startOffset := m.OffsetAtPoint(start)
	oldEndOffset := m.OffsetAtPoint(end)

	full := m.Bytes()
	newFull := make([]byte, 0, len(full)-(oldEndOffset-startOffset)+len(text))
	newFull = append(newFull, full[:startOffset]...)
	newFull = append(newFull, text...)
	newFull = append(newFull, full[oldEndOffset:]...)

	newEndOffset := startOffset + len(text)
	m.lines = splitLines(newFull)

	return EditResult{
		StartByte:   startOffset,
		OldEndByte:  oldEndOffset,
		NewEndByte:  newEndOffset,
		StartPoint:  start,
		OldEndPoint: end,
		NewEndPoint: m.PointAtOffset(newEndOffset),
	}
}
