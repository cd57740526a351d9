package lsp

import (
	"go.lsp.dev/protocol"

	"github.com/dataflex-tools/dflsp/internal/syntax"
)

func toPoint(pos protocol.Position) syntax.Point {
	return syntax.Point{Row: int(pos.Line), Column: int(pos.Character)}
}

func toPosition(p syntax.Point) protocol.Position {
	return protocol.Position{Line: uint32(p.Row), Character: uint32(p.Column)}
}

func toProtocolRange(r syntax.Range) protocol.Range {
	return protocol.Range{Start: toPosition(r.Start), End: toPosition(r.End)}
}
