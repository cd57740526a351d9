// This file defines the text-document synchronization handlers, which
// drive the Document Engine's new/edit_content operations, grounded on
// buflsp/server.go's DidOpen/DidChange/DidClose trio.
package lsp

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/dataflex-tools/dflsp/internal/document"
	"github.com/dataflex-tools/dflsp/internal/syntax"
)

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.documents.Open(uri, []byte(params.TextDocument.Text))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	eng := s.documents.Get(uri)
	if eng == nil {
		return fmt.Errorf("lsp: received change for file that was not open: %q", uri)
	}

	changes := make([]document.Change, len(params.ContentChanges))
	for i, c := range params.ContentChanges {
		if c.Range == nil {
			changes[i] = document.Change{Text: c.Text}
			continue
		}
		rng := syntax.Range{Start: toPoint(c.Range.Start), End: toPoint(c.Range.End)}
		changes[i] = document.Change{Range: &rng, Text: c.Text}
	}
	eng.EditContent(ctx, changes)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.documents.Close(string(params.TextDocument.URI))
	return nil
}
