package lsp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/dataflex-tools/dflsp/internal/document"
	"github.com/dataflex-tools/dflsp/internal/index"
	"github.com/dataflex-tools/dflsp/internal/syntax"
)

// newTestServer builds a Server with no live jsonrpc2 connection: every
// handler exercised here only reaches s.client through newProgressFromClient,
// which is nil-safe, so tests can drive the Document Engine and workspace
// index directly.
func newTestServer() *Server {
	ws := index.NewWorkspace(zap.NewNop())
	return &Server{
		logger:    zap.NewNop(),
		workspace: ws,
		documents: document.NewManager(ws),
	}
}

func TestServer_DidOpenThenHoverAndDefinition(t *testing.T) {
	s := newTestServer()

	libSrc := []byte("Class cMyClass is a cObject\n// does the work\nProcedure testIt\nEnd_Procedure\nEnd_Class\n")
	s.workspace.ApplyFile(index.ExtractIndexFile("lib.pkg", syntax.Parse(libSrc), libSrc))

	objSrc := "Object oMyObject is a cMyClass\n" +
		"Procedure DoSomething\n" +
		"Send testIt\n" +
		"End_Procedure\n" +
		"End_Object\n"

	err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  "file:///obj.pkg",
			Text: objSrc,
		},
	})
	require.NoError(t, err)

	hover, err := s.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///obj.pkg"},
			Position:     protocol.Position{Line: 2, Character: 7},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)
	assert.Equal(t, protocol.Markdown, hover.Contents.Kind)
	assert.Contains(t, hover.Contents.Value, "does the work")

	locs, err := s.Definition(context.Background(), &protocol.DefinitionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///obj.pkg"},
			Position:     protocol.Position{Line: 2, Character: 7},
		},
	})
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, protocol.DocumentURI("file://lib.pkg"), locs[0].URI)
}

func TestServer_DidOpenThenDidCloseDropsEngine(t *testing.T) {
	s := newTestServer()

	err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: "file:///t.pkg", Text: "Object oTest is a cObject\nEnd_Object\n"},
	})
	require.NoError(t, err)
	require.NotNil(t, s.documents.Get("file:///t.pkg"))

	err = s.DidClose(context.Background(), &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///t.pkg"},
	})
	require.NoError(t, err)
	assert.Nil(t, s.documents.Get("file:///t.pkg"))
}
