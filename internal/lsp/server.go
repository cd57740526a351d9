// Package lsp implements the external protocol.Server surface the
// Document Engine and workspace index are driven through. Grounded on
// buflsp/server.go's split between a thin protocol.Server shim (server)
// and the stateful type it wraps (lsp); here that stateful type is Server
// itself, since this module has no equivalent of buflsp's separate
// controller/container wiring to keep out of the wire-protocol type.
package lsp

import (
	"runtime/debug"
	"sync/atomic"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/dataflex-tools/dflsp/internal/document"
	"github.com/dataflex-tools/dflsp/internal/index"
)

// Server is an implementation of protocol.Server for this language's
// document and workspace-index engine. Every method protocol.Server
// requires but this server does not implement returns a "not yet
// implemented" error via the embedded nyiServer.
type Server struct {
	nyiServer

	conn   jsonrpc2.Conn
	client protocol.Client
	logger *zap.Logger

	workspace *index.Workspace
	indexer   *index.Indexer
	watcher   *index.Watcher
	documents *document.Manager

	traceValue atomic.Pointer[protocol.TraceValue]
}

// NewServer wires together a fresh workspace index and document manager
// around conn. The workspace root is discovered during Initialize, since
// the LSP protocol only hands over workspace folders at that point.
func NewServer(conn jsonrpc2.Conn, logger *zap.Logger) *Server {
	ws := index.NewWorkspace(logger)
	return &Server{
		conn:      conn,
		client:    protocol.ClientDispatcher(conn),
		logger:    logger,
		workspace: ws,
		documents: document.NewManager(ws),
	}
}

var serverInfo = makeServerInfo()

func makeServerInfo() protocol.ServerInfo {
	info := protocol.ServerInfo{Name: "dflsp"}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.Version = buildInfo.Main.Version
	}
	return info
}

// semantic token legend, fixed by the three kinds tokens.go emits; index
// must match document.TokenKeyword/TokenInheritedClass/TokenMethodName.
var semanticTokenLegend = []string{"keyword", "class", "method"}

// semanticTokensLegend and semanticTokensOptions mirror protocol's own
// shapes: the published go.lsp.dev/protocol.SemanticTokensOptions does not
// round-trip a legend correctly over the wire, so capabilities() builds the
// response by hand (same workaround as buflsp/server.go).
type semanticTokensLegend struct {
	TokenTypes     []string `json:"tokenTypes"`
	TokenModifiers []string `json:"tokenModifiers"`
}

type semanticTokensOptions struct {
	protocol.WorkDoneProgressOptions

	Legend semanticTokensLegend `json:"legend"`
	Full   bool                 `json:"full"`
}

func (s *Server) capabilities() protocol.ServerCapabilities {
	return protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			OpenClose: true,
			Change:    protocol.TextDocumentSyncKindIncremental,
		},
		CompletionProvider: &protocol.CompletionOptions{},
		DefinitionProvider: true,
		HoverProvider:      true,
		SemanticTokensProvider: &semanticTokensOptions{
			Legend: semanticTokensLegend{TokenTypes: semanticTokenLegend},
			Full:   true,
		},
		WorkspaceSymbolProvider: true,
	}
}

func (s *Server) logErrorf(format string, args ...interface{}) {
	s.logger.Sugar().Errorf(format, args...)
}
