// This file defines the lifecycle message handlers, grounded on
// buflsp/lifecycle.go.
package lsp

import (
	"context"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/dataflex-tools/dflsp/internal/index"
)

// Initialize is the first message the client sends. It resolves the
// workspace root from the first workspace folder (falling back to
// RootURI, and then RootPath, for older clients), loads the workspace's
// *.sws descriptor, and kicks off the Indexer's initial walk in the
// background so Initialize itself returns promptly.
func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	root := workspaceRoot(params)
	desc := index.LoadWorkspaceDescriptor(root, s.logger)
	s.logger.Sugar().Infof("lsp: workspace %s: version %q, %d project(s)", desc.Root, desc.Version, len(desc.Projects))

	s.indexer = index.NewIndexer(s.workspace, s.logger)
	s.indexer.Observe(s)

	watcher, err := index.NewWatcher(s.indexer, s.logger)
	if err != nil {
		return nil, err
	}
	s.watcher = watcher
	if root != "" {
		if err := s.watcher.Add(root); err != nil {
			s.logErrorf("lsp: watch %s: %v", root, err)
		}
	}

	// System paths are passed ahead of the workspace root; see Indexer.Run
	// for the order in which their files are committed. desc.Projects names
	// the workspace's project main files but, per
	// original_source/src/index/workspace.rs's index_workspace, does not
	// narrow what gets indexed: the whole root folder is always walked.
	roots := index.SystemPaths(s.logger)
	if root != "" {
		roots = append(roots, root)
	}
	go func() {
		indexing := newProgress(s)
		indexing.Begin(context.Background(), "Indexing workspace")
		if err := s.indexer.Run(context.Background(), roots); err != nil {
			s.logErrorf("lsp: initial index: %v", err)
		}
		indexing.Done(context.Background())
		go s.watcher.Run(context.Background())
	}()

	return &protocol.InitializeResult{
		Capabilities: s.capabilities(),
		ServerInfo:   &serverInfo,
	}, nil
}

func workspaceRoot(params *protocol.InitializeParams) string {
	if len(params.WorkspaceFolders) > 0 {
		return uri.URI(params.WorkspaceFolders[0].URI).Filename()
	}
	if params.RootURI != "" {
		return params.RootURI.Filename()
	}
	return params.RootPath
}

// OnStateChange implements index.Observer: once the initial index reaches
// Inactive, every already-open document's cross-index-filtered tokens may
// have changed, so their token maps are rebuilt and republished. This is
// the one place indexer events cross into the document domain.
func (s *Server) OnStateChange(state index.State) {
	if state != index.StateInactive {
		return
	}
	ctx := context.Background()
	for _, eng := range s.documents.All() {
		eng.UpdateSyntaxMap(ctx)
		if s.client != nil {
			_ = s.client.SemanticTokensRefresh(ctx)
		}
	}
}

// Initialized is sent once the client has processed the Initialize
// response. There is nothing further for this server to do at that point.
func (s *Server) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) SetTrace(ctx context.Context, params *protocol.SetTraceParams) error {
	s.traceValue.Store(&params.Value)
	return nil
}

// Shutdown asks the server to release its resources and await Exit.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// Exit closes the connection, which lets the server process terminate
// once the reply to this notification has been flushed.
func (s *Server) Exit(ctx context.Context) error {
	return s.conn.Close()
}
