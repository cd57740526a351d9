// This file defines the language-functionality handlers: Definition,
// Hover, Completion, and SemanticTokensFull delegate directly to the
// per-document Engine; Symbols serves workspace-wide lookups straight off
// the shared index. Grounded on buflsp/server.go's equivalents,
// generalized from buflsp's *symbol abstraction to this module's
// index.IndexSymbol tagged variant.
package lsp

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/dataflex-tools/dflsp/internal/document"
	"github.com/dataflex-tools/dflsp/internal/index"
)

func (s *Server) Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	eng := s.documents.Get(string(params.TextDocument.URI))
	if eng == nil {
		return nil, nil
	}

	progress := newProgressFromClient(s, &params.WorkDoneProgressParams)
	progress.Begin(ctx, "Searching")
	defer progress.Done(ctx)

	loc, ok := eng.FindDefinition(ctx, toPoint(params.Position))
	if !ok {
		return nil, nil
	}
	return []protocol.Location{{
		URI:   s.fileURI(loc.File),
		Range: toProtocolRange(loc.Range),
	}}, nil
}

// fileURI resolves ref to its committed path and wraps it as a file: URI.
// A ref the workspace no longer has a committed file for (e.g. deleted
// between resolution and this call) falls back to ref's bare basename.
func (s *Server) fileURI(ref index.IndexFileRef) protocol.DocumentURI {
	if file, ok := s.workspace.File(ref); ok {
		return protocol.DocumentURI("file://" + file.Path)
	}
	return protocol.DocumentURI("file://" + ref.Name)
}

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	eng := s.documents.Get(string(params.TextDocument.URI))
	if eng == nil {
		return nil, nil
	}
	docs, ok := eng.Hover(ctx, toPoint(params.Position))
	if !ok {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.Markdown, Value: docs},
	}, nil
}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	eng := s.documents.Get(string(params.TextDocument.URI))
	if eng == nil {
		return nil, nil
	}
	items := eng.CodeCompletion(ctx, toPoint(params.Position))
	out := make([]protocol.CompletionItem, len(items))
	for i, item := range items {
		out[i] = protocol.CompletionItem{Label: item.Label, Kind: completionItemKind(item.Kind)}
	}
	return &protocol.CompletionList{Items: out}, nil
}

func completionItemKind(kind document.CompletionItemKind) protocol.CompletionItemKind {
	switch kind {
	case document.CompletionClass:
		return protocol.CompletionItemKindClass
	case document.CompletionMethod:
		return protocol.CompletionItemKindMethod
	case document.CompletionProperty:
		return protocol.CompletionItemKindProperty
	default:
		return protocol.CompletionItemKindText
	}
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	eng := s.documents.Get(string(params.TextDocument.URI))
	if eng == nil {
		return nil, nil
	}

	progress := newProgressFromClient(s, &params.WorkDoneProgressParams)
	progress.Begin(ctx, "Computing semantic tokens")
	defer progress.Done(ctx)

	toks := eng.SemanticTokensFull(ctx)
	data := make([]uint32, 0, len(toks)*5)
	for _, t := range toks {
		data = append(data, uint32(t.DeltaLine), uint32(t.DeltaStart), uint32(t.Length), uint32(t.Kind), 0)
	}
	return &protocol.SemanticTokens{Data: data}, nil
}

// Symbols answers workspace/symbol: every class, method, and property
// whose name contains params.Query (case-insensitively), read straight off
// the shared index with no per-document state involved.
func (s *Server) Symbols(ctx context.Context, params *protocol.WorkspaceSymbolParams) ([]protocol.SymbolInformation, error) {
	var out []protocol.SymbolInformation
	for _, name := range s.workspace.ClassNames() {
		if !matchesQuery(string(name), params.Query) {
			continue
		}
		ref, ok := s.workspace.Class(name)
		if !ok {
			continue
		}
		sym, ok := s.workspace.Resolve(ref)
		if !ok {
			continue
		}
		out = append(out, s.symbolInformation(string(name), protocol.SymbolKindClass, sym.Location))
	}
	for _, kind := range []index.MethodKind{index.MethodProcedure, index.MethodFunction, index.MethodSet} {
		for _, name := range s.workspace.MethodNames(kind) {
			if !matchesQuery(string(name), params.Query) {
				continue
			}
			for _, ref := range s.workspace.Method(kind, name) {
				sym, ok := s.workspace.Resolve(ref)
				if !ok {
					continue
				}
				out = append(out, s.symbolInformation(string(name), protocol.SymbolKindMethod, sym.Location))
			}
		}
	}
	for _, name := range s.workspace.PropertyNames() {
		if !matchesQuery(string(name), params.Query) {
			continue
		}
		for _, ref := range s.workspace.Property(name) {
			sym, ok := s.workspace.Resolve(ref)
			if !ok {
				continue
			}
			out = append(out, s.symbolInformation(string(name), protocol.SymbolKindProperty, sym.Location))
		}
	}
	return out, nil
}

func (s *Server) symbolInformation(name string, kind protocol.SymbolKind, loc index.Location) protocol.SymbolInformation {
	return protocol.SymbolInformation{
		Name: name,
		Kind: kind,
		Location: protocol.Location{
			URI:   s.fileURI(loc.File),
			Range: toProtocolRange(loc.Range),
		},
	}
}

func matchesQuery(name, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}
