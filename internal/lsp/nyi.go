// This file provides an implementation of protocol.Server where every
// method returns an error, grounded on buflsp/nyi.go's nyiServer. Server
// embeds it so that implementing one protocol.Server method at a time never
// requires touching every other one.

package lsp

import (
	"context"
	"fmt"
	"runtime"

	"go.lsp.dev/protocol"
)

var _ protocol.Server = nyiServer{}

type nyiServer struct{}

func makeNYI() error {
	caller := "<unknown function>"
	if pc, _, _, ok := runtime.Caller(1); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}
	return fmt.Errorf("not yet implemented: %s", caller)
}

// NOTE: the functions below were generated from protocol.Server's method
// set. Do not edit by hand; add a real implementation in another file on
// Server instead, which shadows the corresponding method here.

func (nyiServer) CodeAction(ctx context.Context, params *protocol.CodeActionParams) (result []protocol.CodeAction, err error) {
	return nil, makeNYI()
}
func (nyiServer) CodeLens(ctx context.Context, params *protocol.CodeLensParams) (result []protocol.CodeLens, err error) {
	return nil, makeNYI()
}
func (nyiServer) CodeLensRefresh(ctx context.Context) (err error) {
	return makeNYI()
}
func (nyiServer) CodeLensResolve(ctx context.Context, params *protocol.CodeLens) (result *protocol.CodeLens, err error) {
	return nil, makeNYI()
}
func (nyiServer) ColorPresentation(ctx context.Context, params *protocol.ColorPresentationParams) (result []protocol.ColorPresentation, err error) {
	return nil, makeNYI()
}
func (nyiServer) CompletionResolve(ctx context.Context, params *protocol.CompletionItem) (result *protocol.CompletionItem, err error) {
	return nil, makeNYI()
}
func (nyiServer) Declaration(ctx context.Context, params *protocol.DeclarationParams) (result []protocol.Location, err error) {
	return nil, makeNYI()
}
func (nyiServer) DidChangeConfiguration(ctx context.Context, params *protocol.DidChangeConfigurationParams) (err error) {
	return makeNYI()
}
func (nyiServer) DidChangeWatchedFiles(ctx context.Context, params *protocol.DidChangeWatchedFilesParams) (err error) {
	return makeNYI()
}
func (nyiServer) DidChangeWorkspaceFolders(ctx context.Context, params *protocol.DidChangeWorkspaceFoldersParams) (err error) {
	return makeNYI()
}
func (nyiServer) DidCreateFiles(ctx context.Context, params *protocol.CreateFilesParams) (err error) {
	return makeNYI()
}
func (nyiServer) DidDeleteFiles(ctx context.Context, params *protocol.DeleteFilesParams) (err error) {
	return makeNYI()
}
func (nyiServer) DidRenameFiles(ctx context.Context, params *protocol.RenameFilesParams) (err error) {
	return makeNYI()
}
func (nyiServer) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) (err error) {
	return makeNYI()
}
func (nyiServer) DocumentColor(ctx context.Context, params *protocol.DocumentColorParams) (result []protocol.ColorInformation, err error) {
	return nil, makeNYI()
}
func (nyiServer) DocumentHighlight(ctx context.Context, params *protocol.DocumentHighlightParams) (result []protocol.DocumentHighlight, err error) {
	return nil, makeNYI()
}
func (nyiServer) DocumentLink(ctx context.Context, params *protocol.DocumentLinkParams) (result []protocol.DocumentLink, err error) {
	return nil, makeNYI()
}
func (nyiServer) DocumentLinkResolve(ctx context.Context, params *protocol.DocumentLink) (result *protocol.DocumentLink, err error) {
	return nil, makeNYI()
}
func (nyiServer) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) (result []interface{}, err error) {
	return nil, makeNYI()
}
func (nyiServer) ExecuteCommand(ctx context.Context, params *protocol.ExecuteCommandParams) (result interface{}, err error) {
	return nil, makeNYI()
}
func (nyiServer) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) (result []protocol.FoldingRange, err error) {
	return nil, makeNYI()
}
func (nyiServer) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) (result []protocol.TextEdit, err error) {
	return nil, makeNYI()
}
func (nyiServer) Implementation(ctx context.Context, params *protocol.ImplementationParams) (result []protocol.Location, err error) {
	return nil, makeNYI()
}
func (nyiServer) IncomingCalls(ctx context.Context, params *protocol.CallHierarchyIncomingCallsParams) (result []protocol.CallHierarchyIncomingCall, err error) {
	return nil, makeNYI()
}
func (nyiServer) LinkedEditingRange(ctx context.Context, params *protocol.LinkedEditingRangeParams) (result *protocol.LinkedEditingRanges, err error) {
	return nil, makeNYI()
}
func (nyiServer) LogTrace(ctx context.Context, params *protocol.LogTraceParams) (err error) {
	return makeNYI()
}
func (nyiServer) Moniker(ctx context.Context, params *protocol.MonikerParams) (result []protocol.Moniker, err error) {
	return nil, makeNYI()
}
func (nyiServer) OnTypeFormatting(ctx context.Context, params *protocol.DocumentOnTypeFormattingParams) (result []protocol.TextEdit, err error) {
	return nil, makeNYI()
}
func (nyiServer) OutgoingCalls(ctx context.Context, params *protocol.CallHierarchyOutgoingCallsParams) (result []protocol.CallHierarchyOutgoingCall, err error) {
	return nil, makeNYI()
}
func (nyiServer) PrepareCallHierarchy(ctx context.Context, params *protocol.CallHierarchyPrepareParams) (result []protocol.CallHierarchyItem, err error) {
	return nil, makeNYI()
}
func (nyiServer) PrepareRename(ctx context.Context, params *protocol.PrepareRenameParams) (result *protocol.Range, err error) {
	return nil, makeNYI()
}
func (nyiServer) RangeFormatting(ctx context.Context, params *protocol.DocumentRangeFormattingParams) (result []protocol.TextEdit, err error) {
	return nil, makeNYI()
}
func (nyiServer) References(ctx context.Context, params *protocol.ReferenceParams) (result []protocol.Location, err error) {
	return nil, makeNYI()
}
func (nyiServer) Rename(ctx context.Context, params *protocol.RenameParams) (result *protocol.WorkspaceEdit, err error) {
	return nil, makeNYI()
}
func (nyiServer) Request(ctx context.Context, method string, params interface{}) (result interface{}, err error) {
	return nil, makeNYI()
}
func (nyiServer) SemanticTokensFullDelta(ctx context.Context, params *protocol.SemanticTokensDeltaParams) (result interface{}, err error) {
	return nil, makeNYI()
}
func (nyiServer) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (result *protocol.SemanticTokens, err error) {
	return nil, makeNYI()
}
func (nyiServer) SemanticTokensRefresh(ctx context.Context) (err error) {
	return makeNYI()
}
func (nyiServer) ShowDocument(ctx context.Context, params *protocol.ShowDocumentParams) (result *protocol.ShowDocumentResult, err error) {
	return nil, makeNYI()
}
func (nyiServer) SignatureHelp(ctx context.Context, params *protocol.SignatureHelpParams) (result *protocol.SignatureHelp, err error) {
	return nil, makeNYI()
}
func (nyiServer) TypeDefinition(ctx context.Context, params *protocol.TypeDefinitionParams) (result []protocol.Location, err error) {
	return nil, makeNYI()
}
func (nyiServer) WillCreateFiles(ctx context.Context, params *protocol.CreateFilesParams) (result *protocol.WorkspaceEdit, err error) {
	return nil, makeNYI()
}
func (nyiServer) WillDeleteFiles(ctx context.Context, params *protocol.DeleteFilesParams) (result *protocol.WorkspaceEdit, err error) {
	return nil, makeNYI()
}
func (nyiServer) WillRenameFiles(ctx context.Context, params *protocol.RenameFilesParams) (result *protocol.WorkspaceEdit, err error) {
	return nil, makeNYI()
}
func (nyiServer) WillSave(ctx context.Context, params *protocol.WillSaveTextDocumentParams) (err error) {
	return makeNYI()
}
func (nyiServer) WillSaveWaitUntil(ctx context.Context, params *protocol.WillSaveTextDocumentParams) (result []protocol.TextEdit, err error) {
	return nil, makeNYI()
}
func (nyiServer) WorkDoneProgressCancel(ctx context.Context, params *protocol.WorkDoneProgressCancelParams) (err error) {
	return makeNYI()
}
