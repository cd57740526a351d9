// This file implements client-side progress reporting, grounded on
// buflsp/progress.go. Token generation here uses github.com/google/uuid
// rather than math/rand/v2, since a real random source — not a PRNG the
// stdlib happens to ship — is what a progress token actually needs: no two
// concurrent requests' tokens may collide.
package lsp

import (
	"context"

	"github.com/google/uuid"
	"go.lsp.dev/protocol"
)

// progress is a server-initiated progress report, tracked by a token the
// client echoes back on cancellation.
type progress struct {
	server *Server
	token  string
}

// newProgress creates new server-initiated progress.
func newProgress(s *Server) *progress {
	return &progress{server: s, token: uuid.NewString()}
}

// newProgressFromClient creates progress to track client-requested
// progress. It returns nil if the client did not ask for any, so that
// calling Begin/Report/Done on the result is always safe.
func newProgressFromClient(s *Server, params *protocol.WorkDoneProgressParams) *progress {
	if params == nil || params.WorkDoneToken == nil {
		return nil
	}
	return &progress{server: s, token: params.WorkDoneToken.String()}
}

func (p *progress) Begin(ctx context.Context, title string) {
	if p == nil || p.server.client == nil {
		return
	}
	_ = p.server.client.Progress(ctx, &protocol.ProgressParams{
		Token: *protocol.NewProgressToken(p.token),
		Value: &protocol.WorkDoneProgressBegin{Kind: protocol.WorkDoneProgressKindBegin, Title: title},
	})
}

func (p *progress) Report(ctx context.Context, message string, percent float64) {
	if p == nil || p.server.client == nil {
		return
	}
	_ = p.server.client.Progress(ctx, &protocol.ProgressParams{
		Token: *protocol.NewProgressToken(p.token),
		Value: &protocol.WorkDoneProgressReport{
			Kind:       protocol.WorkDoneProgressKindReport,
			Message:    message,
			Percentage: uint32(percent * 100),
		},
	})
}

func (p *progress) Done(ctx context.Context) {
	if p == nil || p.server.client == nil {
		return
	}
	_ = p.server.client.Progress(ctx, &protocol.ProgressParams{
		Token: *protocol.NewProgressToken(p.token),
		Value: &protocol.WorkDoneProgressEnd{Kind: protocol.WorkDoneProgressKindEnd},
	})
}
