// Command dflsp starts the language server over stdio or a UNIX socket,
// grounded on cmd/buf/internal/command/lsp/lspserve/lspserve.go, adapted
// from buf's internal appcmd/appext CLI framework to plain cobra.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/spf13/cobra"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/dataflex-tools/dflsp/internal/lsp"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var pipePath string

	cmd := &cobra.Command{
		Use:   "dflsp",
		Short: "Language server for legacy OO target-language sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), pipePath)
		},
	}
	cmd.Flags().StringVar(
		&pipePath,
		"pipe",
		"",
		"path to a UNIX socket to connect to; uses stdio if not specified",
	)
	return cmd
}

// serve dials the client transport, wires it to a *lsp.Server, and blocks
// until the connection closes.
func serve(ctx context.Context, pipePath string) (retErr error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("dflsp: construct logger: %w", err)
	}
	defer func() {
		retErr = errors.Join(retErr, logger.Sync())
	}()

	transport, err := dial(pipePath)
	if err != nil {
		return err
	}
	defer func() {
		retErr = errors.Join(retErr, transport.Close())
	}()

	stream := jsonrpc2.NewStream(transport)
	conn := jsonrpc2.NewConn(stream)

	server := lsp.NewServer(conn, logger)
	ctx = protocol.WithClient(ctx, protocol.ClientDispatcher(conn))

	conn.Go(ctx, protocol.ServerHandler(server, jsonrpc2.MethodNotFoundHandler))
	<-conn.Done()
	return conn.Err()
}

// dial opens a connection to the LSP client: a UNIX socket if pipePath is
// set (the transport vscode and most editor clients expect), stdio
// otherwise.
func dial(pipePath string) (io.ReadWriteCloser, error) {
	if pipePath != "" {
		conn, err := net.Dial("unix", pipePath)
		if err != nil {
			return nil, fmt.Errorf("dflsp: could not open IPC socket %q: %w", pipePath, err)
		}
		return conn, nil
	}
	return stdioReadWriteCloser{}, nil
}

// stdioReadWriteCloser adapts os.Stdin/os.Stdout to io.ReadWriteCloser;
// closing it is a no-op since the process owns neither descriptor.
type stdioReadWriteCloser struct{}

func (stdioReadWriteCloser) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdioReadWriteCloser) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdioReadWriteCloser) Close() error                { return nil }
