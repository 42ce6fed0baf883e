package transport

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/sourcegraph/jsonrpc2"
	"go.lsp.dev/protocol"
)

// Pipe joins the stdout and stdin of a language server process into one stream
type Pipe struct {
	Reader io.ReadCloser
	Writer io.WriteCloser
}

func (p *Pipe) Read(b []byte) (int, error)  { return p.Reader.Read(b) }
func (p *Pipe) Write(b []byte) (int, error) { return p.Writer.Write(b) }

// Close closes both halves, reporting the first error
func (p *Pipe) Close() error {
	readErr := p.Reader.Close()
	writeErr := p.Writer.Close()
	if readErr != nil {
		return readErr
	}
	return writeErr
}

// NewConn creates a JSON-RPC connection speaking LSP Content-Length framing over rwc.
// Requests and notifications initiated by the server are answered by handleServerRequest.
func NewConn(ctx context.Context, rwc io.ReadWriteCloser) *jsonrpc2.Conn {
	slog.Debug("Starting JSON-RPC transport")
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{})
	return jsonrpc2.NewConn(ctx, stream, jsonrpc2.HandlerWithError(handleServerRequest))
}

// handleServerRequest answers the requests a language server may send to its client.
// A client that only reads outlines needs none of them, so each gets a neutral reply.
func handleServerRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	switch req.Method {
	case "window/logMessage", "window/showMessage":
		var params protocol.LogMessageParams
		if req.Params != nil && json.Unmarshal(*req.Params, &params) == nil {
			slog.Debug("Language server message", "method", req.Method, "type", int(params.Type), "message", params.Message)
		}
		return nil, nil
	case "workspace/configuration":
		var params protocol.ConfigurationParams
		if req.Params != nil {
			if err := json.Unmarshal(*req.Params, &params); err != nil {
				return nil, err
			}
		}
		// One null per requested item means "use your defaults".
		return make([]any, len(params.Items)), nil
	case "client/registerCapability", "client/unregisterCapability", "window/workDoneProgress/create":
		return nil, nil
	}

	if req.Notif {
		slog.Debug("Ignoring language server notification", "method", req.Method)
		return nil, nil
	}
	slog.Debug("Rejecting language server request", "method", req.Method)
	return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "method not handled: " + req.Method}
}
