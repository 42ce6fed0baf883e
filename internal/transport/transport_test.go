package transport

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serverSide plays the language server: it issues requests to the client connection
func newConnPair(t *testing.T) (client *jsonrpc2.Conn, server *jsonrpc2.Conn) {
	t.Helper()
	clientEnd, serverEnd := net.Pipe()
	ctx := context.Background()

	client = NewConn(ctx, clientEnd)
	server = jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(serverEnd, jsonrpc2.VSCodeObjectCodec{}),
		jsonrpc2.HandlerWithError(func(context.Context, *jsonrpc2.Conn, *jsonrpc2.Request) (any, error) {
			return nil, nil
		}))

	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return client, server
}

func TestHandleServerRequest(t *testing.T) {
	_, server := newConnPair(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("Configuration returns one null per item", func(t *testing.T) {
		params := map[string]any{
			"items": []map[string]any{{"section": "gopls"}, {"section": "go"}},
		}
		var result []json.RawMessage
		require.NoError(t, server.Call(ctx, "workspace/configuration", params, &result))
		assert.Len(t, result, 2)
		for _, item := range result {
			assert.Equal(t, "null", string(item))
		}
	})

	t.Run("Capability registration is accepted", func(t *testing.T) {
		var result json.RawMessage
		assert.NoError(t, server.Call(ctx, "client/registerCapability", map[string]any{"registrations": []any{}}, &result))
	})

	t.Run("Unknown request is rejected", func(t *testing.T) {
		var result json.RawMessage
		err := server.Call(ctx, "workspace/applyEdit", map[string]any{}, &result)
		require.Error(t, err)

		var rpcErr *jsonrpc2.Error
		require.ErrorAs(t, err, &rpcErr)
		assert.Equal(t, int64(jsonrpc2.CodeMethodNotFound), rpcErr.Code)
	})

	t.Run("Notifications are accepted", func(t *testing.T) {
		assert.NoError(t, server.Notify(ctx, "window/logMessage", map[string]any{"type": 3, "message": "hello"}))
	})
}
