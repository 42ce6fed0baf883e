package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/averycrespi/foldtodef/internal/fold"
	"github.com/averycrespi/foldtodef/internal/transport"
	"github.com/averycrespi/foldtodef/pkg/project"
	"github.com/averycrespi/foldtodef/pkg/types"

	"github.com/sourcegraph/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

const (
	defaultLanguageServer = "gopls"
	defaultLanguageID     = "go"
	requestTimeout        = 10 * time.Second
)

// ErrNotStarted is returned by requests made before Start or after Stop
var ErrNotStarted = errors.New("language server client not started")

var _ types.Client = &LanguageServerClient{}

// LanguageServerClient talks to a language server process over stdio
type LanguageServerClient struct {
	command    string
	args       []string
	languageID string

	cmd *exec.Cmd

	// mu guards conn and openedDocuments
	mu              sync.Mutex
	conn            *jsonrpc2.Conn
	openedDocuments map[string]*openDocument
}

// openDocument is the text the server last received for a document
type openDocument struct {
	version int32
	content string
}

// NewLanguageServerClient creates a new client for the configured language server
func NewLanguageServerClient(config types.Config) *LanguageServerClient {
	command := config.LanguageServer
	if command == "" {
		command = defaultLanguageServer
	}
	languageID := config.LanguageID
	if languageID == "" {
		languageID = defaultLanguageID
	}

	slog.Debug("Creating new language server client", "command", command, "args", config.LanguageServerArgs)

	return &LanguageServerClient{
		command:         command,
		args:            config.LanguageServerArgs,
		languageID:      languageID,
		openedDocuments: make(map[string]*openDocument),
	}
}

// Start launches the language server process and performs the LSP handshake
func (c *LanguageServerClient) Start(ctx context.Context, workspaceRoot string) error {
	slog.Debug("Starting language server", "command", c.command, "workspace_root", workspaceRoot)

	// The process outlives ctx, which usually belongs to a single request.
	c.cmd = exec.Command(c.command, c.args...)
	c.cmd.Dir = workspaceRoot

	stdin, err := c.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdin pipe: %w", err)
	}

	stdout, err := c.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	stderr, err := c.cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := c.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start language server command: %w", err)
	}
	slog.Debug("Language server process started successfully", "pid", c.cmd.Process.Pid)

	go func() {
		_, _ = io.Copy(os.Stderr, stderr)
	}()

	if err := c.Connect(ctx, &transport.Pipe{Reader: stdout, Writer: stdin}, workspaceRoot); err != nil {
		_ = c.cmd.Process.Kill()
		_, _ = c.cmd.Process.Wait()
		return err
	}

	return nil
}

// Connect performs the LSP handshake over an existing stream.
// Start calls it with the pipes of the spawned process.
func (c *LanguageServerClient) Connect(ctx context.Context, rwc io.ReadWriteCloser, workspaceRoot string) error {
	root, err := filepath.Abs(workspaceRoot)
	if err != nil {
		return fmt.Errorf("failed to resolve workspace root: %w", err)
	}

	conn := transport.NewConn(context.Background(), rwc)
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	rootURI := uri.File(root)
	slog.Debug("Initializing language server", "root_uri", rootURI)
	if err := c.initialize(ctx, rootURI); err != nil {
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
		_ = conn.Close()
		return fmt.Errorf("failed to initialize language server: %w", err)
	}
	slog.Debug("Language server initialized successfully")

	return nil
}

func (c *LanguageServerClient) initialize(ctx context.Context, rootURI uri.URI) error {
	params := &protocol.InitializeParams{
		ProcessID: int32(os.Getpid()),
		RootURI:   protocol.DocumentURI(rootURI),
		ClientInfo: &protocol.ClientInfo{
			Name:    project.Name,
			Version: project.Version,
		},
		Capabilities: protocol.ClientCapabilities{
			TextDocument: &protocol.TextDocumentClientCapabilities{
				DocumentSymbol: &protocol.DocumentSymbolClientCapabilities{
					HierarchicalDocumentSymbolSupport: true,
				},
				FoldingRange: &protocol.FoldingRangeClientCapabilities{
					LineFoldingOnly: true,
				},
			},
		},
	}

	var result json.RawMessage
	if err := c.call(ctx, "initialize", params, &result); err != nil {
		return fmt.Errorf("failed to send initialization request: %w", err)
	}

	if err := c.notify(ctx, "initialized", &protocol.InitializedParams{}); err != nil {
		return fmt.Errorf("failed to send initialization notification: %w", err)
	}

	return nil
}

// Stop shuts the language server down and terminates its process
func (c *LanguageServerClient) Stop(ctx context.Context) error {
	if _, err := c.connection(); err != nil {
		return err
	}

	var result json.RawMessage
	if err := c.call(ctx, "shutdown", nil, &result); err != nil {
		return fmt.Errorf("failed to send shutdown request: %w", err)
	}

	if err := c.notify(ctx, "exit", nil); err != nil {
		return fmt.Errorf("failed to send exit notification: %w", err)
	}

	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.openedDocuments = make(map[string]*openDocument)
	c.mu.Unlock()

	if conn != nil {
		if err := conn.Close(); err != nil {
			return fmt.Errorf("failed to close connection: %w", err)
		}
	}

	if c.cmd != nil && c.cmd.Process != nil {
		if err := c.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			return fmt.Errorf("failed to kill language server process: %w", err)
		}
		_, _ = c.cmd.Process.Wait()
	}

	return nil
}

// DocumentSymbols returns the outline of the document at uri
func (c *LanguageServerClient) DocumentSymbols(ctx context.Context, documentURI string) ([]fold.Symbol, error) {
	slog.Debug("Getting document symbols", "uri", documentURI)

	if err := c.ensureOpen(ctx, documentURI); err != nil {
		return nil, err
	}

	params := protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentURI(documentURI)},
	}

	var response json.RawMessage
	if err := c.call(ctx, "textDocument/documentSymbol", params, &response); err != nil {
		return nil, fmt.Errorf("failed to get document symbols: %w", err)
	}

	symbols, err := decodeDocumentSymbols(response)
	if err != nil {
		return nil, err
	}

	slog.Debug("Found document symbols", "count", len(symbols), "uri", documentURI)
	return symbols, nil
}

// foldingRangeParams is sent instead of protocol.FoldingRangeParams, which
// also embeds a position that the request does not take.
type foldingRangeParams struct {
	TextDocument protocol.TextDocumentIdentifier `json:"textDocument"`
}

// FoldingRanges returns the structural folding ranges of the document at uri
func (c *LanguageServerClient) FoldingRanges(ctx context.Context, documentURI string) ([]fold.FoldingRange, error) {
	slog.Debug("Getting folding ranges", "uri", documentURI)

	if err := c.ensureOpen(ctx, documentURI); err != nil {
		return nil, err
	}

	params := foldingRangeParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentURI(documentURI)},
	}

	var response []protocol.FoldingRange
	if err := c.call(ctx, "textDocument/foldingRange", params, &response); err != nil {
		return nil, fmt.Errorf("failed to get folding ranges: %w", err)
	}

	ranges := make([]fold.FoldingRange, 0, len(response))
	for _, r := range response {
		ranges = append(ranges, fold.FoldingRange{
			Start: int(r.StartLine),
			End:   int(r.EndLine),
			Kind:  fold.RangeKind(r.Kind),
		})
	}

	slog.Debug("Found folding ranges", "count", len(ranges), "uri", documentURI)
	return ranges, nil
}

// didChangeParams sends the whole document as a single change. The range of
// protocol.TextDocumentContentChangeEvent is not optional, so it cannot
// express a full-text replacement.
type didChangeParams struct {
	TextDocument   versionedDocument `json:"textDocument"`
	ContentChanges []fullTextChange  `json:"contentChanges"`
}

type versionedDocument struct {
	URI     protocol.DocumentURI `json:"uri"`
	Version int32                `json:"version"`
}

type fullTextChange struct {
	Text string `json:"text"`
}

// ensureOpen syncs the document's current content to the server: didOpen the
// first time it is requested, didChange whenever the file changed on disk since.
func (c *LanguageServerClient) ensureOpen(ctx context.Context, documentURI string) error {
	conn, err := c.connection()
	if err != nil {
		return err
	}
	if !strings.HasPrefix(documentURI, "file://") {
		return fmt.Errorf("unsupported document URI %q: only file URIs are supported", documentURI)
	}

	path := uri.URI(documentURI).Filename()
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document %s: %w", path, err)
	}
	content := string(data)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != conn {
		return ErrNotStarted
	}

	doc, ok := c.openedDocuments[documentURI]
	if !ok {
		params := protocol.DidOpenTextDocumentParams{
			TextDocument: protocol.TextDocumentItem{
				URI:        protocol.DocumentURI(documentURI),
				LanguageID: protocol.LanguageIdentifier(c.languageID),
				Version:    1,
				Text:       content,
			},
		}
		if err := conn.Notify(ctx, "textDocument/didOpen", params); err != nil {
			return fmt.Errorf("failed to open document: %w", err)
		}

		c.openedDocuments[documentURI] = &openDocument{version: 1, content: content}
		slog.Debug("Opened document", "uri", documentURI, "language_id", c.languageID)
		return nil
	}

	if doc.content == content {
		return nil
	}

	params := didChangeParams{
		TextDocument:   versionedDocument{URI: protocol.DocumentURI(documentURI), Version: doc.version + 1},
		ContentChanges: []fullTextChange{{Text: content}},
	}
	if err := conn.Notify(ctx, "textDocument/didChange", params); err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	doc.version++
	doc.content = content
	slog.Debug("Updated document", "uri", documentURI, "version", doc.version)
	return nil
}

// connection returns the current connection, or ErrNotStarted
func (c *LanguageServerClient) connection() (*jsonrpc2.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil, ErrNotStarted
	}
	return c.conn, nil
}

func (c *LanguageServerClient) notify(ctx context.Context, method string, params any) error {
	conn, err := c.connection()
	if err != nil {
		return err
	}
	return conn.Notify(ctx, method, params)
}

func (c *LanguageServerClient) call(ctx context.Context, method string, params, result any) error {
	conn, err := c.connection()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	startTime := time.Now()
	if err := conn.Call(ctx, method, params, result); err != nil {
		slog.Debug("JSON-RPC request failed", "method", method, "error", err, "duration_ms", time.Since(startTime).Milliseconds())
		return err
	}
	slog.Debug("Received JSON-RPC response", "method", method, "duration_ms", time.Since(startTime).Milliseconds())
	return nil
}
