package tools

import (
	"context"

	"github.com/averycrespi/foldtodef/internal/fold"
	"github.com/averycrespi/foldtodef/internal/folder"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Folder runs the fold pipeline for a document
type Folder interface {
	Fold(ctx context.Context, uri string) (folder.Result, error)
	DocumentOpened(ctx context.Context, uri string) (folder.Result, bool, error)
	Config() fold.Config
}

// FoldState reports the lines last folded in a document
type FoldState interface {
	Applied(uri string) ([]int, bool)
}

// Tool is an MCP tool definition together with its handler
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Register adds the tools to an MCP server
func Register(s *server.MCPServer, tools ...Tool) {
	for _, tool := range tools {
		s.AddTool(tool.GetTool(), tool.Handle)
	}
}
