package tools

import (
	"context"

	"github.com/averycrespi/foldtodef/internal/results"
	"github.com/averycrespi/foldtodef/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetFoldConfigTool reports the configuration the next fold will use
type GetFoldConfigTool struct {
	folder Folder
	config types.Config
}

// NewGetFoldConfigTool creates a new get fold config tool
func NewGetFoldConfigTool(folder Folder, config types.Config) *GetFoldConfigTool {
	return &GetFoldConfigTool{
		folder: folder,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *GetFoldConfigTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetFoldConfig,
		mcp.WithDescription("Get the effective fold configuration"),
	)
}

// Handle processes the tool request
func (t *GetFoldConfigTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return marshalResult(results.GetFoldConfigToolResult{
		FoldToDefinitions: t.folder.Config(),
		WorkspaceRoot:     t.config.WorkspaceRoot,
		LanguageServer:    t.config.LanguageServer,
	}), nil
}
