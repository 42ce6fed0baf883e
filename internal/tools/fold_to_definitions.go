package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/foldtodef/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// FoldToDefinitionsTool handles fold to definitions requests
type FoldToDefinitionsTool struct {
	folder Folder
	config types.Config
}

// NewFoldToDefinitionsTool creates a new fold to definitions tool
func NewFoldToDefinitionsTool(folder Folder, config types.Config) *FoldToDefinitionsTool {
	return &FoldToDefinitionsTool{
		folder: folder,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *FoldToDefinitionsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolFoldToDefinitions,
		mcp.WithDescription("Fold a file down to its top-level definitions. "+
			"Returns the folded lines, the definitions and regions they belong to, and optionally a preview of the folded file"),
		mcp.WithString("file_path", mcp.Required(), mcp.Description("Path to the file, absolute or relative to the workspace root")),
		mcp.WithBoolean("preview", mcp.Description("Include the source lines that remain visible after folding")),
	)
}

// Handle processes the tool request
func (t *FoldToDefinitionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath := mcp.ParseString(req, "file_path", "")
	if filePath == "" {
		return mcp.NewToolResultError("file_path parameter is required"), nil
	}
	preview := mcp.ParseBoolean(req, "preview", false)

	uri := PathToUri(filePath, t.config.WorkspaceRoot)
	result, err := t.folder.Fold(ctx, uri)
	if err != nil {
		return mcp.NewToolResultError(
			fmt.Sprintf("Failed to fold file: %s: %v", filePath, err),
		), nil
	}

	return marshalResult(newFoldResult(result, t.config.WorkspaceRoot, preview)), nil
}
