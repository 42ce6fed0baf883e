package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/foldtodef/internal/folder"
	"github.com/averycrespi/foldtodef/internal/results"
	"github.com/averycrespi/foldtodef/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// DocumentOpenedTool reports a file-open event from the editor
type DocumentOpenedTool struct {
	folder Folder
	config types.Config
}

// NewDocumentOpenedTool creates a new document opened tool
func NewDocumentOpenedTool(folder Folder, config types.Config) *DocumentOpenedTool {
	return &DocumentOpenedTool{
		folder: folder,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *DocumentOpenedTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolDocumentOpened,
		mcp.WithDescription("Notify that a file was opened. "+
			"The file is folded to its definitions only when foldOnFileOpen is enabled"),
		mcp.WithString("file_path", mcp.Required(), mcp.Description("Path to the opened file")),
	)
}

// Handle processes the tool request
func (t *DocumentOpenedTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath := mcp.ParseString(req, "file_path", "")
	if filePath == "" {
		return mcp.NewToolResultError("file_path parameter is required"), nil
	}

	uri := PathToUri(filePath, t.config.WorkspaceRoot)
	result, attempted, err := t.folder.DocumentOpened(ctx, uri)
	if err != nil {
		return mcp.NewToolResultError(
			fmt.Sprintf("Failed to fold opened file: %s: %v", filePath, err),
		), nil
	}

	toolResult := results.DocumentOpenedToolResult{FoldOnFileOpen: attempted}
	if attempted {
		toolResult.FoldToDefinitionsToolResult = newFoldResult(result, t.config.WorkspaceRoot, false)
	} else {
		toolResult.FoldToDefinitionsToolResult = newFoldResult(folder.Result{URI: uri}, t.config.WorkspaceRoot, false)
		toolResult.Message = "Folding on file open is disabled"
	}

	return marshalResult(toolResult), nil
}
