package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/foldtodef/internal/results"
	"github.com/averycrespi/foldtodef/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetFoldStateTool reports the lines last folded in a file
type GetFoldStateTool struct {
	state  FoldState
	config types.Config
}

// NewGetFoldStateTool creates a new get fold state tool
func NewGetFoldStateTool(state FoldState, config types.Config) *GetFoldStateTool {
	return &GetFoldStateTool{
		state:  state,
		config: config,
	}
}

// GetTool returns the MCP tool definition
func (t *GetFoldStateTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetFoldState,
		mcp.WithDescription("Get the zero-based lines that were last folded in a file"),
		mcp.WithString("file_path", mcp.Required(), mcp.Description("Path to the file")),
	)
}

// Handle processes the tool request
func (t *GetFoldStateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath := mcp.ParseString(req, "file_path", "")
	if filePath == "" {
		return mcp.NewToolResultError("file_path parameter is required"), nil
	}

	uri := PathToUri(filePath, t.config.WorkspaceRoot)
	lines, folded := t.state.Applied(uri)

	toolResult := results.GetFoldStateToolResult{
		FilePath: GetRelativePath(UriToPath(uri), t.config.WorkspaceRoot),
		Folded:   folded,
		Lines:    lines,
	}
	if folded {
		toolResult.Message = fmt.Sprintf("%d lines folded.", len(lines))
	} else {
		toolResult.Lines = []int{}
		toolResult.Message = "File has not been folded."
	}

	return marshalResult(toolResult), nil
}
