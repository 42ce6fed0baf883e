package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/averycrespi/foldtodef/internal/folder"
	"github.com/averycrespi/foldtodef/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// marshalResult renders a tool result as indented JSON text
func marshalResult(toolResult any) *mcp.CallToolResult {
	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err))
	}
	return mcp.NewToolResultText(string(jsonBytes))
}

// newFoldResult converts a fold invocation into its tool result
func newFoldResult(result folder.Result, workspaceRoot string, preview bool) results.FoldToDefinitionsToolResult {
	path := UriToPath(result.URI)
	file := GetRelativePath(path, workspaceRoot)

	toolResult := results.FoldToDefinitionsToolResult{
		FilePath: file,
		Applied:  result.Applied,
		Lines:    result.Plan.Lines,
	}
	if toolResult.Lines == nil {
		toolResult.Lines = []int{}
	}

	if result.Plan.Empty() {
		toolResult.Message = "Nothing to fold"
		return toolResult
	}

	toolResult.Targets = results.NewFoldTargets(file, result.Plan.Symbols)
	toolResult.Regions = results.NewFoldRegions(result.Plan.Ranges)
	toolResult.Message = fmt.Sprintf("Folded %d lines: %d definitions and %d regions.",
		len(toolResult.Lines), len(toolResult.Targets), len(toolResult.Regions))

	if preview {
		content, err := os.ReadFile(path)
		if err != nil {
			slog.Debug("Skipping fold preview", "path", path, "error", err)
		} else {
			toolResult.Preview = results.NewFoldPreview(string(content), result.Plan)
		}
	}

	return toolResult
}
