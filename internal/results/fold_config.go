package results

import "github.com/averycrespi/foldtodef/internal/fold"

// GetFoldConfigToolResult represents the result of the get_fold_config tool
type GetFoldConfigToolResult struct {
	FoldToDefinitions fold.Config `json:"foldToDefinitions"`
	WorkspaceRoot     string      `json:"workspace_root"`
	LanguageServer    string      `json:"language_server"`
}
