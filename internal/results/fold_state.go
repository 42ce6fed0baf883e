package results

// GetFoldStateToolResult represents the result of the get_fold_state tool
type GetFoldStateToolResult struct {
	FilePath string `json:"file_path"`
	Message  string `json:"message"`
	Folded   bool   `json:"folded"`
	Lines    []int  `json:"lines"`
}
