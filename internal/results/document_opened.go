package results

// DocumentOpenedToolResult represents the result of the document_opened tool
type DocumentOpenedToolResult struct {
	FoldToDefinitionsToolResult
	FoldOnFileOpen bool `json:"fold_on_file_open"`
}
