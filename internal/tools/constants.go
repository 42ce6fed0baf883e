package tools

// Tool names
const (
	ToolFoldToDefinitions = "fold_to_definitions"
	ToolDocumentOpened    = "document_opened"
	ToolGetFoldState      = "get_fold_state"
	ToolGetFoldConfig     = "get_fold_config"
)
