package types

// Config represents the server-side settings for foldtodef
type Config struct {
	LanguageServer     string   `json:"language_server,omitempty"`
	LanguageServerArgs []string `json:"language_server_args,omitempty"`
	LanguageID         string   `json:"language_id,omitempty"`
	WorkspaceRoot      string   `json:"workspace_root"`
	LogLevel           string   `json:"log_level,omitempty"`
	LogFormat          string   `json:"log_format,omitempty"`
}
