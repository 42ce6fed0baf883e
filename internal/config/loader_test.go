package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/averycrespi/foldtodef/internal/fold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "log:\n  level: info\n")

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, fold.DefaultConfig(), settings.Fold)
	assert.Equal(t, "gopls", settings.Server.LanguageServer)
	assert.Equal(t, []string{"serve"}, settings.Server.LanguageServerArgs)
	assert.Equal(t, "go", settings.Server.LanguageID)
	assert.Equal(t, ".", settings.Server.WorkspaceRoot)
	assert.Equal(t, "info", settings.Server.LogLevel)
	assert.Equal(t, "text", settings.Server.LogFormat)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
foldToDefinitions:
  foldComment: false
  foldClassAndInterface: Inner class
  foldInnerClass: true
  foldLocalFunction: true
  foldOnFileOpen: true
server:
  languageServer: clangd
  args: ["--background-index"]
  languageId: cpp
  workspaceRoot: /src/project
log:
  level: debug
  format: json
`)

	settings, err := Load(path)
	require.NoError(t, err)

	expected := fold.Config{
		FoldRegion:            true,
		FoldImport:            true,
		FoldComment:           false,
		FoldClassAndInterface: fold.ClassFoldingInnerOnly,
		FoldInnerClass:        true,
		FoldLocalFunction:     true,
		FoldOnFileOpen:        true,
	}
	assert.Equal(t, expected, settings.Fold)
	assert.Equal(t, "clangd", settings.Server.LanguageServer)
	assert.Equal(t, []string{"--background-index"}, settings.Server.LanguageServerArgs)
	assert.Equal(t, "cpp", settings.Server.LanguageID)
	assert.Equal(t, "/src/project", settings.Server.WorkspaceRoot)
	assert.Equal(t, "debug", settings.Server.LogLevel)
	assert.Equal(t, "json", settings.Server.LogFormat)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
foldToDefinitions:
  foldRegion: true
  foldClassAndInterface: None
`)
	t.Setenv("FOLDTODEF_FOLD_REGION", "false")
	t.Setenv("FOLDTODEF_FOLD_CLASS_AND_INTERFACE", "All")
	t.Setenv("FOLDTODEF_LOG_LEVEL", "warn")
	t.Setenv("FOLDTODEF_UNRELATED", "ignored")

	settings, err := Load(path)
	require.NoError(t, err)

	assert.False(t, settings.Fold.FoldRegion)
	assert.Equal(t, fold.ClassFoldingAll, settings.Fold.FoldClassAndInterface)
	assert.Equal(t, "warn", settings.Server.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		message string
	}{
		{
			name: "Missing explicit file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.yaml")
			},
			message: "not found",
		},
		{
			name: "Invalid class folding value",
			path: func(t *testing.T) string {
				return writeConfig(t, "foldToDefinitions:\n  foldClassAndInterface: Outer\n")
			},
			message: "foldClassAndInterface",
		},
		{
			name: "Malformed YAML",
			path: func(t *testing.T) string {
				return writeConfig(t, "foldToDefinitions: [unterminated\n")
			},
			message: "failed to load config file",
		},
		{
			name: "Directory instead of file",
			path: func(t *testing.T) string {
				return t.TempDir()
			},
			message: "is a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "foldToDefinitions.foldOnFileOpen", envKey("FOLDTODEF_FOLD_ON_FILE_OPEN"))
	assert.Equal(t, "server.languageServer", envKey("FOLDTODEF_LANGUAGE_SERVER"))
	assert.Equal(t, "", envKey("FOLDTODEF_SOMETHING_ELSE"))
}
