package tools

import (
	"path/filepath"
	"strings"

	"go.lsp.dev/uri"
)

// PathToUri converts a file path to a file URI, resolving relative paths against workspaceRoot
func PathToUri(filePath string, workspaceRoot string) string {
	if strings.HasPrefix(filePath, uri.FileScheme+"://") {
		return filePath
	}

	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(workspaceRoot, filePath)
	}

	return string(uri.File(filepath.Clean(filePath)))
}

// UriToPath converts a file URI to a local file path. Anything else is returned unchanged.
func UriToPath(documentURI string) string {
	if !strings.HasPrefix(documentURI, uri.FileScheme+"://") {
		return documentURI
	}
	return uri.URI(documentURI).Filename()
}

// GetRelativePath converts absolute path to relative path from workspace root
func GetRelativePath(absolutePath, workspaceRoot string) string {
	if rel, err := filepath.Rel(workspaceRoot, absolutePath); err == nil {
		return rel
	}
	return filepath.Base(absolutePath)
}
