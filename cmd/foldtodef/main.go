// Package main implements the foldtodef CLI: an MCP server and a one-shot
// command that fold source files down to their definitions.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/averycrespi/foldtodef/internal/config"
	"github.com/averycrespi/foldtodef/internal/logging"
	"github.com/averycrespi/foldtodef/pkg/project"

	"github.com/spf13/cobra"
)

var (
	// configPath is the YAML config file; empty means the default location
	configPath     string
	workspaceRoot  string
	languageServer string
	logLevel       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   project.Name,
	Short: "Fold source files down to their definitions",
	Long: `foldtodef asks a language server for the outline and folding ranges of a
file and decides which lines to fold so that only top-level definitions stay
visible.

Examples:
  # Serve the fold tools over MCP stdio
  foldtodef serve --workspace-root ./project

  # Print the fold commands for a single file
  foldtodef lines internal/server/server.go --format json`,
	Version:      project.Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML config file (default: user config dir/foldtodef/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&workspaceRoot, "workspace-root", "", "Root directory of the workspace")
	rootCmd.PersistentFlags().StringVar(&languageServer, "language-server", "", "Language server command")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// loadSettings loads the config file and environment, applies flag
// overrides, and sets up logging
func loadSettings() (*config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if workspaceRoot != "" {
		settings.Server.WorkspaceRoot = workspaceRoot
	}
	if languageServer != "" {
		settings.Server.LanguageServer = languageServer
	}
	if logLevel != "" {
		settings.Server.LogLevel = logLevel
	}

	if err := logging.Setup(logging.Config{
		Level:  settings.Server.LogLevel,
		Format: settings.Server.LogFormat,
	}); err != nil {
		return nil, err
	}

	if stat, err := os.Stat(settings.Server.WorkspaceRoot); err != nil || !stat.IsDir() {
		return nil, fmt.Errorf("invalid workspace root: %s", settings.Server.WorkspaceRoot)
	}
	if absPath, err := filepath.Abs(settings.Server.WorkspaceRoot); err == nil {
		settings.Server.WorkspaceRoot = absPath
	}

	return settings, nil
}

// watchedConfigPath returns the config file to watch for changes, or "" when
// there is none
func watchedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	path, err := config.DefaultPath()
	if err != nil {
		return ""
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return path
}
