package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/foldtodef/internal/client"
	"github.com/averycrespi/foldtodef/internal/config"
	"github.com/averycrespi/foldtodef/internal/folder"
	"github.com/averycrespi/foldtodef/internal/tools"
	"github.com/averycrespi/foldtodef/pkg/project"
	"github.com/averycrespi/foldtodef/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &FoldServer{}

// FoldServer serves the fold tools over MCP
type FoldServer struct {
	mcpServer  *server.MCPServer
	manager    *client.Manager
	folder     *folder.Folder
	recorder   *folder.Recorder
	store      *config.Store
	configPath string
}

// NewFoldServer creates a new fold MCP server. When configPath is set the
// file is watched and changes apply to the next fold.
func NewFoldServer(store *config.Store, configPath string) *FoldServer {
	settings := store.Current()
	languageServer := client.NewLanguageServerClient(settings.Server)
	return newFoldServer(store, configPath, languageServer)
}

func newFoldServer(store *config.Store, configPath string, languageServer types.Client) *FoldServer {
	settings := store.Current()
	manager := client.NewManager(languageServer, settings.Server.WorkspaceRoot)
	recorder := folder.NewRecorder()

	s := &FoldServer{
		mcpServer:  server.NewMCPServer(project.Name, project.Version, server.WithToolCapabilities(false)),
		manager:    manager,
		folder:     folder.NewFolder(manager, manager, store.Fold, recorder),
		recorder:   recorder,
		store:      store,
		configPath: configPath,
	}
	s.registerTools()
	return s
}

// Start serves MCP over stdio until the client disconnects
func (s *FoldServer) Start(ctx context.Context) error {
	settings := s.store.Current()
	slog.Info("Starting fold MCP server",
		"workspace_root", settings.Server.WorkspaceRoot,
		"language_server", settings.Server.LanguageServer,
		"config", s.configPath)

	if s.configPath != "" {
		s.watchConfig(ctx)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *FoldServer) watchConfig(ctx context.Context) {
	watcher, err := config.NewWatcher(s.configPath, s.store)
	if err != nil {
		slog.Warn("Config reload disabled", "path", s.configPath, "error", err)
		return
	}
	watcher.OnReload(func(settings *config.Settings) {
		slog.Debug("Fold configuration reloaded", "config", settings.Fold)
	})

	go func() {
		if err := watcher.Run(ctx); err != nil {
			slog.Error("Config watcher stopped", "error", err)
		}
	}()
}

func (s *FoldServer) registerTools() {
	settings := s.store.Current().Server
	tools.Register(s.mcpServer,
		tools.NewFoldToDefinitionsTool(s.folder, settings),
		tools.NewDocumentOpenedTool(s.folder, settings),
		tools.NewGetFoldStateTool(s.recorder, settings),
		tools.NewGetFoldConfigTool(s.folder, settings),
	)
}

// Shutdown stops the language server if it was started
func (s *FoldServer) Shutdown(ctx context.Context) error {
	if err := s.manager.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown language server: %w", err)
	}

	return nil
}
