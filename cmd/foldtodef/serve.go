package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/averycrespi/foldtodef/internal/config"
	"github.com/averycrespi/foldtodef/internal/server"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

// serveCmd runs the MCP server over stdio
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the fold tools over MCP stdio",
	Long: `Serve fold_to_definitions, document_opened, get_fold_state and
get_fold_config over MCP stdio.

Changes to the config file apply to the next fold without a restart.

Examples:
  foldtodef serve
  foldtodef serve --config ./foldtodef.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	foldServer := server.NewFoldServer(config.NewStore(settings), watchedConfigPath())
	defer func() {
		if err := foldServer.Shutdown(context.Background()); err != nil {
			slog.Error("Failed to shut down", "error", err)
		}
	}()

	if err := foldServer.Start(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}
