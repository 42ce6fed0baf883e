package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/averycrespi/foldtodef/internal/client"
	"github.com/averycrespi/foldtodef/internal/fold"
	"github.com/averycrespi/foldtodef/internal/folder"
	"github.com/averycrespi/foldtodef/internal/tools"

	"github.com/spf13/cobra"
)

var (
	linesFormat string
	linesOnOpen bool
)

func init() {
	linesCmd.Flags().StringVar(&linesFormat, "format", folder.FormatText, "Output format (text, json)")
	linesCmd.Flags().BoolVar(&linesOnOpen, "on-open", false, "Treat the call as a file-open event, folding only when foldOnFileOpen is set")
	rootCmd.AddCommand(linesCmd)
}

// linesCmd folds one file and prints the fold commands
var linesCmd = &cobra.Command{
	Use:   "lines FILE",
	Short: "Print the fold commands for a file",
	Long: `Fold a file down to its definitions and print the resulting commands:
an unfold-all followed by a fold of the zero-based start lines. Nothing is
printed when there is nothing to fold.

Examples:
  foldtodef lines main.go
  foldtodef lines main.go --format json
  FOLDTODEF_FOLD_CLASS_AND_INTERFACE=All foldtodef lines Shapes.java --language-server jdtls`,
	Args: cobra.ExactArgs(1),
	RunE: runLines,
}

func runLines(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	executor, err := folder.NewWriterExecutor(os.Stdout, linesFormat)
	if err != nil {
		return err
	}

	ctx := context.Background()
	manager := client.NewManager(client.NewLanguageServerClient(settings.Server), settings.Server.WorkspaceRoot)
	defer func() {
		if err := manager.Shutdown(ctx); err != nil {
			slog.Error("Failed to shut down language server", "error", err)
		}
	}()

	cfg := settings.Fold
	f := folder.NewFolder(manager, manager, func() fold.Config { return cfg }, executor)
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", args[0], err)
	}
	uri := tools.PathToUri(path, settings.Server.WorkspaceRoot)

	var result folder.Result
	if linesOnOpen {
		var attempted bool
		result, attempted, err = f.DocumentOpened(ctx, uri)
		if err == nil && !attempted {
			slog.Info("Folding on file open is disabled", "uri", uri)
			return nil
		}
	} else {
		result, err = f.Fold(ctx, uri)
	}
	if err != nil {
		return fmt.Errorf("failed to fold %s: %w", args[0], err)
	}

	if !result.Applied {
		slog.Info("Nothing to fold", "uri", uri)
	}
	return nil
}
