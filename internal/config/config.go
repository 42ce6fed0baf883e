// Package config loads foldtodef settings from a YAML file and the environment.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (FOLDTODEF_FOLD_REGION, FOLDTODEF_LOG_LEVEL, ...)
//  2. YAML config file
//  3. Defaults
//
// Example file:
//
//	foldToDefinitions:
//	  foldComment: false
//	  foldClassAndInterface: Inner class
//	server:
//	  languageServer: gopls
//	  args: [serve]
//	log:
//	  level: debug
package config

import (
	"fmt"

	"github.com/averycrespi/foldtodef/internal/fold"
	"github.com/averycrespi/foldtodef/pkg/types"
)

const (
	defaultLanguageServer = "gopls"
	defaultLanguageID     = "go"
	defaultWorkspaceRoot  = "."
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
)

var defaultLanguageServerArgs = []string{"serve"}

// Settings is one immutable snapshot of the loaded configuration
type Settings struct {
	Fold   fold.Config
	Server types.Config
}

// fileConfig mirrors the on-disk layout
type fileConfig struct {
	FoldToDefinitions foldSection   `koanf:"foldToDefinitions"`
	Server            serverSection `koanf:"server"`
	Log               logSection    `koanf:"log"`
}

type foldSection struct {
	FoldRegion            bool   `koanf:"foldRegion"`
	FoldImport            bool   `koanf:"foldImport"`
	FoldComment           bool   `koanf:"foldComment"`
	FoldClassAndInterface string `koanf:"foldClassAndInterface"`
	FoldInnerClass        bool   `koanf:"foldInnerClass"`
	FoldLocalFunction     bool   `koanf:"foldLocalFunction"`
	FoldOnFileOpen        bool   `koanf:"foldOnFileOpen"`
}

type serverSection struct {
	LanguageServer string   `koanf:"languageServer"`
	Args           []string `koanf:"args"`
	LanguageID     string   `koanf:"languageId"`
	WorkspaceRoot  string   `koanf:"workspaceRoot"`
}

type logSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the settings used when nothing is configured
func Default() *Settings {
	return &Settings{
		Fold: fold.DefaultConfig(),
		Server: types.Config{
			LanguageServer:     defaultLanguageServer,
			LanguageServerArgs: append([]string(nil), defaultLanguageServerArgs...),
			LanguageID:         defaultLanguageID,
			WorkspaceRoot:      defaultWorkspaceRoot,
			LogLevel:           defaultLogLevel,
			LogFormat:          defaultLogFormat,
		},
	}
}

// defaultFileConfig seeds the booleans that default to true; mapstructure
// leaves fields that are missing from the input untouched.
func defaultFileConfig() fileConfig {
	defaults := fold.DefaultConfig()
	return fileConfig{
		FoldToDefinitions: foldSection{
			FoldRegion:            defaults.FoldRegion,
			FoldImport:            defaults.FoldImport,
			FoldComment:           defaults.FoldComment,
			FoldClassAndInterface: defaults.FoldClassAndInterface.String(),
			FoldInnerClass:        defaults.FoldInnerClass,
			FoldLocalFunction:     defaults.FoldLocalFunction,
			FoldOnFileOpen:        defaults.FoldOnFileOpen,
		},
	}
}

func (fc fileConfig) settings() (*Settings, error) {
	classFolding, err := fold.ParseClassFolding(fc.FoldToDefinitions.FoldClassAndInterface)
	if err != nil {
		return nil, fmt.Errorf("invalid foldToDefinitions.foldClassAndInterface: %w", err)
	}

	s := Default()
	s.Fold = fold.Config{
		FoldRegion:            fc.FoldToDefinitions.FoldRegion,
		FoldImport:            fc.FoldToDefinitions.FoldImport,
		FoldComment:           fc.FoldToDefinitions.FoldComment,
		FoldClassAndInterface: classFolding,
		FoldInnerClass:        fc.FoldToDefinitions.FoldInnerClass,
		FoldLocalFunction:     fc.FoldToDefinitions.FoldLocalFunction,
		FoldOnFileOpen:        fc.FoldToDefinitions.FoldOnFileOpen,
	}

	if fc.Server.LanguageServer != "" {
		s.Server.LanguageServer = fc.Server.LanguageServer
	}
	if len(fc.Server.Args) > 0 {
		s.Server.LanguageServerArgs = fc.Server.Args
	}
	if fc.Server.LanguageID != "" {
		s.Server.LanguageID = fc.Server.LanguageID
	}
	if fc.Server.WorkspaceRoot != "" {
		s.Server.WorkspaceRoot = fc.Server.WorkspaceRoot
	}
	if fc.Log.Level != "" {
		s.Server.LogLevel = fc.Log.Level
	}
	if fc.Log.Format != "" {
		s.Server.LogFormat = fc.Log.Format
	}

	return s, nil
}
