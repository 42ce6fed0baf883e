package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix         = "FOLDTODEF_"
	maxConfigFileSize = 1024 * 1024 // 1MB
)

// envKeys maps environment variable names (without prefix) to config keys
var envKeys = map[string]string{
	"FOLD_REGION":              "foldToDefinitions.foldRegion",
	"FOLD_IMPORT":              "foldToDefinitions.foldImport",
	"FOLD_COMMENT":             "foldToDefinitions.foldComment",
	"FOLD_CLASS_AND_INTERFACE": "foldToDefinitions.foldClassAndInterface",
	"FOLD_INNER_CLASS":         "foldToDefinitions.foldInnerClass",
	"FOLD_LOCAL_FUNCTION":      "foldToDefinitions.foldLocalFunction",
	"FOLD_ON_FILE_OPEN":        "foldToDefinitions.foldOnFileOpen",
	"LANGUAGE_SERVER":          "server.languageServer",
	"LANGUAGE_ID":              "server.languageId",
	"WORKSPACE_ROOT":           "server.workspaceRoot",
	"LOG_LEVEL":                "log.level",
	"LOG_FORMAT":               "log.format",
}

// DefaultPath returns the config file used when none is given,
// normally ~/.config/foldtodef/config.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, "foldtodef", "config.yaml"), nil
}

// Load reads settings from the YAML file at path, then applies environment overrides.
//
// An explicitly given path must exist. When path is empty the default path is
// used if present, and defaults plus environment apply otherwise.
func Load(path string) (*Settings, error) {
	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	content, err := readConfigFile(path)
	switch {
	case err == nil:
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		slog.Debug("Loaded config file", "path", path)
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		slog.Debug("No config file found, using defaults", "path", path)
	default:
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	fc := defaultFileConfig()
	if err := k.Unmarshal("", &fc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return fc.settings()
}

// envKey translates FOLDTODEF_FOLD_REGION into foldToDefinitions.foldRegion.
// Unknown variables are skipped.
func envKey(name string) string {
	return envKeys[strings.TrimPrefix(name, envPrefix)]
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}
