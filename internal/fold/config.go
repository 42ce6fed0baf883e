package fold

import (
	"fmt"
	"strings"
)

// ClassFolding selects which classes and interfaces may be folded
type ClassFolding int

const (
	// ClassFoldingNone never folds classes or interfaces
	ClassFoldingNone ClassFolding = iota
	// ClassFoldingInnerOnly folds classes and interfaces nested in another one
	ClassFoldingInnerOnly
	// ClassFoldingAll folds every class and interface
	ClassFoldingAll
)

var classFoldingNames = map[ClassFolding]string{
	ClassFoldingNone:      "None",
	ClassFoldingInnerOnly: "Inner class",
	ClassFoldingAll:       "All",
}

// String returns the setting value as it appears in configuration
func (c ClassFolding) String() string {
	if name, ok := classFoldingNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ClassFolding(%d)", int(c))
}

// ParseClassFolding parses a configuration value such as "Inner class".
// Matching ignores case and separators, so "inner_class" and "InnerClassOnly" are accepted.
func ParseClassFolding(s string) (ClassFolding, error) {
	normalized := strings.ToLower(strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.TrimSpace(s)))
	switch normalized {
	case "none", "":
		return ClassFoldingNone, nil
	case "innerclass", "innerclassonly", "inner":
		return ClassFoldingInnerOnly, nil
	case "all":
		return ClassFoldingAll, nil
	default:
		return ClassFoldingNone, fmt.Errorf("invalid class folding value %q: expected one of None, Inner class, All", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (c ClassFolding) MarshalText() ([]byte, error) {
	if _, ok := classFoldingNames[c]; !ok {
		return nil, fmt.Errorf("invalid class folding value %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *ClassFolding) UnmarshalText(text []byte) error {
	parsed, err := ParseClassFolding(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Config holds the settings that drive a single fold evaluation.
// A Config is a value: callers build a new one when settings change.
type Config struct {
	FoldRegion            bool         `json:"foldRegion"`
	FoldImport            bool         `json:"foldImport"`
	FoldComment           bool         `json:"foldComment"`
	FoldClassAndInterface ClassFolding `json:"foldClassAndInterface"`
	// FoldInnerClass is accepted for compatibility with older settings files.
	// Selection is governed by FoldClassAndInterface alone.
	FoldInnerClass    bool `json:"foldInnerClass"`
	FoldLocalFunction bool `json:"foldLocalFunction"`
	FoldOnFileOpen    bool `json:"foldOnFileOpen"`
}

// DefaultConfig returns the settings used when no value is configured
func DefaultConfig() Config {
	return Config{
		FoldRegion:            true,
		FoldImport:            true,
		FoldComment:           true,
		FoldClassAndInterface: ClassFoldingNone,
		FoldInnerClass:        false,
		FoldLocalFunction:     false,
		FoldOnFileOpen:        false,
	}
}
