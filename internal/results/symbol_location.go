package results

import "github.com/averycrespi/foldtodef/internal/fold"

// SymbolLocation represents the location of a symbol.
// Unlike fold.Position, it contains a file and is 1-indexed (not 0-indexed).
type SymbolLocation struct {
	File        string `json:"file"`
	DisplayLine int    `json:"line"`
	DisplayChar int    `json:"character"`
}

// NewSymbolLocation converts a zero-based position in file to display coordinates
func NewSymbolLocation(file string, position fold.Position) SymbolLocation {
	return SymbolLocation{
		File:        file,
		DisplayLine: position.Line + 1,
		DisplayChar: position.Character + 1,
	}
}
