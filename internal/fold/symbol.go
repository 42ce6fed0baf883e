package fold

import "go.lsp.dev/protocol"

// Position is a zero-based line and character offset in a document
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Before reports whether p comes strictly before other
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Character < other.Character
}

// After reports whether p comes strictly after other
func (p Position) After(other Position) bool {
	return other.Before(p)
}

// Range is an inclusive span between two positions
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// IsSingleLine reports whether the range starts and ends on the same line
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// StrictlyContains reports whether r begins before and ends after other
func (r Range) StrictlyContains(other Range) bool {
	return r.Start.Before(other.Start) && r.End.After(other.End)
}

// Symbol is one named construct in a document outline.
// Children are owned by their parent and are expected to lie inside its range.
type Symbol struct {
	Name     string              `json:"name"`
	Kind     protocol.SymbolKind `json:"kind"`
	Range    Range               `json:"range"`
	Children []Symbol            `json:"children,omitempty"`
}

// RangeKind tags a folding range; values match the LSP wire format
type RangeKind string

const (
	RangeKindComment RangeKind = "comment"
	RangeKindImports RangeKind = "imports"
	RangeKindRegion  RangeKind = "region"
)

// FoldingRange is a structural region reported independently of the outline
type FoldingRange struct {
	Start int       `json:"start"`
	End   int       `json:"end"`
	Kind  RangeKind `json:"kind,omitempty"`
}
