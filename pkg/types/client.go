package types

import (
	"context"

	"github.com/averycrespi/foldtodef/internal/fold"
)

// SymbolProvider produces the outline of a document
type SymbolProvider interface {
	DocumentSymbols(ctx context.Context, uri string) ([]fold.Symbol, error)
}

// FoldingRangeProvider produces the structural folding ranges of a document
type FoldingRangeProvider interface {
	FoldingRanges(ctx context.Context, uri string) ([]fold.FoldingRange, error)
}

// Client defines the language server client interface
type Client interface {
	SymbolProvider
	FoldingRangeProvider

	Start(ctx context.Context, workspaceRoot string) error
	Stop(ctx context.Context) error
}

// Executor applies fold decisions to a document view
type Executor interface {
	// UnfoldAll expands every fold in the document
	UnfoldAll(ctx context.Context, uri string) error
	// Fold collapses the regions starting at the given zero-based lines
	Fold(ctx context.Context, uri string, lines []int) error
}
