// Package folder runs the fold pipeline for a document: fetch the outline and
// folding ranges, compute the plan, and hand the lines to an executor.
package folder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/averycrespi/foldtodef/internal/fold"
	"github.com/averycrespi/foldtodef/pkg/types"
)

// Result describes one fold invocation
type Result struct {
	URI     string    `json:"uri"`
	Plan    fold.Plan `json:"plan"`
	Applied bool      `json:"applied"`
}

// Folder composes the providers, a config source and an executor
type Folder struct {
	symbols  types.SymbolProvider
	ranges   types.FoldingRangeProvider
	config   func() fold.Config
	executor types.Executor

	mu    sync.Mutex
	locks map[string]*documentLock
}

type documentLock struct {
	mu   sync.Mutex
	refs int
}

// NewFolder creates a folder. config is called once per invocation so that
// reloaded settings apply to the next fold.
func NewFolder(symbols types.SymbolProvider, ranges types.FoldingRangeProvider, config func() fold.Config, executor types.Executor) *Folder {
	if config == nil {
		config = fold.DefaultConfig
	}
	return &Folder{
		symbols:  symbols,
		ranges:   ranges,
		config:   config,
		executor: executor,
		locks:    make(map[string]*documentLock),
	}
}

// Fold folds the document at uri down to its definitions.
// Calls for the same uri are serialized.
func (f *Folder) Fold(ctx context.Context, uri string) (Result, error) {
	unlock := f.lock(uri)
	defer unlock()

	result := Result{URI: uri}
	cfg := f.config()

	symbols, err := f.symbols.DocumentSymbols(ctx, uri)
	if err != nil {
		return result, fmt.Errorf("failed to get document symbols: %w", err)
	}

	ranges, err := f.ranges.FoldingRanges(ctx, uri)
	if err != nil {
		return result, fmt.Errorf("failed to get folding ranges: %w", err)
	}

	result.Plan = fold.Compute(symbols, ranges, cfg)
	slog.Debug("Computed fold plan",
		"uri", uri,
		"symbols", len(result.Plan.Symbols),
		"ranges", len(result.Plan.Ranges),
		"lines", result.Plan.Lines)

	if result.Plan.Empty() {
		slog.Debug("Nothing to fold", "uri", uri)
		return result, nil
	}

	if err := f.executor.UnfoldAll(ctx, uri); err != nil {
		return result, fmt.Errorf("failed to unfold document: %w", err)
	}
	if err := f.executor.Fold(ctx, uri, result.Plan.Lines); err != nil {
		return result, fmt.Errorf("failed to fold document: %w", err)
	}

	result.Applied = true
	return result, nil
}

// DocumentOpened handles a file-open event. It folds only when the current
// config enables FoldOnFileOpen, and reports whether folding was attempted.
func (f *Folder) DocumentOpened(ctx context.Context, uri string) (Result, bool, error) {
	if !f.config().FoldOnFileOpen {
		slog.Debug("Fold on open disabled", "uri", uri)
		return Result{URI: uri}, false, nil
	}

	result, err := f.Fold(ctx, uri)
	return result, true, err
}

// Config returns the configuration the next invocation would use
func (f *Folder) Config() fold.Config {
	return f.config()
}

func (f *Folder) lock(uri string) func() {
	f.mu.Lock()
	l, ok := f.locks[uri]
	if !ok {
		l = &documentLock{}
		f.locks[uri] = l
	}
	l.refs++
	f.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		f.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(f.locks, uri)
		}
		f.mu.Unlock()
	}
}
