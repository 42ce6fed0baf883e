// Package fold decides which lines of a document to collapse so that only
// top-level definitions stay visible. It works purely on a symbol outline and
// a list of folding ranges; fetching those and applying the folds is left to callers.
package fold

import (
	"slices"

	"go.lsp.dev/protocol"
)

var (
	classLikeKinds = []protocol.SymbolKind{
		protocol.SymbolKindClass,
		protocol.SymbolKindInterface,
	}
	functionKinds = []protocol.SymbolKind{
		protocol.SymbolKindMethod,
		protocol.SymbolKindFunction,
	}
	targetKinds = []protocol.SymbolKind{
		protocol.SymbolKindClass,
		protocol.SymbolKindInterface,
		protocol.SymbolKindMethod,
		protocol.SymbolKindFunction,
		protocol.SymbolKindProperty,
		protocol.SymbolKindConstructor,
		protocol.SymbolKindOperator,
	}
)

// IsTargetKind reports whether symbols of this kind are ever considered for folding
func IsTargetKind(kind protocol.SymbolKind) bool {
	return slices.Contains(targetKinds, kind)
}

// SelectFoldable returns every symbol in the outline that should be folded, in pre-order
func SelectFoldable(roots []Symbol, cfg Config) []Symbol {
	var selected []Symbol
	walk(roots, nil, roots, cfg, &selected)
	return selected
}

func walk(symbols []Symbol, ancestors []protocol.SymbolKind, topLevel []Symbol, cfg Config, selected *[]Symbol) {
	for _, symbol := range symbols {
		if IsFoldable(symbol, ancestors, topLevel, cfg) {
			*selected = append(*selected, symbol)
		}
		if len(symbol.Children) > 0 {
			// Cap the slice so siblings never share a backing array.
			path := append(ancestors[:len(ancestors):len(ancestors)], symbol.Kind)
			walk(symbol.Children, path, topLevel, cfg, selected)
		}
	}
}

// IsFoldable decides whether a single symbol should be folded.
//
// ancestors holds the kinds on the path from the outline root down to the
// symbol's parent. topLevel is the unmodified root list of the outline; it is
// used to recover class nesting from range containment when a symbol provider
// reports nested classes as flat siblings.
func IsFoldable(symbol Symbol, ancestors []protocol.SymbolKind, topLevel []Symbol, cfg Config) bool {
	if symbol.Range.IsSingleLine() {
		return false
	}
	if !IsTargetKind(symbol.Kind) {
		return false
	}

	isLocalFunction := slices.Contains(functionKinds, symbol.Kind) && containsAny(ancestors, functionKinds)
	isClassLike := slices.Contains(classLikeKinds, symbol.Kind)
	isInnerClassLike := cfg.FoldClassAndInterface == ClassFoldingInnerOnly &&
		isClassLike &&
		(containsAny(ancestors, classLikeKinds) || containedInTopLevelClass(symbol, topLevel))

	if isLocalFunction && !cfg.FoldLocalFunction {
		return false
	}
	if isClassLike && !isInnerClassLike && cfg.FoldClassAndInterface != ClassFoldingAll {
		return false
	}
	if isInnerClassLike && cfg.FoldClassAndInterface != ClassFoldingAll && cfg.FoldClassAndInterface != ClassFoldingInnerOnly {
		return false
	}
	return true
}

func containedInTopLevelClass(symbol Symbol, topLevel []Symbol) bool {
	for _, container := range topLevel {
		if slices.Contains(classLikeKinds, container.Kind) && container.Range.StrictlyContains(symbol.Range) {
			return true
		}
	}
	return false
}

func containsAny(kinds []protocol.SymbolKind, wanted []protocol.SymbolKind) bool {
	for _, kind := range kinds {
		if slices.Contains(wanted, kind) {
			return true
		}
	}
	return false
}
