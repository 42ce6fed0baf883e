package fold

// SelectFoldingRanges keeps the ranges whose kind is enabled in cfg.
// Ranges without a recognised kind are always dropped.
func SelectFoldingRanges(ranges []FoldingRange, cfg Config) []FoldingRange {
	var selected []FoldingRange
	for _, r := range ranges {
		if rangeKindEnabled(r.Kind, cfg) {
			selected = append(selected, r)
		}
	}
	return selected
}

func rangeKindEnabled(kind RangeKind, cfg Config) bool {
	switch kind {
	case RangeKindComment:
		return cfg.FoldComment
	case RangeKindImports:
		return cfg.FoldImport
	case RangeKindRegion:
		return cfg.FoldRegion
	default:
		return false
	}
}
