package fold

import "slices"

// Plan is the outcome of one fold evaluation
type Plan struct {
	Symbols []Symbol       `json:"symbols,omitempty"`
	Ranges  []FoldingRange `json:"ranges,omitempty"`
	// Lines is the ascending, duplicate free set of zero-based lines to fold
	Lines []int `json:"lines"`
}

// Empty reports whether nothing qualified for folding
func (p Plan) Empty() bool {
	return len(p.Lines) == 0
}

// Compute selects symbols and folding ranges and merges their start lines
func Compute(symbols []Symbol, ranges []FoldingRange, cfg Config) Plan {
	plan := Plan{
		Symbols: SelectFoldable(symbols, cfg),
		Ranges:  SelectFoldingRanges(ranges, cfg),
	}

	lines := make([]int, 0, len(plan.Symbols)+len(plan.Ranges))
	for _, symbol := range plan.Symbols {
		lines = append(lines, symbol.Range.Start.Line)
	}
	for _, r := range plan.Ranges {
		lines = append(lines, r.Start)
	}
	slices.Sort(lines)
	plan.Lines = slices.Compact(lines)

	return plan
}

// ComputeFoldLines returns the lines to fold. The boolean is false when
// nothing qualifies, in which case the fold executor should not be invoked.
func ComputeFoldLines(symbols []Symbol, ranges []FoldingRange, cfg Config) ([]int, bool) {
	plan := Compute(symbols, ranges, cfg)
	return plan.Lines, !plan.Empty()
}
