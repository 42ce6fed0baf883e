package results

import "github.com/averycrespi/foldtodef/internal/fold"

// FoldToDefinitionsToolResult represents the result of the fold_to_definitions tool
type FoldToDefinitionsToolResult struct {
	FilePath string `json:"file_path"`
	Message  string `json:"message"`
	Applied  bool   `json:"applied"`
	// Lines are the zero-based lines handed to the executor
	Lines   []int          `json:"lines"`
	Targets []FoldTarget   `json:"targets,omitempty"`
	Regions []FoldRegion   `json:"regions,omitempty"`
	Preview *SourceContext `json:"preview,omitempty"`
}

// FoldTarget is a definition that was folded
type FoldTarget struct {
	Name     string         `json:"name"`
	Kind     SymbolKind     `json:"kind"`
	Location SymbolLocation `json:"location"`
}

// FoldRegion is a comment, import or region block that was folded
type FoldRegion struct {
	Kind        fold.RangeKind `json:"kind"`
	DisplayLine int            `json:"start_line"`
	EndLine     int            `json:"end_line"`
}

// NewFoldTargets flattens the selected symbols of a plan into display targets
func NewFoldTargets(file string, symbols []fold.Symbol) []FoldTarget {
	targets := make([]FoldTarget, 0, len(symbols))
	for _, symbol := range symbols {
		targets = append(targets, FoldTarget{
			Name:     symbol.Name,
			Kind:     NewSymbolKind(symbol.Kind),
			Location: NewSymbolLocation(file, symbol.Range.Start),
		})
	}
	return targets
}

// NewFoldRegions converts the selected folding ranges of a plan to display lines
func NewFoldRegions(ranges []fold.FoldingRange) []FoldRegion {
	regions := make([]FoldRegion, 0, len(ranges))
	for _, r := range ranges {
		regions = append(regions, FoldRegion{
			Kind:        r.Kind,
			DisplayLine: r.Start + 1,
			EndLine:     r.End + 1,
		})
	}
	return regions
}
