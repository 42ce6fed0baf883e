package results

import (
	"strings"

	"github.com/averycrespi/foldtodef/internal/fold"
)

// SourceContext represents the source lines that remain visible after folding
type SourceContext struct {
	Lines []SourceLine `json:"lines"`
}

// SourceLine represents a line of source code
type SourceLine struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
	Folded  bool   `json:"folded"`
}

// NewFoldPreview renders content as it looks once plan is applied.
// Each fold keeps its first line visible and hides the rest of its range.
func NewFoldPreview(content string, plan fold.Plan) *SourceContext {
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	hiddenUntil := make(map[int]int)
	extend := func(start, end int) {
		if end > hiddenUntil[start] {
			hiddenUntil[start] = end
		}
	}
	for _, symbol := range plan.Symbols {
		extend(symbol.Range.Start.Line, symbol.Range.End.Line)
	}
	for _, r := range plan.Ranges {
		extend(r.Start, r.End)
	}

	preview := &SourceContext{Lines: make([]SourceLine, 0, len(lines))}
	hidden := -1
	for i, line := range lines {
		if i <= hidden {
			continue
		}
		end, folded := hiddenUntil[i]
		folded = folded && end > i
		if folded {
			hidden = end
		}
		preview.Lines = append(preview.Lines, SourceLine{
			Number:  i + 1,
			Content: line,
			Folded:  folded,
		})
	}

	return preview
}
