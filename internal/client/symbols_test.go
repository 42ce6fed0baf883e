package client

import (
	"encoding/json"
	"testing"

	"github.com/averycrespi/foldtodef/internal/fold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
)

func TestDecodeDocumentSymbols(t *testing.T) {
	tests := []struct {
		name        string
		response    string
		expected    []fold.Symbol
		expectError bool
	}{
		{
			name:     "Null response",
			response: `null`,
			expected: []fold.Symbol{},
		},
		{
			name:     "Empty array",
			response: `[]`,
			expected: []fold.Symbol{},
		},
		{
			name: "Hierarchical symbols",
			response: `[{
				"name": "Calculator",
				"kind": 5,
				"range": {"start": {"line": 2, "character": 0}, "end": {"line": 12, "character": 1}},
				"selectionRange": {"start": {"line": 2, "character": 6}, "end": {"line": 2, "character": 16}},
				"children": [{
					"name": "Add",
					"kind": 6,
					"range": {"start": {"line": 4, "character": 2}, "end": {"line": 6, "character": 3}},
					"selectionRange": {"start": {"line": 4, "character": 2}, "end": {"line": 4, "character": 5}}
				}]
			}]`,
			expected: []fold.Symbol{
				{
					Name: "Calculator",
					Kind: protocol.SymbolKindClass,
					Range: fold.Range{
						Start: fold.Position{Line: 2, Character: 0},
						End:   fold.Position{Line: 12, Character: 1},
					},
					Children: []fold.Symbol{
						{
							Name: "Add",
							Kind: protocol.SymbolKindMethod,
							Range: fold.Range{
								Start: fold.Position{Line: 4, Character: 2},
								End:   fold.Position{Line: 6, Character: 3},
							},
						},
					},
				},
			},
		},
		{
			name: "Flat symbol information",
			response: `[
				{"name": "Outer", "kind": 5, "location": {"uri": "file:///tmp/a.cs", "range": {"start": {"line": 0, "character": 0}, "end": {"line": 10, "character": 1}}}},
				{"name": "Inner", "kind": 5, "location": {"uri": "file:///tmp/a.cs", "range": {"start": {"line": 1, "character": 4}, "end": {"line": 9, "character": 5}}}}
			]`,
			expected: []fold.Symbol{
				{
					Name:  "Outer",
					Kind:  protocol.SymbolKindClass,
					Range: fold.Range{Start: fold.Position{Line: 0}, End: fold.Position{Line: 10, Character: 1}},
				},
				{
					Name:  "Inner",
					Kind:  protocol.SymbolKindClass,
					Range: fold.Range{Start: fold.Position{Line: 1, Character: 4}, End: fold.Position{Line: 9, Character: 5}},
				},
			},
		},
		{
			name:        "Unexpected shape",
			response:    `{"name": "not an array"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := decodeDocumentSymbols(json.RawMessage(tt.response))
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
