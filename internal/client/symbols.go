package client

import (
	"encoding/json"
	"fmt"

	"github.com/averycrespi/foldtodef/internal/fold"

	"go.lsp.dev/protocol"
)

// decodeDocumentSymbols converts a textDocument/documentSymbol response.
// The response can be null, DocumentSymbol[] (hierarchical) or SymbolInformation[] (flat).
func decodeDocumentSymbols(response json.RawMessage) ([]fold.Symbol, error) {
	if len(response) == 0 || string(response) == "null" {
		return []fold.Symbol{}, nil
	}

	// Only SymbolInformation carries a location, so the first element tells the formats apart
	var probe []map[string]json.RawMessage
	if err := json.Unmarshal(response, &probe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document symbols response: %w", err)
	}
	if len(probe) == 0 {
		return []fold.Symbol{}, nil
	}

	if _, flat := probe[0]["location"]; flat {
		var infos []protocol.SymbolInformation
		if err := json.Unmarshal(response, &infos); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document symbols response: %w", err)
		}
		symbols := make([]fold.Symbol, len(infos))
		for i, info := range infos {
			symbols[i] = fold.Symbol{
				Name:  info.Name,
				Kind:  info.Kind,
				Range: convertRange(info.Location.Range),
			}
		}
		return symbols, nil
	}

	var documentSymbols []protocol.DocumentSymbol
	if err := json.Unmarshal(response, &documentSymbols); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document symbols response: %w", err)
	}
	return convertDocumentSymbols(documentSymbols), nil
}

func convertDocumentSymbols(documentSymbols []protocol.DocumentSymbol) []fold.Symbol {
	symbols := make([]fold.Symbol, len(documentSymbols))
	for i, docSym := range documentSymbols {
		symbols[i] = fold.Symbol{
			Name:  docSym.Name,
			Kind:  docSym.Kind,
			Range: convertRange(docSym.Range),
		}
		if len(docSym.Children) > 0 {
			symbols[i].Children = convertDocumentSymbols(docSym.Children)
		}
	}
	return symbols
}

func convertRange(r protocol.Range) fold.Range {
	return fold.Range{
		Start: fold.Position{Line: int(r.Start.Line), Character: int(r.Start.Character)},
		End:   fold.Position{Line: int(r.End.Line), Character: int(r.End.Character)},
	}
}
