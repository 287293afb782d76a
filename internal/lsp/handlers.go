package lsp

import (
	"encoding/json"

	"glint/internal/query"
)

func (s *Server) handleHover(msg *rpcMessage) error {
	var params hoverParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	uri := canonicalURI(params.TextDocument.URI)
	h, ok := s.providers.Hover(uri, fromPosition(params.Position))
	if !ok {
		return s.sendResponse(msg.ID, nil)
	}
	rng := toRange(h.Range)
	return s.sendResponse(msg.ID, hover{
		Contents: markupContent{Kind: "markdown", Value: h.Markdown},
		Range:    &rng,
	})
}

func (s *Server) handleCompletion(msg *rpcMessage) error {
	var params completionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	uri := canonicalURI(params.TextDocument.URI)
	items := s.providers.Completion(uri, fromPosition(params.Position))
	list := completionList{IsIncomplete: false, Items: make([]completionItem, 0, len(items))}
	for _, it := range items {
		ci := completionItem{Label: it.Label, Kind: it.Kind, Detail: it.Detail}
		if it.Documentation != "" {
			ci.Documentation = &markupContent{Kind: "markdown", Value: it.Documentation}
		}
		list.Items = append(list.Items, ci)
	}
	return s.sendResponse(msg.ID, list)
}

func (s *Server) handleDefinition(msg *rpcMessage) error {
	var params definitionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	uri := canonicalURI(params.TextDocument.URI)
	loc, ok := s.providers.Definition(uri, fromPosition(params.Position))
	if !ok {
		return s.sendResponse(msg.ID, nil)
	}
	return s.sendResponse(msg.ID, location{URI: loc.URI, Range: toRange(loc.Range)})
}

func (s *Server) handleDocumentSymbol(msg *rpcMessage) error {
	var params documentSymbolParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	uri := canonicalURI(params.TextDocument.URI)
	return s.sendResponse(msg.ID, toDocumentSymbols(s.providers.DocumentSymbols(uri)))
}

func toDocumentSymbols(outline []query.Outline) []documentSymbol {
	out := make([]documentSymbol, 0, len(outline))
	for _, o := range outline {
		out = append(out, documentSymbol{
			Name:           o.Name,
			Detail:         o.Detail,
			Kind:           o.Kind,
			Range:          toRange(o.Range),
			SelectionRange: toRange(o.Selection),
		})
	}
	return out
}
