package symbols

import (
	"glint/internal/source"
	"glint/internal/token"
)

// Extract walks tokens once and records declarations at a single flat level.
// Blocks are not tracked, so nested declarations land next to top-level ones.
// Malformed declarations are skipped silently.
func Extract(tokens []token.Token) *DocumentInfo {
	info := NewDocumentInfo()
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if tok.Kind != token.Keyword {
			i++
			continue
		}
		switch tok.Text {
		case token.KwLoad:
			i = extractLoad(info, tokens, i)
		case token.KwFunction, token.KwLet, token.KwStruct, token.KwData:
			i = extractDecl(info, tokens, i)
		default:
			i++
		}
	}
	return info
}

// extractLoad handles `load system <name>`; returns the next index.
func extractLoad(info *DocumentInfo, tokens []token.Token, i int) int {
	if i+2 >= len(tokens) {
		return i + 1
	}
	sys, name := tokens[i+1], tokens[i+2]
	if !sys.IsKeyword(token.KwSystem) || !name.IsIdent() {
		return i + 1
	}
	info.Imports = append(info.Imports, name.Text)
	return i + 3
}

// extractDecl handles function/let/struct/data followed by a name.
func extractDecl(info *DocumentInfo, tokens []token.Token, i int) int {
	kw := tokens[i]
	if i+1 >= len(tokens) || !tokens[i+1].IsIdent() {
		return i + 1
	}
	name := tokens[i+1]
	sym := Symbol{
		Name:      name.Text,
		Range:     source.Range{Start: kw.Pos(), End: name.End()},
		Selection: name.Range(),
	}
	switch kw.Text {
	case token.KwFunction:
		sym.Kind = KindFunction
		sym.DisplayType = "function"
	case token.KwLet:
		sym.Kind = KindVariable
		sym.DisplayType = "variable"
	default:
		sym.Kind = KindStructLike
		sym.Tag = kw.Text
		sym.DisplayType = kw.Text
	}
	info.Declare(sym)
	return i + 2
}
