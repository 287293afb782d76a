package token

import "glint/internal/source"

// Token is a classified, positioned lexeme.
type Token struct {
	Kind   Kind   `json:"kind"`
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Col    int    `json:"col"`
	Offset int    `json:"offset"` // byte offset of the first character (the quote for strings)
	Valid  bool   `json:"valid"`
}

// Pos returns the token start.
func (t Token) Pos() source.Position {
	return source.Position{Line: t.Line, Col: t.Col}
}

// End returns the position just past the token's text. For strings the
// quotes are not part of Text, so this is only exact for non-string kinds.
func (t Token) End() source.Position {
	return source.Position{Line: t.Line, Col: t.Col + source.UTF16Len(t.Text)}
}

// Range spans the token's text starting at its own position.
func (t Token) Range() source.Range {
	return source.Range{Start: t.Pos(), End: t.End()}
}

// Is reports whether the token has the given kind and exact text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// IsKeyword reports whether the token is the given reserved word.
func (t Token) IsKeyword(word string) bool { return t.Is(Keyword, word) }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Identifier }
