package lexer

import "glint/internal/token"

// scanIdentOrKeyword сканирует [A-Za-z_][A-Za-z0-9_]* и проверяет через token.IsKeyword.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if token.IsKeyword(lx.cursor.Slice(start)) {
		return lx.emit(token.Keyword, start)
	}
	return lx.emit(token.Identifier, start)
}
