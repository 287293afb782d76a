package lexer

import "glint/internal/token"

// scanOperatorOrPunct: сначала двухсимвольные операторы, затем один символ
// (любая руна, включая не-ASCII) как Punctuation.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	for _, op := range token.Operators {
		if lx.cursor.HasPrefix(op) {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.emit(token.Operator, start)
		}
	}
	lx.cursor.Bump()
	return lx.emit(token.Punctuation, start)
}
