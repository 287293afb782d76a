package lexer

import "glint/internal/token"

// scanNumber жадно берёт цифры и точки: "1.2.3" это один токен.
// Формат проверяет check.Validate, не лексер.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if !isDec(b) && b != '.' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.Number, start)
}
