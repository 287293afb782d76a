package lexer

import (
	"strings"

	"glint/internal/token"
)

// scanString читает литерал в кавычках '"' или '\''.
// '\' добавляет следующий символ как есть (без декодирования \n и т.п.).
// Перевод строки или конец текста до закрывающей кавычки дают Valid=false
// с накопленным значением; '\n' при этом не съедается.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Peek()
	lx.cursor.Bump()

	var b strings.Builder
	for !lx.cursor.EOF() && !lx.cursor.AtLineEnd() {
		ch := lx.cursor.Peek()
		if ch == quote {
			lx.cursor.Bump()
			return lx.emitString(start, b.String(), true)
		}
		if ch == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() || lx.cursor.AtLineEnd() {
				break
			}
			b.WriteRune(lx.cursor.Bump())
			continue
		}
		b.WriteRune(lx.cursor.Bump())
	}
	return lx.emitString(start, b.String(), false)
}

func (lx *Lexer) emitString(start Mark, value string, valid bool) token.Token {
	return token.Token{
		Kind:   token.String,
		Text:   value,
		Line:   start.Line,
		Col:    start.Col,
		Offset: start.Off,
		Valid:  valid,
	}
}
