package lexer

// skipTrivia пропускает пробелы и строчные комментарии перед токеном.
// Комментарий идёт от лидера до конца строки; сам '\n' съедается как пробел.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isSpace(b) {
			lx.cursor.Bump()
			continue
		}
		if lx.atCommentLead() {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}
		return
	}
}

func (lx *Lexer) atCommentLead() bool {
	switch lx.opts.Comment {
	case CommentDashes:
		return lx.cursor.HasPrefix("--")
	default:
		return lx.cursor.Peek() == '%'
	}
}
