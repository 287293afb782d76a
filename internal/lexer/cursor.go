package lexer

import "unicode/utf8"

// Cursor tracks the byte offset together with the 0-based line and the
// UTF-16 column of the next unread character.
type Cursor struct {
	src  string
	Off  int
	Line int
	Col  int
}

// NewCursor creates a cursor at the start of src.
func NewCursor(src string) Cursor {
	return Cursor{src: src}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.Off >= len(c.src)
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.Off]
}

// Peek2 читает текущий и следующий байт
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= len(c.src) {
		return 0, 0, false
	}
	return c.src[c.Off], c.src[c.Off+1], true
}

// HasPrefix reports whether the unread text starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	return len(c.src)-c.Off >= len(s) && c.src[c.Off:c.Off+len(s)] == s
}

// Bump consumes one rune and updates line/column. Returns the rune read.
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return 0
	}
	r, size := rune(c.src[c.Off]), 1
	if r >= utf8.RuneSelf {
		r, size = utf8.DecodeRuneInString(c.src[c.Off:])
	}
	c.Off += size
	if r == '\n' {
		c.Line++
		c.Col = 0
		return r
	}
	if r > 0xFFFF {
		c.Col += 2
	} else {
		c.Col++
	}
	return r
}

// Mark это метка начала токена
type Mark struct {
	Off  int
	Line int
	Col  int
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Line: c.Line, Col: c.Col}
}

// Slice returns the source text between m and the cursor.
func (c *Cursor) Slice(m Mark) string {
	return c.src[m.Off:c.Off]
}

// AtLineEnd reports whether the cursor sits on "\n" or "\r\n".
func (c *Cursor) AtLineEnd() bool {
	switch c.Peek() {
	case '\n':
		return true
	case '\r':
		_, b1, ok := c.Peek2()
		return ok && b1 == '\n'
	}
	return false
}
