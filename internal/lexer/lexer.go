package lexer

import "glint/internal/token"

// Lexer scans one text snapshot. It never fails: malformed lexemes become
// tokens (strings carry Valid=false) and are reported later by the validator.
type Lexer struct {
	cursor Cursor
	opts   Options
}

// Result is the outcome of a full scan.
type Result struct {
	Tokens []token.Token
	// Truncated is set when Options.MaxTokens stopped the scan early.
	Truncated bool
}

// New creates a lexer over text.
func New(text string, opts Options) *Lexer {
	return &Lexer{
		cursor: NewCursor(text),
		opts:   opts,
	}
}

// Tokenize scans text to the end and returns the tokens in source order.
// Empty input yields an empty (nil) slice; there is no EOF token.
func Tokenize(text string, opts Options) []token.Token {
	return Scan(text, opts).Tokens
}

// Scan is Tokenize plus the truncation flag.
func Scan(text string, opts Options) Result {
	lx := New(text, opts)
	var res Result
	for {
		tok, ok := lx.Next()
		if !ok {
			break
		}
		if opts.MaxTokens > 0 && len(res.Tokens) >= opts.MaxTokens {
			res.Truncated = true
			break
		}
		res.Tokens = append(res.Tokens, tok)
	}
	return res
}

// Next возвращает следующий токен; ok=false в конце текста.
func (lx *Lexer) Next() (token.Token, bool) {
	lx.skipTrivia()
	if lx.cursor.EOF() {
		return token.Token{}, false
	}

	ch := lx.cursor.Peek()
	var tok token.Token
	switch {
	case isQuote(ch):
		tok = lx.scanString()
	case isDec(ch):
		tok = lx.scanNumber()
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()
	case ch == '@':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		tok = lx.emit(token.At, start)
	default:
		tok = lx.scanOperatorOrPunct()
	}
	return tok, true
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	return token.Token{
		Kind:   kind,
		Text:   lx.cursor.Slice(start),
		Line:   start.Line,
		Col:    start.Col,
		Offset: start.Off,
		Valid:  true,
	}
}
