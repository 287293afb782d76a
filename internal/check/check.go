// Package check validates a token stream and reports malformed lexemes.
// The lexer is lenient; this is where strictness lives.
package check

import (
	"regexp"

	"glint/internal/diag"
	"glint/internal/source"
	"glint/internal/token"
)

// DefaultMax is the diagnostic cap used when Options.Max is zero.
const DefaultMax = 100

var numberRE = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// Options tune validation.
type Options struct {
	// Max caps the number of diagnostics; 0 means DefaultMax, negative means unlimited.
	Max int
}

func (o Options) limit() int {
	switch {
	case o.Max == 0:
		return DefaultMax
	case o.Max < 0:
		return 0
	}
	return o.Max
}

// Validate runs all checks with default options.
func Validate(tokens []token.Token) []diag.Diagnostic {
	return ValidateWith(tokens, Options{})
}

// ValidateWith runs all checks in token order.
func ValidateWith(tokens []token.Token, opts Options) []diag.Diagnostic {
	bag := diag.NewBag(opts.limit())
	Run(tokens, diag.BagReporter{Bag: bag})
	return bag.Items()
}

// Run reports into an arbitrary reporter.
func Run(tokens []token.Token, r diag.Reporter) {
	for _, tok := range tokens {
		switch tok.Kind {
		case token.String:
			checkString(tok, r)
		case token.Number:
			checkNumber(tok, r)
		case token.Identifier, token.Keyword, token.Operator, token.Punctuation, token.At:
		}
	}
}

func checkString(tok token.Token, r diag.Reporter) {
	if tok.Valid {
		return
	}
	// +1 covers the opening quote.
	width := source.UTF16Len(tok.Text) + 1
	r.Report(diag.LexUnterminatedString, diag.SevError,
		source.SingleLine(tok.Line, tok.Col, width), "Unterminated string literal")
}

func checkNumber(tok token.Token, r diag.Reporter) {
	if numberRE.MatchString(tok.Text) {
		return
	}
	r.Report(diag.LexBadNumber, diag.SevError,
		source.SingleLine(tok.Line, tok.Col, source.UTF16Len(tok.Text)), "Invalid number format")
}
