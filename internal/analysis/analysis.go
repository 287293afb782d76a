// Package analysis runs the per-document pipeline (tokenize, extract,
// validate) and keeps the results in an explicit Store keyed by URI.
package analysis

import (
	"fmt"

	"glint/internal/check"
	"glint/internal/diag"
	"glint/internal/lexer"
	"glint/internal/observ"
	"glint/internal/source"
	"glint/internal/symbols"
	"glint/internal/token"
)

// Options configure one analysis run.
type Options struct {
	Lexer lexer.Options
	Check check.Options
	// Timer, when set, receives one phase per pipeline step.
	Timer *observ.Timer
}

// Document is the full derived state of one text snapshot.
type Document struct {
	URI         string
	File        *source.File
	Tokens      []token.Token
	Truncated   bool
	Info        *symbols.DocumentInfo
	Diagnostics []diag.Diagnostic
}

// Text returns the analysed text.
func (d *Document) Text() string {
	if d == nil || d.File == nil {
		return ""
	}
	return d.File.Text()
}

// Line returns the n-th line of the analysed text.
func (d *Document) Line(n int) (string, bool) {
	if d == nil || d.File == nil {
		return "", false
	}
	return d.File.Line(n)
}

// Analyze runs the pipeline on text without touching any store.
func Analyze(uri, text string, opts Options) *Document {
	return AnalyzeFile(uri, source.NewVirtual(uri, text), opts)
}

// AnalyzeFile is Analyze over an already loaded file.
func AnalyzeFile(uri string, file *source.File, opts Options) *Document {
	timer := opts.Timer

	idx := timer.Begin(observ.PhaseTokenize)
	res := lexer.Scan(file.Text(), opts.Lexer)
	note := fmt.Sprintf("%d tokens", len(res.Tokens))
	if res.Truncated {
		note += " (truncated)"
	}
	timer.End(idx, note)

	idx = timer.Begin(observ.PhaseSymbols)
	info := symbols.Extract(res.Tokens)
	timer.End(idx, fmt.Sprintf("%d symbols", info.Len()))

	idx = timer.Begin(observ.PhaseValidate)
	diags := check.ValidateWith(res.Tokens, opts.Check)
	timer.End(idx, fmt.Sprintf("%d diagnostics", len(diags)))

	return &Document{
		URI:         uri,
		File:        file,
		Tokens:      res.Tokens,
		Truncated:   res.Truncated,
		Info:        info,
		Diagnostics: diags,
	}
}
