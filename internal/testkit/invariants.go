// Package testkit holds structural checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"glint/internal/diag"
	"glint/internal/source"
	"glint/internal/symbols"
	"glint/internal/token"
)

// CheckTokenInvariants runs a minimal set of token invariants against sf:
// 1) offsets strictly increase and stay inside the content
// 2) Line/Col agree with the file's own offset-to-position mapping
// 3) only string tokens may be invalid, and non-string text is the exact source slice
func CheckTokenInvariants(sf *source.File, tokens []token.Token) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	prev := -1
	for i, tok := range tokens {
		off, err := safecast.Conv[uint32](tok.Offset)
		if err != nil {
			return fmt.Errorf("token %d: bad offset %d: %w", i, tok.Offset, err)
		}
		if off >= size {
			return fmt.Errorf("token %d: offset %d beyond content %d", i, off, size)
		}
		if tok.Offset <= prev {
			return fmt.Errorf("token %d: offset %d not after %d", i, tok.Offset, prev)
		}
		prev = tok.Offset
		if got := sf.PositionOf(tok.Offset); got != tok.Pos() {
			return fmt.Errorf("token %d %q: position %s, file says %s", i, tok.Text, tok.Pos(), got)
		}
		if tok.Kind == token.String {
			continue
		}
		if !tok.Valid {
			return fmt.Errorf("token %d %q: only strings may be invalid", i, tok.Text)
		}
		if !strings.HasPrefix(string(sf.Content[tok.Offset:]), tok.Text) {
			return fmt.Errorf("token %d: text %q is not at offset %d", i, tok.Text, tok.Offset)
		}
	}
	return nil
}

// CheckSymbolInvariants verifies that the sub-tables agree with the main
// table and that every name was actually declared by an identifier token.
func CheckSymbolInvariants(info *symbols.DocumentInfo, tokens []token.Token) error {
	if info == nil {
		return fmt.Errorf("nil document info")
	}
	idents := make(map[string]bool)
	for _, tok := range tokens {
		if tok.IsIdent() {
			idents[tok.Text] = true
		}
	}
	for name, sym := range info.Symbols {
		if name != sym.Name {
			return fmt.Errorf("symbol keyed %q is named %q", name, sym.Name)
		}
		if !idents[name] {
			return fmt.Errorf("symbol %q has no identifier token", name)
		}
		_, inFuncs := info.Functions[name]
		_, inVars := info.Variables[name]
		if inFuncs != (sym.Kind == symbols.KindFunction) || inVars != (sym.Kind == symbols.KindVariable) {
			return fmt.Errorf("symbol %q (%s): sub-tables out of step", name, sym.Kind)
		}
	}
	for name := range info.Functions {
		if _, ok := info.Symbols[name]; !ok {
			return fmt.Errorf("function %q missing from symbols", name)
		}
	}
	for name := range info.Variables {
		if _, ok := info.Symbols[name]; !ok {
			return fmt.Errorf("variable %q missing from symbols", name)
		}
	}
	return nil
}

// CheckDiagnosticInvariants checks ordering and the cap.
func CheckDiagnosticInvariants(diags []diag.Diagnostic, limit int) error {
	if limit > 0 && len(diags) > limit {
		return fmt.Errorf("%d diagnostics exceed cap %d", len(diags), limit)
	}
	for i, d := range diags {
		if d.Range.End.Before(d.Range.Start) {
			return fmt.Errorf("diagnostic %d: inverted range %s", i, d.Range)
		}
		if d.Code == diag.UnknownCode {
			return fmt.Errorf("diagnostic %d: missing code", i)
		}
		if i > 0 && d.Range.Start.Before(diags[i-1].Range.Start) {
			return fmt.Errorf("diagnostic %d: out of order", i)
		}
	}
	return nil
}
