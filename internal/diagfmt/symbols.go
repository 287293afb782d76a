package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"glint/internal/symbols"
)

// SymbolsOutput is the JSON shape of a document's table.
type SymbolsOutput struct {
	Imports []string         `json:"imports"`
	Symbols []symbols.Symbol `json:"symbols"`
}

// FormatSymbolsPretty prints imports and the symbol table in declaration order.
func FormatSymbolsPretty(w io.Writer, info *symbols.DocumentInfo) error {
	if info == nil {
		return nil
	}
	if len(info.Imports) > 0 {
		if _, err := fmt.Fprintf(w, "imports: %s\n", strings.Join(info.Imports, ", ")); err != nil {
			return err
		}
	}
	for _, sym := range info.Sorted() {
		if _, err := fmt.Fprintf(w, "%-9s %-20s %s\n", sym.DisplayType, sym.Name, sym.Range); err != nil {
			return err
		}
	}
	return nil
}

// FormatSymbolsJSON prints the table as JSON.
func FormatSymbolsJSON(w io.Writer, info *symbols.DocumentInfo) error {
	out := SymbolsOutput{Imports: []string{}, Symbols: []symbols.Symbol{}}
	if info != nil {
		out.Imports = append(out.Imports, info.Imports...)
		out.Symbols = append(out.Symbols, info.Sorted()...)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
