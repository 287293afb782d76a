package driver

import (
	"glint/internal/analysis"
	"glint/internal/cache"
	"glint/internal/diag"
	"glint/internal/source"
	"glint/internal/symbols"
)

func packRange(r source.Range) [4]int {
	return [4]int{r.Start.Line, r.Start.Col, r.End.Line, r.End.Col}
}

func unpackRange(v [4]int) source.Range {
	return source.Range{
		Start: source.Position{Line: v[0], Col: v[1]},
		End:   source.Position{Line: v[2], Col: v[3]},
	}
}

func toEntry(doc *analysis.Document) *cache.Entry {
	entry := &cache.Entry{
		Path:       doc.URI,
		Imports:    append([]string(nil), doc.Info.Imports...),
		TokenCount: len(doc.Tokens),
		Truncated:  doc.Truncated,
	}
	for _, sym := range doc.Info.Sorted() {
		entry.Symbols = append(entry.Symbols, cache.CachedSymbol{
			Name:        sym.Name,
			Kind:        uint8(sym.Kind),
			Tag:         sym.Tag,
			DisplayType: sym.DisplayType,
			Range:       packRange(sym.Range),
			Selection:   packRange(sym.Selection),
		})
	}
	for _, d := range doc.Diagnostics {
		entry.Diagnostics = append(entry.Diagnostics, cache.CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Range:    packRange(d.Range),
		})
	}
	return entry
}

// fromEntry rebuilds a document without tokens.
func fromEntry(uri string, file *source.File, entry *cache.Entry) *analysis.Document {
	info := symbols.NewDocumentInfo()
	info.Imports = append(info.Imports, entry.Imports...)
	for _, cs := range entry.Symbols {
		info.Declare(symbols.Symbol{
			Name:        cs.Name,
			Kind:        symbols.Kind(cs.Kind),
			Tag:         cs.Tag,
			DisplayType: cs.DisplayType,
			Range:       unpackRange(cs.Range),
			Selection:   unpackRange(cs.Selection),
		})
	}
	diags := make([]diag.Diagnostic, 0, len(entry.Diagnostics))
	for _, cd := range entry.Diagnostics {
		diags = append(diags, diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Range:    unpackRange(cd.Range),
		})
	}
	return &analysis.Document{
		URI:         uri,
		File:        file,
		Truncated:   entry.Truncated,
		Info:        info,
		Diagnostics: diags,
	}
}
