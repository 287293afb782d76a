package symbols

import (
	"sort"
)

// DocumentInfo is the flat per-document symbol table.
// At most one Symbol exists per name; later declarations overwrite earlier ones.
type DocumentInfo struct {
	Symbols   map[string]Symbol `json:"symbols"`
	Imports   []string          `json:"imports"`
	Functions map[string]Symbol `json:"functions"`
	Variables map[string]Symbol `json:"variables"`
}

// NewDocumentInfo returns an empty table.
func NewDocumentInfo() *DocumentInfo {
	return &DocumentInfo{
		Symbols:   make(map[string]Symbol),
		Imports:   make([]string, 0),
		Functions: make(map[string]Symbol),
		Variables: make(map[string]Symbol),
	}
}

// Declare inserts sym, replacing any previous entry with the same name.
// Sub-maps are kept in step with the main table.
func (d *DocumentInfo) Declare(sym Symbol) {
	if prev, ok := d.Symbols[sym.Name]; ok && prev.Kind != sym.Kind {
		switch prev.Kind {
		case KindFunction:
			delete(d.Functions, sym.Name)
		case KindVariable:
			delete(d.Variables, sym.Name)
		case KindStructLike:
		}
	}
	d.Symbols[sym.Name] = sym
	switch sym.Kind {
	case KindFunction:
		d.Functions[sym.Name] = sym
	case KindVariable:
		d.Variables[sym.Name] = sym
	case KindStructLike:
	}
}

// Lookup returns the symbol with the given name.
func (d *DocumentInfo) Lookup(name string) (Symbol, bool) {
	if d == nil {
		return Symbol{}, false
	}
	sym, ok := d.Symbols[name]
	return sym, ok
}

// Len returns the number of distinct names.
func (d *DocumentInfo) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Symbols)
}

// Sorted returns all symbols ordered by declaration position, ties by name.
func (d *DocumentInfo) Sorted() []Symbol {
	if d == nil {
		return nil
	}
	out := make([]Symbol, 0, len(d.Symbols))
	for _, sym := range d.Symbols {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Range.Start, out[j].Range.Start
		if a != b {
			return a.Before(b)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Names returns all names in lexical order.
func (d *DocumentInfo) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Symbols))
	for name := range d.Symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
