package query

import (
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"glint/internal/analysis"
	"glint/internal/catalog"
	"glint/internal/source"
	"glint/internal/symbols"
)

// CompletionItemKind values from the protocol.
const (
	CompletionFunction = 3
	CompletionVariable = 6
	CompletionModule   = 9
	CompletionKeyword  = 14
	CompletionStruct   = 22
)

// SymbolKind values from the protocol, used by the outline.
const (
	OutlineFunction = 12
	OutlineVariable = 13
	OutlineStruct   = 23
)

// Item is a completion candidate.
type Item struct {
	Label         string
	Kind          int
	Detail        string
	Documentation string
}

// Hover is markdown text plus the range of the hovered word.
type Hover struct {
	Markdown string
	Range    source.Range
}

// Location points at a declaration.
type Location struct {
	URI   string
	Range source.Range
}

// Outline is one entry of the document symbol list.
type Outline struct {
	Name      string
	Kind      int
	Detail    string
	Range     source.Range
	Selection source.Range
}

// Providers binds the query functions to a store and a logger.
type Providers struct {
	store *analysis.Store
	log   *zap.Logger
	// hook runs at the start of every request; tests use it to inject faults.
	hook func(op string)
}

// New creates providers over store. A nil logger discards panic reports.
func New(store *analysis.Store, log *zap.Logger) *Providers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Providers{store: store, log: log}
}

func (p *Providers) enter(op string) {
	if p.hook != nil {
		p.hook(op)
	}
}

func (p *Providers) report(op, uri string, r any) {
	p.log.Error("query provider panicked",
		zap.String("op", op),
		zap.String("uri", uri),
		zap.Any("panic", r),
		zap.Stack("stack"),
	)
}

func (p *Providers) text(uri string) string {
	doc, ok := p.store.Document(uri)
	if !ok {
		return ""
	}
	return doc.Text()
}

// Completion returns catalog items followed by document symbols.
func (p *Providers) Completion(uri string, pos source.Position) (items []Item) {
	defer func() {
		if r := recover(); r != nil {
			p.report("completion", uri, r)
			items = nil
		}
	}()
	p.enter("completion")
	return Completion(p.store, uri, pos)
}

// Hover resolves the word under pos against the current document text.
func (p *Providers) Hover(uri string, pos source.Position) (h Hover, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.report("hover", uri, r)
			h, ok = Hover{}, false
		}
	}()
	p.enter("hover")
	return HoverAt(p.store, uri, p.text(uri), pos)
}

// Definition returns the declaration of the word under pos.
func (p *Providers) Definition(uri string, pos source.Position) (loc Location, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.report("definition", uri, r)
			loc, ok = Location{}, false
		}
	}()
	p.enter("definition")
	return Definition(p.store, uri, p.text(uri), pos)
}

// DocumentSymbols returns the outline of uri.
func (p *Providers) DocumentSymbols(uri string) (out []Outline) {
	defer func() {
		if r := recover(); r != nil {
			p.report("documentSymbol", uri, r)
			out = nil
		}
	}()
	p.enter("documentSymbol")
	return DocumentSymbols(p.store, uri)
}

// Completion is unfiltered: the editor narrows by prefix. pos is accepted
// for symmetry with the other providers and ignored.
func Completion(store *analysis.Store, uri string, _ source.Position) []Item {
	kws, bis, mods := catalog.Keywords(), catalog.Builtins(), catalog.Modules()
	items := make([]Item, 0, len(kws)+len(bis)+len(mods))
	for _, e := range kws {
		items = append(items, Item{Label: e.Name, Kind: CompletionKeyword, Detail: "keyword", Documentation: e.Doc})
	}
	for _, e := range bis {
		items = append(items, Item{Label: e.Name, Kind: CompletionFunction, Detail: e.Detail, Documentation: e.Doc})
	}
	for _, e := range mods {
		items = append(items, Item{Label: e.Name, Kind: CompletionModule, Detail: e.Detail, Documentation: e.Doc})
	}
	info, ok := store.Get(uri)
	if !ok {
		return items
	}
	for _, name := range info.Names() {
		sym := info.Symbols[name]
		items = append(items, Item{
			Label:  sym.Name,
			Kind:   completionKind(sym.Kind),
			Detail: sym.DisplayType,
		})
	}
	return items
}

func completionKind(k symbols.Kind) int {
	switch k {
	case symbols.KindFunction:
		return CompletionFunction
	case symbols.KindVariable:
		return CompletionVariable
	case symbols.KindStructLike:
		return CompletionStruct
	}
	return CompletionVariable
}

func outlineKind(k symbols.Kind) int {
	switch k {
	case symbols.KindFunction:
		return OutlineFunction
	case symbols.KindVariable:
		return OutlineVariable
	case symbols.KindStructLike:
		return OutlineStruct
	}
	return OutlineVariable
}

func wordUnder(text string, pos source.Position) (Word, bool) {
	if pos.Line < 0 {
		return Word{}, false
	}
	line, ok := source.NewVirtual("", text).Line(pos.Line)
	if !ok {
		return Word{}, false
	}
	return WordAt(line, pos.Col)
}

// HoverAt resolves keyword, then builtin, then document symbol, then a
// loaded system module.
func HoverAt(store *analysis.Store, uri, text string, pos source.Position) (Hover, bool) {
	word, ok := wordUnder(text, pos)
	if !ok {
		return Hover{}, false
	}
	rng := word.Range(pos.Line)
	if e, ok := catalog.Keyword(word.Text); ok {
		return Hover{Markdown: "**keyword** `" + e.Name + "`\n\n" + e.Doc, Range: rng}, true
	}
	if e, ok := catalog.Builtin(word.Text); ok {
		return Hover{Markdown: codeBlock(e.Detail) + "\n" + e.Doc + "\n\n_builtin function_", Range: rng}, true
	}
	info, ok := store.Get(uri)
	if !ok {
		return Hover{}, false
	}
	if sym, ok := info.Lookup(word.Text); ok {
		return Hover{Markdown: symbolMarkdown(sym), Range: rng}, true
	}
	// system modules only hover where the document loads them
	if e, ok := catalog.Module(word.Text); ok && slices.Contains(info.Imports, e.Name) {
		return Hover{Markdown: "**module** `" + e.Name + "`\n\n" + e.Doc, Range: rng}, true
	}
	return Hover{}, false
}

func codeBlock(s string) string {
	return "```glint\n" + s + "\n```"
}

func symbolMarkdown(sym symbols.Symbol) string {
	var b strings.Builder
	b.WriteString(codeBlock(sym.DisplayType + " " + sym.Name))
	b.WriteString("\nDeclared at line ")
	b.WriteString(strconv.Itoa(sym.Range.Start.Line + 1))
	return b.String()
}

// Definition looks the word up in the same document only.
func Definition(store *analysis.Store, uri, text string, pos source.Position) (Location, bool) {
	word, ok := wordUnder(text, pos)
	if !ok {
		return Location{}, false
	}
	info, ok := store.Get(uri)
	if !ok {
		return Location{}, false
	}
	sym, ok := info.Lookup(word.Text)
	if !ok {
		return Location{}, false
	}
	return Location{URI: uri, Range: sym.Range}, true
}

// DocumentSymbols lists the flat table ordered by declaration position.
func DocumentSymbols(store *analysis.Store, uri string) []Outline {
	info, ok := store.Get(uri)
	if !ok {
		return nil
	}
	syms := info.Sorted()
	out := make([]Outline, 0, len(syms))
	for _, sym := range syms {
		out = append(out, Outline{
			Name:      sym.Name,
			Kind:      outlineKind(sym.Kind),
			Detail:    sym.DisplayType,
			Range:     sym.Range,
			Selection: sym.Selection,
		})
	}
	return out
}
