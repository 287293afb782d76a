package token

import "sort"

var keywords = map[string]struct{}{
	"load":     {},
	"system":   {},
	"function": {},
	"with":     {},
	"do":       {},
	"end":      {},
	"let":      {},
	"struct":   {},
	"data":     {},
	"if":       {},
	"then":     {},
	"else":     {},
	"elif":     {},
	"match":    {},
	"case":     {},
	"of":       {},
	"return":   {},
	"while":    {},
	"for":      {},
	"in":       {},
	"break":    {},
	"continue": {},
	"true":     {},
	"false":    {},
	"null":     {},
	"and":      {},
	"or":       {},
	"not":      {},
}

// Declaration keywords understood by the symbol extractor.
const (
	KwLoad     = "load"
	KwSystem   = "system"
	KwFunction = "function"
	KwLet      = "let"
	KwStruct   = "struct"
	KwData     = "data"
)

// IsKeyword reports whether ident is reserved.
// Ключевые слова регистрозависимые, только lowercase.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// Keywords returns the reserved words sorted alphabetically.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for kw := range keywords {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}
