// Package catalog holds the fixed language vocabulary: reserved words,
// builtin functions and the modules importable with `load system`.
package catalog

import "glint/internal/token"

// Entry is one catalog item.
type Entry struct {
	Name   string
	Detail string
	Doc    string
}

var keywordDocs = map[string]string{
	"load":     "Imports a module: `load system <name>`.",
	"system":   "Marks a system module in a `load` statement.",
	"function": "Declares a function: `function name with args do ... end`.",
	"with":     "Introduces the parameter list of a function.",
	"do":       "Opens a block.",
	"end":      "Closes a block.",
	"let":      "Declares a variable: `let name = value`.",
	"struct":   "Declares a record type.",
	"data":     "Declares an algebraic data type.",
	"if":       "Conditional: `if cond then ... end`.",
	"then":     "Starts the body of a conditional branch.",
	"else":     "Fallback branch of a conditional.",
	"elif":     "Additional conditional branch.",
	"match":    "Pattern match: `match value of case ... end`.",
	"case":     "One arm of a `match`.",
	"of":       "Separates the scrutinee from the arms of a `match`.",
	"return":   "Returns a value from the current function.",
	"while":    "Loop while a condition holds.",
	"for":      "Iterates over a collection: `for x in xs do ... end`.",
	"in":       "Separates the loop variable from the collection.",
	"break":    "Leaves the innermost loop.",
	"continue": "Skips to the next loop iteration.",
	"true":     "Boolean true.",
	"false":    "Boolean false.",
	"null":     "The absent value.",
	"and":      "Logical conjunction.",
	"or":       "Logical disjunction.",
	"not":      "Logical negation.",
}

var builtins = []Entry{
	{Name: "print", Detail: "print(value)", Doc: "Writes a value to standard output followed by a newline."},
	{Name: "input", Detail: "input(prompt)", Doc: "Reads one line from standard input."},
	{Name: "len", Detail: "len(value)", Doc: "Length of a string or list."},
	{Name: "str", Detail: "str(value)", Doc: "Converts a value to its string form."},
	{Name: "int", Detail: "int(value)", Doc: "Converts a value to an integer."},
	{Name: "float", Detail: "float(value)", Doc: "Converts a value to a floating point number."},
	{Name: "type", Detail: "type(value)", Doc: "Name of the value's runtime type."},
	{Name: "range", Detail: "range(start, stop)", Doc: "List of integers from start up to stop."},
	{Name: "append", Detail: "append(list, value)", Doc: "Adds a value to the end of a list."},
	{Name: "abs", Detail: "abs(number)", Doc: "Absolute value."},
	{Name: "min", Detail: "min(a, b)", Doc: "Smaller of two values."},
	{Name: "max", Detail: "max(a, b)", Doc: "Larger of two values."},
}

var modules = []Entry{
	{Name: "io", Detail: "system module", Doc: "File and console input/output."},
	{Name: "math", Detail: "system module", Doc: "Mathematical functions and constants."},
	{Name: "string", Detail: "system module", Doc: "String manipulation helpers."},
	{Name: "list", Detail: "system module", Doc: "List helpers."},
	{Name: "os", Detail: "system module", Doc: "Process and environment access."},
	{Name: "time", Detail: "system module", Doc: "Clocks and timers."},
}

var (
	keywordIndex = indexKeywords()
	builtinIndex = index(builtins)
	moduleIndex  = index(modules)
)

func indexKeywords() map[string]Entry {
	words := token.Keywords()
	out := make(map[string]Entry, len(words))
	for _, w := range words {
		out[w] = Entry{Name: w, Detail: "keyword", Doc: keywordDocs[w]}
	}
	return out
}

func index(entries []Entry) map[string]Entry {
	out := make(map[string]Entry, len(entries))
	for _, e := range entries {
		out[e.Name] = e
	}
	return out
}

// Keywords returns every reserved word, alphabetically.
func Keywords() []Entry {
	words := token.Keywords()
	out := make([]Entry, 0, len(words))
	for _, w := range words {
		out = append(out, keywordIndex[w])
	}
	return out
}

// Builtins returns the builtin functions.
func Builtins() []Entry {
	return append([]Entry(nil), builtins...)
}

// Modules returns the system modules.
func Modules() []Entry {
	return append([]Entry(nil), modules...)
}

// Keyword looks up a reserved word.
func Keyword(name string) (Entry, bool) {
	e, ok := keywordIndex[name]
	return e, ok
}

// Builtin looks up a builtin function.
func Builtin(name string) (Entry, bool) {
	e, ok := builtinIndex[name]
	return e, ok
}

// Module looks up a system module.
func Module(name string) (Entry, bool) {
	e, ok := moduleIndex[name]
	return e, ok
}

// Size is the total number of fixed entries.
func Size() int {
	return len(keywordIndex) + len(builtins) + len(modules)
}
