// Package symbols builds the flat declaration table of a document from its
// token stream. There is no scoping: every `function`, `let`, `struct` and
// `data` declaration lands in one map, last one wins.
package symbols
