// Package query answers editor requests (completion, hover, definition,
// document symbols) from the analysis store. Providers never mutate the
// store and never fail: unknown documents and out-of-range positions give
// empty results, and a panic inside a provider is logged and swallowed.
package query
