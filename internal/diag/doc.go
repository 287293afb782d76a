// Package diag defines the diagnostic model shared by the validator, the
// language server and the CLI.
//
// # Purpose
//
//   - Provide small, serialisable records for findings about a document.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// # Scope
//
// Package diag does not perform any formatting or IO. Rendering lives in
// internal/diagfmt; publishing to editors lives in internal/lsp.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error).
//   - Code – compact numeric identifier with a stable string form (LEX1002).
//   - Message – human oriented text, fixed per check.
//   - Range – 0-based source.Range with UTF-16 columns.
//
// Producers never stop on a diagnostic: a document that reports errors is
// still analysed in full.
package diag
