// Package token defines lexical token kinds for the Glint language.
// Invariants:
//   - Line and Col are 0-based; Col is counted in UTF-16 code units.
//   - For String tokens Text holds the literal content without quotes and
//     with escape backslashes dropped (no semantic decoding).
//   - Valid is false only for unterminated String tokens.
//   - Field access sigils are lexed as a bare At token; '@name' is At + Identifier.
package token
