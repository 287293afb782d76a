package diag

import "glint/internal/source"

// Diagnostic is a single finding anchored to a range of the document.
type Diagnostic struct {
	Severity Severity     `json:"severity"`
	Code     Code         `json:"code"`
	Message  string       `json:"message"`
	Range    source.Range `json:"range"`
}

// New builds a diagnostic.
func New(sev Severity, code Code, rng source.Range, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Range:    rng,
	}
}

// NewError is a shortcut for SevError diagnostics.
func NewError(code Code, rng source.Range, msg string) Diagnostic {
	return New(SevError, code, rng, msg)
}
