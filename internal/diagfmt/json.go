package diagfmt

import (
	"encoding/json"
	"io"

	"glint/internal/diag"
	"glint/internal/source"
)

// FileDiagnostics groups the diagnostics of one file.
type FileDiagnostics struct {
	Path        string
	Diagnostics []diag.Diagnostic
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Range    source.Range `json:"range"`
}

// FileJSON: диагностики одного файла.
type FileJSON struct {
	Path        string           `json:"path"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Files []FileJSON `json:"files"`
	Count int        `json:"count"`
}

// BuildDiagnosticsOutput converts files into the JSON payload.
func BuildDiagnosticsOutput(files []FileDiagnostics, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{Files: make([]FileJSON, 0, len(files))}
	for _, f := range files {
		items := f.Diagnostics
		if opts.Max > 0 && len(items) > opts.Max {
			items = items[:opts.Max]
		}
		fj := FileJSON{
			Path:        formatPath(f.Path, opts.PathMode, opts.BaseDir),
			Diagnostics: make([]DiagnosticJSON, 0, len(items)),
		}
		for _, d := range items {
			fj.Diagnostics = append(fj.Diagnostics, DiagnosticJSON{
				Severity: d.Severity.String(),
				Code:     d.Code.ID(),
				Message:  d.Message,
				Range:    d.Range,
			})
		}
		out.Count += len(fj.Diagnostics)
		out.Files = append(out.Files, fj)
	}
	return out
}

// JSON writes diagnostics of all files as one indented document.
func JSON(w io.Writer, files []FileDiagnostics, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(files, opts))
}
