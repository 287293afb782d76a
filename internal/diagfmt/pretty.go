package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"glint/internal/diag"
	"glint/internal/source"
)

type palette struct {
	enabled bool
	err     *color.Color
	warn    *color.Color
	info    *color.Color
	path    *color.Color
	gutter  *color.Color
	caret   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		enabled: enabled,
		err:     color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		info:    color.New(color.FgCyan, color.Bold),
		path:    color.New(color.Bold),
		gutter:  color.New(color.FgBlue),
		caret:   color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty печатает диагностики одного файла в человекочитаемом виде:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку исходника с подчёркиванием ^~~~ по диапазону.
// Строки и колонки в выводе 1-based. file may be nil, then only headers are printed.
func Pretty(w io.Writer, file *source.File, path string, diags []diag.Diagnostic, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	shown := formatPath(path, opts.PathMode, opts.BaseDir)
	for _, d := range diags {
		start := d.Range.Start
		header := fmt.Sprintf("%s:%d:%d:", shown, start.Line+1, start.Col+1)
		if _, err := fmt.Fprintf(w, "%s %s %s: %s\n",
			pal.path.Sprint(header),
			pal.severity(d.Severity).Sprint(d.Severity.String()),
			d.Code.ID(),
			d.Message,
		); err != nil {
			return err
		}
		if file == nil {
			continue
		}
		if err := writeSnippet(w, file, d.Range, opts.Context, pal); err != nil {
			return err
		}
	}
	return nil
}

func writeSnippet(w io.Writer, file *source.File, rng source.Range, context int, pal palette) error {
	first := max(rng.Start.Line-context, 0)
	last := min(rng.Start.Line+context, file.LineCount()-1)
	gutterWidth := len(fmt.Sprint(last + 1))

	for n := first; n <= last; n++ {
		line, ok := file.Line(n)
		if !ok {
			continue
		}
		gutter := pal.gutter.Sprintf("%*d |", gutterWidth, n+1)
		if _, err := fmt.Fprintf(w, "%s %s\n", gutter, expandTabs(line)); err != nil {
			return err
		}
		if n != rng.Start.Line {
			continue
		}
		pad, width := caretColumns(line, rng)
		marker := "^" + strings.Repeat("~", max(width-1, 0))
		blank := pal.gutter.Sprintf("%*s |", gutterWidth, "")
		if _, err := fmt.Fprintf(w, "%s %s%s\n", blank, strings.Repeat(" ", pad), pal.caret.Sprint(marker)); err != nil {
			return err
		}
	}
	return nil
}

// caretColumns переводит UTF-16 колонки диапазона в ширину на экране.
// Диапазон, уходящий на следующие строки, подчёркивается до конца строки.
func caretColumns(line string, rng source.Range) (pad, width int) {
	startOff, _ := source.ByteOffset(line, rng.Start.Col)
	endOff := len(line)
	if rng.End.Line == rng.Start.Line {
		endOff, _ = source.ByteOffset(line, rng.End.Col)
	}
	if endOff < startOff {
		endOff = startOff
	}
	pad = runewidth.StringWidth(expandTabs(line[:startOff]))
	width = max(runewidth.StringWidth(line[startOff:endOff]), 1)
	return pad, width
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
