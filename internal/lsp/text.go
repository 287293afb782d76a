package lsp

import "glint/internal/source"

// applyChanges applies full or ranged edits in order. Ranges use UTF-16
// columns and are clamped to the text.
func applyChanges(text string, changes []textDocumentContentChangeEvent) string {
	for _, change := range changes {
		if change.Range == nil {
			text = change.Text
			continue
		}
		start := offsetForPosition(text, change.Range.Start)
		end := offsetForPosition(text, change.Range.End)
		if end < start {
			end = start
		}
		text = text[:start] + change.Text + text[end:]
	}
	return text
}

func offsetForPosition(text string, pos position) int {
	file := source.NewVirtual("", text)
	return file.OffsetOf(fromPosition(pos))
}
