package query

import "glint/internal/source"

// Word is an identifier-like run on a single line. Start and End are
// UTF-16 columns, End exclusive.
type Word struct {
	Text  string
	Start int
	End   int
}

// Range places the word on the given line.
func (w Word) Range(line int) source.Range {
	return source.Range{
		Start: source.Position{Line: line, Col: w.Start},
		End:   source.Position{Line: line, Col: w.End},
	}
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// WordAt finds the [A-Za-z0-9_] run touching the UTF-16 offset character.
// A cursor right after a word still resolves it. Offsets outside the line,
// or with no word character on either side, give ok=false.
func WordAt(line string, character int) (Word, bool) {
	off, ok := source.ByteOffset(line, character)
	if !ok {
		return Word{}, false
	}
	switch {
	case off < len(line) && isWordByte(line[off]):
	case off > 0 && isWordByte(line[off-1]):
		off--
	default:
		return Word{}, false
	}
	start, end := off, off+1
	for start > 0 && isWordByte(line[start-1]) {
		start--
	}
	for end < len(line) && isWordByte(line[end]) {
		end++
	}
	// слово ASCII, значит ширина в UTF-16 равна длине в байтах
	col := source.UTF16Len(line[:start])
	return Word{
		Text:  line[start:end],
		Start: col,
		End:   col + (end - start),
	}, true
}
