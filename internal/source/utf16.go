package source

import "unicode/utf8"

// UTF16Len returns the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += runeUnits(r)
	}
	return n
}

// ByteOffset maps a UTF-16 column inside line to a byte offset.
// ok is false when col lies outside [0, UTF16Len(line)]; the offset is clamped.
func ByteOffset(line string, col int) (off int, ok bool) {
	if col < 0 {
		return 0, false
	}
	units := 0
	for i := 0; i < len(line); {
		if units >= col {
			return i, units == col
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		units += runeUnits(r)
		i += size
	}
	return len(line), units == col
}

func runeUnits(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}
