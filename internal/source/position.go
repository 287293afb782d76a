package source

import "fmt"

// Before reports whether p sorts strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Contains reports whether pos lies inside r. The end position counts as
// inside so that a cursor placed right after a word still hits it.
func (r Range) Contains(pos Position) bool {
	if pos.Before(r.Start) {
		return false
	}
	return !r.End.Before(pos)
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// SingleLine builds a range on one line from a start column and a width.
func SingleLine(line, col, width int) Range {
	return Range{
		Start: Position{Line: line, Col: col},
		End:   Position{Line: line, Col: col + width},
	}
}
