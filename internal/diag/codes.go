package diag

import "fmt"

// Code identifies a diagnostic kind.
type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1004
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexUnterminatedString: "Unterminated string",
	LexBadNumber:          "Bad number",
}

// ID returns the stable short form, e.g. LEX1002.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	default:
		return fmt.Sprintf("E%04d", ic)
	}
}

// Title returns a short description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
