package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// String is a quoted literal, '"' or '\''.
	String Kind = iota
	// Number is a run of digits and dots; format is validated later.
	Number
	// Identifier is a non-reserved [A-Za-z_][A-Za-z0-9_]* word.
	Identifier
	// Keyword is a reserved word.
	Keyword
	// Operator is one of the two-character operators.
	Operator
	// Punctuation is any other single character.
	Punctuation
	// At is the '@' field-access sigil.
	At
)

func (k Kind) String() string {
	switch k {
	case String:
		return "String"
	case Number:
		return "Number"
	case Identifier:
		return "Identifier"
	case Keyword:
		return "Keyword"
	case Operator:
		return "Operator"
	case Punctuation:
		return "Punctuation"
	case At:
		return "At"
	}
	return "Unknown"
}

// MarshalText lets token kinds appear by name in JSON dumps.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Operators lists the two-character operators in probe order.
var Operators = [...]string{"==", "!=", "<=", ">=", "->", "=>"}
