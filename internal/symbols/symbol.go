package symbols

import (
	"glint/internal/source"
)

// Kind classifies a declaration.
type Kind uint8

const (
	KindFunction Kind = iota + 1
	KindVariable
	KindStructLike
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindVariable:
		return "variable"
	case KindStructLike:
		return "struct"
	default:
		return "invalid"
	}
}

// MarshalText makes Kind readable in JSON dumps.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Tags for struct-like declarations.
const (
	TagStruct = "struct"
	TagData   = "data"
)

// Symbol is a single named declaration.
type Symbol struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
	// Tag is "struct" or "data" for KindStructLike, empty otherwise.
	Tag string `json:"tag,omitempty"`
	// Range spans from the declaring keyword to the end of the name; it may
	// cross lines when the name sits on a later line.
	Range       source.Range `json:"range"`
	Selection   source.Range `json:"selection"`
	DisplayType string       `json:"displayType"`
}
