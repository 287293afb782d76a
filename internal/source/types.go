package source

// FileFlags encodes metadata about a source file.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (editor buffer, test, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File captures a text snapshot and its line index.
type File struct {
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// Position is a 0-based line/column pair. Col counts UTF-16 code units,
// which is what editors send over the wire.
type Position struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Range is a half-open [Start, End) pair of positions. It may cross lines.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}
