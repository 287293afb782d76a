package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// NewFile builds a File from already-normalized content.
func NewFile(path string, content []byte, flags FileFlags) *File {
	return &File{
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}
}

// NewVirtual wraps an in-memory text (an editor buffer) without any normalization.
func NewVirtual(name, text string) *File {
	return NewFile(name, []byte(text), FileVirtual)
}

// Load reads a file from disk and normalizes BOM, CRLF and Unicode form.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	content, hadNFC := normalizeNFC(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	if hadNFC {
		flags |= FileNormalizedNFC
	}
	return NewFile(path, content, flags), nil
}

// Text returns the whole content as a string.
func (f *File) Text() string {
	return string(f.Content)
}

// LineCount returns the number of lines; an empty file has one empty line.
func (f *File) LineCount() int {
	return len(f.LineIdx) + 1
}

// Line возвращает строку с заданным номером (0-based) без завершающего '\n'.
// Если строки нет, возвращает пустую строку и false.
func (f *File) Line(n int) (string, bool) {
	if n < 0 || n >= f.LineCount() {
		return "", false
	}
	start, end := f.lineBounds(n)
	return string(f.Content[start:end]), true
}

func (f *File) lineBounds(n int) (start, end int) {
	if n > 0 {
		start = int(f.LineIdx[n-1]) + 1
	}
	end = len(f.Content)
	if n < len(f.LineIdx) {
		end = int(f.LineIdx[n])
	}
	if start > end {
		start = end
	}
	return start, end
}

// OffsetOf converts a position into a byte offset, clamping to the line and file bounds.
func (f *File) OffsetOf(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= f.LineCount() {
		return len(f.Content)
	}
	start, end := f.lineBounds(pos.Line)
	off, _ := ByteOffset(string(f.Content[start:end]), pos.Col)
	return start + off
}

// PositionOf converts a byte offset into a position.
func (f *File) PositionOf(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.Content) {
		offset = len(f.Content)
	}
	uoff, err := safecast.Conv[uint32](offset)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	// бинпоиск: число '\n' строго до offset = номер строки
	lo, hi := 0, len(f.LineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if f.LineIdx[mid] < uoff {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := lo
	start, _ := f.lineBounds(line)
	return Position{Line: line, Col: UTF16Len(string(f.Content[start:offset]))}
}
