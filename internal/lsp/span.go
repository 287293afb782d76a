package lsp

import (
	"fortio.org/safecast"

	"glint/internal/source"
)

const maxUint32 = ^uint32(0)

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return maxUint32
	}
	return v
}

func safeInt(n uint32) int {
	v, err := safecast.Conv[int](n)
	if err != nil {
		// only reachable where int is 32 bits wide
		return int(^uint(0) >> 1)
	}
	return v
}

func toPosition(p source.Position) position {
	return position{Line: safeUint32(p.Line), Character: safeUint32(p.Col)}
}

func fromPosition(p position) source.Position {
	return source.Position{Line: safeInt(p.Line), Col: safeInt(p.Character)}
}

func toRange(r source.Range) lspRange {
	return lspRange{Start: toPosition(r.Start), End: toPosition(r.End)}
}
