package lsp

import (
	"testing"

	"glint/internal/source"
)

func TestPositionConversion(t *testing.T) {
	p := source.Position{Line: 3, Col: 7}
	if got := fromPosition(toPosition(p)); got != p {
		t.Fatalf("round trip: %v", got)
	}
	if got := toPosition(source.Position{Line: -1, Col: -5}); got.Line != 0 || got.Character != 0 {
		t.Fatalf("negative positions must clamp to zero: %+v", got)
	}
	r := toRange(source.SingleLine(2, 4, 3))
	if r.Start.Character != 4 || r.End.Character != 7 || r.End.Line != 2 {
		t.Fatalf("range: %+v", r)
	}
}
