package diag

import (
	"testing"

	"glint/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	r := BagReporter{Bag: bag}
	for i := range 3 {
		r.Report(LexBadNumber, SevError, source.SingleLine(i, 0, 1), "Invalid number format")
	}
	if bag.Len() != 2 || !bag.Full() {
		t.Fatalf("len=%d full=%v", bag.Len(), bag.Full())
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatal("errors count as warnings too")
	}
}

func TestBagUnlimited(t *testing.T) {
	bag := NewBag(0)
	for i := range 100 {
		if !bag.Add(NewError(LexBadNumber, source.SingleLine(i, 0, 1), "x")) {
			t.Fatalf("add %d rejected", i)
		}
	}
	if bag.Full() {
		t.Fatal("unlimited bag can't be full")
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(0)
	bag.Add(NewError(LexBadNumber, source.SingleLine(2, 0, 1), "b"))
	bag.Add(New(SevWarning, LexUnterminatedString, source.SingleLine(0, 4, 1), "w"))
	bag.Add(NewError(LexUnterminatedString, source.SingleLine(0, 4, 1), "e"))
	bag.Sort()
	got := []string{bag.Items()[0].Message, bag.Items()[1].Message, bag.Items()[2].Message}
	if got[0] != "e" || got[1] != "w" || got[2] != "b" {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestCodeID(t *testing.T) {
	if LexUnterminatedString.ID() != "LEX1002" || LexBadNumber.ID() != "LEX1004" {
		t.Fatalf("ids: %s %s", LexUnterminatedString.ID(), LexBadNumber.ID())
	}
	if Code(7).Title() != "Unknown error" {
		t.Fatalf("fallback title: %q", Code(7).Title())
	}
	if SevError.LSP() != 1 || SevWarning.LSP() != 2 || SevInfo.LSP() != 3 {
		t.Fatal("LSP severity mapping")
	}
}
