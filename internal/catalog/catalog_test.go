package catalog

import (
	"testing"

	"glint/internal/token"
)

func TestKeywordsCoverReservedSet(t *testing.T) {
	kws := Keywords()
	if len(kws) != len(token.Keywords()) {
		t.Fatalf("keywords = %d, reserved = %d", len(kws), len(token.Keywords()))
	}
	for _, e := range kws {
		if e.Doc == "" {
			t.Fatalf("keyword %q has no description", e.Name)
		}
		if !token.IsKeyword(e.Name) {
			t.Fatalf("%q is not reserved", e.Name)
		}
	}
}

func TestLookups(t *testing.T) {
	if _, ok := Keyword("function"); !ok {
		t.Fatal("function keyword missing")
	}
	if e, ok := Builtin("print"); !ok || e.Detail != "print(value)" {
		t.Fatalf("print: %+v %v", e, ok)
	}
	if _, ok := Module("io"); !ok {
		t.Fatal("io module missing")
	}
	if _, ok := Builtin("function"); ok {
		t.Fatal("keywords are not builtins")
	}
}

func TestNoOverlap(t *testing.T) {
	for _, b := range Builtins() {
		if token.IsKeyword(b.Name) {
			t.Fatalf("builtin %q shadows a keyword", b.Name)
		}
	}
	if Size() != len(Keywords())+len(Builtins())+len(Modules()) {
		t.Fatalf("size mismatch")
	}
}

func TestSlicesAreCopies(t *testing.T) {
	b := Builtins()
	b[0].Name = "changed"
	if Builtins()[0].Name == "changed" {
		t.Fatal("Builtins leaked internal slice")
	}
}
