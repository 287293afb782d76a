package query

import "testing"

func TestWordAtWholeIdentifier(t *testing.T) {
	line := "  let factorial123 = 1"
	for col := 6; col <= 18; col++ {
		w, ok := WordAt(line, col)
		if !ok || w.Text != "factorial123" {
			t.Fatalf("col %d: got %+v ok=%v", col, w, ok)
		}
		if w.Start != 6 || w.End != 18 {
			t.Fatalf("col %d: bounds %d..%d", col, w.Start, w.End)
		}
	}
}

func TestWordAtEdges(t *testing.T) {
	cases := []struct {
		line string
		col  int
		want string
		ok   bool
	}{
		{"foo", 0, "foo", true},
		{"foo", 3, "foo", true}, // cursor after the word
		{"foo", 4, "", false},
		{"foo", -1, "", false},
		{"a + b", 2, "", false},
		{"a + b", 1, "a", true},
		{"", 0, "", false},
		{"x.y", 1, "x", true},
		{"x.y", 2, "y", true},
	}
	for _, tc := range cases {
		w, ok := WordAt(tc.line, tc.col)
		if ok != tc.ok || w.Text != tc.want {
			t.Fatalf("WordAt(%q, %d) = %q,%v want %q,%v", tc.line, tc.col, w.Text, ok, tc.want, tc.ok)
		}
	}
}

func TestWordAtUTF16Columns(t *testing.T) {
	// "😀" занимает две UTF-16 единицы
	line := "\"😀\" name"
	w, ok := WordAt(line, 6)
	if !ok || w.Text != "name" {
		t.Fatalf("got %+v ok=%v", w, ok)
	}
	if w.Start != 5 || w.End != 9 {
		t.Fatalf("bounds %d..%d", w.Start, w.End)
	}
	if _, ok := WordAt(line, 2); ok {
		t.Fatalf("offset inside a surrogate pair must not resolve")
	}
}
