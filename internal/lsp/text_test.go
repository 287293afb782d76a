package lsp

import "testing"

func rangeEdit(sl, sc, el, ec uint32, text string) textDocumentContentChangeEvent {
	return textDocumentContentChangeEvent{
		Range: &lspRange{
			Start: position{Line: sl, Character: sc},
			End:   position{Line: el, Character: ec},
		},
		Text: text,
	}
}

func TestApplyChanges(t *testing.T) {
	text := "let x = 1\nlet y = 2\n"
	got := applyChanges(text, []textDocumentContentChangeEvent{
		rangeEdit(1, 4, 1, 5, "total"),
		rangeEdit(0, 0, 0, 0, "% header\n"),
	})
	want := "% header\nlet x = 1\nlet total = 2\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestApplyChangesFullAndClamp(t *testing.T) {
	got := applyChanges("old", []textDocumentContentChangeEvent{
		{Text: "new text"},
		rangeEdit(0, 4, 9, 99, "!"),
	})
	if got != "new !" {
		t.Fatalf("got %q", got)
	}
}

func TestApplyChangesUTF16(t *testing.T) {
	// 😀 is two UTF-16 units, so character 3 lands right after it
	got := applyChanges("a😀b", []textDocumentContentChangeEvent{rangeEdit(0, 3, 0, 4, "c")})
	if got != "a😀c" {
		t.Fatalf("got %q", got)
	}
}
