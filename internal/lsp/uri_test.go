package lsp

import (
	"path/filepath"
	"testing"
)

func TestCanonicalURI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir with space", "main.gl")
	uri := pathToURI(path)
	if got := uriToPath(uri); got != path {
		t.Fatalf("uriToPath(%q) = %q, want %q", uri, got, path)
	}
	if canonicalURI(uri) != uri {
		t.Fatalf("canonical form changed: %q", canonicalURI(uri))
	}
	if got := canonicalURI("untitled:Untitled-1"); got != "untitled:Untitled-1" {
		t.Fatalf("non-file uri rewritten: %q", got)
	}
	if canonicalURI("") != "" {
		t.Fatal("empty uri")
	}
}
