package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestPutGet(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	key := Key([]byte("let x = 1"), "%", 0, 100)
	entry := &Entry{
		Path:       "main.gl",
		Imports:    []string{"io"},
		Symbols:    []CachedSymbol{{Name: "x", Kind: 2, DisplayType: "variable", Range: [4]int{0, 0, 0, 5}}},
		TokenCount: 4,
	}
	if err := c.Put(key, entry); err != nil {
		t.Fatalf("put: %v", err)
	}
	var got Entry
	ok, err := c.Get(key, &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Path != "main.gl" || got.TokenCount != 4 || len(got.Symbols) != 1 || got.Symbols[0].Range[3] != 5 {
		t.Fatalf("unexpected entry %+v", got)
	}
}

func TestMissAndNil(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var e Entry
	if ok, err := c.Get(Key([]byte("nope"), "%", 0, 0), &e); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}
	var nilCache *Cache
	if err := nilCache.Put(Digest{}, &Entry{}); err != nil {
		t.Fatalf("nil put: %v", err)
	}
	if ok, _ := nilCache.Get(Digest{}, &e); ok {
		t.Fatal("nil cache hit")
	}
}

func TestSchemaMismatchIsMiss(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	key := Key([]byte("x"), "%", 0, 0)
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	data, err := msgpack.Marshal(&Entry{Schema: SchemaVersion + 1, Path: "old"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var e Entry
	if ok, err := c.Get(key, &e); ok || err != nil {
		t.Fatalf("stale schema must miss, got ok=%v err=%v", ok, err)
	}
}

func TestKeyDependsOnSettings(t *testing.T) {
	content := []byte("x -- y")
	if Key(content, "%", 0, 100) == Key(content, "--", 0, 100) {
		t.Fatal("comment lead not part of key")
	}
	if Key(content, "%", 0, 100) == Key(content, "%", 0, 5) {
		t.Fatal("diagnostic cap not part of key")
	}
	if Key(content, "%", 0, 100) != Key(content, "%", 0, 100) {
		t.Fatal("key not deterministic")
	}
}

func TestDropAll(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	key := Key([]byte("a"), "%", 0, 0)
	if err := c.Put(key, &Entry{Path: "a"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("drop: %v", err)
	}
	var e Entry
	if ok, _ := c.Get(key, &e); ok {
		t.Fatal("entry survived DropAll")
	}
}
