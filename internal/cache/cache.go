// Package cache stores per-file check results on disk so `glint check`
// can skip unchanged files. The language server never reads it.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// SchemaVersion is bumped whenever Entry changes shape.
const SchemaVersion uint16 = 1

// Digest identifies cached content.
type Digest [32]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Key hashes file content together with everything that changes the result
// of analysing it (the comment lead and the limits).
func Key(content []byte, comment string, maxTokens, maxDiagnostics int) Digest {
	h := sha256.New()
	h.Write(content)
	fmt.Fprintf(h, "\x00comment=%s\x00tokens=%d\x00diags=%d\x00schema=%d", comment, maxTokens, maxDiagnostics, SchemaVersion)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// Entry is the cached outcome of checking one file.
type Entry struct {
	Schema      uint16
	Path        string
	Imports     []string
	Symbols     []CachedSymbol
	Diagnostics []CachedDiagnostic
	TokenCount  int
	Truncated   bool
}

// CachedSymbol is a flattened symbols.Symbol.
type CachedSymbol struct {
	Name        string
	Kind        uint8
	Tag         string
	DisplayType string
	// Start/End line and column of Range and Selection, in that order.
	Range     [4]int
	Selection [4]int
}

// CachedDiagnostic is a flattened diag.Diagnostic.
type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Range    [4]int
}

// Cache is a directory of msgpack files. Thread-safe; a nil *Cache is a
// valid always-miss cache.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open creates dir if needed and returns a cache rooted there.
func Open(dir string) (*Cache, error) {
	if dir == "" {
		return nil, errors.New("cache dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *Cache) pathFor(key Digest) string {
	hexKey := key.String()
	// двухсимвольный префикс, чтобы не складывать всё в один каталог
	return filepath.Join(c.dir, "files", hexKey[:2], hexKey+".mp")
}

// Put serializes entry and atomically replaces the file for key.
func (c *Cache) Put(key Digest, entry *Entry) (err error) {
	if c == nil || entry == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry.Schema = SchemaVersion
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(entry); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Get loads the entry for key. A missing file or a schema mismatch is a miss.
func (c *Cache) Get(key Digest, out *Entry) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	var entry Entry
	if err := msgpack.NewDecoder(f).Decode(&entry); err != nil {
		return false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	if entry.Schema != SchemaVersion {
		return false, nil
	}
	*out = entry
	return true, nil
}

// DropAll removes every cached entry.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "files"))
}
