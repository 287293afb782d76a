package analysis

import (
	"sort"
	"sync"

	"glint/internal/symbols"
)

// Store maps document URIs to their latest analysis. Entries are replaced
// wholesale; nothing is evicted unless Forget is called.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{docs: make(map[string]*Document)}
}

// Analyze runs the pipeline and replaces the entry for uri.
func (s *Store) Analyze(uri, text string, opts Options) *Document {
	doc := Analyze(uri, text, opts)
	s.Put(doc)
	return doc
}

// Put stores doc under doc.URI.
func (s *Store) Put(doc *Document) {
	if doc == nil {
		return
	}
	s.mu.Lock()
	s.docs[doc.URI] = doc
	s.mu.Unlock()
}

// Document returns the latest analysis for uri.
func (s *Store) Document(uri string) (*Document, bool) {
	if s == nil {
		return nil, false
	}
	s.mu.RLock()
	doc, ok := s.docs[uri]
	s.mu.RUnlock()
	return doc, ok
}

// Get returns the symbol table for uri.
func (s *Store) Get(uri string) (*symbols.DocumentInfo, bool) {
	doc, ok := s.Document(uri)
	if !ok || doc.Info == nil {
		return nil, false
	}
	return doc.Info, true
}

// Forget drops the entry for uri.
func (s *Store) Forget(uri string) {
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// URIs returns the stored URIs sorted.
func (s *Store) URIs() []string {
	s.mu.RLock()
	out := make([]string, 0, len(s.docs))
	for uri := range s.docs {
		out = append(out, uri)
	}
	s.mu.RUnlock()
	sort.Strings(out)
	return out
}
