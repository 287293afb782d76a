package lsp

import (
	"sort"

	"glint/internal/diag"
)

const diagnosticSource = "glint"

// analyzeAndPublish re-scans the whole document and replaces its diagnostics.
func (s *Server) analyzeAndPublish(uri string) error {
	s.mu.Lock()
	text, ok := s.openDocs[uri]
	version, hasVersion := s.versions[uri]
	opts := s.analysisOpts
	s.mu.Unlock()
	if !ok {
		return nil
	}
	doc := s.store.Analyze(uri, text, opts)
	if doc.Truncated {
		s.logf("analysis of %s stopped at %d tokens", uri, len(doc.Tokens))
	}
	list := toLSPDiagnostics(doc.Diagnostics)

	s.mu.Lock()
	if len(list) > 0 {
		s.published[uri] = struct{}{}
	} else {
		delete(s.published, uri)
	}
	s.mu.Unlock()

	var versionPtr *int
	if hasVersion {
		versionPtr = &version
	}
	return s.sendPublish(uri, versionPtr, list)
}

// reanalyzeOpen refreshes every open document, used after a settings change.
func (s *Server) reanalyzeOpen() error {
	s.mu.Lock()
	uris := make([]string, 0, len(s.openDocs))
	for uri := range s.openDocs {
		uris = append(uris, uri)
	}
	s.mu.Unlock()
	sort.Strings(uris)
	for _, uri := range uris {
		if err := s.analyzeAndPublish(uri); err != nil {
			return err
		}
	}
	return nil
}

func toLSPDiagnostics(items []diag.Diagnostic) []lspDiagnostic {
	list := make([]lspDiagnostic, 0, len(items))
	for _, d := range items {
		list = append(list, lspDiagnostic{
			Range:    toRange(d.Range),
			Severity: d.Severity.LSP(),
			Code:     d.Code.ID(),
			Source:   diagnosticSource,
			Message:  d.Message,
		})
	}
	return list
}

func (s *Server) sendPublish(uri string, version *int, list []lspDiagnostic) error {
	if list == nil {
		list = []lspDiagnostic{}
	}
	msg := map[string]any{
		"jsonrpc": "2.0",
		"method":  "textDocument/publishDiagnostics",
		"params": publishDiagnosticsParams{
			URI:         uri,
			Version:     version,
			Diagnostics: list,
		},
	}
	return s.send(msg)
}

func (s *Server) clearPublishedDiagnostics() {
	s.mu.Lock()
	uris := make([]string, 0, len(s.published))
	for uri := range s.published {
		uris = append(uris, uri)
	}
	s.published = make(map[string]struct{})
	s.mu.Unlock()
	sort.Strings(uris)
	for _, uri := range uris {
		if err := s.sendPublish(uri, nil, nil); err != nil {
			s.logf("failed to clear diagnostics for %s: %v", uri, err)
		}
	}
}
