package lsp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"glint/internal/analysis"
)

const testURI = "file:///work/main.gl"

const testProgram = `function foo with n do
  return n
end
let s = "open
let v = 1.2.3
foo(1)
`

func newTestServer(t *testing.T, opts ServerOptions) (*Server, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return NewServer(bytes.NewReader(nil), &out, opts), &out
}

func call(t *testing.T, s *Server, method string, id int, params any) {
	t.Helper()
	payload, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}
	msg := &rpcMessage{JSONRPC: "2.0", Method: method, Params: payload}
	if id > 0 {
		msg.ID = json.RawMessage(fmt.Sprintf("%d", id))
	}
	if err := s.handleMessage(msg); err != nil {
		t.Fatalf("%s: %v", method, err)
	}
}

func drain(t *testing.T, out *bytes.Buffer) []rpcMessage {
	t.Helper()
	reader := bufio.NewReader(bytes.NewReader(out.Bytes()))
	out.Reset()
	var msgs []rpcMessage
	for {
		payload, err := readMessage(reader)
		if err != nil {
			break
		}
		var msg rpcMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			t.Fatalf("decode message: %v", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

func lastPublish(t *testing.T, msgs []rpcMessage) publishDiagnosticsParams {
	t.Helper()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Method != "textDocument/publishDiagnostics" {
			continue
		}
		var params publishDiagnosticsParams
		if err := json.Unmarshal(msgs[i].Params, &params); err != nil {
			t.Fatalf("decode params: %v", err)
		}
		return params
	}
	t.Fatalf("no publishDiagnostics among %d messages", len(msgs))
	return publishDiagnosticsParams{}
}

func openDoc(t *testing.T, s *Server, text string) {
	t.Helper()
	call(t, s, "textDocument/didOpen", 0, didOpenTextDocumentParams{
		TextDocument: textDocumentItem{URI: testURI, LanguageID: "glint", Version: 1, Text: text},
	})
}

func TestPublishDiagnosticsMapping(t *testing.T) {
	s, out := newTestServer(t, ServerOptions{})
	openDoc(t, s, testProgram)

	params := lastPublish(t, drain(t, out))
	if params.URI != testURI {
		t.Fatalf("expected uri %q, got %q", testURI, params.URI)
	}
	if params.Version == nil || *params.Version != 1 {
		t.Fatalf("unexpected version: %v", params.Version)
	}
	if len(params.Diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %+v", params.Diagnostics)
	}
	str := params.Diagnostics[0]
	if str.Code != "LEX1002" || str.Severity != 1 || str.Source != "glint" {
		t.Fatalf("unexpected string diagnostic: %+v", str)
	}
	if str.Message != "Unterminated string literal" {
		t.Fatalf("unexpected message: %q", str.Message)
	}
	// `"open` starts at col 8; the range covers the quote plus the text.
	if str.Range.Start != (position{Line: 3, Character: 8}) || str.Range.End != (position{Line: 3, Character: 13}) {
		t.Fatalf("unexpected string range: %+v", str.Range)
	}
	num := params.Diagnostics[1]
	if num.Code != "LEX1004" || num.Message != "Invalid number format" {
		t.Fatalf("unexpected number diagnostic: %+v", num)
	}
	if num.Range.Start != (position{Line: 4, Character: 8}) || num.Range.End != (position{Line: 4, Character: 13}) {
		t.Fatalf("unexpected number range: %+v", num.Range)
	}
}

func TestDidChangeReplacesDiagnostics(t *testing.T) {
	s, out := newTestServer(t, ServerOptions{})
	openDoc(t, s, "let v = 1.2.3\n")
	if got := lastPublish(t, drain(t, out)); len(got.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(got.Diagnostics))
	}

	call(t, s, "textDocument/didChange", 0, didChangeTextDocumentParams{
		TextDocument: versionedTextDocumentIdentifier{URI: testURI, Version: 2},
		ContentChanges: []textDocumentContentChangeEvent{{
			Range: &lspRange{Start: position{Line: 0, Character: 8}, End: position{Line: 0, Character: 13}},
			Text:  "1.5",
		}},
	})
	params := lastPublish(t, drain(t, out))
	if len(params.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", params.Diagnostics)
	}
	if params.Version == nil || *params.Version != 2 {
		t.Fatalf("unexpected version: %v", params.Version)
	}
	doc, ok := s.Store().Document(testURI)
	if !ok || doc.Text() != "let v = 1.5\n" {
		t.Fatalf("store not updated: %+v", doc)
	}
}

func TestDidCloseClearsDiagnostics(t *testing.T) {
	s, out := newTestServer(t, ServerOptions{EvictOnClose: true})
	openDoc(t, s, `let s = "x`)
	drain(t, out)

	call(t, s, "textDocument/didClose", 0, didCloseTextDocumentParams{
		TextDocument: textDocumentIdentifier{URI: testURI},
	})
	params := lastPublish(t, drain(t, out))
	if len(params.Diagnostics) != 0 {
		t.Fatalf("expected cleared diagnostics, got %+v", params.Diagnostics)
	}
	if _, ok := s.Store().Get(testURI); ok {
		t.Fatalf("expected document to be evicted")
	}
}

func TestDidCloseKeepsAnalysisByDefault(t *testing.T) {
	store := analysis.NewStore()
	s, out := newTestServer(t, ServerOptions{Store: store})
	openDoc(t, s, "let x = 1\n")
	drain(t, out)
	call(t, s, "textDocument/didClose", 0, didCloseTextDocumentParams{
		TextDocument: textDocumentIdentifier{URI: testURI},
	})
	if msgs := drain(t, out); len(msgs) != 0 {
		t.Fatalf("clean document should not republish on close, got %d messages", len(msgs))
	}
	if _, ok := store.Get(testURI); !ok {
		t.Fatalf("analysis dropped without evict_on_close")
	}
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	s, out := newTestServer(t, ServerOptions{})
	call(t, s, "initialize", 1, map[string]any{
		"rootUri":               "file:///work",
		"initializationOptions": map[string]any{"glint": map[string]any{"lexer": map[string]any{"comment": "--"}}},
	})
	msgs := drain(t, out)
	if len(msgs) != 1 {
		t.Fatalf("expected one response, got %d", len(msgs))
	}
	var result initializeResult
	if err := json.Unmarshal(msgs[0].Result, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	caps := result.Capabilities
	if !caps.HoverProvider || !caps.DefinitionProvider || !caps.DocumentSymbolProvider || caps.CompletionProvider == nil {
		t.Fatalf("missing capabilities: %+v", caps)
	}
	if result.ServerInfo == nil || result.ServerInfo.Name != "glint" {
		t.Fatalf("unexpected server info: %+v", result.ServerInfo)
	}
	if s.analysisOpts.Lexer.Comment.String() != "--" {
		t.Fatalf("initializationOptions not applied: %v", s.analysisOpts.Lexer.Comment)
	}
}

func TestInitializeDiscoversWorkspaceConfig(t *testing.T) {
	root := t.TempDir()
	toml := "[lexer]\ncomment = \"--\"\n[diagnostics]\nmax = 1\n[server]\nevict_on_close = true\n"
	if err := os.WriteFile(filepath.Join(root, "glint.toml"), []byte(toml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	nested := filepath.Join(root, "src")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	s, out := newTestServer(t, ServerOptions{DiscoverConfig: true})
	call(t, s, "initialize", 1, map[string]any{"rootUri": pathToURI(nested)})
	drain(t, out)
	if s.analysisOpts.Lexer.Comment.String() != "--" || s.analysisOpts.Check.Max != 1 || !s.evictOnClose {
		t.Fatalf("workspace config not applied: %+v evict=%v", s.analysisOpts, s.evictOnClose)
	}

	// client settings are applied after the file and win
	s, out = newTestServer(t, ServerOptions{DiscoverConfig: true})
	call(t, s, "initialize", 1, map[string]any{
		"rootUri":               pathToURI(root),
		"initializationOptions": map[string]any{"glint": map[string]any{"lexer": map[string]any{"comment": "%"}}},
	})
	drain(t, out)
	if s.analysisOpts.Lexer.Comment.String() != "%" || s.analysisOpts.Check.Max != 1 {
		t.Fatalf("unexpected options: %+v", s.analysisOpts)
	}

	// discovery is opt-in
	s, out = newTestServer(t, ServerOptions{})
	call(t, s, "initialize", 1, map[string]any{"rootUri": pathToURI(root)})
	drain(t, out)
	if s.analysisOpts.Check.Max != 0 || s.evictOnClose {
		t.Fatalf("config applied without DiscoverConfig: %+v", s.analysisOpts)
	}
}

func TestHoverRequest(t *testing.T) {
	s, out := newTestServer(t, ServerOptions{})
	openDoc(t, s, testProgram)
	drain(t, out)

	call(t, s, "textDocument/hover", 7, hoverParams{
		TextDocument: textDocumentIdentifier{URI: testURI},
		Position:     position{Line: 5, Character: 1},
	})
	msgs := drain(t, out)
	var h hover
	if err := json.Unmarshal(msgs[0].Result, &h); err != nil {
		t.Fatalf("decode hover: %v", err)
	}
	if h.Contents.Kind != "markdown" || !strings.Contains(h.Contents.Value, "function foo") {
		t.Fatalf("unexpected hover: %+v", h.Contents)
	}
	if h.Range == nil || h.Range.Start.Character != 0 || h.Range.End.Character != 3 {
		t.Fatalf("unexpected hover range: %+v", h.Range)
	}

	call(t, s, "textDocument/hover", 8, hoverParams{
		TextDocument: textDocumentIdentifier{URI: testURI},
		Position:     position{Line: 40, Character: 0},
	})
	msgs = drain(t, out)
	if string(msgs[0].Result) != "null" && len(msgs[0].Result) != 0 {
		t.Fatalf("expected null hover, got %s", msgs[0].Result)
	}
}

func TestDefinitionRequest(t *testing.T) {
	s, out := newTestServer(t, ServerOptions{})
	openDoc(t, s, testProgram)
	drain(t, out)

	call(t, s, "textDocument/definition", 2, definitionParams{
		TextDocument: textDocumentIdentifier{URI: testURI},
		Position:     position{Line: 5, Character: 2},
	})
	msgs := drain(t, out)
	var loc location
	if err := json.Unmarshal(msgs[0].Result, &loc); err != nil {
		t.Fatalf("decode location: %v", err)
	}
	if loc.URI != testURI || loc.Range.Start.Line != 0 {
		t.Fatalf("unexpected location: %+v", loc)
	}
}

func TestCompletionRequest(t *testing.T) {
	s, out := newTestServer(t, ServerOptions{})
	openDoc(t, s, testProgram)
	drain(t, out)

	call(t, s, "textDocument/completion", 3, completionParams{
		TextDocument: textDocumentIdentifier{URI: testURI},
	})
	msgs := drain(t, out)
	var list completionList
	if err := json.Unmarshal(msgs[0].Result, &list); err != nil {
		t.Fatalf("decode completion: %v", err)
	}
	if list.IsIncomplete {
		t.Fatalf("completion list should be complete")
	}
	found := map[string]int{}
	for _, it := range list.Items {
		found[it.Label] = it.Kind
	}
	if found["foo"] != 3 || found["function"] != 14 || found["s"] != 6 {
		t.Fatalf("unexpected completion kinds: foo=%d function=%d s=%d", found["foo"], found["function"], found["s"])
	}
}

func TestDocumentSymbolRequest(t *testing.T) {
	s, out := newTestServer(t, ServerOptions{})
	openDoc(t, s, testProgram)
	drain(t, out)

	call(t, s, "textDocument/documentSymbol", 4, documentSymbolParams{
		TextDocument: textDocumentIdentifier{URI: testURI},
	})
	msgs := drain(t, out)
	var syms []documentSymbol
	if err := json.Unmarshal(msgs[0].Result, &syms); err != nil {
		t.Fatalf("decode symbols: %v", err)
	}
	if len(syms) != 3 {
		t.Fatalf("expected 3 symbols, got %+v", syms)
	}
	if syms[0].Name != "foo" || syms[0].Kind != 12 {
		t.Fatalf("unexpected first symbol: %+v", syms[0])
	}
	if syms[1].Name != "s" || syms[1].Kind != 13 || syms[2].Name != "v" {
		t.Fatalf("unexpected order: %+v", syms)
	}
}

func TestUnknownMethodAndBadParams(t *testing.T) {
	s, out := newTestServer(t, ServerOptions{})
	call(t, s, "textDocument/rename", 5, map[string]any{})
	msgs := drain(t, out)
	if len(msgs) != 1 || msgs[0].Error == nil || msgs[0].Error.Code != codeMethodNotFound {
		t.Fatalf("expected method not found, got %+v", msgs)
	}

	call(t, s, "$/cancelRequest", 0, map[string]any{"id": 1})
	if msgs := drain(t, out); len(msgs) != 0 {
		t.Fatalf("unknown notification must be ignored, got %+v", msgs)
	}

	msg := &rpcMessage{Method: "textDocument/hover", ID: json.RawMessage("6"), Params: json.RawMessage(`"nope"`)}
	if err := s.handleMessage(msg); err != nil {
		t.Fatalf("hover: %v", err)
	}
	msgs = drain(t, out)
	if len(msgs) != 1 || msgs[0].Error == nil || msgs[0].Error.Code != codeInvalidParams {
		t.Fatalf("expected invalid params, got %+v", msgs)
	}
}

func TestConfigurationChangeReanalyzes(t *testing.T) {
	s, out := newTestServer(t, ServerOptions{})
	openDoc(t, s, "let a = 1.2.3\nlet b = 4.5.6\n")
	if got := lastPublish(t, drain(t, out)); len(got.Diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(got.Diagnostics))
	}
	call(t, s, "workspace/didChangeConfiguration", 0, map[string]any{
		"settings": map[string]any{"glint": map[string]any{"diagnostics": map[string]any{"max": 1}}},
	})
	if got := lastPublish(t, drain(t, out)); len(got.Diagnostics) != 1 {
		t.Fatalf("expected capped diagnostics, got %d", len(got.Diagnostics))
	}

	call(t, s, "workspace/didChangeConfiguration", 0, map[string]any{
		"settings": map[string]any{"glint": map[string]any{"diagnostics": map[string]any{"max": 1}}},
	})
	if msgs := drain(t, out); len(msgs) != 0 {
		t.Fatalf("unchanged settings should not republish, got %d", len(msgs))
	}
}

func TestExitSemantics(t *testing.T) {
	s, _ := newTestServer(t, ServerOptions{})
	if err := s.handleMessage(&rpcMessage{Method: "exit"}); !errors.Is(err, ErrExitWithoutShutdown) {
		t.Fatalf("expected ErrExitWithoutShutdown, got %v", err)
	}

	s, out := newTestServer(t, ServerOptions{})
	openDoc(t, s, `let s = "x`)
	drain(t, out)
	call(t, s, "shutdown", 9, nil)
	msgs := drain(t, out)
	if len(msgs) != 2 {
		t.Fatalf("expected clear + response, got %d messages", len(msgs))
	}
	if len(lastPublish(t, msgs).Diagnostics) != 0 {
		t.Fatalf("shutdown should clear diagnostics")
	}
	if err := s.handleMessage(&rpcMessage{Method: "exit"}); !errors.Is(err, ErrExit) {
		t.Fatalf("expected ErrExit, got %v", err)
	}
}

func TestRunStopsOnExit(t *testing.T) {
	var in bytes.Buffer
	for _, body := range []string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
		`{"jsonrpc":"2.0","id":2,"method":"shutdown"}`,
		`{"jsonrpc":"2.0","method":"exit"}`,
	} {
		if err := writeMessage(&in, []byte(body)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	var out bytes.Buffer
	s := NewServer(&in, &out, ServerOptions{})
	if err := s.Run(context.Background()); !errors.Is(err, ErrExit) {
		t.Fatalf("expected ErrExit, got %v", err)
	}
	if msgs := drain(t, &out); len(msgs) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(msgs))
	}
}

func TestRunSurvivesBadFrame(t *testing.T) {
	var in bytes.Buffer
	in.WriteString("Content-Length: nope\r\n\r\n{}")
	for _, body := range []string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
		`{"jsonrpc":"2.0","id":2,"method":"shutdown"}`,
		`{"jsonrpc":"2.0","method":"exit"}`,
	} {
		if err := writeMessage(&in, []byte(body)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	var out bytes.Buffer
	s := NewServer(&in, &out, ServerOptions{})
	if err := s.Run(context.Background()); !errors.Is(err, ErrExit) {
		t.Fatalf("expected ErrExit, got %v", err)
	}
	if msgs := drain(t, &out); len(msgs) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(msgs))
	}
}
