package fuzztests

import (
	"testing"

	"glint/internal/analysis"
	"glint/internal/check"
	"glint/internal/lexer"
	"glint/internal/query"
	"glint/internal/source"
	"glint/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		file := source.NewVirtual("fuzz.gl", string(input))
		for _, style := range []lexer.CommentStyle{lexer.CommentPercent, lexer.CommentDashes} {
			res := lexer.Scan(file.Text(), lexer.Options{Comment: style})
			if err := testkit.CheckTokenInvariants(file, res.Tokens); err != nil {
				t.Fatalf("comment %s: %v", style, err)
			}
		}
	})
}

func FuzzAnalyze(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		const uri = "file:///fuzz.gl"
		store := analysis.NewStore()
		doc := store.Analyze(uri, string(input), analysis.Options{Check: check.Options{Max: 16}})

		if err := testkit.CheckSymbolInvariants(doc.Info, doc.Tokens); err != nil {
			t.Fatal(err)
		}
		if err := testkit.CheckDiagnosticInvariants(doc.Diagnostics, 16); err != nil {
			t.Fatal(err)
		}

		// queries must not panic anywhere in the document
		_ = query.Completion(store, uri, source.Position{})
		_ = query.DocumentSymbols(store, uri)
		for _, tok := range doc.Tokens {
			pos := tok.Pos()
			_, _ = query.HoverAt(store, uri, doc.Text(), pos)
			_, _ = query.Definition(store, uri, doc.Text(), pos)
		}
	})
}
