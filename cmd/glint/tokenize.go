package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glint/internal/check"
	"glint/internal/diagfmt"
	"glint/internal/lexer"
	"glint/internal/observ"
	"glint/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.gl",
	Short: "Tokenize a glint source file",
	Long:  `Tokenize breaks down a glint source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	st, err := loadSettings(cmd, startDirFor(args))
	if err != nil {
		return err
	}
	defer st.close()

	timer := st.newTimer()
	idx := timer.Begin(observ.PhaseLoad)
	file, err := source.Load(filePath)
	timer.End(idx, "")
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	idx = timer.Begin(observ.PhaseTokenize)
	res := lexer.Scan(file.Text(), st.analysis.Lexer)
	timer.End(idx, fmt.Sprintf("%d tokens", len(res.Tokens)))
	idx = timer.Begin(observ.PhaseValidate)
	diags := check.ValidateWith(res.Tokens, st.analysis.Check)
	timer.End(idx, fmt.Sprintf("%d diagnostics", len(diags)))

	// Диагностику выводим в stderr, токены в stdout
	if len(diags) > 0 {
		opts := diagfmt.PrettyOpts{Color: st.useColor(os.Stderr), Context: 0}
		if err := diagfmt.Pretty(os.Stderr, file, filePath, diags, opts); err != nil {
			return err
		}
	}

	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(os.Stdout, res.Tokens)
	case "json":
		err = diagfmt.FormatTokensJSON(os.Stdout, res.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	if res.Truncated {
		fmt.Fprintf(os.Stderr, "note: stopped after %d tokens (lexer.max_tokens)\n", len(res.Tokens))
	}
	if timer != nil {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}
