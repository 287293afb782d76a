package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glint/internal/analysis"
	"glint/internal/diagfmt"
	"glint/internal/source"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols [flags] file.gl",
	Short: "Print the symbol table and imports of a glint file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSymbols,
}

func init() {
	symbolsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runSymbols(cmd *cobra.Command, args []string) error {
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

	file, err := source.Load(filePath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", filePath, err)
	}
	opts := st.analysis
	opts.Timer = st.newTimer()
	doc := analysis.AnalyzeFile(filePath, file, opts)

	switch format {
	case "pretty":
		err = diagfmt.FormatSymbolsPretty(os.Stdout, doc.Info)
	case "json":
		err = diagfmt.FormatSymbolsJSON(os.Stdout, doc.Info)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	if opts.Timer != nil {
		fmt.Fprint(os.Stderr, opts.Timer.Summary())
	}
	return nil
}
