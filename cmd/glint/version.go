package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"glint/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show glint build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	info := version.Current()
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "pretty":
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
		printVersion(cmd.OutOrStdout(), info, useColor)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// printVersion writes the headline and one aligned row per known build field.
func printVersion(out io.Writer, info version.Info, useColor bool) {
	v := info.Version
	if useColor {
		v = version.Colored(v)
	}
	fmt.Fprintf(out, "glint %s\n", v)
	if info.Commit != "" {
		commit := info.ShortCommit()
		if info.Modified {
			commit += " (modified)"
		}
		fmt.Fprintf(out, "  commit  %s\n", commit)
	}
	if info.Date != "" {
		fmt.Fprintf(out, "  built   %s\n", info.Date)
	}
	fmt.Fprintf(out, "  go      %s %s\n", info.Go, info.Platform)
}
