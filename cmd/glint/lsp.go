package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glint/internal/lsp"
)

var lspCmd = &cobra.Command{
	Use:          "lsp",
	Short:        "Run the glint language server over stdio",
	SilenceUsage: true,
	RunE:         runLSP,
}

func runLSP(cmd *cobra.Command, _ []string) error {
	st, err := loadSettings(cmd, ".")
	if err != nil {
		return err
	}
	defer st.close()

	server := lsp.NewServer(os.Stdin, os.Stdout, lsp.ServerOptions{
		Analysis:       st.analysis,
		EvictOnClose:   st.cfg.Server.EvictOnClose,
		// an explicit --config pins the settings for every workspace
		DiscoverConfig: !st.explicitConfig,
		Log:            st.log,
	})
	if err := server.Run(cmd.Context()); err != nil {
		if errors.Is(err, lsp.ErrExit) {
			return nil
		}
		if errors.Is(err, lsp.ErrExitWithoutShutdown) {
			return fmt.Errorf("lsp exit without shutdown")
		}
		return err
	}
	return nil
}
