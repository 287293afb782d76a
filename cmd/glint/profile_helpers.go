package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glint/internal/prof"
)

var profSession *prof.Session

// startProfiling reads the persistent profiling flags and starts the requested profilers.
func startProfiling(cmd *cobra.Command, _ []string) error {
	root := cmd.Root()
	var opts prof.Options
	var err error
	if opts.CPU, err = root.PersistentFlags().GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = root.PersistentFlags().GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = root.PersistentFlags().GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}
	profSession, err = prof.Start(opts)
	return err
}

// stopProfiling is a no-op when no profiler was started.
func stopProfiling() {
	if err := profSession.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "glint: %v\n", err)
	}
}
