package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"glint/internal/cache"
	"glint/internal/diagfmt"
	"glint/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:          "check [flags] path...",
	Short:        "Validate glint files and directories",
	Long:         `Check scans every .gl file under the given paths in parallel and prints its diagnostics`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

// checkRun carries the resolved inputs of one check pass; watch reuses it.
type checkRun struct {
	st      *settings
	format  string
	useUI   bool
	driver  driver.Options
	pathArg []string
}

func newCheckRun(cmd *cobra.Command, args []string) (*checkRun, error) {
	st, err := loadSettings(cmd, startDirFor(args))
	if err != nil {
		return nil, err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return nil, fmt.Errorf("failed to get ui flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	useUI, err := progressUI(uiValue, format, isTerminal(os.Stdout))
	if err != nil {
		return nil, err
	}

	run := &checkRun{
		st:      st,
		format:  format,
		useUI:   useUI,
		pathArg: args,
		driver: driver.Options{
			Analysis: st.analysis,
			Jobs:     jobs,
			Timings:  st.timings,
			Log:      st.log,
		},
	}
	if st.cfg.Cache.Enabled && !noCache {
		dir, err := st.cfg.CacheDir()
		if err == nil {
			run.driver.Cache, err = cache.Open(dir)
		}
		if err != nil {
			st.log.Warn("cache disabled", zap.Error(err))
		}
	}
	return run, nil
}

// progressUI resolves --ui for a check pass. The progress view shares stdout
// with the report, so it is never drawn over JSON output.
func progressUI(value, format string, stdoutIsTTY bool) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return format == "pretty" && stdoutIsTTY, nil
	case "off":
		return false, nil
	case "on":
		if format == "json" {
			return false, fmt.Errorf("--ui on cannot be combined with --format json")
		}
		return true, nil
	default:
		return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	run, err := newCheckRun(cmd, args)
	if err != nil {
		return err
	}
	defer run.st.close()
	hasErrors, err := run.once(cmd.Context(), os.Stdout)
	if err != nil {
		return err
	}
	if hasErrors {
		return errFindings
	}
	return nil
}

// once checks every path, prints the report and tells whether any file has errors.
func (r *checkRun) once(ctx context.Context, out io.Writer) (bool, error) {
	files, err := driver.ExpandPaths(r.pathArg)
	if err != nil {
		return false, err
	}
	var results []driver.FileResult
	if r.useUI {
		results, err = runCheckWithUI(ctx, "check", files, r.driver)
	} else {
		results, err = driver.CheckFiles(ctx, files, r.driver)
	}
	if err != nil {
		return false, err
	}
	return r.report(out, results)
}

func (r *checkRun) report(out io.Writer, results []driver.FileResult) (bool, error) {
	hasErrors := false
	for i := range results {
		if results[i].HasErrors() {
			hasErrors = true
		}
	}
	if r.format == "json" {
		files := make([]diagfmt.FileDiagnostics, 0, len(results))
		for _, res := range results {
			if res.Doc == nil {
				continue
			}
			files = append(files, diagfmt.FileDiagnostics{Path: res.Path, Diagnostics: res.Doc.Diagnostics})
		}
		return hasErrors, diagfmt.JSON(out, files, diagfmt.JSONOpts{})
	}

	opts := diagfmt.PrettyOpts{Color: r.st.useColor(os.Stdout), Context: 0}
	total, withErrors, cached := 0, 0, 0
	for i := range results {
		res := &results[i]
		if res.HasErrors() {
			withErrors++
		}
		if res.Cached {
			cached++
		}
		if res.Err != nil {
			fmt.Fprintf(out, "%s: %v\n", res.Path, res.Err)
			continue
		}
		total += len(res.Doc.Diagnostics)
		if err := diagfmt.Pretty(out, res.Doc.File, res.Path, res.Doc.Diagnostics, opts); err != nil {
			return hasErrors, err
		}
	}
	if r.st.timings {
		printFileTimings(os.Stderr, results)
	}
	fmt.Fprintf(out, "%d files checked (%d cached), %d diagnostics, %d files with errors\n",
		len(results), cached, total, withErrors)
	return hasErrors, nil
}
