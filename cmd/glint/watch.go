package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"glint/internal/driver"
)

var watchCmd = &cobra.Command{
	Use:          "watch [flags] dir",
	Short:        "Re-run check whenever a .gl file under dir changes",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runWatch,
}

func init() {
	watchCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	watchCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
	watchCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	watchCmd.Flags().String("ui", "off", "progress UI (auto|on|off)")
	watchCmd.Flags().Duration("debounce", 250*time.Millisecond, "quiet period before re-checking")
}

func runWatch(cmd *cobra.Command, args []string) error {
	run, err := newCheckRun(cmd, args)
	if err != nil {
		return err
	}
	defer run.st.close()
	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return fmt.Errorf("failed to get debounce flag: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	if _, err := run.once(ctx, out); err != nil {
		return err
	}
	fmt.Fprintf(out, "watching %s\n", args[0])
	return watchWithFSNotify(ctx, args[0], debounce, func(changed []string) {
		fmt.Fprintf(out, "\n%d file(s) changed, re-checking\n", len(changed))
		if _, err := run.once(ctx, out); err != nil {
			run.st.log.Sugar().Warnf("check failed: %v", err)
		}
	})
}

// watchWithFSNotify calls onChange with the sorted set of .gl paths touched
// during each quiet period of length debounce.
func watchWithFSNotify(ctx context.Context, target string, debounce time.Duration, onChange func(changedPaths []string)) error {
	root, err := filepath.Abs(target)
	if err != nil {
		return err
	}
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		root = filepath.Dir(root)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := addWatchRecursive(watcher, root); err != nil {
		return err
	}
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	pending := false
	pendingPaths := map[string]bool{}

	resetDebounce := func(path string) {
		pendingPaths[path] = true
		if pending {
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		}
		timer.Reset(debounce)
		pending = true
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			eventPath := filepath.Clean(event.Name)
			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(eventPath); statErr == nil && info.IsDir() {
					if !skipWatchDir(root, eventPath) {
						_ = addWatchRecursive(watcher, eventPath)
					}
					continue
				}
			}
			if !isWatchedFile(eventPath) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			resetDebounce(eventPath)
		case <-timer.C:
			if pending {
				pending = false
				changed := make([]string, 0, len(pendingPaths))
				for path := range pendingPaths {
					changed = append(changed, path)
				}
				sort.Strings(changed)
				pendingPaths = map[string]bool{}
				onChange(changed)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return watchErr
		}
	}
}

func addWatchRecursive(watcher *fsnotify.Watcher, root string) error {
	root = filepath.Clean(root)
	return filepath.WalkDir(root, func(path string, entry os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !entry.IsDir() {
			return nil
		}
		if skipWatchDir(root, path) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func skipWatchDir(root, path string) bool {
	if path == root {
		return false
	}
	name := filepath.Base(path)
	return strings.HasPrefix(name, ".") || name == "node_modules" || name == "vendor"
}

// isWatchedFile filters editor swap files and anything that is not a script.
func isWatchedFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".#") || strings.HasPrefix(base, ".") {
		return false
	}
	return filepath.Ext(base) == driver.Ext
}
