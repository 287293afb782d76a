// Package driver checks files from disk: it expands paths, runs the
// analysis pipeline on a bounded worker pool, consults the disk cache and
// streams progress events.
package driver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"glint/internal/analysis"
	"glint/internal/cache"
	"glint/internal/diag"
	"glint/internal/observ"
	"glint/internal/source"
)

// Options configure CheckFile and CheckPaths.
type Options struct {
	Analysis analysis.Options
	// Jobs bounds the worker pool; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache may be nil.
	Cache *cache.Cache
	// Store, when set, receives every analysed document.
	Store *analysis.Store
	// Events, when set, receives progress. CheckPaths does not close it.
	Events chan<- Event
	// Timings enables a per-file phase timer.
	Timings bool
	Log     *zap.Logger
}

// FileResult is the outcome for one file. Err is set for IO failures only;
// findings in the text are in Doc.Diagnostics.
type FileResult struct {
	Path       string
	Doc        *analysis.Document
	TokenCount int
	Cached     bool
	Timing     *observ.Report
	Err        error
}

// HasErrors reports whether the file failed to load or has error diagnostics.
func (r *FileResult) HasErrors() bool {
	if r.Err != nil {
		return true
	}
	if r.Doc == nil {
		return false
	}
	for _, d := range r.Doc.Diagnostics {
		if d.Severity >= diag.SevError {
			return true
		}
	}
	return false
}

// CheckFile loads and analyses one file.
func CheckFile(path string, opts Options) FileResult {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	var timer *observ.Timer
	if opts.Timings {
		timer = observ.NewTimer()
	}
	res := FileResult{Path: path}
	start := time.Now()

	emit(opts.Events, Event{File: path, Stage: StageLoad, Status: StatusWorking})
	idx := timer.Begin(observ.PhaseLoad)
	file, err := source.Load(path)
	timer.End(idx, "")
	if err != nil {
		res.Err = err
		emit(opts.Events, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		return res
	}

	style := opts.Analysis.Lexer.Comment.String()
	key := cache.Key(file.Content, style, opts.Analysis.Lexer.MaxTokens, opts.Analysis.Check.Max)
	if opts.Cache != nil {
		emit(opts.Events, Event{File: path, Stage: StageCache, Status: StatusWorking})
		idx = timer.Begin(observ.PhaseCache)
		var entry cache.Entry
		hit, err := opts.Cache.Get(key, &entry)
		timer.End(idx, fmt.Sprintf("hit=%v", hit))
		if err != nil {
			log.Warn("cache read failed", zap.String("path", path), zap.Error(err))
		}
		if hit {
			res.Doc = fromEntry(path, file, &entry)
			res.TokenCount = entry.TokenCount
			res.Cached = true
		}
	}

	if res.Doc == nil {
		emit(opts.Events, Event{File: path, Stage: StageAnalyze, Status: StatusWorking})
		aopts := opts.Analysis
		aopts.Timer = timer
		res.Doc = analysis.AnalyzeFile(path, file, aopts)
		res.TokenCount = len(res.Doc.Tokens)
		if opts.Cache != nil {
			if err := opts.Cache.Put(key, toEntry(res.Doc)); err != nil {
				log.Warn("cache write failed", zap.String("path", path), zap.Error(err))
			}
		}
	}

	if opts.Store != nil {
		opts.Store.Put(res.Doc)
	}
	if timer != nil {
		report := timer.Report()
		res.Timing = &report
	}
	status := StatusDone
	if res.HasErrors() {
		status = StatusError
	}
	emit(opts.Events, Event{File: path, Stage: StageAnalyze, Status: status, Elapsed: time.Since(start)})
	log.Debug("checked file",
		zap.String("path", path),
		zap.Bool("cached", res.Cached),
		zap.Int("diagnostics", len(res.Doc.Diagnostics)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res
}

// CheckPaths expands paths and checks every file in parallel. Results are
// in the sorted file order regardless of completion order. The only error
// is context cancellation or a failure to expand paths.
func CheckPaths(ctx context.Context, paths []string, opts Options) ([]FileResult, error) {
	files, err := ExpandPaths(paths)
	if err != nil {
		return nil, err
	}
	return CheckFiles(ctx, files, opts)
}

// CheckFiles is CheckPaths over an already expanded file list.
func CheckFiles(ctx context.Context, files []string, opts Options) ([]FileResult, error) {
	if len(files) == 0 {
		return nil, nil
	}
	for _, f := range files {
		emit(opts.Events, Event{File: f, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = CheckFile(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
