package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"manifestprep/internal/logging"
	"manifestprep/internal/manifest"
)

// Runner executes the parallel parse / sequential write pipeline for one
// prepare invocation.
type Runner struct {
	opts   Options
	logger *slog.Logger
}

// NewRunner validates options and builds a runner.
func NewRunner(opts Options, logger *slog.Logger) (*Runner, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	return &Runner{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "ingest"),
	}, nil
}

type fileResult struct {
	index   int
	path    string
	records []manifest.Record
	skipped int
	err     error
}

// Run globs the input folder, parses every matched file on the worker pool,
// and writes records grouped by file in lexical path order.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	start := time.Now()

	pattern := filepath.Join(r.opts.InputFolder, r.opts.Pattern)
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return Summary{}, fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return Summary{}, fmt.Errorf("%w: %s", ErrNoInputFiles, pattern)
	}
	sort.Strings(paths)

	lock := flock.New(r.opts.OutputManifest + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return Summary{}, fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return Summary{}, fmt.Errorf("%w: %s", ErrOutputLocked, r.opts.OutputManifest)
	}
	defer func() { _ = lock.Unlock() }()

	writer, err := manifest.NewWriter(r.opts.OutputManifest)
	if err != nil {
		return Summary{}, err
	}

	r.logger.Info("prepare started",
		logging.Int("files", len(paths)),
		logging.Int("workers", r.opts.Workers),
		logging.String("source_lang", r.opts.SourceLang),
		logging.String("target_lang", r.opts.TargetLang),
		logging.Int("sampling_rate", r.opts.SamplingRate),
	)

	results := r.startWorkers(ctx, paths)

	summary := Summary{
		ManifestPath: r.opts.OutputManifest,
		FilesMatched: len(paths),
	}
	var runErr error

	// Results arrive in completion order; buffer them and flush in input
	// order so the manifest layout does not depend on worker scheduling.
	pending := make(map[int]fileResult, len(paths))
	next := 0
	for res := range results {
		if runErr != nil {
			continue // drain so workers never block
		}
		pending[res.index] = res
		for {
			cur, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := r.consumeResult(writer, &summary, cur); err != nil {
				runErr = err
				break
			}
		}
	}

	if runErr == nil {
		runErr = ctx.Err()
	}
	if runErr != nil {
		writer.Abort()
		return summary, runErr
	}

	summary.RecordsWritten = writer.Count()
	if err := writer.Commit(); err != nil {
		return summary, err
	}
	summary.Duration = time.Since(start)

	r.logger.Info("manifest saved",
		logging.String("manifest", summary.ManifestPath),
		logging.Int64("records", summary.RecordsWritten),
		logging.Int("files_processed", summary.FilesProcessed),
		logging.Int("files_failed", summary.FilesFailed),
		logging.Int("lines_skipped", summary.LinesSkipped),
		logging.Duration("duration", summary.Duration),
	)
	return summary, nil
}

func (r *Runner) startWorkers(ctx context.Context, paths []string) <-chan fileResult {
	jobs := make(chan int)
	results := make(chan fileResult)

	var wg sync.WaitGroup
	for i := 0; i < r.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				records, skipped, err := parseFile(paths[idx], r.opts, r.logger)
				select {
				case results <- fileResult{index: idx, path: paths[idx], records: records, skipped: skipped, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for idx := range paths {
			select {
			case jobs <- idx:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func (r *Runner) consumeResult(writer *manifest.Writer, summary *Summary, res fileResult) error {
	if res.err != nil {
		summary.FilesFailed++
		r.logger.Error("failed to process file",
			logging.String("file", res.path),
			logging.Error(res.err),
		)
		return nil
	}

	for _, rec := range res.records {
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
	}
	summary.FilesProcessed++
	summary.LinesSkipped += res.skipped

	r.logger.Info("processed file",
		logging.String("file", res.path),
		logging.Int("records", len(res.records)),
		logging.Int("lines_skipped", res.skipped),
	)
	return nil
}
