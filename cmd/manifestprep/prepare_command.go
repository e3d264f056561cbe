package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"manifestprep/internal/ingest"
	"manifestprep/internal/ledger"
	"manifestprep/internal/logging"
)

func newPrepareCommand(ctx *commandContext) *cobra.Command {
	var (
		inputFolder    string
		outputManifest string
		sourceLang     string
		targetLang     string
		samplingRate   int
		pattern        string
		workers        int
	)

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Flatten transcript chunk files into a fine-tuning manifest",
		Long: `Prepare reads every JSONL chunk file matching the pattern in the input
folder, pairs each utterance with its translation under a shared identifier,
and writes the flattened manifest expected by S2T fine-tuning pipelines.

Files are parsed in parallel; the manifest is written sequentially in lexical
file order. Malformed lines are logged and skipped without aborting the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			opts := ingest.Options{
				InputFolder:    inputFolder,
				OutputManifest: outputManifest,
				SourceLang:     sourceLang,
				TargetLang:     targetLang,
				SamplingRate:   samplingRate,
				Pattern:        pattern,
				Workers:        workers,
			}
			if opts.SourceLang == "" {
				opts.SourceLang = cfg.Defaults.SourceLang
			}
			if opts.TargetLang == "" {
				opts.TargetLang = cfg.Defaults.TargetLang
			}
			if opts.SamplingRate == 0 {
				opts.SamplingRate = cfg.Defaults.SamplingRate
			}
			if opts.Pattern == "" {
				opts.Pattern = cfg.Defaults.Pattern
			}
			if opts.Workers == 0 {
				opts.Workers = cfg.Defaults.Workers
			}

			runner, err := ingest.NewRunner(opts, logger)
			if err != nil {
				return err
			}

			started := time.Now()
			summary, runErr := runner.Run(cmd.Context())
			recordRun(cmd.Context(), ctx, logger, opts, started, summary, runErr)
			if runErr != nil {
				return runErr
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Saved %d records to %s\n", summary.RecordsWritten, summary.ManifestPath)
			fmt.Fprintf(out, "Processed %d of %d files in %s\n",
				summary.FilesProcessed, summary.FilesMatched, formatDuration(summary.Duration))
			if summary.FilesFailed > 0 {
				fmt.Fprintf(out, "Failed files: %d (see log for details)\n", summary.FilesFailed)
			}
			if summary.LinesSkipped > 0 {
				fmt.Fprintf(out, "Skipped malformed lines: %d\n", summary.LinesSkipped)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFolder, "input-folder", "i", "", "Directory containing the JSONL transcript chunk files")
	cmd.Flags().StringVarP(&outputManifest, "output-manifest", "o", "", "Path for the output manifest JSONL file")
	cmd.Flags().StringVar(&sourceLang, "source-lang", "", "Source language code (default from config, eng)")
	cmd.Flags().StringVar(&targetLang, "target-lang", "", "Target language code (default from config, eng)")
	cmd.Flags().IntVar(&samplingRate, "sampling-rate", 0, "Audio sampling rate recorded per sample (default from config, 16000)")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Glob pattern for input files within the folder")
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of parse workers (default one per CPU core)")
	_ = cmd.MarkFlagRequired("input-folder")
	_ = cmd.MarkFlagRequired("output-manifest")

	return cmd
}

// recordRun appends the run to the ledger. Best effort: the manifest is
// already on disk, so ledger trouble only warrants a warning.
func recordRun(cmdCtx context.Context, ctx *commandContext, logger *slog.Logger, opts ingest.Options, started time.Time, summary ingest.Summary, runErr error) {
	store, err := ctx.openLedger()
	if err != nil {
		logger.Warn("ledger unavailable", logging.Error(err))
		return
	}
	if store == nil {
		return
	}
	defer store.Close()

	run := ledger.Run{
		StartedAt:      started,
		FinishedAt:     time.Now(),
		InputFolder:    opts.InputFolder,
		OutputManifest: opts.OutputManifest,
		SourceLang:     strings.ToLower(strings.TrimSpace(opts.SourceLang)),
		TargetLang:     strings.ToLower(strings.TrimSpace(opts.TargetLang)),
		SamplingRate:   opts.SamplingRate,
		FilesMatched:   summary.FilesMatched,
		FilesProcessed: summary.FilesProcessed,
		FilesFailed:    summary.FilesFailed,
		RecordsWritten: summary.RecordsWritten,
		LinesSkipped:   summary.LinesSkipped,
		Status:         ledger.StatusCompleted,
	}
	if runErr != nil {
		run.Status = ledger.StatusFailed
		run.ErrorMessage = runErr.Error()
	}

	if _, err := store.RecordRun(cmdCtx, run); err != nil {
		logger.Warn("failed to record run in ledger", logging.Error(err))
	}
}
