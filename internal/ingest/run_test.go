package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"manifestprep/internal/logging"
	"manifestprep/internal/manifest"
	"manifestprep/internal/testsupport"
)

func newTestRunner(t *testing.T, opts Options) *Runner {
	t.Helper()
	runner, err := NewRunner(opts, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return runner
}

func defaultOptions(inputDir, outputPath string) Options {
	return Options{
		InputFolder:    inputDir,
		OutputManifest: outputPath,
		SourceLang:     "eng",
		TargetLang:     "hin",
		SamplingRate:   16000,
		Pattern:        testsupport.ChunkFilePrefix + "*.jsonl",
		Workers:        4,
	}
}

func TestRunWritesRecordsInFileOrder(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "manifest.jsonl")

	// Suffixes chosen out of lexical order on purpose.
	testsupport.WriteChunkFile(t, dir, "02",
		testsupport.NewChunk("second one", "t3", "c/3.wav"),
	)
	testsupport.WriteChunkFile(t, dir, "01",
		testsupport.NewChunk("first one", "t1", "c/1.wav"),
		testsupport.NewChunk("first two", "t2", "c/2.wav"),
	)
	testsupport.WriteChunkFile(t, dir, "03",
		testsupport.NewChunk("third one", "t4", "c/4.wav"),
	)

	runner := newTestRunner(t, defaultOptions(dir, out))
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if summary.FilesMatched != 3 || summary.FilesProcessed != 3 || summary.FilesFailed != 0 {
		t.Fatalf("unexpected file counts: %+v", summary)
	}
	if summary.RecordsWritten != 4 || summary.LinesSkipped != 0 {
		t.Fatalf("unexpected record counts: %+v", summary)
	}

	lines := testsupport.ReadLines(t, out)
	if len(lines) != 4 {
		t.Fatalf("expected 4 manifest lines, got %d", len(lines))
	}

	wantTexts := []string{"first one", "first two", "second one", "third one"}
	seen := map[string]bool{}
	for i, line := range lines {
		rec, err := manifest.DecodeRecord([]byte(line))
		if err != nil {
			t.Fatalf("line %d: %v", i+1, err)
		}
		if err := rec.Check(); err != nil {
			t.Fatalf("line %d failed check: %v", i+1, err)
		}
		if rec.Source.Text != wantTexts[i] {
			t.Errorf("line %d: got source text %q, want %q", i+1, rec.Source.Text, wantTexts[i])
		}
		if rec.Source.Lang != "eng" || rec.Target.Lang != "hin" || rec.Source.SamplingRate != 16000 {
			t.Errorf("line %d: wrong languages or rate: %+v", i+1, rec)
		}
		if seen[rec.Source.ID] {
			t.Errorf("line %d: duplicate id %s", i+1, rec.Source.ID)
		}
		seen[rec.Source.ID] = true
	}
}

func TestRunSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "manifest.jsonl")

	content := `{"sentence":"ok","translation":"t","audio":{"path":"a.wav"}}
not json at all
{"sentence":"no translation","audio":{"path":"b.wav"}}
{"sentence":"no audio","translation":"t"}

{"sentence":"also ok","translation":"t2","audio":{"path":"c.wav"}}
`
	testsupport.WriteRawChunkFile(t, dir, "00", content)

	runner := newTestRunner(t, defaultOptions(dir, out))
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if summary.RecordsWritten != 2 {
		t.Fatalf("records written = %d, want 2", summary.RecordsWritten)
	}
	if summary.LinesSkipped != 3 {
		t.Fatalf("lines skipped = %d, want 3", summary.LinesSkipped)
	}
	if summary.FilesProcessed != 1 || summary.FilesFailed != 0 {
		t.Fatalf("unexpected file counts: %+v", summary)
	}
}

func TestRunErrorsWhenNothingMatches(t *testing.T) {
	runner := newTestRunner(t, defaultOptions(t.TempDir(), filepath.Join(t.TempDir(), "m.jsonl")))
	_, err := runner.Run(context.Background())
	if !errors.Is(err, ErrNoInputFiles) {
		t.Fatalf("expected ErrNoInputFiles, got %v", err)
	}
}

func TestRunCountsUnreadableFileAsFailed(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "manifest.jsonl")

	testsupport.WriteChunkFile(t, dir, "01",
		testsupport.NewChunk("ok", "t", "a.wav"),
	)
	// A directory matching the glob opens fine but fails on read.
	if err := os.Mkdir(filepath.Join(dir, testsupport.ChunkFilePrefix+"02.jsonl"), 0o755); err != nil {
		t.Fatal(err)
	}

	runner := newTestRunner(t, defaultOptions(dir, out))
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if summary.FilesProcessed != 1 || summary.FilesFailed != 1 {
		t.Fatalf("unexpected file counts: %+v", summary)
	}
	if summary.RecordsWritten != 1 {
		t.Fatalf("records written = %d, want 1", summary.RecordsWritten)
	}
}

func TestRunRefusesLockedOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "manifest.jsonl")
	testsupport.WriteChunkFile(t, dir, "01", testsupport.NewChunk("x", "t", "a.wav"))

	holder := flock.New(out + ".lock")
	locked, err := holder.TryLock()
	if err != nil || !locked {
		t.Fatalf("pre-lock failed: locked=%v err=%v", locked, err)
	}
	defer func() { _ = holder.Unlock() }()

	runner := newTestRunner(t, defaultOptions(dir, out))
	_, err = runner.Run(context.Background())
	if !errors.Is(err, ErrOutputLocked) {
		t.Fatalf("expected ErrOutputLocked, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("manifest should not exist after refused run: %v", statErr)
	}
}

func TestRunSingleWorkerMatchesParallel(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		testsupport.WriteChunkFile(t, dir, string(rune('a'+i)),
			testsupport.NewChunk("s", "t", "a.wav"),
			testsupport.NewChunk("s2", "t2", "b.wav"),
		)
	}

	outSerial := filepath.Join(t.TempDir(), "serial.jsonl")
	optsSerial := defaultOptions(dir, outSerial)
	optsSerial.Workers = 1
	serial, err := newTestRunner(t, optsSerial).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	outParallel := filepath.Join(t.TempDir(), "parallel.jsonl")
	optsParallel := defaultOptions(dir, outParallel)
	optsParallel.Workers = 8
	parallel, err := newTestRunner(t, optsParallel).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if serial.RecordsWritten != parallel.RecordsWritten {
		t.Fatalf("record counts diverge: %d vs %d", serial.RecordsWritten, parallel.RecordsWritten)
	}

	serialLines := testsupport.ReadLines(t, outSerial)
	parallelLines := testsupport.ReadLines(t, outParallel)
	if len(serialLines) != len(parallelLines) {
		t.Fatalf("line counts diverge: %d vs %d", len(serialLines), len(parallelLines))
	}
	for i := range serialLines {
		s, err := manifest.DecodeRecord([]byte(serialLines[i]))
		if err != nil {
			t.Fatal(err)
		}
		p, err := manifest.DecodeRecord([]byte(parallelLines[i]))
		if err != nil {
			t.Fatal(err)
		}
		// IDs are random; everything else must line up.
		if s.Source.Text != p.Source.Text || s.Source.AudioLocalPath != p.Source.AudioLocalPath || s.Target.Text != p.Target.Text {
			t.Fatalf("line %d diverges between worker counts", i+1)
		}
	}
}

func TestOptionsNormalize(t *testing.T) {
	opts := Options{
		InputFolder:    "in",
		OutputManifest: "out.jsonl",
		SourceLang:     " ENG ",
		TargetLang:     "HIN",
		SamplingRate:   16000,
		Pattern:        "*.jsonl",
	}
	if err := opts.normalize(); err != nil {
		t.Fatal(err)
	}
	if opts.SourceLang != "eng" || opts.TargetLang != "hin" {
		t.Fatalf("languages not normalized: %+v", opts)
	}
	if opts.Workers <= 0 {
		t.Fatalf("workers not defaulted: %d", opts.Workers)
	}

	bad := opts
	bad.SamplingRate = 0
	if err := bad.normalize(); err == nil {
		t.Fatal("expected sampling rate error")
	}

	missing := opts
	missing.InputFolder = " "
	if err := missing.normalize(); err == nil {
		t.Fatal("expected input folder error")
	}
}
