package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"manifestprep/internal/manifest"
	"manifestprep/internal/testsupport"
)

func TestPrepareWritesManifestAndRecordsRun(t *testing.T) {
	cfgPath := writeTestConfig(t)
	inputDir := t.TempDir()
	outputPath := filepath.Join(t.TempDir(), "manifest.jsonl")

	testsupport.WriteChunkFile(t, inputDir, "0001",
		testsupport.NewChunk("namaste", "hello", "clips/0001.wav"),
		testsupport.NewChunk("dhanyavaad", "thank you", "clips/0002.wav"),
	)

	out, err := runCLI(t,
		"--config", cfgPath,
		"prepare",
		"--input-folder", inputDir,
		"--output-manifest", outputPath,
		"--source-lang", "hin",
		"--target-lang", "eng",
	)
	if err != nil {
		t.Fatalf("prepare failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Saved 2 records to "+outputPath) {
		t.Errorf("unexpected output: %s", out)
	}

	lines := testsupport.ReadLines(t, outputPath)
	if len(lines) != 2 {
		t.Fatalf("expected 2 manifest lines, got %d", len(lines))
	}
	var rec manifest.Record
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("decode manifest line: %v", err)
	}
	if rec.Source.Lang != "hin" || rec.Target.Lang != "eng" {
		t.Errorf("unexpected languages: %s -> %s", rec.Source.Lang, rec.Target.Lang)
	}
	if rec.Source.Text != "namaste" || rec.Target.Text != "hello" {
		t.Errorf("unexpected texts: %q / %q", rec.Source.Text, rec.Target.Text)
	}
	if rec.Source.SamplingRate != 16000 {
		t.Errorf("expected default sampling rate, got %d", rec.Source.SamplingRate)
	}

	runsOut, err := runCLI(t, "--config", cfgPath, "runs")
	if err != nil {
		t.Fatalf("runs failed: %v", err)
	}
	if !strings.Contains(runsOut, "completed") {
		t.Errorf("expected a completed run in ledger output:\n%s", runsOut)
	}
}

func TestPrepareReportsSkippedLines(t *testing.T) {
	cfgPath := writeTestConfig(t)
	inputDir := t.TempDir()
	outputPath := filepath.Join(t.TempDir(), "manifest.jsonl")

	content := `{"sentence":"ok","translation":"fine","audio":{"path":"a.wav"}}
not json at all
{"sentence":"missing translation","audio":{"path":"b.wav"}}
`
	testsupport.WriteRawChunkFile(t, inputDir, "0001", content)

	out, err := runCLI(t,
		"--config", cfgPath,
		"prepare",
		"--input-folder", inputDir,
		"--output-manifest", outputPath,
	)
	if err != nil {
		t.Fatalf("prepare failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Saved 1 records") {
		t.Errorf("unexpected output: %s", out)
	}
	if !strings.Contains(out, "Skipped malformed lines: 2") {
		t.Errorf("expected skip summary in output: %s", out)
	}
}

func TestPrepareFailsWithoutInputFiles(t *testing.T) {
	cfgPath := writeTestConfig(t)

	_, err := runCLI(t,
		"--config", cfgPath,
		"prepare",
		"--input-folder", t.TempDir(),
		"--output-manifest", filepath.Join(t.TempDir(), "manifest.jsonl"),
	)
	if err == nil {
		t.Fatal("expected error for empty input folder")
	}

	runsOut, err := runCLI(t, "--config", cfgPath, "runs")
	if err != nil {
		t.Fatalf("runs failed: %v", err)
	}
	if !strings.Contains(runsOut, "failed") {
		t.Errorf("expected a failed run in ledger output:\n%s", runsOut)
	}
}

func TestPrepareRequiresFlags(t *testing.T) {
	_, err := runCLI(t, "--config", writeTestConfig(t), "prepare")
	if err == nil {
		t.Fatal("expected error when required flags are missing")
	}
}
