package main

import (
	"strings"
	"testing"
)

func TestValidateAcceptsGoodManifest(t *testing.T) {
	path := writeManifestFile(t,
		manifestLine("a1", "ek", "hin", "one", "eng", "clips/a.wav"),
		manifestLine("a2", "do", "hin", "two", "eng", "clips/b.wav"),
	)

	out, err := runCLI(t, "--config", writeTestConfig(t), "validate", path)
	if err != nil {
		t.Fatalf("validate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Manifest valid: 2 records") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestValidateReportsInvalidLines(t *testing.T) {
	path := writeManifestFile(t,
		manifestLine("a1", "ek", "hin", "one", "eng", "clips/a.wav"),
		"not json",
		manifestLine("a1", "do", "hin", "two", "eng", "clips/b.wav"),
		`{"source":{"id":"a3","text":"x","lang":"hin","audio_local_path":"","sampling_rate":16000},"target":{"id":"a3","text":"y","lang":"eng"}}`,
	)

	out, err := runCLI(t, "--config", writeTestConfig(t), "validate", path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "3 invalid lines") {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "line 2:") {
		t.Errorf("expected malformed line report:\n%s", out)
	}
	if !strings.Contains(out, "already used on line 1") {
		t.Errorf("expected duplicate id report:\n%s", out)
	}
}
