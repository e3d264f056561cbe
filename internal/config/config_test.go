package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if cfg.Defaults.SourceLang != "eng" || cfg.Defaults.TargetLang != "eng" {
		t.Fatalf("unexpected language defaults: %q -> %q", cfg.Defaults.SourceLang, cfg.Defaults.TargetLang)
	}
	if cfg.Defaults.SamplingRate != 16000 {
		t.Fatalf("unexpected sampling rate default: %d", cfg.Defaults.SamplingRate)
	}
	if cfg.Defaults.Pattern != "combined_transcripts_audio_chunks_*.jsonl" {
		t.Fatalf("unexpected pattern default: %q", cfg.Defaults.Pattern)
	}
	if !cfg.Ledger.Enabled {
		t.Fatal("ledger should default to enabled")
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
log_dir = "` + filepath.Join(dir, "logs") + `"

[defaults]
source_lang = " HIN "
target_lang = "ENG"
sampling_rate = 8000
workers = 4

[ledger]
enabled = false

[logging]
format = "JSON"
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Defaults.SourceLang != "hin" {
		t.Fatalf("source lang not normalized: %q", cfg.Defaults.SourceLang)
	}
	if cfg.Defaults.TargetLang != "eng" {
		t.Fatalf("target lang not normalized: %q", cfg.Defaults.TargetLang)
	}
	if cfg.Defaults.SamplingRate != 8000 || cfg.Defaults.Workers != 4 {
		t.Fatalf("defaults not applied: %+v", cfg.Defaults)
	}
	if cfg.Ledger.Enabled {
		t.Fatal("ledger should be disabled")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "negative sampling rate",
			content: "[defaults]\nsampling_rate = -1\n",
			want:    "sampling_rate",
		},
		{
			name:    "negative workers",
			content: "[defaults]\nworkers = -2\n",
			want:    "workers",
		},
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"xml\"\n",
			want:    "logging.format",
		},
		{
			name:    "bad log level",
			content: "[logging]\nlevel = \"verbose\"\n",
			want:    "logging.level",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("sample config missing after CreateSample")
	}
	if cfg.Defaults.SamplingRate != 16000 {
		t.Fatalf("sample config drifted from defaults: %+v", cfg.Defaults)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/data")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "data") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
