package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleRecord(t *testing.T) Record {
	t.Helper()
	rec, err := NewRecord(Chunk{
		Sentence:    "hello",
		Translation: "hola",
		Audio:       AudioRef{Path: "clips/1.wav"},
	}, "eng", "spa", 16000)
	if err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.jsonl")

	w, err := NewWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := w.Write(sampleRecord(t)); err != nil {
			t.Fatal(err)
		}
	}
	if w.Count() != 3 {
		t.Fatalf("count = %d, want 3", w.Count())
	}
	if err := w.Commit(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		rec, err := DecodeRecord([]byte(line))
		if err != nil {
			t.Fatalf("line %d: %v", i+1, err)
		}
		if err := rec.Check(); err != nil {
			t.Fatalf("line %d failed check: %v", i+1, err)
		}
	}
}

func TestWriterAbortLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.jsonl")

	w, err := NewWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write(sampleRecord(t)); err != nil {
		t.Fatal(err)
	}
	w.Abort()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("manifest should not exist after abort: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("temp files left behind: %d entries", len(entries))
	}
}

func TestScanLinesSkipsBlank(t *testing.T) {
	input := "{\"a\":1}\n\n   \n{\"b\":2}\n"
	var lines []int
	err := ScanLines(strings.NewReader(input), func(line int, data []byte) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[0] != 1 || lines[1] != 4 {
		t.Fatalf("unexpected line numbers: %v", lines)
	}
}
