package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ChunkFilePrefix matches the default prepare glob pattern.
const ChunkFilePrefix = "combined_transcripts_audio_chunks_"

// Chunk mirrors the input line shape without importing the manifest package.
type Chunk struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation"`
	Audio       struct {
		Path string `json:"path"`
	} `json:"audio"`
}

// NewChunk builds a well-formed chunk.
func NewChunk(sentence, translation, audioPath string) Chunk {
	c := Chunk{Sentence: sentence, Translation: translation}
	c.Audio.Path = audioPath
	return c
}

// WriteChunkFile writes chunks as a JSONL file named with the default prefix
// and returns its path.
func WriteChunkFile(t *testing.T, dir, suffix string, chunks ...Chunk) string {
	t.Helper()

	var b strings.Builder
	for _, chunk := range chunks {
		data, err := json.Marshal(chunk)
		if err != nil {
			t.Fatalf("marshal chunk: %v", err)
		}
		b.Write(data)
		b.WriteByte('\n')
	}
	return WriteRawChunkFile(t, dir, suffix, b.String())
}

// WriteRawChunkFile writes arbitrary content under the default chunk-file
// naming scheme, for malformed-input tests.
func WriteRawChunkFile(t *testing.T, dir, suffix, content string) string {
	t.Helper()

	path := filepath.Join(dir, ChunkFilePrefix+suffix+".jsonl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write chunk file: %v", err)
	}
	return path
}

// ReadLines returns the non-empty lines of a file.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
