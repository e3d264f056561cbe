package manifest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Transcript chunks can carry long sentences; allow generous line sizes before
// giving up on a file.
const maxLineBytes = 8 << 20

// ScanLines invokes fn for every non-blank line of r with a 1-based line
// number. Blank lines are skipped without callback.
func ScanLines(r io.Reader, fn func(line int, data []byte) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(strings.TrimSpace(string(data))) == 0 {
			continue
		}
		if err := fn(line, data); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan line %d: %w", line+1, err)
	}
	return nil
}

// DecodeChunk parses one input line.
func DecodeChunk(data []byte) (Chunk, error) {
	var chunk Chunk
	if err := json.Unmarshal(data, &chunk); err != nil {
		return Chunk{}, fmt.Errorf("decode chunk: %w", err)
	}
	return chunk, nil
}

// DecodeRecord parses one manifest line.
func DecodeRecord(data []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
