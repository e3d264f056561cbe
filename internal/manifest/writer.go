package manifest

import (
	"bufio"
	"encoding/json"
	"fmt"

	"manifestprep/internal/fileutil"
)

// Writer streams manifest records as JSON Lines into an atomically replaced
// file. Nothing appears at the target path until Commit.
type Writer struct {
	af    *fileutil.AtomicFile
	buf   *bufio.Writer
	enc   *json.Encoder
	count int64
}

// NewWriter prepares a manifest writer for the given output path.
func NewWriter(path string) (*Writer, error) {
	af, err := fileutil.NewAtomicFile(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	buf := bufio.NewWriterSize(af, 256*1024)
	return &Writer{af: af, buf: buf, enc: json.NewEncoder(buf)}, nil
}

// Write appends one record as a JSON line.
func (w *Writer) Write(rec Record) error {
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	w.count++
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int64 {
	return w.count
}

// Commit flushes buffered records and moves the manifest into place.
func (w *Writer) Commit() error {
	if err := w.buf.Flush(); err != nil {
		w.af.Abort()
		return fmt.Errorf("flush manifest: %w", err)
	}
	return w.af.Commit()
}

// Abort discards everything written. Safe to call after Commit.
func (w *Writer) Abort() {
	w.af.Abort()
}
