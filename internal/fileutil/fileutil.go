package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicFile accumulates writes in a temporary file that replaces the target
// path only when Commit succeeds. Abort (or a missed Commit) leaves the target
// untouched.
type AtomicFile struct {
	target string
	tmp    *os.File
	done   bool
}

// NewAtomicFile creates a temporary file next to target ready for writing.
func NewAtomicFile(target string) (*AtomicFile, error) {
	dir := filepath.Dir(target)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(target)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	return &AtomicFile{target: target, tmp: tmp}, nil
}

func (a *AtomicFile) Write(p []byte) (int, error) {
	return a.tmp.Write(p)
}

// Commit flushes the temporary file and renames it over the target path.
func (a *AtomicFile) Commit() error {
	if a.done {
		return nil
	}
	a.done = true

	if err := a.tmp.Sync(); err != nil {
		_ = a.tmp.Close()
		_ = os.Remove(a.tmp.Name())
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := a.tmp.Close(); err != nil {
		_ = os.Remove(a.tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(a.tmp.Name(), 0o644); err != nil {
		_ = os.Remove(a.tmp.Name())
		return fmt.Errorf("set temp file mode: %w", err)
	}
	if err := os.Rename(a.tmp.Name(), a.target); err != nil {
		_ = os.Remove(a.tmp.Name())
		return fmt.Errorf("replace %q: %w", a.target, err)
	}
	return nil
}

// Abort discards the temporary file. Safe to call after Commit.
func (a *AtomicFile) Abort() {
	if a.done {
		return
	}
	a.done = true
	_ = a.tmp.Close()
	_ = os.Remove(a.tmp.Name())
}

// WriteFileAtomic writes data to path through a temporary file and rename.
func WriteFileAtomic(path string, data []byte) error {
	af, err := NewAtomicFile(path)
	if err != nil {
		return err
	}
	if _, err := af.Write(data); err != nil {
		af.Abort()
		return err
	}
	return af.Commit()
}
