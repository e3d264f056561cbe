package testsupport

import (
	"path/filepath"
	"testing"

	"manifestprep/internal/config"
)

// NewConfig returns a validated config rooted in temporary directories.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	cfg.Ledger.Path = filepath.Join(dir, "ledger.db")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}
