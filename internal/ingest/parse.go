package ingest

import (
	"fmt"
	"log/slog"
	"os"

	"manifestprep/internal/logging"
	"manifestprep/internal/manifest"
)

// parseFile converts one chunk file into manifest records. Malformed lines are
// logged and counted, never fatal; only open/read failures fail the file.
func parseFile(path string, opts Options, logger *slog.Logger) ([]manifest.Record, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var records []manifest.Record
	skipped := 0

	scanErr := manifest.ScanLines(file, func(line int, data []byte) error {
		chunk, err := manifest.DecodeChunk(data)
		if err == nil {
			var rec manifest.Record
			if rec, err = manifest.NewRecord(chunk, opts.SourceLang, opts.TargetLang, opts.SamplingRate); err == nil {
				records = append(records, rec)
				return nil
			}
		}
		skipped++
		logger.Warn("skipping malformed line",
			logging.String("file", path),
			logging.Int("line", line),
			logging.Error(err),
		)
		return nil
	})
	if scanErr != nil {
		return nil, skipped, fmt.Errorf("read %s: %w", path, scanErr)
	}
	return records, skipped, nil
}
