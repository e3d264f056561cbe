package ingest

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"
)

var (
	// ErrNoInputFiles signals that the glob pattern matched nothing.
	ErrNoInputFiles = errors.New("no input files matched")
	// ErrOutputLocked signals a concurrent prepare against the same manifest.
	ErrOutputLocked = errors.New("output manifest locked by another run")
)

// Options are the parameters of one prepare run.
type Options struct {
	InputFolder    string
	OutputManifest string
	SourceLang     string
	TargetLang     string
	SamplingRate   int
	Pattern        string
	Workers        int
}

func (o *Options) normalize() error {
	o.InputFolder = strings.TrimSpace(o.InputFolder)
	if o.InputFolder == "" {
		return errors.New("input folder is required")
	}
	o.OutputManifest = strings.TrimSpace(o.OutputManifest)
	if o.OutputManifest == "" {
		return errors.New("output manifest path is required")
	}
	o.SourceLang = strings.ToLower(strings.TrimSpace(o.SourceLang))
	o.TargetLang = strings.ToLower(strings.TrimSpace(o.TargetLang))
	if o.SourceLang == "" || o.TargetLang == "" {
		return errors.New("source and target language codes are required")
	}
	if o.SamplingRate <= 0 {
		return fmt.Errorf("sampling rate must be positive, got %d", o.SamplingRate)
	}
	o.Pattern = strings.TrimSpace(o.Pattern)
	if o.Pattern == "" {
		return errors.New("file pattern is required")
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	return nil
}

// Summary reports what a prepare run did.
type Summary struct {
	ManifestPath   string
	FilesMatched   int
	FilesProcessed int
	FilesFailed    int
	RecordsWritten int64
	LinesSkipped   int
	Duration       time.Duration
}
