package ledger

import "time"

// Status is the terminal state of a recorded run.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run is one prepare invocation as recorded in the ledger.
type Run struct {
	ID             int64
	StartedAt      time.Time
	FinishedAt     time.Time
	InputFolder    string
	OutputManifest string
	SourceLang     string
	TargetLang     string
	SamplingRate   int
	FilesMatched   int
	FilesProcessed int
	FilesFailed    int
	RecordsWritten int64
	LinesSkipped   int
	Status         Status
	ErrorMessage   string
}

// Duration returns the wall-clock time the run took.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
