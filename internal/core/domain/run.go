package domain

import "time"

// ExportRun records one completed export for the run history.
type ExportRun struct {
	// ID is the unique identifier for the run.
	ID string

	// Root is the export root directory the run operated on.
	Root string

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is when the run completed.
	FinishedAt time.Time

	// Copied is the number of documents copied.
	Copied int

	// Skipped is the number of documents excluded by the skip policy.
	Skipped int
}
