package driven

import (
	"context"

	"github.com/oberrich/paperless-export/internal/core/domain"
)

// HistoryStore persists completed export runs.
// Backed by SQLite. Optional: a nil store disables run recording.
type HistoryStore interface {
	// SaveRun stores a completed run.
	SaveRun(ctx context.Context, run *domain.ExportRun) error

	// ListRuns returns the most recent runs, newest first.
	// A limit of 0 returns all runs.
	ListRuns(ctx context.Context, limit int) ([]domain.ExportRun, error)
}
