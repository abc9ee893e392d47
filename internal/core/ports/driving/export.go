package driving

import (
	"context"

	"github.com/oberrich/paperless-export/internal/core/domain"
)

// Summary reports the outcome of one export run.
type Summary struct {
	// Copied is the number of documents copied.
	Copied int

	// Skipped is the number of documents excluded by the skip policy.
	Skipped int
}

// ExportService reorganizes a paperless export into the browsable layout.
type ExportService interface {
	// Plan parses the manifest and returns the ordered instruction list
	// without touching the filesystem.
	Plan(ctx context.Context) (*domain.ExportPlan, error)

	// Run plans and executes a full export: clears the destination
	// trees, applies every instruction, prints skip diagnostics and the
	// final summary line, and records the run in the history store when
	// one is configured.
	Run(ctx context.Context) (*Summary, error)
}
