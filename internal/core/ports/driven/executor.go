package driven

import (
	"context"

	"github.com/oberrich/paperless-export/internal/core/domain"
)

// ExportExecutor performs the filesystem side effects of a plan.
// The core emits instructions; all directory creation, copying, and
// linking happens behind this interface.
type ExportExecutor interface {
	// Clean recursively removes the four destination trees
	// (files, by_tag, by_year, by_correspondent) under the export root.
	// Missing trees are not an error.
	Clean(ctx context.Context) error

	// Apply executes a single instruction, creating the destination's
	// parent directories as needed. A failure wraps domain.ErrExecution
	// and aborts the run; nothing already written is rolled back.
	Apply(ctx context.Context, inst domain.Instruction) error
}
