// Package memory provides an in-memory export executor that records
// instructions instead of touching the filesystem. Used by service
// tests and anywhere a dry run is needed.
package memory

import (
	"context"
	"sync"

	"github.com/oberrich/paperless-export/internal/core/domain"
	"github.com/oberrich/paperless-export/internal/core/ports/driven"
)

// Ensure Executor implements the interface.
var _ driven.ExportExecutor = (*Executor)(nil)

// Executor records Clean and Apply calls in order.
type Executor struct {
	mu sync.Mutex

	// CleanErr, when set, is returned by Clean.
	CleanErr error

	// ApplyErr, when set, is returned by every Apply call.
	ApplyErr error

	cleaned bool
	applied []domain.Instruction
}

// New creates a new recording executor.
func New() *Executor {
	return &Executor{}
}

// Clean records that the destination trees were cleared.
func (e *Executor) Clean(_ context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.CleanErr != nil {
		return e.CleanErr
	}
	e.cleaned = true
	return nil
}

// Apply records the instruction.
func (e *Executor) Apply(_ context.Context, inst domain.Instruction) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ApplyErr != nil {
		return e.ApplyErr
	}
	e.applied = append(e.applied, inst)
	return nil
}

// Cleaned reports whether Clean was called.
func (e *Executor) Cleaned() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cleaned
}

// Applied returns the recorded instructions in application order.
func (e *Executor) Applied() []domain.Instruction {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Instruction, len(e.applied))
	copy(out, e.applied)
	return out
}
