// Package memory provides an in-memory run history store for testing.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/oberrich/paperless-export/internal/core/domain"
	"github.com/oberrich/paperless-export/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.HistoryStore = (*Store)(nil)

// Store is an in-memory implementation of driven.HistoryStore.
type Store struct {
	mu   sync.RWMutex
	runs []domain.ExportRun

	// SaveErr, when set, is returned by SaveRun.
	SaveErr error
}

// NewStore creates a new in-memory history store.
func NewStore() *Store {
	return &Store{}
}

// SaveRun stores a completed run.
func (s *Store) SaveRun(_ context.Context, run *domain.ExportRun) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if run == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, *run)
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(_ context.Context, limit int) ([]domain.ExportRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]domain.ExportRun, len(s.runs))
	copy(runs, s.runs)
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}
