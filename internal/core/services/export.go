package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/oberrich/paperless-export/internal/core/domain"
	"github.com/oberrich/paperless-export/internal/core/ports/driven"
	"github.com/oberrich/paperless-export/internal/core/ports/driving"
	"github.com/oberrich/paperless-export/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService reorganizes one paperless export directory.
// It parses the manifest, applies the skip policy, plans the layout,
// and drives the executor.
type ExportService struct {
	manifest driven.ManifestSource
	executor driven.ExportExecutor
	history  driven.HistoryStore
	policy   domain.SkipPolicy
	planner  Planner
	root     string
	out      io.Writer
}

// NewExportService creates a new export service. The history store may
// be nil, in which case runs are not recorded. Skip diagnostics and the
// summary line are written to out.
func NewExportService(
	manifest driven.ManifestSource,
	executor driven.ExportExecutor,
	history driven.HistoryStore,
	policy domain.SkipPolicy,
	planner Planner,
	root string,
	out io.Writer,
) *ExportService {
	return &ExportService{
		manifest: manifest,
		executor: executor,
		history:  history,
		policy:   policy,
		planner:  planner,
		root:     root,
		out:      out,
	}
}

// Plan parses the manifest and builds the instruction list without any
// filesystem effect. A missing manifest yields an empty plan.
func (s *ExportService) Plan(ctx context.Context) (*domain.ExportPlan, error) {
	archive, err := s.loadArchive(ctx)
	if err != nil {
		return nil, err
	}
	return s.planner.BuildPlan(archive, s.policy), nil
}

// Run executes a full export. Planning completes before the first
// filesystem mutation, so a manifest or reference error aborts with the
// destination trees untouched.
func (s *ExportService) Run(ctx context.Context) (*driving.Summary, error) {
	started := time.Now().UTC()

	plan, err := s.Plan(ctx)
	if err != nil {
		return nil, err
	}

	for _, skip := range plan.Skips {
		fmt.Fprintf(s.out, "skipping %s (%s)\n", skip.ArchiveName, skip.TagList)
	}

	if err := s.executor.Clean(ctx); err != nil {
		return nil, fmt.Errorf("clearing destination trees: %w", err)
	}

	for _, inst := range plan.Instructions {
		if err := s.executor.Apply(ctx, inst); err != nil {
			return nil, fmt.Errorf("applying %s %s: %w", inst.Op, inst.Dest, err)
		}
	}

	fmt.Fprintf(s.out, "copied %d files, %d were skipped.\n", plan.Copied, len(plan.Skips))

	summary := &driving.Summary{Copied: plan.Copied, Skipped: len(plan.Skips)}
	s.recordRun(ctx, started, summary)

	return summary, nil
}

// loadArchive reads and parses the manifest. Absence of a manifest is
// the expected state for a fresh export directory and yields empty
// tables; any other read failure is fatal.
func (s *ExportService) loadArchive(ctx context.Context) (*domain.Archive, error) {
	data, err := s.manifest.Read(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Debug("no manifest found, proceeding with empty tables")
		return domain.NewArchive(), nil
	}
	if err != nil {
		return nil, err
	}

	archive, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	logger.Debug("parsed manifest: %d tags, %d correspondents, %d documents",
		len(archive.Tags), len(archive.Correspondents), len(archive.Documents))
	return archive, nil
}

// recordRun stores the run in the history store. Recording is best
// effort and never fails the export.
func (s *ExportService) recordRun(ctx context.Context, started time.Time, summary *driving.Summary) {
	if s.history == nil {
		return
	}

	run := &domain.ExportRun{
		ID:         uuid.New().String(),
		Root:       s.root,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
		Copied:     summary.Copied,
		Skipped:    summary.Skipped,
	}
	if err := s.history.SaveRun(ctx, run); err != nil {
		logger.Warn("recording run: %v", err)
	}
}
