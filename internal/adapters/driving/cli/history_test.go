package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oberrich/paperless-export/internal/core/domain"
)

func TestHistoryCmd_Empty(t *testing.T) {
	env := injectTestServices(t, nil)
	rootCmd.SetArgs([]string{"history"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, env.out.String(), "No export runs recorded.")
}

func TestHistoryCmd_ListsRuns(t *testing.T) {
	env := injectTestServices(t, nil)

	started := time.Date(2026, 8, 30, 9, 15, 0, 0, time.UTC)
	require.NoError(t, env.history.SaveRun(context.Background(), &domain.ExportRun{
		ID:         "run-1",
		Root:       "/srv/export",
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Second),
		Copied:     7,
		Skipped:    2,
	}))

	rootCmd.SetArgs([]string{"history"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := env.out.String()
	assert.Contains(t, output, "2026-08-30 09:15:00")
	assert.Contains(t, output, "/srv/export")
	assert.Contains(t, output, "copied 7, skipped 2")
	assert.Contains(t, output, "Total: 1 runs")
}

func TestHistoryCmd_RecordsExportRuns(t *testing.T) {
	env := injectTestServices(t, scenarioManifest)
	rootCmd.SetArgs([]string{"export"})
	require.NoError(t, rootCmd.Execute())

	runs, err := env.history.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 1, runs[0].Copied)
	assert.Equal(t, 1, runs[0].Skipped)
}
