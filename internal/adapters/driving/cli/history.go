package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past export runs",
	RunE:  runHistory,
}

// historyLimit caps the number of runs listed.
var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of runs to list (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyStore == nil {
		return errors.New("history store not configured")
	}

	runs, err := historyStore.ListRuns(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No export runs recorded.")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %s\n", run.StartedAt.Format("2006-01-02 15:04:05"), run.Root)
		cmd.Printf("    copied %d, skipped %d, took %s\n",
			run.Copied, run.Skipped, run.FinishedAt.Sub(run.StartedAt).Round(10*time.Millisecond))
	}

	cmd.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}
