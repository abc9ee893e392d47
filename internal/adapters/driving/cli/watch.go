package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oberrich/paperless-export/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-export whenever the manifest changes",
	Long: `Runs an export, then watches manifest.json and rebuilds the layout
after every change. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}
	if manifestWatcher == nil {
		return errors.New("manifest watcher not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := exportService.Run(ctx); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	changes, errs, err := manifestWatcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watching manifest: %w", err)
	}

	cmd.Println("watching for manifest changes (Ctrl-C to stop)...")

	for {
		select {
		case <-ctx.Done():
			cmd.Println("stopped.")
			return nil

		case _, ok := <-changes:
			if !ok {
				return nil
			}
			cmd.Println("manifest changed, re-exporting...")
			if _, err := exportService.Run(ctx); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			// Watch errors are transient (e.g. inotify queue overflow);
			// keep watching.
			logger.Warn("watch: %v", err)
		}
	}
}
