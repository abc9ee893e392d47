package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Rebuild the browsable export layout",
	Long: `Parses the manifest, clears the view trees, copies each included
document under files/, and links the by_year, by_correspondent, and
by_tag views at the canonical copies.

Documents tagged "fine", "legal", or "private" (configurable), or with
any tag ending in "2", are skipped with a diagnostic.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}

	if _, err := exportService.Run(context.Background()); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return nil
}
