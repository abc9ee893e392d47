// Package cli implements the paperless-export command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/oberrich/paperless-export/internal/adapters/driven/config/file"
	executorfs "github.com/oberrich/paperless-export/internal/adapters/driven/executor/filesystem"
	historysqlite "github.com/oberrich/paperless-export/internal/adapters/driven/history/sqlite"
	manifestfile "github.com/oberrich/paperless-export/internal/adapters/driven/manifest/file"
	"github.com/oberrich/paperless-export/internal/core/domain"
	"github.com/oberrich/paperless-export/internal/core/ports/driven"
	"github.com/oberrich/paperless-export/internal/core/ports/driving"
	"github.com/oberrich/paperless-export/internal/core/services"
	"github.com/oberrich/paperless-export/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired by initServices. Tests inject their own and reset.
var (
	exportService   driving.ExportService
	settingsService driving.SettingsService
	historyStore    driven.HistoryStore
	manifestWatcher driven.ManifestWatcher
)

// Persistent flags.
var (
	verboseFlag bool
	rootFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "paperless-export",
	Short: "Reorganize a paperless-ngx export into a browsable layout",
	Long: `paperless-export reads the manifest of a paperless-ngx document export
and rebuilds the export directory as a browsable tree: one canonical copy
per document under files/, plus views grouped by year, correspondent, and
tag as symbolic links to the canonical copies.

The view trees (files/, by_year/, by_correspondent/, by_tag/) are cleared
and rebuilt on every run.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVarP(&rootFlag, "root", "r", "", "Export root directory (default from config, else current directory)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices builds the adapters and services from flags and config.
// A preset export service (from tests) is left untouched.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if exportService != nil {
		return nil
	}

	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	settingsService = services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	root := rootFlag
	if root == "" {
		root = settings.Root
	}
	logger.Debug("export root: %s", root)

	// Run recording is best effort; without a usable history store the
	// export still works.
	if store, err := historysqlite.NewStore(""); err != nil {
		logger.Warn("opening history store: %v", err)
	} else {
		historyStore = store
	}

	source := manifestfile.New(root)
	manifestWatcher = source

	exportService = services.NewExportService(
		source,
		executorfs.New(root),
		historyStore,
		domain.SkipPolicy{ExactMatch: settings.SkipTags},
		services.NewPlanner(settings.Placeholder),
		root,
		cmd.OutOrStdout(),
	)
	return nil
}
