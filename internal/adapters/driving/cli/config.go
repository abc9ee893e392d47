package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persisted export defaults",
	Long: `View and configure the export root, the exact-match skip tag set,
and the placeholder correspondent directory name. Command-line flags
override these per invocation.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configRootCmd = &cobra.Command{
	Use:   "root [path]",
	Short: "Set the default export root directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigRoot,
}

var configSkipTagsCmd = &cobra.Command{
	Use:   "skip-tags [tag]...",
	Short: "Set the exact-match skip tag set",
	Long: `Replaces the set of tag names that exclude a document on exact match.
Tags ending in "2" are always skipped regardless of this set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConfigSkipTags,
}

var configPlaceholderCmd = &cobra.Command{
	Use:   "placeholder [name]",
	Short: "Set the directory name for documents without a correspondent",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigPlaceholder,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configRootCmd)
	configCmd.AddCommand(configSkipTagsCmd)
	configCmd.AddCommand(configPlaceholderCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Printf("Export root:    %s\n", settings.Root)
	cmd.Printf("Skip tags:      %s\n", strings.Join(settings.SkipTags, ", "))
	cmd.Printf("Placeholder:    %s\n", settings.Placeholder)
	return nil
}

func runConfigRoot(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	settings.Root = args[0]
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Export root set to %s\n", settings.Root)
	return nil
}

func runConfigSkipTags(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	settings.SkipTags = args
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Skip tags set to %s\n", strings.Join(settings.SkipTags, ", "))
	return nil
}

func runConfigPlaceholder(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	settings.Placeholder = args[0]
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Placeholder correspondent set to %s\n", settings.Placeholder)
	return nil
}
