package services

import (
	"github.com/oberrich/paperless-export/internal/core/domain"
	"github.com/oberrich/paperless-export/internal/core/ports/driven"
	"github.com/oberrich/paperless-export/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyExportRoot  = "export.root"
	keySkipTags    = "export.skip_tags"
	keyPlaceholder = "export.placeholder_correspondent"
)

// SettingsService manages the persisted export defaults.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings, falling back to defaults per value.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	if root := s.configStore.GetString(keyExportRoot); root != "" {
		settings.Root = root
	}
	if tags := s.configStore.GetStringSlice(keySkipTags); tags != nil {
		settings.SkipTags = tags
	}
	if placeholder := s.configStore.GetString(keyPlaceholder); placeholder != "" {
		settings.Placeholder = placeholder
	}

	return settings, nil
}

// Save persists the given settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}

	if err := s.configStore.Set(keyExportRoot, settings.Root); err != nil {
		return err
	}
	if err := s.configStore.Set(keySkipTags, settings.SkipTags); err != nil {
		return err
	}
	return s.configStore.Set(keyPlaceholder, settings.Placeholder)
}
