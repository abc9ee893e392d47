package driving

import "github.com/oberrich/paperless-export/internal/core/domain"

// SettingsService manages the persisted export defaults.
type SettingsService interface {
	// Get retrieves the current settings, applying defaults for any
	// unset value.
	Get() (*domain.Settings, error)

	// Save persists the given settings.
	Save(settings *domain.Settings) error
}
