package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oberrich/paperless-export/internal/adapters/driven/config/memory"
	"github.com/oberrich/paperless-export/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)

	defaults := domain.DefaultSettings()
	assert.Equal(t, defaults.Root, settings.Root)
	assert.Equal(t, defaults.SkipTags, settings.SkipTags)
	assert.Equal(t, defaults.Placeholder, settings.Placeholder)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("export.root", "/srv/paperless/export")
	_ = store.Set("export.skip_tags", []string{"draft"})
	_ = store.Set("export.placeholder_correspondent", "unfiled")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "/srv/paperless/export", settings.Root)
	assert.Equal(t, []string{"draft"}, settings.SkipTags)
	assert.Equal(t, "unfiled", settings.Placeholder)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	err := service.Save(&domain.Settings{
		Root:        "/data/export",
		SkipTags:    []string{"fine", "legal"},
		Placeholder: "nobody",
	})
	require.NoError(t, err)

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "/data/export", settings.Root)
	assert.Equal(t, []string{"fine", "legal"}, settings.SkipTags)
	assert.Equal(t, "nobody", settings.Placeholder)
}

func TestSettingsService_Save_NilSettings(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.Save(nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
