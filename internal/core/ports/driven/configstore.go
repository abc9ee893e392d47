package driven

// ConfigStore provides persistent application configuration.
// Backed by a TOML file in the paperless-export config directory.
type ConfigStore interface {
	// Get retrieves a raw value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, empty if unset.
	GetString(key string) string

	// GetStringSlice retrieves a string slice value, nil if unset.
	GetStringSlice(key string) []string

	// Set stores a value and persists it.
	Set(key string, value any) error

	// Delete removes a key and persists the change.
	Delete(key string) error

	// Keys returns all configured keys.
	Keys() []string
}
