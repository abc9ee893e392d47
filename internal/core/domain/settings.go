package domain

// Settings holds the persisted defaults for export runs.
// Command-line flags override them per invocation.
type Settings struct {
	// Root is the export root directory holding manifest.json and the
	// archived files.
	Root string

	// SkipTags is the exact-match tag exclusion set.
	SkipTags []string

	// Placeholder is the by_correspondent directory name for documents
	// without a resolved correspondent.
	Placeholder string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{
		Root:        ".",
		SkipTags:    DefaultSkipTags(),
		Placeholder: PlaceholderCorrespondent,
	}
}
