package driven

import "context"

// ManifestSource reads the raw manifest record set.
// Backed by manifest.json in the export root.
type ManifestSource interface {
	// Read returns the manifest bytes.
	// Returns domain.ErrNotFound when no manifest exists; callers treat
	// that as an empty manifest. Any other failure wraps
	// domain.ErrManifestRead and is fatal.
	Read(ctx context.Context) ([]byte, error)
}

// ManifestWatcher notifies about manifest changes for watch mode.
type ManifestWatcher interface {
	// Watch emits an element per manifest change batch until the context
	// is cancelled. Both channels close on cancellation or fatal error.
	Watch(ctx context.Context) (<-chan struct{}, <-chan error, error)
}
