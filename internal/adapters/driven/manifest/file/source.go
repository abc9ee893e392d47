// Package file reads the manifest from the export root and watches it
// for changes.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oberrich/paperless-export/internal/core/domain"
	"github.com/oberrich/paperless-export/internal/core/ports/driven"
	"github.com/oberrich/paperless-export/internal/logger"
)

// ManifestName is the manifest file name inside the export root.
const ManifestName = "manifest.json"

// Ensure Source implements the interfaces.
var (
	_ driven.ManifestSource  = (*Source)(nil)
	_ driven.ManifestWatcher = (*Source)(nil)
)

// Source reads manifest.json from an export root directory.
type Source struct {
	root string
}

// New creates a manifest source for the given export root.
func New(root string) *Source {
	return &Source{root: root}
}

// Path returns the absolute manifest path.
func (s *Source) Path() string {
	return filepath.Join(s.root, ManifestName)
}

// Read returns the manifest bytes. A missing file yields
// domain.ErrNotFound, which callers treat as an empty manifest; any
// other failure is a fatal read error.
func (s *Source) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path())
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", s.Path(), domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", s.Path(), domain.ErrManifestRead, err)
	}
	logger.Debug("read %d manifest bytes from %s", len(data), s.Path())
	return data, nil
}
