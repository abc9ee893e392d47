// Package memory provides an in-memory manifest source for testing.
package memory

import (
	"context"

	"github.com/oberrich/paperless-export/internal/core/domain"
	"github.com/oberrich/paperless-export/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ManifestSource = (*Source)(nil)

// Source serves fixed manifest bytes.
type Source struct {
	// Data is returned by Read. Nil data without Err means "no manifest".
	Data []byte

	// Err, when set, is returned by Read instead.
	Err error
}

// New creates a source serving the given manifest bytes.
func New(data []byte) *Source {
	return &Source{Data: data}
}

// Missing creates a source behaving like an absent manifest file.
func Missing() *Source {
	return &Source{}
}

// Read returns the configured bytes or error.
func (s *Source) Read(_ context.Context) ([]byte, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Data == nil {
		return nil, domain.ErrNotFound
	}
	return s.Data, nil
}
