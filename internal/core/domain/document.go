package domain

import (
	"strings"
	"time"
)

// Tag is a label attached to documents in the manifest.
// Immutable once parsed.
type Tag struct {
	// PK is the manifest primary key.
	PK int64

	// Name is the human-readable tag name.
	Name string
}

// Correspondent is the party a document was received from or sent to.
// Immutable once parsed.
type Correspondent struct {
	// PK is the manifest primary key.
	PK int64

	// Name is the correspondent's display name.
	Name string
}

// Document is one archived document after reference resolution.
// Tag and correspondent references are value snapshots taken at parse
// time, independent of any later table mutation.
type Document struct {
	// PK is the manifest primary key.
	PK int64

	// FileName is the export-relative path of the original upload.
	FileName string

	// ArchiveName is the export-relative path of the canonical stored
	// copy. Defaults to FileName when the manifest carries no distinct
	// archive copy.
	ArchiveName string

	// Created is the document's creation timestamp in UTC.
	Created time.Time

	// Correspondent is nil when the document has none or the manifest
	// reference did not resolve.
	Correspondent *Correspondent

	// Tags holds the resolved tags in manifest order.
	Tags []Tag
}

// TagNames returns the document's tag names in manifest order.
func (d Document) TagNames() []string {
	names := make([]string, len(d.Tags))
	for i, t := range d.Tags {
		names[i] = t.Name
	}
	return names
}

// TagList returns the tag names joined for diagnostics, e.g. "legal, tax".
func (d Document) TagList() string {
	return strings.Join(d.TagNames(), ", ")
}

// Archive holds the entity tables parsed from one manifest.
// The manifest parser owns and populates all three tables; downstream
// components only read from them.
type Archive struct {
	Tags           map[int64]Tag
	Correspondents map[int64]Correspondent
	Documents      map[int64]Document
}

// NewArchive returns an Archive with empty tables.
func NewArchive() *Archive {
	return &Archive{
		Tags:           make(map[int64]Tag),
		Correspondents: make(map[int64]Correspondent),
		Documents:      make(map[int64]Document),
	}
}
