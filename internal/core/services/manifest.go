package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oberrich/paperless-export/internal/core/domain"
)

// Manifest model discriminators. Records with any other model are ignored.
const (
	modelTag           = "documents.tag"
	modelCorrespondent = "documents.correspondent"
	modelDocument      = "documents.document"
)

// manifestRecord is the untyped envelope of one manifest record.
// Pointer fields distinguish missing keys from zero values.
type manifestRecord struct {
	Model               *string         `json:"model"`
	PK                  *int64          `json:"pk"`
	Fields              json.RawMessage `json:"fields"`
	ExportedFileName    *string         `json:"__exported_file_name__"`
	ExportedArchiveName *string         `json:"__exported_archive_name__"`
}

// namedFields covers tag and correspondent records, which only need a name.
type namedFields struct {
	Name *string `json:"name"`
}

// documentFields covers document records. Correspondent stays raw so a
// present-but-null reference can be told apart from a missing key.
type documentFields struct {
	Created       *string         `json:"created"`
	Correspondent json.RawMessage `json:"correspondent"`
	Tags          *[]int64        `json:"tags"`
}

// ParseManifest decodes manifest bytes into entity tables.
//
// Records are interpreted in sequence: a document's tag and correspondent
// references resolve against the tables as they stand at that point, so
// the manifest must list tags and correspondents before the documents
// that use them. An unresolvable tag reference is fatal; an unresolvable
// correspondent reference degrades to "no correspondent". The asymmetry
// is deliberate: correspondents may be soft-deleted upstream, orphaned
// tag ids mean the manifest is corrupt.
func ParseManifest(data []byte) (*domain.Archive, error) {
	var records []manifestRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding record sequence: %w: %w", domain.ErrManifestFormat, err)
	}

	archive := domain.NewArchive()

	for i, record := range records {
		if record.Model == nil {
			return nil, fmt.Errorf("record %d: missing model: %w", i, domain.ErrManifestFormat)
		}
		if record.PK == nil {
			return nil, fmt.Errorf("record %d: missing pk: %w", i, domain.ErrManifestFormat)
		}

		switch *record.Model {
		case modelTag:
			name, err := parseName(record.Fields)
			if err != nil {
				return nil, fmt.Errorf("tag %d: %w", *record.PK, err)
			}
			archive.Tags[*record.PK] = domain.Tag{PK: *record.PK, Name: name}

		case modelCorrespondent:
			name, err := parseName(record.Fields)
			if err != nil {
				return nil, fmt.Errorf("correspondent %d: %w", *record.PK, err)
			}
			archive.Correspondents[*record.PK] = domain.Correspondent{PK: *record.PK, Name: name}

		case modelDocument:
			doc, err := parseDocument(record, archive)
			if err != nil {
				return nil, fmt.Errorf("document %d: %w", *record.PK, err)
			}
			archive.Documents[*record.PK] = doc

		default:
			// Unrecognized models (saved views, UI settings, ...) are skipped.
		}
	}

	return archive, nil
}

// parseName extracts the required name field of a tag or correspondent.
func parseName(fields json.RawMessage) (string, error) {
	var named namedFields
	if err := json.Unmarshal(fields, &named); err != nil {
		return "", fmt.Errorf("decoding fields: %w: %w", domain.ErrManifestFormat, err)
	}
	if named.Name == nil {
		return "", fmt.Errorf("missing name field: %w", domain.ErrManifestFormat)
	}
	return *named.Name, nil
}

// parseDocument decodes a document record and resolves its references
// against the tables parsed so far, snapshotting them by value.
func parseDocument(record manifestRecord, archive *domain.Archive) (domain.Document, error) {
	var doc domain.Document

	if record.ExportedFileName == nil {
		return doc, fmt.Errorf("missing exported file name: %w", domain.ErrManifestFormat)
	}

	var fields documentFields
	if err := json.Unmarshal(record.Fields, &fields); err != nil {
		return doc, fmt.Errorf("decoding fields: %w: %w", domain.ErrManifestFormat, err)
	}
	if fields.Created == nil {
		return doc, fmt.Errorf("missing created field: %w", domain.ErrManifestFormat)
	}
	if len(fields.Correspondent) == 0 {
		return doc, fmt.Errorf("missing correspondent field: %w", domain.ErrManifestFormat)
	}
	if fields.Tags == nil {
		return doc, fmt.Errorf("missing tags field: %w", domain.ErrManifestFormat)
	}

	created, err := time.Parse(time.RFC3339, *fields.Created)
	if err != nil {
		return doc, fmt.Errorf("invalid created timestamp %q: %w", *fields.Created, domain.ErrManifestFormat)
	}

	doc = domain.Document{
		PK:          *record.PK,
		FileName:    *record.ExportedFileName,
		ArchiveName: *record.ExportedFileName,
		Created:     created.UTC(),
	}
	// No distinct archive copy means the original upload is canonical.
	if record.ExportedArchiveName != nil {
		doc.ArchiveName = *record.ExportedArchiveName
	}

	if !bytes.Equal(fields.Correspondent, []byte("null")) {
		var correspondentPK int64
		if err := json.Unmarshal(fields.Correspondent, &correspondentPK); err != nil {
			return doc, fmt.Errorf("invalid correspondent reference: %w: %w", domain.ErrManifestFormat, err)
		}
		if c, ok := archive.Correspondents[correspondentPK]; ok {
			doc.Correspondent = &c
		}
	}

	for _, tagPK := range *fields.Tags {
		tag, ok := archive.Tags[tagPK]
		if !ok {
			return doc, fmt.Errorf("tag %d: %w", tagPK, domain.ErrUnknownTag)
		}
		doc.Tags = append(doc.Tags, tag)
	}

	return doc, nil
}
