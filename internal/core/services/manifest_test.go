package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oberrich/paperless-export/internal/core/domain"
)

func TestParseManifest_Entities(t *testing.T) {
	manifest := []byte(`[
		{"model": "documents.tag", "pk": 1, "fields": {"name": "legal", "colour": 3}},
		{"model": "documents.tag", "pk": 2, "fields": {"name": "invoice"}},
		{"model": "documents.correspondent", "pk": 5, "fields": {"name": "Acme", "slug": "acme"}},
		{"model": "documents.document", "pk": 10,
			"__exported_file_name__": "a.pdf",
			"fields": {"created": "2021-06-01T00:00:00Z", "correspondent": 5, "tags": [2]}},
		{"model": "documents.document", "pk": 11,
			"__exported_file_name__": "b.pdf",
			"fields": {"created": "2022-01-01T00:00:00Z", "correspondent": null, "tags": [1]}}
	]`)

	archive, err := ParseManifest(manifest)
	require.NoError(t, err)

	assert.Len(t, archive.Tags, 2)
	assert.Len(t, archive.Correspondents, 1)
	require.Len(t, archive.Documents, 2)

	doc10 := archive.Documents[10]
	assert.Equal(t, "a.pdf", doc10.FileName)
	assert.Equal(t, "a.pdf", doc10.ArchiveName)
	assert.Equal(t, time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), doc10.Created)
	require.NotNil(t, doc10.Correspondent)
	assert.Equal(t, "Acme", doc10.Correspondent.Name)
	assert.Equal(t, []string{"invoice"}, doc10.TagNames())

	doc11 := archive.Documents[11]
	assert.Nil(t, doc11.Correspondent)
	assert.Equal(t, []string{"legal"}, doc11.TagNames())
}

func TestParseManifest_ArchiveNameFallback(t *testing.T) {
	t.Run("distinct archive copy", func(t *testing.T) {
		manifest := []byte(`[
			{"model": "documents.document", "pk": 1,
				"__exported_file_name__": "orig.jpg",
				"__exported_archive_name__": "archive/orig.pdf",
				"fields": {"created": "2020-01-01T00:00:00Z", "correspondent": null, "tags": []}}
		]`)

		archive, err := ParseManifest(manifest)
		require.NoError(t, err)

		doc := archive.Documents[1]
		assert.Equal(t, "orig.jpg", doc.FileName)
		assert.Equal(t, "archive/orig.pdf", doc.ArchiveName)
	})

	t.Run("defaults to file name", func(t *testing.T) {
		manifest := []byte(`[
			{"model": "documents.document", "pk": 1,
				"__exported_file_name__": "orig.pdf",
				"fields": {"created": "2020-01-01T00:00:00Z", "correspondent": null, "tags": []}}
		]`)

		archive, err := ParseManifest(manifest)
		require.NoError(t, err)

		assert.Equal(t, "orig.pdf", archive.Documents[1].ArchiveName)
	})
}

func TestParseManifest_UnknownModelsIgnored(t *testing.T) {
	manifest := []byte(`[
		{"model": "documents.savedview", "pk": 1, "fields": {"name": "recent"}},
		{"model": "paperless.uisettings", "pk": 2, "fields": {}}
	]`)

	archive, err := ParseManifest(manifest)
	require.NoError(t, err)

	assert.Empty(t, archive.Tags)
	assert.Empty(t, archive.Correspondents)
	assert.Empty(t, archive.Documents)
}

func TestParseManifest_DuplicatePKOverwrites(t *testing.T) {
	manifest := []byte(`[
		{"model": "documents.tag", "pk": 1, "fields": {"name": "first"}},
		{"model": "documents.tag", "pk": 1, "fields": {"name": "second"}}
	]`)

	archive, err := ParseManifest(manifest)
	require.NoError(t, err)

	require.Len(t, archive.Tags, 1)
	assert.Equal(t, "second", archive.Tags[1].Name)
}

func TestParseManifest_UnresolvedTagIsFatal(t *testing.T) {
	manifest := []byte(`[
		{"model": "documents.document", "pk": 1,
			"__exported_file_name__": "a.pdf",
			"fields": {"created": "2020-01-01T00:00:00Z", "correspondent": null, "tags": [99]}}
	]`)

	_, err := ParseManifest(manifest)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownTag)
}

func TestParseManifest_UnresolvedCorrespondentDegrades(t *testing.T) {
	// Orphaned correspondent ids are legitimate (soft-deleted upstream)
	// and degrade to "no correspondent" instead of failing.
	manifest := []byte(`[
		{"model": "documents.document", "pk": 1,
			"__exported_file_name__": "a.pdf",
			"fields": {"created": "2020-01-01T00:00:00Z", "correspondent": 42, "tags": []}}
	]`)

	archive, err := ParseManifest(manifest)
	require.NoError(t, err)

	assert.Nil(t, archive.Documents[1].Correspondent)
}

func TestParseManifest_ForwardReferencesOnly(t *testing.T) {
	// Tags listed after the documents that use them do not resolve.
	manifest := []byte(`[
		{"model": "documents.document", "pk": 1,
			"__exported_file_name__": "a.pdf",
			"fields": {"created": "2020-01-01T00:00:00Z", "correspondent": null, "tags": [7]}},
		{"model": "documents.tag", "pk": 7, "fields": {"name": "late"}}
	]`)

	_, err := ParseManifest(manifest)

	assert.ErrorIs(t, err, domain.ErrUnknownTag)
}

func TestParseManifest_FormatErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{name: "not an array", manifest: `{"model": "documents.tag"}`},
		{name: "invalid json", manifest: `[{`},
		{name: "missing model", manifest: `[{"pk": 1, "fields": {}}]`},
		{name: "missing pk", manifest: `[{"model": "documents.tag", "fields": {"name": "x"}}]`},
		{name: "tag without name", manifest: `[{"model": "documents.tag", "pk": 1, "fields": {"colour": 1}}]`},
		{name: "correspondent without name", manifest: `[{"model": "documents.correspondent", "pk": 1, "fields": {}}]`},
		{
			name: "document without created",
			manifest: `[{"model": "documents.document", "pk": 1, "__exported_file_name__": "a.pdf",
				"fields": {"correspondent": null, "tags": []}}]`,
		},
		{
			name: "document without correspondent",
			manifest: `[{"model": "documents.document", "pk": 1, "__exported_file_name__": "a.pdf",
				"fields": {"created": "2020-01-01T00:00:00Z", "tags": []}}]`,
		},
		{
			name: "document without tags",
			manifest: `[{"model": "documents.document", "pk": 1, "__exported_file_name__": "a.pdf",
				"fields": {"created": "2020-01-01T00:00:00Z", "correspondent": null}}]`,
		},
		{
			name: "document without exported file name",
			manifest: `[{"model": "documents.document", "pk": 1,
				"fields": {"created": "2020-01-01T00:00:00Z", "correspondent": null, "tags": []}}]`,
		},
		{
			name: "malformed timestamp",
			manifest: `[{"model": "documents.document", "pk": 1, "__exported_file_name__": "a.pdf",
				"fields": {"created": "yesterday", "correspondent": null, "tags": []}}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.manifest))

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrManifestFormat)
		})
	}
}

func TestParseManifest_TimezoneNormalisedToUTC(t *testing.T) {
	manifest := []byte(`[
		{"model": "documents.document", "pk": 1,
			"__exported_file_name__": "a.pdf",
			"fields": {"created": "2021-12-31T23:30:00-05:00", "correspondent": null, "tags": []}}
	]`)

	archive, err := ParseManifest(manifest)
	require.NoError(t, err)

	created := archive.Documents[1].Created
	assert.Equal(t, time.UTC, created.Location())
	// -05:00 offset pushes the date into the next year in UTC.
	assert.Equal(t, 2022, created.Year())
}

func TestParseManifest_EmptyInput(t *testing.T) {
	archive, err := ParseManifest([]byte(`[]`))

	require.NoError(t, err)
	assert.Empty(t, archive.Documents)
}
