package domain

import "errors"

// Domain errors represent failures of the export pipeline.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity or file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Manifest Errors.

	// ErrManifestRead indicates the manifest exists but could not be read.
	// A missing manifest is not an error; it yields empty tables.
	ErrManifestRead = errors.New("manifest read failed")

	// ErrManifestFormat indicates a structurally invalid manifest record:
	// missing required key, wrong value type, or malformed timestamp.
	ErrManifestFormat = errors.New("malformed manifest")

	// ErrUnknownTag indicates a document references a tag primary key
	// absent from the tag table. Unlike a missing correspondent, which
	// degrades to "no correspondent", this aborts the run: an orphaned
	// tag id means manifest corruption.
	ErrUnknownTag = errors.New("unknown tag reference")

	// Execution Errors.

	// ErrExecution indicates a copy or link operation failed.
	// The run aborts immediately; already-written files are not rolled back.
	ErrExecution = errors.New("export execution failed")
)
