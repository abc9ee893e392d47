// Package domain defines the core entities of a paperless export.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Tag: A label attached to documents
//   - Correspondent: The party a document relates to
//   - Document: One archived document with its resolved references
//   - Archive: The parsed entity tables of one manifest
//   - Instruction / ExportPlan: The planned filesystem layout
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
