package domain

// Destination tree names under the export root. These trees are
// recursively cleared before every run.
const (
	TreeFiles           = "files"
	TreeByTag           = "by_tag"
	TreeByYear          = "by_year"
	TreeByCorrespondent = "by_correspondent"
)

// ViewTrees returns the four destination tree names in clearing order.
func ViewTrees() []string {
	return []string{TreeFiles, TreeByTag, TreeByYear, TreeByCorrespondent}
}

// PlaceholderCorrespondent is the directory name used under by_correspondent
// when a document has no resolved correspondent.
const PlaceholderCorrespondent = "dummy"

// Op is the kind of filesystem operation an instruction requests.
type Op int

const (
	// OpCopy physically copies the source file to Dest.
	// Only the canonical copy uses it.
	OpCopy Op = iota

	// OpLink creates a symbolic link at Dest pointing at Target,
	// the canonical copy's destination. All derived views use it.
	OpLink
)

// String returns the operation name for diagnostics.
func (o Op) String() string {
	switch o {
	case OpCopy:
		return "COPY"
	case OpLink:
		return "LINK"
	default:
		return "UNKNOWN"
	}
}

// Instruction is one planned filesystem operation. All paths are
// relative to the export root. The executor must ensure Dest's parent
// directory exists before applying the instruction.
type Instruction struct {
	// Op selects copy or link.
	Op Op

	// Source is the export-relative path of the archived file.
	// Set for OpCopy only.
	Source string

	// Dest is the export-relative destination path.
	Dest string

	// Target is the export-relative path the link points at.
	// Set for OpLink only; always the canonical copy's Dest, never
	// the original source.
	Target string
}

// Skip records one excluded document for diagnostics.
type Skip struct {
	// ArchiveName identifies the skipped document.
	ArchiveName string

	// TagList is the comma-joined tag names that caused the skip.
	TagList string
}

// ExportPlan is the ordered list of instructions for one run plus the
// skip diagnostics gathered while building it.
type ExportPlan struct {
	// Instructions are applied in order by the executor.
	Instructions []Instruction

	// Copied counts documents with planned destinations.
	Copied int

	// Skips lists excluded documents.
	Skips []Skip
}
