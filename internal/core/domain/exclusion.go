package domain

import "strings"

// DefaultSkipTags are the tag names that exclude a document from the
// export when matched exactly.
func DefaultSkipTags() []string {
	return []string{"fine", "legal", "private"}
}

// skipSuffix marks second/duplicate revisions by convention, e.g.
// "project2" or "v2". Any tag name ending in it excludes the document.
const skipSuffix = "2"

// SkipPolicy decides which documents are excluded from the export
// based on their resolved tag names. The decision is pure and
// deterministic given the document's tag set.
type SkipPolicy struct {
	// ExactMatch lists tag names that exclude a document on exact,
	// case-sensitive match.
	ExactMatch []string
}

// DefaultSkipPolicy returns the policy with the standard exclusion set.
func DefaultSkipPolicy() SkipPolicy {
	return SkipPolicy{ExactMatch: DefaultSkipTags()}
}

// ShouldSkip reports whether the document is excluded from the export.
// A document is skipped if any of its tag names is in the exact-match
// set, or any tag name ends with "2".
func (p SkipPolicy) ShouldSkip(doc Document) bool {
	for _, tag := range doc.Tags {
		if strings.HasSuffix(tag.Name, skipSuffix) {
			return true
		}
		for _, name := range p.ExactMatch {
			if tag.Name == name {
				return true
			}
		}
	}
	return false
}
