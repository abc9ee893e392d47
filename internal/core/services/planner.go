package services

import (
	"path"

	"github.com/oberrich/paperless-export/internal/core/domain"
)

// Planner derives the destination paths for included documents.
// It is pure: building a plan never touches the filesystem.
type Planner struct {
	// Placeholder is the by_correspondent directory for documents
	// without a resolved correspondent.
	Placeholder string
}

// NewPlanner creates a planner. An empty placeholder falls back to the
// standard one.
func NewPlanner(placeholder string) Planner {
	if placeholder == "" {
		placeholder = domain.PlaceholderCorrespondent
	}
	return Planner{Placeholder: placeholder}
}

// PlanDocument returns the ordered instructions for a single document:
// the canonical copy first, then the by-year, by-correspondent, and
// per-tag links, each pointing at the canonical destination.
func (p Planner) PlanDocument(doc domain.Document) []domain.Instruction {
	canonical := path.Join(domain.TreeFiles, doc.ArchiveName)

	instructions := []domain.Instruction{{
		Op:     domain.OpCopy,
		Source: doc.ArchiveName,
		Dest:   canonical,
	}, {
		Op:     domain.OpLink,
		Dest:   path.Join(domain.TreeByYear, doc.Created.UTC().Format("2006"), doc.ArchiveName),
		Target: canonical,
	}}

	correspondent := p.Placeholder
	if doc.Correspondent != nil {
		correspondent = doc.Correspondent.Name
	}
	instructions = append(instructions, domain.Instruction{
		Op:     domain.OpLink,
		Dest:   path.Join(domain.TreeByCorrespondent, correspondent, doc.ArchiveName),
		Target: canonical,
	})

	for _, tag := range doc.Tags {
		instructions = append(instructions, domain.Instruction{
			Op:     domain.OpLink,
			Dest:   path.Join(domain.TreeByTag, tag.Name, doc.ArchiveName),
			Target: canonical,
		})
	}

	return instructions
}

// BuildPlan classifies every document in the archive and assembles the
// run's instruction list. Document processing order follows table
// iteration order, which is not guaranteed; the resulting filesystem
// state is order-independent apart from last-write-wins collisions.
func (p Planner) BuildPlan(archive *domain.Archive, policy domain.SkipPolicy) *domain.ExportPlan {
	plan := &domain.ExportPlan{}

	for _, doc := range archive.Documents {
		if policy.ShouldSkip(doc) {
			plan.Skips = append(plan.Skips, domain.Skip{
				ArchiveName: doc.ArchiveName,
				TagList:     doc.TagList(),
			})
			continue
		}
		plan.Instructions = append(plan.Instructions, p.PlanDocument(doc)...)
		plan.Copied++
	}

	return plan
}
