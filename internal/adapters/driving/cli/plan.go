package cli

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/disiqueira/gotree/v3"
	"github.com/spf13/cobra"

	"github.com/oberrich/paperless-export/internal/core/domain"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what an export would do, without touching the filesystem",
	Long: `Parses the manifest and prints the planned copy and link operations.
Nothing is written, cleared, or linked.`,
	RunE: runPlan,
}

// planTree toggles tree rendering of the planned destinations.
var planTree bool

func init() {
	planCmd.Flags().BoolVarP(&planTree, "tree", "t", false, "Render planned destinations as a directory tree")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}

	plan, err := exportService.Plan(context.Background())
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}

	for _, skip := range plan.Skips {
		cmd.Printf("skipping %s (%s)\n", skip.ArchiveName, skip.TagList)
	}

	if planTree {
		cmd.Print(renderTree(plan))
	} else {
		for _, inst := range plan.Instructions {
			switch inst.Op {
			case domain.OpCopy:
				cmd.Printf("%s %s -> %s\n", inst.Op, inst.Source, inst.Dest)
			case domain.OpLink:
				cmd.Printf("%s %s -> %s\n", inst.Op, inst.Dest, inst.Target)
			}
		}
	}

	cmd.Printf("would copy %d files, %d would be skipped.\n", plan.Copied, len(plan.Skips))
	return nil
}

// renderTree renders the planned destination paths as a directory tree.
// Links are annotated with their target.
func renderTree(plan *domain.ExportPlan) string {
	root := gotree.New(".")
	dirs := map[string]gotree.Tree{".": root}

	var dir func(p string) gotree.Tree
	dir = func(p string) gotree.Tree {
		if node, ok := dirs[p]; ok {
			return node
		}
		node := dir(path.Dir(p)).Add(path.Base(p))
		dirs[p] = node
		return node
	}

	for _, inst := range plan.Instructions {
		label := path.Base(inst.Dest)
		if inst.Op == domain.OpLink {
			label += " -> " + inst.Target
		}
		dir(path.Dir(inst.Dest)).Add(label)
	}

	return root.Print()
}
