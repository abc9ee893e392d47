// Package filesystem implements the export executor against the real
// filesystem: it clears the destination trees, copies canonical files,
// and creates symbolic links for the derived views.
package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oberrich/paperless-export/internal/core/domain"
	"github.com/oberrich/paperless-export/internal/core/ports/driven"
	"github.com/oberrich/paperless-export/internal/logger"
)

// Ensure Executor implements the interface.
var _ driven.ExportExecutor = (*Executor)(nil)

// Executor applies instructions under a fixed export root.
type Executor struct {
	root string
}

// New creates an executor rooted at the export directory.
func New(root string) *Executor {
	return &Executor{root: root}
}

// Clean recursively removes the four destination trees.
// Trees that do not exist are ignored.
func (e *Executor) Clean(_ context.Context) error {
	for _, tree := range domain.ViewTrees() {
		dir := filepath.Join(e.root, tree)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w: %w", tree, domain.ErrExecution, err)
		}
		logger.Debug("cleared %s", dir)
	}
	return nil
}

// Apply executes one instruction, creating parent directories as needed.
func (e *Executor) Apply(_ context.Context, inst domain.Instruction) error {
	dest := e.abs(inst.Dest)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("creating parent of %s: %w: %w", inst.Dest, domain.ErrExecution, err)
	}

	switch inst.Op {
	case domain.OpCopy:
		if err := copyFile(e.abs(inst.Source), dest); err != nil {
			return fmt.Errorf("copying %s: %w: %w", inst.Source, domain.ErrExecution, err)
		}
	case domain.OpLink:
		if err := symlink(e.abs(inst.Target), dest); err != nil {
			return fmt.Errorf("linking %s: %w: %w", inst.Dest, domain.ErrExecution, err)
		}
	default:
		return fmt.Errorf("unknown op %d: %w", inst.Op, domain.ErrInvalidInput)
	}

	logger.Debug("%s %s", inst.Op, inst.Dest)
	return nil
}

// abs resolves an export-relative slash path against the root.
func (e *Executor) abs(rel string) string {
	return filepath.Join(e.root, filepath.FromSlash(rel))
}

// symlink creates dst pointing at target. A colliding destination from an earlier
// document is replaced: last write wins.
func symlink(target, dst string) error {
	err := os.Symlink(target, dst)
	if err != nil && os.IsExist(err) {
		if err := os.Remove(dst); err != nil {
			return err
		}
		return os.Symlink(target, dst)
	}
	return err
}

// copyFile copies src to dst, truncating any existing file.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
