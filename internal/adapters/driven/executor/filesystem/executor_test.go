package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oberrich/paperless-export/internal/core/domain"
)

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestExecutor_Apply_Copy(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "archive/a.pdf", "pdf bytes")

	executor := New(root)
	ctx := context.Background()

	err := executor.Apply(ctx, domain.Instruction{
		Op:     domain.OpCopy,
		Source: "archive/a.pdf",
		Dest:   "files/archive/a.pdf",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "files", "archive", "a.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}

func TestExecutor_Apply_Link(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "a.pdf", "pdf bytes")

	executor := New(root)
	ctx := context.Background()

	require.NoError(t, executor.Apply(ctx, domain.Instruction{
		Op: domain.OpCopy, Source: "a.pdf", Dest: "files/a.pdf",
	}))
	require.NoError(t, executor.Apply(ctx, domain.Instruction{
		Op: domain.OpLink, Dest: "by_year/2021/a.pdf", Target: "files/a.pdf",
	}))

	linkPath := filepath.Join(root, "by_year", "2021", "a.pdf")
	target, err := os.Readlink(linkPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "files", "a.pdf"), target)

	// The link resolves to the canonical copy's content.
	data, err := os.ReadFile(linkPath)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}

func TestExecutor_Apply_LinkCollisionLastWriteWins(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "a.pdf", "first")
	writeSource(t, root, "b.pdf", "second")

	executor := New(root)
	ctx := context.Background()

	require.NoError(t, executor.Apply(ctx, domain.Instruction{
		Op: domain.OpCopy, Source: "a.pdf", Dest: "files/a.pdf",
	}))
	require.NoError(t, executor.Apply(ctx, domain.Instruction{
		Op: domain.OpCopy, Source: "b.pdf", Dest: "files/b.pdf",
	}))

	// Two documents mapping to the same view path: later link replaces
	// the earlier one silently.
	require.NoError(t, executor.Apply(ctx, domain.Instruction{
		Op: domain.OpLink, Dest: "by_tag/tax/doc.pdf", Target: "files/a.pdf",
	}))
	require.NoError(t, executor.Apply(ctx, domain.Instruction{
		Op: domain.OpLink, Dest: "by_tag/tax/doc.pdf", Target: "files/b.pdf",
	}))

	target, err := os.Readlink(filepath.Join(root, "by_tag", "tax", "doc.pdf"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "files", "b.pdf"), target)
}

func TestExecutor_Apply_MissingSourceFails(t *testing.T) {
	executor := New(t.TempDir())

	err := executor.Apply(context.Background(), domain.Instruction{
		Op: domain.OpCopy, Source: "absent.pdf", Dest: "files/absent.pdf",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExecution)
}

func TestExecutor_Clean(t *testing.T) {
	root := t.TempDir()
	for _, tree := range domain.ViewTrees() {
		writeSource(t, root, tree+"/stale.pdf", "stale")
	}
	// Archived source files outside the view trees stay untouched.
	writeSource(t, root, "a.pdf", "keep")

	executor := New(root)

	require.NoError(t, executor.Clean(context.Background()))

	for _, tree := range domain.ViewTrees() {
		_, err := os.Stat(filepath.Join(root, tree))
		assert.True(t, os.IsNotExist(err), "expected %s to be removed", tree)
	}
	_, err := os.Stat(filepath.Join(root, "a.pdf"))
	assert.NoError(t, err)
}

func TestExecutor_Clean_MissingTreesIgnored(t *testing.T) {
	executor := New(t.TempDir())

	assert.NoError(t, executor.Clean(context.Background()))
}
