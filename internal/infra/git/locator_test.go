package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/runoshun/mvnwrap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalDir resolves symlinks so paths compare equal on systems with linked temp dirs.
func evalDir(t *testing.T, dir string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return resolved
}

func TestLocator_RepoRoot(t *testing.T) {
	root := evalDir(t, t.TempDir())
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	sub := filepath.Join(root, "module-a", "src")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	l := NewLocator()

	t.Run("from root", func(t *testing.T) {
		got, err := l.RepoRoot(root)
		require.NoError(t, err)
		assert.Equal(t, root, evalDir(t, got))
	})

	t.Run("from subdirectory", func(t *testing.T) {
		got, err := l.RepoRoot(sub)
		require.NoError(t, err)
		assert.Equal(t, root, evalDir(t, got))
	})
}

func TestLocator_RepoRoot_NotARepository(t *testing.T) {
	_, err := NewLocator().RepoRoot(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrNotGitRepository)
}

func TestLocator_RepoRoot_Bare(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, true)
	require.NoError(t, err)

	_, err = NewLocator().RepoRoot(dir)
	assert.ErrorIs(t, err, domain.ErrNotGitRepository)
}
