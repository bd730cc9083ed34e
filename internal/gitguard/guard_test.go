package gitguard

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/layoutsync/internal/foundation/errors"
)

func initSite(t *testing.T) (string, *git.Worktree) {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	w, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "site"), 0o750))
	for _, name := range []string{"site/index.html", "site/press.html"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("<html></html>\n"), 0o600))
		_, err = w.Add(name)
		require.NoError(t, err)
	}
	_, err = w.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir, w
}

func TestCheckWritable_CleanFileAllowed(t *testing.T) {
	dir, _ := initSite(t)

	g, err := Open(filepath.Join(dir, "site"))
	require.NoError(t, err)
	assert.NoError(t, g.CheckWritable(context.Background(), "press.html"))
}

func TestCheckWritable_ModifiedFileRejected(t *testing.T) {
	dir, _ := initSite(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site", "press.html"), []byte("<html>edited</html>\n"), 0o600))

	g, err := Open(filepath.Join(dir, "site"))
	require.NoError(t, err)

	err = g.CheckWritable(context.Background(), "press.html")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
	assert.NoError(t, g.CheckWritable(context.Background(), "index.html"))
}

func TestCheckWritable_StagedAndUntrackedRejected(t *testing.T) {
	dir, w := initSite(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site", "index.html"), []byte("<html>staged</html>\n"), 0o600))
	_, err := w.Add("site/index.html")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site", "new.html"), []byte("<html></html>\n"), 0o600))

	g, err := Open(filepath.Join(dir, "site"))
	require.NoError(t, err)

	assert.Error(t, g.CheckWritable(context.Background(), "index.html"))
	assert.Error(t, g.CheckWritable(context.Background(), "new.html"))
}

func TestCheckWritable_PathOutsideWorktree(t *testing.T) {
	dir, _ := initSite(t)

	g, err := Open(dir)
	require.NoError(t, err)

	err = g.CheckWritable(context.Background(), "../elsewhere.html")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryGit))
}

func TestOpen_NotARepository(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryGit))
}
