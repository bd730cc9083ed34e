// Package gitguard refuses writes to files that carry uncommitted changes in
// the git worktree containing the site.
package gitguard

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"

	ferrors "git.home.luguber.info/inful/layoutsync/internal/foundation/errors"
)

// WorktreeGuard checks target files against the status of a git worktree.
type WorktreeGuard struct {
	repo    *git.Repository
	root    string
	siteDir string
}

// Open finds the repository containing siteDir, walking up to parent
// directories. Relative paths passed to CheckWritable resolve against siteDir.
func Open(siteDir string) (*WorktreeGuard, error) {
	absSite, err := filepath.Abs(siteDir)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to resolve site directory").
			Fatal().
			WithContext("site_dir", siteDir).
			Build()
	}

	repo, err := git.PlainOpenWithOptions(absSite, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryGit, "site directory is not inside a git repository").
			Fatal().
			WithContext("site_dir", absSite).
			Build()
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryGit, "failed to get git worktree").Fatal().Build()
	}

	root := wt.Filesystem.Root()
	// Compare against the symlink-free root so temp dirs on macOS resolve.
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	if resolved, err := filepath.EvalSymlinks(absSite); err == nil {
		absSite = resolved
	}
	return &WorktreeGuard{repo: repo, root: root, siteDir: absSite}, nil
}

// Root returns the worktree root directory.
func (g *WorktreeGuard) Root() string { return g.root }

// CheckWritable returns an error when path is modified, staged, or untracked.
// Files that are tracked and clean, or ignored, may be written.
func (g *WorktreeGuard) CheckWritable(_ context.Context, path string) error {
	rel, err := g.relative(path)
	if err != nil {
		return err
	}

	wt, err := g.repo.Worktree()
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryGit, "failed to get git worktree").Fatal().Build()
	}
	status, err := wt.Status()
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryGit, "failed to get git status").Fatal().Build()
	}

	// Status.File would report absent entries as untracked; clean files are absent.
	fs, ok := status[rel]
	if !ok {
		return nil
	}
	if fs.Worktree == git.Unmodified && fs.Staging == git.Unmodified {
		return nil
	}
	return ferrors.FileSystemError("refusing to overwrite file with uncommitted changes").
		WithContext("path", rel).
		WithContext("worktree", string(rune(fs.Worktree))).
		WithContext("staging", string(rune(fs.Staging))).
		Build()
}

func (g *WorktreeGuard) relative(path string) (string, error) {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(g.siteDir, path)
	}
	rel, err := filepath.Rel(g.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ferrors.NewError(ferrors.CategoryGit, "path is outside the git worktree").
			Fatal().
			WithContext("path", path).
			WithContext("root", g.root).
			Build()
	}
	return filepath.ToSlash(rel), nil
}
