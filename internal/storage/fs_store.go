package storage

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/layoutsync/internal/foundation/errors"
)

// FSStore is a DocumentStore rooted at a site directory on disk.
type FSStore struct {
	root string
}

// NewFSStore creates a store that resolves paths relative to root.
func NewFSStore(root string) *FSStore {
	return &FSStore{root: root}
}

// Root returns the directory the store resolves paths against.
func (s *FSStore) Root() string { return s.root }

// Path resolves a document path against the store root.
func (s *FSStore) Path(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(s.root, path)
}

// Read returns the full content of the document at path.
func (s *FSStore) Read(_ context.Context, path string) ([]byte, error) {
	full := s.Path(path)
	// #nosec G304 - paths come from the sync configuration
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ferrors.WrapError(ErrNotFound{Path: path}, ferrors.CategoryNotFound, "document not found").
				WithContext("path", full).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "read document failed").
			Fatal().
			WithContext("path", full).
			Build()
	}
	return data, nil
}

// Write replaces the document at path, keeping the permission bits of an
// existing file.
func (s *FSStore) Write(_ context.Context, path string, data []byte) error {
	full := s.Path(path)
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(full); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(full, data, mode); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write document failed").
			Fatal().
			WithContext("path", full).
			Build()
	}
	return nil
}
