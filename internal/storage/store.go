// Package storage reads and writes whole HTML documents for layoutsync.
package storage

import (
	"context"
	"errors"
)

// DocumentStore loads and persists documents by site-relative path.
// Documents are always read and written whole.
type DocumentStore interface {
	// Read returns the full content of the document.
	// Returns ErrNotFound if the document doesn't exist.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write replaces the full content of the document.
	Write(ctx context.Context, path string, data []byte) error
}

// ErrNotFound is returned when a document doesn't exist.
type ErrNotFound struct {
	Path string
}

func (e ErrNotFound) Error() string {
	return "document not found: " + e.Path
}

// IsNotFound reports whether err's chain contains ErrNotFound.
func IsNotFound(err error) bool {
	var nf ErrNotFound
	return errors.As(err, &nf)
}
