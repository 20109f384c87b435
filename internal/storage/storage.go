// Package storage stores uploaded media files. Two backends exist: an
// S3-compatible object store and a local-disk fallback for environments
// without object storage. Both address files by the key recorded on the
// media row.
package storage

import (
	"context"
	"io"
)

// Store is the media file backend the handlers write through.
type Store interface {
	// Save writes an object under key.
	Save(ctx context.Context, key, contentType string, body io.Reader, size int64) error

	// Open streams an object back. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Remove deletes an object. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// URL returns a direct public URL for key, if the backend has one.
	// Backends without public URLs return ("", false) and the file is
	// streamed through the API instead.
	URL(key string) (string, bool)
}
