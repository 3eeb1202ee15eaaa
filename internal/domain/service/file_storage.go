package service

import (
	"context"
	"io"
)

// FileStorage abstracts the blob store holding avatars and service images.
// Keys follow the original layout: "<userID>/avatar-<unix>.<ext>" and
// "<printerID>/service-<unix>.<ext>"; the returned URL is what gets written
// back onto the owning row.
type FileStorage interface {
	// Upload writes the content under the given key with the given content
	// type and returns the public URL of the stored object.
	Upload(ctx context.Context, key string, contentType string, content io.Reader) (string, error)

	// Delete removes the object under the given key. Deleting a missing
	// object is not an error.
	Delete(ctx context.Context, key string) error
}
