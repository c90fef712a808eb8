package service

import (
	"context"
	"io"
)

// ImageStore persists uploaded product images and returns the URL they are served from.
type ImageStore interface {
	// Save writes the image under a fresh key and returns its public URL.
	Save(ctx context.Context, contentType string, r io.Reader) (string, error)

	// Close releases the underlying bucket.
	Close() error
}
