// Package storage keeps uploaded product images in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selectable through storage.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const keyPrefix = "products/"

// blobImageStore implements service.ImageStore on top of a blob.Bucket.
type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobImageStore wraps an open bucket. Object URLs are publicBaseURL + "/" + key.
func NewBlobImageStore(bucket *blob.Bucket, publicBaseURL string) service.ImageStore {
	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Save streams the image into a new object named by a random UUID.
func (s *blobImageStore) Save(ctx context.Context, contentType string, r io.Reader) (string, error) {
	key := keyPrefix + uuid.NewString() + extensionFor(contentType)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

func (s *blobImageStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	}

	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ""
	}

	return exts[0]
}

// ImageStoreParams holds dependencies for the image store, injected by Fx.
type ImageStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens the configured bucket. It returns a nil store when storage is
// unconfigured, which disables uploads.
func NewImageStore(params ImageStoreParams) (service.ImageStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Image storage not configured, uploads disabled")

		return nil, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	store := NewBlobImageStore(bucket, cfg.PublicBaseURL)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing image bucket")

			return store.Close()
		},
	})

	params.Logger.Info("Image storage initialized", slog.String("bucket", cfg.BucketURL))

	return store, nil
}

// Module provides the image storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewImageStore),
)
