package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStore_Save(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	store := NewBlobImageStore(bucket, "https://cdn.example.com/")
	defer store.Close()

	payload := []byte("\x89PNG fake image")
	url, err := store.Save(ctx, "image/png", bytes.NewReader(payload))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, "https://cdn.example.com/products/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	key := strings.TrimPrefix(url, "https://cdn.example.com/")
	stored, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, payload, stored)

	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBlobImageStore_SaveUsesFreshKeys(t *testing.T) {
	store := NewBlobImageStore(memblob.OpenBucket(nil), "https://cdn.example.com")
	defer store.Close()

	first, err := store.Save(context.Background(), "image/jpeg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), "image/jpeg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, ".jpg"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestBlobImageStore_SaveReadError(t *testing.T) {
	store := NewBlobImageStore(memblob.OpenBucket(nil), "https://cdn.example.com")
	defer store.Close()

	_, err := store.Save(context.Background(), "image/png", failingReader{})

	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestNewImageStore(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("unconfigured storage disables uploads", func(t *testing.T) {
		store, err := NewImageStore(ImageStoreParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{},
			Logger: logger,
		})

		require.NoError(t, err)
		assert.Nil(t, store)
	})

	t.Run("memory bucket", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		store, err := NewImageStore(ImageStoreParams{
			Lc:     lc,
			Ctx:    context.Background(),
			Config: &config.Config{Storage: &config.StorageConfig{BucketURL: "mem://", PublicBaseURL: "http://localhost/images"}},
			Logger: logger,
		})
		require.NoError(t, err)
		require.NotNil(t, store)

		url, err := store.Save(context.Background(), "image/webp", strings.NewReader("img"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "http://localhost/images/products/"))

		lc.RequireStart().RequireStop()
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, err := NewImageStore(ImageStoreParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{Storage: &config.StorageConfig{BucketURL: "nope://bucket"}},
			Logger: logger,
		})

		assert.Error(t, err)
	})
}
