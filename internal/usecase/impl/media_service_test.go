package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestMediaService(store *mockSvc.MockImageStore, maxBytes int64) usecase.MediaUsecase {
	params := MediaServiceParams{
		Config: &config.Config{Storage: &config.StorageConfig{MaxImageBytes: maxBytes}},
		Logger: newDiscardLogger(),
	}
	if store != nil {
		params.Store = store
	}

	return NewMediaService(params)
}

func TestMediaService_UploadProductImage(t *testing.T) {
	store := mockSvc.NewMockImageStore(t)
	svc := newTestMediaService(store, 16)
	ctx := context.Background()

	store.EXPECT().
		Save(ctx, "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, r io.Reader) (string, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				return "", err
			}

			return "https://cdn.example.com/products/" + string(data), nil
		})

	url, err := svc.UploadProductImage(ctx, testSeller5, &usecase.UploadImageInput{
		ContentType: "image/png; charset=binary",
		Size:        3,
		Body:        strings.NewReader("abc"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/abc", url)
}

func TestMediaService_UploadProductImage_Rejections(t *testing.T) {
	ctx := context.Background()
	png := func(size int64) *usecase.UploadImageInput {
		return &usecase.UploadImageInput{ContentType: "image/png", Size: size, Body: bytes.NewReader(make([]byte, size))}
	}

	_, err := newTestMediaService(mockSvc.NewMockImageStore(t), 16).UploadProductImage(ctx, testShopper, png(1))
	assert.ErrorIs(t, err, domainerrors.ErrOwnership)

	_, err = newTestMediaService(nil, 16).UploadProductImage(ctx, testAdmin, png(1))
	assert.ErrorIs(t, err, domainerrors.ErrImageStorageDisabled)

	_, err = newTestMediaService(mockSvc.NewMockImageStore(t), 16).UploadProductImage(ctx, testAdmin, &usecase.UploadImageInput{
		ContentType: "text/html",
		Body:        strings.NewReader("<p>"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = newTestMediaService(mockSvc.NewMockImageStore(t), 16).UploadProductImage(ctx, testAdmin, png(17))
	assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
}

func TestMediaService_UploadProductImage_BodyLargerThanDeclared(t *testing.T) {
	store := mockSvc.NewMockImageStore(t)
	svc := newTestMediaService(store, 4)
	ctx := context.Background()

	store.EXPECT().
		Save(ctx, "image/jpeg", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, r io.Reader) (string, error) {
			_, err := io.ReadAll(r)

			return "", err
		})

	_, err := svc.UploadProductImage(ctx, testAdmin, &usecase.UploadImageInput{
		ContentType: "image/jpeg",
		Size:        2,
		Body:        strings.NewReader("0123456789"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
}

func TestCappedReader_AllowsExactLimit(t *testing.T) {
	data, err := io.ReadAll(&cappedReader{r: strings.NewReader("abcd"), remaining: 4})

	require.NoError(t, err)
	assert.Equal(t, "abcd", string(data))
}
