package impl

import (
	"context"
	"io"
	"log/slog"
	"mime"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxImageBytes = 1 << 20

var allowedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/gif":  {},
	"image/webp": {},
}

type mediaService struct {
	store    service.ImageStore
	maxBytes int64
	logger   *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Store  service.ImageStore `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaService is the constructor for mediaService. A nil store disables uploads.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	maxBytes := int64(defaultMaxImageBytes)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxImageBytes > 0 {
		maxBytes = params.Config.Storage.MaxImageBytes
	}

	return &mediaService{
		store:    params.Store,
		maxBytes: maxBytes,
		logger:   params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadProductImage stores an image for a product form. Only product managers may upload.
func (srv *mediaService) UploadProductImage(ctx context.Context, identity entity.Identity, input *usecase.UploadImageInput) (string, error) {
	if err := policy.RequireManager(identity); err != nil {
		return "", err
	}

	if srv.store == nil {
		return "", domainerrors.ErrImageStorageDisabled
	}

	mediaType, _, err := mime.ParseMediaType(input.ContentType)
	if err != nil {
		return "", domainerrors.NewValidationError("invalid content type %q", input.ContentType)
	}
	if _, ok := allowedImageTypes[mediaType]; !ok {
		return "", domainerrors.NewValidationError("unsupported image type %q", mediaType)
	}

	if input.Size > srv.maxBytes {
		return "", domainerrors.ErrImageTooLarge.WithDetailsf("limit is %d bytes", srv.maxBytes)
	}

	url, err := srv.store.Save(ctx, mediaType, &cappedReader{r: input.Body, remaining: srv.maxBytes})
	if err != nil {
		if errors.Is(err, domainerrors.ErrImageTooLarge) {
			return "", domainerrors.ErrImageTooLarge.WithDetailsf("limit is %d bytes", srv.maxBytes)
		}
		srv.log(ctx).Error("Failed to store product image", slog.Any("error", err))

		return "", errors.Wrap(err, "failed to store product image")
	}

	srv.log(ctx).Info("Product image stored", slog.String("url", url), slog.String("contentType", mediaType))

	return url, nil
}

// cappedReader fails with ErrImageTooLarge once more than remaining bytes are read,
// so a body that lied about its size never lands in the bucket in full.
type cappedReader struct {
	r         io.Reader
	remaining int64
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.remaining < 0 {
		return 0, domainerrors.ErrImageTooLarge
	}

	if int64(len(p)) > c.remaining+1 {
		p = p[:c.remaining+1]
	}

	n, err := c.r.Read(p)
	c.remaining -= int64(n)
	if c.remaining < 0 {
		return n, domainerrors.ErrImageTooLarge
	}

	return n, err
}
