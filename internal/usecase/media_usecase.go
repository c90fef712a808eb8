package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// UploadImageInput describes one uploaded product image.
type UploadImageInput struct {
	ContentType string
	Size        int64
	Body        io.Reader
}

// MediaUsecase defines product image uploads.
type MediaUsecase interface {
	// UploadProductImage stores an image and returns the URL to put in a product's image_url.
	UploadProductImage(ctx context.Context, identity entity.Identity, input *UploadImageInput) (string, error)
}
