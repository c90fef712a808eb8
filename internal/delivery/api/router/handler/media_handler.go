package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const imageField = "image"

// MediaHandler serves product image uploads.
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(mediaUC usecase.MediaUsecase, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{mediaUC: mediaUC, logger: logger}
}

// UploadImage stores the multipart "image" file and returns its URL for the product form.
func (h *MediaHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile(imageField)
	if err != nil {
		return domainerrors.NewValidationError("multipart field %q is required", imageField)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	imageURL, err := h.mediaUC.UploadProductImage(c.Request().Context(), deliverycontext.GetIdentity(c), &usecase.UploadImageInput{
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"image_url": imageURL})
}
