package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler serves product reviews.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(reviewUC usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{reviewUC: reviewUC, logger: logger}
}

type createReviewRequest struct {
	Content string `json:"content" form:"content"`
}

// CreateReview appends a review written by the signed-in user.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), deliverycontext.GetIdentity(c), productID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review))
}
