package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ReviewUsecase defines the review use cases.
type ReviewUsecase interface {
	// CreateReview appends a review written by the acting identity.
	CreateReview(ctx context.Context, identity entity.Identity, productID uint, content string) (*entity.Review, error)
}
