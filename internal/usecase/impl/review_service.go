package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

const maxReviewLength = 2000

type reviewService struct {
	reviewRepo repository.ReviewRepository
	events     *catalogEventEmitter
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		events:     newCatalogEventEmitter(params.Publisher),
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview stores a review. The writer is always the signed-in username, whatever the client sent.
func (srv *reviewService) CreateReview(ctx context.Context, identity entity.Identity, productID uint, content string) (*entity.Review, error) {
	principal, err := policy.RequireAuthenticated(identity)
	if err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.NewValidationError("content is required")
	}
	if len([]rune(content)) > maxReviewLength {
		return nil, domainerrors.NewValidationError("content must be at most %d characters", maxReviewLength)
	}

	review := &entity.Review{
		ProductID: productID,
		Writer:    principal.Username,
		Content:   content,
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, mapCatalogError(err)
	}

	srv.log(ctx).Info("Review created", slog.Any("productID", productID), slog.Any("reviewID", review.ID))
	srv.events.emit(ctx, srv.log(ctx), constants.EventReviewCreated, identity, &entity.Product{ID: productID}, map[string]any{
		"review_id": review.ID,
		"writer":    review.Writer,
	})

	return review, nil
}
