package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_CreateReview_WriterFromIdentity(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewReviewService(ReviewServiceParams{ReviewRepo: reviewRepo, Publisher: publisher, Logger: newDiscardLogger()})
	ctx := context.Background()

	reviewRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.Review) bool {
			return r.Writer == "alice" && r.ProductID == 9 && r.Content == "Great fit"
		})).
		Run(func(_ context.Context, r *entity.Review) { r.ID = 1 }).
		Return(nil)
	publisher.EXPECT().
		PublishCatalogEvent(mock.Anything, mock.MatchedBy(func(e *service.CatalogEvent) bool {
			return e.Type == constants.EventReviewCreated && e.ActorID == 1 && e.ProductID == 9
		})).
		Return(nil)

	review, err := svc.CreateReview(ctx, testShopper, 9, " Great fit ")

	require.NoError(t, err)
	assert.Equal(t, "alice", review.Writer)
}

func TestReviewService_CreateReview_Rejections(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	svc := NewReviewService(ReviewServiceParams{ReviewRepo: reviewRepo, Logger: newDiscardLogger()})
	ctx := context.Background()

	_, err := svc.CreateReview(ctx, testAnonymous, 9, "hi")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = svc.CreateReview(ctx, testShopper, 9, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.CreateReview(ctx, testShopper, 9, strings.Repeat("x", maxReviewLength+1))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	reviewRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrProductNotFound)
	_, err = svc.CreateReview(ctx, testShopper, 404, "hi")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
