package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogEventEmitter_BoundsPublishTime(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	emitter := newCatalogEventEmitter(publisher)
	emitter.timeout = 50 * time.Millisecond

	publisher.EXPECT().
		PublishCatalogEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.CatalogEvent) error {
			<-ctx.Done()

			return ctx.Err()
		})

	start := time.Now()
	emitter.emit(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)),
		constants.EventProductLiked, testSeller5, &entity.Product{ID: 3}, nil)

	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestCatalogEventEmitter_SurvivesCanceledRequest(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	emitter := newCatalogEventEmitter(publisher)

	ctx, cancel := context.WithCancel(deliverycontext.WithRequestID(context.Background(), "req-9"))
	cancel()

	publisher.EXPECT().
		PublishCatalogEvent(mock.MatchedBy(func(ctx context.Context) bool {
			_, hasDeadline := ctx.Deadline()

			return hasDeadline && ctx.Err() == nil
		}), mock.MatchedBy(func(e *service.CatalogEvent) bool {
			return e.RequestID == "req-9" && e.ProductID == 3 && e.ActorID == 2
		})).
		Return(nil)

	emitter.emit(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)),
		constants.EventProductDeleted, testSeller5, &entity.Product{ID: 3}, nil)
}
