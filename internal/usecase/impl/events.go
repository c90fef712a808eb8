package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// catalogEventEmitter publishes catalog events best effort. A publish failure is
// logged and never fails the operation that produced the event.
type catalogEventEmitter struct {
	publisher service.EventPublisher
	now       func() time.Time
	timeout   time.Duration
}

func newCatalogEventEmitter(publisher service.EventPublisher) *catalogEventEmitter {
	return &catalogEventEmitter{publisher: publisher, now: time.Now, timeout: lifecycle.DefaultTimeout}
}

func (e *catalogEventEmitter) emit(ctx context.Context, logger *slog.Logger, eventType string, identity entity.Identity, product *entity.Product, payload any) {
	if e == nil || e.publisher == nil || product == nil {
		return
	}

	event := &service.CatalogEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ProductID:  product.ID,
		BrandID:    product.BrandID,
		Payload:    payload,
		OccurredAt: e.now().UTC(),
	}
	if principal, ok := entity.PrincipalOf(identity); ok {
		event.ActorID = principal.UserID
	}

	// The write has already happened, so a client disconnect must not drop the event;
	// the timeout still caps how long a slow broker holds the response.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
	defer cancel()

	if err := e.publisher.PublishCatalogEvent(publishCtx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish catalog event",
			slog.String("type", eventType),
			slog.Uint64("productID", uint64(product.ID)),
			slog.Any("error", err),
		)
	}
}
