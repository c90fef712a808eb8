package pubsub

import (
	"strconv"

	"storefront/internal/domain/service"
)

// eventAttributes builds the message attributes subscribers filter and trace on.
func eventAttributes(event *service.CatalogEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": event.Type,
		"product_id": strconv.FormatUint(uint64(event.ProductID), 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
