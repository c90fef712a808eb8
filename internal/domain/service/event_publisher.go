package service

import (
	"context"
	"time"
)

// CatalogEvent describes a change in the catalog for downstream consumers.
type CatalogEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	ProductID  uint      `json:"product_id"`
	BrandID    *uint     `json:"brand_id,omitempty"`
	ActorID    uint      `json:"actor_id,omitempty"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog event
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
