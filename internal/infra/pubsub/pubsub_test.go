package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.CatalogEvent {
	return &service.CatalogEvent{
		EventID:    "evt-1",
		Type:       constants.EventProductUpdated,
		RequestID:  "req-1",
		ProductID:  42,
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishCatalogEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishCatalogEvent(context.Background(), newTestEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, map[string]string{
		"event_id":   "evt-1",
		"event_type": constants.EventProductUpdated,
		"product_id": "42",
		"request_id": "req-1",
	}, received.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.CatalogEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, uint(42), event.ProductID)
	assert.Equal(t, constants.EventProductUpdated, event.Type)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishCatalogEvent(context.Background(), newTestEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := newTestEvent()
	event.RequestID = ""

	attributes := eventAttributes(event)

	assert.NotContains(t, attributes, "request_id")
	assert.Equal(t, "42", attributes["product_id"])
}

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange, c.key, c.msg = exchange, key, msg

	return c.err
}

func (c *fakeChannel) Close() error {
	c.closed = true

	return nil
}

func TestRabbitMQPublisher_PublishCatalogEvent(t *testing.T) {
	ch := &fakeChannel{}
	publisher := &rabbitMQPublisher{channel: ch, exchange: defaultExchange, logger: newDiscardLogger()}

	require.NoError(t, publisher.PublishCatalogEvent(context.Background(), newTestEvent()))

	assert.Equal(t, defaultExchange, ch.exchange)
	assert.Equal(t, constants.EventProductUpdated, ch.key)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, "evt-1", ch.msg.MessageId)
	assert.Equal(t, "req-1", ch.msg.CorrelationId)
	assert.Equal(t, "42", ch.msg.Headers["product_id"])

	var event service.CatalogEvent
	require.NoError(t, json.Unmarshal(ch.msg.Body, &event))
	assert.Equal(t, "evt-1", event.EventID)

	require.NoError(t, publisher.Close())
	assert.True(t, ch.closed)
}

func TestRabbitMQPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: amqp.ErrClosed}
	publisher := &rabbitMQPublisher{channel: ch, exchange: defaultExchange, logger: newDiscardLogger()}

	err := publisher.PublishCatalogEvent(context.Background(), newTestEvent())

	require.Error(t, err)
	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestNewPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		noop    bool
	}{
		{name: "nil config", cfg: nil, noop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, noop: true},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: "project ID"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID"},
		{name: "rabbitmq without url", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ}, wantErr: "amqp URL"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(context.Background(), tt.cfg, newDiscardLogger())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, &noopPublisher{}, publisher)
			assert.NoError(t, publisher.PublishCatalogEvent(context.Background(), newTestEvent()))
		})
	}
}

func TestNewPublisher_Local(t *testing.T) {
	publisher, err := newPublisher(context.Background(), &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:9999/push",
	}, newDiscardLogger())

	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
}
