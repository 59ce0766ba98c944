package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"testing"

	"listing-service/internal/constants"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePublisher запоминает опубликованные сообщения вместо отправки в брокер
type fakePublisher struct {
	routingKeys []string
	messages    []amqp.Publishing
}

func (f *fakePublisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	f.routingKeys = append(f.routingKeys, routingKey)
	f.messages = append(f.messages, msg)
	return nil
}

func validListing() domain.Listing {
	return domain.Listing{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Title:   "Sunny two-bedroom",
		Type:    domain.TypeApartment,
		Price:   1850,
		City:    "Austin",
		Status:  domain.StatusPublished,
	}
}

func TestPublishListingSaved(t *testing.T) {
	producer := &fakePublisher{}
	adapter, err := NewListingEventsAdapter(producer)
	require.NoError(t, err)

	err = adapter.PublishListingSaved(context.Background(), validListing())
	require.NoError(t, err)

	require.Len(t, producer.messages, 1)
	assert.Equal(t, constants.RoutingKeyListingSaved, producer.routingKeys[0])

	msg := producer.messages[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, uint8(amqp.Persistent), msg.DeliveryMode)
	assert.Equal(t, constants.EventTypeListingSaved, msg.Headers["event_type"])
	assert.Equal(t, constants.EventVersion, msg.Headers["event_version"])

	var dto ListingSavedDTO
	require.NoError(t, json.Unmarshal(msg.Body, &dto))
	assert.Equal(t, "Sunny two-bedroom", dto.Title)
}

// Тело, нарушающее контракт события, не должно дойти до брокера.
func TestPublishRejectsBodyViolatingContract(t *testing.T) {
	producer := &fakePublisher{}
	adapter, err := NewListingEventsAdapter(producer)
	require.NoError(t, err)

	listing := validListing()
	listing.Title = ""

	err = adapter.PublishListingSaved(context.Background(), listing)
	require.Error(t, err)
	assert.Empty(t, producer.messages, "невалидное событие не публикуется")
}

func TestPublishStatusChangedAndDeleted(t *testing.T) {
	producer := &fakePublisher{}
	adapter, err := NewListingEventsAdapter(producer)
	require.NoError(t, err)

	listingID := uuid.New()
	require.NoError(t, adapter.PublishStatusChanged(context.Background(), listingID, domain.StatusArchived))
	require.NoError(t, adapter.PublishListingDeleted(context.Background(), listingID))

	require.Len(t, producer.routingKeys, 2)
	assert.Equal(t, constants.RoutingKeyStatusChanged, producer.routingKeys[0])
	assert.Equal(t, constants.RoutingKeyListingDeleted, producer.routingKeys[1])
}
