package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"listing-service/internal/constants"
	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ListingSavedDTO - тело события listing.saved
type ListingSavedDTO struct {
	ListingID uuid.UUID `json:"listing_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Price     float64   `json:"price"`
	City      string    `json:"city"`
	Status    string    `json:"status"`
}

// StatusChangedDTO - тело события listing.status_changed
type StatusChangedDTO struct {
	ListingID uuid.UUID `json:"listing_id"`
	Status    string    `json:"status"`
}

// ListingDeletedDTO - тело события listing.deleted
type ListingDeletedDTO struct {
	ListingID uuid.UUID `json:"listing_id"`
}

// messagePublisher - то, что умеет Publisher; выделено в интерфейс,
// чтобы адаптер можно было проверять без живого брокера.
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// ListingEventsAdapter публикует события жизненного цикла объявлений
// в обменник listing_exchange.
type ListingEventsAdapter struct {
	producer messagePublisher
}

func NewListingEventsAdapter(producer messagePublisher) (*ListingEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &ListingEventsAdapter{producer: producer}, nil
}

func (a *ListingEventsAdapter) publish(ctx context.Context, routingKey, eventType string, dto interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "ListingEventsAdapter",
		"routing_key": routingKey,
		"event_type":  eventType,
	})

	body, err := json.Marshal(dto)
	if err != nil {
		adapterLogger.Error("Failed to marshal event body", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to marshal event: %w", err)
	}

	// Исходящее событие обязано соответствовать контракту, который с ним
	// уезжает: невалидное тело не должно попасть в брокер.
	if err := contracts.ValidateEvent(eventType, constants.EventVersion, body); err != nil {
		adapterLogger.Error("Event body failed contract validation", err, nil)
		return fmt.Errorf("rabbitmq adapter: invalid %s body: %w", eventType, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent, // Для сохранения сообщений при перезапуске брокера
		Timestamp:    time.Now(),
		Headers: amqp.Table{
			"event_type":    eventType,
			"event_version": constants.EventVersion,
		},
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	// Таймаут на публикацию, если контекст его не предоставляет
	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish %s: %w", eventType, err)
	}

	adapterLogger.Debug("Successfully published event", nil)
	return nil
}

func (a *ListingEventsAdapter) PublishListingSaved(ctx context.Context, listing domain.Listing) error {
	return a.publish(ctx, constants.RoutingKeyListingSaved, constants.EventTypeListingSaved, ListingSavedDTO{
		ListingID: listing.ID,
		OwnerID:   listing.OwnerID,
		Title:     listing.Title,
		Type:      string(listing.Type),
		Price:     listing.Price,
		City:      listing.City,
		Status:    string(listing.Status),
	})
}

func (a *ListingEventsAdapter) PublishStatusChanged(ctx context.Context, listingID uuid.UUID, status domain.ListingStatus) error {
	return a.publish(ctx, constants.RoutingKeyStatusChanged, constants.EventTypeStatusChanged, StatusChangedDTO{
		ListingID: listingID,
		Status:    string(status),
	})
}

func (a *ListingEventsAdapter) PublishListingDeleted(ctx context.Context, listingID uuid.UUID) error {
	return a.publish(ctx, constants.RoutingKeyListingDeleted, constants.EventTypeListingDeleted, ListingDeletedDTO{
		ListingID: listingID,
	})
}
