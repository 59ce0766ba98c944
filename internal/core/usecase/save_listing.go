package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type SaveListingUseCase struct {
	storage port.ListingStoragePort
	events  port.ListingEventsPort
}

func NewSaveListingUseCase(storage port.ListingStoragePort, events port.ListingEventsPort) *SaveListingUseCase {
	return &SaveListingUseCase{storage: storage, events: events}
}

// Execute создает объявление (draft или сразу published). Пустой список
// изображений при публикации заменяется обложкой-заглушкой.
func (uc *SaveListingUseCase) Execute(ctx context.Context, listing domain.Listing) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SaveListing",
		"owner_id": listing.OwnerID,
		"title":    listing.Title,
		"status":   listing.Status,
	})

	ucLogger.Info("Use case started", nil)

	if err := listing.Validate(); err != nil {
		ucLogger.Warn("Listing validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if listing.Status == domain.StatusPublished {
		listing.EnsureCoverImage()
	}

	saved, err := uc.storage.Create(ctx, listing)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	// Событие best-effort: сбой публикации не откатывает сохранение
	if uc.events != nil {
		if err := uc.events.PublishListingSaved(ctx, *saved); err != nil {
			ucLogger.Warn("Failed to publish listing saved event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"listing_id": saved.ID,
	})

	return saved, nil
}
