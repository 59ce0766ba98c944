package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/google/uuid"
)

type UpdateListingUseCase struct {
	storage port.ListingStoragePort
	events  port.ListingEventsPort
}

func NewUpdateListingUseCase(storage port.ListingStoragePort, events port.ListingEventsPort) *UpdateListingUseCase {
	return &UpdateListingUseCase{storage: storage, events: events}
}

// Execute применяет частичное обновление. Право на правку - только у
// владельца объявления или администратора.
func (uc *UpdateListingUseCase) Execute(ctx context.Context, actor usecases_port.Actor, id uuid.UUID, patch port.ListingPatch) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateListing",
		"listing_id": id,
		"actor_id":   actor.UserID,
		"actor_role": actor.Role,
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	if !existing.CanBeEditedBy(actor.UserID, actor.Role) {
		ucLogger.Warn("Edit rejected: actor is neither owner nor admin", nil)
		return nil, domain.ErrPermissionDenied
	}

	if patch.Price != nil && *patch.Price < 0 {
		return nil, &domain.ValidationError{Field: "price", Reason: "must be non-negative"}
	}

	updated, err := uc.storage.Update(ctx, id, patch)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	if uc.events != nil {
		if err := uc.events.PublishListingSaved(ctx, *updated); err != nil {
			ucLogger.Warn("Failed to publish listing saved event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}
