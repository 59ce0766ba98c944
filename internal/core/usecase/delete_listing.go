package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/google/uuid"
)

type DeleteListingUseCase struct {
	storage port.ListingStoragePort
	events  port.ListingEventsPort
}

func NewDeleteListingUseCase(storage port.ListingStoragePort, events port.ListingEventsPort) *DeleteListingUseCase {
	return &DeleteListingUseCase{storage: storage, events: events}
}

func (uc *DeleteListingUseCase) Execute(ctx context.Context, actor usecases_port.Actor, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "DeleteListing",
		"listing_id": id,
		"actor_id":   actor.UserID,
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	if !existing.CanBeEditedBy(actor.UserID, actor.Role) {
		ucLogger.Warn("Delete rejected: actor is neither owner nor admin", nil)
		return domain.ErrPermissionDenied
	}

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	if uc.events != nil {
		if err := uc.events.PublishListingDeleted(ctx, id); err != nil {
			ucLogger.Warn("Failed to publish listing deleted event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
