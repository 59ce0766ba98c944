package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/google/uuid"
)

type UpdateListingStatusUseCase struct {
	storage port.ListingStoragePort
	events  port.ListingEventsPort
}

func NewUpdateListingStatusUseCase(storage port.ListingStoragePort, events port.ListingEventsPort) *UpdateListingStatusUseCase {
	return &UpdateListingStatusUseCase{storage: storage, events: events}
}

// Execute переводит объявление в новый статус. Переходы инициируют
// только владелец или админ.
func (uc *UpdateListingStatusUseCase) Execute(ctx context.Context, actor usecases_port.Actor, id uuid.UUID, status domain.ListingStatus) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateListingStatus",
		"listing_id": id,
		"actor_id":   actor.UserID,
		"new_status": status,
	})

	ucLogger.Info("Use case started", nil)

	if _, err := domain.ParseListingStatus(string(status)); err != nil {
		ucLogger.Warn("Unknown target status", port.Fields{"error": err.Error()})
		return err
	}

	existing, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	if !existing.CanBeEditedBy(actor.UserID, actor.Role) {
		ucLogger.Warn("Status change rejected: actor is neither owner nor admin", nil)
		return domain.ErrPermissionDenied
	}

	if err := uc.storage.UpdateStatus(ctx, id, status); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	if uc.events != nil {
		if err := uc.events.PublishStatusChanged(ctx, id, status); err != nil {
			ucLogger.Warn("Failed to publish status changed event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
