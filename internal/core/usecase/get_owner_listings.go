package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type GetOwnerListingsUseCase struct {
	storage port.ListingStoragePort
}

func NewGetOwnerListingsUseCase(storage port.ListingStoragePort) *GetOwnerListingsUseCase {
	return &GetOwnerListingsUseCase{storage: storage}
}

// Execute возвращает все объявления владельца, включая черновики и архив.
func (uc *GetOwnerListingsUseCase) Execute(ctx context.Context, ownerID uuid.UUID) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetOwnerListings",
		"owner_id": ownerID,
	})

	ucLogger.Info("Use case started", nil)

	listings, err := uc.storage.ListByOwner(ctx, ownerID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"listings_count": len(listings),
	})

	return listings, nil
}
