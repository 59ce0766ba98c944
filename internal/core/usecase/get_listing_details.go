package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type GetListingDetailsUseCase struct {
	storage port.ListingStoragePort
}

func NewGetListingDetailsUseCase(storage port.ListingStoragePort) *GetListingDetailsUseCase {
	return &GetListingDetailsUseCase{storage: storage}
}

func (uc *GetListingDetailsUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListingDetails",
		"listing_id": id,
	})

	ucLogger.Info("Use case started", nil)

	listing, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return listing, nil
}
