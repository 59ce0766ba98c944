package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type GetSimilarListingsUseCase struct {
	storage port.ListingStoragePort
}

func NewGetSimilarListingsUseCase(storage port.ListingStoragePort) *GetSimilarListingsUseCase {
	return &GetSimilarListingsUseCase{storage: storage}
}

// Execute подбирает до limit похожих объявлений для карточки referenceID.
// Пул кандидатов - все объявления из хранилища: образец может быть еще
// черновиком, матчер сам исключит неопубликованные из выдачи.
func (uc *GetSimilarListingsUseCase) Execute(ctx context.Context, referenceID uuid.UUID, limit int) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":     "GetSimilarListings",
		"reference_id": referenceID,
		"limit":        limit,
	})

	ucLogger.Info("Use case started", nil)

	pool, err := uc.storage.List(ctx, "")
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	similar, err := domain.FindSimilar(pool, referenceID, limit)
	if err != nil {
		ucLogger.Warn("Similarity matching failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"candidates_found": len(similar),
	})

	return similar, nil
}
