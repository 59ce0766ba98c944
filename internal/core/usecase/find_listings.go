package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type FindListingsUseCase struct {
	storage port.ListingStoragePort
}

func NewFindListingsUseCase(storage port.ListingStoragePort) *FindListingsUseCase {
	return &FindListingsUseCase{storage: storage}
}

// Execute получает пул опубликованных объявлений из хранилища и применяет
// к нему фильтры в памяти. Черновики и архив отсекаются на уровне выборки,
// сам движок фильтрации про статусы не знает.
func (uc *FindListingsUseCase) Execute(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindListings",
		"criteria": criteria,
	})

	ucLogger.Info("Use case started", nil)

	pool, err := uc.storage.List(ctx, domain.StatusPublished)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	result := domain.FilterListings(pool, criteria)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"pool_size":    len(pool),
		"after_filter": len(result),
	})

	return result, nil
}
