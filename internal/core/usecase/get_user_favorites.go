package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type GetUserFavoritesUseCase struct {
	favorites port.FavoritesRepositoryPort
	storage   port.ListingStoragePort
}

func NewGetUserFavoritesUseCase(favorites port.FavoritesRepositoryPort, storage port.ListingStoragePort) *GetUserFavoritesUseCase {
	return &GetUserFavoritesUseCase{favorites: favorites, storage: storage}
}

// Execute собирает карточки избранных объявлений: сперва id пар из
// хранилища избранного, затем сами объявления из хранилища объявлений.
func (uc *GetUserFavoritesUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserFavorites",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	ids, err := uc.favorites.FindFavoriteIDsByUser(ctx, userID)
	if err != nil {
		ucLogger.Error("Favorites repository returned an error", err, nil)
		return nil, &domain.RemoteError{Op: "listForUser", Err: err}
	}

	if len(ids) == 0 {
		ucLogger.Info("User has no favorites", nil)
		return []domain.Listing{}, nil
	}

	listings, err := uc.storage.ListByIDs(ctx, ids)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"favorites_count": len(listings),
	})

	return listings, nil
}
