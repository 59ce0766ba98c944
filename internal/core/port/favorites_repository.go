package port

import (
	"context"

	"github.com/google/uuid"
)

// FavoritesRepositoryPort - контракт внешнего хранилища избранного.
// Повторный Add для существующей пары не ошибка (идемпотентность),
// Remove несуществующей пары - тоже.
type FavoritesRepositoryPort interface {
	IsFavorite(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	Add(ctx context.Context, userID, listingID uuid.UUID) error
	Remove(ctx context.Context, userID, listingID uuid.UUID) error
	FindFavoriteIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
