package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

// GetUserFavoritesUseCase - карточки объявлений, сохраненных пользователем.
type GetUserFavoritesUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]domain.Listing, error)
}
