package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

// ToggleFavoriteUseCase - переключение избранного с оптимистичной
// семантикой. Возвращаемый bool - итоговое (авторитетное) состояние пары.
type ToggleFavoriteUseCase interface {
	Execute(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	State(userID, listingID uuid.UUID) domain.ToggleState
}
