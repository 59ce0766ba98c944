package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

// GetSimilarListingsUseCase - подбор похожих объявлений для карточки.
type GetSimilarListingsUseCase interface {
	Execute(ctx context.Context, referenceID uuid.UUID, limit int) ([]domain.Listing, error)
}
